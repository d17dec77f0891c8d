package fill

import (
	"archive/zip"
	"io"
	"os"

	"github.com/h2non/filetype"
)

const documentPartName = "word/document.xml"

// detectInput classifies path as a Word document, a batch archive of
// documents or something else. Both are zip containers so after sniffing the
// magic we look for the main document part to tell them apart.
func detectInput(path string) (document bool, batch bool, err error) {
	t, err := filetype.MatchFile(path)
	if err != nil {
		return false, false, err
	}
	if t.Extension != "zip" && t.Extension != "docx" {
		return false, false, nil
	}

	// filetype only peeks at the head of the file, the document part may sit
	// anywhere in the archive
	zr, err := zip.OpenReader(path)
	if err != nil {
		// zip magic but unreadable archive - not something we can process
		return false, false, nil
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name == documentPartName {
			return true, false, nil
		}
	}
	return false, true, nil
}

// isDocumentInArchive sniffs a single archive entry: anything with the zip
// magic is assumed to be a document, discovery of the document part happens
// when the extracted copy is opened.
func isDocumentInArchive(f *zip.File) (bool, error) {
	r, err := f.Open()
	if err != nil {
		return false, err
	}
	defer r.Close()

	buf := make([]byte, 262)
	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.ErrUnexpectedEOF {
		return false, err
	}
	return filetype.Is(buf[:n], "zip"), nil
}

// extractToTemp copies an archive entry into a temporary file so the zip
// reader can seek in it. Caller removes the file.
func extractToTemp(f *zip.File) (string, error) {
	r, err := f.Open()
	if err != nil {
		return "", err
	}
	defer r.Close()

	tmp, err := os.CreateTemp("", "docfill-*.docx")
	if err != nil {
		return "", err
	}
	defer tmp.Close()

	if _, err := io.Copy(tmp, r); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}
