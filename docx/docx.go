// Package docx implements the document-automation layer over OOXML
// word-processing packages: it opens a .docx, enumerates the stories that
// may carry content controls (document body, headers, footers, notes),
// exposes every control as a field target and writes the modified package
// back out.
package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"

	"docfill/field"
)

const documentPart = "word/document.xml"

// Story is one parsed package part that can contain content controls. The
// original automation model iterates Word story ranges; in the package those
// are simply separate XML parts.
type Story struct {
	Name string
	doc  *etree.Document
}

// Document is an open .docx package. Unmodified parts are carried through
// verbatim on save, parsed stories are re-serialized.
type Document struct {
	path    string
	names   []string // zip entry order of the source package
	parts   map[string][]byte
	stories []*Story
}

// Open reads the package at path and parses every story part. The file is
// fully loaded - nothing references the file afterwards.
func Open(path string) (*Document, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open document package: %w", err)
	}
	defer r.Close()

	d := &Document{
		path:  path,
		parts: make(map[string][]byte, len(r.File)),
	}

	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("unable to open package part %q: %w", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("unable to read package part %q: %w", f.Name, err)
		}
		d.names = append(d.names, f.Name)
		d.parts[f.Name] = data
	}

	if _, ok := d.parts[documentPart]; !ok {
		return nil, fmt.Errorf("not a word-processing document: missing %s", path)
	}

	for _, name := range storyParts(d.names) {
		doc, err := parsePart(d.parts[name])
		if err != nil {
			return nil, fmt.Errorf("unable to parse %q: %w", name, err)
		}
		d.stories = append(d.stories, &Story{Name: name, doc: doc})
	}
	return d, nil
}

// storyParts selects part names that may hold content controls, main
// document body first, the rest in stable name order.
func storyParts(names []string) []string {
	var rest []string
	for _, name := range names {
		switch {
		case name == documentPart:
			// always first
		case strings.HasPrefix(name, "word/header") && strings.HasSuffix(name, ".xml"),
			strings.HasPrefix(name, "word/footer") && strings.HasSuffix(name, ".xml"),
			name == "word/footnotes.xml", name == "word/endnotes.xml":
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append([]string{documentPart}, rest...)
}

func parsePart(data []byte) (*etree.Document, error) {
	doc := etree.NewDocument()
	doc.WriteSettings = etree.WriteSettings{
		CanonicalText:    true,
		CanonicalAttrVal: true,
	}
	// old generators occasionally produce odd encodings, be lenient on read
	doc.ReadSettings = etree.ReadSettings{
		CharsetReader: charset.NewReaderLabel,
		Permissive:    true,
	}
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, err
	}
	return doc, nil
}

// Path returns the source file the document was opened from.
func (d *Document) Path() string {
	return d.path
}

// Stories returns parsed story parts in scan order.
func (d *Document) Stories() []*Story {
	return d.stories
}

// Fields scans every story once and aggregates discovered content controls
// by name. Controls without alias or tag have no addressable name and are
// skipped. Occurrences of one name reporting different control types fail
// the scan.
func (d *Document) Fields(log *zap.Logger) (field.Index, error) {
	ix := make(field.Index)
	for _, story := range d.stories {
		for _, sdt := range story.doc.FindElements("//w:sdt") {
			ctl := newControl(sdt)
			if ctl == nil {
				log.Debug("Skipping unnamed content control", zap.String("story", story.Name))
				continue
			}
			if err := ix.Add(ctl.name, ctl.typ, ctl); err != nil {
				return nil, err
			}
			log.Debug("Found content control",
				zap.String("story", story.Name), zap.String("name", ctl.name), zap.Stringer("type", ctl.typ))
		}
	}
	return ix, nil
}

// Save serializes modified stories and writes the whole package to path,
// preserving the original part order. The destination must not be the file
// the document was opened from.
func (d *Document) Save(path string) error {
	for _, story := range d.stories {
		data, err := story.doc.WriteToBytes()
		if err != nil {
			return fmt.Errorf("unable to serialize %q: %w", story.Name, err)
		}
		d.parts[story.Name] = data
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create output file: %w", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, name := range d.names {
		w, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate})
		if err != nil {
			return fmt.Errorf("unable to write package part %q: %w", name, err)
		}
		if _, err := io.Copy(w, bytes.NewReader(d.parts[name])); err != nil {
			return fmt.Errorf("unable to write package part %q: %w", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("unable to close output package: %w", err)
	}
	return f.Close()
}
