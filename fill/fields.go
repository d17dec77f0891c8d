package fill

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"docfill/docx"
	"docfill/field"
	"docfill/state"
)

// Fields lists the content controls of a single document: name, type,
// current values and - for list controls - the selectable entries.
func Fields(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("fields")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input document has been specified")
	}
	src, err := filepath.Abs(src)
	if err != nil {
		return err
	}

	document, _, err := detectInput(src)
	if err != nil {
		return fmt.Errorf("unable to check file type: %w", err)
	}
	if !document {
		return fmt.Errorf("input was not recognized as Word document (%s)", src)
	}

	doc, err := docx.Open(src)
	if err != nil {
		return fmt.Errorf("unable to open document (%s): %w", src, err)
	}

	fields, err := doc.Fields(log)
	if err != nil {
		return fmt.Errorf("unable to index fields (%s): %w", src, err)
	}
	log.Debug("Fields indexed", zap.Int("count", len(fields)))

	return listFields(os.Stdout, fields)
}

func listFields(w io.Writer, fields field.Index) error {
	for _, name := range fields.Names() {
		f := fields[name]
		if _, err := fmt.Fprintf(w, "%s (%s)\n", name, f.Type); err != nil {
			return err
		}
		for i, value := range f.Values() {
			if _, err := fmt.Fprintf(w, "\t[%d] %q\n", i+1, value); err != nil {
				return err
			}
			entries := f.Targets[i].ListEntries()
			for j, entry := range entries {
				if _, err := fmt.Fprintf(w, "\t\t(%d) %s\n", j+1, entry); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
