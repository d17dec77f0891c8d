package fill

import (
	"bytes"
	"fmt"
	"text/template"
	"time"

	sprig "github.com/go-task/slim-sprig/v3"

	"docfill/config"
)

// Values is a struct that holds variables we make available for template expansion
type Values struct {
	Context string
	Name    string // source file base name without extension
	Ext     string // output extension including the dot
	Ref     string // reference id of this fill run
	Date    string // fill date, YYYY-MM-DD
}

func expandTemplate(name config.TemplateFieldName, field string, values Values) (string, error) {
	funcMap := sprig.FuncMap()

	tmpl, err := template.New(string(name)).Funcs(funcMap).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	values.Context = string(name)
	if values.Date == "" {
		values.Date = time.Now().Format("2006-01-02")
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}
