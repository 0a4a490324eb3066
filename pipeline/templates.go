package pipeline

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	sprig "github.com/go-task/slim-sprig/v3"

	"fms/config"
	"fms/doc"
)

// Values holds the variables we make available for template expansion.
type Values struct {
	Context    string
	Title      string
	Language   string
	Date       string
	SourceFile string
	Sections   []string
}

func buildSections(d *doc.Document) []string {
	var kinds []string
	doc.Walk(d, func(n *doc.Node, _ int) bool {
		if n.Kind == doc.KindListOf {
			kinds = append(kinds, n.List.String())
		}
		return true
	})
	return kinds
}

func expandTemplate(d *doc.Document, name config.TemplateFieldName, field string) (string, error) {
	tmpl, err := template.New(string(name)).Funcs(sprig.FuncMap()).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	values := Values{
		Context:    string(name),
		Title:      d.Title,
		Language:   d.Lang,
		Date:       time.Now().Format("2006-01-02"),
		SourceFile: strings.TrimSuffix(filepath.Base(d.SrcName), filepath.Ext(d.SrcName)),
		Sections:   buildSections(d),
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}
