package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templates embed.FS

var funcs = template.FuncMap{
	"cell": cell,
}

// cell escapes a value so that it stays within a single table cell.
func cell(v any) string {
	s := fmt.Sprint(v)
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.Join(strings.Fields(s), " ")
}

// RenderView renders all the records as a markdown table.
func RenderView(inv *Inventory) string {
	return renderTemplate("view", "templates/view.md", inv)
}

// RenderValue renders the value per item as a markdown table.
func RenderValue(inv *Inventory) string {
	return renderTemplate("value", "templates/value.md", inv)
}

// renderTemplate renders an embedded template file.
func renderTemplate(templateName, file string, data any) string {
	content, err := fs.ReadFile(templates, file)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", file, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", file, err)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
