package rewrite

import (
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/jsamuelsen11/brandgate/internal/domain/diagnostic"
)

// ErrReplacementFailed wraps any error or panic raised while producing a
// replacement message.
var ErrReplacementFailed = errors.New("replacement failed")

// Replacement produces the rewritten message text for a matched diagnostic.
// Implementations must be deterministic: the same diagnostic always yields
// the same text.
type Replacement interface {
	Replace(d diagnostic.Diagnostic) (string, error)
}

// Static is a fixed replacement text.
type Static string

// Replace returns the fixed text.
func (s Static) Replace(diagnostic.Diagnostic) (string, error) {
	return string(s), nil
}

// ReplaceFunc adapts a function to the Replacement interface.
type ReplaceFunc func(d diagnostic.Diagnostic) (string, error)

// Replace calls f(d).
func (f ReplaceFunc) Replace(d diagnostic.Diagnostic) (string, error) {
	return f(d)
}

// TemplateData is the value a Template replacement is rendered with.
type TemplateData struct {
	Code      int
	Message   string
	File      string
	Severity  string
	Line      int
	Character int
}

// Template renders a text/template over the matched diagnostic. Only the
// repeatable subset of the sprig function library is available, so output
// stays deterministic.
type Template struct {
	tmpl *template.Template
	text string
}

// NewTemplate parses text as a replacement template. Lines and characters in
// TemplateData are one-based for display.
func NewTemplate(name, text string) (*Template, error) {
	tmpl, err := template.New(name).
		Option("missingkey=error").
		Funcs(sprig.HermeticTxtFuncMap()).
		Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing replacement template %q: %w", name, err)
	}
	return &Template{tmpl: tmpl, text: text}, nil
}

// Replace executes the template.
func (t *Template) Replace(d diagnostic.Diagnostic) (string, error) {
	text, _ := d.Message.PlainText()
	data := TemplateData{
		Code:      d.Code,
		Message:   text,
		File:      d.File,
		Severity:  d.Severity.String(),
		Line:      d.Range.Start.Line + 1,
		Character: d.Range.Start.Character + 1,
	}

	var b strings.Builder
	if err := t.tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("executing replacement template %q: %w", t.tmpl.Name(), err)
	}
	return b.String(), nil
}

// Replacement kinds reported by Describe.
const (
	KindStatic   = "static"
	KindTemplate = "template"
	KindFunc     = "func"
)

// Describe reports the kind of a replacement and its source text. Function
// replacements have no source text.
func Describe(r Replacement) (kind, text string) {
	switch v := r.(type) {
	case Static:
		return KindStatic, string(v)
	case *Template:
		return KindTemplate, v.text
	default:
		return KindFunc, ""
	}
}
