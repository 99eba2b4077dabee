package render

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"github.com/paramveer-prakash/career-sub001/internal/domain"
	"github.com/paramveer-prakash/career-sub001/internal/model"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

// Builtin lists every shipped template in listing order. Each key has a
// templates/<key>.gohtml file defining "style" and "body-class".
var Builtin = []Template{
	{Key: "modern", Name: "Modern", Description: "Clean single column with an accent header bar."},
	{Key: "classic", Name: "Classic", Description: "Traditional serif layout with ruled section headings."},
	{Key: "minimal", Name: "Minimal", Description: "Plenty of white space and understated typography."},
	{Key: "professional", Name: "Professional", Description: "Corporate layout with a shaded header block."},
	{Key: "creative", Name: "Creative", Description: "Two-column layout with a coloured sidebar."},
	{Key: "minimal-dark", Name: "Minimal Dark", Description: "Minimal layout on a dark background."},
	{Key: "executive", Name: "Executive", Description: "Bold headings and generous spacing for senior profiles."},
	{Key: "colorful", Name: "Colorful", Description: "Vibrant section colours and tag-style skills."},
}

// PDFKeys are the templates known to paginate correctly when printed.
var PDFKeys = []string{"modern", "classic", "minimal"}

var funcs = template.FuncMap{
	"join": strings.Join,
}

// htmlRenderer executes one parsed template set against the shared View.
type htmlRenderer struct {
	key string
	tpl *template.Template
}

// NewHTMLRenderer parses the shared layout and sections together with the
// template file for key.
func NewHTMLRenderer(key string) (Renderer, error) {
	tpl, err := template.New(key).Funcs(funcs).ParseFS(templateFS,
		"templates/layout.gohtml",
		"templates/sections.gohtml",
		"templates/"+key+".gohtml",
	)
	if err != nil {
		return nil, fmt.Errorf("parse template %q: %w", key, err)
	}
	return &htmlRenderer{key: key, tpl: tpl}, nil
}

func (h *htmlRenderer) Render(r *model.Resume) (string, error) {
	if r == nil {
		return "", &domain.RenderError{Template: h.key, Err: errors.New("nil resume")}
	}
	var buf bytes.Buffer
	if err := h.tpl.ExecuteTemplate(&buf, "document", Project(r)); err != nil {
		return "", &domain.RenderError{Template: h.key, Err: err}
	}
	return buf.String(), nil
}

// NewBuiltinRegistry builds the registry of every shipped template.
func NewBuiltinRegistry() (*Registry, error) {
	entries := make([]Entry, 0, len(Builtin))
	for _, t := range Builtin {
		r, err := NewHTMLRenderer(t.Key)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Template: t, Renderer: r})
	}
	return NewRegistry(entries...)
}
