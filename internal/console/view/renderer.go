package view

import (
	"embed"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"mallconsole/internal/console"
	"mallconsole/internal/domain/entity"
	"mallconsole/internal/errors"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	layoutFile     = "templates/layout.html"
	layoutTemplate = "layout"
)

// NavItem is one entry of the side navigation.
type NavItem struct {
	Page   entity.Page
	Label  string
	Href   string
	Active bool
}

// Layout carries what every page shows around its body.
type Layout struct {
	Title         string
	Active        entity.Page
	Authenticated bool
	Email         string
	IsAdmin       bool
	Nav           []NavItem
	Notice        string
	CSRF          string
}

// Screen is the data handed to a page template.
type Screen struct {
	Layout
	Body any
}

// Navigation lists the pages the role may open. Admin-only pages are left out for users.
func Navigation(snap console.Snapshot) []NavItem {
	items := make([]NavItem, 0, len(entity.Pages()))
	for _, page := range entity.Pages() {
		if page.AdminOnly() && !snap.IsAdmin() {
			continue
		}
		items = append(items, NavItem{
			Page:   page,
			Label:  pageLabel(page),
			Href:   PageHref(page),
			Active: page == snap.Page,
		})
	}

	return items
}

// NewLayout builds the frame of a signed-in page.
func NewLayout(snap console.Snapshot, notice, csrf string) Layout {
	l := Layout{
		Title:         pageLabel(snap.Page),
		Active:        snap.Page,
		Authenticated: snap.Identity != nil,
		IsAdmin:       snap.IsAdmin(),
		Nav:           Navigation(snap),
		Notice:        notice,
		CSRF:          csrf,
	}
	if snap.Identity != nil {
		l.Email = snap.Identity.Email
	}

	return l
}

// PageHref returns the path that opens page.
func PageHref(page entity.Page) string {
	if page == entity.PageDashboard {
		return "/"
	}

	return "/pages/" + string(page)
}

func pageLabel(page entity.Page) string {
	s := string(page)
	if s == "" {
		return ""
	}

	return strings.ToUpper(s[:1]) + s[1:]
}

// Renderer executes the embedded page templates. It implements echo.Renderer.
type Renderer struct {
	pages map[string]*template.Template
}

var _ echo.Renderer = (*Renderer)(nil)

// NewRenderer parses every page template against the shared layout.
func NewRenderer() (*Renderer, error) {
	funcs := template.FuncMap{
		"join": strings.Join,
	}

	base, err := template.New(path.Base(layoutFile)).Funcs(funcs).ParseFS(templateFS, layoutFile)
	if err != nil {
		return nil, errors.Wrap(err, "parse layout")
	}

	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.WithStack(err)
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(files))}
	for _, file := range files {
		if file == layoutFile {
			continue
		}
		page, err := base.Clone()
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if _, err := page.ParseFS(templateFS, file); err != nil {
			return nil, errors.Wrapf(err, "parse %s", file)
		}
		r.pages[strings.TrimSuffix(path.Base(file), ".html")] = page
	}

	return r, nil
}

// Render writes the named page. data is usually a Screen.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	page, ok := r.pages[name]
	if !ok {
		return errors.Errorf("unknown view %q", name)
	}

	return errors.WithStack(page.ExecuteTemplate(w, layoutTemplate, data))
}
