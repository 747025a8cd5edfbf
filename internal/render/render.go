package render

import (
	"embed"
	"html/template"
	"io"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/jcdickinson/apidocs/internal/cas"
	"github.com/jcdickinson/apidocs/internal/docs"
	"github.com/jcdickinson/apidocs/internal/markdown"
)

//go:embed templates
var templates embed.FS

//go:embed templates/main.css
var css string

var pageTemplate = template.Must(template.New("").ParseFS(templates, "templates/*.tmpl")).Lookup("page.tmpl")

const (
	LandingPlaceholder = "Select a tab to start"
	TabPlaceholder     = "Select item/category to start"
)

// Renderer turns navigation keys into pages over an immutable project.
// It is safe for concurrent use.
type Renderer struct {
	project docs.Project
	title   string
	store   *cas.Store

	mu    sync.Mutex
	memo  map[string]template.HTML
	group singleflight.Group
}

// New returns a renderer for project. store may be nil, in which case
// rendered markdown is only memoized in memory.
func New(project docs.Project, title string, store *cas.Store) *Renderer {
	return &Renderer{
		project: project,
		title:   title,
		store:   store,
		memo:    make(map[string]template.HTML),
	}
}

// Project returns the project being rendered.
func (r *Renderer) Project() docs.Project {
	return r.project
}

// Title returns the site title.
func (r *Renderer) Title() string {
	return r.title
}

// HeadTitle is the document title for a page reached through category.
func (r *Renderer) HeadTitle(category string) string {
	if category == "" {
		return r.title
	}
	return r.title + " : " + category
}

// Page is the view model handed to the page template.
type Page struct {
	HeadTitle   string
	SiteTitle   string
	CSS         template.CSS
	Tabs        []TabLink
	Tab         string
	Category    string
	Subcategory string
	Placeholder string
	Item        *ItemView
}

type TabLink struct {
	Name   string
	URL    string
	Active bool
}

// View builds the page for the given keys. The boolean is false when the
// keys address an item that doesn't exist; the page is still usable and
// renders the item view with every section empty.
//
// Tabs are not looked up: any tab without a category gets TabPlaceholder
// and reports true, whether or not the tab exists.
func (r *Renderer) View(tab, category, subcategory string) (*Page, bool) {
	page := &Page{
		HeadTitle:   r.HeadTitle(category),
		SiteTitle:   r.title,
		CSS:         template.CSS(css),
		Tab:         tab,
		Category:    category,
		Subcategory: subcategory,
	}
	for _, name := range r.project.Tabs() {
		page.Tabs = append(page.Tabs, TabLink{
			Name:   name,
			URL:    docs.DocURL(name, "", ""),
			Active: name == tab,
		})
	}

	switch {
	case tab == "":
		page.Placeholder = LandingPlaceholder
		return page, true
	case category == "":
		page.Placeholder = TabPlaceholder
		return page, true
	}

	it, ok := r.project.Select(tab, category, subcategory)
	if !ok {
		page.Item = &ItemView{}
		return page, false
	}
	page.Item = r.itemView(it, category)
	return page, true
}

// Render writes the page for the given keys to w. found mirrors View.
func (r *Renderer) Render(w io.Writer, tab, category, subcategory string) (found bool, err error) {
	page, found := r.View(tab, category, subcategory)
	return found, pageTemplate.Execute(w, page)
}

// HTML renders markdown, memoized by content hash in memory and in the
// CAS when one is configured.
func (r *Renderer) HTML(src string) template.HTML {
	if strings.TrimSpace(src) == "" {
		return ""
	}
	key := cas.Hash(src)

	r.mu.Lock()
	if h, ok := r.memo[key]; ok {
		r.mu.Unlock()
		return h
	}
	r.mu.Unlock()

	v, _, _ := r.group.Do(key, func() (any, error) {
		if r.store != nil {
			if out, err := r.store.Read(key); err == nil {
				return out, nil
			}
		}
		out := markdown.ToHTML(src)
		if r.store != nil {
			if err := r.store.Put(key, out); err != nil {
				slog.Warn("caching rendered markdown", "key", key, "error", err)
			}
		}
		return out, nil
	})
	h := template.HTML(v.(string))

	r.mu.Lock()
	r.memo[key] = h
	r.mu.Unlock()
	return h
}
