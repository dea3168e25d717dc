package site

import (
	"html/template"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/sgtmarmite/wtfcesko/pkg/errors"
	"github.com/sgtmarmite/wtfcesko/pkg/registry"
)

// Page defaults.
const (
	DefaultTitle      = "WTF Česko"
	DefaultLang       = "cs"
	DefaultChartJSURL = "https://cdn.jsdelivr.net/npm/chart.js@4.4.1/dist/chart.umd.min.js"
)

// Page is the data the index template renders.
type Page struct {
	Lang        string
	Title       string
	Description string
	Canonical   string
	Version     string
	Built       string
	ChartJS     string
	Script      string
	Stylesheet  string
	Acts        []ActView
}

// ActView is one act divider followed by its charts.
type ActView struct {
	ID     string
	Number int
	Title  string
	Lead   string
	Charts []ChartView
}

// ChartView is one chart figure.
type ChartView struct {
	Key    string
	Canvas string
	Title  string
	Source string
	Shape  registry.Shape
}

// Options configure the rendered page.
type Options struct {
	Title       string
	Description string
	SiteURL     string // e.g. https://sgtmarmite.github.io
	BasePath    string // e.g. /wtfcesko
	ChartJSURL  string
	Breakpoint  int
	Version     string
	Now         func() time.Time
}

func (o *Options) setDefaults() {
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.ChartJSURL == "" {
		o.ChartJSURL = DefaultChartJSURL
	}
	if o.Version == "" {
		o.Version = "dev"
	}
	if o.Now == nil {
		o.Now = time.Now
	}
}

// canonical joins the site URL and base path into the page's public URL.
func (o Options) canonical() string {
	if o.SiteURL == "" {
		return ""
	}
	return strings.TrimRight(o.SiteURL, "/") + strings.TrimRight(o.BasePath, "/") + "/"
}

// NewPage lays out the registry's acts and charts. script and stylesheet
// are the bundled assets the page links to.
func NewPage(reg *registry.Registry, opts Options, script, stylesheet Asset) Page {
	opts.setDefaults()
	p := Page{
		Lang:        DefaultLang,
		Title:       opts.Title,
		Description: opts.Description,
		Canonical:   opts.canonical(),
		Version:     opts.Version,
		Built:       opts.Now().Format("2. 1. 2006"),
		ChartJS:     opts.ChartJSURL,
		Script:      script.Path(),
		Stylesheet:  stylesheet.Path(),
	}
	for _, a := range reg.Acts() {
		av := ActView{ID: a.ID, Number: a.Number, Title: a.Title, Lead: a.Lead}
		for _, key := range a.Keys {
			e, ok := reg.Get(key)
			if !ok {
				continue
			}
			av.Charts = append(av.Charts, ChartView{
				Key:    e.Key,
				Canvas: e.Canvas(),
				Title:  e.Title,
				Source: e.Source,
				Shape:  e.Shape,
			})
		}
		p.Acts = append(p.Acts, av)
	}
	return p
}

var (
	indexOnce sync.Once
	indexTmpl *template.Template
	indexErr  error
)

func indexTemplate() (*template.Template, error) {
	indexOnce.Do(func() {
		indexTmpl, indexErr = template.ParseFS(web, "web/index.html.tmpl")
	})
	return indexTmpl, indexErr
}

// Render writes the HTML page to w.
func Render(w io.Writer, p Page) error {
	t, err := indexTemplate()
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "parse page template")
	}
	if err := t.Execute(w, p); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "render page")
	}
	return nil
}
