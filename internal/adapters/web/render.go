package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"

	"github.com/Anatolt/ru-cities-n-poi/internal/domain"
)

// Renderer turns a resolved route into an HTML page. All content comes
// from the resolved entity chain; nothing here touches the dataset.
type Renderer struct {
	tpl *template.Template
	md  goldmark.Markdown
	pol *bluemonday.Policy
}

// merchCaption is the fixed generated caption appended to merch items
// that carry no note of their own.
const merchCaption = "souvenir"

// siteTitle is the document title on the home view; deeper views prefix
// the entity name.
const siteTitle = "Regions & Points of Interest"

func New() (*Renderer, error) {
	tpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}
	return &Renderer{
		tpl: tpl,
		md:  goldmark.New(),
		pol: bluemonday.UGCPolicy(),
	}, nil
}

// crumb is one step of the breadcrumb trail; Href is "" for the last one.
type crumb struct {
	Name string
	Href string
}

type listItem struct {
	Name        string
	Href        string
	Description string
}

type page struct {
	Title       string
	Heading     string
	Crumbs      []crumb
	Description template.HTML
	Items       []listItem
	Merch       []string
	MerchNote   string
	NotFound    bool
	ErrMsg      string
}

// Href joins canonical slugs into an internal link. Slugs arrive already
// percent-encoded (or explicit and opaque), so they are joined verbatim.
func Href(slugs ...string) string {
	return "/region/" + strings.Join(slugs, "/")
}

// Page writes the HTML for a resolved route.
func (rn *Renderer) Page(w io.Writer, rt domain.Route) error {
	return rn.tpl.Execute(w, rn.pageFor(rt))
}

func (rn *Renderer) pageFor(rt domain.Route) page {
	switch rt.Kind {
	case domain.RouteHome:
		p := page{Title: siteTitle, Heading: siteTitle}
		for _, r := range rt.Home.Regions {
			p.Items = append(p.Items, listItem{Name: r.Name, Href: Href(r.Slug), Description: r.Description})
		}
		return p

	case domain.RouteRegion:
		v := rt.Region
		p := page{
			Title:       v.Region.Name + " — " + siteTitle,
			Heading:     v.Region.Name,
			Crumbs:      []crumb{{Name: "Home", Href: "/"}, {Name: v.Region.Name}},
			Description: rn.markdown(v.Region.Description),
		}
		for _, c := range v.Cities {
			p.Items = append(p.Items, listItem{Name: c.Name, Href: Href(v.Region.Slug, c.Slug), Description: c.Description})
		}
		return p

	case domain.RouteCity:
		v := rt.City
		p := page{
			Title:   v.City.Name + " — " + siteTitle,
			Heading: v.City.Name,
			Crumbs: []crumb{
				{Name: "Home", Href: "/"},
				{Name: v.Region.Name, Href: Href(v.Region.Slug)},
				{Name: v.City.Name},
			},
			Description: rn.markdown(v.City.Description),
		}
		for _, a := range v.Attractions {
			p.Items = append(p.Items, listItem{Name: a.Name, Href: Href(v.Region.Slug, v.City.Slug, a.Slug), Description: a.Description})
		}
		return p

	case domain.RouteAttraction:
		v := rt.Attraction
		p := page{
			Title:   v.Attraction.Name + " — " + siteTitle,
			Heading: v.Attraction.Name,
			Crumbs: []crumb{
				{Name: "Home", Href: "/"},
				{Name: v.Region.Name, Href: Href(v.Region.Slug)},
				{Name: v.City.Name, Href: Href(v.Region.Slug, v.City.Slug)},
				{Name: v.Attraction.Name},
			},
			Description: rn.markdown(v.Attraction.Description),
			MerchNote:   v.MerchNote,
		}
		for _, m := range v.Merch {
			p.Merch = append(p.Merch, MerchLine(m))
		}
		return p

	case domain.RouteError:
		return page{
			Title:   "Unavailable — " + siteTitle,
			Heading: "The guide is unavailable",
			ErrMsg:  rt.Err,
		}

	default: // RouteNotFound
		return page{
			Title:    "Not found — " + siteTitle,
			Heading:  "Not found",
			NotFound: true,
		}
	}
}

// MerchLine combines a merch item name with its note, or with the fixed
// generated caption when the item has none.
func MerchLine(m domain.MerchItem) string {
	note := m.Note
	if note == "" {
		note = merchCaption
	}
	return m.Name + " (" + note + ")"
}

// markdown renders a description to sanitized HTML. Render failure
// degrades to the escaped plain text rather than surfacing anywhere.
func (rn *Renderer) markdown(src string) template.HTML {
	if src == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := rn.md.Convert([]byte(src), &buf); err != nil {
		return template.HTML("<p>" + template.HTMLEscapeString(src) + "</p>")
	}
	return template.HTML(rn.pol.SanitizeBytes(buf.Bytes()))
}

const pageTemplate = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
{{if .Crumbs}}<nav class="crumbs">{{range $i, $c := .Crumbs}}{{if $i}} / {{end}}{{if $c.Href}}<a href="{{$c.Href}}">{{$c.Name}}</a>{{else}}<span>{{$c.Name}}</span>{{end}}{{end}}</nav>{{end}}
<h1>{{.Heading}}</h1>
{{if .ErrMsg}}<p class="error">{{.ErrMsg}}</p>{{end}}
{{if .NotFound}}<p class="not-found">Nothing lives at this address. <a href="/">Back to all regions</a>.</p>{{end}}
{{if .Description}}<div class="description">{{.Description}}</div>{{end}}
{{if .Items}}<ul class="entries">
{{range .Items}}<li><a href="{{.Href}}">{{.Name}}</a>{{if .Description}} <small>{{.Description}}</small>{{end}}</li>
{{end}}</ul>{{end}}
{{if .Merch}}<section class="merch"><h2>Merch</h2><ul>
{{range .Merch}}<li>{{.}}</li>
{{end}}</ul>{{if .MerchNote}}<p class="merch-note">{{.MerchNote}}</p>{{end}}</section>{{end}}
</body>
</html>
`
