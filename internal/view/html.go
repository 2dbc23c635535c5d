package view

import (
	"embed"
	"html/template"
	"io"
	"time"

	"tripsearch/internal/services"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// PageData feeds page.html and results.html.
type PageData struct {
	Heading       string
	SubHeading    string
	Placeholder   string
	ReadMore      string
	TagsLabel     string
	TagsConnector string
	CopiedTooltip string

	Query          string
	Cards          []TripCard
	Loaded         bool
	TooltipDelayMS int64
}

// NewPageData builds the template data for a state snapshot.
func NewPageData(st services.SearchState, tooltipDelay time.Duration) PageData {
	return PageData{
		Heading:        Heading,
		SubHeading:     SubHeading,
		Placeholder:    Placeholder,
		ReadMore:       ReadMore,
		TagsLabel:      TagsLabel,
		TagsConnector:  TagsConnector,
		CopiedTooltip:  CopiedTooltip,
		Query:          st.Query,
		Cards:          BuildCards(st),
		Loaded:         st.Loaded,
		TooltipDelayMS: tooltipDelay.Milliseconds(),
	}
}

// RenderPage writes the full search page.
func RenderPage(w io.Writer, data PageData) error {
	return pageTemplates.ExecuteTemplate(w, "page.html", data)
}

// RenderResults writes only the result list fragment.
func RenderResults(w io.Writer, data PageData) error {
	return pageTemplates.ExecuteTemplate(w, "results", data)
}
