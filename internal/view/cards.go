// Package view turns search state into the trip cards shown on the page and
// in the terminal.
package view

import (
	"fmt"
	"net/url"

	"tripsearch/internal/domain/models"
	"tripsearch/internal/services"
	"tripsearch/internal/utils"
)

const (
	Heading       = "เที่ยวไหนดี"
	SubHeading    = "ค้นหาที่เที่ยว"
	Placeholder   = "หาที่เที่ยวแล้วไปกัน..."
	ReadMore      = "อ่านต่อ"
	TagsLabel     = "หมวด"
	TagsConnector = "และ"
	CopiedTooltip = "📋 Link copied!"
)

// TagChip is one clickable tag. Query is what the search box holds after
// the click; Href reaches the same result without script.
type TagChip struct {
	Label string
	Query string
	Href  string
	// Last marks the final tag, which is preceded by TagsConnector.
	Last bool
}

type Thumbnail struct {
	Src string
	Alt string
}

// TripCard is the render model of one result row.
type TripCard struct {
	ID             models.TripID
	Title          string
	URL            string
	PrimaryPhoto   string
	Description    string
	Tags           []TagChip
	Thumbnails     []Thumbnail
	TooltipVisible bool
}

// SearchHref is the page URL for query.
func SearchHref(query string) string {
	if query == "" {
		return "/"
	}
	return "/?" + url.Values{"keywords": {query}}.Encode()
}

// BuildCards maps the held trips to cards, in the order received.
func BuildCards(st services.SearchState) []TripCard {
	cards := make([]TripCard, 0, len(st.Trips))
	for _, t := range st.Trips {
		cards = append(cards, buildCard(t, st))
	}
	return cards
}

func buildCard(t models.Trip, st services.SearchState) TripCard {
	card := TripCard{
		ID:             t.ID,
		Title:          t.Title,
		URL:            t.URL,
		PrimaryPhoto:   t.PrimaryPhoto(),
		Description:    utils.TruncateDescription(t.Description),
		TooltipVisible: st.TooltipID != "" && st.TooltipID == t.ID,
	}

	for i, tag := range t.Tags {
		q := services.AppendTag(st.Query, tag)
		card.Tags = append(card.Tags, TagChip{
			Label: tag,
			Query: q,
			Href:  SearchHref(q),
			Last:  i == len(t.Tags)-1,
		})
	}

	for i, p := range t.Thumbnails() {
		card.Thumbnails = append(card.Thumbnails, Thumbnail{Src: p, Alt: fmt.Sprintf("Photo %d", i+2)})
	}
	return card
}
