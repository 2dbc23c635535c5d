package view

import (
	"fmt"
	"io"
	"strings"

	"tripsearch/internal/services"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// titleWidth is the column the terminal list aligns tooltips to.
const titleWidth = 40

var (
	indexColor   = color.New(color.FgHiBlack)
	titleColor   = color.New(color.Bold)
	urlColor     = color.New(color.FgCyan, color.Underline)
	tagColor     = color.New(color.FgHiBlack, color.Underline)
	tooltipColor = color.New(color.FgWhite, color.BgBlue)
	queryColor   = color.New(color.FgHiCyan)
)

// RenderText writes the state as a numbered terminal list. Numbers start at 1
// and are what the interactive commands refer to.
func RenderText(w io.Writer, st services.SearchState) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", titleColor.Sprint(Heading), queryColor.Sprintf("[%s]", st.Query))
	cards := BuildCards(st)
	if len(cards) == 0 {
		if st.Loaded {
			b.WriteString("  (no trips)\n")
		}
		_, err := io.WriteString(w, b.String())
		return err
	}

	for i, c := range cards {
		title := runewidth.Truncate(c.Title, titleWidth, "…")
		title = runewidth.FillRight(title, titleWidth)
		fmt.Fprintf(&b, "%s %s", indexColor.Sprintf("%2d.", i+1), titleColor.Sprint(title))
		if c.TooltipVisible {
			fmt.Fprintf(&b, " %s", tooltipColor.Sprint(CopiedTooltip))
		}
		b.WriteString("\n")
		fmt.Fprintf(&b, "    %s\n", urlColor.Sprint(c.URL))
		if c.Description != "" {
			fmt.Fprintf(&b, "    %s\n", c.Description)
		}
		if len(c.Tags) > 0 {
			fmt.Fprintf(&b, "    %s %s\n", TagsLabel, joinTags(c.Tags))
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func joinTags(tags []TagChip) string {
	parts := make([]string, 0, len(tags)+1)
	for _, t := range tags {
		if t.Last {
			parts = append(parts, TagsConnector)
		}
		parts = append(parts, tagColor.Sprint(t.Label))
	}
	return strings.Join(parts, " ")
}
