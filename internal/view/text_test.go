package view

import (
	"bytes"
	"strings"
	"testing"

	"tripsearch/internal/domain/models"
	"tripsearch/internal/services"

	"github.com/fatih/color"
)

func TestRenderText(t *testing.T) {
	color.NoColor = true
	st := services.SearchState{
		Query:     "sea",
		Loaded:    true,
		TooltipID: "2",
		Trips: []models.Trip{
			{ID: "1", Title: "Krabi", URL: "https://trips.test/1", Description: strings.Repeat("x", 120), Tags: []string{"beach", "food"}},
			{ID: "2", Title: "เกาะสมุย", URL: "https://trips.test/2"},
		},
	}
	var buf bytes.Buffer
	if err := RenderText(&buf, st); err != nil {
		t.Fatalf("RenderText error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"[sea]",
		" 1. Krabi",
		" 2. เกาะสมุย",
		"https://trips.test/1",
		strings.Repeat("x", 100) + "...",
		TagsLabel + " beach " + TagsConnector + " food",
		CopiedTooltip,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Count(out, CopiedTooltip) != 1 {
		t.Fatalf("tooltip should appear once:\n%s", out)
	}
}

func TestRenderTextEmpty(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	if err := RenderText(&buf, services.SearchState{Loaded: true}); err != nil {
		t.Fatalf("RenderText error: %v", err)
	}
	if !strings.Contains(buf.String(), "(no trips)") {
		t.Fatalf("expected empty marker, got %q", buf.String())
	}
}
