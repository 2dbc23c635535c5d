package services

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"tripsearch/internal/domain/models"
)

func TestExportServiceExportTrips(t *testing.T) {
	repo := &fakeRepo{results: map[string][]models.Trip{
		"sea beach": {
			{ID: "1", Title: "เกาะสมุย", URL: "https://trips.test/1", Description: strings.Repeat("x", 150), Tags: []string{"sea", "beach"}},
			{ID: "2", Title: "Krabi", URL: "https://trips.test/2"},
		},
	}}
	svc := ExportService{Repo: repo, Now: func() time.Time { return time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC) }}

	pdf, filename, err := svc.ExportTrips(context.Background(), "sea beach")
	if err != nil {
		t.Fatalf("ExportTrips returned error: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output is not a PDF")
	}
	if filename != "TRIPS_sea_beach.pdf" {
		t.Fatalf("unexpected filename %q", filename)
	}
	if calls := repo.calls(); len(calls) != 1 || calls[0] != "sea beach" {
		t.Fatalf("expected one search for %q, got %v", "sea beach", calls)
	}
}

func TestExportServiceEmptyQuery(t *testing.T) {
	pdf, filename, err := ExportService{Repo: &fakeRepo{}}.ExportTrips(context.Background(), "")
	if err != nil {
		t.Fatalf("ExportTrips returned error: %v", err)
	}
	if len(pdf) == 0 || filename != "TRIPS_all.pdf" {
		t.Fatalf("unexpected output: %d bytes, %q", len(pdf), filename)
	}
}

func TestExportServiceUpstreamError(t *testing.T) {
	repo := &fakeRepo{err: errors.New("down")}
	if _, _, err := (ExportService{Repo: repo}).ExportTrips(context.Background(), "x"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestLatin1(t *testing.T) {
	if got := latin1("Café เกาะ"); got != "Caf\xe9 ????" {
		t.Fatalf("latin1 = %q", got)
	}
}
