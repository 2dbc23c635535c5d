package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"tripsearch/internal/domain/models"
	"tripsearch/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// ExportService renders the result list for a query as a PDF handout.
type ExportService struct {
	Repo      TripSearcher
	RequestID string
	// FontPath points to a UTF-8 TrueType font. Without it the core
	// Helvetica font is used and characters outside Latin-1 become '?'.
	FontPath string
	Now      func() time.Time
}

const exportFontFamily = "tripsearch"

// ExportTrips searches query and returns the PDF bytes and a download filename.
func (s ExportService) ExportTrips(ctx context.Context, query string) ([]byte, string, error) {
	ctrl := NewSearchController(s.Repo, nil, 0)
	ctrl.RequestID = s.RequestID
	if err := ctrl.HandleInput(ctx, query); err != nil {
		return nil, "", err
	}
	st := ctrl.State()

	utils.LogEvent(s.RequestID, "export", "trips_pdf", fmt.Sprintf("query=%q results=%d", query, len(st.Trips)))
	return s.buildTripsPDF(st.Query, st.Trips)
}

func (s ExportService) buildTripsPDF(query string, trips []models.Trip) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Trips", true)

	family, text := "Helvetica", latin1
	if strings.TrimSpace(s.FontPath) != "" {
		pdf.AddUTF8Font(exportFontFamily, "", s.FontPath)
		pdf.AddUTF8Font(exportFontFamily, "B", s.FontPath)
		pdf.AddUTF8Font(exportFontFamily, "I", s.FontPath)
		family, text = exportFontFamily, func(v string) string { return v }
	}

	pdf.AddPage()
	pdf.SetFont(family, "B", 18)
	pdf.Cell(0, 10, "TRIPS")
	pdf.Ln(12)

	pdf.SetFont(family, "", 11)
	pdf.Cell(0, 6, text("Keywords  : "+utils.Safe(query, "-")))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Generated : "+s.now().Format("2006-01-02 15:04"))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Results   : %d", len(trips)))
	pdf.Ln(10)

	for i, t := range trips {
		pdf.SetFont(family, "B", 12)
		pdf.MultiCell(0, 6, text(fmt.Sprintf("%d) %s", i+1, utils.Safe(t.Title, "-"))), "", "", false)

		pdf.SetFont(family, "", 10)
		if t.URL != "" {
			pdf.SetTextColor(14, 165, 233)
			pdf.WriteLinkString(5, text(t.URL), t.URL)
			pdf.SetTextColor(0, 0, 0)
			pdf.Ln(6)
		}
		if d := utils.TruncateDescription(t.Description); d != "" {
			pdf.MultiCell(0, 5, text(d), "", "", false)
		}
		if len(t.Tags) > 0 {
			pdf.SetFont(family, "I", 9)
			pdf.MultiCell(0, 5, text("Tags: "+strings.Join(t.Tags, ", ")), "", "", false)
		}
		pdf.Ln(4)
	}

	if err := pdf.Error(); err != nil {
		return nil, "", err
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("TRIPS_%s.pdf", utils.SafeFilenamePart(query))
	return buf.Bytes(), filename, nil
}

func (s ExportService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// latin1 replaces characters the core PDF fonts cannot encode.
func latin1(v string) string {
	var b strings.Builder
	b.Grow(len(v))
	for _, r := range v {
		if r > 0xFF {
			b.WriteByte('?')
			continue
		}
		b.WriteByte(byte(r))
	}
	return b.String()
}
