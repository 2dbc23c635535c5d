package utils

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncateDescriptionShortUnchanged(t *testing.T) {
	for _, s := range []string{"", "ทะเลสวย", strings.Repeat("a", 100)} {
		if got := TruncateDescription(s); got != s {
			t.Fatalf("expected %q unchanged, got %q", s, got)
		}
	}
}

func TestTruncateDescriptionLong(t *testing.T) {
	s := strings.Repeat("a", 101)
	got := TruncateDescription(s)
	if got != strings.Repeat("a", 100)+"..." {
		t.Fatalf("unexpected truncation: %q", got)
	}
}

func TestTruncateDescriptionThai(t *testing.T) {
	s := strings.Repeat("ก", 150)
	got := TruncateDescription(s)
	if !utf8.ValidString(got) {
		t.Fatalf("truncation produced invalid utf-8")
	}
	if n := utf8.RuneCountInString(strings.TrimSuffix(got, Ellipsis)); n != 100 {
		t.Fatalf("expected 100 runes before ellipsis, got %d", n)
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("missing ellipsis: %q", got)
	}
}

func TestSafeFilenamePart(t *testing.T) {
	if got := SafeFilenamePart("  "); got != "all" {
		t.Fatalf("blank should map to all, got %q", got)
	}
	if got := SafeFilenamePart("sea/beach: 2"); got != "sea_beach__2" {
		t.Fatalf("unexpected filename part %q", got)
	}
}
