package models

import (
	"encoding/json"
	"testing"
)

func TestTripIDDecodesStringAndNumber(t *testing.T) {
	var resp TripSearchResponse
	body := `{"data":[{"eid":"a-1"},{"eid":42},{"eid":null},{}]}`
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := []TripID{"a-1", "42", "", ""}
	for i, w := range want {
		if resp.Data[i].ID != w {
			t.Fatalf("trip %d id = %q, want %q", i, resp.Data[i].ID, w)
		}
	}
}

func TestTripIDRejectsObjects(t *testing.T) {
	var trip Trip
	if err := json.Unmarshal([]byte(`{"eid":{"x":1}}`), &trip); err == nil {
		t.Fatalf("expected error for object eid")
	}
}

func TestTripPhotos(t *testing.T) {
	if (Trip{}).PrimaryPhoto() != "" || (Trip{}).Thumbnails() != nil {
		t.Fatalf("empty trip should have no photos")
	}
	trip := Trip{Photos: []string{"a"}}
	if trip.PrimaryPhoto() != "a" || trip.Thumbnails() != nil {
		t.Fatalf("single photo has no thumbnails")
	}
}
