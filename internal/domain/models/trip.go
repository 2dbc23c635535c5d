package models

import (
	"bytes"
	"encoding/json"
)

// TripID is the listing identifier ("eid" on the wire). The upstream service
// has emitted it both as a number and as a string, so both decode.
type TripID string

func (id *TripID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = TripID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = TripID(n.String())
	return nil
}

func (id TripID) String() string { return string(id) }

// Trip is one travel listing returned by the search endpoint.
type Trip struct {
	ID          TripID   `json:"eid"`
	Title       string   `json:"title"`
	URL         string   `json:"url"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Photos      []string `json:"photos"`
}

// PrimaryPhoto returns the first photo or "".
func (t Trip) PrimaryPhoto() string {
	if len(t.Photos) == 0 {
		return ""
	}
	return t.Photos[0]
}

// Thumbnails returns every photo after the primary one.
func (t Trip) Thumbnails() []string {
	if len(t.Photos) < 2 {
		return nil
	}
	return t.Photos[1:]
}

// TripSearchResponse is the envelope of GET /trips.
type TripSearchResponse struct {
	Data []Trip `json:"data"`
}
