package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	intconfig "tripsearch/internal/config"
	"tripsearch/internal/domain"
	"tripsearch/internal/domain/models"
	"tripsearch/internal/utils"
)

// ErrSuperseded is returned by Search when a newer search was issued before
// the response arrived. The stale response is discarded.
var ErrSuperseded = errors.New("search superseded by a newer query")

// TripSearcher fetches listings for a keyword query.
type TripSearcher interface {
	Search(ctx context.Context, keywords string) ([]models.Trip, error)
}

// Clipboard receives copied links.
type Clipboard interface {
	WriteText(text string) error
}

// Timer is the part of *time.Timer the controller needs.
type Timer interface {
	Stop() bool
}

// SearchState is a snapshot of the controller state used for rendering.
type SearchState struct {
	Query     string
	Trips     []models.Trip
	TooltipID models.TripID
	// Loaded is false until the first successful fetch.
	Loaded bool
}

// SearchController holds the query text, the last result list and the
// copy-link tooltip, and drives fetches against a TripSearcher.
//
// Every Search stamps a sequence number and cancels the fetch before it, so
// a slow response for an older query can never overwrite a newer result.
// A failed fetch leaves the held result list untouched.
type SearchController struct {
	Repo         TripSearcher
	Clipboard    Clipboard
	TooltipDelay time.Duration
	RequestID    string

	// AfterFunc schedules the tooltip hide; defaults to time.AfterFunc.
	AfterFunc func(time.Duration, func()) Timer
	// OnChange, when set, receives a snapshot after every state change.
	// It is called without the controller lock held.
	OnChange func(SearchState)

	mu     sync.Mutex
	query  string
	trips  []models.Trip
	loaded bool

	issued uint64
	cancel context.CancelFunc

	tooltipID  models.TripID
	tooltipSeq uint64
	timer      Timer
}

func NewSearchController(repo TripSearcher, clipboard Clipboard, tooltipDelay time.Duration) *SearchController {
	return &SearchController{
		Repo:         repo,
		Clipboard:    clipboard,
		TooltipDelay: tooltipDelay,
	}
}

// AppendTag returns the query after clicking tag: the tag alone when prior is
// empty, otherwise prior and tag joined by one space.
func AppendTag(prior, tag string) string {
	return domain.Keywords(prior).WithTag(tag).String()
}

// Mount fetches the unfiltered listing.
func (s *SearchController) Mount(ctx context.Context) error {
	return s.Search(ctx, "")
}

// HandleInput is the keystroke path: the text becomes the query and is searched.
func (s *SearchController) HandleInput(ctx context.Context, text string) error {
	s.SetQuery(text)
	return s.Search(ctx, text)
}

// HandleTagClick appends tag to the held query and searches the result.
func (s *SearchController) HandleTagClick(ctx context.Context, tag string) error {
	s.mu.Lock()
	next := AppendTag(s.query, tag)
	s.query = next
	state := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(state)

	return s.Search(ctx, next)
}

// SetQuery replaces the held query text without fetching.
func (s *SearchController) SetQuery(text string) {
	s.mu.Lock()
	s.query = text
	state := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(state)
}

// Search fetches trips for query. Only the response to the most recently
// issued search replaces the result list.
func (s *SearchController) Search(ctx context.Context, query string) error {
	if s.Repo == nil {
		return domain.InternalError{Msg: "search controller has no trips repository"}
	}

	fetchCtx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	s.issued++
	seq := s.issued
	if s.cancel != nil {
		s.cancel()
	}
	s.cancel = cancel
	s.mu.Unlock()

	trips, err := s.Repo.Search(fetchCtx, query)
	cancel()

	s.mu.Lock()
	if seq != s.issued {
		s.mu.Unlock()
		utils.LogEvent(s.RequestID, "search", "drop_stale", fmt.Sprintf("seq=%d query=%q", seq, query))
		return ErrSuperseded
	}
	s.cancel = nil
	if err != nil {
		s.mu.Unlock()
		utils.LogError(s.RequestID, "search", "fetch_trips", err)
		return err
	}
	if trips == nil {
		trips = []models.Trip{}
	}
	s.trips = trips
	s.loaded = true
	state := s.snapshotLocked()
	s.mu.Unlock()

	utils.LogEvent(s.RequestID, "search", "fetch_trips", fmt.Sprintf("query=%q results=%d", query, len(trips)))
	s.notify(state)
	return nil
}

// CopyLink writes url to the clipboard and shows the tooltip for id until
// TooltipDelay passes. A newer copy replaces the tooltip and stops the older
// timer, so a late timer never hides a tooltip it did not schedule.
func (s *SearchController) CopyLink(url string, id models.TripID) error {
	if s.Clipboard == nil {
		return domain.InternalError{Msg: "no clipboard available"}
	}
	if err := s.Clipboard.WriteText(url); err != nil {
		utils.LogError(s.RequestID, "search", "copy_link", err)
		return err
	}

	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.tooltipSeq++
	seq := s.tooltipSeq
	s.tooltipID = id
	s.timer = s.afterFunc()(s.tooltipDelay(), func() { s.hideTooltip(seq) })
	state := s.snapshotLocked()
	s.mu.Unlock()

	utils.LogEvent(s.RequestID, "search", "copy_link", fmt.Sprintf("trip_id=%s", id))
	s.notify(state)
	return nil
}

// Unmount cancels the in-flight fetch and the pending tooltip timer.
func (s *SearchController) Unmount() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.issued++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.tooltipSeq++
	s.mu.Unlock()
}

// State returns a copy of the current state.
func (s *SearchController) State() SearchState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *SearchController) hideTooltip(seq uint64) {
	s.mu.Lock()
	if seq != s.tooltipSeq {
		s.mu.Unlock()
		return
	}
	s.tooltipID = ""
	s.timer = nil
	state := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(state)
}

func (s *SearchController) snapshotLocked() SearchState {
	trips := make([]models.Trip, len(s.trips))
	copy(trips, s.trips)
	return SearchState{
		Query:     s.query,
		Trips:     trips,
		TooltipID: s.tooltipID,
		Loaded:    s.loaded,
	}
}

func (s *SearchController) notify(state SearchState) {
	if s.OnChange != nil {
		s.OnChange(state)
	}
}

func (s *SearchController) tooltipDelay() time.Duration {
	if s.TooltipDelay > 0 {
		return s.TooltipDelay
	}
	return intconfig.DefaultTooltipDelay
}

func (s *SearchController) afterFunc() func(time.Duration, func()) Timer {
	if s.AfterFunc != nil {
		return s.AfterFunc
	}
	return func(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }
}
