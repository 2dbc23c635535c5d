package command

import (
	"bytes"
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"tripsearch/internal/repositories"
	"tripsearch/internal/services"
	"tripsearch/internal/view"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

type stubTimer struct{}

func (stubTimer) Stop() bool { return true }

func newUpstream(t *testing.T) (*httptest.Server, func() []string) {
	t.Helper()
	var mu sync.Mutex
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen = append(seen, r.URL.Query().Get("keywords"))
		mu.Unlock()
		_, _ = w.Write([]byte(`{"data":[{"eid":"1","title":"เกาะสมุย","url":"https://trips.test/samui","description":"ทะเลสวย","tags":["beach","island"]}]}`))
	}))
	t.Cleanup(srv.Close)
	return srv, func() []string {
		mu.Lock()
		defer mu.Unlock()
		return append([]string(nil), seen...)
	}
}

func TestRunInteractive(t *testing.T) {
	color.NoColor = true
	srv, seen := newUpstream(t)

	var out bytes.Buffer
	var delays []time.Duration
	ctrl := services.NewSearchController(repositories.TripsRepository{BaseURL: srv.URL}, &osc52Clipboard{w: &out}, 0)
	ctrl.AfterFunc = func(d time.Duration, f func()) services.Timer {
		delays = append(delays, d)
		return stubTimer{}
	}

	in := strings.NewReader("sea\n:tag beach\n:copy 1\n:open 1\n:copy 9\n:bogus\n:quit\nnever\n")
	require.NoError(t, runInteractive(context.Background(), in, &out, ctrl))

	require.Equal(t, []string{"", "sea", "sea beach"}, seen())
	require.Equal(t, []time.Duration{2 * time.Second}, delays)

	got := out.String()
	osc := "\x1b]52;c;" + base64.StdEncoding.EncodeToString([]byte("https://trips.test/samui")) + "\a"
	require.Contains(t, got, osc)
	require.Contains(t, got, view.CopiedTooltip)
	require.Contains(t, got, "[sea beach]")
	require.Contains(t, got, "trip \"9\" not found")
	require.Contains(t, got, `unknown command "bogus"`)
	require.Equal(t, "sea beach", ctrl.State().Query)
}

func TestSessionRerendersWhenTooltipHides(t *testing.T) {
	color.NoColor = true
	srv, _ := newUpstream(t)

	var out bytes.Buffer
	ctrl := services.NewSearchController(repositories.TripsRepository{BaseURL: srv.URL}, nil, 0)
	require.NoError(t, ctrl.Mount(context.Background()))
	s := &session{out: &out, ctrl: ctrl}

	s.onChange(services.SearchState{TooltipID: "1"})
	require.Zero(t, out.Len())

	s.onChange(services.SearchState{})
	require.Contains(t, out.String(), " 1. ")
}

func TestRunInteractiveUnmountIgnoresLateTimer(t *testing.T) {
	color.NoColor = true
	srv, _ := newUpstream(t)

	var out bytes.Buffer
	var fire func()
	ctrl := services.NewSearchController(repositories.TripsRepository{BaseURL: srv.URL}, &osc52Clipboard{w: &out}, 0)
	ctrl.AfterFunc = func(d time.Duration, f func()) services.Timer {
		fire = f
		return stubTimer{}
	}

	require.NoError(t, runInteractive(context.Background(), strings.NewReader(":copy 1\n:quit\n"), &out, ctrl))
	require.NotNil(t, fire)

	n := out.Len()
	fire()
	require.Equal(t, n, out.Len())
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, "DEBUG", parseLevel("debug").String())
	require.Equal(t, "ERROR", parseLevel("ERROR").String())
	require.Equal(t, "WARN", parseLevel("nope").String())
}
