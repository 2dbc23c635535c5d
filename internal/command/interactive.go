package command

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"tripsearch/internal/domain"
	"tripsearch/internal/domain/models"
	"tripsearch/internal/services"
	"tripsearch/internal/view"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const interactiveHelp = `type to search, or:
  :tag <tag>   add a tag to the query
  :copy <n>    copy the link of trip n
  :open <n>    print the link of trip n
  :clear       empty the query
  :quit        leave`

func Interactive() *cli.Command {
	return &cli.Command{
		Name:    "interactive",
		Aliases: []string{"i"},
		Usage:   "Search trips interactively",
		Action: func(cliCtx *cli.Context) error {
			out := cliCtx.App.Writer
			ctrl := newController(cliCtx, &osc52Clipboard{w: out})
			return runInteractive(cliCtx.Context, cliCtx.App.Reader, out, ctrl)
		},
	}
}

// session serialises terminal output between the input loop and the
// tooltip timer.
type session struct {
	mu          sync.Mutex
	out         io.Writer
	ctrl        *services.SearchController
	lastTooltip models.TripID
}

func runInteractive(ctx context.Context, in io.Reader, out io.Writer, ctrl *services.SearchController) error {
	s := &session{out: out, ctrl: ctrl}
	ctrl.OnChange = s.onChange
	defer ctrl.Unmount()

	fmt.Fprintln(out, interactiveHelp)
	if err := ctrl.Mount(ctx); err != nil {
		s.printf("search failed: %v\n", err)
	}
	s.render()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		quit, err := s.handleLine(ctx, scanner.Text())
		if err != nil && !errors.Is(err, services.ErrSuperseded) {
			s.printf("%v\n", err)
		}
		if quit {
			return nil
		}
		s.render()
	}
	return errors.WithStack(scanner.Err())
}

func (s *session) handleLine(ctx context.Context, line string) (bool, error) {
	if !strings.HasPrefix(line, ":") {
		return false, s.ctrl.HandleInput(ctx, line)
	}

	cmd, arg, _ := strings.Cut(strings.TrimPrefix(line, ":"), " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "q", "quit", "exit":
		return true, nil
	case "tag", "t":
		if arg == "" {
			return false, domain.ValidationError{Field: "tag", Msg: "usage: :tag <tag>"}
		}
		return false, s.ctrl.HandleTagClick(ctx, arg)
	case "copy", "c":
		trip, err := s.trip(arg)
		if err != nil {
			return false, err
		}
		return false, s.ctrl.CopyLink(trip.URL, trip.ID)
	case "open", "o":
		trip, err := s.trip(arg)
		if err != nil {
			return false, err
		}
		s.printf("%s\n", trip.URL)
		return false, nil
	case "clear":
		return false, s.ctrl.HandleInput(ctx, "")
	case "help", "h":
		s.printf("%s\n", interactiveHelp)
		return false, nil
	default:
		return false, domain.ValidationError{Field: "command", Msg: fmt.Sprintf("unknown command %q", cmd)}
	}
}

// trip resolves a 1-based list number against the held results.
func (s *session) trip(arg string) (models.Trip, error) {
	n, err := strconv.Atoi(arg)
	trips := s.ctrl.State().Trips
	if err != nil || n < 1 || n > len(trips) {
		return models.Trip{}, domain.NotFoundError{Resource: fmt.Sprintf("trip %q", arg)}
	}
	return trips[n-1], nil
}

// onChange re-renders when the tooltip hides on its own; every other change
// is rendered after the command that caused it.
func (s *session) onChange(st services.SearchState) {
	s.mu.Lock()
	hidden := s.lastTooltip != "" && st.TooltipID == ""
	s.lastTooltip = st.TooltipID
	s.mu.Unlock()

	if hidden {
		s.render()
	}
}

func (s *session) render() {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = view.RenderText(s.out, s.ctrl.State())
}

func (s *session) printf(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.out, format, args...)
}
