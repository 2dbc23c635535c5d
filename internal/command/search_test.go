package command

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func newTestApp(out *bytes.Buffer, commands ...*cli.Command) *cli.App {
	return &cli.App{
		Name:     "tripsearch",
		Flags:    GlobalFlags(),
		Commands: commands,
		Writer:   out,
	}
}

func TestSearchCommand(t *testing.T) {
	color.NoColor = true
	srv, seen := newUpstream(t)

	var out bytes.Buffer
	app := newTestApp(&out, Search())
	require.NoError(t, app.Run([]string{"tripsearch", "--base-url", srv.URL, "search", "sea", "beach"}))

	require.Equal(t, []string{"sea beach"}, seen())
	require.Contains(t, out.String(), "เกาะสมุย")
	require.Contains(t, out.String(), "https://trips.test/samui")
}

func TestSearchCommandUpstreamDown(t *testing.T) {
	srv, _ := newUpstream(t)
	base := srv.URL
	srv.Close()

	var out bytes.Buffer
	app := newTestApp(&out, Search())
	app.ExitErrHandler = func(*cli.Context, error) {}
	err := app.Run([]string{"tripsearch", "--base-url", base, "search", "x"})
	require.Error(t, err)
	require.Contains(t, err.Error(), `could not search trips for "x"`)
}

func TestOSC52Clipboard(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, (&osc52Clipboard{w: &out}).WriteText("hi"))
	require.Equal(t, "\x1b]52;c;aGk=\a", out.String())
}
