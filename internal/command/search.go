package command

import (
	"strings"

	"tripsearch/internal/view"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func Search() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Print the trips matching the given keywords",
		ArgsUsage: "[keywords...]",
		Action: func(cliCtx *cli.Context) error {
			keywords := strings.Join(cliCtx.Args().Slice(), " ")

			ctrl := newController(cliCtx, nil)
			if err := ctrl.HandleInput(cliCtx.Context, keywords); err != nil {
				return errors.Wrapf(err, "could not search trips for %q", keywords)
			}

			return errors.WithStack(view.RenderText(cliCtx.App.Writer, ctrl.State()))
		},
	}
}
