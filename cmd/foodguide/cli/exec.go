package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/charleslimjh/tp/internal/command"
	"github.com/charleslimjh/tp/internal/service"
)

func newExecCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "exec COMMAND...",
		Short: "Run one food guide command",
		Long: "Run one food guide command and print its result, e.g.\n\n" +
			"  foodguide exec tag 1 t/halal t/cheap",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := opts.openApp(cmd.Context(), cmd.ErrOrStderr(), true)
			if err != nil {
				return err
			}
			defer cleanup()

			_, err = run(cmd.Context(), a.Service, cmd.OutOrStdout(), strings.Join(args, " "))
			return err
		},
	}
}

// run executes one line and prints the feedback. Command errors are returned
// with wrapping prefixes removed so they read well in a terminal.
func run(ctx context.Context, svc *service.FoodGuideService, out io.Writer, line string) (command.Result, error) {
	res, err := svc.Execute(ctx, line)
	if err != nil {
		return command.Result{}, errors.New(userMessage(err))
	}
	fmt.Fprintln(out, res.Feedback)
	if res.ShowHelp {
		fmt.Fprintln(out, command.HelpText)
	}
	return res, nil
}

func userMessage(err error) string {
	msg := err.Error()
	for _, prefix := range []string{"service.FoodGuideService.Execute: ", "validation error: "} {
		msg = strings.TrimPrefix(msg, prefix)
	}
	return msg
}
