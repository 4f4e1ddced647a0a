package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

const prompt = "> "

func newShellCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Read food guide commands from stdin",
		Long:  "Read food guide commands line by line until exit or end of input.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			a, cleanup, err := opts.openApp(ctx, cmd.ErrOrStderr(), true)
			if err != nil {
				return err
			}
			defer cleanup()

			sc := bufio.NewScanner(cmd.InOrStdin())
			fmt.Fprint(out, prompt)
			for sc.Scan() {
				line := strings.TrimSpace(sc.Text())
				if line != "" {
					res, err := run(ctx, a.Service, out, line)
					if err != nil {
						fmt.Fprintln(out, err)
					}
					if res.Exit {
						return nil
					}
				}
				fmt.Fprint(out, prompt)
			}
			fmt.Fprintln(out)
			return sc.Err()
		},
	}
}
