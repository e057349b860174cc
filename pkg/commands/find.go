package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/remap/pkg/commands/options"
	"tableflip.dev/remap/pkg/runner/find"
)

func addFind(topLevel *cobra.Command) {
	lo := &options.LimitOptions{}
	i := &options.InteractiveOptions{}
	var query string

	cmd := &cobra.Command{
		Use:     "find <text>",
		Aliases: []string{"search"},
		Short:   "find nodes whose names contain some text",
		Example: `
remap find garden
remap find tom --limit 5
remap find -i plan
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires some text to find")
			}
			query = options.JoinArgs(args)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			sess, err := openSession(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer sess.Close()

			s := find.Find{
				Query:       query,
				Limit:       lo.Limit,
				Interactive: i.Interactive,
				Service:     sess.Service,
				In:          cmd.InOrStdin(),
				Out:         cmd.OutOrStdout(),
			}
			return s.Do(context.Background())
		},
	}

	options.AddLimitArg(cmd, lo)
	options.InteractiveArgs(cmd, i)

	topLevel.AddCommand(cmd)
}
