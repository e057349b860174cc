package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/remap/pkg/commands/options"
	"tableflip.dev/remap/pkg/runner/rm"
)

func addRm(topLevel *cobra.Command) {
	var (
		path string
		yes  bool
	)

	cmd := &cobra.Command{
		Use:     "rm <path>",
		Aliases: []string{"delete"},
		Short:   "delete a node and everything below it",
		Example: `
remap rm ideas/garden
remap rm ideas/garden --yes
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a node path")
			}
			path = options.JoinArgs(args)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			sess, err := openSession(cmd.ErrOrStderr())
			if err != nil {
				return oo.HandleError(err)
			}
			defer sess.Close()

			s := rm.Rm{
				Path:    path,
				Yes:     yes,
				Service: sess.Service,
				In:      cmd.InOrStdin(),
				Out:     cmd.OutOrStdout(),
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Delete without asking.")
	addOutputArg(cmd)

	topLevel.AddCommand(cmd)
}
