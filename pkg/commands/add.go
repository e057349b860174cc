package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/remap/pkg/commands/options"
	"tableflip.dev/remap/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	po := &options.PathOptions{}
	var name string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "add a child node",
		Example: `
remap add ideas
remap add tomatoes --parent ideas/garden
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a name")
			}
			name = options.JoinArgs(args)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			sess, err := openSession(cmd.ErrOrStderr())
			if err != nil {
				return oo.HandleError(err)
			}
			defer sess.Close()

			s := add.Add{
				Parent:  po.Path,
				Name:    name,
				Service: sess.Service,
				Out:     cmd.OutOrStdout(),
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddParentArg(cmd, po)
	addOutputArg(cmd)

	topLevel.AddCommand(cmd)
}
