package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/remap/pkg/commands/options"
	"tableflip.dev/remap/pkg/runner/rename"
)

func addRename(topLevel *cobra.Command) {
	po := &options.PathOptions{}
	var name string

	cmd := &cobra.Command{
		Use:     "rename <new name>",
		Aliases: []string{"mv"},
		Short:   "rename a node",
		Example: `
remap rename --path ideas/garden "vegetable garden"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a new name")
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

			s := rename.Rename{
				Path:    po.Path,
				Name:    name,
				Service: sess.Service,
				Out:     cmd.OutOrStdout(),
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddPathArg(cmd, po, `Node to rename, example: --path="ideas/garden".`)
	_ = cmd.MarkFlagRequired("path")
	addOutputArg(cmd)

	topLevel.AddCommand(cmd)
}
