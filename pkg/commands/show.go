package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/remap/pkg/commands/options"
	"tableflip.dev/remap/pkg/runner/show"
)

func addShow(topLevel *cobra.Command) {
	po := &options.PathOptions{}
	do := &options.DepthOptions{}

	cmd := &cobra.Command{
		Use:     "show [path]",
		Aliases: []string{"tree"},
		Short:   "print the mindmap as an outline",
		Example: `
remap show
remap show ideas/garden --depth 1
remap show --json
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				po.Path = options.JoinArgs(args)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			sess, err := openSession(cmd.ErrOrStderr())
			if err != nil {
				return oo.HandleError(err)
			}
			defer sess.Close()

			s := show.Show{
				Path:    po.Path,
				Depth:   do.Depth,
				JSON:    oo.JSON,
				Service: sess.Service,
				Out:     cmd.OutOrStdout(),
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddPathArg(cmd, po, `Node to start from, example: --path="ideas/garden".`)
	options.AddDepthArg(cmd, do)
	addOutputArg(cmd)

	topLevel.AddCommand(cmd)
}
