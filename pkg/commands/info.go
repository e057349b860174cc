package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/remap/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the mindmap and where it is stored.",
		Example: `
remap info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			sess, err := openSession(cmd.ErrOrStderr())
			if err != nil {
				return oo.HandleError(err)
			}
			defer sess.Close()

			s := info.Info{
				Config:  sess.Config,
				Service: sess.Service,
				Out:     cmd.OutOrStdout(),
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
