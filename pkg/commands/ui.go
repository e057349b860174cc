package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/remap/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
remap ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			// The screen belongs to the UI; only a configured log file gets logs.
			sess, err := openSession(nil)
			if err != nil {
				return err
			}
			defer sess.Close()

			i := ui.UI{Config: sess.Config, Service: sess.Service}
			return i.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
