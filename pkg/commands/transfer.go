package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/remap/pkg/codec"
	"tableflip.dev/remap/pkg/commands/options"
	"tableflip.dev/remap/pkg/runner/transfer"
)

func addExport(topLevel *cobra.Command) {
	fo := &options.FormatOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "write the whole mindmap as a document",
		Example: `
remap export > backup.json
remap export --format yaml --file backup.yaml
remap export --format svg --file map.svg
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			var format codec.Format
			if !fo.SVG() {
				var err error
				if format, err = fo.Format(); err != nil {
					return err
				}
			}
			sess, err := openSession(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer sess.Close()

			s := transfer.Export{
				File:    fo.File,
				Format:  format,
				SVG:     fo.SVG(),
				Service: sess.Service,
				Out:     cmd.OutOrStdout(),
			}
			return s.Do(context.Background())
		},
	}

	options.AddFormatArgs(cmd, fo)
	topLevel.AddCommand(cmd)
}

func addImport(topLevel *cobra.Command) {
	fo := &options.FormatOptions{}

	cmd := &cobra.Command{
		Use:   "import",
		Short: "replace the mindmap with a document",
		Example: `
remap import --file backup.json
remap import --format yaml < backup.yaml
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			format, err := fo.Format()
			if err != nil {
				return oo.HandleError(err)
			}
			sess, err := openSession(cmd.ErrOrStderr())
			if err != nil {
				return oo.HandleError(err)
			}
			defer sess.Close()

			s := transfer.Import{
				File:    fo.File,
				Format:  format,
				Service: sess.Service,
				In:      cmd.InOrStdin(),
				Out:     cmd.OutOrStdout(),
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddFormatArgs(cmd, fo)
	addOutputArg(cmd)
	topLevel.AddCommand(cmd)
}
