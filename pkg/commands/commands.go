package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

var (
	oo = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "remap",
		Short: base.Wrap80("Keyboard driven mindmapping in the terminal."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addKey(topLevel)
	addShow(topLevel)
	addFind(topLevel)
	addAdd(topLevel)
	addRename(topLevel)
	addRm(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addInfo(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
}
