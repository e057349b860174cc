package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func addOutputArg(cmd *cobra.Command) {
	base.AddOutputArg(cmd, oo)
}
