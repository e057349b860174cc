// Package options defines shared flag helpers for CLI commands.
package options

import (
	"strings"

	"github.com/spf13/cobra"
)

// PathOptions captures a node path, given as "root/ideas/garden". The root's
// own name may be left out.
type PathOptions struct {
	Path string
}

// AddPathArg wires --path on the provided command.
func AddPathArg(cmd *cobra.Command, o *PathOptions, usage string) {
	cmd.Flags().StringVarP(&o.Path, "path", "p", "", usage)
}

// AddParentArg wires --parent, which names the node that receives new children.
func AddParentArg(cmd *cobra.Command, o *PathOptions) {
	cmd.Flags().StringVarP(&o.Path, "parent", "p", "",
		`Path of the parent node, example: --parent="ideas/garden". Defaults to the root.`)
}

// JoinArgs turns positional words into a single name.
func JoinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
