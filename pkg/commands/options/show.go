package options

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/remap/pkg/codec"
)

// DepthOptions
type DepthOptions struct {
	Depth int
}

func AddDepthArg(cmd *cobra.Command, o *DepthOptions) {
	cmd.Flags().IntVarP(&o.Depth, "depth", "d", 0,
		"Levels to print below the starting node, 0 for all.")
}

// LimitOptions
type LimitOptions struct {
	Limit int
}

func AddLimitArg(cmd *cobra.Command, o *LimitOptions) {
	cmd.Flags().IntVarP(&o.Limit, "limit", "l", 20,
		"Maximum number of results, 0 for all.")
}

// FormatOptions selects the document encoding for import and export.
type FormatOptions struct {
	Raw  string
	File string
}

func AddFormatArgs(cmd *cobra.Command, o *FormatOptions) {
	cmd.Flags().StringVarP(&o.Raw, "format", "f", "json",
		"Document format. One of 'json' or 'yaml'; export also takes 'svg'.")
	cmd.Flags().StringVar(&o.File, "file", "-",
		`File to read or write, "-" for stdin/stdout.`)
}

// SVG reports whether a picture was asked for instead of a document.
func (o *FormatOptions) SVG() bool {
	return strings.EqualFold(strings.TrimSpace(o.Raw), "svg")
}

func (o *FormatOptions) Format() (codec.Format, error) {
	return codec.ParseFormat(o.Raw)
}
