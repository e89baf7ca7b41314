// File: root.go
// Role: the top-level cobra command tree.
package cmd

import "github.com/spf13/cobra"

// NewRootCmd builds the inferdtd command tree: currently a single "infer"
// subcommand, following the cue command-tree idiom of one constructor
// function per (sub)command.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "inferdtd",
		Short:         "Infer a concise DTD from sample XML documents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newInferCmd())
	return root
}
