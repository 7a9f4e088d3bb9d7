package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *cli) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print build information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipSetupAnnotation: "true"},
		Run: func(cmd *cobra.Command, _ []string) {
			b := c.opts.Build
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Build version: %s\n", b.Version)
			fmt.Fprintf(out, "Build date: %s\n", b.Date)
			fmt.Fprintf(out, "Build commit: %s\n", b.Commit)
		},
	}
}
