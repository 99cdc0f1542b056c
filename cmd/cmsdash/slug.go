package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/cmsdash/internal/util/text"
)

func newSlugCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "slug <text>...",
		Short:   "Print the URL slug the server would derive from text",
		Example: `  cmsdash slug "Hello, World!"   # hello-world`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), text.Slugify(strings.Join(args, " ")))
			return err
		},
	}
}
