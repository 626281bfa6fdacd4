package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"imgurl/pkg/imageurl"
)

func newParseCmd() *cobra.Command {
	var legacy bool

	cmd := &cobra.Command{
		Use:   "parse <url>...",
		Short: "Show how a URL is split into path, name and extension",
		Long: `Show the path, name and extension parts that resize and template work on.

By default the last "/" ends the path. With --legacy-split it starts the
name instead; the rewritten URLs are the same either way.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := imageurl.SplitAfterSeparator
			if legacy {
				mode = imageurl.SplitAtSeparator
			}

			out := cmd.OutOrStdout()
			for i, url := range args {
				if i > 0 {
					fmt.Fprintln(out)
				}
				parsed := mode.Parse(url)
				fmt.Fprintf(out, "URL: %q\n", url)
				fmt.Fprintf(out, "Path: %q\n", parsed.Path)
				fmt.Fprintf(out, "Name: %q\n", parsed.Name)
				fmt.Fprintf(out, "Extension: %q\n", parsed.Extension)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&legacy, "legacy-split", false, "keep the last \"/\" at the front of the name")
	return cmd
}
