package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"imgurl/internal/common"
	"imgurl/pkg/imageurl"
)

func newTemplateCmd(opts *options) *cobra.Command {
	var extension string

	cmd := &cobra.Command{
		Use:   "template <url> <name>",
		Short: "Print the URL of a named template variant",
		Long: `Insert a template name before the file extension of a URL.

When settings.yaml lists templates, only those names are accepted.

Examples:
  imgurl template /img/logo.png thumbnail
  imgurl template /img/logo.png square --ext .webp`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			url, name := args[0], args[1]
			if !opts.settings.HasTemplate(name) {
				return fmt.Errorf("%w %q", common.ErrUnknownTemplate, name)
			}
			fmt.Fprintln(cmd.OutOrStdout(), imageurl.TemplateAs(url, name, extension))
			return nil
		},
	}

	cmd.Flags().StringVar(&extension, "ext", "", "replacement extension, e.g. .jpg")
	return cmd
}
