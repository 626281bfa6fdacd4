// Copyright 2024 imgurl Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package commands

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"imgurl/internal/common"
	"imgurl/pkg/imageurl"
)

type resizeFlags struct {
	width     float64
	height    float64
	size      string
	preset    string
	extension string
}

func newResizeCmd(opts *options) *cobra.Command {
	flags := &resizeFlags{}

	cmd := &cobra.Command{
		Use:   "resize <url>...",
		Short: "Print the URL of a resized variant",
		Long: `Insert a WIDTHxHEIGHT tag before the file extension of each URL.

The size comes from exactly one of --width/--height, --size or --preset.
--ext replaces the original extension and is used verbatim, so include the dot.

Examples:
  imgurl resize /static/img/photo.jpeg --width 320 --height 240
  imgurl resize icon.svg --width 1.5 --height 2
  imgurl resize a/b/c.png --size 10x20 --ext .jpg
  imgurl resize logo.png avatar.png --preset thumbnail`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResize(cmd, opts, flags, args)
		},
	}

	cmd.Flags().Float64Var(&flags.width, "width", 0, "variant width")
	cmd.Flags().Float64Var(&flags.height, "height", 0, "variant height")
	cmd.Flags().StringVar(&flags.size, "size", "", "variant size as WIDTHxHEIGHT")
	cmd.Flags().StringVarP(&flags.preset, "preset", "p", "", "named size from settings")
	cmd.Flags().StringVar(&flags.extension, "ext", "", "replacement extension, e.g. .jpg")
	return cmd
}

func runResize(cmd *cobra.Command, opts *options, flags *resizeFlags, args []string) error {
	tag, err := resolveTag(cmd, opts, flags)
	if err != nil {
		return err
	}
	log.Debugf("[CLI] resize: tag=%s ext=%q urls=%d", tag, flags.extension, len(args))

	for _, url := range args {
		fmt.Fprintln(cmd.OutOrStdout(), imageurl.ParseFilename(url).Build(tag, flags.extension))
	}
	return nil
}

// resolveTag builds the dimension tag from whichever of the mutually
// exclusive flag groups was given. --width/--height accept fractions.
func resolveTag(cmd *cobra.Command, opts *options, flags *resizeFlags) (string, error) {
	dims := cmd.Flags().Changed("width") || cmd.Flags().Changed("height")
	sources := 0
	for _, set := range []bool{dims, cmd.Flags().Changed("size"), cmd.Flags().Changed("preset")} {
		if set {
			sources++
		}
	}

	switch {
	case sources == 0:
		return "", fmt.Errorf("%w: use --width/--height, --size or --preset", common.ErrMissingSize)
	case sources > 1:
		return "", fmt.Errorf("%w: use only one of --width/--height, --size or --preset", common.ErrConflictingSize)
	}

	switch {
	case dims:
		if !cmd.Flags().Changed("width") || !cmd.Flags().Changed("height") {
			return "", fmt.Errorf("%w: --width and --height go together", common.ErrMissingSize)
		}
		return imageurl.DimensionTag(flags.width, flags.height), nil
	case cmd.Flags().Changed("size"):
		size, err := imageurl.ParseSize(flags.size)
		if err != nil {
			return "", err
		}
		return size.Tag(), nil
	default:
		size, err := opts.settings.Preset(flags.preset)
		if err != nil {
			return "", err
		}
		return size.Tag(), nil
	}
}
