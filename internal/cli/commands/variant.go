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

func newVariantCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "variant <path>",
		Short: "Decode a variant path into its source and tag",
		Long: `Decode a path produced by resize or template, relative to the media root.

Size tags are checked against max_width and max_height, template tags against
the templates list in settings.yaml.

Examples:
  imgurl variant dir1/dir2/hello.100x200.png
  imgurl variant img/logo.thumbnail.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVariant(cmd, opts, args[0])
		},
	}
}

func runVariant(cmd *cobra.Command, opts *options, path string) error {
	v, err := imageurl.ParseVariant(path)
	if err != nil {
		return err
	}

	if v.Size != nil {
		if err := opts.settings.Limits().Check(*v.Size); err != nil {
			return err
		}
	} else if !opts.settings.HasTemplate(v.Template) {
		return fmt.Errorf("%w %q", common.ErrUnknownTemplate, v.Template)
	}
	log.Debugf("[CLI] variant %q: name=%q tag=%q ext=%q", path, v.Name, v.Tag(), v.Extension)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Name: %s\n", v.Name)
	if v.Size != nil {
		fmt.Fprintf(out, "Size: %s\n", v.Size)
	} else {
		fmt.Fprintf(out, "Template: %s\n", v.Template)
	}
	fmt.Fprintf(out, "Extension: %s\n", v.Extension)
	fmt.Fprintf(out, "Original: %s\n", v.Original())
	return nil
}
