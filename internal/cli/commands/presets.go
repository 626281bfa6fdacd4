package commands

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"imgurl/internal/common"
	"imgurl/pkg/imageurl"
)

func newPresetsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List named sizes from settings.yaml",
		Long: `List the named sizes usable with 'imgurl resize --preset NAME'.

Presets live under the "presets" key of settings.yaml in the config directory
(see 'imgurl init'). Without a settings file the built-in defaults are listed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			names := opts.settings.PresetNames()
			if len(names) == 0 {
				fmt.Fprintln(out, "No presets configured")
				return nil
			}
			for _, name := range names {
				size, err := opts.settings.Preset(name)
				if err != nil {
					fmt.Fprintf(out, "%-12s (invalid: %s)\n", name, opts.settings.Presets[name])
					continue
				}
				fmt.Fprintf(out, "%-12s %s\n", name, size)
			}
			return nil
		},
	}

	cmd.AddCommand(newPresetsSetCmd(opts), newPresetsRemoveCmd(opts))
	return cmd
}

func newPresetsSetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "set <name> <WIDTHxHEIGHT>",
		Short: "Add or replace a preset",
		Long: `Add or replace a named size and save settings.yaml.

Examples:
  imgurl presets set banner 1200x300`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			size, err := imageurl.ParseSize(args[1])
			if err != nil {
				return err
			}
			opts.settings.Presets[name] = size.Tag()
			if err := opts.saveSettings(); err != nil {
				return fmt.Errorf("failed to save settings: %w", err)
			}
			log.Debugf("[CLI] presets set %s=%s", name, size)
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", name, size)
			return nil
		},
	}
}

func newPresetsRemoveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if _, ok := opts.settings.Presets[name]; !ok {
				return fmt.Errorf("%w %q", common.ErrUnknownPreset, name)
			}
			delete(opts.settings.Presets, name)
			if err := opts.saveSettings(); err != nil {
				return fmt.Errorf("failed to save settings: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", name)
			return nil
		},
	}
}
