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
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"imgurl/internal/config"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersion sets the version info for --version flag
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// getVersionString returns the version string with build info
func getVersionString() string {
	buildDate := formatBuildDate(date)
	if strings.HasSuffix(version, "-dev") {
		// Dev build: include epoch and commit for troubleshooting
		return fmt.Sprintf("%s (%s, epoch: %s, commit: %s)", version, buildDate, date, commit)
	}
	return fmt.Sprintf("%s (%s)", version, buildDate)
}

// formatBuildDate converts epoch timestamp to readable date
func formatBuildDate(epoch string) string {
	ts, err := strconv.ParseInt(epoch, 10, 64)
	if err != nil {
		return epoch
	}
	return time.Unix(ts, 0).UTC().Format("2006-01-02")
}

// options holds state shared by all subcommands of one invocation.
type options struct {
	configDir string
	logLevel  string
	settings  *config.Settings
}

func (o *options) settingsPath() string {
	if o.configDir == "" {
		return config.SettingsPath()
	}
	return filepath.Join(o.configDir, "settings.yaml")
}

// loadSettings reads settings.yaml, falling back to the embedded defaults.
func (o *options) loadSettings() (*config.Settings, error) {
	if o.configDir == "" {
		return config.LoadSettings()
	}
	return config.LoadSettingsFromPath(o.settingsPath())
}

// initSettings writes the default settings.yaml unless one exists.
func (o *options) initSettings() (bool, error) {
	if o.configDir == "" {
		return config.InitConfigDir()
	}
	return config.InitConfigDirAt(o.configDir)
}

// saveSettings writes the current settings back to settings.yaml.
func (o *options) saveSettings() error {
	if o.configDir == "" {
		return config.SaveSettings(o.settings)
	}
	if err := os.MkdirAll(o.configDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return config.SaveSettingsToPath(o.settingsPath(), o.settings)
}

// load reads settings and configures logging before any subcommand runs.
func (o *options) load(cmd *cobra.Command) error {
	settings, err := o.loadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	o.settings = settings

	level := settings.Level()
	if o.logLevel != "" {
		level = strings.ToLower(o.logLevel)
	}
	configureLogging(level, cmd.ErrOrStderr())
	dir := o.configDir
	if dir == "" {
		dir = config.ConfigDir()
	}
	log.Debugf("[CLI] %s: config_dir=%s settings=%s level=%s", cmd.Name(), dir, o.settingsPath(), level)
	return nil
}

// configureLogging sets the logrus level (case insensitive). "off", "none"
// and "" discard all output.
func configureLogging(level string, out io.Writer) {
	switch level {
	case "", "off", "none":
		log.SetOutput(io.Discard)
		return
	}

	log.SetOutput(out)
	switch level {
	case "trace":
		log.SetLevel(log.TraceLevel)
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "info":
		log.SetLevel(log.InfoLevel)
	case "warn":
		log.SetLevel(log.WarnLevel)
	default:
		log.SetLevel(log.DebugLevel)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "imgurl",
		Short: "Rewrite image URLs into resized variant URLs",
		Long: `Rewrite image URLs into resized variant URLs by inserting a size or
template tag before the file extension, and decode variant paths back.

  /static/img/photo.jpeg  ->  /static/img/photo.320x240.jpeg

imgurl only computes URLs. It does not fetch or resize images.`,
		Version:       getVersionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip initialization for help commands
			if cmd.Name() == "help" {
				return nil
			}
			return opts.load(cmd)
		},
	}

	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetVersionTemplate("imgurl version {{.Version}}\n")
	cmd.PersistentFlags().StringVar(&opts.configDir, "config-dir", "", "config directory (default $IMGURL_CONFIG_DIR or ~/.imgurl)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: trace, debug, info, warn, off (overrides settings)")

	cmd.AddCommand(
		newResizeCmd(opts),
		newTemplateCmd(opts),
		newParseCmd(),
		newVariantCmd(opts),
		newPresetsCmd(opts),
		newInitCmd(opts),
	)
	return cmd
}

// Execute runs the root command
func Execute() error {
	return newRootCmd().Execute()
}
