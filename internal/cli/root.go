// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package cli implements cmsctl, the command-line authoring surface of the
// CMS. Every command talks to the API server through internal/client and
// edits aggregates through internal/editor sessions, so the same load, edit
// and save rules apply as in any other editor.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"staticcms/internal/client"
)

// Defaults for the settings cmsctl reads from flags, environment and the
// config file.
const (
	defaultAPIURL  = "http://localhost:8000"
	defaultTimeout = 30 * time.Second
)

// Output formats.
const (
	outputTable = "table"
	outputJSON  = "json"
)

// Settings is the resolved cmsctl configuration.
type Settings struct {
	APIURL  string        `mapstructure:"api_url"`
	Output  string        `mapstructure:"output"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// app carries the state shared by every command of one invocation.
type app struct {
	out      io.Writer
	cfgFile  string
	settings Settings
	api      *client.Client
}

// NewRootCmd builds the cmsctl command tree writing to out.
func NewRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}

	root := &cobra.Command{
		Use:           "cmsctl",
		Short:         "Edit pages, menus and theme settings of a staticcms site",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initialize(cmd)
		},
	}
	root.SetOut(out)
	root.SetErr(out)

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is ./cmsctl.yaml)")
	pf.String("api", defaultAPIURL, "base URL of the staticcms API")
	pf.StringP("output", "o", outputTable, "output format: table or json")
	pf.Duration("timeout", defaultTimeout, "time limit for each command")

	root.AddCommand(
		newBlocksCmd(a),
		newPagesCmd(a),
		newMenusCmd(a),
		newSettingsCmd(a),
		newUploadCmd(a),
		newUploadsCmd(a),
		newBuildCmd(a),
		newIconsCmd(a),
		newStatsCmd(a),
	)
	return root
}

// Execute runs cmsctl with the given arguments.
func Execute(ctx context.Context, out io.Writer, args []string) error {
	root := NewRootCmd(out)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// initialize resolves the settings from flags, CMSCTL_* environment
// variables and the optional config file, in that order of precedence.
func (a *app) initialize(cmd *cobra.Command) error {
	v := viper.New()

	v.SetDefault("api_url", defaultAPIURL)
	v.SetDefault("output", outputTable)
	v.SetDefault("timeout", defaultTimeout)

	if a.cfgFile != "" {
		v.SetConfigFile(a.cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("cmsctl")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("CMSCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	flags := cmd.Flags()
	for key, flag := range map[string]string{"api_url": "api", "output": "output", "timeout": "timeout"} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || a.cfgFile != "" {
			return fmt.Errorf("read config file: %w", err)
		}
	}

	if err := v.Unmarshal(&a.settings); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	switch a.settings.Output {
	case outputTable, outputJSON:
	default:
		return fmt.Errorf("unknown output format %q (want table or json)", a.settings.Output)
	}

	api, err := client.New(a.settings.APIURL)
	if err != nil {
		return err
	}
	a.api = api
	return nil
}

// context returns the command context bounded by the configured timeout.
func (a *app) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if a.settings.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.settings.Timeout)
}
