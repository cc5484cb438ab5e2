// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cli

import (
	"github.com/spf13/cobra"

	"staticcms/internal/editor"
	"staticcms/internal/models"
)

func newSettingsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change the site theme colors",
	}
	cmd.AddCommand(newSettingsGetCmd(a), newSettingsSetCmd(a))
	return cmd
}

func newSettingsGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show the theme colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			s := editor.NewSettingsSession(a.api)
			defer s.Close()
			if err := s.Load(ctx); err != nil {
				return err
			}
			return a.showSettings(s.Settings())
		},
	}
}

func newSettingsSetCmd(a *app) *cobra.Command {
	var primary, hover string
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change the theme colors and rebuild the site",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			s := editor.NewSettingsSession(a.api)
			defer s.Close()
			if err := s.Load(ctx); err != nil {
				return err
			}
			if cmd.Flags().Changed("primary") {
				if err := s.SetBrandPrimary(primary); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("hover") {
				if err := s.SetBrandHover(hover); err != nil {
					return err
				}
			}
			saved, err := s.Save(ctx)
			if err != nil {
				return err
			}
			return a.showSettings(saved)
		},
	}
	cmd.Flags().StringVar(&primary, "primary", "", "primary brand color (hex)")
	cmd.Flags().StringVar(&hover, "hover", "", "hover brand color (hex)")
	return cmd
}

func (a *app) showSettings(s models.UISettings) error {
	return a.emit(s, func() {
		t := a.newTable("Setting", "Value")
		t.AppendRow([]any{"brand_primary", s.BrandPrimary})
		t.AppendRow([]any{"brand_hover", s.BrandHover})
		t.Render()
	})
}
