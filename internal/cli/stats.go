// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cli

import (
	"time"

	"github.com/spf13/cobra"
)

func newStatsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show content counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			st, err := a.api.Stats(ctx)
			if err != nil {
				return err
			}
			return a.emit(st, func() {
				t := a.newTable("Pages", "Published", "Menus", "Uploads")
				t.AppendRow([]any{st.Pages, st.PublishedPages, st.Menus, st.Uploads})
				t.Render()
			})
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "recent",
		Short: "List recently edited pages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			recent, err := a.api.RecentPages(ctx)
			if err != nil {
				return err
			}
			return a.emit(recent, func() {
				t := a.newTable("ID", "Title", "Slug", "Published", "Updated")
				for _, p := range recent {
					updated := ""
					if p.UpdatedAt != nil {
						updated = p.UpdatedAt.Local().Format(time.DateTime)
					}
					t.AppendRow([]any{p.ID, truncate(p.Title, 40), p.Slug, yesNo(p.IsPublished), updated})
				}
				t.Render()
			})
		},
	})
	return cmd
}
