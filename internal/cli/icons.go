// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cli

import (
	"github.com/spf13/cobra"

	"staticcms/internal/icons"
)

func newIconsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "icons",
		Short: "Browse the icon catalogue used by feature blocks",
	}

	var category string
	search := &cobra.Command{
		Use:   "search [query]",
		Short: "List icons whose name contains query",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			found := icons.Default().Search(query, category)
			return a.emit(found, func() {
				t := a.newTable("Name", "Label", "Category")
				for _, ic := range found {
					t.AppendRow([]any{ic.Name, ic.Label, ic.Category})
				}
				t.Render()
			})
		},
	}
	search.Flags().StringVar(&category, "category", "", "limit results to one category")

	resolve := &cobra.Command{
		Use:   "resolve <name>",
		Short: "Show the icon a stored name renders as",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := icons.Default()
			ic := cat.Resolve(args[0])
			return a.emit(ic, func() {
				if !cat.Has(args[0]) {
					a.printf("%q is not in the catalogue, rendered as the fallback icon\n", args[0])
				}
				a.printf("%s (%s, %s)\n", ic.Name, ic.Label, ic.Category)
			})
		},
	}

	categories := &cobra.Command{
		Use:   "categories",
		Short: "List icon categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cats := icons.Default().Categories()
			return a.emit(cats, func() {
				for _, c := range cats {
					a.printf("%s\n", c)
				}
			})
		},
	}

	cmd.AddCommand(search, resolve, categories)
	return cmd
}
