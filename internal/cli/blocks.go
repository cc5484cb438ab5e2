// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"staticcms/internal/blocks"
)

// blockType is the palette entry printed by "blocks types".
type blockType struct {
	Type        blocks.Kind `json:"type"`
	Label       string      `json:"label"`
	Description string      `json:"description"`
	Icon        string      `json:"icon"`
	Collections []string    `json:"collections"`
	Defaults    blocks.Data `json:"defaults"`
}

func newBlocksCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blocks",
		Short: "Inspect the block palette",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "types",
		Short: "List every block type with its default data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var list []blockType
			for _, k := range blocks.Kinds() {
				meta, err := blocks.MetadataFor(k)
				if err != nil {
					return err
				}
				defaults, err := blocks.DefaultsFor(k)
				if err != nil {
					return err
				}
				list = append(list, blockType{
					Type:        k,
					Label:       meta.Label,
					Description: meta.Description,
					Icon:        meta.Icon,
					Collections: blocks.Collections(k),
					Defaults:    defaults,
				})
			}

			return a.emit(list, func() {
				t := a.newTable("Type", "Label", "Description", "Collections")
				for _, bt := range list {
					t.AppendRow([]any{bt.Type, bt.Label, bt.Description, strings.Join(bt.Collections, ", ")})
				}
				t.Render()
			})
		},
	})
	return cmd
}
