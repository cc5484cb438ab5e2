// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"staticcms/internal/editor"
	"staticcms/internal/menutree"
	"staticcms/internal/models"
)

func newMenusCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "menus",
		Aliases: []string{"menu"},
		Short:   "List, create and edit navigation menus",
	}
	cmd.AddCommand(
		newMenusListCmd(a),
		newMenusShowCmd(a),
		newMenusNewCmd(a),
		newMenusSetCmd(a),
		newMenusAddItemCmd(a),
		newMenusRemoveItemCmd(a),
		newMenusSetItemCmd(a),
		newMenusSetCTACmd(a),
	)
	return cmd
}

func newMenusListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all menus",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			menus, err := a.api.ListMenus(ctx)
			if err != nil {
				return err
			}
			return a.emit(menus, func() {
				t := a.newTable("ID", "Title", "Items", "CTA")
				for _, m := range menus {
					t.AppendRow([]any{m.ID, truncate(m.Title, 40), menutree.Count(m.Items), truncate(m.CTAText, 30)})
				}
				t.Render()
			})
		},
	}
}

func newMenusShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <menu-id>",
		Short: "Show a menu as a tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			s := editor.NewMenuSession(a.api)
			defer s.Close()
			if err := s.Load(ctx, models.ID(args[0])); err != nil {
				return err
			}
			return a.showMenu(s.Menu())
		},
	}
}

// showMenu prints the menu header and its items indented by depth, each
// prefixed with the path the item commands accept.
func (a *app) showMenu(m models.Menu) error {
	return a.emit(m, func() {
		a.printf("%s (id %s)\n", m.Title, m.ID)
		if m.LogoURL != "" {
			a.printf("logo: %s\n", m.LogoURL)
		}
		if m.CTAText != "" || m.CTALink != "" {
			a.printf("cta:  %s -> %s [%s / %s]\n", m.CTAText, m.CTALink, m.CTAColor, m.CTAHoverColor)
		}
		t := a.newTable("Path", "Label", "URL", "Item ID")
		menutree.Walk(m.Items, func(p menutree.Path, it menutree.Item) bool {
			label := strings.Repeat("  ", len(p)-1) + it.Label
			t.AppendRow([]any{dotted(p), label, it.URL, it.ID})
			return true
		})
		t.Render()
	})
}

func newMenusNewCmd(a *app) *cobra.Command {
	var title, logo string
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			s := editor.NewMenuSession(a.api)
			defer s.Close()
			if err := s.SetTitle(title); err != nil {
				return err
			}
			if err := s.SetLogoURL(logo); err != nil {
				return err
			}
			saved, err := s.Save(ctx)
			if err != nil {
				return err
			}
			a.printf("created menu %s\n", saved.ID)
			return a.emit(saved, func() {})
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "menu title")
	cmd.Flags().StringVar(&logo, "logo", "", "logo URL")
	cmd.MarkFlagRequired("title")
	return cmd
}

func newMenusSetCmd(a *app) *cobra.Command {
	var title, logo string
	cmd := &cobra.Command{
		Use:   "set <menu-id>",
		Short: "Change the menu title or logo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.editMenu(cmd, args[0], func(s *editor.MenuSession) error {
				if cmd.Flags().Changed("title") {
					if err := s.SetTitle(title); err != nil {
						return err
					}
				}
				if cmd.Flags().Changed("logo") {
					return s.SetLogoURL(logo)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "menu title")
	cmd.Flags().StringVar(&logo, "logo", "", "logo URL")
	return cmd
}

func newMenusAddItemCmd(a *app) *cobra.Command {
	var parent, label, url string
	cmd := &cobra.Command{
		Use:   "add-item <menu-id>",
		Short: "Add a top-level item, or a sub-item with --parent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.editMenu(cmd, args[0], func(s *editor.MenuSession) error {
				var (
					it  menutree.Item
					err error
				)
				if parent == "" {
					it, err = s.AddRootItem()
				} else {
					var p menutree.Path
					if p, err = resolveItem(s, parent); err != nil {
						return err
					}
					if !menutree.CanAddChild(p) {
						return fmt.Errorf("sub-items can only be added under top-level items, %s is nested", dotted(p))
					}
					it, err = s.AddChildItem(p)
				}
				if err != nil {
					return err
				}
				if err := s.UpdateItemByID(it.ID, menutree.FieldLabel, label); err != nil {
					return err
				}
				if err := s.UpdateItemByID(it.ID, menutree.FieldURL, url); err != nil {
					return err
				}
				a.printf("added item %s\n", it.ID)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&parent, "parent", "", "path (e.g. 0) or id of the parent item")
	cmd.Flags().StringVar(&label, "label", "", "item label")
	cmd.Flags().StringVar(&url, "url", "", "item link")
	return cmd
}

func newMenusRemoveItemCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove-item <menu-id> <path|item-id>",
		Short: "Remove an item and its sub-items",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.editMenu(cmd, args[0], func(s *editor.MenuSession) error {
				p, err := resolveItem(s, args[1])
				if err != nil {
					return err
				}
				return s.RemoveItem(p)
			})
		},
	}
}

func newMenusSetItemCmd(a *app) *cobra.Command {
	var label, url string
	cmd := &cobra.Command{
		Use:   "set-item <menu-id> <path|item-id>",
		Short: "Change the label or link of an item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.editMenu(cmd, args[0], func(s *editor.MenuSession) error {
				p, err := resolveItem(s, args[1])
				if err != nil {
					return err
				}
				if cmd.Flags().Changed("label") {
					if err := s.UpdateItem(p, menutree.FieldLabel, label); err != nil {
						return err
					}
				}
				if cmd.Flags().Changed("url") {
					return s.UpdateItem(p, menutree.FieldURL, url)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&label, "label", "", "item label")
	cmd.Flags().StringVar(&url, "url", "", "item link")
	return cmd
}

func newMenusSetCTACmd(a *app) *cobra.Command {
	var text, link, color, hover string
	cmd := &cobra.Command{
		Use:   "set-cta <menu-id>",
		Short: "Configure the call-to-action button",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.editMenu(cmd, args[0], func(s *editor.MenuSession) error {
				cur := s.Menu()
				changed := cmd.Flags().Changed
				if changed("text") {
					cur.CTAText = text
				}
				if changed("link") {
					cur.CTALink = link
				}
				if err := s.SetCTA(cur.CTAText, cur.CTALink); err != nil {
					return err
				}
				if !changed("color") && !changed("hover") {
					return nil
				}
				if changed("color") {
					cur.CTAColor = color
				}
				if changed("hover") {
					cur.CTAHoverColor = hover
				}
				return s.SetCTAColors(cur.CTAColor, cur.CTAHoverColor)
			})
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "button text")
	cmd.Flags().StringVar(&link, "link", "", "button link")
	cmd.Flags().StringVar(&color, "color", "", "button color (hex)")
	cmd.Flags().StringVar(&hover, "hover", "", "button hover color (hex)")
	return cmd
}

// dotted renders p in the form ParsePath reads.
func dotted(p menutree.Path) string {
	parts := make([]string, len(p))
	for i, idx := range p {
		parts[i] = strconv.Itoa(idx)
	}
	return strings.Join(parts, ".")
}

// resolveItem accepts either a dotted path or an item id.
func resolveItem(s *editor.MenuSession, ref string) (menutree.Path, error) {
	if p, err := menutree.ParsePath(ref); err == nil {
		return p, nil
	}
	if p, ok := s.Locate(ref); ok {
		return p, nil
	}
	return nil, fmt.Errorf("no menu item %q", ref)
}

// editMenu loads a menu, applies edit and saves it. Nothing is sent when
// edit fails.
func (a *app) editMenu(cmd *cobra.Command, id string, edit func(*editor.MenuSession) error) error {
	ctx, cancel := a.context(cmd)
	defer cancel()

	s := editor.NewMenuSession(a.api)
	defer s.Close()
	if err := s.Load(ctx, models.ID(id)); err != nil {
		return err
	}
	if err := edit(s); err != nil {
		return err
	}
	saved, err := s.Save(ctx)
	if err != nil {
		return err
	}
	a.printf("saved menu %s\n", saved.ID)
	return a.emit(saved, func() {})
}
