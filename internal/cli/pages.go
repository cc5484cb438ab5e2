// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"staticcms/internal/blocks"
	"staticcms/internal/editor"
	"staticcms/internal/models"
)

func newPagesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pages",
		Aliases: []string{"page"},
		Short:   "List, create and edit pages",
	}
	cmd.AddCommand(
		newPagesListCmd(a),
		newPagesShowCmd(a),
		newPagesNewCmd(a),
		newPagesSetCmd(a),
		newPagesDeleteCmd(a),
		newPagesAddBlockCmd(a),
		newPagesRemoveBlockCmd(a),
		newPagesMoveBlockCmd(a),
		newPagesSetBlockCmd(a),
		newPagesAddItemCmd(a),
		newPagesRemoveItemCmd(a),
		newPagesMoveItemCmd(a),
		newPagesSetItemCmd(a),
	)
	return cmd
}

func newPagesListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all pages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			pages, err := a.api.ListPages(ctx)
			if err != nil {
				return err
			}
			return a.emit(pages, func() {
				t := a.newTable("ID", "Title", "Slug", "Blocks", "Published", "Home")
				for _, p := range pages {
					t.AppendRow([]any{p.ID, truncate(p.Title, 40), p.Slug, len(p.Blocks), yesNo(p.IsPublished), yesNo(p.IsHomepage)})
				}
				t.Render()
			})
		},
	}
}

func newPagesShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <page-id>",
		Short: "Show a page and its blocks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			s := editor.NewPageSession(a.api)
			defer s.Close()
			if err := s.Load(ctx, models.ID(args[0])); err != nil {
				return err
			}
			return a.showPage(s.Page())
		},
	}
}

// showPage prints the page header and one row per block.
func (a *app) showPage(p models.Page) error {
	return a.emit(p, func() {
		a.printf("%s  /%s\n", p.Title, p.Slug)
		a.printf("id %s, published %v, homepage %v\n", p.ID, p.IsPublished, p.IsHomepage)
		if p.MetaDescription != "" {
			a.printf("meta: %s\n", p.MetaDescription)
		}
		t := a.newTable("#", "Block ID", "Type", "Summary")
		for i, b := range p.Blocks {
			t.AppendRow([]any{i, b.ID, b.Type, blockSummary(b)})
		}
		t.Render()
	})
}

// blockSummary picks the most descriptive text field of a block.
func blockSummary(b blocks.Block) string {
	for _, key := range []string{"headline", "title", "text", "content", "quote"} {
		if s := b.Data.String(key); s != "" {
			return truncate(s, 50)
		}
	}
	if cols := blocks.Collections(b.Type); len(cols) > 0 {
		return fmt.Sprintf("%d %s", len(b.Data.Items(cols[0])), cols[0])
	}
	return ""
}

// pageFlags are the metadata flags shared by "pages new" and "pages set".
type pageFlags struct {
	title     string
	meta      string
	published bool
	homepage  bool
}

func (f *pageFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "page title")
	cmd.Flags().StringVar(&f.meta, "meta", "", "meta description")
	cmd.Flags().BoolVar(&f.published, "published", false, "publish the page")
	cmd.Flags().BoolVar(&f.homepage, "homepage", false, "make the page the site homepage")
}

// apply copies the flags the user set onto the session.
func (f *pageFlags) apply(cmd *cobra.Command, s *editor.PageSession) error {
	changed := cmd.Flags().Changed
	if changed("title") {
		if err := s.SetTitle(f.title); err != nil {
			return err
		}
	}
	if changed("meta") {
		if err := s.SetMetaDescription(f.meta); err != nil {
			return err
		}
	}
	if changed("published") {
		if err := s.SetPublished(f.published); err != nil {
			return err
		}
	}
	if changed("homepage") {
		if err := s.SetHomepage(f.homepage); err != nil {
			return err
		}
	}
	return nil
}

func newPagesNewCmd(a *app) *cobra.Command {
	var (
		flags     pageFlags
		blockList []string
	)
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			s := editor.NewPageSession(a.api)
			defer s.Close()
			if err := flags.apply(cmd, s); err != nil {
				return err
			}
			for _, name := range blockList {
				k, err := blocks.ParseKind(strings.TrimSpace(name))
				if err != nil {
					return err
				}
				if _, err := s.InsertBlock(k); err != nil {
					return err
				}
			}
			saved, err := s.Save(ctx)
			if err != nil {
				return err
			}
			a.printf("created page %s (/%s)\n", saved.ID, saved.Slug)
			return a.emit(saved, func() {})
		},
	}
	flags.register(cmd)
	cmd.Flags().StringSliceVar(&blockList, "blocks", nil, "block types to start with, in order (e.g. hero,text)")
	cmd.MarkFlagRequired("title")
	return cmd
}

func newPagesSetCmd(a *app) *cobra.Command {
	var flags pageFlags
	cmd := &cobra.Command{
		Use:   "set <page-id>",
		Short: "Change page title, meta description or flags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.editPage(cmd, args[0], func(s *editor.PageSession) error {
				return flags.apply(cmd, s)
			})
		},
	}
	flags.register(cmd)
	return cmd
}

func newPagesDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <page-id>",
		Short: "Delete a page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			if err := a.api.DeletePage(ctx, models.ID(args[0])); err != nil {
				return err
			}
			a.printf("deleted page %s\n", args[0])
			return nil
		},
	}
}

func newPagesAddBlockCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add-block <page-id> <type>",
		Short: "Append a block with default content",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := blocks.ParseKind(args[1])
			if err != nil {
				return err
			}
			return a.editPage(cmd, args[0], func(s *editor.PageSession) error {
				id, err := s.InsertBlock(k)
				if err == nil {
					a.printf("added %s block %s\n", k, id)
				}
				return err
			})
		},
	}
}

func newPagesRemoveBlockCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove-block <page-id> <block-id>",
		Short: "Remove a block",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.editPage(cmd, args[0], func(s *editor.PageSession) error {
				return s.RemoveBlock(args[1])
			})
		},
	}
}

func newPagesMoveBlockCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "move-block <page-id> <index> <up|down>",
		Short: "Swap a block with its neighbour",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[1])
			if err != nil {
				return err
			}
			dir, err := parseDirection(args[2])
			if err != nil {
				return err
			}
			return a.editPage(cmd, args[0], func(s *editor.PageSession) error {
				return s.MoveBlock(index, dir)
			})
		},
	}
}

func newPagesSetBlockCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "set-block <page-id> <block-id> <key=value>...",
		Short: "Set top-level fields of a block's data",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := parseAssignments(args[2:], asJSON)
			if err != nil {
				return err
			}
			return a.editPage(cmd, args[0], func(s *editor.PageSession) error {
				for _, f := range fields {
					if err := s.SetBlockField(args[1], f.key, f.value); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "parse values as JSON (numbers, booleans, lists)")
	return cmd
}

func newPagesAddItemCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add-item <page-id> <block-id> <collection>",
		Short: "Append an item (slide, feature, plan...) to a block collection",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.editPage(cmd, args[0], func(s *editor.PageSession) error {
				return s.AppendBlockItem(args[1], args[2])
			})
		},
	}
}

func newPagesRemoveItemCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove-item <page-id> <block-id> <collection> <index>",
		Short: "Remove an item from a block collection",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[3])
			if err != nil {
				return err
			}
			return a.editPage(cmd, args[0], func(s *editor.PageSession) error {
				return s.RemoveBlockItem(args[1], args[2], index)
			})
		},
	}
}

func newPagesMoveItemCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "move-item <page-id> <block-id> <collection> <index> <up|down>",
		Short: "Swap a collection item with its neighbour",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[3])
			if err != nil {
				return err
			}
			dir, err := parseDirection(args[4])
			if err != nil {
				return err
			}
			return a.editPage(cmd, args[0], func(s *editor.PageSession) error {
				return s.MoveBlockItem(args[1], args[2], index, dir)
			})
		},
	}
}

func newPagesSetItemCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "set-item <page-id> <block-id> <collection> <index> <key=value>...",
		Short: "Set fields of one collection item",
		Args:  cobra.MinimumNArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[3])
			if err != nil {
				return err
			}
			fields, err := parseAssignments(args[4:], asJSON)
			if err != nil {
				return err
			}
			return a.editPage(cmd, args[0], func(s *editor.PageSession) error {
				for _, f := range fields {
					if err := s.SetBlockItemField(args[1], args[2], index, f.key, f.value); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "parse values as JSON (numbers, booleans, lists)")
	return cmd
}

// editPage loads a page, applies edit and saves it. Nothing is sent when
// edit fails.
func (a *app) editPage(cmd *cobra.Command, id string, edit func(*editor.PageSession) error) error {
	ctx, cancel := a.context(cmd)
	defer cancel()

	s := editor.NewPageSession(a.api)
	defer s.Close()
	if err := s.Load(ctx, models.ID(id)); err != nil {
		return err
	}
	if err := edit(s); err != nil {
		return err
	}
	return a.savePage(ctx, s)
}

func (a *app) savePage(ctx context.Context, s *editor.PageSession) error {
	saved, err := s.Save(ctx)
	if err != nil {
		return err
	}
	a.printf("saved page %s (/%s)\n", saved.ID, saved.Slug)
	return a.emit(saved, func() {})
}

// assignment is one parsed key=value argument.
type assignment struct {
	key   string
	value any
}

// parseAssignments reads key=value pairs. Values are strings unless asJSON
// is set, in which case each value must be a JSON document.
func parseAssignments(args []string, asJSON bool) ([]assignment, error) {
	out := make([]assignment, 0, len(args))
	for _, arg := range args {
		key, raw, ok := strings.Cut(arg, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("expected key=value, got %q", arg)
		}
		var value any = raw
		if asJSON {
			if err := json.Unmarshal([]byte(raw), &value); err != nil {
				return nil, fmt.Errorf("value of %s is not valid JSON: %w", key, err)
			}
		}
		out = append(out, assignment{key: key, value: value})
	}
	return out, nil
}

func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid index %q", s)
	}
	return n, nil
}

func parseDirection(s string) (blocks.Direction, error) {
	switch strings.ToLower(s) {
	case "up":
		return blocks.Up, nil
	case "down":
		return blocks.Down, nil
	default:
		return 0, fmt.Errorf("invalid direction %q (want up or down)", s)
	}
}
