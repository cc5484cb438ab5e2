// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"staticcms/internal/blocks"
	"staticcms/internal/menutree"
	"staticcms/internal/models"
)

// Validation limits, matching the column sizes of the schema.
const (
	maxPageTitleLen = 60
	maxMetaDescLen  = 160
	maxMenuTitleLen = 100
	maxCTATextLen   = 50
	maxLinkLen      = 255
	maxColorLen     = 20
	maxBlocks       = 200
)

// validatePage checks a page payload and returns the first error found.
// The title is trimmed in place.
func validatePage(in *models.PagePayload) string {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return "Title is required."
	}
	if utf8.RuneCountInString(in.Title) > maxPageTitleLen {
		return fmt.Sprintf("Title is too long (max %d characters).", maxPageTitleLen)
	}
	if utf8.RuneCountInString(in.MetaDescription) > maxMetaDescLen {
		return fmt.Sprintf("Meta description is too long (max %d characters).", maxMetaDescLen)
	}
	if len(in.Blocks) > maxBlocks {
		return fmt.Sprintf("Too many blocks (max %d).", maxBlocks)
	}
	seen := make(map[string]bool, len(in.Blocks))
	for i, b := range in.Blocks {
		if strings.TrimSpace(b.ID) == "" {
			return fmt.Sprintf("Block %d has no id.", i+1)
		}
		if seen[b.ID] {
			return fmt.Sprintf("Block id %q is used twice.", b.ID)
		}
		seen[b.ID] = true
		if !b.Type.Valid() {
			return fmt.Sprintf("Block %d has unknown type %q.", i+1, b.Type)
		}
	}
	if in.Blocks == nil {
		in.Blocks = []blocks.Block{}
	}
	return ""
}

// validateMenu checks a menu payload and returns the first error found.
// The title is trimmed and empty colors are left for the store to default.
func validateMenu(in *models.MenuPayload) string {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return "Menu title is required."
	}
	if utf8.RuneCountInString(in.Title) > maxMenuTitleLen {
		return fmt.Sprintf("Menu title is too long (max %d characters).", maxMenuTitleLen)
	}
	if utf8.RuneCountInString(in.LogoURL) > maxLinkLen {
		return fmt.Sprintf("Logo URL is too long (max %d characters).", maxLinkLen)
	}
	if utf8.RuneCountInString(in.CTAText) > maxCTATextLen {
		return fmt.Sprintf("CTA text is too long (max %d characters).", maxCTATextLen)
	}
	if utf8.RuneCountInString(in.CTALink) > maxLinkLen {
		return fmt.Sprintf("CTA link is too long (max %d characters).", maxLinkLen)
	}
	for _, c := range []struct{ name, value string }{
		{"CTA color", in.CTAColor},
		{"CTA hover color", in.CTAHoverColor},
	} {
		if c.value == "" {
			continue
		}
		if len(c.value) > maxColorLen || !models.IsHexColor(c.value) {
			return fmt.Sprintf("%s must be a hex color like #1337ec.", c.name)
		}
	}
	var msg string
	menutree.Walk(in.Items, func(p menutree.Path, it menutree.Item) bool {
		if utf8.RuneCountInString(it.URL) > maxLinkLen {
			msg = fmt.Sprintf("Menu item %s URL is too long (max %d characters).", p, maxLinkLen)
			return false
		}
		return true
	})
	if in.Items == nil {
		in.Items = []menutree.Item{}
	}
	return msg
}

// validateSettings checks that both brand colors are hex colors.
func validateSettings(in models.UISettings) string {
	if err := in.Validate(); err != nil {
		return err.Error()
	}
	return ""
}
