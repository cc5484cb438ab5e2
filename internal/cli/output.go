// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// newTable returns a table writer mirrored to the command output.
func (a *app) newTable(header ...any) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(a.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row(header))
	return t
}

// emit writes v as indented JSON when JSON output is selected and calls
// render otherwise.
func (a *app) emit(v any, render func()) error {
	if a.settings.Output == outputJSON {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode output: %w", err)
		}
		return nil
	}
	render()
	return nil
}

// printf writes a status line in table mode only, so JSON output stays
// machine-readable.
func (a *app) printf(format string, args ...any) {
	if a.settings.Output == outputJSON {
		return
	}
	fmt.Fprintf(a.out, format, args...)
}

// yesNo renders a flag as a check mark.
func yesNo(b bool) string {
	if b {
		return "✓"
	}
	return ""
}

// truncate shortens s to n runes for table cells.
func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
