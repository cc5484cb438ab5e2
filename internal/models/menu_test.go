// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"staticcms/internal/menutree"
)

func TestMenuJSONRoundTrip(t *testing.T) {
	root, _ := menutree.InsertRoot(nil)
	root, err := menutree.UpdateField(root, menutree.Path{0}, menutree.FieldLabel, "Products")
	if err != nil {
		t.Fatal(err)
	}
	root, _, err = menutree.InsertChild(root, menutree.Path{0})
	if err != nil {
		t.Fatal(err)
	}

	in := NewMenu()
	in.ID = "3"
	in.Title = "Main"
	in.Items = root
	in.CTAText = "Sign up"
	in.CTALink = "/signup"

	raw, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	var out Menu
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(in, out, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestMenuDecodesLegacyIntegerID(t *testing.T) {
	raw := `{"id": 12, "title": "Footer", "logo_url": null, "items": [{"label": "A", "url": "/a", "children": []}],
		"cta_text": null, "cta_link": null, "cta_color": "#3b82f6", "cta_hover_color": "#2563eb"}`
	var m Menu
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		t.Fatal(err)
	}
	if m.ID != "12" || m.State() != Saved {
		t.Errorf("id = %q state = %v, want 12 saved", m.ID, m.State())
	}
	if len(m.Items) != 1 || m.Items[0].Label != "A" {
		t.Errorf("items = %+v", m.Items)
	}
}

func TestNewMenuDefaults(t *testing.T) {
	m := NewMenu()
	if m.State() != Draft {
		t.Errorf("state = %v, want draft", m.State())
	}
	if m.CTAColor != DefaultCTAColor || m.CTAHoverColor != DefaultCTAHoverColor {
		t.Errorf("colors = %q/%q", m.CTAColor, m.CTAHoverColor)
	}
	p := m.Payload()
	if p.Items == nil {
		t.Error("payload items must encode as [] not null")
	}
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name    string
		s       UISettings
		wantErr bool
	}{
		{name: "defaults", s: DefaultUISettings()},
		{name: "short form", s: UISettings{BrandPrimary: "#fff", BrandHover: "#000"}},
		{name: "with alpha", s: UISettings{BrandPrimary: "#3b82f6cc", BrandHover: "#2563eb"}},
		{name: "missing hash", s: UISettings{BrandPrimary: "3b82f6", BrandHover: "#2563eb"}, wantErr: true},
		{name: "bad hover", s: UISettings{BrandPrimary: "#3b82f6", BrandHover: "blue"}, wantErr: true},
		{name: "empty", s: UISettings{}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.s.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
