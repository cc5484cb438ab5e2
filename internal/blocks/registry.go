// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package blocks implements the page composition model: the closed registry of
// block kinds with their default content, and the pure editing operations over
// an ordered sequence of blocks and over the nested item lists inside a block.
package blocks

// Kind identifies one of the block variants a page can contain.
type Kind string

const (
	KindHero          Kind = "hero"
	KindText          Kind = "text"
	KindSlider        Kind = "slider"
	KindFeatures      Kind = "features"
	KindFeaturesImage Kind = "features_image"
	KindCTA           Kind = "cta"
	KindBanner        Kind = "banner"
	KindPricing       Kind = "pricing"
	KindTestimonial   Kind = "testimonial"
)

// Metadata is the display information shown in the block palette.
type Metadata struct {
	Label       string `json:"label"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Kinds returns every block kind in palette order.
func Kinds() []Kind {
	return []Kind{
		KindHero,
		KindText,
		KindSlider,
		KindFeatures,
		KindFeaturesImage,
		KindCTA,
		KindBanner,
		KindPricing,
		KindTestimonial,
	}
}

// ParseKind converts a wire tag into a Kind, rejecting anything outside the
// closed set.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if _, ok := resolve(k); !ok {
		return "", &UnknownTypeError{Type: s}
	}
	return k, nil
}

// Valid reports whether k is one of the registered kinds.
func (k Kind) Valid() bool {
	_, ok := resolve(k)
	return ok
}

// DefaultsFor returns a fresh copy of the default data for kind. The caller
// owns the result and may mutate it freely.
func DefaultsFor(k Kind) (Data, error) {
	e, ok := resolve(k)
	if !ok {
		return nil, &UnknownTypeError{Type: string(k)}
	}
	return e.defaults(), nil
}

// MetadataFor returns the palette label, description and icon for kind.
func MetadataFor(k Kind) (Metadata, error) {
	e, ok := resolve(k)
	if !ok {
		return Metadata{}, &UnknownTypeError{Type: string(k)}
	}
	return e.meta, nil
}

// Collections returns the names of the fields of kind that hold nested item
// lists (slides, plans, ...), in the order the editor shows them.
func Collections(k Kind) []string {
	e, ok := resolve(k)
	if !ok {
		return nil
	}
	names := make([]string, 0, len(e.items))
	for _, c := range e.items {
		names = append(names, c.field)
	}
	return names
}

// ItemTemplate returns a fresh item to append to the collection field of kind.
func ItemTemplate(k Kind, field string) (map[string]any, error) {
	e, ok := resolve(k)
	if !ok {
		return nil, &UnknownTypeError{Type: string(k)}
	}
	for _, c := range e.items {
		if c.field == field {
			return c.template(), nil
		}
	}
	return nil, ErrNotCollection
}

// entry bundles everything the registry knows about a kind. Defaults and item
// templates are constructors so every call hands out unshared maps and slices.
type entry struct {
	meta     Metadata
	defaults func() Data
	items    []collection
}

type collection struct {
	field    string
	template func() map[string]any
}

// resolve is the single dispatch point for block kinds. Adding a kind means
// adding a constant, a case here and an entry in Kinds.
func resolve(k Kind) (entry, bool) {
	switch k {
	case KindHero:
		return entry{
			meta: Metadata{Label: "Hero Section", Description: "Full-width header with CTA", Icon: "view_headline"},
			defaults: func() Data {
				return Data{
					"headline":      "New Hero",
					"subheadline":   "Subtitle here",
					"cta_text":      "Learn More",
					"cta_link":      "#",
					"headlineColor": "#111827",
					"buttonColor":   "#2563eb",
					"image_url":     "",
				}
			},
		}, true

	case KindText:
		return entry{
			meta: Metadata{Label: "Rich Text", Description: "Rich text and typography", Icon: "article"},
			defaults: func() Data {
				return Data{"content": "<p>Enter text here...</p>"}
			},
		}, true

	case KindSlider:
		return entry{
			meta: Metadata{Label: "Image Slider", Description: "Carousel of images", Icon: "gallery_thumbnail"},
			defaults: func() Data {
				return Data{
					"full_screen": true,
					"slides": []any{
						map[string]any{
							"headline":    "Welcome",
							"subheadline": "Discover our story",
							"image_url":   "",
							"cta_text":    "Start Now",
							"cta_link":    "#",
						},
					},
				}
			},
			items: []collection{{
				field: "slides",
				template: func() map[string]any {
					return map[string]any{
						"headline":    "New Slide",
						"subheadline": "Enter details here",
						"image_url":   "",
						"cta_text":    "Learn More",
						"cta_link":    "#",
					}
				},
			}},
		}, true

	case KindFeatures:
		return entry{
			meta: Metadata{Label: "Features Grid (Icons)", Description: "3-column highlight grid", Icon: "grid_view"},
			defaults: func() Data {
				return Data{
					"features": []any{
						map[string]any{"title": "Feature 1", "description": "Description", "icon": "zap"},
					},
				}
			},
			items: []collection{{
				field: "features",
				template: func() map[string]any {
					return map[string]any{"title": "", "description": "", "icon": "zap"}
				},
			}},
		}, true

	case KindFeaturesImage:
		return entry{
			meta: Metadata{Label: "Features Grid (Images)", Description: "Image-led highlight grid", Icon: "photo_library"},
			defaults: func() Data {
				return Data{
					"section_title":    "",
					"section_subtitle": "",
					"columns":          float64(3),
					"features": []any{
						map[string]any{"title": "Feature 1", "description": "Description", "image_url": ""},
					},
				}
			},
			items: []collection{{
				field: "features",
				template: func() map[string]any {
					return map[string]any{"title": "", "description": "", "image_url": ""}
				},
			}},
		}, true

	case KindCTA:
		return entry{
			meta: Metadata{Label: "Call to Action", Description: "Conversion focused banner", Icon: "ads_click"},
			defaults: func() Data {
				return Data{
					"headline":    "Ready to start?",
					"subheadline": "Join us today",
					"button_text": "Get Started",
					"button_link": "#",
					"bgColor":     "#2563eb",
					"textColor":   "#ffffff",
				}
			},
		}, true

	case KindBanner:
		return entry{
			meta: Metadata{Label: "Promo Banner", Description: "Small announcement bar", Icon: "label"},
			defaults: func() Data {
				return Data{
					"text":      "Big News! Check out our latest update.",
					"bgColor":   "#3b82f6",
					"textColor": "#ffffff",
					"link":      "#",
				}
			},
		}, true

	case KindPricing:
		return entry{
			meta: Metadata{Label: "Pricing Table", Description: "Subscription model display", Icon: "payments"},
			defaults: func() Data {
				return Data{
					"plans": []any{
						map[string]any{
							"name":       "Basic",
							"price":      "$9",
							"features":   []any{"Feature A", "Feature B"},
							"isPopular":  false,
							"buttonText": "Buy",
						},
					},
				}
			},
			items: []collection{{
				field: "plans",
				template: func() map[string]any {
					return map[string]any{
						"name":       "New Plan",
						"price":      "$29",
						"features":   []any{"Feature 1", "Feature 2"},
						"isPopular":  false,
						"buttonText": "Get Started",
					}
				},
			}},
		}, true

	case KindTestimonial:
		return entry{
			meta: Metadata{Label: "Testimonials", Description: "Customer social proof", Icon: "format_quote"},
			defaults: func() Data {
				return Data{
					"testimonials": []any{
						map[string]any{"author": "User", "role": "Dev", "content": "Great!"},
					},
				}
			},
			items: []collection{{
				field: "testimonials",
				template: func() map[string]any {
					return map[string]any{
						"author":  "John Doe",
						"role":    "CEO at Company",
						"content": "Incredible tool that changed our workflow.",
						"avatar":  "",
					}
				},
			}},
		}, true
	}
	return entry{}, false
}
