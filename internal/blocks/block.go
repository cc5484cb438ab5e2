// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package blocks

// Block is one content unit on a page. ID and Type are fixed at creation;
// only Data changes afterwards.
type Block struct {
	ID   string `json:"id"`
	Type Kind   `json:"type"`
	Data Data   `json:"data"`
}

// Data is the type-specific payload of a block. Values follow the
// encoding/json model (string, bool, float64, []any, map[string]any) so a
// JSON round trip preserves them exactly. Values stored through this package
// are converted to that model on the way in; other Go types are kept as given.
type Data map[string]any

// Clone returns a deep copy of d.
func (d Data) Clone() Data {
	if d == nil {
		return nil
	}
	out := make(Data, len(d))
	for k, v := range d {
		out[k] = cloneValue(v)
	}
	return out
}

// String returns the string stored under key, or "" when absent or not a string.
func (d Data) String(key string) string {
	s, _ := d[key].(string)
	return s
}

// Items returns the nested item list stored under key. Entries that are not
// objects are skipped.
func (d Data) Items(key string) []map[string]any {
	list, _ := d[key].([]any)
	items := make([]map[string]any, 0, len(list))
	for _, v := range list {
		if m, ok := v.(map[string]any); ok {
			items = append(items, m)
		}
	}
	return items
}

// Clone returns a deep copy of b.
func (b Block) Clone() Block {
	return Block{ID: b.ID, Type: b.Type, Data: b.Data.Clone()}
}

// WithDefaults returns a copy of b whose Data carries every top-level key of
// the kind's default schema. Present keys, including unknown ones, are kept
// as they are. Blocks of unknown kinds are returned unchanged.
func WithDefaults(b Block) Block {
	out := b.Clone()
	defaults, err := DefaultsFor(b.Type)
	if err != nil {
		return out
	}
	if out.Data == nil {
		out.Data = defaults
		return out
	}
	for k, v := range defaults {
		if _, ok := out.Data[k]; !ok {
			out.Data[k] = v
		}
	}
	return out
}

// cloneValue deep-copies v into the encoding/json model: Go numbers become
// float64 and typed slices and maps become []any and map[string]any.
func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, vv := range t {
			m[k] = cloneValue(vv)
		}
		return m
	case Data:
		return cloneValue(map[string]any(t))
	case []any:
		s := make([]any, len(t))
		for i, vv := range t {
			s[i] = cloneValue(vv)
		}
		return s
	case []string:
		s := make([]any, len(t))
		for i, vv := range t {
			s[i] = vv
		}
		return s
	case []map[string]any:
		s := make([]any, len(t))
		for i, vv := range t {
			s[i] = cloneValue(vv)
		}
		return s
	case int:
		return float64(t)
	case int8:
		return float64(t)
	case int16:
		return float64(t)
	case int32:
		return float64(t)
	case int64:
		return float64(t)
	case uint:
		return float64(t)
	case uint8:
		return float64(t)
	case uint16:
		return float64(t)
	case uint32:
		return float64(t)
	case uint64:
		return float64(t)
	case float32:
		return float64(t)
	default:
		return v
	}
}
