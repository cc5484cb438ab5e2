// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package blocks

import "fmt"

// Nested item editing: slides, features, plans and testimonials live inside a
// block's data as lists of objects. Like the sequence operations, these take
// the current data and return a new value built from a deep copy.

// SetField returns a copy of d with key set to value.
func SetField(d Data, key string, value any) Data {
	out := d.Clone()
	if out == nil {
		out = Data{}
	}
	out[key] = cloneValue(value)
	return out
}

// AppendItem adds the kind's item template to the end of the collection field.
func AppendItem(k Kind, d Data, field string) (Data, error) {
	tmpl, err := ItemTemplate(k, field)
	if err != nil {
		return d, fmt.Errorf("append %s item to %s: %w", field, k, err)
	}
	out := d.Clone()
	if out == nil {
		out = Data{}
	}
	list, err := itemList(out, field)
	if err != nil {
		return d, err
	}
	out[field] = append(list, tmpl)
	return out, nil
}

// RemoveItem drops the item at index from the collection field.
func RemoveItem(d Data, field string, index int) (Data, error) {
	out := d.Clone()
	list, err := itemList(out, field)
	if err != nil {
		return d, err
	}
	if index < 0 || index >= len(list) {
		return d, fmt.Errorf("remove %s item %d of %d: %w", field, index, len(list), ErrIndexOutOfRange)
	}
	next := make([]any, 0, len(list)-1)
	next = append(next, list[:index]...)
	next = append(next, list[index+1:]...)
	out[field] = next
	return out, nil
}

// MoveItem swaps the item at index with its neighbour in direction dir, with
// the same boundary behaviour as Move.
func MoveItem(d Data, field string, index int, dir Direction) (Data, error) {
	if dir != Up && dir != Down {
		return d, fmt.Errorf("move %s item %d by %d: %w", field, index, dir, ErrInvalidDirection)
	}
	out := d.Clone()
	list, err := itemList(out, field)
	if err != nil {
		return d, err
	}
	if index < 0 || index >= len(list) {
		return d, fmt.Errorf("move %s item %d of %d: %w", field, index, len(list), ErrIndexOutOfRange)
	}
	target := index + int(dir)
	if target >= 0 && target < len(list) {
		list[index], list[target] = list[target], list[index]
	}
	return out, nil
}

// SetItemField sets key on the item at index of the collection field.
func SetItemField(d Data, field string, index int, key string, value any) (Data, error) {
	out := d.Clone()
	list, err := itemList(out, field)
	if err != nil {
		return d, err
	}
	if index < 0 || index >= len(list) {
		return d, fmt.Errorf("update %s item %d of %d: %w", field, index, len(list), ErrIndexOutOfRange)
	}
	item, ok := list[index].(map[string]any)
	if !ok {
		return d, fmt.Errorf("update %s item %d: %w", field, index, ErrNotCollection)
	}
	item[key] = cloneValue(value)
	return out, nil
}

// itemList returns the list stored under field in a data value the caller
// already owns. A missing field reads as an empty list.
func itemList(d Data, field string) ([]any, error) {
	v, ok := d[field]
	if !ok || v == nil {
		return []any{}, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("field %q: %w", field, ErrNotCollection)
	}
	return list, nil
}
