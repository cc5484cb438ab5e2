// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package menutree edits the navigation menu: a tree of items of unbounded
// depth. The tree is persistent. Every mutation returns a new root and copies
// only the spine from the root to the touched node; nodes that belong to a
// previous version are never written, so untouched subtrees may be shared.
//
// Nodes are addressed by Path, the index at each level from the root. Paths go
// stale after any structural change, so every item also carries a stable ID
// and Locate turns an ID back into the current path.
package menutree

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

var (
	// ErrPathNotFound is matched by every *PathNotFoundError.
	ErrPathNotFound = errors.New("menu item path not found")

	// ErrUnknownField is returned by UpdateField for fields other than label and url.
	ErrUnknownField = errors.New("unknown menu item field")
)

// PathNotFoundError reports a path that does not resolve to an item.
type PathNotFoundError struct {
	Path Path
}

func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("menu item %s not found", e.Path)
}

// Is lets errors.Is(err, ErrPathNotFound) match.
func (e *PathNotFoundError) Is(target error) bool {
	return target == ErrPathNotFound
}

// Item is one navigation entry.
type Item struct {
	ID       string `json:"id,omitempty"`
	Label    string `json:"label"`
	URL      string `json:"url"`
	Children []Item `json:"children"`
}

// MarshalJSON always writes children as an array, never null.
func (it Item) MarshalJSON() ([]byte, error) {
	type plain Item
	p := plain(it)
	if p.Children == nil {
		p.Children = []Item{}
	}
	return json.Marshal(p)
}

// Field names an editable item attribute.
type Field string

const (
	FieldLabel Field = "label"
	FieldURL   Field = "url"
)

// Path addresses an item by its index at each level, root first.
type Path []int

// String renders the path as "[0 2 1]".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, idx := range p {
		parts[i] = strconv.Itoa(idx)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// ParsePath reads a dotted path such as "0.2.1".
func ParsePath(s string) (Path, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("parse path %q: empty", s)
	}
	parts := strings.Split(s, ".")
	p := make(Path, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("parse path %q: bad index %q", s, part)
		}
		p[i] = n
	}
	return p, nil
}

// newID generates item identifiers. Tests replace it for deterministic ids.
var newID = uuid.NewString

// NewItem returns a blank item with a fresh id.
func NewItem() Item {
	return Item{ID: newID(), Label: "", URL: "", Children: []Item{}}
}

// CanAddChild reports whether the editor offers "add sub-item" at p. Only
// root items may gain children through the editor; the tree itself has no
// depth limit.
func CanAddChild(p Path) bool {
	return len(p) == 1
}

// InsertRoot appends a blank item to the root list.
func InsertRoot(root []Item) ([]Item, Item) {
	it := NewItem()
	return appendItem(root, it), it
}

// InsertChild appends a blank item to the children of the item at parent.
func InsertChild(root []Item, parent Path) ([]Item, Item, error) {
	if len(parent) == 0 {
		return root, Item{}, &PathNotFoundError{Path: parent}
	}
	it := NewItem()
	out, err := editList(root, parent, func(items []Item) ([]Item, bool) {
		last := parent[len(parent)-1]
		if last < 0 || last >= len(items) {
			return nil, false
		}
		next := copyItems(items)
		next[last].Children = appendItem(next[last].Children, it)
		return next, true
	})
	if err != nil {
		return root, Item{}, err
	}
	return out, it, nil
}

// RemoveAt drops the item at p together with its subtree.
func RemoveAt(root []Item, p Path) ([]Item, error) {
	if len(p) == 0 {
		return root, &PathNotFoundError{Path: p}
	}
	return editList(root, p, func(items []Item) ([]Item, bool) {
		last := p[len(p)-1]
		if last < 0 || last >= len(items) {
			return nil, false
		}
		next := make([]Item, 0, len(items)-1)
		next = append(next, items[:last]...)
		next = append(next, items[last+1:]...)
		return next, true
	})
}

// UpdateField sets the label or url of the item at p.
func UpdateField(root []Item, p Path, f Field, value string) ([]Item, error) {
	if f != FieldLabel && f != FieldURL {
		return root, fmt.Errorf("update %s: %w %q", p, ErrUnknownField, f)
	}
	if len(p) == 0 {
		return root, &PathNotFoundError{Path: p}
	}
	return editList(root, p, func(items []Item) ([]Item, bool) {
		last := p[len(p)-1]
		if last < 0 || last >= len(items) {
			return nil, false
		}
		next := copyItems(items)
		switch f {
		case FieldLabel:
			next[last].Label = value
		case FieldURL:
			next[last].URL = value
		}
		return next, true
	})
}

// Get returns the item at p.
func Get(root []Item, p Path) (Item, error) {
	if len(p) == 0 {
		return Item{}, &PathNotFoundError{Path: p}
	}
	items := root
	for depth, idx := range p {
		if idx < 0 || idx >= len(items) {
			return Item{}, &PathNotFoundError{Path: p}
		}
		if depth == len(p)-1 {
			return items[idx], nil
		}
		items = items[idx].Children
	}
	return Item{}, &PathNotFoundError{Path: p}
}

// editList rebuilds the spine down to the list that holds the last element of
// p and hands that list to fn. fn reports false when the last index does not
// exist. Nothing is written until fn succeeds, so a failed edit returns the
// original root untouched.
func editList(root []Item, p Path, fn func([]Item) ([]Item, bool)) ([]Item, error) {
	out, ok := rebuild(root, p[:len(p)-1], fn)
	if !ok {
		return root, &PathNotFoundError{Path: append(Path(nil), p...)}
	}
	return out, nil
}

func rebuild(items []Item, parents Path, fn func([]Item) ([]Item, bool)) ([]Item, bool) {
	if len(parents) == 0 {
		return fn(items)
	}
	idx := parents[0]
	if idx < 0 || idx >= len(items) {
		return nil, false
	}
	children, ok := rebuild(items[idx].Children, parents[1:], fn)
	if !ok {
		return nil, false
	}
	next := copyItems(items)
	next[idx].Children = children
	return next, true
}

// copyItems makes a shallow copy of one level. The element structs are
// copied; their Children slices are shared until replaced.
func copyItems(items []Item) []Item {
	next := make([]Item, len(items))
	copy(next, items)
	return next
}

func appendItem(items []Item, it Item) []Item {
	next := make([]Item, len(items), len(items)+1)
	copy(next, items)
	return append(next, it)
}
