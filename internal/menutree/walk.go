// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package menutree

// Walk visits every item depth-first, parents before children, in order. The
// path passed to fn is freshly allocated. Returning false stops the walk.
func Walk(root []Item, fn func(p Path, it Item) bool) {
	walk(root, nil, fn)
}

func walk(items []Item, prefix Path, fn func(Path, Item) bool) bool {
	for i, it := range items {
		p := make(Path, len(prefix)+1)
		copy(p, prefix)
		p[len(prefix)] = i
		if !fn(p, it) {
			return false
		}
		if !walk(it.Children, p, fn) {
			return false
		}
	}
	return true
}

// Locate returns the current path of the item with the given id.
func Locate(root []Item, id string) (Path, bool) {
	if id == "" {
		return nil, false
	}
	var found Path
	Walk(root, func(p Path, it Item) bool {
		if it.ID == id {
			found = p
			return false
		}
		return true
	})
	return found, found != nil
}

// Count returns the number of items in the tree.
func Count(root []Item) int {
	n := 0
	Walk(root, func(Path, Item) bool {
		n++
		return true
	})
	return n
}

// Depth returns the number of levels in the tree; an empty tree has depth 0.
func Depth(root []Item) int {
	deepest := 0
	Walk(root, func(p Path, _ Item) bool {
		if len(p) > deepest {
			deepest = len(p)
		}
		return true
	})
	return deepest
}

// EnsureIDs returns a copy of the tree in which every item has an id and no
// id appears twice. Items saved before ids existed, or copied by hand, get a
// new one; everything else keeps its id.
func EnsureIDs(root []Item) []Item {
	seen := make(map[string]bool)
	return ensureIDs(root, seen)
}

func ensureIDs(items []Item, seen map[string]bool) []Item {
	if items == nil {
		return []Item{}
	}
	out := make([]Item, len(items))
	for i, it := range items {
		if it.ID == "" || seen[it.ID] {
			it.ID = newID()
		}
		seen[it.ID] = true
		it.Children = ensureIDs(it.Children, seen)
		out[i] = it
	}
	return out
}

// Clone returns a deep copy of the tree.
func Clone(root []Item) []Item {
	if root == nil {
		return nil
	}
	out := make([]Item, len(root))
	for i, it := range root {
		it.Children = Clone(it.Children)
		out[i] = it
	}
	return out
}
