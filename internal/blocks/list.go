// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package blocks

import (
	"fmt"

	"github.com/google/uuid"
)

// Direction is the neighbour a block is swapped with by Move.
type Direction int

const (
	Up   Direction = -1
	Down Direction = 1
)

// newID generates block identifiers. Tests replace it for deterministic ids.
var newID = uuid.NewString

// The functions below never modify the sequence they are given. Each returns
// a fresh slice; blocks that are not touched are carried over as-is.

// Insert appends a new block of kind k with the kind's default data and
// returns the new sequence together with the generated id.
func Insert(seq []Block, k Kind) ([]Block, string, error) {
	data, err := DefaultsFor(k)
	if err != nil {
		return seq, "", err
	}
	id := newID()
	out := make([]Block, len(seq), len(seq)+1)
	copy(out, seq)
	out = append(out, Block{ID: id, Type: k, Data: data})
	return out, id, nil
}

// Remove drops the block with the given id.
func Remove(seq []Block, id string) ([]Block, error) {
	idx := IndexOf(seq, id)
	if idx < 0 {
		return seq, &NotFoundError{ID: id}
	}
	out := make([]Block, 0, len(seq)-1)
	out = append(out, seq[:idx]...)
	out = append(out, seq[idx+1:]...)
	return out, nil
}

// Move swaps the block at index with its neighbour in direction dir.
// Moving the first block up or the last block down leaves the order as it is.
func Move(seq []Block, index int, dir Direction) ([]Block, error) {
	if dir != Up && dir != Down {
		return seq, fmt.Errorf("move block %d by %d: %w", index, dir, ErrInvalidDirection)
	}
	if index < 0 || index >= len(seq) {
		return seq, fmt.Errorf("move block %d of %d: %w", index, len(seq), ErrIndexOutOfRange)
	}
	out := make([]Block, len(seq))
	copy(out, seq)
	target := index + int(dir)
	if target < 0 || target >= len(out) {
		return out, nil
	}
	out[index], out[target] = out[target], out[index]
	return out, nil
}

// UpdateData replaces the data of the block with the given id. The new data
// is taken wholesale, not merged; callers build it from the previous value.
func UpdateData(seq []Block, id string, data Data) ([]Block, error) {
	idx := IndexOf(seq, id)
	if idx < 0 {
		return seq, &NotFoundError{ID: id}
	}
	out := make([]Block, len(seq))
	copy(out, seq)
	out[idx] = Block{ID: seq[idx].ID, Type: seq[idx].Type, Data: data.Clone()}
	return out, nil
}

// IndexOf returns the position of the block with the given id, or -1.
func IndexOf(seq []Block, id string) int {
	for i, b := range seq {
		if b.ID == id {
			return i
		}
	}
	return -1
}

// Find returns the block with the given id.
func Find(seq []Block, id string) (Block, error) {
	idx := IndexOf(seq, id)
	if idx < 0 {
		return Block{}, &NotFoundError{ID: id}
	}
	return seq[idx], nil
}

// Clone returns a deep copy of seq.
func Clone(seq []Block) []Block {
	if seq == nil {
		return nil
	}
	out := make([]Block, len(seq))
	for i, b := range seq {
		out[i] = b.Clone()
	}
	return out
}
