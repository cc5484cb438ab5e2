// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package blocks

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownType is matched by every *UnknownTypeError.
	ErrUnknownType = errors.New("unknown block type")

	// ErrNotFound is matched by every *NotFoundError.
	ErrNotFound = errors.New("block not found")

	// ErrIndexOutOfRange is returned when a position does not exist in a sequence.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidDirection is returned by Move for anything other than Up or Down.
	ErrInvalidDirection = errors.New("invalid move direction")

	// ErrNotCollection is returned when a nested item operation targets a field
	// that is not a list of items for the block's kind.
	ErrNotCollection = errors.New("field is not an item collection")
)

// UnknownTypeError reports a block type outside the closed set of kinds.
type UnknownTypeError struct {
	Type string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown block type %q", e.Type)
}

// Is lets errors.Is(err, ErrUnknownType) match.
func (e *UnknownTypeError) Is(target error) bool {
	return target == ErrUnknownType
}

// NotFoundError reports an operation addressed to a block id that is not in
// the sequence.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("block %q not found", e.ID)
}

// Is lets errors.Is(err, ErrNotFound) match.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
