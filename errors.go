package anfgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/anfgo/internal/arena"
)

const (
	entityGraph = "graph"
	entityNode  = "node"
)

// ErrStaleHandle indicates a handle whose slot and generation do not resolve
// to a live entity in its manager. The zero handle and forged handles fail
// this way.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrStaleHandle struct {
	Entity string
	Slot   uint32
	Gen    uint32
	cause  error
}

func (e *ErrStaleHandle) Error() string {
	return fmt.Sprintf("stale %s handle %d@%d", e.Entity, e.Slot, e.Gen)
}

func (e *ErrStaleHandle) Unwrap() error { return e.cause }

// ErrForeignHandle indicates a handle owned by a different manager than the
// one it was passed to.
type ErrForeignHandle struct {
	Entity string
}

func (e *ErrForeignHandle) Error() string {
	return fmt.Sprintf("%s handle belongs to a different manager", e.Entity)
}

func translateError(entity string, err error) error {
	if err == nil {
		return nil
	}

	var stale *arena.ErrStaleIndex
	if errors.As(err, &stale) {
		return &ErrStaleHandle{Entity: entity, Slot: stale.Slot, Gen: stale.Gen, cause: err}
	}

	return err
}
