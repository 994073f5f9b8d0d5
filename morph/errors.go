package morph

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParent is returned for a malformed or out-of-range parent
	// index on Append, Extend, SplitAt and JoinAt.
	ErrInvalidParent = errors.New("morph: invalid segment parent")

	// ErrNoSuchSegment is returned for an out-of-range index on the
	// structural queries IsRoot, IsFork and IsTerminal.
	ErrNoSuchSegment = errors.New("morph: no such segment")

	// ErrUnprunedChild is returned by PruneTag when a surviving segment's
	// parent carries the pruned tag. The input violates the subtree-closed
	// tag invariant and must be fixed by the caller; it is never patched
	// silently.
	ErrUnprunedChild = errors.New("morph: unpruned child of pruned parent")
)

func invalidParent(parent, size Index) error {
	return fmt.Errorf("%w: parent %s, tree size %d", ErrInvalidParent, parent, size)
}

func noSuchSegment(i, size Index) error {
	return fmt.Errorf("%w: index %s, tree size %d", ErrNoSuchSegment, i, size)
}

func unprunedChild(parent, child Index, tag int32) error {
	return fmt.Errorf("%w: parent %s has tag %d, child %s does not",
		ErrUnprunedChild, parent, tag, child)
}
