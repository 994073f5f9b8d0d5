// Package morph implements a parent-indexed forest of tagged conical
// segments, the flat representation used for neuron morphologies, together
// with the structural algorithms over it: incremental append, subtree
// copy-with-predicate, split and join, structural equivalence up to sibling
// order, point-transform application and tag-region pruning.
//
// It follows the same "functional primitives" style as append-only log
// structures:
//
//   - small, composable package-level functions over flat arrays
//   - parent/child relations encoded as integer indices, never pointers
//   - index arithmetic and explicit work stacks, no call recursion
//
// # Core invariants
//
// The forest relies on:
//
//  1. a segment's parent index, when not NoParent, is strictly less than the
//     segment's own index (parents are appended before children)
//  2. a Tree only ever grows, and only through Append/Extend; every
//     structural transformation yields a brand new Tree
//
// Invariant (1) makes the segment array topologically sorted, so every
// traversal in this package is a single forward scan or an explicit-stack
// walk with no cycle checks. Morphologies routinely contain unbranched
// chains thousands of segments deep, which is why nothing here uses native
// recursion.
//
// A Tree may have multiple roots; it is a forest, not necessarily a single
// tree.
package morph
