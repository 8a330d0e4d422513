// Package syntax implements an immutable, lossless concrete syntax tree.
//
// The tree is split in two layers. Raw nodes hold kind, children and text
// and know nothing about their position; they are never mutated after
// construction and are shared freely between trees. A *Node is a cursor over
// a raw node that also knows its parent, its slot in the parent and its
// absolute offset. Cursors are created on demand and are cheap.
//
// Every node kind has a fixed slot layout (see the Slot* constants). Optional
// children are empty slots, list kinds have a variable number of slots.
//
// Rewriting never touches an existing tree: With and the builders return new
// detached nodes that share every untouched subtree with the original.
//
// Rendering a node with String gives back the exact source text, trivia
// included. Missing tokens (inserted by the parser during recovery) render as
// nothing and mark the tree with HasError.
package syntax
