// Package foldtree provides ready-made algebra instances for the range
// query structures in this module: combiners (monoids) for the segment
// and Fenwick trees, and actions for the lazy segment tree.
//
// The structures themselves live in subpackages:
//
//   - segment: array-encoded segment trees, plain and lazy
//   - fenwick: Fenwick (binary indexed) tree
//   - dsu: disjoint-set union
//
// All of them are generic over the contracts in the abstract subpackage,
// so callers are never limited to the instances defined here.
package foldtree
