// Package search provides small, deterministic array-search utilities:
// binary search over a sorted slice, the missing element of a 1..n
// permutation, and duplicate detection.
//
// What:
//   - Binary: iterative half-open binary search; (index, true) on a hit,
//     (0, false) on a miss.
//   - FindMissing: the absent value of a {1..n} set with exactly one
//     element removed, recovered from the arithmetic-series sum.
//   - ContainsDuplicate: single-pass membership check via a set.
//
// Why:
//   - These are building blocks for index lookups and input validation;
//     each runs in a single pass (Binary in O(log n)) with no recursion.
//
// Determinism:
//   - Output depends only on the input slice; no randomness, no shared
//     state.
//
// Complexity:
//   - Binary: O(log n) time, O(1) space.
//   - FindMissing: O(n) time, O(1) space.
//   - ContainsDuplicate: O(n) time, O(n) space.
package search
