// Package lvlalg is a compact toolkit of classic algorithms on plain
// in-memory data — integer sequences, prime numbers, matrices, graphs,
// and dynamic programming — with a pure function-call surface.
//
// 🚀 What is lvlalg?
//
//	A deterministic, side-effect-free library that brings together:
//		• Sequences: Fibonacci (recursive, iterative, memoized), factorial
//		• Primes: primality test, Sieve of Eratosthenes, factorization, twin primes
//		• Matrices: transpose, multiplication, spiral traversal & generation
//		• Graphs: BFS, iterative DFS, shortest paths, cycle detection, topological sort
//		• Dynamic programming: LCS, coin change, Kadane, climbing stairs
//		• Searching: binary search and small array utilities
//
// ✨ Why choose lvlalg?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Explicit failure modes – sentinel errors, never panics on user input
//   - Pure Go – no cgo, no runtime deps, no hidden state
//   - Extensible – traversal hooks (OnVisit, FilterNeighbor…) for custom logic
//
// Everything is organized into small root-level packages:
//
//	core/     — the Graph primitive (int64 adjacency lists)
//	bfs/      — breadth-first search and unweighted shortest paths
//	dfs/      — iterative depth-first search, cycle detection, topological sort
//	sequence/ — Fibonacci family and factorial with overflow checking
//	prime/    — primality, sieving, factorization, twin primes
//	matrix/   — transpose, multiplication, spiral order & generation
//	dp/       — longest common subsequence, coin change, Kadane, stairs
//	search/   — binary search and friends
//
// Every operation either returns a valid result, an explicit "no result"
// marker (a bool or a documented sentinel value), or a sentinel error —
// see each package's doc.go for its exact contract.
package lvlalg
