package search

// Binary performs an iterative binary search over sorted (ascending) and
// returns the index of target together with true, or (0, false) when the
// target is absent. The [lo, hi) interval halves every step, so the loop
// terminates after at most ⌈log₂ n⌉+1 iterations.
//
// If sorted contains duplicates of target, the index of any one of them
// may be returned.
func Binary(sorted []int, target int) (int, bool) {
	lo, hi := 0, len(sorted)
	for lo < hi {
		mid := lo + (hi-lo)/2
		switch {
		case sorted[mid] == target:
			return mid, true
		case sorted[mid] < target:
			lo = mid + 1
		default:
			hi = mid
		}
	}

	return 0, false
}

// FindMissing returns the single absent value of a permutation of 1..n
// with one element removed, where n = len(nums)+1. It uses the
// arithmetic-series identity sum(1..n) = n·(n+1)/2, so no extra memory
// is needed.
//
// An empty slice means the set {1} lost its only element: the result
// is 1.
func FindMissing(nums []int) int {
	n := len(nums) + 1
	expected := n * (n + 1) / 2

	actual := 0
	for _, v := range nums {
		actual += v
	}

	return expected - actual
}

// ContainsDuplicate reports whether nums holds any value more than once.
// A single pass over the slice populates a set; the first repeated value
// short-circuits the scan.
func ContainsDuplicate(nums []int) bool {
	seen := make(map[int]struct{}, len(nums))
	for _, v := range nums {
		if _, dup := seen[v]; dup {
			return true
		}
		seen[v] = struct{}{}
	}

	return false
}
