package dp

// MaxSubarray returns the maximum sum over all non-empty contiguous
// subarrays of nums, via Kadane's single pass: at each element the
// running sum either extends or restarts, and the best value seen wins.
// Works with all-negative input (the answer is the largest element).
// An empty slice is rejected with ErrEmptyInput.
// Complexity: O(n) time, O(1) memory.
func MaxSubarray(nums []int) (int, error) {
	if len(nums) == 0 {
		return 0, ErrEmptyInput
	}

	best, current := nums[0], nums[0]
	for _, num := range nums[1:] {
		if current+num > num {
			current += num
		} else {
			current = num // restarting beats extending
		}
		if current > best {
			best = current
		}
	}

	return best, nil
}
