package sequence

import "math/bits"

// Factorial returns n! computed iteratively, with every multiplication
// checked: a non-zero high word means the product left uint64 range and
// the call returns ErrOverflow. 0! and 1! are 1; MaxFactorial (20) is
// the last representable input.
// Complexity: O(n) time, O(1) memory.
func Factorial(n uint) (uint64, error) {
	result := uint64(1)
	for i := uint64(2); i <= uint64(n); i++ {
		hi, lo := bits.Mul64(result, i)
		if hi != 0 {
			return 0, ErrOverflow
		}
		result = lo
	}

	return result, nil
}
