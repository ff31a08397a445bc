package prime

// Factorize returns the prime factors of n in non-decreasing order with
// multiplicity: the factor 2 is divided out first, then odd candidates
// from 3 upward while candidate² ≤ remainder. Whatever remains above 1
// is itself prime and is appended last.
// Factorize(1) returns an empty slice; n < 1 returns ErrNonPositive.
// Complexity: O(√n).
func Factorize(n int64) ([]int64, error) {
	if n < 1 {
		return nil, ErrNonPositive
	}

	factors := []int64{}
	for n%2 == 0 {
		factors = append(factors, 2)
		n /= 2
	}
	for i := int64(3); i*i <= n; i += 2 {
		for n%i == 0 {
			factors = append(factors, i)
			n /= i
		}
	}
	if n > 1 {
		factors = append(factors, n)
	}

	return factors, nil
}
