package prime

// Twins returns every twin-prime pair (p, p+2) with p+2 ≤ limit, in
// ascending order, by scanning consecutive entries of Sieve(limit).
// A limit below 5 yields an empty slice.
// Complexity: dominated by the sieve, O(limit·log log limit).
func Twins(limit int64) []Pair {
	primes := Sieve(limit)

	twins := []Pair{}
	for i := 1; i < len(primes); i++ {
		if primes[i]-primes[i-1] == 2 {
			twins = append(twins, Pair{P: primes[i-1], Q: primes[i]})
		}
	}

	return twins
}
