package prime

// IsPrime reports whether n is prime by trial division.
// n < 2 → false, 2 → true, even n > 2 → false; otherwise odd divisors
// up to floor(√n) are tried. Never errors: the predicate is total.
// Complexity: O(√n).
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	// i*i ≤ n avoids a float sqrt and cannot overflow for any prime
	// candidate worth testing
	for i := int64(3); i*i <= n; i += 2 {
		if n%i == 0 {
			return false
		}
	}

	return true
}

// Sieve returns all primes ≤ limit in ascending order using the Sieve
// of Eratosthenes: for each surviving i up to √limit, multiples of i
// are struck starting at i². A limit below 2 — zero and negatives
// included — yields an empty slice rather than an error.
// Complexity: O(limit·log log limit) time, O(limit) memory.
func Sieve(limit int64) []int64 {
	if limit < 2 {
		return []int64{}
	}

	// isPrime[i] == true means "candidate still believed prime";
	// 0 and 1 start (and stay) false.
	isPrime := make([]bool, limit+1)
	for i := int64(2); i <= limit; i++ {
		isPrime[i] = true
	}
	for i := int64(2); i*i <= limit; i++ {
		if !isPrime[i] {
			continue
		}
		for j := i * i; j <= limit; j += i {
			isPrime[j] = false
		}
	}

	primes := make([]int64, 0, limit/2)
	for i := int64(2); i <= limit; i++ {
		if isPrime[i] {
			primes = append(primes, i)
		}
	}

	return primes
}
