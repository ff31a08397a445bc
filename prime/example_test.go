package prime_test

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/prime"
)

// ExampleSieve lists every prime up to 50.
func ExampleSieve() {
	fmt.Println(prime.Sieve(50))
	// Output:
	// [2 3 5 7 11 13 17 19 23 29 31 37 41 43 47]
}

// ExampleFactorize decomposes 315 into primes with multiplicity.
func ExampleFactorize() {
	factors, err := prime.Factorize(315)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(factors)
	// Output:
	// [3 3 5 7]
}

// ExampleTwins lists the twin-prime pairs below 30.
func ExampleTwins() {
	for _, tw := range prime.Twins(30) {
		fmt.Printf("(%d, %d) ", tw.P, tw.Q)
	}
	fmt.Println()
	// Output:
	// (3, 5) (5, 7) (11, 13) (17, 19)
}
