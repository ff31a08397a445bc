package dp

// CoinChange returns the minimum number of coins from coins needed to
// sum exactly to amount, or -1 when no combination reaches it — a valid
// "no result", not an error. amount 0 needs 0 coins; a negative amount
// is unreachable by definition. Non-positive denominations are skipped.
//
// The 1-D table is seeded with the sentinel amount+1, safely above any
// feasible answer (at most `amount` coins of value 1); each cell takes
// the minimum over table[a-coin]+1.
// Complexity: O(amount·len(coins)) time, O(amount) memory.
func CoinChange(coins []int, amount int) int {
	if amount < 0 {
		return -1
	}
	if amount == 0 {
		return 0
	}

	sentinel := amount + 1 // "unreachable"
	table := make([]int, amount+1)
	for a := 1; a <= amount; a++ {
		table[a] = sentinel
	}

	for a := 1; a <= amount; a++ {
		for _, coin := range coins {
			if coin <= 0 || coin > a {
				continue
			}
			if candidate := table[a-coin] + 1; candidate < table[a] {
				table[a] = candidate
			}
		}
	}

	if table[amount] >= sentinel {
		return -1
	}

	return table[amount]
}
