package collector

/*
Budget-constrained egg allocator. Given the eggs currently available in
the shop, the configured price catalog and priority table, and a coin
budget for the round, picks which eggs to hatch this round.

Selection is greedy by priority rank, not by value density: a rank-1
egg that eats the whole budget wins over several cheaper low-rank eggs.
*/

import (
	"fmt"
	"sort"
)

// UnknownItemError reports an available egg with no catalog or
// priority entry. The whole allocation fails; nothing is committed.
type UnknownItemError struct {
	Name string
}

func (e *UnknownItemError) Error() string {
	return fmt.Sprintf("unknown item %q: no catalog or priority entry", e.Name)
}

// InvalidBudgetError reports a negative coin budget.
type InvalidBudgetError struct {
	Budget int
}

func (e *InvalidBudgetError) Error() string {
	return fmt.Sprintf("invalid budget %d: must be non-negative", e.Budget)
}

// Result is one round's allocation: egg names in commit order and the
// coins they add up to.
type Result struct {
	Selected   []string
	TotalSpent int
}

// Allocate picks a subset of available eggs that respects both the
// budget and the priority ordering.
//
// available may contain duplicates; each name is considered once.
// Candidates are ordered by rank ascending (rank 1 first); equal ranks
// break by price ascending, then name ascending. The sorted list is
// walked in order and a candidate is committed only when its price
// still fits the remaining budget; an egg that does not fit is skipped,
// not a stop condition, so a cheaper lower-priority egg may still land.
//
// Pure function: no I/O, no shared state, deterministic for identical
// inputs. TotalSpent never exceeds budget.
func Allocate(available []string, catalog map[string]int, priorities map[string]int, budget int) (Result, error) {
	if budget < 0 {
		return Result{}, &InvalidBudgetError{Budget: budget}
	}

	seen := make(map[string]struct{}, len(available))
	candidates := make([]string, 0, len(available))
	for _, name := range available {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		// Validate defensively even though callers filter first.
		if _, ok := catalog[name]; !ok {
			return Result{}, &UnknownItemError{Name: name}
		}
		if _, ok := priorities[name]; !ok {
			return Result{}, &UnknownItemError{Name: name}
		}
		candidates = append(candidates, name)
	}

	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if priorities[a] != priorities[b] {
			return priorities[a] < priorities[b]
		}
		if catalog[a] != catalog[b] {
			return catalog[a] < catalog[b]
		}
		return a < b
	})

	result := Result{Selected: []string{}}
	for _, name := range candidates {
		price := catalog[name]
		if result.TotalSpent+price > budget {
			continue
		}
		result.Selected = append(result.Selected, name)
		result.TotalSpent += price
	}

	return result, nil
}
