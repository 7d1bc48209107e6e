package generator

import (
	"math/rand/v2"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

const (
	MinClauseSize = 2 // Candidates below this size are repaired
	RepairMinSize = 3 // Smallest size a repaired clause is drawn with

	negationThreshold = 0.75
)

var ErrEmptyRepairRange = errors.New("not enough variables to repair clause")

// Sign returns -1 with probability 0.25 and +1 otherwise
func Sign(rng *rand.Rand) int64 {
	if rng.Float64() > negationThreshold {
		return -1
	}
	return 1
}

// BuildCandidate includes every variable j for which a fresh draw falls below
// probabilities[j]. Variables come out distinct and in ascending order.
func BuildCandidate(rng *rand.Rand, probabilities Probabilities) []int64 {
	candidate := make([]int64, 0)
	for variable := 1; variable <= probabilities.Variables(); variable++ {
		if rng.Float64() < probabilities[variable] {
			candidate = append(candidate, int64(variable))
		}
	}
	return candidate
}

// Repair shuffles a candidate of at least MinClauseSize variables in place.
// Smaller candidates are discarded in favour of a uniform random subset of
// {1..variables} whose size is drawn uniformly from [RepairMinSize, variables].
//
// With fewer than RepairMinSize variables the size range is empty and
// ErrEmptyRepairRange is returned.
func Repair(rng *rand.Rand, candidate []int64, variables int) ([]int64, error) {
	if len(candidate) >= MinClauseSize {
		rng.Shuffle(len(candidate), func(i, j int) {
			candidate[i], candidate[j] = candidate[j], candidate[i]
		})
		return candidate, nil
	}

	if variables < RepairMinSize {
		return nil, errors.Wrapf(ErrEmptyRepairRange, "sample size range [%d, %d] is empty", RepairMinSize, variables)
	}

	size := RepairMinSize + rng.IntN(variables-RepairMinSize+1)
	return lo.Map(rng.Perm(variables)[:size], func(index int, _ int) int64 {
		return int64(index) + 1
	}), nil
}

// Negate applies Sign to every variable of the clause in place
func Negate(rng *rand.Rand, clause []int64) []int64 {
	for i := range clause {
		clause[i] *= Sign(rng)
	}
	return clause
}
