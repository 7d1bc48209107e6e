package generator

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Probabilities holds the inclusion probability of every variable, indexed by
// variable. Index 0 is a placeholder so that variables keep their DIMACS ids.
type Probabilities []float64

// DrawProbabilities draws one uniform probability per variable. variables must
// not be negative, DrawProbabilities panics otherwise.
func DrawProbabilities(rng *rand.Rand, variables int) Probabilities {
	probabilities := make(Probabilities, variables+1)
	for variable := 1; variable <= variables; variable++ {
		probabilities[variable] = rng.Float64()
	}
	return probabilities
}

func (probabilities Probabilities) Variables() int {
	return max(len(probabilities)-1, 0)
}

// Describe renders "1=>p1% 2=>p2% ..." with percentages rounded to 2 decimals
func (probabilities Probabilities) Describe() string {
	if probabilities.Variables() == 0 {
		return ""
	}
	entries := lo.Map(probabilities[1:], func(probability float64, index int) string {
		return fmt.Sprintf("%d=>%s%%", index+1, formatPercentage(probability))
	})
	return strings.Join(entries, " ")
}

// Expected is the mean clause size before repair
func (probabilities Probabilities) Expected() float64 {
	if probabilities.Variables() == 0 {
		return 0
	}
	return lo.Sum(probabilities[1:])
}

// Rounds half away from zero on the scaled binary value, so exact ties may
// differ from a round-half-to-even formatter. Trailing zeros are dropped but
// one fractional digit is always kept (5.0, 37.5, 12.34).
func formatPercentage(probability float64) string {
	percentage := math.Round(probability*100*100) / 100
	formatted := strconv.FormatFloat(percentage, 'f', -1, 64)
	if !strings.Contains(formatted, ".") {
		formatted += ".0"
	}
	return formatted
}
