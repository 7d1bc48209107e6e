package generator

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPercentage(t *testing.T) {
	cases := map[float64]string{
		0:        "0.0",
		0.05:     "5.0",
		0.375:    "37.5",
		0.123449: "12.34",
		0.4567:   "45.67",
		0.99999:  "100.0",
	}
	for probability, expected := range cases {
		assert.Equal(t, expected, formatPercentage(probability), "probability %v", probability)
	}
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "1=>50.0% 2=>25.0%", Probabilities{0, 0.5, 0.25}.Describe())
	assert.Equal(t, "", Probabilities{0}.Describe())
	assert.Equal(t, "", Probabilities(nil).Describe())
}

func TestDrawProbabilities(t *testing.T) {
	rng := rand.New(rand.NewPCG(41, 42))
	probabilities := DrawProbabilities(rng, 500)

	assert.Len(t, probabilities, 501)
	assert.Equal(t, 500, probabilities.Variables())
	assert.Zero(t, probabilities[0])
	for _, probability := range probabilities[1:] {
		assert.GreaterOrEqual(t, probability, 0.0)
		assert.Less(t, probability, 1.0)
	}
	assert.InDelta(t, 250, probabilities.Expected(), 30)
}
