package generator

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// Stats summarises the clauses of a single run
type Stats struct {
	Clauses   int
	Repaired  int // Clauses that went through Repair's resampling branch
	Literals  int
	Negated   int
	Variables mapset.Set[int64] // Variables occurring in at least one clause
}

func newStats() Stats {
	return Stats{Variables: mapset.NewThreadUnsafeSet[int64]()}
}

func (stats *Stats) record(clause []int64, repaired bool) {
	stats.Clauses++
	if repaired {
		stats.Repaired++
	}
	stats.Literals += len(clause)
	stats.Negated += lo.CountBy(clause, func(literal int64) bool { return literal < 0 })
	for _, literal := range clause {
		stats.Variables.Add(lo.Ternary(literal < 0, -literal, literal))
	}
}

func (stats Stats) NegatedRatio() float64 {
	if stats.Literals == 0 {
		return 0
	}
	return float64(stats.Negated) / float64(stats.Literals)
}

func (stats Stats) MeanClauseSize() float64 {
	if stats.Clauses == 0 {
		return 0
	}
	return float64(stats.Literals) / float64(stats.Clauses)
}

func (stats Stats) Fields() logrus.Fields {
	covered := 0
	if stats.Variables != nil {
		covered = stats.Variables.Cardinality()
	}
	return logrus.Fields{
		"clauses":          stats.Clauses,
		"repaired":         stats.Repaired,
		"literals":         stats.Literals,
		"negatedRatio":     stats.NegatedRatio(),
		"meanClauseSize":   stats.MeanClauseSize(),
		"variablesCovered": covered,
	}
}
