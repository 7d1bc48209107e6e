package generator

import (
	"io"
	"math/rand/v2"

	"github.com/limaJavier/satgen/pkg/sat"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	DefaultVariables = 500
	DefaultClauses   = 100000

	progressInterval = 10000
)

var ErrNegativeSize = errors.New("variable and clause counts must not be negative")

type Generator struct {
	rng    *rand.Rand
	logger logrus.FieldLogger
}

// New returns a Generator drawing every random value from rng. Passing a nil
// logger falls back to logrus' standard logger.
func New(rng *rand.Rand, logger logrus.FieldLogger) *Generator {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Generator{rng: rng, logger: logger}
}

// Generate draws fresh probabilities for the given number of variables and
// streams an instance with the given number of clauses into w
func (generator *Generator) Generate(w io.Writer, variables, clauses int) (Stats, error) {
	if variables < 0 {
		return newStats(), errors.Wrapf(ErrNegativeSize, "variables: %d", variables)
	}
	probabilities := DrawProbabilities(generator.rng, variables)
	generator.logger.WithFields(logrus.Fields{
		"variables":          variables,
		"expectedClauseSize": probabilities.Expected(),
	}).Debug("drew variable probabilities")

	return generator.WriteInstance(w, probabilities, clauses)
}

// WriteInstance writes the header followed by the clauses. Clauses are
// written as soon as they are built, so a failure leaves truncated output.
func (generator *Generator) WriteInstance(w io.Writer, probabilities Probabilities, clauses int) (Stats, error) {
	stats := newStats()
	if clauses < 0 {
		return stats, errors.Wrapf(ErrNegativeSize, "clauses: %d", clauses)
	}
	writer := sat.NewWriter(w)

	if err := generator.WriteHeader(writer, probabilities, clauses); err != nil {
		return stats, err
	}

	for index := 1; index <= clauses; index++ {
		clause, repaired, err := generator.clause(probabilities)
		if err != nil {
			// Keep whatever was produced so far, as any other writer failure would
			if flushErr := writer.Flush(); flushErr != nil {
				generator.logger.WithError(flushErr).Error("cannot flush partial instance")
			}
			return stats, errors.Wrapf(err, "cannot build clause %d", index)
		}
		if err := writer.Clause(clause); err != nil {
			return stats, err
		}
		stats.record(clause, repaired)

		if index%progressInterval == 0 {
			generator.logger.WithField("clauses", index).Debug("generation progress")
		}
	}

	if err := writer.Flush(); err != nil {
		return stats, err
	}
	return stats, nil
}

func (generator *Generator) WriteHeader(writer *sat.Writer, probabilities Probabilities, clauses int) error {
	for _, comment := range headerComments(probabilities) {
		if err := writer.Comment(comment); err != nil {
			return err
		}
	}
	return writer.Problem(uint64(probabilities.Variables()), clauses)
}

// Clause builds a single signed clause from probabilities
func (generator *Generator) Clause(probabilities Probabilities) ([]int64, error) {
	clause, _, err := generator.clause(probabilities)
	return clause, err
}

// Instance builds a whole instance in memory
func (generator *Generator) Instance(probabilities Probabilities, clauses int) (sat.SAT, error) {
	if clauses < 0 {
		return sat.SAT{}, errors.Wrapf(ErrNegativeSize, "clauses: %d", clauses)
	}
	instance := sat.SAT{
		Variables: uint64(probabilities.Variables()),
		Clauses:   make([][]int64, 0, clauses),
		Comments:  headerComments(probabilities),
	}

	for index := 1; index <= clauses; index++ {
		clause, _, err := generator.clause(probabilities)
		if err != nil {
			return sat.SAT{}, errors.Wrapf(err, "cannot build clause %d", index)
		}
		instance.Clauses = append(instance.Clauses, clause)
	}

	return instance, nil
}

func (generator *Generator) clause(probabilities Probabilities) (clause []int64, repaired bool, err error) {
	candidate := BuildCandidate(generator.rng, probabilities)
	repaired = len(candidate) < MinClauseSize

	clause, err = Repair(generator.rng, candidate, probabilities.Variables())
	if err != nil {
		return nil, repaired, err
	}
	return Negate(generator.rng, clause), repaired, nil
}

func headerComments(probabilities Probabilities) []string {
	return []string{"probability for each", probabilities.Describe()}
}
