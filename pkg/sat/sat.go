package sat

import (
	"strings"
)

type SAT struct {
	Variables uint64
	Clauses   [][]int64
	Comments  []string // Emitted as "c" lines ahead of the problem line
}

// ToDIMACS renders the instance. On error the returned string holds every line
// written before the failure.
func (s SAT) ToDIMACS() (string, error) {
	var builder strings.Builder
	err := s.WriteDIMACS(NewWriter(&builder))
	return builder.String(), err
}

// WriteDIMACS emits the instance through writer and flushes it, also when a
// line is rejected midway
func (s SAT) WriteDIMACS(writer *Writer) (err error) {
	defer func() {
		if flushErr := writer.Flush(); flushErr != nil && err == nil {
			err = flushErr
		}
	}()

	for _, comment := range s.Comments {
		if err := writer.Comment(comment); err != nil {
			return err
		}
	}
	if err := writer.Problem(s.Variables, len(s.Clauses)); err != nil {
		return err
	}
	for _, clause := range s.Clauses {
		if err := writer.Clause(clause); err != nil {
			return err
		}
	}
	return nil
}
