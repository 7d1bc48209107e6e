package sat

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

var ErrZeroLiteral = errors.New("literal 0 is reserved as the clause terminator")

// Writer emits DIMACS-CNF line by line, so arbitrarily large instances can be
// streamed without being held in memory. Callers must Flush once done.
type Writer struct {
	out     *bufio.Writer
	scratch []byte
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{
		out:     bufio.NewWriterSize(w, 64*1024),
		scratch: make([]byte, 0, 24),
	}
}

// Comment writes a "c" line. An empty text yields a bare "c".
func (writer *Writer) Comment(text string) error {
	line := "c"
	if text != "" {
		line += " " + text
	}
	return writer.line(line, "comment")
}

func (writer *Writer) Problem(variables uint64, clauses int) error {
	line := "p cnf " + strconv.FormatUint(variables, 10) + " " + strconv.Itoa(clauses)
	return writer.line(line, "problem line")
}

// Clause writes the literals space separated and terminated by 0
func (writer *Writer) Clause(literals []int64) error {
	if lo.Contains(literals, 0) {
		return ErrZeroLiteral
	}
	for _, literal := range literals {
		writer.scratch = strconv.AppendInt(writer.scratch[:0], literal, 10)
		writer.scratch = append(writer.scratch, ' ')
		if _, err := writer.out.Write(writer.scratch); err != nil {
			return errors.Wrap(err, "failed to write literal")
		}
	}
	if _, err := writer.out.WriteString("0\n"); err != nil {
		return errors.Wrap(err, "failed to write clause terminator")
	}
	return nil
}

func (writer *Writer) Flush() error {
	return errors.Wrap(writer.out.Flush(), "failed to flush DIMACS output")
}

func (writer *Writer) line(text, kind string) error {
	if _, err := writer.out.WriteString(text); err != nil {
		return errors.Wrapf(err, "failed to write %v", kind)
	}
	if err := writer.out.WriteByte('\n'); err != nil {
		return errors.Wrapf(err, "failed to write %v", kind)
	}
	return nil
}
