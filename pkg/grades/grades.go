package grades

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MaxGrade is the highest accepted grade. There is no lower bound.
const MaxGrade = 20

// Letter is a letter grade band.
type Letter string

const (
	F Letter = "F"
	C Letter = "C"
	B Letter = "B"
	A Letter = "A"
)

var (
	// ErrInvalidGrade reports a grade above MaxGrade.
	ErrInvalidGrade = errors.New("invalid grade")
	// ErrNoSubjects reports a subject count that is not positive.
	ErrNoSubjects = errors.New("number of subjects must be positive")
)

// Result is a completed run: every accepted grade, their mean, and its band.
type Result struct {
	Grades  []float64
	Average float64
	Letter  Letter
}

// ParseCount parses the number of subjects.
func ParseCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parse number of subjects: %w", err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrNoSubjects, n)
	}
	return n, nil
}

// ParseGrade parses a single grade. It does not validate the range.
func ParseGrade(s string) (float64, error) {
	g, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("parse grade: %w", err)
	}
	return g, nil
}

// Validate rejects grades above MaxGrade. Zero and negative grades pass.
func Validate(g float64) error {
	if g > MaxGrade {
		return fmt.Errorf("%w: %g is above %d", ErrInvalidGrade, g, MaxGrade)
	}
	return nil
}

// Average returns the arithmetic mean of gs.
func Average(gs []float64) (float64, error) {
	if len(gs) == 0 {
		return 0, ErrNoSubjects
	}
	sum := 0.0
	for _, g := range gs {
		sum += g
	}
	return sum / float64(len(gs)), nil
}

// Classify maps an average to its letter band:
//   - below 12 -> F
//   - 12 up to 15 -> C
//   - 15 up to 18 -> B
//   - 18 and above -> A
func Classify(avg float64) Letter {
	switch {
	case avg < 12:
		return F
	case avg < 15:
		return C
	case avg < 18:
		return B
	default:
		return A
	}
}

// Format renders the final report line.
func Format(r Result) string {
	return fmt.Sprintf("Final grade: %.2f and letter grade: %s", r.Average, r.Letter)
}
