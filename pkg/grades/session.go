package grades

import "strconv"

// Asker returns the user's reply to a prompt.
type Asker interface {
	Ask(prompt string) (string, error)
}

// Session collects a subject count and that many grades from an Asker.
type Session struct {
	asker Asker
}

// NewSession returns a Session reading from a.
func NewSession(a Asker) *Session {
	return &Session{asker: a}
}

// Run asks for the subject count, then one grade per subject. It stops at
// the first grade above MaxGrade and returns ErrInvalidGrade along with the
// grades accepted so far. Parse and read errors are returned unchanged.
func (s *Session) Run() (Result, error) {
	var res Result
	reply, err := s.asker.Ask("Enter the number of subjects:")
	if err != nil {
		return res, err
	}
	n, err := ParseCount(reply)
	if err != nil {
		return res, err
	}
	res.Grades = make([]float64, 0, n)
	for i := 1; i <= n; i++ {
		reply, err := s.asker.Ask("Enter the grade for " + strconv.Itoa(i) + " ")
		if err != nil {
			return res, err
		}
		g, err := ParseGrade(reply)
		if err != nil {
			return res, err
		}
		if err := Validate(g); err != nil {
			return res, err
		}
		res.Grades = append(res.Grades, g)
	}
	avg, err := Average(res.Grades)
	if err != nil {
		return res, err
	}
	res.Average = avg
	res.Letter = Classify(avg)
	return res, nil
}
