package accrual

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSubject is returned when a name does not match any Subject.
var ErrUnknownSubject = errors.New("unknown subject")

// Subject is one of the fixed focus categories time is tracked against.
// The zero value is not a valid subject.
type Subject int

const (
	Math Subject = iota + 1
	Physics
	Chemistry
	English
	Reading
	Training
)

var subjectNames = map[Subject]string{
	Math:      "math",
	Physics:   "physics",
	Chemistry: "chemistry",
	English:   "english",
	Reading:   "reading",
	Training:  "training",
}

// Subjects returns every subject in display order.
func Subjects() []Subject {
	return []Subject{Math, Physics, Chemistry, English, Reading, Training}
}

// Valid reports whether s belongs to the closed subject set.
func (s Subject) Valid() bool {
	_, ok := subjectNames[s]
	return ok
}

func (s Subject) String() string {
	if name, ok := subjectNames[s]; ok {
		return name
	}
	return fmt.Sprintf("subject(%d)", int(s))
}

// ParseSubject resolves a subject by name, case-insensitively.
func ParseSubject(name string) (Subject, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, s := range Subjects() {
		if subjectNames[s] == want {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSubject, name)
}

// Selection is the current focus target: exactly one Subject, or resting.
// The zero value is resting.
type Selection struct {
	subject Subject
}

// Rest returns the resting selection.
func Rest() Selection {
	return Selection{}
}

// Focus returns a selection on subject s. Subjects outside the closed set
// yield Rest().
func Focus(s Subject) Selection {
	if !s.Valid() {
		return Rest()
	}
	return Selection{subject: s}
}

// IsResting reports whether no subject is selected.
func (sel Selection) IsResting() bool {
	return sel.subject == 0
}

// Subject returns the selected subject and false when resting.
func (sel Selection) Subject() (Subject, bool) {
	return sel.subject, sel.subject != 0
}

func (sel Selection) String() string {
	if sel.IsResting() {
		return "resting"
	}
	return sel.subject.String()
}
