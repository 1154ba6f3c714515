package timer

import (
	"time"

	"github.com/abhisek/focusclock/internal/accrual"
)

// tickMsg is the periodic clock tick. It reaches the timer even while
// another screen is on top so accrual never stalls.
type tickMsg time.Time

func (tickMsg) Background() {}

// selectSubjectMsg is emitted by the subject menu.
type selectSubjectMsg struct {
	Subject accrual.Subject
}

// transitionRecordedMsg reports the outcome of a journal write. Writes can
// finish after another screen was pushed, so it is routed like a tick.
type transitionRecordedMsg struct {
	Err error
}

func (transitionRecordedMsg) Background() {}
