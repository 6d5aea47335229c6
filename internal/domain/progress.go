package domain

// Progress tracks a learner's state for a single exercise session.
// It is owned by exactly one session and mutated by a single writer;
// Attempts never decreases, Completed never reverts to false, and
// len(HintsGiven) never exceeds Attempts because a hint is recorded
// only together with a failed attempt.
type Progress struct {
	Completed  bool
	Attempts   int
	HintsGiven []string
}

// NewProgress creates a fresh Progress for a session that is starting
// or resuming an exercise.
func NewProgress() *Progress {
	return &Progress{
		HintsGiven: []string{},
	}
}

// MarkCompleted marks the exercise as solved. Calling it again is a no-op.
func (p *Progress) MarkCompleted() {
	p.Completed = true
}

// RecordAttempt registers one failed attempt. If hint is non-empty and
// has not been given before (by exact text equality) it is appended to
// HintsGiven in insertion order.
func (p *Progress) RecordAttempt(hint string) {
	p.Attempts++
	if hint == "" {
		return
	}
	for _, given := range p.HintsGiven {
		if given == hint {
			return
		}
	}
	p.HintsGiven = append(p.HintsGiven, hint)
}
