package domain

import (
	"fmt"
	"testing"
)

func TestProgress_MarkCompleted_Idempotent(t *testing.T) {
	p := NewProgress()
	if p.Completed {
		t.Fatal("new progress must not be completed")
	}

	p.MarkCompleted()
	if !p.Completed {
		t.Error("progress should be completed after MarkCompleted")
	}

	attemptsBefore := p.Attempts
	hintsBefore := len(p.HintsGiven)
	p.MarkCompleted()
	if !p.Completed {
		t.Error("completed must never revert")
	}
	if p.Attempts != attemptsBefore || len(p.HintsGiven) != hintsBefore {
		t.Error("second MarkCompleted must be a no-op beyond the flag")
	}
}

func TestProgress_RecordAttempt_DistinctHints(t *testing.T) {
	p := NewProgress()

	const n = 4
	for i := 0; i < n; i++ {
		p.RecordAttempt(fmt.Sprintf("hint %d", i))
	}

	if p.Attempts != n {
		t.Errorf("attempts = %d, want %d", p.Attempts, n)
	}
	if len(p.HintsGiven) != n {
		t.Errorf("hints given = %d, want %d", len(p.HintsGiven), n)
	}
	// insertion order preserved
	for i, h := range p.HintsGiven {
		if want := fmt.Sprintf("hint %d", i); h != want {
			t.Errorf("hints[%d] = %q, want %q", i, h, want)
		}
	}
}

func TestProgress_RecordAttempt_DuplicateHintSuppressed(t *testing.T) {
	p := NewProgress()

	p.RecordAttempt("think about edge cases")
	p.RecordAttempt("think about edge cases")

	if p.Attempts != 2 {
		t.Errorf("attempts = %d, want 2", p.Attempts)
	}
	if len(p.HintsGiven) != 1 {
		t.Errorf("hints given = %d, want 1 (duplicates suppressed)", len(p.HintsGiven))
	}
}

func TestProgress_RecordAttempt_EmptyHint(t *testing.T) {
	p := NewProgress()

	p.RecordAttempt("")
	if p.Attempts != 1 {
		t.Errorf("attempts = %d, want 1", p.Attempts)
	}
	if len(p.HintsGiven) != 0 {
		t.Error("empty hint must not be recorded")
	}
	if len(p.HintsGiven) > p.Attempts {
		t.Error("hints given must never exceed attempts")
	}
}
