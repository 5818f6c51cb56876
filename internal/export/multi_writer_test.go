package export

import (
	"errors"
	"testing"
)

type stubWriter struct {
	scenarios []ScenarioResultRow
	summaries []SummaryRow
	err       error
}

func (s *stubWriter) WriteScenario(row ScenarioResultRow) error {
	s.scenarios = append(s.scenarios, row)
	return s.err
}

func (s *stubWriter) WriteSummary(row SummaryRow) error {
	s.summaries = append(s.summaries, row)
	return s.err
}

func TestMultiWriterFanOut(t *testing.T) {
	a, b := &stubWriter{}, &stubWriter{}
	mw := NewMultiWriter(a, b)

	if err := mw.WriteScenario(ScenarioResultRow{Scenario: "s1"}); err != nil {
		t.Fatalf("WriteScenario: %v", err)
	}
	if err := mw.WriteSummary(SummaryRow{RunID: "r1"}); err != nil {
		t.Fatalf("WriteSummary: %v", err)
	}
	if len(a.scenarios) != 1 || len(b.scenarios) != 1 {
		t.Fatalf("scenario row not fanned out: %d/%d", len(a.scenarios), len(b.scenarios))
	}
	if len(a.summaries) != 1 || len(b.summaries) != 1 {
		t.Fatalf("summary row not fanned out: %d/%d", len(a.summaries), len(b.summaries))
	}
}

func TestMultiWriterContinuesPastFailure(t *testing.T) {
	boom := errors.New("boom")
	a := &stubWriter{err: boom}
	b := &stubWriter{}
	mw := NewMultiWriter(a, b)

	if err := mw.WriteScenario(ScenarioResultRow{}); !errors.Is(err, boom) {
		t.Fatalf("expected first error, got %v", err)
	}
	if len(b.scenarios) != 1 {
		t.Fatalf("second writer skipped after failure")
	}
}
