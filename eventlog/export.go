package eventlog

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"
)

// event is one exported row: a single activity of a single case.
type event struct {
	CaseID      string    `json:"case_id"`
	Activity    string    `json:"activity"`
	Timestamp   time.Time `json:"timestamp"`
	Probability float64   `json:"probability"`
}

// events flattens the log into rows. Steps within a case are spaced one
// second apart so downstream tools see a strict order.
func (l *Log) events() []event {
	var out []event
	for i, p := range l.Paths {
		caseID := fmt.Sprintf("case_%d", i+1)
		if l.Truncated && i == len(l.Paths)-1 {
			caseID = TruncatedCase
		}
		for j, step := range p.Steps {
			out = append(out, event{
				CaseID:      caseID,
				Activity:    step,
				Timestamp:   p.Timestamp.Add(time.Duration(j) * time.Second),
				Probability: p.Probability,
			})
		}
	}
	return out
}

// WriteCSV writes the log as case_id/activity/timestamp/probability rows.
func (l *Log) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"case_id", "activity", "timestamp", "probability"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, e := range l.events() {
		row := []string{
			e.CaseID,
			e.Activity,
			e.Timestamp.Format(time.RFC3339),
			strconv.FormatFloat(e.Probability, 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSONL writes the log as one JSON event object per line.
func (l *Log) WriteJSONL(w io.Writer) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	for _, e := range l.events() {
		if err := enc.Encode(e); err != nil {
			return fmt.Errorf("encoding event: %w", err)
		}
	}
	return bw.Flush()
}
