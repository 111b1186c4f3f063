package diag

import "github.com/sessionlog/sessionlog-go/pkg/session"

// MultiReporter hands every report to each of its reporters in order.
type MultiReporter struct {
	reporters []Reporter
}

// NewMultiReporter returns a reporter fanning out to the given reporters.
// Nil entries are dropped.
func NewMultiReporter(reporters ...Reporter) *MultiReporter {
	m := &MultiReporter{}
	for _, r := range reporters {
		if r != nil {
			m.reporters = append(m.reporters, r)
		}
	}
	return m
}

// Report forwards the failure.
func (m *MultiReporter) Report(id session.ID, message string, cause error) {
	for _, r := range m.reporters {
		r.Report(id, message, cause)
	}
}

var _ Reporter = (*MultiReporter)(nil)
