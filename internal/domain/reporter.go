package domain

// Reporter collects the findings of a single project in the order they were
// recorded. It is not safe for concurrent use; each project gets its own.
type Reporter struct {
	findings []Finding
}

func NewReporter() *Reporter {
	return &Reporter{}
}

func (r *Reporter) Error(message string) {
	r.Add(Finding{Severity: SeverityError, Message: message})
}

func (r *Reporter) Warn(message string) {
	r.Add(Finding{Severity: SeverityWarning, Message: message})
}

// Add records f as is. Identical findings are kept as separate entries.
func (r *Reporter) Add(f Finding) {
	r.findings = append(r.findings, f)
}

func (r *Reporter) HasErrors() bool {
	for _, f := range r.findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

// MessagesByType returns the messages of one severity in insertion order.
func (r *Reporter) MessagesByType(severity Severity) []string {
	var out []string
	for _, f := range r.findings {
		if f.Severity == severity {
			out = append(out, f.Message)
		}
	}
	return out
}

// Messages returns every message regardless of severity, in insertion order.
func (r *Reporter) Messages() []string {
	out := make([]string, 0, len(r.findings))
	for _, f := range r.findings {
		out = append(out, f.Message)
	}
	return out
}

// Findings returns a copy of the recorded findings.
func (r *Reporter) Findings() []Finding {
	out := make([]Finding, len(r.findings))
	copy(out, r.findings)
	return out
}

func (r *Reporter) Count(severity Severity) int {
	n := 0
	for _, f := range r.findings {
		if f.Severity == severity {
			n++
		}
	}
	return n
}

func (r *Reporter) Len() int { return len(r.findings) }
