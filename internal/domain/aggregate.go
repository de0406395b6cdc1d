package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	problemsHeader = "The following documentation problems were found:"
	noErrorsFooter = "No documentation errors were found."
)

// ProjectReport is the frozen result of validating one project.
type ProjectReport struct {
	Project  string    `json:"project"`
	Path     string    `json:"path,omitempty"`
	Errors   int       `json:"errors"`
	Warnings int       `json:"warnings"`
	Findings []Finding `json:"findings"`
}

func (p ProjectReport) HasErrors() bool { return p.Errors > 0 }

// AggregateReport merges the per-project reports of a run in processing order.
type AggregateReport struct {
	Projects  []ProjectReport `json:"projects"`
	Skipped   []string        `json:"skipped,omitempty"`
	Revision  string          `json:"revision,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
	Passed    bool            `json:"passed"`
}

func NewAggregateReport() *AggregateReport {
	return &AggregateReport{Timestamp: time.Now(), Passed: true}
}

// Add appends the findings of a finished project. The reporter is not read
// again afterwards.
func (a *AggregateReport) Add(project *Project, r *Reporter) {
	pr := ProjectReport{
		Project:  project.DisplayName(),
		Path:     project.BaseDir,
		Errors:   r.Count(SeverityError),
		Warnings: r.Count(SeverityWarning),
		Findings: r.Findings(),
	}
	a.Projects = append(a.Projects, pr)
	if pr.HasErrors() {
		a.Passed = false
	}
}

// Skip records a project that was not validated because its packaging is
// not supported.
func (a *AggregateReport) Skip(project *Project) {
	a.Skipped = append(a.Skipped, project.DisplayName())
}

// HasErrors reports whether any project has at least one error. Warnings do
// not fail a run.
func (a *AggregateReport) HasErrors() bool {
	for _, p := range a.Projects {
		if p.HasErrors() {
			return true
		}
	}
	return false
}

// Totals returns the error and warning counts across all projects.
func (a *AggregateReport) Totals() (errors, warnings int) {
	for _, p := range a.Projects {
		errors += p.Errors
		warnings += p.Warnings
	}
	return errors, warnings
}

// Text renders the human-readable report. Projects without findings are
// omitted; when nothing failed the report ends with the no-errors sentence.
func (a *AggregateReport) Text() string {
	var buf strings.Builder
	for _, p := range a.Projects {
		if len(p.Findings) == 0 {
			continue
		}
		fmt.Fprintf(&buf, "\no %s (%s, %s)\n", p.Project,
			Plural(p.Errors, "error"), Plural(p.Warnings, "warning"))
		for _, f := range p.Findings {
			buf.WriteString("  " + f.Message + "\n")
		}
	}

	var out string
	if buf.Len() > 0 {
		out = problemsHeader + "\n" + buf.String()
	}
	if !a.HasErrors() {
		out += noErrorsFooter
	}
	return out
}

// Plural formats n with the noun, adding an s unless n is one.
func Plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
