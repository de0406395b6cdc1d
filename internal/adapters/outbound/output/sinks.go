// Package output implements the report sinks a run can publish to.
package output

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"k8s.io/klog/v2"

	"github.com/abdidvp/docck/internal/adapters/outbound/tui"
	"github.com/abdidvp/docck/internal/domain"
)

// FileSink writes the plain-text report to a file, replacing its contents.
type FileSink struct {
	path string
}

func NewFileSink(path string) *FileSink { return &FileSink{path: path} }

func (s *FileSink) Write(ctx context.Context, report *domain.AggregateReport) error {
	klog.FromContext(ctx).Info("Writing documentation check results to: " + s.path)

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &domain.OutputError{Path: s.path, Err: err}
		}
	}
	if err := os.WriteFile(s.path, []byte(report.Text()), 0644); err != nil {
		return &domain.OutputError{Path: s.path, Err: err}
	}
	return nil
}

func (s *FileSink) Location() string { return "'" + s.path + "'" }

// ConsoleSink logs the plain-text report: at error level when the run failed,
// at info level otherwise.
type ConsoleSink struct{}

func NewConsoleSink() *ConsoleSink { return &ConsoleSink{} }

func (s *ConsoleSink) Write(ctx context.Context, report *domain.AggregateReport) error {
	log := klog.FromContext(ctx)
	if report.HasErrors() {
		log.Error(nil, "Documentation check finished", "report", report.Text())
	} else {
		log.Info("Documentation check finished", "report", report.Text())
	}
	return nil
}

func (s *ConsoleSink) Location() string { return "the console output above" }

// PrettySink renders the styled terminal report.
type PrettySink struct {
	w io.Writer
}

func NewPrettySink(w io.Writer) *PrettySink { return &PrettySink{w: w} }

func (s *PrettySink) Write(_ context.Context, report *domain.AggregateReport) error {
	if _, err := fmt.Fprint(s.w, tui.RenderReport(report)); err != nil {
		return &domain.OutputError{Path: "stdout", Err: err}
	}
	return nil
}

func (s *PrettySink) Location() string { return "the report above" }

// JSONSink prints the aggregate as indented JSON.
type JSONSink struct {
	w io.Writer
}

func NewJSONSink(w io.Writer) *JSONSink { return &JSONSink{w: w} }

func (s *JSONSink) Write(_ context.Context, report *domain.AggregateReport) error {
	enc := json.NewEncoder(s.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return &domain.OutputError{Path: "stdout", Err: err}
	}
	return nil
}

func (s *JSONSink) Location() string { return "the JSON report" }
