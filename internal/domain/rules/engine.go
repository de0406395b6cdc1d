package rules

import (
	"context"

	"github.com/abdidvp/docck/internal/domain"
)

// URLVerifier checks a descriptor URL and records the outcome into r.
type URLVerifier interface {
	Verify(ctx context.Context, r *domain.Reporter, rawURL, description, baseDir string)
}

// Engine applies the descriptor checklist and the packaging documentation
// policy to one project at a time. It holds no per-project state, so one
// Engine may validate several projects concurrently.
type Engine struct {
	urls    URLVerifier
	matcher domain.FileMatcher
}

func NewEngine(urls URLVerifier, matcher domain.FileMatcher) *Engine {
	return &Engine{urls: urls, matcher: matcher}
}

// Validate runs every check against project and records findings into r.
func (e *Engine) Validate(ctx context.Context, project *domain.Project, r *domain.Reporter) {
	e.CheckDescriptor(ctx, project, r)
	e.CheckDocumentation(project, r)
}

func (e *Engine) verify(ctx context.Context, r *domain.Reporter, p *domain.Project, url, description string) {
	e.urls.Verify(ctx, r, url, description, p.BaseDir)
}

// verifyAdvisory verifies url but records every finding as a warning.
func (e *Engine) verifyAdvisory(ctx context.Context, r *domain.Reporter, p *domain.Project, url, description string) {
	scratch := domain.NewReporter()
	e.verify(ctx, scratch, p, url, description)
	for _, msg := range scratch.Messages() {
		r.Warn(msg)
	}
}
