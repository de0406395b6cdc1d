package application

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"

	"github.com/abdidvp/docck/internal/domain"
	"github.com/abdidvp/docck/internal/domain/rules"
	"github.com/abdidvp/docck/internal/domain/urlcheck"
)

// CheckService orchestrates one documentation check run:
// load descriptors → validate each supported project → aggregate → publish.
// A CheckService carries the reachability cache of its run, so it must not be
// reused across runs with different configuration.
type CheckService struct {
	cfg      domain.RunConfig
	loader   domain.DescriptorLoader
	verifier *urlcheck.Verifier
	engine   *rules.Engine
	git      domain.GitInfo
	history  domain.RunHistory
}

// Option configures optional collaborators of a CheckService.
type Option func(*CheckService)

// WithGitInfo stamps reports with the HEAD revision of the project root.
func WithGitInfo(g domain.GitInfo) Option { return func(s *CheckService) { s.git = g } }

// WithHistory records a summary of every run.
func WithHistory(h domain.RunHistory) Option { return func(s *CheckService) { s.history = h } }

func NewCheckService(
	cfg domain.RunConfig,
	loader domain.DescriptorLoader,
	prober domain.URLProber,
	matcher domain.FileMatcher,
	opts ...Option,
) *CheckService {
	cfg = cfg.WithDefaults()
	verifier := urlcheck.NewVerifier(prober, urlcheck.NewCache(), cfg.Offline)
	s := &CheckService{
		cfg:      cfg,
		loader:   loader,
		verifier: verifier,
		engine:   rules.NewEngine(verifier, matcher),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CheckPath loads the descriptors under rootPath, checks them and records the
// run in history.
func (s *CheckService) CheckPath(ctx context.Context, rootPath string) (*domain.AggregateReport, error) {
	projects, err := s.loader.Load(rootPath)
	if err != nil {
		return nil, fmt.Errorf("loading project descriptors: %w", err)
	}

	report, err := s.Check(ctx, projects)
	if err != nil {
		return nil, err
	}

	if s.git != nil && s.git.IsGitRepo(rootPath) {
		if hash, err := s.git.CommitHash(rootPath); err == nil {
			report.Revision = hash
		}
	}

	s.record(ctx, rootPath, report)
	return report, nil
}

// Check validates projects and aggregates their findings in input order.
// Projects whose packaging is not supported are skipped.
func (s *CheckService) Check(ctx context.Context, projects []domain.Project) (*domain.AggregateReport, error) {
	log := klog.FromContext(ctx)
	report := domain.NewAggregateReport()

	results := make([]*domain.Reporter, len(projects))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Concurrency)

	for i := range projects {
		p := &projects[i]
		if !s.cfg.Supports(p.Packaging) {
			log.Info("Skipping unsupported project: " + p.DisplayName())
			continue
		}
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			log.Info("Checking project: " + p.DisplayName())
			r := domain.NewReporter()
			s.engine.Validate(gctx, p, r)
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("checking projects: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("checking projects: %w", err)
	}

	for i := range projects {
		if results[i] == nil {
			report.Skip(&projects[i])
			continue
		}
		report.Add(&projects[i], results[i])
	}
	return report, nil
}

// Publish writes report to sink and turns the outcome into the run result:
// an *domain.OutputError when the sink failed, a *domain.DocumentationError
// when any project has errors, nil otherwise.
func (s *CheckService) Publish(ctx context.Context, report *domain.AggregateReport, sink domain.ReportSink) error {
	if err := sink.Write(ctx, report); err != nil {
		return err
	}
	if report.HasErrors() {
		return &domain.DocumentationError{Location: sink.Location()}
	}
	return nil
}

// VerifyURL checks a single URL the way descriptor URLs are checked and
// returns the findings.
func (s *CheckService) VerifyURL(ctx context.Context, rawURL, description, baseDir string) []domain.Finding {
	r := domain.NewReporter()
	s.verifier.Verify(ctx, r, rawURL, description, baseDir)
	return r.Findings()
}

// Config returns the effective configuration of the run.
func (s *CheckService) Config() domain.RunConfig { return s.cfg }

func (s *CheckService) record(ctx context.Context, rootPath string, report *domain.AggregateReport) {
	if s.history == nil || !s.cfg.HistoryEnabled() {
		return
	}
	errs, warns := report.Totals()
	entry := domain.RunEntry{
		Timestamp:  report.Timestamp.UTC().Format(time.RFC3339),
		CommitHash: report.Revision,
		Projects:   len(report.Projects),
		Errors:     errs,
		Warnings:   warns,
		Passed:     !report.HasErrors(),
	}
	if err := s.history.Save(rootPath, entry); err != nil {
		klog.FromContext(ctx).Error(err, "Recording run history failed", "path", rootPath)
	}
}
