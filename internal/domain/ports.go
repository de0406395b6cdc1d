package domain

import "context"

// DescriptorLoader reads the project descriptors under a root directory. The
// root project comes first, followed by its modules depth-first.
type DescriptorLoader interface {
	Load(rootPath string) ([]Project, error)
}

// ConfigLoader reads run configuration for a project root.
type ConfigLoader interface {
	Load(rootPath string) (RunConfig, error)
}

// FileMatcher returns the files under dir, relative to dir, that match any of
// the include patterns. A missing dir yields no files and no error.
type FileMatcher interface {
	Match(dir string, includes []string) ([]string, error)
}

// URLProber issues one lightweight existence request and returns the HTTP
// status code. A non-nil error means the request never produced a response.
type URLProber interface {
	Probe(ctx context.Context, url string) (int, error)
}

// ReportSink publishes a finished report.
type ReportSink interface {
	Write(ctx context.Context, report *AggregateReport) error
	// Location names where the report went, for the failure message.
	Location() string
}

// GitInfo exposes repository metadata used to stamp reports.
type GitInfo interface {
	IsGitRepo(projectPath string) bool
	CommitHash(projectPath string) (string, error)
}

// RunHistory persists a summary of each run.
type RunHistory interface {
	Save(projectPath string, entry RunEntry) error
	Load(projectPath string) ([]RunEntry, error)
}

// RunEntry is one line of run history.
type RunEntry struct {
	Timestamp  string `json:"timestamp"`
	CommitHash string `json:"commit_hash,omitempty"`
	Projects   int    `json:"projects"`
	Errors     int    `json:"errors"`
	Warnings   int    `json:"warnings"`
	Passed     bool   `json:"passed"`
}
