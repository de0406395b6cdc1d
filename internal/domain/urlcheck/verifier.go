package urlcheck

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"golang.org/x/sync/singleflight"
	"k8s.io/klog/v2"

	"github.com/abdidvp/docck/internal/domain"
)

// Verifier checks the URLs found in project descriptors. One Verifier serves
// a whole run and may be shared by concurrently validated projects.
type Verifier struct {
	prober  domain.URLProber
	cache   *Cache
	offline bool
	flight  singleflight.Group
}

// NewVerifier creates a Verifier. In offline mode the prober is never called.
func NewVerifier(prober domain.URLProber, cache *Cache, offline bool) *Verifier {
	if cache == nil {
		cache = NewCache()
	}
	return &Verifier{prober: prober, cache: cache, offline: offline}
}

// Cache returns the reachability cache of the run.
func (v *Verifier) Cache() *Cache { return v.cache }

// Verify classifies rawURL and records what it finds into r. Malformed URLs
// are retried as local files relative to baseDir, non-HTTP schemes are only
// noted, HTTP(S) URLs are probed.
func (v *Verifier) Verify(ctx context.Context, r *domain.Reporter, rawURL, description, baseDir string) {
	scheme, err := Scheme(rawURL)
	if err != nil {
		var me *MalformedURLError
		reason := err.Error()
		if errors.As(err, &me) {
			reason = me.Reason
		}
		r.Warn(fmt.Sprintf("The %s appears to have an invalid URL '%s'. Message: '%s'. Trying to access it as a file instead.",
			description, rawURL, reason))
		v.checkFile(r, rawURL, description, baseDir)
		return
	}

	if !IsHTTP(scheme) {
		r.Warn(fmt.Sprintf("Non-HTTP %s URL not verified.", description))
		return
	}

	if f := v.CheckReachable(ctx, rawURL, description); f != nil {
		r.Add(*f)
	}
}

type probeResult struct {
	status int
	err    error
}

// CheckReachable probes an HTTP(S) URL and returns the finding to record, or
// nil when the URL is reachable. Each distinct URL is probed at most once at a
// time; reachable URLs are never probed again during the run.
func (v *Verifier) CheckReachable(ctx context.Context, url, description string) *domain.Finding {
	if v.offline {
		return &domain.Finding{
			Severity: domain.SeverityWarning,
			Message:  fmt.Sprintf("Cannot verify %s in offline mode with URL: '%s'.", description, url),
		}
	}

	if v.cache.Contains(url) {
		return nil
	}

	res, _, _ := v.flight.Do(url, func() (interface{}, error) {
		if v.cache.Contains(url) {
			return probeResult{status: http.StatusOK}, nil
		}
		klog.FromContext(ctx).V(1).Info("Verifying http url", "url", url)
		status, err := v.prober.Probe(ctx, url)
		if err == nil && status == http.StatusOK {
			v.cache.Add(url)
		}
		return probeResult{status: status, err: err}, nil
	})
	pr := res.(probeResult)

	switch {
	case pr.err != nil:
		return &domain.Finding{
			Severity: domain.SeverityError,
			Message:  fmt.Sprintf("Cannot reach %s with URL: '%s'.\nError: %s", description, url, pr.err.Error()),
		}
	case pr.status != http.StatusOK:
		return &domain.Finding{
			Severity: domain.SeverityError,
			Message:  fmt.Sprintf("Cannot reach %s with URL: '%s'.", description, url),
		}
	default:
		return nil
	}
}

func (v *Verifier) checkFile(r *domain.Reporter, path, description, baseDir string) {
	resolved := path
	if baseDir != "" && !filepath.IsAbs(path) {
		resolved = filepath.Join(baseDir, path)
	}
	if _, err := os.Stat(resolved); err != nil {
		r.Error(fmt.Sprintf("The %s in file '%s' does not exist.", description, path))
	}
}
