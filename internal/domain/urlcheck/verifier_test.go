package urlcheck_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/docck/internal/domain"
	"github.com/abdidvp/docck/internal/domain/urlcheck"
)

// fakeProber answers from a status table and counts calls per URL.
type fakeProber struct {
	mu     sync.Mutex
	status map[string]int
	errs   map[string]error
	calls  map[string]int
	delay  time.Duration
}

func newFakeProber() *fakeProber {
	return &fakeProber{
		status: map[string]int{},
		errs:   map[string]error{},
		calls:  map[string]int{},
	}
}

func (p *fakeProber) Probe(_ context.Context, url string) (int, error) {
	if p.delay > 0 {
		time.Sleep(p.delay)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls[url]++
	if err, ok := p.errs[url]; ok {
		return 0, err
	}
	if s, ok := p.status[url]; ok {
		return s, nil
	}
	return 404, nil
}

func (p *fakeProber) callsFor(url string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls[url]
}

const siteURL = "https://widget.example.org"

func TestCheckReachable_OKCachesURL(t *testing.T) {
	prober := newFakeProber()
	prober.status[siteURL] = 200
	v := urlcheck.NewVerifier(prober, urlcheck.NewCache(), false)

	assert.Nil(t, v.CheckReachable(context.Background(), siteURL, "project site"))
	assert.True(t, v.Cache().Contains(siteURL))
	assert.Equal(t, 1, prober.callsFor(siteURL))
}

func TestCheckReachable_CacheHitSkipsNetwork(t *testing.T) {
	prober := newFakeProber()
	prober.status[siteURL] = 200
	v := urlcheck.NewVerifier(prober, urlcheck.NewCache(), false)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		assert.Nil(t, v.CheckReachable(ctx, siteURL, "project site"))
	}
	assert.Equal(t, 1, prober.callsFor(siteURL))
}

func TestCheckReachable_Non200IsError(t *testing.T) {
	prober := newFakeProber()
	prober.status[siteURL] = 500
	v := urlcheck.NewVerifier(prober, urlcheck.NewCache(), false)

	f := v.CheckReachable(context.Background(), siteURL, "project site")
	require.NotNil(t, f)
	assert.Equal(t, domain.SeverityError, f.Severity)
	assert.Equal(t, "Cannot reach project site with URL: 'https://widget.example.org'.", f.Message)
	assert.False(t, v.Cache().Contains(siteURL))
}

func TestCheckReachable_RedirectStatusIsError(t *testing.T) {
	prober := newFakeProber()
	prober.status[siteURL] = 204
	v := urlcheck.NewVerifier(prober, urlcheck.NewCache(), false)

	f := v.CheckReachable(context.Background(), siteURL, "project site")
	require.NotNil(t, f)
	assert.Equal(t, domain.SeverityError, f.Severity)
}

func TestCheckReachable_TransportErrorIncludesCause(t *testing.T) {
	prober := newFakeProber()
	prober.errs[siteURL] = errors.New("dial tcp: connection refused")
	v := urlcheck.NewVerifier(prober, urlcheck.NewCache(), false)

	f := v.CheckReachable(context.Background(), siteURL, "Issue Management")
	require.NotNil(t, f)
	assert.Equal(t, domain.SeverityError, f.Severity)
	assert.Contains(t, f.Message, "Cannot reach Issue Management with URL: 'https://widget.example.org'.")
	assert.Contains(t, f.Message, "\nError: dial tcp: connection refused")
}

func TestCheckReachable_FailureIsNotCached(t *testing.T) {
	prober := newFakeProber()
	prober.status[siteURL] = 503
	v := urlcheck.NewVerifier(prober, urlcheck.NewCache(), false)
	ctx := context.Background()

	require.NotNil(t, v.CheckReachable(ctx, siteURL, "project site"))
	require.NotNil(t, v.CheckReachable(ctx, siteURL, "project site"))
	assert.Equal(t, 2, prober.callsFor(siteURL))
}

func TestCheckReachable_OfflineWarnsWithoutNetwork(t *testing.T) {
	prober := newFakeProber()
	cache := urlcheck.NewCache()
	cache.Add(siteURL)
	v := urlcheck.NewVerifier(prober, cache, true)

	f := v.CheckReachable(context.Background(), siteURL, "project site")
	require.NotNil(t, f, "offline mode warns even for cached URLs")
	assert.Equal(t, domain.SeverityWarning, f.Severity)
	assert.Equal(t, "Cannot verify project site in offline mode with URL: 'https://widget.example.org'.", f.Message)
	assert.Zero(t, prober.callsFor(siteURL))
}

func TestCheckReachable_ConcurrentCallsShareOneProbe(t *testing.T) {
	prober := newFakeProber()
	prober.status[siteURL] = 200
	prober.delay = 20 * time.Millisecond
	v := urlcheck.NewVerifier(prober, urlcheck.NewCache(), false)

	var wg sync.WaitGroup
	var findings atomic.Int32
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if v.CheckReachable(context.Background(), siteURL, "project site") != nil {
				findings.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, prober.callsFor(siteURL))
	assert.Zero(t, findings.Load())
}

func TestVerify_NonHTTPSchemeWarns(t *testing.T) {
	prober := newFakeProber()
	v := urlcheck.NewVerifier(prober, nil, false)
	r := domain.NewReporter()

	v.Verify(context.Background(), r, "scm:git:git@github.com:acme/widget.git", "scm", "")

	require.Equal(t, 1, r.Len())
	assert.Equal(t, []string{"Non-HTTP scm URL not verified."}, r.MessagesByType(domain.SeverityWarning))
	assert.Empty(t, prober.calls)
}

func TestVerify_MalformedMissingFile(t *testing.T) {
	v := urlcheck.NewVerifier(newFakeProber(), nil, false)
	r := domain.NewReporter()

	v.Verify(context.Background(), r, "not a url", "license 'Apache-2.0'", t.TempDir())

	findings := r.Findings()
	require.Len(t, findings, 2)
	assert.Equal(t, domain.SeverityWarning, findings[0].Severity)
	assert.Contains(t, findings[0].Message, "The license 'Apache-2.0' appears to have an invalid URL 'not a url'.")
	assert.Contains(t, findings[0].Message, "Trying to access it as a file instead.")
	assert.Equal(t, domain.SeverityError, findings[1].Severity)
	assert.Equal(t, "The license 'Apache-2.0' in file 'not a url' does not exist.", findings[1].Message)
}

func TestVerify_MalformedExistingFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "LICENSE.txt"), []byte("license"), 0644))
	v := urlcheck.NewVerifier(newFakeProber(), nil, false)
	r := domain.NewReporter()

	v.Verify(context.Background(), r, "LICENSE.txt", "license 'MIT'", dir)

	assert.Equal(t, 1, r.Len())
	assert.False(t, r.HasErrors())
}

func TestVerify_HTTPDelegatesToProbe(t *testing.T) {
	prober := newFakeProber()
	v := urlcheck.NewVerifier(prober, nil, false)
	r := domain.NewReporter()

	v.Verify(context.Background(), r, siteURL, "project site", "")

	assert.True(t, r.HasErrors())
	assert.Equal(t, 1, prober.callsFor(siteURL))
}
