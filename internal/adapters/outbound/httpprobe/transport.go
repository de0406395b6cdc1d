package httpprobe

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/net/http/httpproxy"
	"k8s.io/klog/v2"

	"github.com/abdidvp/docck/internal/domain"
)

// UserAgent returns the client identifier sent with every probe.
func UserAgent(version string) string {
	return fmt.Sprintf("docck/%s (Go %s; %s %s)", version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// NewClient builds the HTTP client used for the whole run: connect and
// response timeouts from cfg, and the configured proxy if any.
func NewClient(ctx context.Context, cfg domain.RunConfig) *http.Client {
	cfg = cfg.WithDefaults()

	dialer := &net.Dialer{Timeout: cfg.Timeouts.Connect}
	transport := &http.Transport{
		Proxy:                 ProxyFunc(ctx, cfg.Proxy),
		DialContext:           dialer.DialContext,
		TLSHandshakeTimeout:   cfg.Timeouts.Connect,
		ResponseHeaderTimeout: cfg.Timeouts.Response,
		MaxIdleConnsPerHost:   4,
		ForceAttemptHTTP2:     true,
	}

	return &http.Client{Transport: transport}
}

// ProxyFunc returns the transport proxy selector for p, or nil when no proxy
// host is configured. Credentials travel in the proxy URL's userinfo, which
// net/http turns into a Proxy-Authorization header for that proxy only.
func ProxyFunc(ctx context.Context, p domain.ProxyConfig) func(*http.Request) (*url.URL, error) {
	if !p.Enabled() {
		return nil
	}
	log := klog.FromContext(ctx)

	scheme := p.Protocol
	if scheme == "" {
		scheme = "http"
	}
	proxyURL := &url.URL{
		Scheme: scheme,
		Host:   net.JoinHostPort(p.Host, strconv.Itoa(p.Port)),
	}
	log.Info(fmt.Sprintf("Using proxy [%s] at port [%d].", p.Host, p.Port))

	if p.Username != "" {
		log.Info(fmt.Sprintf("Using proxy user [%s].", p.Username))
		proxyURL.User = url.UserPassword(p.Username, p.Password)
	}

	cfg := httpproxy.Config{
		HTTPProxy:  proxyURL.String(),
		HTTPSProxy: proxyURL.String(),
		NoProxy:    NoProxy(p.NonProxyHosts),
	}
	selector := cfg.ProxyFunc()

	return func(req *http.Request) (*url.URL, error) {
		return selector(req.URL)
	}
}

// NoProxy converts non-proxy host entries to the NO_PROXY syntax understood
// by httpproxy. Entries may be separated by | or , and use a leading *.
// wildcard, as in Maven settings.
func NoProxy(hosts []string) string {
	var out []string
	for _, h := range hosts {
		for _, part := range strings.FieldsFunc(h, func(r rune) bool { return r == '|' || r == ',' }) {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if strings.HasPrefix(part, "*.") {
				part = part[1:]
			}
			out = append(out, part)
		}
	}
	return strings.Join(out, ",")
}
