package probe

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	defaultHost       = "127.0.0.1"
	defaultPort       = 4000
	defaultHealthPath = "/api/health"
	defaultUserAgent  = "gantry/0.1"
	requestTimeout    = 5 * time.Second
)

// Endpoint identifies the backend health endpoint. It is fixed at
// construction; the launcher never rewrites it at runtime.
type Endpoint struct {
	Host string
	Port int
	Path string
}

// withDefaults fills empty fields so a zero Endpoint still probes the
// conventional localhost backend.
func (e Endpoint) withDefaults() Endpoint {
	if strings.TrimSpace(e.Host) == "" {
		e.Host = defaultHost
	}
	if e.Port <= 0 {
		e.Port = defaultPort
	}
	if strings.TrimSpace(e.Path) == "" {
		e.Path = defaultHealthPath
	}
	if !strings.HasPrefix(e.Path, "/") {
		e.Path = "/" + e.Path
	}
	return e
}

// HTTP probes a backend health endpoint over plain HTTP.
type HTTP struct {
	healthURL string
	baseURL   string
	http      *http.Client
	userAgent string
}

// Ensure HTTP implements Prober at compile time.
var _ Prober = (*HTTP)(nil)

// NewHTTP builds an HTTP prober for the given endpoint.
func NewHTTP(endpoint Endpoint) *HTTP {
	endpoint = endpoint.withDefaults()
	base := &url.URL{
		Scheme: "http",
		Host:   endpoint.Host + ":" + strconv.Itoa(endpoint.Port),
	}
	health := base.ResolveReference(&url.URL{Path: endpoint.Path})
	return &HTTP{
		healthURL: health.String(),
		baseURL:   base.String(),
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}
}

// BaseURL returns the backend's root URL, e.g. "http://127.0.0.1:4000".
func (p *HTTP) BaseURL() string {
	if p == nil {
		return ""
	}
	return p.baseURL
}

// Check issues one GET against the health endpoint and classifies the
// outcome. A response with any 2xx status means the backend is ready; any
// other status means it is alive but still initializing; no response at all
// is a transport error.
func (p *HTTP) Check(ctx context.Context) Result {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.healthURL, nil)
	if err != nil {
		return Result{State: TransportError, Detail: fmt.Sprintf("create request: %v", err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.http.Do(req)
	if err != nil {
		return Result{State: TransportError, Detail: err.Error()}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return Result{State: Ready, StatusCode: resp.StatusCode}
	}
	return Result{State: NotReady, StatusCode: resp.StatusCode}
}
