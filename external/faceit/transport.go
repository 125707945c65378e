package faceit

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/faceit-go/internal/platform/logging"
	"github.com/riskibarqy/faceit-go/internal/platform/resilience"
	"github.com/valyala/bytebufferpool"
)

const maxResponseBytes = 6 << 20

// route selects which upstream sub-API a path is relative to.
type route int

const (
	// rootRoute addresses the base URL directly; the download API lives here.
	rootRoute route = iota
	// dataRoute addresses the versioned data API.
	dataRoute
)

func (r route) prefix() string {
	if r == dataRoute {
		return "data/v4/"
	}
	return ""
}

func (r route) String() string {
	if r == dataRoute {
		return "data"
	}
	return "root"
}

type request struct {
	method string
	route  route
	path   string
	// query holds parameters the route itself embeds, e.g. nickname.
	query  url.Values
	params Options
}

type transport struct {
	httpClient    *http.Client
	baseURL       string
	authorization string
	userAgent     string
	logger        *logging.Logger
	metrics       *Metrics
	breaker       *resilience.CircuitBreaker
}

func (t *transport) get(ctx context.Context, r route, path string, query url.Values, params Options) (any, error) {
	return t.do(ctx, request{method: http.MethodGet, route: r, path: path, query: query, params: params})
}

func (t *transport) getData(ctx context.Context, path string, query url.Values, params Options) (any, error) {
	return t.get(ctx, dataRoute, path, query, params)
}

// post and put address the root route; data API writes go through do.
// Only GetDownloadURL uses post today. Root-route get and put have no
// operation yet and stay for the remaining root endpoints.
func (t *transport) post(ctx context.Context, path string, params Options) (any, error) {
	return t.do(ctx, request{method: http.MethodPost, route: rootRoute, path: path, params: params})
}

func (t *transport) put(ctx context.Context, path string, params Options) (any, error) {
	return t.do(ctx, request{method: http.MethodPut, route: rootRoute, path: path, params: params})
}

// do performs one round trip and hands the result to finish. GET parameters
// go to the query string, POST and PUT parameters to a JSON body.
func (t *transport) do(ctx context.Context, req request) (any, error) {
	query := req.query
	var body io.Reader
	if req.method == http.MethodGet || req.method == http.MethodDelete {
		query = mergeQuery(req.query, req.params)
	} else {
		payload := req.params
		if payload == nil {
			payload = Options{}
		}
		encoded, err := sonic.Marshal(map[string]any(payload))
		if err != nil {
			return nil, crerr.Wrapf(ErrInvalidInput, "encode %s %s body: %v", req.method, req.path, err)
		}
		body = bytes.NewReader(encoded)
	}
	fullURL := t.buildURL(req.route, req.path, query)

	httpReq, err := http.NewRequestWithContext(ctx, req.method, fullURL, body)
	if err != nil {
		return nil, crerr.Wrapf(ErrInvalidInput, "build %s %s request: %v", req.method, fullURL, err)
	}
	httpReq.Header.Set("Authorization", t.authorization)
	httpReq.Header.Set("User-Agent", t.userAgent)
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if err := t.breaker.Allow(); err != nil {
		return nil, &APIError{Method: req.method, URL: fullURL, Err: crerr.Wrapf(err, "state=%s", t.breaker.State())}
	}

	start := time.Now()
	resp, err := t.httpClient.Do(httpReq)
	if err != nil {
		t.metrics.observe(req.route.String(), req.method, 0, time.Since(start))
		t.breaker.RecordFailure()
		return nil, &APIError{Method: req.method, URL: fullURL, Err: crerr.Wrap(err, "send request")}
	}
	raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	_ = resp.Body.Close()
	elapsed := time.Since(start)
	t.metrics.observe(req.route.String(), req.method, resp.StatusCode, elapsed)
	if readErr != nil {
		t.breaker.RecordFailure()
		return nil, &APIError{Method: req.method, URL: fullURL, Err: crerr.Wrap(readErr, "read response body")}
	}
	if len(raw) > maxResponseBytes {
		tooLarge := &APIError{
			StatusCode: resp.StatusCode,
			Method:     req.method,
			URL:        fullURL,
			Err:        crerr.Wrapf(ErrResponseTooLarge, "body exceeds %d bytes", maxResponseBytes),
		}
		t.breaker.Record(tooLarge.Transient())
		return nil, tooLarge
	}

	t.logger.DebugContext(ctx, "faceit request completed",
		"method", req.method,
		"url", fullURL,
		"status", resp.StatusCode,
		"duration", elapsed,
	)

	out, err := finish(exchange{
		method:      req.method,
		url:         fullURL,
		status:      resp.StatusCode,
		contentType: resp.Header.Get("Content-Type"),
		body:        raw,
	})
	apiErr, isAPIErr := AsAPIError(err)
	t.breaker.Record(isAPIErr && apiErr.Transient())
	return out, err
}

func (t *transport) buildURL(r route, path string, query url.Values) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString(t.baseURL)
	_, _ = buf.WriteString(r.prefix())
	_, _ = buf.WriteString(strings.TrimLeft(path, "/"))
	if encoded := query.Encode(); encoded != "" {
		_ = buf.WriteByte('?')
		_, _ = buf.WriteString(encoded)
	}
	return buf.String()
}

// joinPath escapes each segment, so identifiers cannot change the route.
func joinPath(segments ...string) string {
	escaped := make([]string, 0, len(segments))
	for _, segment := range segments {
		escaped = append(escaped, url.PathEscape(segment))
	}
	return strings.Join(escaped, "/")
}

// normalizeAPIKey trims surrounding whitespace, drops one leading "Bearer "
// and trims again, so the header never doubles the prefix. A bare "Bearer"
// normalizes to empty.
func normalizeAPIKey(key string) string {
	key = strings.TrimSpace(key)
	if key == "Bearer" {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(key, "Bearer "))
}

func validateHTTPBaseURL(raw string) (string, error) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return "", crerr.New("value is empty")
	}

	parsed, err := url.Parse(candidate)
	if err != nil {
		return "", crerr.Wrapf(err, "parse %q", candidate)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", crerr.Newf("%q uses unsupported scheme=%q; expected http or https", candidate, parsed.Scheme)
	}
	if strings.TrimSpace(parsed.Host) == "" {
		return "", crerr.Newf("%q has empty host", candidate)
	}

	return strings.TrimRight(candidate, "/") + "/", nil
}
