package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Request describes the single GET made by Get.
type Request struct {
	URL string
}

// Response is the raw outcome of a successful exchange.
type Response struct {
	URL         string
	FinalURL    string
	Status      int
	ContentType string
	Body        []byte
	Truncated   bool
	FetchedAt   time.Time
	TookMs      int64
}

// OK reports whether the server answered with a 2xx status.
func (r *Response) OK() bool {
	return r != nil && r.Status >= 200 && r.Status < 300
}

// Text returns the body as a string.
func (r *Response) Text() string {
	if r == nil {
		return ""
	}
	return string(r.Body)
}

// Get performs one blocking GET, following redirects, and reads the whole body
// into memory. A non-2xx status is not an error; callers inspect Status. An
// empty body yields ErrEmptyBody alongside the response.
func Get(ctx context.Context, req Request, cfg *Config) (*Response, error) {
	if strings.TrimSpace(req.URL) == "" {
		return nil, ErrMissingURL
	}
	parsedURL, err := url.Parse(req.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return nil, fmt.Errorf("%w: scheme must be http or https", ErrInvalidURL)
	}
	cfg = cfg.WithDefaults()
	log := zerolog.Ctx(ctx).With().Str("host", parsedURL.Host).Logger()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	request.Header.Set("User-Agent", cfg.UserAgent)
	request.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := newClient(cfg).Do(request)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			if failedURL, parseErr := url.Parse(urlErr.URL); parseErr == nil {
				urlErr.URL = redactURL(failedURL)
			}
		}
		return nil, &TransportError{URL: redactURL(parsedURL), Err: err}
	}
	defer resp.Body.Close()

	var reader io.Reader = resp.Body
	if cfg.MaxBytes > 0 {
		reader = io.LimitReader(resp.Body, cfg.MaxBytes+1)
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, &TransportError{URL: redactURL(parsedURL), Err: fmt.Errorf("reading response body: %w", err)}
	}
	truncated := false
	if cfg.MaxBytes > 0 && int64(len(body)) > cfg.MaxBytes {
		body = body[:cfg.MaxBytes]
		truncated = true
	}

	finalURL := req.URL
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}
	out := &Response{
		URL:         req.URL,
		FinalURL:    finalURL,
		Status:      resp.StatusCode,
		ContentType: normalizeContentType(resp.Header.Get("Content-Type")),
		Body:        body,
		Truncated:   truncated,
		FetchedAt:   time.Now().UTC(),
		TookMs:      time.Since(start).Milliseconds(),
	}
	log.Debug().
		Int("status", out.Status).
		Int("bytes", len(out.Body)).
		Bool("truncated", out.Truncated).
		Int64("took_ms", out.TookMs).
		Msg("Fetched response")
	if len(body) == 0 {
		return out, ErrEmptyBody
	}
	return out, nil
}

var errTooManyRedirects = errors.New("too many redirects")

func newClient(cfg *Config) *http.Client {
	return &http.Client{
		Timeout: time.Duration(cfg.TimeoutSecs) * time.Second,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= cfg.MaxRedirects {
				return fmt.Errorf("%w (max %d)", errTooManyRedirects, cfg.MaxRedirects)
			}
			return nil
		},
	}
}

func normalizeContentType(value string) string {
	if value == "" {
		return "application/octet-stream"
	}
	parts := strings.Split(value, ";")
	return strings.TrimSpace(parts[0])
}

// redactURL strips query values that look like credentials so they don't end
// up in logs or error messages.
func redactURL(u *url.URL) string {
	clone := *u
	query := clone.Query()
	for key := range query {
		switch strings.ToLower(key) {
		case "key", "apikey", "api_key", "appid", "token":
			query.Set(key, "REDACTED")
		}
	}
	clone.RawQuery = query.Encode()
	return clone.String()
}
