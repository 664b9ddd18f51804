// Package fetch reads JSON from the fantasy platforms. Every upstream gets
// its own Fetcher so a platform that is down trips only its own circuit
// breaker.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mww/starter_optimizer/cache"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultThreshold = 5
)

type Options struct {
	Timeout          time.Duration
	BreakerThreshold int
	Cache            cache.Cache // optional
	CacheTTL         time.Duration
	Logger           *logrus.Logger
	HTTPClient       *http.Client // overrides Timeout when set
}

// Request holds the per call settings. The response is only cached when
// CacheKey is set; TTL overrides the Fetcher's default TTL when positive.
type Request struct {
	Cookies  []*http.Cookie
	Headers  map[string]string
	CacheKey string
	TTL      time.Duration
}

// StatusError is returned when the upstream answers with anything but 200.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d from %s", e.Code, e.URL)
}

type Fetcher struct {
	name       string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	cache      cache.Cache
	ttl        time.Duration
	log        *logrus.Entry
}

func New(name string, opts Options) *Fetcher {
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	log := logger.WithFields(logrus.Fields{"component": "fetch", "platform": name})

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	threshold := opts.BreakerThreshold
	if threshold <= 0 {
		threshold = defaultThreshold
	}

	settings := gobreaker.Settings{
		Name:    name,
		Timeout: time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(threshold)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.WithFields(logrus.Fields{
				"from": from.String(),
				"to":   to.String(),
			}).Warn("circuit breaker state changed")
		},
	}

	return &Fetcher{
		name:       name,
		httpClient: httpClient,
		breaker:    gobreaker.NewCircuitBreaker(settings),
		cache:      opts.Cache,
		ttl:        opts.CacheTTL,
		log:        log,
	}
}

// GetJSON sends a GET request to url and decodes the JSON response into out.
func (f *Fetcher) GetJSON(ctx context.Context, url string, req Request, out any) error {
	body, err := f.get(ctx, url, req)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("error parsing response from %s: %w", f.name, err)
	}
	return nil
}

func (f *Fetcher) get(ctx context.Context, url string, req Request) ([]byte, error) {
	useCache := f.cache != nil && req.CacheKey != ""
	if useCache {
		b, found, err := f.cache.Get(ctx, req.CacheKey)
		if err != nil {
			f.log.WithError(err).WithField("key", req.CacheKey).Warn("error reading from cache")
		} else if found {
			f.log.WithField("key", req.CacheKey).Debug("cache hit")
			return b, nil
		}
	}

	type response struct {
		code int
		body []byte
	}

	res, err := f.breaker.Execute(func() (any, error) {
		httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("error creating %s http request: %w", f.name, err)
		}
		httpReq.Header.Set("Accept", "application/json")
		for k, v := range req.Headers {
			httpReq.Header.Set(k, v)
		}
		for _, c := range req.Cookies {
			httpReq.AddCookie(c)
		}

		resp, err := f.httpClient.Do(httpReq)
		if err != nil {
			return nil, fmt.Errorf("error sending %s http request: %w", f.name, err)
		}
		defer resp.Body.Close()

		b, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("error reading %s response: %w", f.name, err)
		}

		// Only server side errors count against the breaker, a 404 for a
		// bad league id says nothing about the health of the platform.
		if resp.StatusCode >= http.StatusInternalServerError {
			return nil, &StatusError{URL: url, Code: resp.StatusCode}
		}
		return &response{code: resp.StatusCode, body: b}, nil
	})
	if err != nil {
		return nil, err
	}

	r := res.(*response)
	if r.code != http.StatusOK {
		return nil, &StatusError{URL: url, Code: r.code}
	}

	if useCache {
		ttl := f.ttl
		if req.TTL > 0 {
			ttl = req.TTL
		}
		if err := f.cache.Set(ctx, req.CacheKey, r.body, ttl); err != nil {
			f.log.WithError(err).WithField("key", req.CacheKey).Warn("error writing to cache")
		}
	}

	return r.body, nil
}
