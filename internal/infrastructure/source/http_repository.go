package source

import (
	"context"
	"net/url"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/sports-challenge/internal/platform/logging"
	"github.com/riskibarqy/sports-challenge/internal/platform/resilience"
	"github.com/valyala/fasthttp"
)

const (
	defaultHTTPTimeout = 15 * time.Second
	maxRedirects       = 5
)

var errHTTPTransient = crerr.New("source transient failure")

type HTTPFetcherConfig struct {
	Client         *fasthttp.Client
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// HTTPFetcher downloads published sheet exports. Concurrent requests for the
// same URI share one round trip.
type HTTPFetcher struct {
	client   *fasthttp.Client
	timeout  time.Duration
	logger   *logging.Logger
	breakers *resilience.BreakerSet
	flight   resilience.SingleFlight[[]byte]
}

func NewHTTPFetcher(cfg HTTPFetcherConfig) *HTTPFetcher {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	client := cfg.Client
	if client == nil {
		client = &fasthttp.Client{
			Name:                "sports-challenge",
			MaxResponseBodySize: maxSourceBytes,
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
		}
	}

	breakers := resilience.NewBreakerSet(cfg.CircuitBreaker, func(host string, from, to resilience.CircuitState) {
		logger.Warn("source circuit breaker state changed", "host", host, "from", from.String(), "to", to.String())
	})

	return &HTTPFetcher{
		client:   client,
		timeout:  timeout,
		logger:   logger,
		breakers: breakers,
	}
}

func (f *HTTPFetcher) FetchURI(ctx context.Context, uri string) ([]byte, error) {
	host := hostOf(uri)
	raw, err, _ := f.flight.Do(uri, func() ([]byte, error) {
		out, err := resilience.Execute(f.breakers.Get(host), func() ([]byte, error) {
			return f.get(ctx, uri)
		}, isTransient)
		if crerr.Is(err, resilience.ErrCircuitOpen) {
			f.logger.WarnContext(ctx, "source circuit breaker rejected request", "host", host)
		}
		return out, err
	})
	return raw, err
}

// hostOf keys breakers by host so one throttled publisher does not block
// exports served from elsewhere.
func hostOf(uri string) string {
	parsed, err := url.Parse(uri)
	if err != nil || parsed.Host == "" {
		return uri
	}
	return strings.ToLower(parsed.Host)
}

func (f *HTTPFetcher) get(ctx context.Context, uri string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(uri)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "text/csv, text/plain;q=0.9, */*;q=0.1")

	timeout := f.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	if timeout <= 0 {
		return nil, context.DeadlineExceeded
	}
	req.SetTimeout(timeout)

	// Published sheet links answer with a redirect to the export host.
	if err := f.client.DoRedirects(req, resp, maxRedirects); err != nil {
		return nil, crerr.Mark(crerr.Wrap(err, "send request"), errHTTPTransient)
	}

	status := resp.StatusCode()
	if status < fasthttp.StatusOK || status >= fasthttp.StatusMultipleChoices {
		err := crerr.Newf("source status=%d", status)
		if isRetryableStatus(status) {
			err = crerr.Mark(err, errHTTPTransient)
		}
		return nil, err
	}

	body := resp.Body()
	out := make([]byte, len(body))
	copy(out, body)
	return out, nil
}

func isTransient(err error) bool {
	return crerr.Is(err, errHTTPTransient)
}

func isRetryableStatus(status int) bool {
	return status == fasthttp.StatusTooManyRequests || status >= fasthttp.StatusInternalServerError
}
