package source

import (
	"context"
	"net/url"
	"strings"

	crerr "github.com/cockroachdb/errors"
	domainsource "github.com/riskibarqy/sports-challenge/internal/domain/source"
	"github.com/riskibarqy/sports-challenge/internal/platform/logging"
)

// maxSourceBytes caps a single export. Published sheets are far smaller.
const maxSourceBytes = 8 << 20

// Fetcher reads the raw bytes behind one source URI.
type Fetcher interface {
	FetchURI(ctx context.Context, uri string) ([]byte, error)
}

type RouterConfig struct {
	URIs   map[domainsource.Key]string
	File   Fetcher
	HTTP   Fetcher
	S3     Fetcher
	Logger *logging.Logger
}

// Router resolves each source key to its configured URI and dispatches on
// the URI scheme.
type Router struct {
	uris   map[domainsource.Key]string
	file   Fetcher
	http   Fetcher
	s3     Fetcher
	logger *logging.Logger
}

func NewRouter(cfg RouterConfig) *Router {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	uris := make(map[domainsource.Key]string, len(cfg.URIs))
	for key, uri := range cfg.URIs {
		uri = strings.TrimSpace(uri)
		if uri == "" {
			continue
		}
		uris[key] = uri
	}

	return &Router{
		uris:   uris,
		file:   cfg.File,
		http:   cfg.HTTP,
		s3:     cfg.S3,
		logger: logger,
	}
}

func (r *Router) Fetch(ctx context.Context, key domainsource.Key) ([]byte, error) {
	if err := key.Validate(); err != nil {
		return nil, crerr.Mark(crerr.WithStack(err), domainsource.ErrUnavailable)
	}

	uri, ok := r.uris[key]
	if !ok {
		return nil, crerr.Mark(crerr.Newf("no uri configured for %s source", key), domainsource.ErrUnavailable)
	}

	fetcher, err := r.fetcherFor(uri)
	if err != nil {
		return nil, crerr.Mark(crerr.Wrapf(err, "route %s source", key), domainsource.ErrUnavailable)
	}

	raw, err := fetcher.FetchURI(ctx, uri)
	if err != nil {
		return nil, crerr.Mark(crerr.Wrapf(err, "fetch %s source", key), domainsource.ErrUnavailable)
	}

	r.logger.DebugContext(ctx, "source fetched", "source_key", string(key), "bytes", len(raw))
	return raw, nil
}

func (r *Router) fetcherFor(uri string) (Fetcher, error) {
	var fetcher Fetcher
	switch schemeOf(uri) {
	case "", "file":
		fetcher = r.file
	case "http", "https":
		fetcher = r.http
	case "s3":
		fetcher = r.s3
	default:
		return nil, crerr.Newf("unsupported source scheme in %q", uri)
	}
	if fetcher == nil {
		return nil, crerr.Newf("no fetcher configured for %q", uri)
	}
	return fetcher, nil
}

// schemeOf treats anything without a parseable scheme as a local path.
func schemeOf(uri string) string {
	parsed, err := url.Parse(uri)
	if err != nil {
		return ""
	}
	scheme := strings.ToLower(parsed.Scheme)
	// Windows drive letters parse as one-letter schemes.
	if len(scheme) == 1 {
		return ""
	}
	return scheme
}
