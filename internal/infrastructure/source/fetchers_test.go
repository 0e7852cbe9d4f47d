package source

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/sports-challenge/internal/platform/resilience"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileFetcher_ResolvesRelativeAndFileURIs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "points.csv")
	require.NoError(t, os.WriteFile(path, []byte("Players,NBA,\nPat,25,25\n"), 0o600))

	fetcher := NewFileFetcher(dir)

	got, err := fetcher.FetchURI(context.Background(), "points.csv")
	require.NoError(t, err)
	assert.Equal(t, "Players,NBA,\nPat,25,25\n", string(got))

	got, err = fetcher.FetchURI(context.Background(), "file://"+path)
	require.NoError(t, err)
	assert.Contains(t, string(got), "Pat")

	_, err = fetcher.FetchURI(context.Background(), "missing.csv")
	assert.Error(t, err)
}

func TestHTTPFetcher_ReturnsBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("unexpected method %s", r.Method)
		}
		_, _ = w.Write([]byte("Sport,Ending Date\nNBA,June 2025\n"))
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher(HTTPFetcherConfig{Timeout: 2 * time.Second})
	got, err := fetcher.FetchURI(context.Background(), server.URL+"/schedule.csv")
	require.NoError(t, err)
	assert.Equal(t, "Sport,Ending Date\nNBA,June 2025\n", string(got))
}

func TestHTTPFetcher_BreakerOpensOnServerErrors(t *testing.T) {
	t.Parallel()

	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher(HTTPFetcherConfig{
		Timeout: 2 * time.Second,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 1,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		},
	})

	_, err := fetcher.FetchURI(context.Background(), server.URL)
	require.Error(t, err)
	assert.True(t, isTransient(err))

	_, err = fetcher.FetchURI(context.Background(), server.URL)
	assert.True(t, crerr.Is(err, resilience.ErrCircuitOpen), "err=%v", err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestHTTPFetcher_ClientErrorsDoNotTripBreaker(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher(HTTPFetcherConfig{
		CircuitBreaker: resilience.CircuitBreakerConfig{Enabled: true, FailureThreshold: 1},
	})
	for i := 0; i < 3; i++ {
		_, err := fetcher.FetchURI(context.Background(), server.URL)
		require.Error(t, err)
		assert.False(t, crerr.Is(err, resilience.ErrCircuitOpen))
	}
	assert.Equal(t, resilience.CircuitStateClosed, fetcher.breakers.State(hostOf(server.URL)))
}

type fakeObjectGetter struct {
	input *s3.GetObjectInput
	body  string
	err   error
}

func (f *fakeObjectGetter) GetObject(_ context.Context, params *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewBufferString(f.body))}, nil
}

func TestS3Fetcher_GetsObjectFromURI(t *testing.T) {
	t.Parallel()

	getter := &fakeObjectGetter{body: "Players,NBA,\n"}
	fetcher := &S3Fetcher{client: getter}

	got, err := fetcher.FetchURI(context.Background(), "s3://league-exports/2026/points.csv")
	require.NoError(t, err)
	assert.Equal(t, "Players,NBA,\n", string(got))
	require.NotNil(t, getter.input)
	assert.Equal(t, "league-exports", *getter.input.Bucket)
	assert.Equal(t, "2026/points.csv", *getter.input.Key)
}

func TestParseS3URI_Rejects(t *testing.T) {
	t.Parallel()

	for _, uri := range []string{"s3://bucket-only", "s3:///key.csv", "https://bucket/key.csv"} {
		_, _, err := parseS3URI(uri)
		assert.Error(t, err, uri)
	}
}
