package source

import (
	"context"
	"testing"

	crerr "github.com/cockroachdb/errors"
	domainsource "github.com/riskibarqy/sports-challenge/internal/domain/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingFetcher struct {
	body []byte
	err  error
	uris []string
}

func (f *recordingFetcher) FetchURI(_ context.Context, uri string) ([]byte, error) {
	f.uris = append(f.uris, uri)
	return f.body, f.err
}

func TestRouter_DispatchesByScheme(t *testing.T) {
	t.Parallel()

	file := &recordingFetcher{body: []byte("file")}
	web := &recordingFetcher{body: []byte("http")}
	bucket := &recordingFetcher{body: []byte("s3")}
	router := NewRouter(RouterConfig{
		URIs: map[domainsource.Key]string{
			domainsource.KeyDraft:    "data/draft.csv",
			domainsource.KeyPoints:   "https://docs.example.test/points?output=csv",
			domainsource.KeySchedule: "s3://league-exports/schedule.csv",
		},
		File: file,
		HTTP: web,
		S3:   bucket,
	})

	tests := []struct {
		key  domainsource.Key
		want string
	}{
		{key: domainsource.KeyDraft, want: "file"},
		{key: domainsource.KeyPoints, want: "http"},
		{key: domainsource.KeySchedule, want: "s3"},
	}
	for _, tc := range tests {
		got, err := router.Fetch(context.Background(), tc.key)
		require.NoError(t, err, tc.key)
		assert.Equal(t, tc.want, string(got))
	}
	assert.Equal(t, []string{"data/draft.csv"}, file.uris)
	assert.Equal(t, []string{"s3://league-exports/schedule.csv"}, bucket.uris)
}

func TestRouter_FailuresAreMarkedUnavailable(t *testing.T) {
	t.Parallel()

	failing := &recordingFetcher{err: crerr.New("connection refused")}
	router := NewRouter(RouterConfig{
		URIs: map[domainsource.Key]string{
			domainsource.KeyDraft:    "http://sheets.example.test/draft.csv",
			domainsource.KeyPoints:   "ftp://sheets.example.test/points.csv",
			domainsource.KeySchedule: "   ",
		},
		HTTP: failing,
	})

	for _, key := range []domainsource.Key{domainsource.KeyDraft, domainsource.KeyPoints, domainsource.KeySchedule, domainsource.Key("totals")} {
		_, err := router.Fetch(context.Background(), key)
		require.Error(t, err, key)
		assert.True(t, crerr.Is(err, domainsource.ErrUnavailable), "key=%s err=%v", key, err)
	}
}

func TestSchemeOf(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"data/draft.csv":             "",
		"/srv/exports/draft.csv":     "",
		"file:///srv/exports/a.csv":  "file",
		"HTTPS://example.test/a.csv": "https",
		"s3://bucket/key.csv":        "s3",
		`C:\exports\draft.csv`:       "",
	}
	for uri, want := range tests {
		assert.Equal(t, want, schemeOf(uri), uri)
	}
}
