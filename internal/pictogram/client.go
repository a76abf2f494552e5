package pictogram

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"github.com/go-resty/resty/v2"
)

//go:generate mockgen -source=client.go -destination=../mocks/pictogram/mock_searcher.go -package=mock_pictogram Searcher

// Searcher looks up pictograms from a remote catalog.
type Searcher interface {
	Search(ctx context.Context, language Language, text string, mode SearchMode) ([]Pictogram, error)
	Newest(ctx context.Context, language Language, count int) ([]Pictogram, error)
}

type Client struct {
	httpClient       *resty.Client
	host             string
	fileCache        *FileCache
	maxRetryAttempts uint
}

var _ Searcher = (*Client)(nil)

// NewClient returns a client for the ARASAAC pictogram API. cacheDirectory
// may be empty, in which case responses are not cached on disk.
func NewClient(host, cacheDirectory string, retryAttempts uint) *Client {
	if host == "" {
		host = DefaultHost
	}
	client := resty.New()
	client.SetBaseURL("https://" + host)
	client.SetHeader("Accept", "application/json")

	var fileCache *FileCache
	if cacheDirectory != "" {
		fileCache = NewFileCache(cacheDirectory)
	}
	return &Client{
		httpClient:       client,
		host:             host,
		fileCache:        fileCache,
		maxRetryAttempts: retryAttempts,
	}
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}
	if strings.Contains(errStr, "response error 5") {
		return true
	}
	if strings.Contains(errStr, "response error 429") {
		return true
	}
	return false
}

// Search queries pictograms matching text. The API answers 404 when nothing
// matches, which is reported as an empty result rather than an error.
func (client *Client) Search(ctx context.Context, language Language, text string, mode SearchMode) ([]Pictogram, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	if !mode.IsValid() {
		mode = SearchModeStandard
	}

	path := fmt.Sprintf("/v1/pictograms/%s/%s/%s", language, mode, url.PathEscape(text))
	cacheKey := fmt.Sprintf("%s_%s_%s", language, mode, text)
	return client.fetch(ctx, path, cacheKey)
}

// Newest returns the count most recently published pictograms.
func (client *Client) Newest(ctx context.Context, language Language, count int) ([]Pictogram, error) {
	if count <= 0 {
		count = 48
	}

	path := fmt.Sprintf("/v1/pictograms/%s/new/%d", language, count)
	cacheKey := fmt.Sprintf("%s_new_%d", language, count)
	return client.fetch(ctx, path, cacheKey)
}

func (client *Client) fetch(ctx context.Context, path, cacheKey string) ([]Pictogram, error) {
	fetcher := func() ([]byte, error) {
		var body []byte
		if err := retry.Do(
			func() error {
				contents, err := client.get(ctx, path)
				if err != nil {
					if !isRetryableError(err) {
						return retry.Unrecoverable(err)
					}
					return err
				}
				body = contents
				return nil
			},
			retry.Context(ctx),
			retry.Attempts(client.maxRetryAttempts+1),
			retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
				return retry.BackOffDelay(n, err, config)
			}),
		); err != nil {
			return nil, err
		}
		return body, nil
	}

	var contents []byte
	var err error
	if client.fileCache != nil {
		contents, err = client.fileCache.cache(cacheKey, fetcher)
	} else {
		contents, err = fetcher()
	}
	if err != nil {
		return nil, fmt.Errorf("fetch %s > %w", path, err)
	}

	var pictograms []Pictogram
	if err := json.Unmarshal(contents, &pictograms); err != nil {
		return nil, fmt.Errorf("json.Unmarshal > %w", err)
	}
	return pictograms, nil
}

func (client *Client) get(ctx context.Context, path string) ([]byte, error) {
	res, err := client.httpClient.R().
		SetContext(ctx).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("httpClient.Get > %w", err)
	}
	if res.StatusCode() == http.StatusNotFound {
		return []byte("[]"), nil
	}
	if res.IsError() {
		return nil, fmt.Errorf("response error %d: %s", res.StatusCode(), res.String())
	}
	return res.Body(), nil
}
