package images

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"glassesfinder/pkg/types"

	"github.com/sirupsen/logrus"
)

const (
	maxAttempts  = 3
	baseBackoff  = 250 * time.Millisecond
	maxImageSize = 2 << 20
)

// Fetcher retrieves placeholder images over the network. The core resolver
// never needs it; the server wires it in only when image fetching is enabled.
// Each fetch is an independent request canceled through its context, so a
// caller that goes away mid-flight stops the work.
type Fetcher struct {
	client *http.Client
	logger *logrus.Logger
}

func NewFetcher(timeout time.Duration, logger *logrus.Logger) *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Fetch downloads the item's image, retrying transient failures with
// exponential backoff. Non-retryable failures (client errors) and context
// cancellation return immediately.
func (f *Fetcher) Fetch(ctx context.Context, item types.CatalogItem) ([]byte, error) {
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		data, err := f.fetchOnce(ctx, item.ImageURL)
		if err == nil {
			return data, nil
		}
		lastErr = err

		netErr, ok := err.(*types.NetworkError)
		if !ok || !netErr.Retryable {
			return nil, err
		}

		f.logger.WithError(err).WithFields(logrus.Fields{
			"item_id": item.ID,
			"attempt": attempt,
		}).Warn("image fetch failed, retrying")

		select {
		case <-ctx.Done():
			return nil, &types.NetworkError{URL: item.ImageURL, Retryable: false, Err: ctx.Err()}
		case <-time.After(baseBackoff << (attempt - 1)):
		}
	}

	return nil, lastErr
}

func (f *Fetcher) fetchOnce(ctx context.Context, imageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, &types.NetworkError{URL: imageURL, Retryable: false, Err: err}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &types.NetworkError{URL: imageURL, Retryable: true, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &types.NetworkError{
			URL:       imageURL,
			Retryable: resp.StatusCode >= 500,
			Err:       fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageSize))
	if err != nil {
		return nil, &types.NetworkError{URL: imageURL, Retryable: true, Err: err}
	}

	return data, nil
}
