// ABOUTME: Fetcher performs one upstream request per target and decodes it into records
// ABOUTME: Absorbs every per-source failure so one bad source never fails a whole aggregation

package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"

	"newsagg-api/core/domain"
	coreerrors "newsagg-api/core/errors"
	"newsagg-api/core/interfaces"
)

// maxBodyBytes caps how much of an upstream response is read
const maxBodyBytes = 10 << 20

// credentialHeader carries the pass-through API key
const credentialHeader = "X-Api-Key"

// errMalformedPayload marks responses that could not be decoded
var errMalformedPayload = errors.New("malformed payload")

// Fetcher turns a FetchTarget into records
type Fetcher struct {
	deps interfaces.Dependencies
}

// NewFetcher creates a new fetcher instance
func NewFetcher(deps interfaces.Dependencies) *Fetcher {
	return &Fetcher{
		deps: deps,
	}
}

// Fetch retrieves and decodes the records of one target.
// It never fails: transport errors, non-2xx statuses and undecodable bodies
// are logged and yield an empty, non-nil slice.
func (f *Fetcher) Fetch(ctx context.Context, target domain.FetchTarget) []domain.Record {
	records, err := f.fetch(ctx, target)
	if err != nil {
		f.reportFailure(target, err)
		return []domain.Record{}
	}
	if records == nil {
		return []domain.Record{}
	}
	return records
}

func (f *Fetcher) fetch(ctx context.Context, target domain.FetchTarget) ([]domain.Record, error) {
	if f.deps.HTTPClient == nil {
		return nil, errors.New("HTTP client not configured")
	}

	var headers map[string]string
	if target.Credential != "" {
		headers = map[string]string{credentialHeader: target.Credential}
	}

	resp, err := f.deps.HTTPClient.Get(ctx, target.URL, headers)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		// Absent response contributes nothing
		return nil, nil
	}

	body := resp.Body()
	if body != nil {
		defer body.Close()
	}

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    "upstream returned non-success status",
			API:        target.Label(),
		}
	}
	if body == nil {
		return nil, nil
	}

	content, err := io.ReadAll(io.LimitReader(body, maxBodyBytes))
	if err != nil {
		return nil, err
	}

	switch target.Format {
	case domain.FormatFeed:
		return parseFeed(content, target)
	default:
		return parseNewsAPI(content, target)
	}
}

// reportFailure logs an absorbed failure and forwards it to the recorder
func (f *Fetcher) reportFailure(target domain.FetchTarget, err error) {
	kind := failureKind(err)

	if f.deps.Logger != nil {
		f.deps.Logger.Error("Failed to fetch source", map[string]interface{}{
			"target": target.Label(),
			"url":    target.RedactedURL(),
			"kind":   kind,
			"error":  err.Error(),
		})
	}

	if f.deps.Recorder != nil {
		f.deps.Recorder.ObserveSourceError(target.Label(), kind)
	}
}

func failureKind(err error) string {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	case coreerrors.IsExternalAPI(err):
		return "status"
	case errors.Is(err, errMalformedPayload):
		return "parse"
	default:
		return "transport"
	}
}

func malformed(err error) error {
	return fmt.Errorf("%w: %v", errMalformedPayload, err)
}
