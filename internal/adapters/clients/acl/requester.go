package acl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/todo-spa-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/todo-spa-service/internal/platform/logging"
)

// Requester runs one downstream call end to end: encode, send, check the
// status, translate failures and decode the body.
type Requester struct {
	client *httpclient.Client
}

func NewRequester(client *httpclient.Client) *Requester {
	return &Requester{client: client}
}

// Do sends reqBody (nil for none) to path and decodes the response into
// respBody (nil to discard). Any status other than wantStatus goes through
// TranslateHTTPError.
func (r *Requester) Do(ctx context.Context, method, path string, wantStatus int, reqBody, respBody any) error {
	req, err := r.client.NewJSONRequest(ctx, method, path, reqBody)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	logger := logging.FromContext(ctx)

	resp, err := r.client.Do(ctx, req)
	if resp != nil {
		defer closeBody(ctx, logger, resp)
	}
	if err != nil {
		// Exhausted retries still hand back the last response; its status
		// is more useful than the retry error.
		if resp != nil && resp.StatusCode != wantStatus {
			return TranslateHTTPError(resp)
		}
		logger.ErrorContext(ctx, "todo-api request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("error", err),
		)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	if resp.StatusCode != wantStatus {
		logger.WarnContext(ctx, "todo-api unexpected status",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.Int("want_status", wantStatus),
		)
		return TranslateHTTPError(resp)
	}

	if respBody != nil {
		if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
			return fmt.Errorf("decoding %s %s response: %w", method, path, err)
		}
	}
	return nil
}

func closeBody(ctx context.Context, logger *slog.Logger, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		logger.WarnContext(ctx, "failed to close response body", slog.Any("error", err))
	}
}
