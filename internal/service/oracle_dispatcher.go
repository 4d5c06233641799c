package service

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"confidential-points-exchange/internal/core/domain"

	"github.com/rs/zerolog"
)

// HTTPClient abstracts the HTTP client for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// dispatchRetryIntervals are the waits between delivery attempts.
var dispatchRetryIntervals = []time.Duration{0, 5 * time.Second, 30 * time.Second}

// HTTPOracleDispatcher POSTs pending decryption records to the external
// decryption endpoint. Delivery runs in the background with retries; a record
// the oracle never receives simply stays Pending and can be re-requested.
type HTTPOracleDispatcher struct {
	endpoint string
	secret   []byte
	client   HTTPClient
	timeout  time.Duration
	log      zerolog.Logger
}

// NewHTTPOracleDispatcher creates a new HTTPOracleDispatcher. An empty
// endpoint disables dispatch entirely (useful for local development where the
// oracle is driven by hand).
func NewHTTPOracleDispatcher(endpoint string, secret string, client HTTPClient, timeout time.Duration, log zerolog.Logger) *HTTPOracleDispatcher {
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}
	return &HTTPOracleDispatcher{
		endpoint: endpoint,
		secret:   []byte(secret),
		client:   client,
		timeout:  timeout,
		log:      log,
	}
}

type dispatchPayload struct {
	RecordID  string   `json:"record_id"`
	Handles   []string `json:"handles"`
	CreatedAt string   `json:"created_at"`
}

// Dispatch queues background delivery of the record to the oracle endpoint.
// It returns immediately; delivery outcome is logged, never surfaced.
func (d *HTTPOracleDispatcher) Dispatch(ctx context.Context, record *domain.DecryptionRecord) error {
	if d.endpoint == "" {
		d.log.Debug().Str("record_id", record.ID.String()).Msg("oracle endpoint not configured, skipping dispatch")
		return nil
	}

	handles := make([]string, len(record.Handles))
	for i, h := range record.Handles {
		handles[i] = h.String()
	}
	body, err := json.Marshal(dispatchPayload{
		RecordID:  record.ID.String(),
		Handles:   handles,
		CreatedAt: record.CreatedAt.Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("marshal dispatch payload: %w", err)
	}

	go d.deliver(record.ID.String(), body)
	return nil
}

func (d *HTTPOracleDispatcher) deliver(recordID string, body []byte) {
	for attempt, wait := range dispatchRetryIntervals {
		if wait > 0 {
			time.Sleep(wait)
		}
		if err := d.post(body); err != nil {
			d.log.Warn().
				Err(err).
				Str("record_id", recordID).
				Int("attempt", attempt+1).
				Msg("oracle delivery failed")
			continue
		}
		d.log.Info().
			Str("record_id", recordID).
			Int("attempt", attempt+1).
			Msg("oracle delivery succeeded")
		return
	}
	d.log.Error().
		Str("record_id", recordID).
		Int("attempts", len(dispatchRetryIntervals)).
		Msg("oracle delivery exhausted retries, record stays pending")
}

func (d *HTTPOracleDispatcher) post(body []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Signature", d.sign(body))

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("oracle returned status %d", resp.StatusCode)
	}
	return nil
}

// sign computes the hex HMAC-SHA256 of the payload so the oracle can
// authenticate the origin of the dispatch.
func (d *HTTPOracleDispatcher) sign(body []byte) string {
	mac := hmac.New(sha256.New, d.secret)
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}
