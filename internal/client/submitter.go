package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/Houeta/dsm44-seeder/internal/lib/logger/sl"
	"github.com/Houeta/dsm44-seeder/internal/metrics"
	"github.com/Houeta/dsm44-seeder/internal/models"
)

const (
	DefaultMaxAttempts = 5
	DefaultDelay       = time.Second
)

var ErrStatus = errors.New("unexpected status")

// Response is a successful reply of the seeded API with its body already read.
type Response struct {
	StatusCode int
	Body       []byte
}

// SubmitterIface posts a payload and returns nil when every attempt failed.
type SubmitterIface interface {
	Submit(ctx context.Context, url string, payload any) *Response
}

// RetryPolicy bounds a submit: MaxAttempts tries in total, Delay between them.
type RetryPolicy struct {
	MaxAttempts int
	Delay       time.Duration
}

type Submitter struct {
	log     *slog.Logger
	client  *http.Client
	metrics *metrics.Metrics
	policy  RetryPolicy
	sleep   func(ctx context.Context, d time.Duration)
}

func NewSubmitter(log *slog.Logger, client *http.Client, metrics *metrics.Metrics, policy RetryPolicy) *Submitter {
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = DefaultMaxAttempts
	}
	if policy.Delay < 0 {
		policy.Delay = DefaultDelay
	}

	return &Submitter{
		log:     log.With(slog.String("op", "Client.Submit")),
		client:  client,
		metrics: metrics,
		policy:  policy,
		sleep:   sleepContext,
	}
}

// Submit sends payload as JSON to destURL until a 2xx arrives or the attempts run out.
// It never returns an error: failures are logged and reported as a nil Response.
func (s *Submitter) Submit(ctx context.Context, destURL string, payload any) *Response {
	log := s.log.With(slog.String("url", destURL))
	endpoint := endpointLabel(destURL)

	body, err := json.Marshal(payload)
	if err != nil {
		log.ErrorContext(ctx, "Failed to encode payload", sl.Err(err))
		return nil
	}

	for attempt := 1; ; attempt++ {
		resp, postErr := s.post(ctx, destURL, body)
		if postErr == nil {
			s.metrics.SubmitAttempts.WithLabelValues(endpoint, "success").Inc()
			return resp
		}
		s.metrics.SubmitAttempts.WithLabelValues(endpoint, "failure").Inc()

		if attempt >= s.policy.MaxAttempts {
			attrs := []any{"attempts", attempt, sl.Err(postErr)}
			if resp != nil {
				attrs = append(attrs, "status_code", resp.StatusCode, sl.Body(resp.Body))
			}
			log.ErrorContext(ctx, "Request failed after all attempts", attrs...)

			return nil
		}

		log.WarnContext(ctx, "Request failed, retrying...",
			"attempt", attempt, "of", s.policy.MaxAttempts, "error", postErr.Error())
		s.metrics.SubmitRetries.WithLabelValues(endpoint).Inc()
		s.sleep(ctx, s.policy.Delay)
	}
}

// post performs one attempt. On a non-2xx status it returns both the read response and ErrStatus.
func (s *Submitter) post(ctx context.Context, destURL string, body []byte) (*Response, error) {
	startTime := time.Now()
	defer func() {
		s.metrics.RequestDuration.WithLabelValues(endpointLabel(destURL)).Observe(time.Since(startTime).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, destURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create new request %s: %w", destURL, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", models.UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to request %s: %w", destURL, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	result := &Response{StatusCode: resp.StatusCode, Body: respBody}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return result, fmt.Errorf("%w, status code: %d", ErrStatus, resp.StatusCode)
	}

	return result, nil
}

func sleepContext(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

// endpointLabel keeps metric cardinality bounded by dropping host and query.
func endpointLabel(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Path == "" {
		return "unknown"
	}

	return u.Path
}
