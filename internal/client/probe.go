package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Houeta/dsm44-seeder/internal/models"
)

const DefaultProbeTimeout = 10 * time.Second

// Probe issues a single GET to destURL and returns its status code.
// Any HTTP status means the API is reachable; only transport failures are returned as errors.
func Probe(ctx context.Context, client *http.Client, destURL string, timeout time.Duration) (int, error) {
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, destURL, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create new request %s: %w", destURL, err)
	}
	req.Header.Set("User-Agent", models.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to request %s: %w", destURL, err)
	}
	defer resp.Body.Close()

	return resp.StatusCode, nil
}
