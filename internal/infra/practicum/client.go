// internal/infra/practicum/client.go
package practicum

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"homework_status_bot/internal/domain/failure"

	"github.com/sirupsen/logrus"
)

// maxBodySize caps how much of a response body is read.
const maxBodySize = 1 << 20

// Client implements homework.StatusClient against the Practicum homework statuses API.
type Client struct {
	httpClient *http.Client
	endpoint   string
	token      string
	logger     *logrus.Entry
}

func NewClient(endpoint, token string, timeout time.Duration, logger *logrus.Entry) (*Client, error) {
	if _, err := url.ParseRequestURI(endpoint); err != nil {
		return nil, fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
	}
	if token == "" {
		return nil, errors.New("empty API token specified")
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   endpoint,
		token:      token,
		logger:     logger,
	}, nil
}

// GetStatuses requests homeworks updated since fromDate and returns the decoded body.
func (c *Client) GetStatuses(ctx context.Context, fromDate int64) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, failure.Wrap(failure.KindNetwork, err, "cannot build request")
	}
	query := req.URL.Query()
	query.Set("from_date", strconv.FormatInt(fromDate, 10))
	req.URL.RawQuery = query.Encode()
	req.Header.Set("Authorization", "OAuth "+c.token)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, failure.Wrap(failure.KindNetwork, err, "request to homework API failed")
	}
	defer resp.Body.Close()

	c.logger.WithFields(logrus.Fields{
		"status_code": resp.StatusCode,
		"from_date":   fromDate,
		"duration":    time.Since(start),
	}).Debug("Homework API responded")

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, failure.Wrap(failure.KindNetwork, err, "cannot read response body")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, failure.New(failure.KindHTTPStatus, "homework API returned status code %d", resp.StatusCode)
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var payload any
	if err := dec.Decode(&payload); err != nil {
		return nil, failure.Wrap(failure.KindFormat, err, "response body is not JSON")
	}
	return payload, nil
}
