package opendata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
	"github.com/travigo/formation/pkg/redis_client"
	"github.com/travigo/formation/pkg/util"
)

const defaultBaseURL = "https://api.opentransportdata.swiss/formation/v1"
const defaultCacheTTL = 2 * time.Minute
const defaultMaxElapsedTime = 30 * time.Second
const defaultRetryInterval = 500 * time.Millisecond

var (
	ErrMissingAPIKey = errors.New("formation api key not configured")
	ErrNotFound      = errors.New("formation not found")
	ErrUnauthorized  = errors.New("formation api rejected the api key")
)

type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("formation api returned status %d: %s", e.StatusCode, util.TrimString(e.Body, 200))
}

type FormationQuery struct {
	EVU           string
	OperationDate time.Time
	TrainNumber   int
}

func (q FormationQuery) Date() string {
	return q.OperationDate.Format(time.DateOnly)
}

func (q FormationQuery) CacheKey() string {
	return fmt.Sprintf("formation:%s:%s:%d", q.EVU, q.Date(), q.TrainNumber)
}

type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client

	// Cache is optional; without it every call goes upstream.
	Cache *ResponseCache

	RetryInterval  time.Duration
	MaxElapsedTime time.Duration
}

// NewClientFromEnvironment builds a client from TRAVIGO_FORMATION_* variables, attaching a redis
// backed response cache when redis is configured.
func NewClientFromEnvironment() (*Client, error) {
	env := util.GetEnvironmentVariables()

	client := &Client{
		BaseURL:    defaultBaseURL,
		APIKey:     env["TRAVIGO_FORMATION_API_KEY"],
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}

	if env["TRAVIGO_FORMATION_API_URL"] != "" {
		client.BaseURL = env["TRAVIGO_FORMATION_API_URL"]
	}

	ttl := defaultCacheTTL
	if env["TRAVIGO_FORMATION_CACHE_TTL"] != "" {
		parsed, err := util.ParseISO8601Duration(env["TRAVIGO_FORMATION_CACHE_TTL"])
		if err != nil {
			return nil, fmt.Errorf("parsing TRAVIGO_FORMATION_CACHE_TTL: %w", err)
		}
		ttl = parsed
	}

	if redis_client.Configured() {
		if err := redis_client.Connect(); err != nil {
			return nil, fmt.Errorf("connecting to redis: %w", err)
		}

		client.Cache = NewResponseCache(redis_client.Client, ttl)
		log.Info().Dur("ttl", ttl).Msg("Formation response cache enabled")
	} else {
		log.Info().Msg("Skipping formation response cache setup")
	}

	return client, nil
}

func (c *Client) GetFormation(ctx context.Context, query FormationQuery) (*FormationResponse, error) {
	if c.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	if c.Cache != nil {
		if cached, ok := c.Cache.Get(ctx, query.CacheKey()); ok {
			var response FormationResponse
			if err := json.Unmarshal([]byte(cached), &response); err == nil {
				log.Debug().Str("key", query.CacheKey()).Msg("Formation served from cache")
				return &response, nil
			}
		}
	}

	body, err := c.fetchWithRetry(ctx, query)
	if err != nil {
		return nil, err
	}

	var response FormationResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("decoding formation response: %w", err)
	}

	if c.Cache != nil {
		if err := c.Cache.Set(ctx, query.CacheKey(), string(body)); err != nil {
			log.Error().Err(err).Str("key", query.CacheKey()).Msg("Failed to cache formation response")
		}
	}

	return &response, nil
}

func (c *Client) fetchWithRetry(ctx context.Context, query FormationQuery) ([]byte, error) {
	retryBackoff := backoff.NewExponentialBackOff()
	retryBackoff.InitialInterval = defaultRetryInterval
	retryBackoff.MaxElapsedTime = defaultMaxElapsedTime

	if c.RetryInterval > 0 {
		retryBackoff.InitialInterval = c.RetryInterval
	}
	if c.MaxElapsedTime > 0 {
		retryBackoff.MaxElapsedTime = c.MaxElapsedTime
	}

	var body []byte
	attempt := 0

	operation := func() error {
		attempt++

		var err error
		body, err = c.fetch(ctx, query)

		return err
	}

	notify := func(err error, wait time.Duration) {
		log.Warn().
			Err(err).
			Str("evu", query.EVU).
			Int("train", query.TrainNumber).
			Str("date", query.Date()).
			Int("attempt", attempt).
			Dur("wait", wait).
			Msg("Retrying formation request")
	}

	if err := backoff.RetryNotify(operation, backoff.WithContext(retryBackoff, ctx), notify); err != nil {
		return nil, err
	}

	return body, nil
}

func (c *Client) fetch(ctx context.Context, query FormationQuery) ([]byte, error) {
	parameters := url.Values{}
	parameters.Set("evu", query.EVU)
	parameters.Set("operationDate", query.Date())
	parameters.Set("trainNumber", strconv.Itoa(query.TrainNumber))

	requestURL := fmt.Sprintf("%s/formations_full?%s", c.BaseURL, parameters.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, backoff.Permanent(err)
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Accept", "application/json")

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, backoff.Permanent(ctx.Err())
		}
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return body, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, backoff.Permanent(ErrNotFound)
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, backoff.Permanent(ErrUnauthorized)
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	default:
		return nil, backoff.Permanent(&StatusError{StatusCode: resp.StatusCode, Body: string(body)})
	}
}
