package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"jobboard/internal/domain"
	"jobboard/internal/utils"

	"github.com/redis/go-redis/v9"
)

const (
	requestTimeout = 10 * time.Second
	cacheTTL       = 10 * time.Minute
)

// Client looks up on-chain identity judgements for a wallet address. One
// best-effort attempt per call, no retry; any transport or decode failure
// surfaces as an upstream error.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	cache      *redis.Client
}

// NewClient builds the lookup client. cache may be nil.
func NewClient(baseURL, apiKey string, cache *redis.Client) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
		cache:      cache,
	}
}

type lookupResponse struct {
	Data struct {
		Account struct {
			AccountDisplay struct {
				People struct {
					Judgements []struct {
						Judgement string `json:"judgement"`
					} `json:"judgements"`
				} `json:"people"`
			} `json:"account_display"`
		} `json:"account"`
	} `json:"data"`
}

// Verify fetches the judgement list for an address, serving cached results
// when available.
func (c *Client) Verify(ctx context.Context, address string) ([]Judgement, error) {
	if cached, ok := c.fromCache(ctx, address); ok {
		return cached, nil
	}

	body, err := json.Marshal(map[string]string{"key": address})
	if err != nil {
		return nil, domain.InternalError{Msg: "encode identity request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, domain.InternalError{Msg: "build identity request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.UpstreamError{Service: "identity lookup", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.UpstreamError{Service: "identity lookup", Err: fmt.Errorf("status %d", resp.StatusCode)}
	}

	var parsed lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, domain.UpstreamError{Service: "identity lookup", Err: err}
	}

	judgements := []Judgement{}
	for _, j := range parsed.Data.Account.AccountDisplay.People.Judgements {
		judgements = append(judgements, Judgement(j.Judgement))
	}

	c.toCache(ctx, address, judgements)
	return judgements, nil
}

func cacheKey(address string) string {
	return "identity:judgements:" + address
}

func (c *Client) fromCache(ctx context.Context, address string) ([]Judgement, bool) {
	if c.cache == nil {
		return nil, false
	}
	raw, err := c.cache.Get(ctx, cacheKey(address)).Result()
	if err != nil {
		return nil, false
	}
	var judgements []Judgement
	if err := json.Unmarshal([]byte(raw), &judgements); err != nil {
		return nil, false
	}
	return judgements, true
}

// toCache is best effort; a cache failure never fails the lookup.
func (c *Client) toCache(ctx context.Context, address string, judgements []Judgement) {
	if c.cache == nil {
		return
	}
	raw, err := json.Marshal(judgements)
	if err != nil {
		return
	}
	if err := c.cache.Set(ctx, cacheKey(address), raw, cacheTTL).Err(); err != nil {
		utils.LogEvent("", "identity", "cache_set_failed", err.Error())
	}
}
