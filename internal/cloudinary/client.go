// Package cloudinary is a minimal client for the Cloudinary Admin API,
// covering only the by-asset-folder listing the gallery proxies.
package cloudinary

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// pageSize is how many photos one gallery page returns.
const pageSize = 18

// Resource is a single asset as returned by the Admin API.
type Resource struct {
	PublicID string `json:"public_id"`
	URL      string `json:"url"`
}

// Page is one page of a folder listing.
type Page struct {
	Resources  []Resource `json:"resources"`
	NextCursor string     `json:"next_cursor"`
}

// Client for the Cloudinary Admin API.
type Client struct {
	baseURL    string
	apiKey     string
	apiSecret  string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new Cloudinary Admin API client.
func NewClient(cloudName, apiKey, apiSecret string, logger *zap.Logger) *Client {
	return &Client{
		baseURL:   fmt.Sprintf("https://api.cloudinary.com/v1_1/%s", cloudName),
		apiKey:    apiKey,
		apiSecret: apiSecret,
		httpClient: &http.Client{
			Timeout: 10 * time.Second, // Configure appropriate timeout
		},
		logger: logger,
	}
}

// NewClientWithBaseURL is NewClient with an explicit API base, used by tests.
func NewClientWithBaseURL(baseURL, apiKey, apiSecret string, logger *zap.Logger) *Client {
	c := NewClient("", apiKey, apiSecret, logger)
	c.baseURL = baseURL
	return c
}

// ListByFolder fetches one page of assets stored under the given folder.
func (c *Client) ListByFolder(ctx context.Context, folder, nextCursor string) (*Page, error) {
	params := url.Values{}
	params.Set("asset_folder", folder)
	params.Set("max_results", strconv.Itoa(pageSize))
	if nextCursor != "" {
		params.Set("next_cursor", nextCursor)
	}

	endpoint := fmt.Sprintf("%s/resources/by_asset_folder?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.logger.Error("Failed to create request to Cloudinary", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(c.apiKey, c.apiSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to make request to Cloudinary", zap.Error(err))
		return nil, fmt.Errorf("failed to make request to Cloudinary: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Cloudinary returned non-OK status", zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("cloudinary returned status: %d", resp.StatusCode)
	}

	var page Page
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		c.logger.Error("Failed to decode Cloudinary response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode Cloudinary response: %w", err)
	}

	c.logger.Info("Fetched gallery page from Cloudinary",
		zap.String("folder", folder), zap.Int("count", len(page.Resources)))
	return &page, nil
}
