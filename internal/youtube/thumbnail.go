package youtube

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultThumbnailBaseURL = "https://img.youtube.com"
	DefaultWatchURL         = "https://www.youtube.com/watch"

	maxThumbnailBytes = 5 * 1024 * 1024
)

// ThumbnailClient downloads the fixed-size preview image of a stream.
type ThumbnailClient struct {
	baseURL string
	http    *http.Client
}

func NewThumbnailClient(baseURL string, httpClient *http.Client) *ThumbnailClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 8 * time.Second}
	}
	if baseURL == "" {
		baseURL = DefaultThumbnailBaseURL
	}
	return &ThumbnailClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// ThumbnailURL returns the address of the high quality default thumbnail.
func (c *ThumbnailClient) ThumbnailURL(streamID string) string {
	return c.baseURL + "/vi/" + url.PathEscape(streamID) + "/hqdefault.jpg"
}

func (c *ThumbnailClient) Thumbnail(ctx context.Context, streamID string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.ThumbnailURL(streamID), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "image/*")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("thumbnail request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("thumbnail request failed with status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxThumbnailBytes))
	if err != nil {
		return nil, fmt.Errorf("read thumbnail: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty thumbnail response")
	}
	return data, nil
}

// WatchURL returns the player URL for a stream id.
func WatchURL(base, streamID string) string {
	if base == "" {
		base = DefaultWatchURL
	}
	q := make(url.Values)
	q.Set("v", streamID)
	return strings.TrimRight(base, "/") + "?" + q.Encode()
}
