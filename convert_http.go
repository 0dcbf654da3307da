package cookbook

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"
)

// HTTPConvertRequest configures FetchConvert.
type HTTPConvertRequest struct {
	URL    string
	Client *http.Client
	// Title overrides the title derived from the last URL path segment.
	Title   string
	Options []Option
}

// FetchConvert downloads an RST document over HTTP(S) and converts it.
func FetchConvert(ctx context.Context, req HTTPConvertRequest) (*Document, error) {
	if req.URL == "" {
		return nil, fmt.Errorf("fetch: URL is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	client := req.Client
	if client == nil {
		client = http.DefaultClient
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch: build request: %w", err)
	}
	if httpReq.URL.Scheme != "http" && httpReq.URL.Scheme != "https" {
		return nil, fmt.Errorf("fetch: unsupported scheme %q", httpReq.URL.Scheme)
	}
	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("fetch: request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch: status %s", resp.Status)
	}
	return Convert(ConvertRequest{
		Reader:  resp.Body,
		Name:    urlName(httpReq.URL),
		Title:   req.Title,
		Options: req.Options,
	})
}

func urlName(u *url.URL) string {
	name := path.Base(u.Path)
	if name == "/" || name == "." {
		return ""
	}
	return name
}
