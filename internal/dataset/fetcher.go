package dataset

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/akyairhashvil/brasileirao/internal/config"
)

// Format names the encoding of a dataset body.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Payload is a raw dataset body as returned by a Fetcher.
type Payload struct {
	Resource string
	Format   Format
	Body     []byte
}

// Fetcher retrieves the raw dataset.
//
//go:generate mockgen -source=fetcher.go -destination=mock_fetcher_test.go -package=dataset
type Fetcher interface {
	Fetch(ctx context.Context) (Payload, error)
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTPFetcher fetches the dataset with a GET request.
type HTTPFetcher struct {
	url      string
	resource string
	client   httpDoer
	maxBytes int64
}

// NewHTTPFetcher resolves resource against baseURL. An absolute resource URL
// ignores baseURL. A nil client uses a client with the given timeout.
func NewHTTPFetcher(baseURL, resource string, client *http.Client, timeout time.Duration) (*HTTPFetcher, error) {
	target, err := resolveURL(baseURL, resource)
	if err != nil {
		return nil, err
	}
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}
	return &HTTPFetcher{
		url:      target,
		resource: resource,
		client:   client,
		maxBytes: config.MaxDatasetBytes,
	}, nil
}

func resolveURL(baseURL, resource string) (string, error) {
	ref, err := url.Parse(resource)
	if err != nil {
		return "", fmt.Errorf("parse resource %q: %w", resource, err)
	}
	if ref.IsAbs() {
		return ref.String(), nil
	}
	if baseURL == "" {
		return "", fmt.Errorf("relative resource %q needs a base URL", resource)
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse base url %q: %w", baseURL, err)
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}
	return base.ResolveReference(ref).String(), nil
}

// URL returns the resolved request URL.
func (f *HTTPFetcher) URL() string { return f.url }

// Fetch performs a single GET of the dataset resource.
func (f *HTTPFetcher) Fetch(ctx context.Context) (Payload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return Payload{}, transportErr(f.resource, err)
	}
	req.Header.Set("Accept", "application/json, application/yaml;q=0.9")

	resp, err := f.client.Do(req)
	if err != nil {
		return Payload{}, transportErr(f.resource, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Payload{}, statusErr(f.resource, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return Payload{}, transportErr(f.resource, err)
	}
	if int64(len(body)) > f.maxBytes {
		return Payload{}, parseErr(f.resource, fmt.Errorf("body exceeds %d bytes", f.maxBytes))
	}
	return Payload{
		Resource: f.resource,
		Format:   detectFormat(f.url, resp.Header.Get("Content-Type")),
		Body:     body,
	}, nil
}

// FileFetcher reads the dataset from the local file system.
type FileFetcher struct {
	path     string
	maxBytes int64
}

// NewFileFetcher returns a fetcher for path.
func NewFileFetcher(path string) *FileFetcher {
	return &FileFetcher{path: path, maxBytes: config.MaxDatasetBytes}
}

// Fetch reads the whole file.
func (f *FileFetcher) Fetch(ctx context.Context) (Payload, error) {
	resource := filepath.Base(f.path)
	if err := ctx.Err(); err != nil {
		return Payload{}, transportErr(resource, err)
	}
	file, err := os.Open(f.path)
	if err != nil {
		return Payload{}, transportErr(resource, err)
	}
	defer file.Close()

	body, err := io.ReadAll(io.LimitReader(file, f.maxBytes+1))
	if err != nil {
		return Payload{}, transportErr(resource, err)
	}
	if int64(len(body)) > f.maxBytes {
		return Payload{}, parseErr(resource, fmt.Errorf("file exceeds %d bytes", f.maxBytes))
	}
	return Payload{Resource: resource, Format: detectFormat(f.path, ""), Body: body}, nil
}

func detectFormat(location, contentType string) Format {
	ct := strings.ToLower(contentType)
	if strings.Contains(ct, "yaml") {
		return FormatYAML
	}
	if u, err := url.Parse(location); err == nil && u.Path != "" {
		location = u.Path
	}
	switch strings.ToLower(filepath.Ext(location)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}
