package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Doer is the pluggable HTTP transport the session drives. *http.Client
// satisfies it; tests can substitute anything that answers requests.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// transport wraps a Doer with the four verbs the service needs, resolved
// against a fixed base URL. Any non-2xx response becomes a *RemoteError;
// no retries happen at this layer.
type transport struct {
	base *url.URL
	http Doer
}

func newTransport(baseURL string, d Doer) (*transport, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base url %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, &ValidationError{Field: "baseurl", Reason: "must be an absolute http(s) url"}
	}
	return &transport{base: u, http: d}, nil
}

// endpoint joins the base URL with a service path and optional query.
func (t *transport) endpoint(path string, query url.Values) string {
	u := *t.base
	u.Path = strings.TrimRight(u.Path, "/") + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// do performs a single request and returns the raw response body. A non-2xx
// status yields a *RemoteError carrying method, URL and status line.
func (t *transport) do(ctx context.Context, method, rawURL string, body io.Reader, contentType string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, fmt.Errorf("building %s %s: %w", method, rawURL, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := t.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, rawURL, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response of %s %s: %w", method, rawURL, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RemoteError{
			Method:     method,
			URL:        rawURL,
			Status:     resp.Status,
			StatusCode: resp.StatusCode,
		}
	}
	return data, nil
}

// getJSON fetches a service path and decodes the JSON body into out.
func (t *transport) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	data, err := t.do(ctx, http.MethodGet, t.endpoint(path, query), nil, "")
	if err != nil {
		return err
	}
	return decodeBody(data, out)
}

// postJSON posts an optional JSON body to a service path. The raw response
// bytes are returned alongside the decode so callers that care about an
// empty body (the destroy endpoints) can see it.
func (t *transport) postJSON(ctx context.Context, path string, query url.Values, body, out any) ([]byte, error) {
	var (
		r           io.Reader
		contentType string
	)
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		r = bytes.NewReader(encoded)
		contentType = "application/json"
	}
	data, err := t.do(ctx, http.MethodPost, t.endpoint(path, query), r, contentType)
	if err != nil {
		return nil, err
	}
	if out != nil {
		if err := decodeBody(data, out); err != nil {
			return nil, err
		}
	}
	return data, nil
}

// getRaw fetches a service path and returns the body verbatim, bypassing
// JSON decoding. Used by the blob endpoints.
func (t *transport) getRaw(ctx context.Context, path string, query url.Values) ([]byte, error) {
	return t.do(ctx, http.MethodGet, t.endpoint(path, query), nil, "")
}

// putRaw issues a PUT of raw bytes to an opaque URL, such as the one-time
// upload destination the create endpoint hands out.
func (t *transport) putRaw(ctx context.Context, rawURL string, body io.Reader) error {
	_, err := t.do(ctx, http.MethodPut, rawURL, body, "application/octet-stream")
	return err
}

// decodeBody unmarshals data into out, treating an empty body as "nothing
// decoded" rather than a syntax error.
func decodeBody(data []byte, out any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// emptyBody reports whether a response body carries no usable payload.
func emptyBody(data []byte) bool {
	s := string(bytes.TrimSpace(data))
	return s == "" || s == "null" || s == "false"
}
