//This project is the dining API for Hoagie Meal. Access to campus dining locations, events and menus as well as helper endpoints to integrate with our apps.
//API Copyright (C) 2025 Hoagie Club
//This program is free software: you can redistribute it and/or modify
//it under the terms of the GNU General Public License as published by
//the Free Software Foundation, either version 3 of the License, or
//(at your option) any later version.
//
//This program is distributed in the hope that it will be useful,
//but WITHOUT ANY WARRANTY; without even the implied warranty of
//MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//GNU General Public License for more details.
//
//You should have received a copy of the GNU General Public License
//along with this program.  If not, see <https://www.gnu.org/licenses/>.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// MaxResponseBytes caps how much of an upstream body is read.
const MaxResponseBytes = 8 << 20

// Client fetches a collection from the upstream dining API.
type Client interface {
	Get(ctx context.Context, path string, args map[string]string) (*Response, error)
}

// Response is a decoded upstream body. Data holds the collection, which is
// nil when the upstream sent nothing usable.
type Response struct {
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
}

// Empty reports whether r carries no data: nil, an empty array or an
// empty object.
func (r *Response) Empty() bool {
	if r == nil {
		return true
	}
	switch v := r.Data.(type) {
	case nil:
		return true
	case []any:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	default:
		return false
	}
}

// HTTPClient talks to the upstream over HTTP and decodes JSON bodies.
type HTTPClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewHTTPClient creates a client for baseURL with the given request timeout.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Get issues a GET for path with args encoded as query parameters.
func (c *HTTPClient) Get(ctx context.Context, path string, args map[string]string) (*Response, error) {
	endpoint := c.BaseURL + path
	if len(args) > 0 {
		query := url.Values{}
		for k, v := range args {
			query.Set(k, v)
		}
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build upstream request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream request %s: %w", path, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, MaxResponseBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upstream response: %w", err)
	}
	if len(body) > MaxResponseBytes {
		return nil, fmt.Errorf("upstream %s: response exceeds %d bytes", path, MaxResponseBytes)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, &StatusError{StatusCode: res.StatusCode, Path: path, Body: string(body)}
	}

	return decodeResponse(body)
}

// decodeResponse unwraps {"data": ..., "message": ...} envelopes and takes
// any other JSON document whole.
func decodeResponse(body []byte) (*Response, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return &Response{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode upstream response: %w", err)
	}

	envelope, ok := doc.(map[string]any)
	if !ok {
		return &Response{Data: doc}, nil
	}
	data, ok := envelope["data"]
	if !ok {
		return &Response{Data: doc}, nil
	}
	message, _ := envelope["message"].(string)
	return &Response{Data: data, Message: message}, nil
}
