/*
 * Copyright 2025 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package amap is the client of the amap (高德) open platform: geocoding,
// weather, driving directions and POI search. Every outbound call funnels
// through one shared Limiter.
package amap

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
)

const (
	geocodeURL = "https://restapi.amap.com/v3/geocode/geo"
	weatherURL = "https://restapi.amap.com/v3/weather/weatherInfo"
	drivingURL = "https://restapi.amap.com/v3/direction/driving"
	poiURL     = "https://restapi.amap.com/v3/place/text"

	shortTimeout   = 5 * time.Second  // geocode, weather, POI
	drivingTimeout = 10 * time.Second // directions carry larger payloads
)

// Doer abstracts the HTTP client so tests can stub provider responses.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the amap REST endpoints. A zero API key is allowed: the
// caller checks Enabled() and routes to local estimation instead.
type Client struct {
	key     string
	limiter *Limiter
	httpCli Doer
	cache   GeoCache
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(d Doer) Option {
	return func(c *Client) { c.httpCli = d }
}

// WithGeoCache installs a cache for geocoding results.
func WithGeoCache(gc GeoCache) Option {
	return func(c *Client) { c.cache = gc }
}

// NewClient builds a client sharing the given limiter.
func NewClient(key string, limiter *Limiter, opts ...Option) *Client {
	c := &Client{
		key:     key,
		limiter: limiter,
		httpCli: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Enabled reports whether an API key is configured.
func (c *Client) Enabled() bool {
	return c != nil && c.key != ""
}

// StatusError is the application-level failure the provider signals with a
// non-"1" status flag. Rate-limit rejections are recognized by substring
// match on the info field.
type StatusError struct {
	Status string
	Info   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("amap: status=%s info=%s", e.Status, e.Info)
}

// RateLimited reports whether the provider rejected the call for QPS reasons.
func (e *StatusError) RateLimited() bool {
	info := strings.ToUpper(e.Info)
	return strings.Contains(info, "QPS") || strings.Contains(info, "LIMIT")
}

// getJSON performs one limited GET and decodes the JSON body into out.
func (c *Client) getJSON(ctx context.Context, endpoint string, params url.Values, timeout time.Duration, out any) error {
	params.Set("key", c.key)
	params.Set("output", "json")
	full := endpoint + "?" + params.Encode()

	var body []byte
	err := c.limiter.Execute(ctx, func() error {
		reqCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, full, nil)
		if err != nil {
			return err
		}
		resp, err := c.httpCli.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("amap: http status %d", resp.StatusCode)
		}
		body, err = io.ReadAll(resp.Body)
		return err
	})
	if err != nil {
		return err
	}
	return sonic.Unmarshal(body, out)
}

// flexFloat tolerates the provider's habit of returning numeric fields as
// strings, numbers, empty strings or null. All of those coerce to a float,
// defaulting to 0.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` || s == `[]` {
		*f = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	if s == "" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = flexFloat(v)
	return nil
}
