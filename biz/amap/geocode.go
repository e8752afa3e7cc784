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

package amap

import (
	"context"
	"net/url"

	"github.com/RanFeng/ilog"
)

// GeoPoint is one resolved location. Location is the "lon,lat" token the
// directions endpoint accepts, Address the provider's canonical form of the
// input, Adcode the administrative region code keyed by the weather endpoint.
type GeoPoint struct {
	Location string
	Address  string
	Adcode   string
}

type geocodeResp struct {
	Status   string `json:"status"`
	Info     string `json:"info"`
	Geocodes []struct {
		FormattedAddress string `json:"formatted_address"`
		Adcode           string `json:"adcode"`
		Location         string `json:"location"`
	} `json:"geocodes"`
}

// Resolve turns a free-text place name into a GeoPoint. Every failure mode —
// missing key, transport error, non-200, status!="1", empty result — yields
// nil, never an error: downstream calls fall back to the raw address string
// and rely on the provider's own fuzzy matching.
func (c *Client) Resolve(ctx context.Context, address string) *GeoPoint {
	if !c.Enabled() || address == "" {
		return nil
	}

	if c.cache != nil {
		if gp := c.cache.Get(ctx, address); gp != nil {
			return gp
		}
	}

	params := url.Values{}
	params.Set("address", address)

	var resp geocodeResp
	if err := c.getJSON(ctx, geocodeURL, params, shortTimeout, &resp); err != nil {
		ilog.EventWarn(ctx, "geocode_request_fail", "address", address, "err", err.Error())
		return nil
	}
	if resp.Status != "1" {
		ilog.EventWarn(ctx, "geocode_status_fail", "address", address, "info", resp.Info)
		return nil
	}
	if len(resp.Geocodes) == 0 {
		ilog.EventWarn(ctx, "geocode_empty_result", "address", address)
		return nil
	}

	first := resp.Geocodes[0]
	gp := &GeoPoint{
		Location: first.Location,
		Address:  first.FormattedAddress,
		Adcode:   first.Adcode,
	}
	if gp.Address == "" {
		gp.Address = address
	}

	if c.cache != nil {
		c.cache.Set(ctx, address, gp)
	}
	return gp
}
