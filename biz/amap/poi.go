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
	"strings"
)

// poiTypeScenic is the amap POI category code for 风景名胜.
const poiTypeScenic = "110000"

// POI is one point of interest of a text search.
type POI struct {
	Name    string
	Address string
	Area    string // district name
	Tel     string
}

type poiResp struct {
	Status string `json:"status"`
	Info   string `json:"info"`
	POIs   []struct {
		Name    string    `json:"name"`
		Address flexField `json:"address"`
		Adname  flexField `json:"adname"`
		Tel     flexField `json:"tel"`
	} `json:"pois"`
}

// flexField tolerates string-or-empty-array values the POI endpoint emits
// for absent fields.
type flexField string

func (f *flexField) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == "[]" {
		*f = ""
		return nil
	}
	*f = flexField(strings.Trim(s, `"`))
	return nil
}

// SearchPOI runs a scenic-spot text search restricted to one city and
// returns at most 10 results.
func (c *Client) SearchPOI(ctx context.Context, keywords, city string) ([]POI, error) {
	params := url.Values{}
	params.Set("keywords", keywords)
	params.Set("city", city)
	params.Set("types", poiTypeScenic)
	params.Set("offset", "10")
	params.Set("page", "1")
	params.Set("extensions", "all")

	var resp poiResp
	if err := c.getJSON(ctx, poiURL, params, shortTimeout, &resp); err != nil {
		return nil, err
	}
	if resp.Status != "1" {
		return nil, &StatusError{Status: resp.Status, Info: resp.Info}
	}

	pois := make([]POI, 0, len(resp.POIs))
	for i, p := range resp.POIs {
		if i >= 10 {
			break
		}
		pois = append(pois, POI{
			Name:    p.Name,
			Address: string(p.Address),
			Area:    string(p.Adname),
			Tel:     string(p.Tel),
		})
	}
	return pois, nil
}
