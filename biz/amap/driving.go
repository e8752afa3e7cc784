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
	"errors"
	"net/url"
)

// DrivePath is the first (provider-optimal) path of a driving-directions
// response with all numeric fields coerced to floats.
type DrivePath struct {
	DistanceM     float64 // meters
	DurationS     float64 // seconds
	Tolls         float64 // yuan
	TollDistanceM float64 // meters of tolled road
}

type drivingResp struct {
	Status string `json:"status"`
	Info   string `json:"info"`
	Route  struct {
		Paths []struct {
			Distance     flexFloat `json:"distance"`
			Duration     flexFloat `json:"duration"`
			Tolls        flexFloat `json:"tolls"`
			TollDistance flexFloat `json:"toll_distance"`
		} `json:"paths"`
	} `json:"route"`
}

// ErrNoPath reports a successful call that carried no route.
var ErrNoPath = errors.New("amap: no driving path returned")

// Driving plans a driving route between two endpoints, each either a
// "lon,lat" token or a raw place string (the endpoint fuzzy-matches the
// latter). extensions=all is requested so the toll breakdown is present.
func (c *Client) Driving(ctx context.Context, origin, destination string) (*DrivePath, error) {
	params := url.Values{}
	params.Set("origin", origin)
	params.Set("destination", destination)
	params.Set("extensions", "all")

	var resp drivingResp
	if err := c.getJSON(ctx, drivingURL, params, drivingTimeout, &resp); err != nil {
		return nil, err
	}
	if resp.Status != "1" {
		return nil, &StatusError{Status: resp.Status, Info: resp.Info}
	}
	if len(resp.Route.Paths) == 0 {
		return nil, ErrNoPath
	}

	first := resp.Route.Paths[0]
	return &DrivePath{
		DistanceM:     float64(first.Distance),
		DurationS:     float64(first.Duration),
		Tolls:         float64(first.Tolls),
		TollDistanceM: float64(first.TollDistance),
	}, nil
}
