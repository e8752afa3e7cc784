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
)

// Weather extensions values.
const (
	ExtensionsAll  = "all"  // 4-day forecast
	ExtensionsBase = "base" // live conditions only
)

// Live is the current-instant observation, valid only for "today".
type Live struct {
	Weather       string `json:"weather"`
	Temperature   string `json:"temperature"`
	WindDirection string `json:"winddirection"`
	WindPower     string `json:"windpower"`
	Humidity      string `json:"humidity"`
	ReportTime    string `json:"reporttime"`
}

// Cast is one day of the 4-day forecast.
type Cast struct {
	Date         string `json:"date"`
	DayWeather   string `json:"dayweather"`
	NightWeather string `json:"nightweather"`
	DayTemp      string `json:"daytemp"`
	NightTemp    string `json:"nighttemp"`
	DayWind      string `json:"daywind"`
	NightWind    string `json:"nightwind"`
	DayPower     string `json:"daypower"`
	NightPower   string `json:"nightpower"`
}

// Forecast groups the casts of one city.
type Forecast struct {
	City   string `json:"city"`
	Adcode string `json:"adcode"`
	Casts  []Cast `json:"casts"`
}

// WeatherData is the decoded weather endpoint response. Lives is populated
// with extensions=base, Forecasts with extensions=all.
type WeatherData struct {
	Status    string     `json:"status"`
	Info      string     `json:"info"`
	Lives     []Live     `json:"lives"`
	Forecasts []Forecast `json:"forecasts"`
}

// Weather queries the weather endpoint for one adcode.
func (c *Client) Weather(ctx context.Context, adcode, extensions string) (*WeatherData, error) {
	params := url.Values{}
	params.Set("city", adcode)
	params.Set("extensions", extensions)

	var resp WeatherData
	if err := c.getJSON(ctx, weatherURL, params, shortTimeout, &resp); err != nil {
		return nil, err
	}
	if resp.Status != "1" {
		return nil, &StatusError{Status: resp.Status, Info: resp.Info}
	}
	return &resp, nil
}
