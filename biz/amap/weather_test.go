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
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeatherForecast(t *testing.T) {
	body := `{"status":"1","info":"OK","forecasts":[{"city":"北京市","adcode":"110000","casts":[
		{"date":"2025-07-01","dayweather":"晴","nightweather":"多云","daytemp":"32","nighttemp":"22","daywind":"南","nightwind":"南","daypower":"1-3","nightpower":"1-3"}]}]}`
	doer := &mockDoer{respond: func(*http.Request) (*http.Response, error) {
		return jsonResponse(body), nil
	}}
	c := newTestClient(doer)

	wd, err := c.Weather(t.Context(), "110000", ExtensionsAll)
	require.NoError(t, err)
	require.Len(t, wd.Forecasts, 1)
	require.Len(t, wd.Forecasts[0].Casts, 1)
	cast := wd.Forecasts[0].Casts[0]
	assert.Equal(t, "2025-07-01", cast.Date)
	assert.Equal(t, "晴", cast.DayWeather)
	assert.Equal(t, "22", cast.NightTemp)

	q := doer.requests[0].URL.Query()
	assert.Equal(t, "110000", q.Get("city"))
	assert.Equal(t, "all", q.Get("extensions"))
}

func TestWeatherLive(t *testing.T) {
	body := `{"status":"1","lives":[{"weather":"小雨","temperature":"18","winddirection":"东北","windpower":"4","humidity":"80","reporttime":"2025-07-01 10:00:00"}]}`
	doer := &mockDoer{respond: func(*http.Request) (*http.Response, error) {
		return jsonResponse(body), nil
	}}
	c := newTestClient(doer)

	wd, err := c.Weather(t.Context(), "110000", ExtensionsBase)
	require.NoError(t, err)
	require.Len(t, wd.Lives, 1)
	assert.Equal(t, "小雨", wd.Lives[0].Weather)
	assert.Equal(t, "18", wd.Lives[0].Temperature)
	assert.Equal(t, "base", doer.requests[0].URL.Query().Get("extensions"))
}

func TestWeatherStatusFailure(t *testing.T) {
	doer := &mockDoer{respond: func(*http.Request) (*http.Response, error) {
		return jsonResponse(`{"status":"0","info":"INVALID_USER_KEY"}`), nil
	}}
	c := newTestClient(doer)

	_, err := c.Weather(t.Context(), "110000", ExtensionsAll)
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.False(t, se.RateLimited())
}
