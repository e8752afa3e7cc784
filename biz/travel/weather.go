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

package travel

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/RanFeng/ilog"

	"github.com/triplan-ai/triplan/biz/amap"
)

// forecastHorizonDays is the provider's forecast reach. Dates beyond it get
// a live-data approximation with an explicit disclaimer.
const forecastHorizonDays = 4

const placeholderWeather = "晴天，温度15-25°C，适合户外活动"

// Activity suggestions appended to every weather answer.
const (
	adviceRain = "。建议安排室内活动或准备雨具。"
	adviceHot  = "。天气较热，建议安排室内活动或选择早晨/傍晚出行。"
	adviceCold = "。天气较冷，建议多穿衣物，适合室内活动。"
	adviceMild = "。天气适宜，适合户外活动和景点游览。"
)

// daysUntil computes the calendar-day offset of date from today, ignoring
// time of day. ok is false when the date does not parse.
func (s *Service) daysUntil(date string) (days int, ok bool) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0, false
	}
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	target := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return int(target.Sub(today).Hours() / 24), true
}

// suitability picks the activity suggestion. Rain or snow anywhere in the
// condition wins; otherwise the temperature thresholds apply; a temperature
// that does not parse counts as mild.
func suitability(condition string, hotTemp, coldTemp string) string {
	if strings.Contains(condition, "雨") || strings.Contains(condition, "雪") {
		return adviceRain
	}
	if t, err := strconv.Atoi(strings.TrimSpace(hotTemp)); err == nil && t > 30 {
		return adviceHot
	}
	if t, err := strconv.Atoi(strings.TrimSpace(coldTemp)); err == nil && t < 5 {
		return adviceCold
	}
	return adviceMild
}

// WeatherInfo answers "what is the weather in city on date". Dates within
// the forecast horizon use forecast data, with live conditions preferred for
// today; later dates degrade to a live-data approximation; every provider
// failure degrades further to a fixed placeholder. The returned string is
// always usable text.
func (s *Service) WeatherInfo(ctx context.Context, city, date string) string {
	if !s.apiEnabled() {
		return fmt.Sprintf("天气API密钥未配置。假设%s在%s的天气为：%s。", city, date, placeholderWeather)
	}

	gp := s.provider.Resolve(ctx, city)
	if gp == nil {
		return fmt.Sprintf("无法获取%s的地理位置信息。假设天气为：%s。", city, placeholderWeather)
	}
	if gp.Adcode == "" {
		return fmt.Sprintf("无法获取%s的城市编码。假设天气为：%s。", city, placeholderWeather)
	}
	cityName := gp.Address
	if cityName == "" {
		cityName = city
	}

	// A malformed date deliberately behaves as "today".
	daysDiff, ok := s.daysUntil(date)
	if !ok {
		ilog.EventWarn(ctx, "weather_date_unparseable", "date", date)
		daysDiff = 0
	}

	estimateFromLive := daysDiff > forecastHorizonDays

	if daysDiff >= 0 && daysDiff <= forecastHorizonDays {
		wd, err := s.provider.Weather(ctx, gp.Adcode, amap.ExtensionsAll)
		if err != nil {
			ilog.EventWarn(ctx, "weather_forecast_fail", "city", city, "err", err.Error())
		} else {
			if daysDiff == 0 && len(wd.Lives) > 0 {
				return formatLive(cityName, date, &wd.Lives[0])
			}
			if cast := findCast(wd, date); cast != nil {
				return formatCast(cityName, date, cast)
			}
			ilog.EventWarn(ctx, "weather_forecast_absent", "city", city, "date", date)
		}
		// Successful call without a usable block degrades to the
		// live-data approximation.
		estimateFromLive = true
	}

	if estimateFromLive {
		wd, err := s.provider.Weather(ctx, gp.Adcode, amap.ExtensionsBase)
		if err == nil && len(wd.Lives) > 0 {
			live := wd.Lives[0]
			return fmt.Sprintf(
				"%s在%s的天气：%s，温度约%s°C（基于当前天气估算，%s距离今天%d天，实际天气可能有所变化）。建议根据季节准备相应衣物，关注临近天气预报。",
				cityName, date, live.Weather, live.Temperature, date, daysDiff)
		}
		if err != nil {
			ilog.EventWarn(ctx, "weather_live_fail", "city", city, "err", err.Error())
		}
	}

	return fmt.Sprintf("天气API无法获取%s在%s的详细天气信息。建议：根据季节准备相应衣物，关注天气预报。", cityName, date)
}

func findCast(wd *amap.WeatherData, date string) *amap.Cast {
	if len(wd.Forecasts) == 0 {
		return nil
	}
	for i := range wd.Forecasts[0].Casts {
		if wd.Forecasts[0].Casts[i].Date == date {
			return &wd.Forecasts[0].Casts[i]
		}
	}
	return nil
}

func formatLive(cityName, date string, live *amap.Live) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s在%s的天气：%s，温度%s°C，湿度%s%%", cityName, date, live.Weather, live.Temperature, live.Humidity)
	if live.WindDirection != "" {
		fmt.Fprintf(&b, "，风向%s", live.WindDirection)
	}
	if live.WindPower != "" {
		fmt.Fprintf(&b, "，风力%s", live.WindPower)
	}
	b.WriteString(suitability(live.Weather, live.Temperature, live.Temperature))
	return b.String()
}

func formatCast(cityName, date string, cast *amap.Cast) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s在%s的天气：白天%s，夜间%s，温度%s-%s°C",
		cityName, date, cast.DayWeather, cast.NightWeather, cast.NightTemp, cast.DayTemp)
	if cast.DayWind != "" {
		fmt.Fprintf(&b, "，白天风向%s", cast.DayWind)
	}
	if cast.DayPower != "" {
		fmt.Fprintf(&b, "风力%s", cast.DayPower)
	}
	if cast.NightWind != "" {
		fmt.Fprintf(&b, "，夜间风向%s", cast.NightWind)
	}
	if cast.NightPower != "" {
		fmt.Fprintf(&b, "风力%s", cast.NightPower)
	}
	b.WriteString(suitability(cast.DayWeather+cast.NightWeather, cast.DayTemp, cast.NightTemp))
	return b.String()
}
