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
	"strings"

	"github.com/RanFeng/ilog"

	"github.com/triplan-ai/triplan/biz/consts"
)

// Cost model constants, yuan per kilometer unless noted.
const (
	fuelRatePerKm    = 0.6
	estTollPerKm     = 0.5
	estDrivingSpeed  = 80.0 // km/h, also the coach speed
	flightSpeed      = 800.0
	highRailSpeed    = 300.0
	trainSpeed       = 100.0
	defaultPairKm    = 800.0
	longTripHours    = 8.0
	mediumTripHours  = 4.0
)

// cityPairKm is the offline distance table used when the directions API is
// unavailable. Matching is substring-based and order-independent.
var cityPairKm = []struct {
	a, b string
	km   float64
}{
	{"北京", "上海", 1200},
	{"北京", "广州", 2100},
	{"北京", "深圳", 2200},
	{"上海", "广州", 1400},
	{"上海", "深圳", 1500},
	{"广州", "深圳", 150},
}

// RouteSource tags where a route report came from.
type RouteSource int

const (
	// RouteFromAPI means live directions data.
	RouteFromAPI RouteSource = iota
	// RouteEstimated means the offline table and fixed-speed model.
	RouteEstimated
	// RouteUnavailable means no usable answer, Reason explains why.
	RouteUnavailable
)

// RouteReport is the structured result of a driving-route query. The
// LLM-facing boundary only ever sees its formatted string.
type RouteReport struct {
	Source      RouteSource
	Origin      string
	Destination string

	DistanceKm    float64
	DurationHours float64
	Tolls         float64
	FuelCost      float64
	TotalCost     float64

	// Reason carries the provider failure that triggered an estimate.
	Reason string
}

// estimatePairKm looks up the unordered city pair, defaulting to a medium
// distance when neither orientation matches.
func estimatePairKm(origin, destination string) float64 {
	for _, p := range cityPairKm {
		if (strings.Contains(origin, p.a) && strings.Contains(destination, p.b)) ||
			(strings.Contains(origin, p.b) && strings.Contains(destination, p.a)) {
			return p.km
		}
	}
	return defaultPairKm
}

// estimateDrivingReport is the offline fallback: fixed table distance,
// 80 km/h average speed, per-kilometer toll and fuel rates.
func estimateDrivingReport(origin, destination, reason string) *RouteReport {
	km := estimatePairKm(origin, destination)
	tolls := km * estTollPerKm
	fuel := km * fuelRatePerKm
	return &RouteReport{
		Source:        RouteEstimated,
		Origin:        origin,
		Destination:   destination,
		DistanceKm:    km,
		DurationHours: km / estDrivingSpeed,
		Tolls:         tolls,
		FuelCost:      fuel,
		TotalCost:     tolls + fuel,
		Reason:        reason,
	}
}

// DrivingReport resolves both endpoints, asks the directions endpoint and
// falls back to the offline estimate on any failure. Geocode failures are
// not fatal: the raw strings go to the directions endpoint, whose own fuzzy
// matching is the last resort before the offline table.
func (s *Service) DrivingReport(ctx context.Context, origin, destination string) *RouteReport {
	if !s.apiEnabled() {
		return estimateDrivingReport(origin, destination, "")
	}

	originParam, destParam := origin, destination
	if gp := s.provider.Resolve(ctx, origin); gp != nil && gp.Location != "" {
		originParam = gp.Location
	} else {
		ilog.EventWarn(ctx, "route_origin_unresolved", "origin", origin)
	}
	if gp := s.provider.Resolve(ctx, destination); gp != nil && gp.Location != "" {
		destParam = gp.Location
	} else {
		ilog.EventWarn(ctx, "route_destination_unresolved", "destination", destination)
	}

	path, err := s.provider.Driving(ctx, originParam, destParam)
	if err != nil {
		ilog.EventWarn(ctx, "driving_api_fail", "origin", origin, "destination", destination, "err", err.Error())
		return estimateDrivingReport(origin, destination, err.Error())
	}

	km := path.DistanceM / 1000
	fuel := km * fuelRatePerKm
	return &RouteReport{
		Source:        RouteFromAPI,
		Origin:        origin,
		Destination:   destination,
		DistanceKm:    km,
		DurationHours: path.DurationS / 3600,
		Tolls:         path.Tolls,
		FuelCost:      fuel,
		TotalCost:     path.Tolls + fuel,
	}
}

func drivingAdvice(hours float64) string {
	switch {
	case hours > longTripHours:
		return "长途驾驶，注意休息，建议中途停留"
	case hours > mediumTripHours:
		return "中长途驾驶，建议准备充足"
	default:
		return "短途驾驶，适合当日往返"
	}
}

// FormatRouteReport renders the report as the advisory text handed to the
// LLM boundary.
func FormatRouteReport(r *RouteReport) string {
	var b strings.Builder
	switch r.Source {
	case RouteFromAPI:
		fmt.Fprintf(&b, "%s到%s的自驾路线：\n", r.Origin, r.Destination)
		fmt.Fprintf(&b, "- 距离：%.1f公里\n", r.DistanceKm)
		fmt.Fprintf(&b, "- 预计时间：%.1f小时（%d分钟）\n", r.DurationHours, int(r.DurationHours*60))
		fmt.Fprintf(&b, "- 过路费：%.0f元\n", r.Tolls)
		fmt.Fprintf(&b, "- 油费估算：%.0f元（按%.1f元/公里）\n", r.FuelCost, fuelRatePerKm)
		fmt.Fprintf(&b, "- 总费用估算：%.0f元\n", r.TotalCost)
		fmt.Fprintf(&b, "- 建议：%s\n", drivingAdvice(r.DurationHours))
	case RouteEstimated:
		if r.Reason != "" {
			fmt.Fprintf(&b, "路线API调用失败（%s），以下为估算数据。\n", r.Reason)
		}
		fmt.Fprintf(&b, "%s到%s的自驾路线估算：\n", r.Origin, r.Destination)
		fmt.Fprintf(&b, "- 距离估算：%.0f公里\n", r.DistanceKm)
		fmt.Fprintf(&b, "- 预计时间：%.1f小时（%d分钟）\n", r.DurationHours, int(r.DurationHours*60))
		fmt.Fprintf(&b, "- 过路费估算：%.0f元\n", r.Tolls)
		fmt.Fprintf(&b, "- 油费估算：%.0f元\n", r.FuelCost)
		fmt.Fprintf(&b, "- 总费用估算：%.0f元\n", r.TotalCost)
		b.WriteString("注意：这是估算值，实际距离和费用可能因具体路线而异。建议使用导航软件查询准确路线。")
	default:
		fmt.Fprintf(&b, "暂时无法规划%s到%s的路线：%s", r.Origin, r.Destination, r.Reason)
	}
	return b.String()
}

// DrivingRoute is the string-producing entry used by the transport tool.
func (s *Service) DrivingRoute(ctx context.Context, origin, destination string) string {
	return FormatRouteReport(s.DrivingReport(ctx, origin, destination))
}

// TransportRoute dispatches by travel mode. Public transport modes have no
// free ticketing API and always use the per-mode estimators; driving goes
// through the directions pipeline; anything else yields an explanatory
// string so the calling agent always receives usable text.
func (s *Service) TransportRoute(ctx context.Context, origin, destination, mode string) string {
	switch mode {
	case consts.ModeFlight, consts.ModeHighRail, consts.ModeTrain, consts.ModeCoach:
		return estimatePublicTransport(origin, destination, mode)
	case consts.ModeDriving:
		return s.DrivingRoute(ctx, origin, destination)
	default:
		return fmt.Sprintf("出行方式'%s'暂不支持路线规划。建议：%s到%s，请选择合适的出行方式。", mode, origin, destination)
	}
}

// estimatePublicTransport renders the fixed-speed, per-kilometer fare
// estimate of one public transport mode.
func estimatePublicTransport(origin, destination, mode string) string {
	km := estimatePairKm(origin, destination)

	var b strings.Builder
	fmt.Fprintf(&b, "%s到%s的%s路线：\n", origin, destination, mode)

	switch mode {
	case consts.ModeFlight:
		hours := km / flightSpeed
		fmt.Fprintf(&b, "- 距离：约%.0f公里\n", km)
		fmt.Fprintf(&b, "- 飞行时间：约%d分钟（不含候机时间）\n", int(hours*60))
		fmt.Fprintf(&b, "- 票价范围：%d-%d元（经济舱，不含税费）\n", int(km*0.8), int(km*1.2))
		b.WriteString("- 建议：提前预订可获得更好价格，关注航空公司促销活动\n")
	case consts.ModeHighRail:
		hours := km / highRailSpeed
		fmt.Fprintf(&b, "- 距离：约%.0f公里\n", km)
		fmt.Fprintf(&b, "- 运行时间：约%d分钟\n", int(hours*60))
		fmt.Fprintf(&b, "- 票价范围：%d-%d元（二等座）\n", int(km*0.4), int(km*0.5))
		b.WriteString("- 建议：高铁舒适便捷，适合中长途旅行\n")
	case consts.ModeTrain:
		hours := km / trainSpeed
		fmt.Fprintf(&b, "- 距离：约%.0f公里\n", km)
		fmt.Fprintf(&b, "- 运行时间：约%d小时\n", int(hours))
		fmt.Fprintf(&b, "- 票价范围：%d-%d元（硬座-硬卧）\n", int(km*0.15), int(km*0.4))
		b.WriteString("- 建议：价格实惠，但时间较长，适合预算有限的旅行\n")
	case consts.ModeCoach:
		hours := km / estDrivingSpeed
		fmt.Fprintf(&b, "- 距离：约%.0f公里\n", km)
		fmt.Fprintf(&b, "- 运行时间：约%d小时\n", int(hours))
		fmt.Fprintf(&b, "- 票价范围：%d-%d元\n", int(km*0.3), int(km*0.5))
		b.WriteString("- 建议：价格实惠，适合短途旅行\n")
	}

	b.WriteString("注意：实际票价和时间可能因具体班次、日期、季节等因素有所不同。建议通过12306、携程等平台查询实时信息。")
	return b.String()
}
