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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/triplan-ai/triplan/biz/amap"
	"github.com/triplan-ai/triplan/biz/consts"
)

func TestEstimatePairKm(t *testing.T) {
	assert.Equal(t, 1200.0, estimatePairKm("北京", "上海"))
	assert.Equal(t, 1200.0, estimatePairKm("上海", "北京"), "pair lookup must be order independent")
	assert.Equal(t, 1200.0, estimatePairKm("北京市朝阳区", "上海浦东"), "substring match")
	assert.Equal(t, 150.0, estimatePairKm("广州", "深圳"))
	assert.Equal(t, defaultPairKm, estimatePairKm("昆明", "拉萨"))
}

func TestDrivingReportFromAPI(t *testing.T) {
	p := &fakeProvider{
		enabled: true,
		points: map[string]*amap.GeoPoint{
			"北京": {Location: "116.4,39.9", Adcode: "110000"},
			"上海": {Location: "121.4,31.2", Adcode: "310000"},
		},
		drivePath: &amap.DrivePath{DistanceM: 1200000, DurationS: 43200, Tolls: 500},
	}
	s := newTestService(p)

	r := s.DrivingReport(t.Context(), "北京", "上海")
	assert.Equal(t, RouteFromAPI, r.Source)
	assert.Equal(t, 1200.0, r.DistanceKm)
	assert.Equal(t, 12.0, r.DurationHours)
	assert.Equal(t, 500.0, r.Tolls)
	assert.Equal(t, 720.0, r.FuelCost)
	assert.Equal(t, 1220.0, r.TotalCost)

	require.Len(t, p.driveArgs, 1)
	assert.Equal(t, [2]string{"116.4,39.9", "121.4,31.2"}, p.driveArgs[0], "resolved coordinates must be used")

	text := FormatRouteReport(r)
	assert.Contains(t, text, "北京到上海的自驾路线：")
	assert.Contains(t, text, "距离：1200.0公里")
	assert.Contains(t, text, "预计时间：12.0小时（720分钟）")
	assert.Contains(t, text, "过路费：500元")
	assert.Contains(t, text, "油费估算：720元")
	assert.Contains(t, text, "总费用估算：1220元")
	assert.Contains(t, text, "长途驾驶")
}

func TestDrivingReportUnresolvedFallsBackToRawStrings(t *testing.T) {
	p := &fakeProvider{
		enabled:   true,
		points:    map[string]*amap.GeoPoint{},
		drivePath: &amap.DrivePath{DistanceM: 150000, DurationS: 7200},
	}
	s := newTestService(p)

	r := s.DrivingReport(t.Context(), "广州塔", "深圳湾")
	assert.Equal(t, RouteFromAPI, r.Source)
	require.Len(t, p.driveArgs, 1)
	assert.Equal(t, [2]string{"广州塔", "深圳湾"}, p.driveArgs[0], "unresolved endpoints go to the API verbatim")
}

func TestDrivingReportEstimateOnAPIFailure(t *testing.T) {
	p := &fakeProvider{
		enabled:  true,
		points:   map[string]*amap.GeoPoint{},
		driveErr: errors.New("timeout"),
	}
	s := newTestService(p)

	r := s.DrivingReport(t.Context(), "北京", "上海")
	assert.Equal(t, RouteEstimated, r.Source)
	assert.Equal(t, 1200.0, r.DistanceKm)
	assert.Equal(t, 15.0, r.DurationHours)
	assert.Equal(t, 600.0, r.Tolls)
	assert.Equal(t, 720.0, r.FuelCost)
	assert.Equal(t, 1320.0, r.TotalCost)
	assert.Equal(t, "timeout", r.Reason)

	text := FormatRouteReport(r)
	assert.Contains(t, text, "路线API调用失败（timeout）")
	assert.Contains(t, text, "自驾路线估算")
	assert.Contains(t, text, "距离估算：1200公里")
	assert.Contains(t, text, "建议使用导航软件查询准确路线")
}

func TestDrivingReportDisabledProvider(t *testing.T) {
	s := newTestService(&fakeProvider{enabled: false})

	r := s.DrivingReport(t.Context(), "北京", "广州")
	assert.Equal(t, RouteEstimated, r.Source)
	assert.Equal(t, 2100.0, r.DistanceKm)
	assert.Empty(t, r.Reason)
	assert.NotContains(t, FormatRouteReport(r), "路线API调用失败")
}

func TestTransportRouteModes(t *testing.T) {
	s := newTestService(&fakeProvider{enabled: false})

	flight := s.TransportRoute(t.Context(), "北京", "上海", consts.ModeFlight)
	assert.Contains(t, flight, "北京到上海的飞机路线：")
	assert.Contains(t, flight, "飞行时间：约90分钟")
	assert.Contains(t, flight, "票价范围：960-1440元")

	rail := s.TransportRoute(t.Context(), "北京", "上海", consts.ModeHighRail)
	assert.Contains(t, rail, "运行时间：约240分钟")
	assert.Contains(t, rail, "票价范围：480-600元")

	train := s.TransportRoute(t.Context(), "北京", "上海", consts.ModeTrain)
	assert.Contains(t, train, "运行时间：约12小时")
	assert.Contains(t, train, "票价范围：180-480元")

	coach := s.TransportRoute(t.Context(), "北京", "上海", consts.ModeCoach)
	assert.Contains(t, coach, "运行时间：约15小时")
	assert.Contains(t, coach, "票价范围：360-600元")

	driving := s.TransportRoute(t.Context(), "北京", "上海", consts.ModeDriving)
	assert.Contains(t, driving, "自驾路线估算")

	other := s.TransportRoute(t.Context(), "北京", "上海", "骑行")
	assert.Contains(t, other, "出行方式'骑行'暂不支持路线规划")
}

func TestDrivingAdviceTiers(t *testing.T) {
	assert.Contains(t, drivingAdvice(10), "长途")
	assert.Contains(t, drivingAdvice(5), "中长途")
	assert.Contains(t, drivingAdvice(2), "短途")
}
