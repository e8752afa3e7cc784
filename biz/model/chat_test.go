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

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTravelInfoEmpty(t *testing.T) {
	assert.True(t, (*TravelInfo)(nil).Empty())
	assert.True(t, (&TravelInfo{}).Empty())
	assert.False(t, (&TravelInfo{Destination: "上海"}).Empty())
}

func TestTravelInfoFormatContext(t *testing.T) {
	info := &TravelInfo{
		DepartureDate:   "2025-07-01",
		ReturnDate:      "2025-07-03",
		DepartureCity:   "北京",
		Destination:     "上海",
		HotelPreference: "经济型",
	}
	got := info.FormatContext()
	assert.Contains(t, got, "【用户旅行信息】")
	assert.Contains(t, got, "出发日期: 2025-07-01")
	assert.Contains(t, got, "目的地: 上海")
	assert.NotContains(t, got, "预算:")
	assert.Contains(t, got, "[重要提示：请查询出发日期在目的地的天气信息]")
	assert.Contains(t, got, "[重要提示：请查询住宿期间的酒店价格信息]")

	// no dates, no hints
	assert.NotContains(t, (&TravelInfo{Destination: "上海"}).FormatContext(), "重要提示")

	assert.Empty(t, (&TravelInfo{}).FormatContext())
}

func TestTravelInfoFingerprint(t *testing.T) {
	a := &TravelInfo{Destination: "上海", Budget: "5000"}
	b := &TravelInfo{Destination: "上海", Budget: "5000"}
	c := &TravelInfo{Destination: "杭州", Budget: "5000"}

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
	assert.Empty(t, (*TravelInfo)(nil).Fingerprint())

	// reversing the trip direction is a change
	outbound := &TravelInfo{DepartureCity: "北京", Destination: "上海"}
	inbound := &TravelInfo{DepartureCity: "上海", Destination: "北京"}
	assert.NotEqual(t, outbound.Fingerprint(), inbound.Fingerprint())
}
