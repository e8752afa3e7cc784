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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItineraryPromptFull(t *testing.T) {
	s := newTestService(&fakeProvider{enabled: false})

	got := s.ItineraryPrompt(t.Context(), &ItineraryRequest{
		Destination:     "上海",
		Days:            3,
		Budget:          5000,
		Preferences:     "喜欢历史文化",
		DepartureDate:   "2025-07-01",
		ReturnDate:      "2025-07-03",
		HotelPreference: "经济型",
		DepartureCity:   "北京",
		TransportMode:   "高铁",
		Interests:       "历史、美食",
	})

	assert.Contains(t, got, "目的地：上海")
	assert.Contains(t, got, "天数：3天")
	assert.Contains(t, got, "预算：5000")
	assert.Contains(t, got, "当前偏好：喜欢历史文化")
	assert.Contains(t, got, "出发日天气：")
	assert.Contains(t, got, "酒店价格信息：")
	assert.Contains(t, got, "交通路线信息：")
	assert.Contains(t, got, "北京到上海的高铁路线：")
	assert.Contains(t, got, "景点门票信息：")
	assert.Contains(t, got, "请提供详细的每日行程安排")
	assert.Contains(t, got, "预算分配")
}

func TestItineraryPromptMinimal(t *testing.T) {
	s := newTestService(&fakeProvider{enabled: false})

	got := s.ItineraryPrompt(t.Context(), &ItineraryRequest{Destination: "杭州", Days: 2})
	assert.Contains(t, got, "预算：未指定")
	assert.Contains(t, got, "当前偏好：无特殊偏好")
	// the fixed trailer mentions the lookups by name, so absence is checked
	// against the section headers, not the bare names
	assert.NotContains(t, got, "\n出发日天气：")
	assert.NotContains(t, got, "\n酒店价格信息：\n")
	assert.NotContains(t, got, "\n交通路线信息：\n")
	assert.NotContains(t, got, "\n景点门票信息：\n")
}

func TestAttractionQuestionPrompt(t *testing.T) {
	got := AttractionQuestionPrompt("开放时间是几点？", "故宫")
	assert.Contains(t, got, "关于\"故宫\"的问题")
	assert.Contains(t, got, "开放时间是几点？")

	noAttraction := AttractionQuestionPrompt("西湖需要门票吗？", "")
	assert.Contains(t, noAttraction, "关于\"西湖需要门票吗？\"的问题")
}

func TestRecommendationPrompt(t *testing.T) {
	got := RecommendationPrompt("成都", "美食", "休闲游")
	assert.Contains(t, got, "目的地：成都")
	assert.Contains(t, got, "当前兴趣：美食")
	assert.Contains(t, got, "旅行风格：休闲游")

	noStyle := RecommendationPrompt("成都", "美食", "")
	assert.Contains(t, noStyle, "旅行风格：未指定")
}
