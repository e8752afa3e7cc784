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
)

// ItineraryRequest carries everything the planner may know about a trip.
// Only Destination and Days are required.
type ItineraryRequest struct {
	Destination     string
	Days            int
	Budget          float64
	Preferences     string
	DepartureDate   string
	ReturnDate      string
	HotelPreference string
	DepartureCity   string
	TransportMode   string
	Interests       string
}

// ItineraryPrompt assembles the planning prompt handed to the planner model.
// It pre-fetches weather, hotel, transport and attraction data so the model
// plans from real numbers instead of guessing. Each lookup is optional and
// already degrades internally, so the prompt is always complete.
func (s *Service) ItineraryPrompt(ctx context.Context, req *ItineraryRequest) string {
	var b strings.Builder
	b.WriteString("请为以下需求规划旅行行程：\n\n")
	fmt.Fprintf(&b, "目的地：%s\n", req.Destination)
	fmt.Fprintf(&b, "天数：%d天\n", req.Days)
	if req.Budget > 0 {
		fmt.Fprintf(&b, "预算：%.0f\n", req.Budget)
	} else {
		b.WriteString("预算：未指定\n")
	}
	if req.Preferences != "" {
		fmt.Fprintf(&b, "当前偏好：%s\n", req.Preferences)
	} else {
		b.WriteString("当前偏好：无特殊偏好\n")
	}

	if req.DepartureDate != "" {
		fmt.Fprintf(&b, "\n出发日天气：%s\n", s.WeatherInfo(ctx, req.Destination, req.DepartureDate))
	}
	if req.HotelPreference != "" && req.DepartureDate != "" && req.ReturnDate != "" {
		fmt.Fprintf(&b, "\n酒店价格信息：\n%s\n",
			s.HotelPrices(req.Destination, req.DepartureDate, req.ReturnDate, req.HotelPreference, 0))
	}
	if req.DepartureCity != "" && req.TransportMode != "" {
		fmt.Fprintf(&b, "\n交通路线信息：\n%s\n",
			s.TransportRoute(ctx, req.DepartureCity, req.Destination, req.TransportMode))
	}
	if req.Interests != "" {
		fmt.Fprintf(&b, "\n景点门票信息：\n%s\n",
			s.AttractionTickets(ctx, req.Destination, "", req.Interests))
	}

	b.WriteString(`
请提供详细的每日行程安排，包括：
1. 每日游览景点（考虑天气情况和景点门票价格）
2. 推荐路线
3. 餐饮建议
4. 住宿建议（参考酒店价格信息）
5. 交通方式（参考交通路线和费用信息）
6. 预算分配（如提供，参考酒店价格、交通费用、景点门票信息进行合理分配）
7. 根据天气情况的活动建议
`)
	return b.String()
}

// AttractionQuestionPrompt frames a free-form attraction question for the
// answering agent.
func AttractionQuestionPrompt(question, attraction string) string {
	subject := attraction
	if subject == "" {
		subject = question
	}
	return fmt.Sprintf("关于\"%s\"的问题：\n%s\n\n请提供详细、准确的回答。", subject, question)
}

// RecommendationPrompt frames a personalized-recommendation request.
func RecommendationPrompt(destination, interests, travelStyle string) string {
	if travelStyle == "" {
		travelStyle = "未指定"
	}
	return fmt.Sprintf("请根据以下信息提供个性化推荐：\n\n目的地：%s\n当前兴趣：%s\n旅行风格：%s\n\n请提供个性化的推荐列表。",
		destination, interests, travelStyle)
}
