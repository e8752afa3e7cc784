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

package eino

import (
	"context"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"

	"github.com/triplan-ai/triplan/biz/travel"
)

// Tool request schemas. Field descriptions feed the function-calling schema
// the model sees, so they stay in the same register as the original prompts.

type weatherReq struct {
	City string `json:"city" jsonschema:"description=城市名称，例如北京、上海"`
	Date string `json:"date" jsonschema:"description=查询日期，格式为YYYY-MM-DD"`
}

type hotelReq struct {
	City            string  `json:"city" jsonschema:"description=城市名称"`
	CheckinDate     string  `json:"checkin_date" jsonschema:"description=入住日期，格式为YYYY-MM-DD"`
	CheckoutDate    string  `json:"checkout_date" jsonschema:"description=退房日期，格式为YYYY-MM-DD"`
	HotelPreference string  `json:"hotel_preference,omitempty" jsonschema:"description=酒店偏好，例如经济型、商务型、豪华型、民宿、青旅"`
	MaxPrice        float64 `json:"max_price,omitempty" jsonschema:"description=最高价格限制（人民币/晚），可选"`
}

type transportReq struct {
	Origin        string `json:"origin" jsonschema:"description=出发地，例如北京、北京天安门"`
	Destination   string `json:"destination" jsonschema:"description=目的地，例如上海、上海外滩"`
	TransportMode string `json:"transport_mode" jsonschema:"description=出行方式，例如飞机、高铁、火车、自驾、大巴"`
}

type attractionReq struct {
	City           string `json:"city" jsonschema:"description=城市名称，例如北京、上海、杭州"`
	AttractionName string `json:"attraction_name,omitempty" jsonschema:"description=景点名称，可选，例如故宫、西湖"`
	Interests      string `json:"interests,omitempty" jsonschema:"description=兴趣偏好，可选，例如历史、文化、自然、美食"`
}

type itineraryReq struct {
	Destination     string  `json:"destination" jsonschema:"description=目的地城市或景点"`
	Days            int     `json:"days" jsonschema:"description=旅行天数"`
	Budget          float64 `json:"budget,omitempty" jsonschema:"description=预算，可选"`
	Preferences     string  `json:"preferences,omitempty" jsonschema:"description=偏好说明，例如喜欢历史文化，可选"`
	DepartureDate   string  `json:"departure_date,omitempty" jsonschema:"description=出发日期，格式为YYYY-MM-DD，可选"`
	ReturnDate      string  `json:"return_date,omitempty" jsonschema:"description=返回日期，格式为YYYY-MM-DD，可选"`
	HotelPreference string  `json:"hotel_preference,omitempty" jsonschema:"description=酒店偏好，例如经济型、商务型、豪华型，可选"`
	DepartureCity   string  `json:"departure_city,omitempty" jsonschema:"description=出发地，可选"`
	TransportMode   string  `json:"transport_mode,omitempty" jsonschema:"description=出行方式，例如飞机、高铁、自驾，可选"`
	Interests       string  `json:"interests,omitempty" jsonschema:"description=兴趣偏好，例如历史、文化、美食，可选"`
}

type attractionQuestionReq struct {
	Question   string `json:"question" jsonschema:"description=问题内容，例如开放时间、门票价格"`
	Attraction string `json:"attraction,omitempty" jsonschema:"description=景点名称，可选"`
}

type recommendationReq struct {
	Destination string `json:"destination" jsonschema:"description=目的地"`
	Interests   string `json:"interests" jsonschema:"description=兴趣偏好，例如历史、文化、美食"`
	TravelStyle string `json:"travel_style,omitempty" jsonschema:"description=旅行风格，例如深度游、休闲游、探险游，可选"`
}

// Toolbox binds the travel service methods into eino tools.
type Toolbox struct {
	svc *travel.Service
}

func NewToolbox(svc *travel.Service) *Toolbox {
	return &Toolbox{svc: svc}
}

func (t *Toolbox) WeatherTool() (tool.BaseTool, error) {
	return utils.InferTool(
		"get_weather_info",
		"获取指定城市在指定日期的天气信息，包括温度、天气状况和出行建议。",
		func(ctx context.Context, req *weatherReq) (string, error) {
			return t.svc.WeatherInfo(ctx, req.City, req.Date), nil
		},
	)
}

func (t *Toolbox) HotelTool() (tool.BaseTool, error) {
	return utils.InferTool(
		"get_hotel_prices",
		"获取指定城市在指定日期的酒店价格信息，包括价格范围和预算建议，用于更准确地估算旅行预算。",
		func(ctx context.Context, req *hotelReq) (string, error) {
			return t.svc.HotelPrices(req.City, req.CheckinDate, req.CheckoutDate, req.HotelPreference, req.MaxPrice), nil
		},
	)
}

func (t *Toolbox) TransportTool() (tool.BaseTool, error) {
	return utils.InferTool(
		"get_transport_route",
		"获取从出发地到目的地的交通路线规划信息，包括路线、距离、时间和费用估算。",
		func(ctx context.Context, req *transportReq) (string, error) {
			return t.svc.TransportRoute(ctx, req.Origin, req.Destination, req.TransportMode), nil
		},
	)
}

func (t *Toolbox) AttractionTool() (tool.BaseTool, error) {
	return utils.InferTool(
		"get_attraction_ticket_prices",
		"获取指定城市的景点门票价格信息，包括景点名称、门票价格等，帮助用户合理规划预算。",
		func(ctx context.Context, req *attractionReq) (string, error) {
			return t.svc.AttractionTickets(ctx, req.City, req.AttractionName, req.Interests), nil
		},
	)
}

func (t *Toolbox) ItineraryTool() (tool.BaseTool, error) {
	return utils.InferTool(
		"plan_travel_itinerary",
		"规划旅行行程。会自动查询天气、酒店价格、交通路线和景点门票信息，提供更准确的规划。",
		func(ctx context.Context, req *itineraryReq) (string, error) {
			return t.svc.ItineraryPrompt(ctx, &travel.ItineraryRequest{
				Destination:     req.Destination,
				Days:            req.Days,
				Budget:          req.Budget,
				Preferences:     req.Preferences,
				DepartureDate:   req.DepartureDate,
				ReturnDate:      req.ReturnDate,
				HotelPreference: req.HotelPreference,
				DepartureCity:   req.DepartureCity,
				TransportMode:   req.TransportMode,
				Interests:       req.Interests,
			}), nil
		},
	)
}

func (t *Toolbox) AttractionQuestionTool() (tool.BaseTool, error) {
	return utils.InferTool(
		"answer_attraction_question",
		"回答关于景点的问题，例如开放时间、门票价格、最佳游览时间。",
		func(ctx context.Context, req *attractionQuestionReq) (string, error) {
			return travel.AttractionQuestionPrompt(req.Question, req.Attraction), nil
		},
	)
}

func (t *Toolbox) RecommendationTool() (tool.BaseTool, error) {
	return utils.InferTool(
		"get_personalized_recommendations",
		"根据目的地、兴趣和旅行风格获取个性化旅行推荐。",
		func(ctx context.Context, req *recommendationReq) (string, error) {
			return travel.RecommendationPrompt(req.Destination, req.Interests, req.TravelStyle), nil
		},
	)
}
