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

package consts

// ==================================== Agent Name ====================================
const (
	Coordinator         = "coordinator"
	WeatherAgent        = "weather_agent"
	TransportAgent      = "transport_agent"
	HotelAgent          = "hotel_agent"
	AttractionAgent     = "attraction_agent"
	PlanningAgent       = "planning_agent"
	RecommendationAgent = "recommendation_agent"
)

// ==================================== Transport Mode ====================================
const (
	ModeDriving  = "自驾"
	ModeFlight   = "飞机"
	ModeHighRail = "高铁"
	ModeTrain    = "火车"
	ModeCoach    = "大巴"
)
