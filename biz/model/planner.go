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

// ItineraryDay 定义单日行程的结构体
type ItineraryDay struct {
	Day         int      `json:"day" validate:"required"`
	Attractions []string `json:"attractions"`
	Meals       string   `json:"meals"`
	Lodging     string   `json:"lodging"`
	Transport   string   `json:"transport"`
	Note        string   `json:"note,omitempty"`
}

// Itinerary 定义完整行程计划的结构体，规划 Agent 以该 JSON Schema 约束输出
type Itinerary struct {
	Locale      string         `json:"locale" validate:"required"`
	Thought     string         `json:"thought" validate:"required"`
	Title       string         `json:"title" validate:"required"`
	Destination string         `json:"destination" validate:"required"`
	Days        []ItineraryDay `json:"days"`
	BudgetNote  string         `json:"budget_note,omitempty"`
}
