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
	"strings"
)

// ChatReq is the request body of POST /api/chat.
type ChatReq struct {
	ThreadID   string      `json:"thread_id"`
	Message    string      `json:"message"`
	TravelInfo *TravelInfo `json:"travel_info,omitempty"`
}

// ChatResp is one SSE frame pushed to the web client.
type ChatResp struct {
	ThreadID     string `json:"thread_id"`
	Agent        string `json:"agent"`
	ID           string `json:"id"`
	Role         string `json:"role"`
	Content      string `json:"content"`
	FinishReason string `json:"finish_reason"`
}

// TravelInfo carries the structured trip preferences a user fills in on the
// web form. All fields are optional.
type TravelInfo struct {
	DepartureDate   string `json:"departureDate"`
	ReturnDate      string `json:"returnDate"`
	DepartureCity   string `json:"departureCity"`
	Destination     string `json:"destination"`
	Budget          string `json:"budget"`
	HotelPreference string `json:"hotelPreference"`
	TransportMode   string `json:"transportMode"`
	TravelStyle     string `json:"travelStyle"`
	Interests       string `json:"interests"`
}

// Empty reports whether no field is set.
func (t *TravelInfo) Empty() bool {
	return t == nil || *t == TravelInfo{}
}

// FormatContext renders the travel info as the conversation context block
// prepended to the first user message after the info changes.
func (t *TravelInfo) FormatContext() string {
	if t.Empty() {
		return ""
	}
	var b strings.Builder
	b.WriteString("【用户旅行信息】")
	fields := []struct{ label, value string }{
		{"出发日期", t.DepartureDate},
		{"返回日期", t.ReturnDate},
		{"出发地", t.DepartureCity},
		{"目的地", t.Destination},
		{"预算", t.Budget},
		{"旅店偏好", t.HotelPreference},
		{"出行方式", t.TransportMode},
		{"旅行风格", t.TravelStyle},
		{"兴趣偏好", t.Interests},
	}
	for _, f := range fields {
		if f.value != "" {
			b.WriteString("\n" + f.label + ": " + f.value)
		}
	}
	if t.DepartureDate != "" && t.Destination != "" {
		b.WriteString("\n\n[重要提示：请查询出发日期在目的地的天气信息]")
	}
	if t.DepartureDate != "" && t.ReturnDate != "" && t.HotelPreference != "" {
		b.WriteString("\n[重要提示：请查询住宿期间的酒店价格信息]")
	}
	return b.String()
}

// Fingerprint returns a stable key of the travel info so the handler can tell
// whether the context block must be re-sent. Fields are joined in declaration
// order: swapping two values (e.g. reversing 出发地 and 目的地) must change
// the fingerprint.
func (t *TravelInfo) Fingerprint() string {
	if t.Empty() {
		return ""
	}
	parts := []string{
		t.DepartureDate, t.ReturnDate, t.DepartureCity, t.Destination,
		t.Budget, t.HotelPreference, t.TransportMode, t.TravelStyle, t.Interests,
	}
	return strings.Join(parts, "|")
}
