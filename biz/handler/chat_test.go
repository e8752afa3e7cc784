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

package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/triplan-ai/triplan/biz/model"
)

func TestContextualizeInjectsOnce(t *testing.T) {
	h := NewChatHandler(nil)
	info := &model.TravelInfo{Destination: "上海", DepartureCity: "北京"}

	first := h.contextualize("t1", "帮我规划行程", info)
	assert.Contains(t, first, "【用户旅行信息】")
	assert.Contains(t, first, "帮我规划行程")

	// same info again: context already in the conversation, plain message only
	second := h.contextualize("t1", "再推荐几个景点", info)
	assert.Equal(t, "再推荐几个景点", second)

	// follow-up without inline info reuses the stored form
	third := h.contextualize("t1", "天气怎么样", nil)
	assert.Equal(t, "天气怎么样", third)
}

func TestContextualizeReinjectsOnChange(t *testing.T) {
	h := NewChatHandler(nil)

	h.contextualize("t1", "你好", &model.TravelInfo{Destination: "上海"})
	got := h.contextualize("t1", "继续", &model.TravelInfo{Destination: "杭州"})
	assert.Contains(t, got, "目的地: 杭州")
}

func TestContextualizeNoInfo(t *testing.T) {
	h := NewChatHandler(nil)
	assert.Equal(t, "你好", h.contextualize("t1", "你好", nil))
	assert.Equal(t, "你好", h.contextualize("t1", "你好", &model.TravelInfo{}))
}

func TestContextualizeThreadsAreIsolated(t *testing.T) {
	h := NewChatHandler(nil)
	h.contextualize("t1", "你好", &model.TravelInfo{Destination: "上海"})

	got := h.contextualize("t2", "你好", nil)
	assert.Equal(t, "你好", got)
}

func TestSessionResetForcesReinjection(t *testing.T) {
	h := NewChatHandler(nil)
	info := &model.TravelInfo{Destination: "上海"}

	h.contextualize("t1", "你好", info)
	h.sessions.Delete("t1")

	got := h.contextualize("t1", "继续", info)
	assert.Contains(t, got, "【用户旅行信息】")
}
