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

// Package handler exposes the assistant over HTTP. Replies stream back as
// SSE frames, one message chunk per event. Travel-form state is held
// in-memory per thread; the context block is injected into the next query
// only when the form changed.
package handler

import (
	"context"
	"sync"

	"github.com/RanFeng/ilog"
	"github.com/bytedance/sonic"
	"github.com/cloudwego/eino/adk"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/cloudwego/hertz/pkg/protocol/sse"
	"github.com/google/uuid"

	"github.com/triplan-ai/triplan/biz/model"
)

// session is the per-thread conversation state.
type session struct {
	mu         sync.Mutex
	info       *model.TravelInfo
	injectedFP string // fingerprint of the info already in the conversation
}

type ChatHandler struct {
	runner   *adk.Runner
	sessions sync.Map // thread id -> *session
}

func NewChatHandler(runner *adk.Runner) *ChatHandler {
	return &ChatHandler{runner: runner}
}

func (h *ChatHandler) session(threadID string) *session {
	s, _ := h.sessions.LoadOrStore(threadID, &session{})
	return s.(*session)
}

// contextualize stores any inline travel info and prepends the context block
// when the stored info has not been injected yet.
func (h *ChatHandler) contextualize(threadID, message string, info *model.TravelInfo) string {
	s := h.session(threadID)
	s.mu.Lock()
	defer s.mu.Unlock()

	if !info.Empty() {
		s.info = info
	}
	if fp := s.info.Fingerprint(); fp != "" && fp != s.injectedFP {
		s.injectedFP = fp
		return s.info.FormatContext() + "\n\n" + message
	}
	return message
}

// Chat handles POST /api/chat.
func (h *ChatHandler) Chat(ctx context.Context, c *app.RequestContext) {
	var req model.ChatReq
	if err := sonic.Unmarshal(c.Request.Body(), &req); err != nil {
		c.JSON(consts.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.Message == "" {
		c.JSON(consts.StatusBadRequest, map[string]string{"error": "message is required"})
		return
	}
	threadID := req.ThreadID
	if threadID == "" {
		threadID = uuid.NewString()
	}
	query := h.contextualize(threadID, req.Message, req.TravelInfo)
	ilog.EventInfo(ctx, "chat_start", "thread_id", threadID)

	w := sse.NewWriter(c)
	defer w.Close()

	iter := h.runner.Query(ctx, query)
	for {
		event, ok := iter.Next()
		if !ok {
			break
		}
		if event.Err != nil {
			ilog.EventError(ctx, event.Err, "chat_event_error", "thread_id", threadID)
			h.push(ctx, w, "error", &model.ChatResp{
				ThreadID:     threadID,
				Agent:        event.AgentName,
				Role:         "assistant",
				Content:      "处理请求时出现错误，请稍后重试。",
				FinishReason: "error",
			})
			return
		}
		if event.Output == nil {
			continue
		}
		msg, _, err := adk.GetMessage(event)
		if err != nil {
			ilog.EventError(ctx, err, "chat_get_message_fail", "thread_id", threadID)
			continue
		}
		if msg == nil || msg.Content == "" {
			continue
		}
		fr := ""
		if msg.ResponseMeta != nil {
			fr = msg.ResponseMeta.FinishReason
		}
		h.push(ctx, w, "message_chunk", &model.ChatResp{
			ThreadID:     threadID,
			Agent:        event.AgentName,
			ID:           uuid.NewString(),
			Role:         "assistant",
			Content:      msg.Content,
			FinishReason: fr,
		})
	}
	h.push(ctx, w, "done", &model.ChatResp{ThreadID: threadID, FinishReason: "stop"})
}

// UpdateTravelInfo handles POST /api/travel_info.
func (h *ChatHandler) UpdateTravelInfo(ctx context.Context, c *app.RequestContext) {
	var req struct {
		ThreadID   string            `json:"thread_id"`
		TravelInfo *model.TravelInfo `json:"travel_info"`
	}
	if err := sonic.Unmarshal(c.Request.Body(), &req); err != nil {
		c.JSON(consts.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	threadID := req.ThreadID
	if threadID == "" {
		threadID = uuid.NewString()
	}

	s := h.session(threadID)
	s.mu.Lock()
	s.info = req.TravelInfo
	s.injectedFP = "" // force re-injection on the next message
	s.mu.Unlock()

	ilog.EventInfo(ctx, "travel_info_updated", "thread_id", threadID)
	c.JSON(consts.StatusOK, map[string]string{"thread_id": threadID})
}

// GetTravelInfo handles GET /api/travel_info.
func (h *ChatHandler) GetTravelInfo(_ context.Context, c *app.RequestContext) {
	threadID := c.Query("thread_id")
	v, ok := h.sessions.Load(threadID)
	if !ok {
		c.JSON(consts.StatusNotFound, map[string]string{"error": "unknown thread_id"})
		return
	}
	s := v.(*session)
	s.mu.Lock()
	info := s.info
	s.mu.Unlock()
	if info.Empty() {
		info = &model.TravelInfo{}
	}
	c.JSON(consts.StatusOK, map[string]any{"thread_id": threadID, "travel_info": info})
}

// Reset handles POST /api/reset, dropping a thread's state.
func (h *ChatHandler) Reset(ctx context.Context, c *app.RequestContext) {
	var req struct {
		ThreadID string `json:"thread_id"`
	}
	if err := sonic.Unmarshal(c.Request.Body(), &req); err != nil || req.ThreadID == "" {
		c.JSON(consts.StatusBadRequest, map[string]string{"error": "thread_id is required"})
		return
	}
	h.sessions.Delete(req.ThreadID)
	ilog.EventInfo(ctx, "thread_reset", "thread_id", req.ThreadID)
	c.JSON(consts.StatusOK, map[string]string{"thread_id": req.ThreadID})
}

func (h *ChatHandler) push(ctx context.Context, w *sse.Writer, event string, data *model.ChatResp) {
	raw, err := sonic.Marshal(data)
	if err != nil {
		ilog.EventError(ctx, err, "sse_marshal_fail")
		return
	}
	if err := w.WriteEvent("", event, raw); err != nil {
		ilog.EventWarn(ctx, "sse_write_fail", "err", err.Error())
	}
}
