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

// Package eino assembles the travel assistant: one coordinator agent that
// transfers to six specialized sub-agents, each owning one slice of the
// travel domain and its tools.
package eino

import (
	"context"

	"github.com/RanFeng/ilog"
	"github.com/cloudwego/eino-ext/components/tool/duckduckgo/v2"
	"github.com/cloudwego/eino/adk"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/compose"

	"github.com/triplan-ai/triplan/biz/consts"
)

// AgentDeps carries the models and tools the agent tree is built from.
// PlanModel is the schema-constrained variant used by the planning agent.
type AgentDeps struct {
	ChatModel model.ToolCallingChatModel
	PlanModel model.ToolCallingChatModel
	Toolbox   *Toolbox

	// MaxStep bounds each sub-agent's tool-call loop. Zero keeps the
	// framework default.
	MaxStep int
}

func (d *AgentDeps) newToolAgent(ctx context.Context, m model.ToolCallingChatModel, name, desc, instruction string, tools ...tool.BaseTool) (adk.Agent, error) {
	return adk.NewChatModelAgent(ctx, &adk.ChatModelAgentConfig{
		Name:          name,
		Description:   desc,
		Instruction:   instruction,
		Model:         m,
		MaxIterations: d.MaxStep,
		ToolsConfig: adk.ToolsConfig{
			ToolsNodeConfig: compose.ToolsNodeConfig{
				Tools: tools,
			},
		},
	})
}

// NewTravelAgent builds the coordinator with its sub-agents attached and
// returns the root agent ready for a runner.
func NewTravelAgent(ctx context.Context, deps *AgentDeps) (adk.Agent, error) {
	tb := deps.Toolbox

	weatherTool, err := tb.WeatherTool()
	if err != nil {
		return nil, err
	}
	weatherAgent, err := deps.newToolAgent(ctx, deps.ChatModel, consts.WeatherAgent,
		"专门负责天气查询，使用高德地图API获取准确天气信息。",
		`你是一个专业的天气查询助手，专门负责查询和提供天气信息。
必须使用 get_weather_info 工具查询天气，不要猜测或估算。
根据天气情况提供旅行建议（如雨天推荐室内活动，晴天推荐户外活动）。
回答要专业、准确、详细。`,
		weatherTool)
	if err != nil {
		return nil, err
	}

	transportTool, err := tb.TransportTool()
	if err != nil {
		return nil, err
	}
	transportAgent, err := deps.newToolAgent(ctx, deps.ChatModel, consts.TransportAgent,
		"专门负责交通路线规划，使用高德地图API精确计算自驾距离和时间。",
		`你是一个专业的交通路线规划助手，专门负责查询和提供交通路线信息。
必须使用 get_transport_route 工具查询路线，不要猜测或估算。
提供准确的距离、时间、过路费、油费等信息，并根据距离和时间提供驾驶建议。
回答要专业、准确、详细。`,
		transportTool)
	if err != nil {
		return nil, err
	}

	hotelTool, err := tb.HotelTool()
	if err != nil {
		return nil, err
	}
	hotelAgent, err := deps.newToolAgent(ctx, deps.ChatModel, consts.HotelAgent,
		"专门负责酒店价格查询，提供准确的预算估算。",
		`你是一个专业的酒店价格查询助手，专门负责查询和提供酒店价格信息。
必须使用 get_hotel_prices 工具查询价格，不要猜测或估算。
根据城市、季节、酒店类型提供准确的价格估算和实用的预订建议。
回答要专业、准确、详细。`,
		hotelTool)
	if err != nil {
		return nil, err
	}

	attractionTool, err := tb.AttractionTool()
	if err != nil {
		return nil, err
	}
	attractionQuestionTool, err := tb.AttractionQuestionTool()
	if err != nil {
		return nil, err
	}
	attractionAgent, err := deps.newToolAgent(ctx, deps.ChatModel, consts.AttractionAgent,
		"专门负责景点信息查询和问答。",
		`你是一个专业的景点查询助手，专门负责查询和提供景点相关信息。
使用 get_attraction_ticket_prices 工具查询景点门票价格，使用 answer_attraction_question 工具回答景点相关问题。
必须使用相应的工具查询信息，不要猜测或估算，并根据用户兴趣推荐相关景点。
回答要专业、准确、详细。`,
		attractionTool, attractionQuestionTool)
	if err != nil {
		return nil, err
	}

	itineraryTool, err := tb.ItineraryTool()
	if err != nil {
		return nil, err
	}
	planningAgent, err := deps.newToolAgent(ctx, deps.PlanModel, consts.PlanningAgent,
		"专门负责行程规划，整合所有信息生成详细行程。",
		`你是一个专业的旅行行程规划助手，专门负责规划详细的旅行行程。
必须使用 plan_travel_itinerary 工具规划行程，该工具会自动查询和整合天气、酒店、交通、景点信息。
提供详细的每日行程安排，包括景点、餐饮、住宿、交通和预算分配。
回答要专业、详细、实用。`,
		itineraryTool)
	if err != nil {
		return nil, err
	}

	recommendationTool, err := tb.RecommendationTool()
	if err != nil {
		return nil, err
	}
	recTools := []tool.BaseTool{recommendationTool}
	if searchTool, err := duckduckgo.NewTextSearchTool(ctx, &duckduckgo.Config{}); err != nil {
		ilog.EventWarn(ctx, "ddg_search_tool_unavailable", "err", err.Error())
	} else {
		recTools = append(recTools, searchTool)
	}
	recommendationAgent, err := deps.newToolAgent(ctx, deps.ChatModel, consts.RecommendationAgent,
		"专门负责个性化推荐。",
		`你是一个专业的旅行推荐助手，专门负责提供个性化旅行推荐。
必须使用 get_personalized_recommendations 工具提供推荐，可结合 web 搜索补充最新信息。
根据用户兴趣、偏好、预算等提供详细、实用的推荐列表。
回答要专业、个性化、详细。`,
		recTools...)
	if err != nil {
		return nil, err
	}

	coordinator, err := adk.NewChatModelAgent(ctx, &adk.ChatModelAgentConfig{
		Name:        consts.Coordinator,
		Description: "智能旅行助手主协调者，负责理解用户需求并转交给相应的专门Agent。",
		Instruction: `你是一个专业的智能旅行助手主协调者，负责理解用户需求并转交给相应的专门Agent来完成任务。
智能路由：
- 天气相关问题 → weather_agent
- 交通路线问题 → transport_agent
- 酒店价格问题 → hotel_agent
- 景点相关问题 → attraction_agent
- 行程规划需求 → planning_agent
- 推荐需求 → recommendation_agent
出发地和目的地都是可选的。如果用户未提供目的地，应根据用户的偏好、预算和旅行天数推荐合适的目的地。
当用户需要规划完整行程时，优先转交 planning_agent 整合所有信息生成详细行程。
如果没有Agent能处理该请求，直接告知用户无法处理。`,
		Model: deps.ChatModel,
	})
	if err != nil {
		return nil, err
	}

	return adk.SetSubAgents(ctx, coordinator, []adk.Agent{
		weatherAgent,
		transportAgent,
		hotelAgent,
		attractionAgent,
		planningAgent,
		recommendationAgent,
	})
}

// NewRunner wraps the root agent in a streaming runner.
func NewRunner(ctx context.Context, root adk.Agent) *adk.Runner {
	return adk.NewRunner(ctx, adk.RunnerConfig{
		EnableStreaming: true,
		Agent:           root,
	})
}
