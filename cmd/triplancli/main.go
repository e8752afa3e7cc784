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

// Terminal chat loop against the travel assistant, for local development
// without the HTTP server.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/RanFeng/ilog"
	"github.com/cloudwego/eino/adk"
	"github.com/joho/godotenv"

	"github.com/triplan-ai/triplan/biz/amap"
	"github.com/triplan-ai/triplan/biz/eino"
	"github.com/triplan-ai/triplan/biz/infra"
	"github.com/triplan-ai/triplan/biz/travel"
	"github.com/triplan-ai/triplan/conf"
)

func main() {
	ctx := context.Background()
	_ = godotenv.Load()

	conf.LoadTriplanConfig(ctx)
	infra.InitCozeLoopTracing(ctx)
	if err := infra.InitModel(ctx); err != nil {
		panic(err)
	}

	client := amap.NewClient(conf.Config.Amap.APIKey, amap.NewLimiter())
	svc := travel.NewService(client)

	root, err := eino.NewTravelAgent(ctx, &eino.AgentDeps{
		ChatModel: infra.ChatModel,
		PlanModel: infra.PlanModel,
		Toolbox:   eino.NewToolbox(svc),
		MaxStep:   conf.Config.Setting.MaxStep,
	})
	if err != nil {
		panic(err)
	}
	runner := eino.NewRunner(ctx, root)

	fmt.Println("智能旅行助手已启动，输入 exit 退出。")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\n> ")
		if !scanner.Scan() {
			break
		}
		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			continue
		}
		if query == "exit" || query == "quit" {
			break
		}
		runQuery(ctx, runner, query)
	}
}

func runQuery(ctx context.Context, runner *adk.Runner, query string) {
	iter := runner.Query(ctx, query)
	for {
		event, ok := iter.Next()
		if !ok {
			break
		}
		if event.Err != nil {
			ilog.EventError(ctx, event.Err, "cli_event_error")
			fmt.Println("处理请求时出现错误：", event.Err)
			return
		}
		if event.Output == nil {
			continue
		}
		msg, _, err := adk.GetMessage(event)
		if err != nil || msg == nil || msg.Content == "" {
			continue
		}
		fmt.Printf("[%s] %s\n", event.AgentName, msg.Content)
	}
}
