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

package main

import (
	"context"
	"time"

	"github.com/RanFeng/ilog"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/hertz-contrib/cors"
	"github.com/joho/godotenv"

	"github.com/triplan-ai/triplan/biz/amap"
	"github.com/triplan-ai/triplan/biz/eino"
	"github.com/triplan-ai/triplan/biz/handler"
	"github.com/triplan-ai/triplan/biz/infra"
	"github.com/triplan-ai/triplan/biz/travel"
	"github.com/triplan-ai/triplan/conf"
)

const geoCacheTTL = 24 * time.Hour

func main() {
	ctx := context.Background()
	_ = godotenv.Load()

	conf.LoadTriplanConfig(ctx)
	infra.InitCozeLoopTracing(ctx)
	if err := infra.InitModel(ctx); err != nil {
		panic(err)
	}

	var opts []amap.Option
	if addr := conf.Config.Redis.Addr; addr != "" {
		cache, err := amap.NewRedisGeoCache(addr, conf.Config.Redis.Password, conf.Config.Redis.DB, geoCacheTTL)
		if err != nil {
			ilog.EventWarn(ctx, "geo_cache_unavailable", "addr", addr, "err", err.Error())
		} else {
			opts = append(opts, amap.WithGeoCache(cache))
		}
	}
	client := amap.NewClient(conf.Config.Amap.APIKey, amap.NewLimiter(), opts...)
	svc := travel.NewService(client)

	root, err := eino.NewTravelAgent(ctx, &eino.AgentDeps{
		ChatModel: infra.ChatModel,
		PlanModel: infra.PlanModel,
		Toolbox:   eino.NewToolbox(svc),
		MaxStep:   conf.Config.Setting.MaxStep,
	})
	if err != nil {
		ilog.EventError(ctx, err, "build_agent_fail")
		panic(err)
	}
	runner := eino.NewRunner(ctx, root)

	h := server.Default(server.WithHostPorts(conf.Config.Server.Address))
	h.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	chat := handler.NewChatHandler(runner)
	h.POST("/api/chat", chat.Chat)
	h.POST("/api/travel_info", chat.UpdateTravelInfo)
	h.GET("/api/travel_info", chat.GetTravelInfo)
	h.POST("/api/reset", chat.Reset)

	ilog.EventInfo(ctx, "server_start", "address", conf.Config.Server.Address)
	h.Spin()
}
