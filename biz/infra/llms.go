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

package infra

import (
	"context"

	"github.com/RanFeng/ilog"
	"github.com/cloudwego/eino-ext/components/model/openai"
	openai3 "github.com/cloudwego/eino-ext/libs/acl/openai"
	"github.com/getkin/kin-openapi/openapi3gen"

	"github.com/triplan-ai/triplan/biz/model"
	"github.com/triplan-ai/triplan/conf"
)

var (
	// ChatModel answers free-form agent turns.
	ChatModel *openai.ChatModel
	// PlanModel is ChatModel constrained to emit an Itinerary JSON document.
	PlanModel *openai.ChatModel
)

func InitModel(ctx context.Context) error {
	config := &openai.ChatModelConfig{
		BaseURL: conf.Config.Model.BaseURL,
		APIKey:  conf.Config.Model.APIKey,
		Model:   conf.Config.Model.DefaultModel,
	}
	var err error
	ChatModel, err = openai.NewChatModel(ctx, config)
	if err != nil {
		ilog.EventError(ctx, err, "init_chat_model_fail")
		return err
	}

	itinerarySchema, err := openapi3gen.NewSchemaRefForValue(&model.Itinerary{}, nil)
	if err != nil {
		ilog.EventError(ctx, err, "itinerary_schema_fail")
		return err
	}
	planConfig := &openai.ChatModelConfig{
		BaseURL: conf.Config.Model.BaseURL,
		APIKey:  conf.Config.Model.APIKey,
		Model:   conf.Config.Model.DefaultModel,
		ResponseFormat: &openai3.ChatCompletionResponseFormat{
			Type: openai3.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai3.ChatCompletionResponseFormatJSONSchema{
				Name:   "itinerary",
				Strict: false,
				Schema: itinerarySchema.Value,
			},
		},
	}
	PlanModel, err = openai.NewChatModel(ctx, planConfig)
	if err != nil {
		ilog.EventError(ctx, err, "init_plan_model_fail")
		return err
	}
	return nil
}
