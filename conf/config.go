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

package conf

import (
	"context"
	"os"
	"path/filepath"

	"github.com/RanFeng/ilog"
	"gopkg.in/yaml.v3"
)

// TriplanConfig is the typed configuration of the whole application.
// Every external integration has an explicit field; a missing key is not an
// error, it selects the estimation fallback of the related component.
type TriplanConfig struct {
	Model struct {
		DefaultModel string `yaml:"default_model"`
		APIKey       string `yaml:"api_key"`
		BaseURL      string `yaml:"base_url"`
	} `yaml:"model"`
	Amap struct {
		APIKey string `yaml:"api_key"`
	} `yaml:"amap"`
	Server struct {
		Address string `yaml:"address"`
	} `yaml:"server"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	Setting struct {
		MaxStep int `yaml:"max_step"`
	} `yaml:"setting"`
}

var (
	Config *TriplanConfig = &TriplanConfig{}
)

// LoadTriplanConfig reads conf/triplan.yaml when present and then applies
// environment overrides. Precedence is environment variable first, config
// file second.
func LoadTriplanConfig(ctx context.Context) {
	dir, err := os.Getwd()
	if err != nil {
		ilog.EventError(ctx, err, "get_workdir_fail")
		return
	}

	cfg := &TriplanConfig{}
	configPath := filepath.Join(dir, "conf", "triplan.yaml")
	configData, err := os.ReadFile(configPath)
	if err == nil {
		if err := yaml.Unmarshal(configData, cfg); err != nil {
			ilog.EventError(ctx, err, "parse_config_fail", "path", configPath)
		}
	} else {
		ilog.EventWarn(ctx, "config_file_absent", "path", configPath)
	}

	applyEnv(cfg)
	if cfg.Server.Address == "" {
		cfg.Server.Address = ":8888"
	}
	if cfg.Setting.MaxStep == 0 {
		cfg.Setting.MaxStep = 15
	}

	ilog.EventInfo(ctx, "load_config",
		"model", cfg.Model.DefaultModel,
		"amap_key_configured", cfg.Amap.APIKey != "",
		"redis_configured", cfg.Redis.Addr != "")
	Config = cfg
}

func applyEnv(cfg *TriplanConfig) {
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.Model.APIKey = v
	}
	if v := os.Getenv("OPENAI_BASE_URL"); v != "" {
		cfg.Model.BaseURL = v
	}
	if v := os.Getenv("OPENAI_MODEL"); v != "" {
		cfg.Model.DefaultModel = v
	}
	if v := os.Getenv("AMAP_API_KEY"); v != "" {
		cfg.Amap.APIKey = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("SERVER_ADDRESS"); v != "" {
		cfg.Server.Address = v
	}
}
