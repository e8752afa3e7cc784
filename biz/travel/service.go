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

// Package travel implements the domain lookups behind the agent tools:
// weather, driving and public-transport routes, hotel price bands and
// attraction tickets. Every public method returns display-ready text and
// never an error — when the provider is unreachable, unconfigured or returns
// nothing usable, the method degrades to a locally computed estimate.
package travel

import (
	"context"
	"time"

	"github.com/triplan-ai/triplan/biz/amap"
)

// Provider is the slice of the amap client the engines consume. *amap.Client
// satisfies it; tests substitute a fake.
type Provider interface {
	Enabled() bool
	Resolve(ctx context.Context, address string) *amap.GeoPoint
	Driving(ctx context.Context, origin, destination string) (*amap.DrivePath, error)
	Weather(ctx context.Context, adcode, extensions string) (*amap.WeatherData, error)
	SearchPOI(ctx context.Context, keywords, city string) ([]amap.POI, error)
}

// Service bundles the engines around one provider. The clock is injectable
// so date-offset branching is testable.
type Service struct {
	provider Provider
	now      func() time.Time
}

// ServiceOption customizes a Service.
type ServiceOption func(*Service)

// WithClock replaces the wall clock.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) { s.now = now }
}

// NewService builds a Service. provider may be nil when no key is configured.
func NewService(provider Provider, opts ...ServiceOption) *Service {
	s := &Service{
		provider: provider,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) apiEnabled() bool {
	return s.provider != nil && s.provider.Enabled()
}
