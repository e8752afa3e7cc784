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

package travel

import (
	"context"
	"time"

	"github.com/triplan-ai/triplan/biz/amap"
)

// fakeProvider scripts provider behavior per test.
type fakeProvider struct {
	enabled bool
	points  map[string]*amap.GeoPoint

	drivePath *amap.DrivePath
	driveErr  error
	driveArgs [][2]string

	weatherData    *amap.WeatherData
	weatherErr     error
	weatherQueries []string // extensions values in call order

	pois   []amap.POI
	poiErr error
}

func (f *fakeProvider) Enabled() bool { return f.enabled }

func (f *fakeProvider) Resolve(_ context.Context, address string) *amap.GeoPoint {
	return f.points[address]
}

func (f *fakeProvider) Driving(_ context.Context, origin, destination string) (*amap.DrivePath, error) {
	f.driveArgs = append(f.driveArgs, [2]string{origin, destination})
	if f.driveErr != nil {
		return nil, f.driveErr
	}
	return f.drivePath, nil
}

func (f *fakeProvider) Weather(_ context.Context, _, extensions string) (*amap.WeatherData, error) {
	f.weatherQueries = append(f.weatherQueries, extensions)
	if f.weatherErr != nil {
		return nil, f.weatherErr
	}
	return f.weatherData, nil
}

func (f *fakeProvider) SearchPOI(_ context.Context, _, _ string) ([]amap.POI, error) {
	if f.poiErr != nil {
		return nil, f.poiErr
	}
	return f.pois, nil
}

// newTestService pins the clock to 2025-07-01 so date-offset branches are
// stable.
func newTestService(p Provider) *Service {
	return NewService(p, WithClock(func() time.Time {
		return time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	}))
}
