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

package amap

import (
	"context"
	"time"

	"github.com/RanFeng/ilog"
	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
)

// GeoCache caches geocoding results. Place names map stably onto adcodes and
// coordinates, so a hit saves one provider round-trip and one limiter slot.
// Cache failures are advisory only and never fail a lookup.
type GeoCache interface {
	Get(ctx context.Context, address string) *GeoPoint
	Set(ctx context.Context, address string, gp *GeoPoint)
}

// RedisGeoCache stores GeoPoints in redis under geo:addr:<address>.
type RedisGeoCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisGeoCache connects to redis and verifies the connection. A failed
// ping returns an error so the caller can run without a cache.
func NewRedisGeoCache(addr, password string, db int, ttl time.Duration) (*RedisGeoCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisGeoCache{client: client, ttl: ttl}, nil
}

// Close releases the redis connection.
func (c *RedisGeoCache) Close() error {
	return c.client.Close()
}

func geoKey(address string) string {
	return "geo:addr:" + address
}

// Get returns the cached GeoPoint or nil on miss or any error.
func (c *RedisGeoCache) Get(ctx context.Context, address string) *GeoPoint {
	val, err := c.client.Get(ctx, geoKey(address)).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		ilog.EventWarn(ctx, "geo_cache_get_fail", "address", address, "err", err.Error())
		return nil
	}
	var gp GeoPoint
	if err := sonic.Unmarshal([]byte(val), &gp); err != nil {
		ilog.EventWarn(ctx, "geo_cache_decode_fail", "address", address, "err", err.Error())
		return nil
	}
	return &gp
}

// Set stores the GeoPoint, best effort.
func (c *RedisGeoCache) Set(ctx context.Context, address string, gp *GeoPoint) {
	bytes, err := sonic.Marshal(gp)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, geoKey(address), bytes, c.ttl).Err(); err != nil {
		ilog.EventWarn(ctx, "geo_cache_set_fail", "address", address, "err", err.Error())
	}
}
