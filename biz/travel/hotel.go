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
	"fmt"
	"strings"
	"time"
)

// Hotel price estimation. Domestic hotel booking APIs all require commercial
// contracts, so prices are modeled from city tier, season and hotel type.

var (
	tier1Cities = []string{"北京", "上海", "广州", "深圳"}
	tier2Cities = []string{"杭州", "成都", "重庆", "西安", "南京", "武汉", "苏州", "天津", "长沙", "郑州"}
)

// hotelBands are per-night price bands in yuan before multipliers.
var hotelBands = map[string]struct{ min, max float64 }{
	"经济型": {120, 250},
	"商务型": {250, 500},
	"豪华型": {600, 1200},
	"民宿":  {150, 350},
	"青旅":  {50, 150},
}

// defaultHotelBand is applied when no recognized preference is given.
var defaultHotelBand = hotelBands["商务型"]

func cityMultiplier(city string) float64 {
	for _, t := range tier1Cities {
		if strings.Contains(city, t) {
			return 1.5
		}
	}
	for _, t := range tier2Cities {
		if strings.Contains(city, t) {
			return 1.2
		}
	}
	return 1.0
}

// seasonMultiplier keys off the check-in month: spring, summer vacation and
// the October holiday are peak; winter is off-season.
func seasonMultiplier(month time.Month) float64 {
	switch month {
	case time.April, time.May, time.July, time.August, time.October:
		return 1.3
	case time.November, time.December, time.January, time.February:
		return 0.9
	default:
		return 1.0
	}
}

// HotelPrices estimates a per-night price band and total budget for a stay.
// maxPrice caps the nightly rate when positive. The computation is fully
// deterministic, no provider calls are made.
func (s *Service) HotelPrices(city, checkinDate, checkoutDate, preference string, maxPrice float64) string {
	nights := 1
	season := 1.0
	checkin, inErr := time.Parse("2006-01-02", checkinDate)
	checkout, outErr := time.Parse("2006-01-02", checkoutDate)
	if inErr == nil && outErr == nil {
		if n := int(checkout.Sub(checkin).Hours() / 24); n > 0 {
			nights = n
		}
	}
	if inErr == nil {
		season = seasonMultiplier(checkin.Month())
	}

	band, ok := hotelBands[preference]
	if !ok {
		band = defaultHotelBand
	}
	mult := cityMultiplier(city) * season
	minPrice := int(band.min * mult)
	maxEst := int(band.max * mult)

	if maxPrice > 0 {
		if float64(maxEst) > maxPrice {
			maxEst = int(maxPrice)
		}
		if float64(minPrice) > maxPrice {
			minPrice = int(maxPrice * 0.6)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s在%s至%s期间的酒店价格估算：\n", city, checkinDate, checkoutDate)
	fmt.Fprintf(&b, "- 价格范围：%d-%d元/晚（基于城市、季节和偏好智能估算）\n", minPrice, maxEst)
	fmt.Fprintf(&b, "- 住宿%d晚总预算：%d-%d元\n", nights, minPrice*nights, maxEst*nights)
	fmt.Fprintf(&b, "- 建议预算：%d元\n", (minPrice+maxEst)/2*nights)
	if season > 1.0 {
		b.WriteString("- 注意：当前为旅游旺季，价格可能较高，建议提前预订\n")
	} else if season < 1.0 {
		b.WriteString("- 注意：当前为旅游淡季，价格相对较低，可能有优惠\n")
	}
	b.WriteString("提示：这是基于城市、季节和酒店类型的智能估算。实际价格可能因位置、预订时间、促销活动等因素有所不同。建议通过携程、去哪儿、美团等平台查询实时价格并提前预订。")
	return b.String()
}
