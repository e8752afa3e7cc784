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
	"fmt"
	"strings"

	"github.com/RanFeng/ilog"

	"github.com/triplan-ai/triplan/biz/amap"
)

// interestCategories maps an interest keyword to the POI search category it
// stands for. Order matters, the first match wins.
var interestCategories = []struct{ interest, category string }{
	{"历史", "历史古迹"},
	{"文化", "文化场馆"},
	{"自然", "自然风光"},
	{"美食", "美食街"},
	{"娱乐", "娱乐场所"},
	{"博物馆", "博物馆"},
}

// catalogEntry is one attraction of the offline catalog.
type catalogEntry struct {
	name, price, grade string
}

// cityCatalog is the offline ticket-price table used when POI search is
// unavailable. Kept as an ordered slice so output is deterministic.
var cityCatalog = []struct {
	city    string
	entries []catalogEntry
}{
	{"北京", []catalogEntry{
		{"故宫", "60元", "AAAAA级景区"},
		{"天坛", "15-35元", "AAAAA级景区"},
		{"颐和园", "30-60元", "AAAAA级景区"},
		{"长城", "40-45元", "AAAAA级景区"},
		{"天安门", "免费", "国家标志"},
	}},
	{"上海", []catalogEntry{
		{"外滩", "免费", "城市地标"},
		{"东方明珠", "180-220元", "AAAAA级景区"},
		{"豫园", "30-40元", "AAAA级景区"},
		{"田子坊", "免费", "文化创意区"},
		{"朱家角", "免费", "古镇"},
	}},
	{"杭州", []catalogEntry{
		{"西湖", "免费", "AAAAA级景区"},
		{"灵隐寺", "45-75元", "AAAA级景区"},
		{"雷峰塔", "40元", "AAAA级景区"},
		{"千岛湖", "130-195元", "AAAAA级景区"},
		{"宋城", "310元", "AAAA级景区"},
	}},
	{"广州", []catalogEntry{
		{"广州塔", "150-298元", "AAAA级景区"},
		{"长隆", "250-350元", "AAAAA级景区"},
		{"白云山", "5元", "AAAAA级景区"},
		{"陈家祠", "10元", "AAAA级景区"},
		{"沙面", "免费", "历史街区"},
	}},
}

// poiKeyword picks the search keyword: exact attraction first, then the
// interest category, then a generic scenic-spot query.
func poiKeyword(city, attractionName, interests string) string {
	if attractionName != "" {
		return city + attractionName
	}
	for _, ic := range interestCategories {
		if strings.Contains(interests, ic.interest) {
			return city + ic.category
		}
	}
	return city + "景点"
}

// AttractionTickets looks up attraction and ticket information for a city.
// Live POI data is preferred; any failure drops to the offline catalog, so
// the result is always usable text. Output is deterministic for a fixed
// provider response.
func (s *Service) AttractionTickets(ctx context.Context, city, attractionName, interests string) string {
	if s.apiEnabled() {
		pois, err := s.provider.SearchPOI(ctx, poiKeyword(city, attractionName, interests), city)
		if err != nil {
			ilog.EventWarn(ctx, "poi_search_fail", "city", city, "err", err.Error())
		} else if len(pois) == 0 {
			ilog.EventWarn(ctx, "poi_search_empty", "city", city, "keywords", poiKeyword(city, attractionName, interests))
		} else {
			return formatPOIs(city, interests, pois)
		}
	}
	return catalogTickets(city, attractionName, interests)
}

func formatPOIs(city, interests string, pois []amap.POI) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s的景点信息：\n\n", city)
	for i, p := range pois {
		fmt.Fprintf(&b, "%d. %s\n", i+1, p.Name)
		if p.Address != "" {
			fmt.Fprintf(&b, "   地址：%s\n", p.Address)
		}
		if p.Area != "" {
			fmt.Fprintf(&b, "   区域：%s\n", p.Area)
		}
		if p.Tel != "" {
			fmt.Fprintf(&b, "   电话：%s\n", p.Tel)
		}
		b.WriteString("\n")
	}
	appendInterestHint(&b, interests)
	b.WriteString("提示：门票价格信息请通过官方渠道或携程、去哪儿等平台查询。")
	return b.String()
}

// catalogTickets renders the offline estimate.
func catalogTickets(city, attractionName, interests string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s的主要景点门票价格估算：\n\n", city)

	found := false
	for _, c := range cityCatalog {
		if !strings.Contains(city, c.city) {
			continue
		}
		found = true
		for _, e := range c.entries {
			switch {
			case attractionName != "" && strings.Contains(e.name, attractionName):
				fmt.Fprintf(&b, "★ %s：%s（%s）\n", e.name, e.price, e.grade)
			case attractionName == "":
				fmt.Fprintf(&b, "- %s：%s（%s）\n", e.name, e.price, e.grade)
			}
		}
		break
	}
	if !found {
		b.WriteString("主要景点门票价格参考：\n")
		b.WriteString("- 5A级景区：通常100-300元\n")
		b.WriteString("- 4A级景区：通常50-150元\n")
		b.WriteString("- 3A级及以下：通常20-80元\n")
		b.WriteString("- 免费景点：公园、博物馆等\n")
	}
	appendInterestHint(&b, interests)
	b.WriteString("\n提示：实际门票价格可能因季节、优惠政策、联票等因素有所变化。建议通过官方渠道或携程、去哪儿等平台查询实时价格并提前预订。")
	return b.String()
}

func appendInterestHint(b *strings.Builder, interests string) {
	if interests != "" {
		fmt.Fprintf(b, "\n根据您的兴趣偏好（%s），推荐关注相关类型的景点。\n", interests)
	}
}
