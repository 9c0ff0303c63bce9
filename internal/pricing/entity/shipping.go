package entity

import "strings"

// DefaultRegionName 无前缀匹配时使用的兜底区域
const DefaultRegionName = "DEFAULT"

// ShippingRegion 配送区域：都道府県前缀列表 → 固定运费
type ShippingRegion struct {
	Name        string   `json:"name"`
	Prefectures []string `json:"prefectures,omitempty"`
	Cost        float64  `json:"cost"`
}

// MatchesAddress 地址1是否以本区域任一都道府県开头
func (r *ShippingRegion) MatchesAddress(address1 string) bool {
	for _, pref := range r.Prefectures {
		if pref != "" && strings.HasPrefix(address1, pref) {
			return true
		}
	}
	return false
}
