package repository

import "github.com/bitfantasy/printshop/internal/pricing/entity"

// Snapshot 参考数据快照。由外部数据加载层一次性装配，引擎内只读。
// 加载中途被调用时允许任意字段为nil：所有查询对空表返回"未命中"而不是报错。
type Snapshot struct {
	Products           []entity.Product                 `json:"products"`
	PricingRules       []entity.PricingRule             `json:"pricing_rules"`
	Assignments        []entity.PricingAssignment       `json:"pricing_assignments"`
	VolumeTiers        []entity.VolumeDiscountTier      `json:"volume_discount_tiers"`
	PrintTiers         []entity.PrintPricingTier        `json:"print_pricing_tiers"`
	CategorySchedules  []entity.CategoryPricingSchedule `json:"category_pricing_schedules"`
	PlateRules         []entity.PlateCostRule           `json:"plate_cost_rules"`
	Regions            []entity.ShippingRegion          `json:"shipping_regions"`
	Options            []entity.AdditionalOption        `json:"additional_options"`
	SpecialInks        []entity.SpecialInkOption        `json:"special_inks"`
	SizeSurcharges     map[string]float64               `json:"size_surcharges"`
	LocationSurcharges map[string]float64               `json:"location_surcharges"`
	TagSurcharges      map[string]float64               `json:"tag_surcharges"`
}
