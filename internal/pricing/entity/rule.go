package entity

// PricingModel 价格规则模型
const (
	ModelRate                 = "RATE"                   // 定価×掛率
	ModelMarkup               = "MARKUP"                 // 仕入×(1+markup)
	ModelVolumeDiscountMarkup = "VOLUME_DISCOUNT_MARKUP" // 按量阶梯倍率
)

// PricingRule 价格规则
type PricingRule struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Model            string  `json:"pricing_model"`
	Rate             float64 `json:"rate,omitempty"`
	MarkupPercentage float64 `json:"markup_percentage,omitempty"`
	VolumeScheduleID string  `json:"volume_discount_schedule_id,omitempty"`
}

// AssignmentTarget 规则绑定目标类型
const (
	TargetProduct      = "product"
	TargetCategory     = "category"
	TargetManufacturer = "manufacturer"
)

// CustomerGroupAll 通配所有客户分组
const CustomerGroupAll = "all"

// PricingAssignment 规则绑定：规则×目标（商品/类目/厂商），可限定客户分组
type PricingAssignment struct {
	ID              string `json:"id"`
	RuleID          string `json:"rule_id"`
	TargetType      string `json:"target_type"`
	TargetID        string `json:"target_id"`
	CustomerGroupID string `json:"customer_group_id,omitempty"` // 空 或 "all" = 不限分组
}

// MatchesGroup 绑定是否适用于指定客户分组
func (a *PricingAssignment) MatchesGroup(groupID string) bool {
	return a.CustomerGroupID == "" || a.CustomerGroupID == CustomerGroupAll || a.CustomerGroupID == groupID
}

// VolumeDiscountTier 按量阶梯行（闭区间）
type VolumeDiscountTier struct {
	ScheduleID       string  `json:"schedule_id"`
	MinQuantity      int     `json:"min_quantity"`
	MaxQuantity      int     `json:"max_quantity"`
	MarkupMultiplier float64 `json:"markup_multiplier"`
}

// Contains 数量是否落在本阶梯
func (t *VolumeDiscountTier) Contains(qty int) bool {
	return qty >= t.MinQuantity && qty <= t.MaxQuantity
}
