package entity

// DefaultPrintScheduleID 类目×分组无对应行时的默认印刷价格表
const DefaultPrintScheduleID = 1

// PrintPricingTier 丝印基价阶梯行（闭区间，按组内印刷总数量选档）
type PrintPricingTier struct {
	ScheduleID           int     `json:"schedule_id"`
	Min                  int     `json:"min"`
	Max                  int     `json:"max"`
	FirstColorPrice      float64 `json:"first_color_price"`
	AdditionalColorPrice float64 `json:"additional_color_price"`
}

// Contains 数量是否落在本阶梯
func (t *PrintPricingTier) Contains(qty int) bool {
	return qty >= t.Min && qty <= t.Max
}

// CategoryPricingSchedule 类目×客户分组 → 印刷价格表
type CategoryPricingSchedule struct {
	CategoryID      string `json:"category_id"`
	CustomerGroupID string `json:"customer_group_id"`
	ScheduleID      int    `json:"schedule_id"`
}

// PlateCostRule 版费规则：尺寸×版类型 → 制版费/按色加收
type PlateCostRule struct {
	PrintSize         string  `json:"print_size"`
	PlateType         string  `json:"plate_type"`
	SetupCost         float64 `json:"setup_cost"`
	SurchargePerColor float64 `json:"surcharge_per_color"`
}
