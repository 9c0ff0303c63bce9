package entity

// AdditionalOption 附加选项（按件加价）
type AdditionalOption struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"` // 展示名，同名选项在明细中会合并
	CostPerItem float64 `json:"cost_per_item"`
}

// SpecialInkOption 特殊油墨选项（按件×用量加价）
type SpecialInkOption struct {
	InkType  string  `json:"ink_type"`
	Name     string  `json:"name"`
	UnitCost float64 `json:"unit_cost"`
}
