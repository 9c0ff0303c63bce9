package entity

// PrintCost 印刷费分类细目
type PrintCost struct {
	Base        float64 `json:"base"`
	ByInk       float64 `json:"by_ink"`
	BySize      float64 `json:"by_size"`
	ByLocation  float64 `json:"by_location"`
	ByItem      float64 `json:"by_item"` // 商品标签加价（组内取最大，非求和）
	ByPlateType float64 `json:"by_plate_type"`
	ByDTF       float64 `json:"by_dtf"`
}

// Total 印刷费合计
func (p PrintCost) Total() float64 {
	return p.Base + p.ByInk + p.BySize + p.ByLocation + p.ByItem + p.ByPlateType + p.ByDTF
}

// Add 累加另一份细目
func (p *PrintCost) Add(o PrintCost) {
	p.Base += o.Base
	p.ByInk += o.ByInk
	p.BySize += o.BySize
	p.ByLocation += o.ByLocation
	p.ByItem += o.ByItem
	p.ByPlateType += o.ByPlateType
	p.ByDTF += o.ByDTF
}

// DesignCost 单个设计稿的印刷费记录
type DesignCost struct {
	DesignID  string  `json:"design_id"`
	Method    string  `json:"method"`
	Location  string  `json:"location"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	Total     float64 `json:"total"`
}

// GroupCost 加工组成本汇总
type GroupCost struct {
	GroupID         string             `json:"group_id"`
	GroupName       string             `json:"group_name"`
	Quantity        int                `json:"quantity"`
	GarmentCost     float64            `json:"garment_cost"`
	ProductDiscount float64            `json:"product_discount"`
	PrintCost       PrintCost          `json:"print_cost"`
	DesignCosts     []DesignCost       `json:"design_costs,omitempty"`
	SetupCost       float64            `json:"setup_cost"`
	SetupByDesign   map[string]float64 `json:"setup_by_design,omitempty"`
	OptionsCost     float64            `json:"options_cost"`
	OptionsByName   map[string]float64 `json:"options_by_name,omitempty"`
	CustomCost      float64            `json:"custom_cost"`
	SampleCost      float64            `json:"sample_cost"`
	Subtotal        float64            `json:"subtotal"`
}

// CostDetails 报价结果：小计/运费/税/合计与分类细目
type CostDetails struct {
	Subtotal        float64     `json:"subtotal"`
	Shipping        float64     `json:"shipping"`
	Tax             float64     `json:"tax"`
	Total           float64     `json:"total"` // 含税合计
	TotalQuantity   int         `json:"total_quantity"`
	PerUnit         float64     `json:"per_unit"`
	GarmentCost     float64     `json:"garment_cost"`
	ProductDiscount float64     `json:"product_discount"`
	PrintCost       PrintCost   `json:"print_cost"`
	SetupCost       float64     `json:"setup_cost"`
	OptionsCost     float64     `json:"options_cost"`
	CustomCost      float64     `json:"custom_cost"`
	SampleCost      float64     `json:"sample_cost"`
	GroupCosts      []GroupCost `json:"group_costs"`
}
