package entity

// DefaultCustomerGroupID 未指定客户分组时的默认分组
const DefaultCustomerGroupID = "cgrp_00001"

// CustomerInfo 客户信息（报价上下文）
type CustomerInfo struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	CustomerGroupID string `json:"customer_group_id"`
	Address1        string `json:"address1"`
	Address2        string `json:"address2"`
}

// GroupID 客户分组，缺省回退到默认分组
func (c *CustomerInfo) GroupID() string {
	if c == nil || c.CustomerGroupID == "" {
		return DefaultCustomerGroupID
	}
	return c.CustomerGroupID
}

// OrderLineItem 订单明细行。UnitPrice 由引擎解算后回填
type OrderLineItem struct {
	ProductID     string   `json:"product_id"`
	Color         string   `json:"color"`
	Size          string   `json:"size"`
	Quantity      int      `json:"quantity"`
	UnitPrice     float64  `json:"unit_price"`
	AdjustedPrice *float64 `json:"adjusted_price,omitempty"` // 人工调价（与目录价之差计入商品折扣）
	IsBringIn     bool     `json:"is_bring_in"`              // 客户自带服装，单价固定为0
}

// CustomLineItem 自由输入明细行（自定义项/样品）
type CustomLineItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Amount 行金额
func (c CustomLineItem) Amount() float64 {
	return c.Price * float64(c.Quantity)
}

// ProcessingGroup 加工组：一个报价内独立计价的子订单
type ProcessingGroup struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Items       []OrderLineItem  `json:"items"`
	Designs     []PrintDesign    `json:"designs,omitempty"`
	OptionIDs   []string         `json:"option_ids,omitempty"`
	CustomItems []CustomLineItem `json:"custom_items,omitempty"`
	SampleItems []CustomLineItem `json:"sample_items,omitempty"`
}

// TotalQuantity 组内服装总数量
func (g *ProcessingGroup) TotalQuantity() int {
	total := 0
	for _, item := range g.Items {
		total += item.Quantity
	}
	return total
}

// ProductQuantity 组内某商品（跨颜色/尺码）的合计数量
func (g *ProcessingGroup) ProductQuantity(productID string) int {
	total := 0
	for _, item := range g.Items {
		if item.ProductID == productID {
			total += item.Quantity
		}
	}
	return total
}

// Order 报价单：加工组列表 + 客户 + 订单级标志
type Order struct {
	Groups    []ProcessingGroup `json:"groups"`
	Customer  CustomerInfo      `json:"customer"`
	IsReorder bool              `json:"is_reorder"`  // 再版：免制版费
	IsBringIn bool              `json:"is_bring_in"` // 订单级持ち込み模式：启用持ち込み费计算
}
