package entity

// Product 商品（参考数据，不可变）
type Product struct {
	ID             string       `json:"id"`
	Code           string       `json:"code"`
	Name           string       `json:"name"`
	ManufacturerID string       `json:"manufacturer_id"`
	CategoryID     string       `json:"category_id"`
	Tags           []string     `json:"tags,omitempty"`
	Prices         []PriceEntry `json:"prices,omitempty"`
}

// PriceEntry 商品单价行（按颜色系×尺码）
type PriceEntry struct {
	ColorLabel    string  `json:"color_label"`
	Size          string  `json:"size"`
	ListPrice     float64 `json:"list_price"`
	PurchasePrice float64 `json:"purchase_price"`
}

// HasTag 商品是否带有指定标签
func (p *Product) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
