package repository

import "github.com/bitfantasy/printshop/internal/pricing/entity"

// OptionRepository 附加选项/油墨/加价表查询
type OptionRepository struct {
	snap *Snapshot
}

func NewOptionRepository(snap *Snapshot) *OptionRepository {
	return &OptionRepository{snap: snap}
}

// OptionByID 未命中返回nil（选中但目录缺失的选项记0费）
func (r *OptionRepository) OptionByID(id string) *entity.AdditionalOption {
	for i := range r.snap.Options {
		if r.snap.Options[i].ID == id {
			return &r.snap.Options[i]
		}
	}
	return nil
}

// InkUnitCost 特殊油墨单件单价，未登记的油墨类型记0
func (r *OptionRepository) InkUnitCost(inkType string) float64 {
	for i := range r.snap.SpecialInks {
		if r.snap.SpecialInks[i].InkType == inkType {
			return r.snap.SpecialInks[i].UnitCost
		}
	}
	return 0
}

// SizeSurcharge 尺寸等级单件加价
func (r *OptionRepository) SizeSurcharge(size string) float64 {
	return r.snap.SizeSurcharges[size]
}

// LocationSurcharge 印刷位置单件加价
func (r *OptionRepository) LocationSurcharge(location string) float64 {
	return r.snap.LocationSurcharges[location]
}

// TagSurcharge 商品标签单件加价
func (r *OptionRepository) TagSurcharge(tag string) float64 {
	return r.snap.TagSurcharges[tag]
}
