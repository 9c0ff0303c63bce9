package repository

import "github.com/bitfantasy/printshop/internal/pricing/entity"

// PlateRepository 版费规则查询
type PlateRepository struct {
	snap *Snapshot
}

func NewPlateRepository(snap *Snapshot) *PlateRepository {
	return &PlateRepository{snap: snap}
}

// Find 尺寸×版类型，未命中返回nil
func (r *PlateRepository) Find(printSize, plateType string) *entity.PlateCostRule {
	for i := range r.snap.PlateRules {
		rule := &r.snap.PlateRules[i]
		if rule.PrintSize == printSize && rule.PlateType == plateType {
			return rule
		}
	}
	return nil
}
