package repository

import "github.com/bitfantasy/printshop/internal/pricing/entity"

// ShippingRepository 配送区域查询
type ShippingRepository struct {
	snap *Snapshot
}

func NewShippingRepository(snap *Snapshot) *ShippingRepository {
	return &ShippingRepository{snap: snap}
}

// RegionFor 按地址1前缀匹配第一个区域，未命中返回nil
func (r *ShippingRepository) RegionFor(address1 string) *entity.ShippingRegion {
	if address1 == "" {
		return nil
	}
	for i := range r.snap.Regions {
		region := &r.snap.Regions[i]
		if region.MatchesAddress(address1) {
			return region
		}
	}
	return nil
}

// Default DEFAULT兜底区域，未配置返回nil
func (r *ShippingRepository) Default() *entity.ShippingRegion {
	for i := range r.snap.Regions {
		if r.snap.Regions[i].Name == entity.DefaultRegionName {
			return &r.snap.Regions[i]
		}
	}
	return nil
}
