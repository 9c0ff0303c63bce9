package service

import (
	"github.com/bitfantasy/printshop/internal/config"
	"github.com/bitfantasy/printshop/internal/pricing/entity"
	"github.com/bitfantasy/printshop/internal/pricing/repository"
)

// ShippingService 运费解算
type ShippingService struct {
	repos *repository.Repositories
	cfg   config.PricingConfig
}

func NewShippingService(repos *repository.Repositories, cfg config.PricingConfig) *ShippingService {
	return &ShippingService{repos: repos, cfg: cfg}
}

// Calculate 小计达到免运费门槛记0；否则按地址1前缀匹配区域，
// 未命中用DEFAULT区域，DEFAULT也未配置记0。
func (s *ShippingService) Calculate(subtotal float64, customer *entity.CustomerInfo) float64 {
	if subtotal >= s.cfg.FreeShippingThreshold {
		return 0
	}
	if region := s.repos.Shipping.RegionFor(customer.Address1); region != nil {
		return region.Cost
	}
	if def := s.repos.Shipping.Default(); def != nil {
		return def.Cost
	}
	return 0
}
