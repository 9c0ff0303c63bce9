package service

import (
	"math"

	"github.com/bitfantasy/printshop/internal/config"
	"github.com/bitfantasy/printshop/internal/pricing/entity"
	"github.com/bitfantasy/printshop/internal/pricing/repository"
)

// UnitPriceService 服装单价解算
type UnitPriceService struct {
	repos    *repository.Repositories
	resolver *RuleResolver
	cfg      config.PricingConfig
}

func NewUnitPriceService(repos *repository.Repositories, resolver *RuleResolver, cfg config.PricingConfig) *UnitPriceService {
	return &UnitPriceService{repos: repos, resolver: resolver, cfg: cfg}
}

// PricedItems 单价解算结果
type PricedItems struct {
	Items           []entity.OrderLineItem
	GarmentTotal    float64 // Σ 实效单价×数量
	ProductDiscount float64 // Σ (目录单价−调价)×数量，仅调价低于目录价时计入
}

// priceStrategy 定价策略：按序尝试，第一个命中的生效
type priceStrategy func() (float64, bool)

func priceTimes(price, multiplier float64) priceStrategy {
	return func() (float64, bool) {
		if price > 0 {
			return price * multiplier, true
		}
		return 0, false
	}
}

// strategyChain 按规则类型构造定价策略链。
// 每条链都内置了价格字段缺失时的回退顺序。
func (s *UnitPriceService) strategyChain(rule *entity.PricingRule, listPrice, purchasePrice float64, productQty int) []priceStrategy {
	noRule := []priceStrategy{
		priceTimes(purchasePrice, 1+s.cfg.DefaultSellingMarkup),
		priceTimes(listPrice, s.cfg.ListPriceFallbackRate),
	}
	if rule == nil {
		return noRule
	}

	switch rule.Model {
	case entity.ModelRate:
		return []priceStrategy{
			priceTimes(listPrice, rule.Rate),
			priceTimes(purchasePrice, 1+s.cfg.DefaultSellingMarkup),
		}
	case entity.ModelMarkup:
		return []priceStrategy{
			priceTimes(purchasePrice, 1+rule.MarkupPercentage),
			priceTimes(listPrice, s.cfg.ListPriceFallbackRate),
		}
	case entity.ModelVolumeDiscountMarkup:
		tier := s.repos.PricingRule.VolumeTier(rule.VolumeScheduleID, productQty)
		if tier == nil {
			// 无阶梯命中，整体回退到无规则链
			return noRule
		}
		return []priceStrategy{
			priceTimes(purchasePrice, tier.MarkupMultiplier),
			priceTimes(listPrice, s.cfg.ListPriceFallbackRate),
		}
	default:
		return noRule
	}
}

// UnitPrice 解算一条单价行的销售单价（向上取整到取整单位）
func (s *UnitPriceService) UnitPrice(rule *entity.PricingRule, entry *entity.PriceEntry, productQty int) float64 {
	if entry == nil {
		return 0
	}
	for _, try := range s.strategyChain(rule, entry.ListPrice, entry.PurchasePrice, productQty) {
		if raw, ok := try(); ok {
			return s.ceilToUnit(raw)
		}
	}
	return 0
}

// bringInFee 持ち込み费：定価×费率，仕入兜底
func (s *UnitPriceService) bringInFee(entry *entity.PriceEntry) float64 {
	if entry == nil {
		return 0
	}
	chain := []priceStrategy{
		priceTimes(entry.ListPrice, s.cfg.BringInFeeRate),
		priceTimes(entry.PurchasePrice, 1+s.cfg.DefaultBringInMarkup),
	}
	for _, try := range chain {
		if raw, ok := try(); ok {
			return s.ceilToUnit(raw)
		}
	}
	return 0
}

// ceilToUnit 向上取整到取整单位（円）
func (s *UnitPriceService) ceilToUnit(raw float64) float64 {
	unit := s.cfg.PriceRoundUnit
	if unit <= 0 {
		return raw
	}
	return math.Ceil(raw/unit) * unit
}

// PriceGroup 解算加工组全部明细行的单价并回填。
// bringInMode 为订单级持ち込み模式：组内明细改按持ち込み费计价；
// 单行的IsBringIn标志始终使该行单价为0。
func (s *UnitPriceService) PriceGroup(group *entity.ProcessingGroup, customer *entity.CustomerInfo, bringInMode bool) PricedItems {
	out := PricedItems{Items: make([]entity.OrderLineItem, len(group.Items))}
	copy(out.Items, group.Items)

	for i := range out.Items {
		item := &out.Items[i]
		product := s.repos.Product.FindByID(item.ProductID)
		entry := s.repos.Product.PriceEntry(product, item.Color, item.Size)

		var unit float64
		switch {
		case item.IsBringIn:
			unit = 0
		case bringInMode:
			unit = s.bringInFee(entry)
		default:
			rule := s.resolver.Resolve(product, customer)
			unit = s.UnitPrice(rule, entry, group.ProductQuantity(item.ProductID))
		}
		item.UnitPrice = unit

		effective := unit
		if item.AdjustedPrice != nil {
			effective = *item.AdjustedPrice
			if unit > effective {
				out.ProductDiscount += (unit - effective) * float64(item.Quantity)
			}
		}
		out.GarmentTotal += effective * float64(item.Quantity)
	}
	return out
}
