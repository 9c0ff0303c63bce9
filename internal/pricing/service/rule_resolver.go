package service

import (
	"github.com/bitfantasy/printshop/internal/pricing/entity"
	"github.com/bitfantasy/printshop/internal/pricing/repository"
)

// RuleResolver 价格规则解算：决定商品×客户适用哪条规则
type RuleResolver struct {
	repos *repository.Repositories
}

func NewRuleResolver(repos *repository.Repositories) *RuleResolver {
	return &RuleResolver{repos: repos}
}

// Resolve 按 商品 → 类目 → 厂商 顺序取第一条适用绑定，命中即止。
// 没有任何绑定命中返回nil（上游走无规则兜底链），不报错。
func (r *RuleResolver) Resolve(product *entity.Product, customer *entity.CustomerInfo) *entity.PricingRule {
	if product == nil {
		return nil
	}
	groupID := customer.GroupID()

	probes := []struct {
		targetType string
		targetID   string
	}{
		{entity.TargetProduct, product.ID},
		{entity.TargetCategory, product.CategoryID},
		{entity.TargetManufacturer, product.ManufacturerID},
	}
	for _, probe := range probes {
		if probe.targetID == "" {
			continue
		}
		if a := r.repos.PricingRule.AssignmentFor(probe.targetType, probe.targetID, groupID); a != nil {
			// 命中即止：绑定指向的规则缺失时也不再向下回退
			return r.repos.PricingRule.RuleByID(a.RuleID)
		}
	}
	return nil
}
