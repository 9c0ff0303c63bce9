package repository

import "github.com/bitfantasy/printshop/internal/pricing/entity"

// PricingRuleRepository 价格规则/绑定/按量阶梯查询
type PricingRuleRepository struct {
	snap    *Snapshot
	ruleByID map[string]*entity.PricingRule
}

func NewPricingRuleRepository(snap *Snapshot) *PricingRuleRepository {
	byID := make(map[string]*entity.PricingRule, len(snap.PricingRules))
	for i := range snap.PricingRules {
		byID[snap.PricingRules[i].ID] = &snap.PricingRules[i]
	}
	return &PricingRuleRepository{snap: snap, ruleByID: byID}
}

// RuleByID 未命中返回nil
func (r *PricingRuleRepository) RuleByID(id string) *entity.PricingRule {
	return r.ruleByID[id]
}

// AssignmentFor 按目标类型+目标ID查找适用于客户分组的第一条绑定
func (r *PricingRuleRepository) AssignmentFor(targetType, targetID, customerGroupID string) *entity.PricingAssignment {
	for i := range r.snap.Assignments {
		a := &r.snap.Assignments[i]
		if a.TargetType == targetType && a.TargetID == targetID && a.MatchesGroup(customerGroupID) {
			return a
		}
	}
	return nil
}

// VolumeTier 按量阶梯选档，未命中返回nil
func (r *PricingRuleRepository) VolumeTier(scheduleID string, qty int) *entity.VolumeDiscountTier {
	for i := range r.snap.VolumeTiers {
		t := &r.snap.VolumeTiers[i]
		if t.ScheduleID == scheduleID && t.Contains(qty) {
			return t
		}
	}
	return nil
}
