package repository

import "github.com/bitfantasy/printshop/internal/pricing/entity"

// universalGroupID 印刷价格表的通配客户分组
const universalGroupID = "1"

// PrintPricingRepository 丝印价格表/阶梯查询
type PrintPricingRepository struct {
	snap *Snapshot
}

func NewPrintPricingRepository(snap *Snapshot) *PrintPricingRepository {
	return &PrintPricingRepository{snap: snap}
}

// ScheduleFor 类目×客户分组 → 价格表ID。
// 先精确匹配分组，再回退到通配分组"1"，都没有则使用默认价格表。
func (r *PrintPricingRepository) ScheduleFor(categoryID, customerGroupID string) int {
	if row := r.findSchedule(categoryID, customerGroupID); row != nil {
		return row.ScheduleID
	}
	if row := r.findSchedule(categoryID, universalGroupID); row != nil {
		return row.ScheduleID
	}
	return entity.DefaultPrintScheduleID
}

func (r *PrintPricingRepository) findSchedule(categoryID, customerGroupID string) *entity.CategoryPricingSchedule {
	for i := range r.snap.CategorySchedules {
		row := &r.snap.CategorySchedules[i]
		if row.CategoryID == categoryID && row.CustomerGroupID == customerGroupID {
			return row
		}
	}
	return nil
}

// TierFor 按组内印刷总数量选档，未命中返回nil（该组印刷费为0）
func (r *PrintPricingRepository) TierFor(scheduleID, qty int) *entity.PrintPricingTier {
	for i := range r.snap.PrintTiers {
		t := &r.snap.PrintTiers[i]
		if t.ScheduleID == scheduleID && t.Contains(qty) {
			return t
		}
	}
	return nil
}
