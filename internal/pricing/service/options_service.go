package service

import (
	"github.com/bitfantasy/printshop/internal/pricing/entity"
	"github.com/bitfantasy/printshop/internal/pricing/repository"
)

// OptionsService 附加选项费解算
type OptionsService struct {
	repos *repository.Repositories
}

func NewOptionsService(repos *repository.Repositories) *OptionsService {
	return &OptionsService{repos: repos}
}

// Calculate 按件加价×组内总数量。明细按选项展示名汇总，
// 同名选项会合并到一个键（合计不受影响）。目录缺失的选项跳过。
func (s *OptionsService) Calculate(group *entity.ProcessingGroup) (map[string]float64, float64) {
	byName := make(map[string]float64)
	total := 0.0
	qty := group.TotalQuantity()

	for _, optionID := range group.OptionIDs {
		opt := s.repos.Option.OptionByID(optionID)
		if opt == nil {
			continue
		}
		cost := opt.CostPerItem * float64(qty)
		byName[opt.Name] += cost
		total += cost
	}
	return byName, total
}
