package service

import (
	"github.com/bitfantasy/printshop/internal/pricing/entity"
	"github.com/bitfantasy/printshop/internal/pricing/repository"
)

// SetupCostService 制版费解算（一次性，按设计稿）
type SetupCostService struct {
	repos *repository.Repositories
}

func NewSetupCostService(repos *repository.Repositories) *SetupCostService {
	return &SetupCostService{repos: repos}
}

// Calculate 解算组内丝印设计稿的制版费。
// 再版订单版已存在，全部记0。版费规则缺失或字段不全的设计稿记0。
func (s *SetupCostService) Calculate(designs []entity.PrintDesign, isReorder bool) (map[string]float64, float64) {
	byDesign := make(map[string]float64)
	if isReorder {
		return byDesign, 0
	}

	total := 0.0
	for _, design := range designs {
		if !design.IsSilkscreen() {
			continue
		}
		cost := 0.0
		if design.Size != "" && design.PlateType != "" && design.Colors > 0 {
			if rule := s.repos.Plate.Find(design.Size, design.PlateType); rule != nil {
				cost = rule.SetupCost * float64(design.Colors)
			}
		}
		byDesign[design.ID] = cost
		total += cost
	}
	return byDesign, total
}
