package service

import (
	"github.com/bitfantasy/printshop/internal/pricing/entity"
	"github.com/bitfantasy/printshop/internal/pricing/repository"
)

// DTFCalculator DTF印刷费由外部协作方计算，引擎只汇总其结果
type DTFCalculator interface {
	Cost(design entity.PrintDesign, quantity int) float64
}

// DTFFunc 函数适配器
type DTFFunc func(design entity.PrintDesign, quantity int) float64

func (f DTFFunc) Cost(design entity.PrintDesign, quantity int) float64 {
	return f(design, quantity)
}

// PrintCostService 印刷费解算（丝印阶梯+各类加价）
type PrintCostService struct {
	repos *repository.Repositories
	dtf   DTFCalculator // nil时DTF费记0
}

func NewPrintCostService(repos *repository.Repositories, dtf DTFCalculator) *PrintCostService {
	return &PrintCostService{repos: repos, dtf: dtf}
}

// PrintCostResult 印刷费解算结果
type PrintCostResult struct {
	Cost    entity.PrintCost
	Designs []entity.DesignCost
}

// Calculate 解算加工组的印刷费。
// 数量为0时全部记0；丝印阶梯未命中时该组丝印相关费用整体记0（DTF不受影响）。
func (s *PrintCostService) Calculate(group *entity.ProcessingGroup, customer *entity.CustomerInfo) PrintCostResult {
	var res PrintCostResult
	qty := group.TotalQuantity()
	if qty == 0 {
		return res
	}

	tier := s.tierFor(group, customer, qty)
	fqty := float64(qty)

	for _, design := range group.Designs {
		switch design.Method {
		case entity.MethodSilkscreen:
			if tier == nil || design.Colors <= 0 {
				continue
			}
			base := tier.FirstColorPrice
			if design.Colors > 1 {
				base += tier.AdditionalColorPrice * float64(design.Colors-1)
			}
			ink := 0.0
			for _, usage := range design.SpecialInks {
				ink += s.repos.Option.InkUnitCost(usage.InkType) * float64(usage.Count)
			}
			size := s.repos.Option.SizeSurcharge(design.Size)
			location := s.repos.Option.LocationSurcharge(design.Location)

			res.Cost.Base += base * fqty
			res.Cost.ByInk += ink * fqty
			res.Cost.BySize += size * fqty
			res.Cost.ByLocation += location * fqty

			unit := base + ink + size + location
			res.Designs = append(res.Designs, entity.DesignCost{
				DesignID:  design.ID,
				Method:    design.Method,
				Location:  design.Location,
				UnitPrice: unit,
				Quantity:  qty,
				Total:     unit * fqty,
			})
		case entity.MethodDTF:
			if s.dtf == nil {
				continue
			}
			cost := s.dtf.Cost(design, qty)
			res.Cost.ByDTF += cost
			res.Designs = append(res.Designs, entity.DesignCost{
				DesignID: design.ID,
				Method:   design.Method,
				Location: design.Location,
				Quantity: qty,
				Total:    cost,
			})
		}
	}

	if tier != nil {
		res.Cost.ByItem = s.tagSurcharge(group) * fqty
		res.Cost.ByPlateType = s.plateSurcharge(group.Designs)
	}
	return res
}

// tierFor 价格表选档：类目取组内第一个可解析商品的类目
func (s *PrintCostService) tierFor(group *entity.ProcessingGroup, customer *entity.CustomerInfo, qty int) *entity.PrintPricingTier {
	categoryID := ""
	for _, item := range group.Items {
		if product := s.repos.Product.FindByID(item.ProductID); product != nil {
			categoryID = product.CategoryID
			break
		}
	}
	scheduleID := s.repos.PrintPricing.ScheduleFor(categoryID, customer.GroupID())
	return s.repos.PrintPricing.TierFor(scheduleID, qty)
}

// tagSurcharge 组内所有商品标签加价取最大值（不是求和）
func (s *PrintCostService) tagSurcharge(group *entity.ProcessingGroup) float64 {
	maxSurcharge := 0.0
	for _, item := range group.Items {
		product := s.repos.Product.FindByID(item.ProductID)
		if product == nil {
			continue
		}
		for _, tag := range product.Tags {
			if c := s.repos.Option.TagSurcharge(tag); c > maxSurcharge {
				maxSurcharge = c
			}
		}
	}
	return maxSurcharge
}

// plateSurcharge 分解版加价：按色数加收，一次性（不乘数量）
func (s *PrintCostService) plateSurcharge(designs []entity.PrintDesign) float64 {
	total := 0.0
	for _, design := range designs {
		if !design.IsSilkscreen() || design.PlateType != entity.PlateDecomposition || design.Colors <= 0 {
			continue
		}
		if rule := s.repos.Plate.Find(design.Size, design.PlateType); rule != nil {
			total += rule.SurchargePerColor * float64(design.Colors)
		}
	}
	return total
}
