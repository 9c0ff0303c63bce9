package service

import (
	"errors"
	"fmt"
	"math"

	"github.com/bitfantasy/printshop/internal/config"
	"github.com/bitfantasy/printshop/internal/pricing/entity"
)

// 入参形状错误：在进入引擎前拒绝，不做半截计算
var (
	ErrNegativeQuantity   = errors.New("quantity must be non-negative")
	ErrMissingPrintMethod = errors.New("print design missing print method")
	ErrMissingSizeClass   = errors.New("silkscreen design missing size class")
)

// EstimateService 报价汇总：编排各解算器并产出CostDetails
type EstimateService struct {
	unitPrice *UnitPriceService
	printCost *PrintCostService
	setupCost *SetupCostService
	options   *OptionsService
	shipping  *ShippingService
	cfg       config.PricingConfig
}

func NewEstimateService(
	unitPrice *UnitPriceService,
	printCost *PrintCostService,
	setupCost *SetupCostService,
	options *OptionsService,
	shipping *ShippingService,
	cfg config.PricingConfig,
) *EstimateService {
	return &EstimateService{
		unitPrice: unitPrice,
		printCost: printCost,
		setupCost: setupCost,
		options:   options,
		shipping:  shipping,
		cfg:       cfg,
	}
}

// Validate 边界校验：只拒绝形状错误，参考数据缺失一律走0值兜底
func (s *EstimateService) Validate(order *entity.Order) error {
	for gi := range order.Groups {
		group := &order.Groups[gi]
		for _, item := range group.Items {
			if item.Quantity < 0 {
				return fmt.Errorf("group %q item %q: %w", group.ID, item.ProductID, ErrNegativeQuantity)
			}
		}
		for _, item := range group.CustomItems {
			if item.Quantity < 0 {
				return fmt.Errorf("group %q custom item %q: %w", group.ID, item.Name, ErrNegativeQuantity)
			}
		}
		for _, item := range group.SampleItems {
			if item.Quantity < 0 {
				return fmt.Errorf("group %q sample item %q: %w", group.ID, item.Name, ErrNegativeQuantity)
			}
		}
		for _, design := range group.Designs {
			if design.Method == "" {
				return fmt.Errorf("group %q design %q: %w", group.ID, design.ID, ErrMissingPrintMethod)
			}
			if design.Method == entity.MethodSilkscreen && design.Colors > 0 && design.Size == "" {
				return fmt.Errorf("group %q design %q: %w", group.ID, design.ID, ErrMissingSizeClass)
			}
		}
	}
	return nil
}

// Estimate 计算整张报价单。纯函数：相同输入必得相同输出，不修改入参。
// 返回成本明细和回填了单价的加工组列表。
func (s *EstimateService) Estimate(order *entity.Order) (*entity.CostDetails, []entity.ProcessingGroup, error) {
	if err := s.Validate(order); err != nil {
		return nil, nil, err
	}

	details := &entity.CostDetails{GroupCosts: make([]entity.GroupCost, 0, len(order.Groups))}
	annotated := make([]entity.ProcessingGroup, len(order.Groups))

	for gi := range order.Groups {
		group := order.Groups[gi]

		priced := s.unitPrice.PriceGroup(&group, &order.Customer, order.IsBringIn)
		group.Items = priced.Items

		printRes := s.printCost.Calculate(&group, &order.Customer)
		setupByDesign, setupTotal := s.setupCost.Calculate(group.Designs, order.IsReorder)
		optionsByName, optionsTotal := s.options.Calculate(&group)

		customTotal := sumCustomItems(group.CustomItems)
		sampleTotal := sumCustomItems(group.SampleItems)

		gc := entity.GroupCost{
			GroupID:         group.ID,
			GroupName:       group.Name,
			Quantity:        group.TotalQuantity(),
			GarmentCost:     priced.GarmentTotal,
			ProductDiscount: priced.ProductDiscount,
			PrintCost:       printRes.Cost,
			DesignCosts:     printRes.Designs,
			SetupCost:       setupTotal,
			SetupByDesign:   setupByDesign,
			OptionsCost:     optionsTotal,
			OptionsByName:   optionsByName,
			CustomCost:      customTotal,
			SampleCost:      sampleTotal,
		}
		gc.Subtotal = gc.GarmentCost + gc.PrintCost.Total() + gc.SetupCost + gc.OptionsCost + gc.CustomCost + gc.SampleCost

		details.GarmentCost += gc.GarmentCost
		details.ProductDiscount += gc.ProductDiscount
		details.PrintCost.Add(gc.PrintCost)
		details.SetupCost += gc.SetupCost
		details.OptionsCost += gc.OptionsCost
		details.CustomCost += gc.CustomCost
		details.SampleCost += gc.SampleCost
		details.Subtotal += gc.Subtotal
		details.TotalQuantity += gc.Quantity
		details.GroupCosts = append(details.GroupCosts, gc)

		annotated[gi] = group
	}

	details.Shipping = s.shipping.Calculate(details.Subtotal, &order.Customer)
	// 税向下取整，与上游单价的向上取整不对称
	details.Tax = math.Floor((details.Subtotal + details.Shipping) * s.cfg.TaxRate)
	details.Total = details.Subtotal + details.Shipping + details.Tax

	if details.TotalQuantity > 0 {
		details.PerUnit = math.Round(details.Total / float64(details.TotalQuantity))
	}
	return details, annotated, nil
}

func sumCustomItems(items []entity.CustomLineItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Amount()
	}
	return total
}
