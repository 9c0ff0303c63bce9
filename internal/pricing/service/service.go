package service

import (
	"github.com/bitfantasy/printshop/internal/config"
	"github.com/bitfantasy/printshop/internal/pricing/repository"
)

// Services 计价服务集合
type Services struct {
	RuleResolver *RuleResolver
	UnitPrice    *UnitPriceService
	PrintCost    *PrintCostService
	SetupCost    *SetupCostService
	Options      *OptionsService
	Shipping     *ShippingService
	Estimate     *EstimateService
}

// NewServices dtf为nil时DTF印刷费记0
func NewServices(repos *repository.Repositories, cfg config.PricingConfig, dtf DTFCalculator) *Services {
	resolver := NewRuleResolver(repos)
	unitPrice := NewUnitPriceService(repos, resolver, cfg)
	printCost := NewPrintCostService(repos, dtf)
	setupCost := NewSetupCostService(repos)
	options := NewOptionsService(repos)
	shipping := NewShippingService(repos, cfg)

	return &Services{
		RuleResolver: resolver,
		UnitPrice:    unitPrice,
		PrintCost:    printCost,
		SetupCost:    setupCost,
		Options:      options,
		Shipping:     shipping,
		Estimate:     NewEstimateService(unitPrice, printCost, setupCost, options, shipping, cfg),
	}
}
