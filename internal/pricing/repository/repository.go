package repository

// Repositories 快照访问仓库集合
type Repositories struct {
	Product      *ProductRepository
	PricingRule  *PricingRuleRepository
	PrintPricing *PrintPricingRepository
	Plate        *PlateRepository
	Shipping     *ShippingRepository
	Option       *OptionRepository
}

func NewRepositories(snap *Snapshot) *Repositories {
	return &Repositories{
		Product:      NewProductRepository(snap),
		PricingRule:  NewPricingRuleRepository(snap),
		PrintPricing: NewPrintPricingRepository(snap),
		Plate:        NewPlateRepository(snap),
		Shipping:     NewShippingRepository(snap),
		Option:       NewOptionRepository(snap),
	}
}
