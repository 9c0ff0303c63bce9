package testutil

import (
	"github.com/bitfantasy/printshop/internal/config"
	"github.com/bitfantasy/printshop/internal/pricing/entity"
	"github.com/bitfantasy/printshop/internal/pricing/repository"
)

// Pricing 测试用计价默认值（与生产默认一致）
func Pricing() config.PricingConfig {
	return config.DefaultPricing()
}

// Snapshot 测试用参考数据快照：覆盖全部表的小型数据集
func Snapshot() *repository.Snapshot {
	return &repository.Snapshot{
		Products: []entity.Product{
			{
				ID:             "prd_00001",
				Code:           "TS-STD",
				Name:           "スタンダードTシャツ",
				ManufacturerID: "mfr_00001",
				CategoryID:     "cat_tshirt",
				Prices: []entity.PriceEntry{
					{ColorLabel: "ホワイト", Size: "M", ListPrice: 1000, PurchasePrice: 500},
					{ColorLabel: "ホワイト", Size: "L", ListPrice: 1000, PurchasePrice: 500},
					{ColorLabel: "カラー", Size: "M", ListPrice: 1200, PurchasePrice: 600},
				},
			},
			{
				ID:             "prd_00002",
				Code:           "TS-HW",
				Name:           "ヘビーウェイトTシャツ",
				ManufacturerID: "mfr_00002",
				CategoryID:     "cat_tshirt",
				Tags:           []string{"thick", "pocket"},
				Prices: []entity.PriceEntry{
					{ColorLabel: "ホワイト", Size: "M", ListPrice: 1000, PurchasePrice: 0},
				},
			},
			{
				ID:             "prd_00003",
				Code:           "PK-LT",
				Name:           "ライトパーカー",
				ManufacturerID: "mfr_00001",
				CategoryID:     "cat_parka",
				Prices: []entity.PriceEntry{
					{ColorLabel: "ホワイト", Size: "M", ListPrice: 0, PurchasePrice: 300},
				},
			},
		},
		PricingRules: []entity.PricingRule{
			{ID: "rule_rate", Name: "定価掛率", Model: entity.ModelRate, Rate: 0.6},
			{ID: "rule_markup", Name: "仕入マークアップ", Model: entity.ModelMarkup, MarkupPercentage: 0.5},
			{ID: "rule_volume", Name: "数量スライド", Model: entity.ModelVolumeDiscountMarkup, VolumeScheduleID: "vds_01"},
		},
		Assignments: []entity.PricingAssignment{
			{ID: "asg_00001", RuleID: "rule_volume", TargetType: entity.TargetProduct, TargetID: "prd_00003"},
		},
		VolumeTiers: []entity.VolumeDiscountTier{
			{ScheduleID: "vds_01", MinQuantity: 1, MaxQuantity: 9, MarkupMultiplier: 2.0},
			{ScheduleID: "vds_01", MinQuantity: 10, MaxQuantity: 49, MarkupMultiplier: 1.8},
			{ScheduleID: "vds_01", MinQuantity: 50, MaxQuantity: 99, MarkupMultiplier: 1.6},
		},
		PrintTiers: []entity.PrintPricingTier{
			{ScheduleID: 1, Min: 1, Max: 29, FirstColorPrice: 150, AdditionalColorPrice: 80},
			{ScheduleID: 1, Min: 30, Max: 99, FirstColorPrice: 100, AdditionalColorPrice: 50},
			{ScheduleID: 1, Min: 100, Max: 499, FirstColorPrice: 80, AdditionalColorPrice: 40},
			{ScheduleID: 2, Min: 30, Max: 99, FirstColorPrice: 90, AdditionalColorPrice: 45},
		},
		CategorySchedules: []entity.CategoryPricingSchedule{
			{CategoryID: "cat_tshirt", CustomerGroupID: "cgrp_00002", ScheduleID: 2},
			{CategoryID: "cat_tshirt", CustomerGroupID: "1", ScheduleID: 1},
		},
		PlateRules: []entity.PlateCostRule{
			{PrintSize: "A4", PlateType: entity.PlateNormal, SetupCost: 1000},
			{PrintSize: "A4", PlateType: entity.PlateDecomposition, SetupCost: 1500, SurchargePerColor: 500},
			{PrintSize: "A3", PlateType: entity.PlateNormal, SetupCost: 1500},
		},
		Regions: []entity.ShippingRegion{
			{Name: "関東", Prefectures: []string{"東京都", "神奈川県", "埼玉県", "千葉県"}, Cost: 800},
			{Name: "関西", Prefectures: []string{"大阪府", "京都府", "兵庫県"}, Cost: 900},
			{Name: entity.DefaultRegionName, Cost: 1200},
		},
		Options: []entity.AdditionalOption{
			{ID: "opt_00001", Name: "個別袋入れ", CostPerItem: 30},
			{ID: "opt_00002", Name: "タグカット", CostPerItem: 20},
			{ID: "opt_00003", Name: "たたみ", CostPerItem: 10},
			{ID: "opt_00004", Name: "たたみ", CostPerItem: 15},
		},
		SpecialInks: []entity.SpecialInkOption{
			{InkType: "gold", Name: "ゴールドインク", UnitCost: 80},
			{InkType: "foam", Name: "発泡インク", UnitCost: 60},
		},
		SizeSurcharges:     map[string]float64{"A3": 50},
		LocationSurcharges: map[string]float64{"back": 30, "sleeve": 20},
		TagSurcharges:      map[string]float64{"thick": 50, "pocket": 30},
	}
}

// Customer 东京地址的默认分组客户
func Customer() entity.CustomerInfo {
	return entity.CustomerInfo{
		ID:       "cus_00001",
		Name:     "テスト商事",
		Address1: "東京都渋谷区1-2-3",
	}
}

// Float64Ptr 调价字段用
func Float64Ptr(v float64) *float64 {
	return &v
}
