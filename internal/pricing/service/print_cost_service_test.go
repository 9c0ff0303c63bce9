package service

import (
	"testing"

	"github.com/bitfantasy/printshop/internal/pricing/entity"
	"github.com/bitfantasy/printshop/internal/pricing/repository"
	"github.com/bitfantasy/printshop/internal/pricing/testutil"
)

func printGroup(qty int, designs ...entity.PrintDesign) *entity.ProcessingGroup {
	return &entity.ProcessingGroup{
		ID:      "grp_1",
		Items:   []entity.OrderLineItem{{ProductID: "prd_00001", Color: "ホワイト", Size: "M", Quantity: qty}},
		Designs: designs,
	}
}

func TestPrintCostBaseTier(t *testing.T) {
	svc := NewPrintCostService(repository.NewRepositories(testutil.Snapshot()), nil)
	customer := testutil.Customer()

	// 階梯{first:100, add:50}、3色、50枚 → 単価200 → 10000
	group := printGroup(50, entity.PrintDesign{
		ID: "dsn_1", Method: entity.MethodSilkscreen, Size: "A4", Location: "front", Colors: 3,
	})
	res := svc.Calculate(group, &customer)
	if res.Cost.Base != 10000 {
		t.Errorf("expected base 10000, got %v", res.Cost.Base)
	}
	if len(res.Designs) != 1 || res.Designs[0].Total != 10000 {
		t.Fatalf("unexpected design costs: %+v", res.Designs)
	}
	if res.Designs[0].UnitPrice != 200 {
		t.Errorf("expected unit print price 200, got %v", res.Designs[0].UnitPrice)
	}
}

func TestPrintCostSurcharges(t *testing.T) {
	svc := NewPrintCostService(repository.NewRepositories(testutil.Snapshot()), nil)
	customer := testutil.Customer()

	group := printGroup(50, entity.PrintDesign{
		ID: "dsn_1", Method: entity.MethodSilkscreen, Size: "A3", Location: "back", Colors: 1,
		SpecialInks: []entity.InkUsage{{InkType: "gold", Count: 2}},
	})
	res := svc.Calculate(group, &customer)

	// ゴールド80×2 = 160/枚
	if res.Cost.ByInk != 160*50 {
		t.Errorf("expected ink 8000, got %v", res.Cost.ByInk)
	}
	if res.Cost.BySize != 50*50 {
		t.Errorf("expected size 2500, got %v", res.Cost.BySize)
	}
	if res.Cost.ByLocation != 30*50 {
		t.Errorf("expected location 1500, got %v", res.Cost.ByLocation)
	}
}

func TestPrintCostTagSurchargeUsesMax(t *testing.T) {
	svc := NewPrintCostService(repository.NewRepositories(testutil.Snapshot()), nil)
	customer := testutil.Customer()

	// prd_00002 帯 thick(50) と pocket(30)：最大値50、合計80ではない
	group := &entity.ProcessingGroup{
		Items: []entity.OrderLineItem{
			{ProductID: "prd_00001", Color: "ホワイト", Size: "M", Quantity: 20},
			{ProductID: "prd_00002", Color: "ホワイト", Size: "M", Quantity: 10},
		},
		Designs: []entity.PrintDesign{
			{ID: "dsn_1", Method: entity.MethodSilkscreen, Size: "A4", Location: "front", Colors: 1},
		},
	}
	res := svc.Calculate(group, &customer)
	if res.Cost.ByItem != 50*30 {
		t.Errorf("expected tag surcharge 1500 (max, not sum), got %v", res.Cost.ByItem)
	}
}

func TestPrintCostPlateTypeSurcharge(t *testing.T) {
	svc := NewPrintCostService(repository.NewRepositories(testutil.Snapshot()), nil)
	customer := testutil.Customer()

	group := printGroup(50, entity.PrintDesign{
		ID: "dsn_1", Method: entity.MethodSilkscreen, Size: "A4", Location: "front", Colors: 3,
		PlateType: entity.PlateDecomposition,
	})
	res := svc.Calculate(group, &customer)
	// 500円/色 × 3色、一括（数量に乗じない）
	if res.Cost.ByPlateType != 1500 {
		t.Errorf("expected plate surcharge 1500, got %v", res.Cost.ByPlateType)
	}
}

func TestPrintCostNoTierMatch(t *testing.T) {
	svc := NewPrintCostService(repository.NewRepositories(testutil.Snapshot()), nil)
	customer := testutil.Customer()

	// 階梯は499まで：600枚は未命中 → 丝印費は全て0
	group := printGroup(600, entity.PrintDesign{
		ID: "dsn_1", Method: entity.MethodSilkscreen, Size: "A4", Location: "back", Colors: 3,
		PlateType: entity.PlateDecomposition,
	})
	res := svc.Calculate(group, &customer)
	if total := res.Cost.Total(); total != 0 {
		t.Errorf("expected zero print cost without tier, got %v", total)
	}
}

func TestPrintCostZeroQuantity(t *testing.T) {
	svc := NewPrintCostService(repository.NewRepositories(testutil.Snapshot()), nil)
	customer := testutil.Customer()

	group := printGroup(0, entity.PrintDesign{
		ID: "dsn_1", Method: entity.MethodSilkscreen, Size: "A4", Location: "front", Colors: 2,
	})
	res := svc.Calculate(group, &customer)
	if total := res.Cost.Total(); total != 0 {
		t.Errorf("expected zero print cost for zero quantity, got %v", total)
	}
}

func TestPrintCostScheduleByCustomerGroup(t *testing.T) {
	svc := NewPrintCostService(repository.NewRepositories(testutil.Snapshot()), nil)

	group := printGroup(50, entity.PrintDesign{
		ID: "dsn_1", Method: entity.MethodSilkscreen, Size: "A4", Location: "front", Colors: 1,
	})
	// cgrp_00002 は価格表2 {first:90}
	customer := entity.CustomerInfo{CustomerGroupID: "cgrp_00002"}
	res := svc.Calculate(group, &customer)
	if res.Cost.Base != 90*50 {
		t.Errorf("expected base 4500 from schedule 2, got %v", res.Cost.Base)
	}
}

func TestPrintCostDTFDelegation(t *testing.T) {
	dtf := DTFFunc(func(_ entity.PrintDesign, quantity int) float64 {
		return 25 * float64(quantity)
	})
	svc := NewPrintCostService(repository.NewRepositories(testutil.Snapshot()), dtf)
	customer := testutil.Customer()

	group := printGroup(40, entity.PrintDesign{
		ID: "dsn_1", Method: entity.MethodDTF, Location: "front", WidthMM: 200, HeightMM: 150,
	})
	res := svc.Calculate(group, &customer)
	if res.Cost.ByDTF != 1000 {
		t.Errorf("expected DTF 1000, got %v", res.Cost.ByDTF)
	}

	// 協作方未接入 → 0
	svc = NewPrintCostService(repository.NewRepositories(testutil.Snapshot()), nil)
	res = svc.Calculate(group, &customer)
	if res.Cost.ByDTF != 0 {
		t.Errorf("expected DTF 0 without calculator, got %v", res.Cost.ByDTF)
	}
}
