package service

import (
	"testing"

	"github.com/bitfantasy/printshop/internal/pricing/entity"
	"github.com/bitfantasy/printshop/internal/pricing/repository"
	"github.com/bitfantasy/printshop/internal/pricing/testutil"
)

func TestShippingRegionMatch(t *testing.T) {
	svc := NewShippingService(repository.NewRepositories(testutil.Snapshot()), testutil.Pricing())

	customer := entity.CustomerInfo{Address1: "東京都渋谷区1-2-3"}
	if got := svc.Calculate(9000, &customer); got != 800 {
		t.Errorf("expected 800 for 関東, got %v", got)
	}

	customer.Address1 = "大阪府大阪市北区4-5-6"
	if got := svc.Calculate(9000, &customer); got != 900 {
		t.Errorf("expected 900 for 関西, got %v", got)
	}
}

func TestShippingFreeThreshold(t *testing.T) {
	svc := NewShippingService(repository.NewRepositories(testutil.Snapshot()), testutil.Pricing())

	customer := entity.CustomerInfo{Address1: "東京都渋谷区1-2-3"}
	// 門槛ちょうどで無料
	if got := svc.Calculate(10000, &customer); got != 0 {
		t.Errorf("expected free shipping at threshold, got %v", got)
	}
	if got := svc.Calculate(25000, &customer); got != 0 {
		t.Errorf("expected free shipping above threshold, got %v", got)
	}
}

func TestShippingDefaultRegion(t *testing.T) {
	svc := NewShippingService(repository.NewRepositories(testutil.Snapshot()), testutil.Pricing())

	customer := entity.CustomerInfo{Address1: "北海道札幌市中央区7-8"}
	if got := svc.Calculate(9000, &customer); got != 1200 {
		t.Errorf("expected DEFAULT region 1200, got %v", got)
	}

	customer.Address1 = ""
	if got := svc.Calculate(9000, &customer); got != 1200 {
		t.Errorf("expected DEFAULT region for empty address, got %v", got)
	}
}

func TestShippingNoRegions(t *testing.T) {
	svc := NewShippingService(repository.NewRepositories(&repository.Snapshot{}), testutil.Pricing())

	customer := entity.CustomerInfo{Address1: "東京都渋谷区1-2-3"}
	if got := svc.Calculate(9000, &customer); got != 0 {
		t.Errorf("expected 0 without region table, got %v", got)
	}
}
