package service

import (
	"testing"

	"github.com/bitfantasy/printshop/internal/pricing/entity"
	"github.com/bitfantasy/printshop/internal/pricing/repository"
	"github.com/bitfantasy/printshop/internal/pricing/testutil"
)

func optionGroup(qty int, optionIDs ...string) *entity.ProcessingGroup {
	return &entity.ProcessingGroup{
		Items:     []entity.OrderLineItem{{ProductID: "prd_00001", Quantity: qty}},
		OptionIDs: optionIDs,
	}
}

func TestOptionsCost(t *testing.T) {
	svc := NewOptionsService(repository.NewRepositories(testutil.Snapshot()))

	byName, total := svc.Calculate(optionGroup(10, "opt_00001", "opt_00002"))
	if byName["個別袋入れ"] != 300 {
		t.Errorf("expected 300, got %v", byName["個別袋入れ"])
	}
	if byName["タグカット"] != 200 {
		t.Errorf("expected 200, got %v", byName["タグカット"])
	}
	if total != 500 {
		t.Errorf("expected total 500, got %v", total)
	}
}

func TestOptionsCostNameCollisionMerges(t *testing.T) {
	svc := NewOptionsService(repository.NewRepositories(testutil.Snapshot()))

	// 同名「たたみ」10円と15円：明細は1キーに合算、合計は正しいまま
	byName, total := svc.Calculate(optionGroup(10, "opt_00003", "opt_00004"))
	if len(byName) != 1 {
		t.Fatalf("expected merged single key, got %v", byName)
	}
	if byName["たたみ"] != 250 {
		t.Errorf("expected 250, got %v", byName["たたみ"])
	}
	if total != 250 {
		t.Errorf("expected total 250, got %v", total)
	}
}

func TestOptionsCostUnknownOptionSkipped(t *testing.T) {
	svc := NewOptionsService(repository.NewRepositories(testutil.Snapshot()))

	byName, total := svc.Calculate(optionGroup(10, "opt_missing"))
	if total != 0 || len(byName) != 0 {
		t.Fatalf("expected zero cost for unknown option, got total=%v byName=%v", total, byName)
	}
}
