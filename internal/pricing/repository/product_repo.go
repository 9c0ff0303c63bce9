package repository

import "github.com/bitfantasy/printshop/internal/pricing/entity"

// ProductRepository 商品查询
type ProductRepository struct {
	byID map[string]*entity.Product
}

func NewProductRepository(snap *Snapshot) *ProductRepository {
	byID := make(map[string]*entity.Product, len(snap.Products))
	for i := range snap.Products {
		byID[snap.Products[i].ID] = &snap.Products[i]
	}
	return &ProductRepository{byID: byID}
}

// FindByID 未命中返回nil
func (r *ProductRepository) FindByID(id string) *entity.Product {
	return r.byID[id]
}

// PriceEntry 按（颜色系×尺码）取商品单价行，未命中返回nil
func (r *ProductRepository) PriceEntry(product *entity.Product, colorLabel, size string) *entity.PriceEntry {
	if product == nil {
		return nil
	}
	for i := range product.Prices {
		pe := &product.Prices[i]
		if pe.ColorLabel == colorLabel && pe.Size == size {
			return pe
		}
	}
	return nil
}
