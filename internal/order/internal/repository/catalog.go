// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/emall/internal/order/internal/domain"
	"github.com/ecodeclub/emall/internal/order/internal/repository/dao"
)

// CatalogRepository 结算时读取地址、商品、SKU 与购物车快照
//
//go:generate mockgen -source=./catalog.go -package=repomocks -destination=./mocks/catalog.mock.go CatalogRepository
type CatalogRepository interface {
	FindAddress(ctx context.Context, uid, id int64) (domain.AddressSnapshot, error)
	FindSKU(ctx context.Context, id int64) (domain.SKUSnapshot, error)
	FindProduct(ctx context.Context, id int64) (domain.ProductSnapshot, error)
	// FindCartItems 只返回属于 uid 的记录, 按 ID 升序
	FindCartItems(ctx context.Context, uid int64, ids []int64) ([]domain.CartItem, error)
}

type catalogRepository struct {
	d dao.CatalogDAO
}

func NewCatalogRepository(d dao.CatalogDAO) CatalogRepository {
	return &catalogRepository{d: d}
}

func (c *catalogRepository) FindAddress(ctx context.Context, uid, id int64) (domain.AddressSnapshot, error) {
	addr, err := c.d.FindActiveAddress(ctx, uid, id)
	if err != nil {
		return domain.AddressSnapshot{}, err
	}
	return domain.AddressSnapshot{
		ID:         addr.Id,
		UserID:     addr.UserId,
		Name:       addr.Name,
		Phone:      addr.Phone,
		Province:   addr.Province,
		City:       addr.City,
		District:   addr.District,
		Detail:     addr.Detail,
		PostalCode: addr.PostalCode,
	}, nil
}

func (c *catalogRepository) FindSKU(ctx context.Context, id int64) (domain.SKUSnapshot, error) {
	sku, err := c.d.FindActiveSKU(ctx, id)
	if err != nil {
		return domain.SKUSnapshot{}, err
	}
	return domain.SKUSnapshot{
		ID:        sku.Id,
		ProductID: sku.ProductId,
		Price:     sku.Price,
		Stock:     sku.Stock,
		Attrs: domain.SKUAttrs{
			OS:      sku.OS,
			CPU:     sku.CPU,
			RAM:     sku.RAM,
			Storage: sku.Storage,
			GPU:     sku.GPU,
			Screen:  sku.Screen,
			Color:   sku.Color,
		},
	}, nil
}

func (c *catalogRepository) FindProduct(ctx context.Context, id int64) (domain.ProductSnapshot, error) {
	p, err := c.d.FindActiveProduct(ctx, id)
	if err != nil {
		return domain.ProductSnapshot{}, err
	}
	var images []string
	if p.MainImages.Valid && p.MainImages.String != "" {
		if err = json.Unmarshal([]byte(p.MainImages.String), &images); err != nil {
			return domain.ProductSnapshot{}, fmt.Errorf("解析商品主图失败 product_id = %d: %w", p.Id, err)
		}
	}
	return domain.ProductSnapshot{
		ID:         p.Id,
		Name:       p.Name,
		MainImages: images,
	}, nil
}

func (c *catalogRepository) FindCartItems(ctx context.Context, uid int64, ids []int64) ([]domain.CartItem, error) {
	items, err := c.d.FindCartItems(ctx, uid, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(items, func(idx int, src dao.ShoppingCart) domain.CartItem {
		return domain.CartItem{
			ID:       src.Id,
			UserID:   src.UserId,
			SKUID:    src.SkuId,
			Quantity: src.Quantity,
			Selected: src.Selected,
		}
	}), nil
}
