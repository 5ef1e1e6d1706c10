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

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/emall/internal/order/internal/domain"
	"github.com/ecodeclub/emall/internal/order/internal/repository"
)

// AddressResolver 校验收货地址归属并返回地址快照
type AddressResolver interface {
	Resolve(ctx context.Context, uid, addressID int64) (domain.AddressSnapshot, error)
}

type addressResolver struct {
	repo repository.CatalogRepository
}

func NewAddressResolver(repo repository.CatalogRepository) AddressResolver {
	return &addressResolver{repo: repo}
}

func (r *addressResolver) Resolve(ctx context.Context, uid, addressID int64) (domain.AddressSnapshot, error) {
	if addressID <= 0 {
		return domain.AddressSnapshot{}, ErrAddressNotFound
	}
	addr, err := r.repo.FindAddress(ctx, uid, addressID)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.AddressSnapshot{}, fmt.Errorf("%w: address_id = %d", ErrAddressNotFound, addressID)
	}
	if err != nil {
		return domain.AddressSnapshot{}, fmt.Errorf("查找收货地址失败: %w", err)
	}
	return addr, nil
}

// SKUResolver 只返回可售的 SKU 与上架的商品
type SKUResolver interface {
	ResolveSKU(ctx context.Context, skuID int64) (domain.SKUSnapshot, error)
	ResolveProduct(ctx context.Context, productID int64) (domain.ProductSnapshot, error)
}

type skuResolver struct {
	repo repository.CatalogRepository
}

func NewSKUResolver(repo repository.CatalogRepository) SKUResolver {
	return &skuResolver{repo: repo}
}

func (r *skuResolver) ResolveSKU(ctx context.Context, skuID int64) (domain.SKUSnapshot, error) {
	if skuID <= 0 {
		return domain.SKUSnapshot{}, ErrSKUNotFound
	}
	sku, err := r.repo.FindSKU(ctx, skuID)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.SKUSnapshot{}, fmt.Errorf("%w: sku_id = %d", ErrSKUNotFound, skuID)
	}
	if err != nil {
		return domain.SKUSnapshot{}, fmt.Errorf("查找SKU失败: %w", err)
	}
	return sku, nil
}

func (r *skuResolver) ResolveProduct(ctx context.Context, productID int64) (domain.ProductSnapshot, error) {
	p, err := r.repo.FindProduct(ctx, productID)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.ProductSnapshot{}, fmt.Errorf("%w: product_id = %d", ErrProductNotFound, productID)
	}
	if err != nil {
		return domain.ProductSnapshot{}, fmt.Errorf("查找商品失败: %w", err)
	}
	return p, nil
}

// StockValidator 下单前的库存预检, 最终以事务内的条件扣减为准
type StockValidator interface {
	Validate(sku domain.SKUSnapshot, quantity int64) error
}

type stockValidator struct{}

func NewStockValidator() StockValidator {
	return stockValidator{}
}

func (stockValidator) Validate(sku domain.SKUSnapshot, quantity int64) error {
	if quantity < 1 {
		return fmt.Errorf("%w: quantity = %d", ErrInvalidQuantity, quantity)
	}
	if quantity > sku.Stock {
		return fmt.Errorf("%w: sku_id = %d, stock = %d, quantity = %d",
			ErrInsufficientStock, sku.ID, sku.Stock, quantity)
	}
	return nil
}
