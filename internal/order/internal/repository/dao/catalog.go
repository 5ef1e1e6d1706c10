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

package dao

import (
	"context"

	"github.com/ego-component/egorm"
)

// CatalogDAO 结算时只读的数据: 地址、商品、SKU、购物车
type CatalogDAO interface {
	FindActiveAddress(ctx context.Context, uid, id int64) (UserAddress, error)
	FindActiveSKU(ctx context.Context, id int64) (ProductSKU, error)
	FindActiveProduct(ctx context.Context, id int64) (Product, error)
	FindCartItems(ctx context.Context, uid int64, ids []int64) ([]ShoppingCart, error)
}

type CatalogGORMDAO struct {
	db *egorm.Component
}

func NewCatalogGORMDAO(db *egorm.Component) CatalogDAO {
	return &CatalogGORMDAO{db: db}
}

func (d *CatalogGORMDAO) FindActiveAddress(ctx context.Context, uid, id int64) (UserAddress, error) {
	var res UserAddress
	err := d.db.WithContext(ctx).
		Where("id = ? AND user_id = ? AND status = ?", id, uid, AddressStatusActive).
		First(&res).Error
	return res, err
}

func (d *CatalogGORMDAO) FindActiveSKU(ctx context.Context, id int64) (ProductSKU, error) {
	var res ProductSKU
	err := d.db.WithContext(ctx).Where("id = ? AND is_active = ?", id, true).First(&res).Error
	return res, err
}

func (d *CatalogGORMDAO) FindActiveProduct(ctx context.Context, id int64) (Product, error) {
	var res Product
	err := d.db.WithContext(ctx).Where("id = ? AND is_active = ?", id, true).First(&res).Error
	return res, err
}

func (d *CatalogGORMDAO) FindCartItems(ctx context.Context, uid int64, ids []int64) ([]ShoppingCart, error) {
	var res []ShoppingCart
	err := d.db.WithContext(ctx).
		Where("id IN ? AND user_id = ?", ids, uid).
		Order("id ASC").
		Find(&res).Error
	return res, err
}
