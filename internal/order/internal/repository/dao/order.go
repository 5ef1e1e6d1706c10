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
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/ecodeclub/emall/internal/order/internal/domain"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound      = gorm.ErrRecordNotFound
	ErrInsufficientStock   = errors.New("库存不足")
	ErrOrderCreationFailed = errors.New("创建订单失败")
	ErrDuplicateOrderSN    = errors.New("订单序列号重复")
	ErrCartItemChanged     = errors.New("购物车已被并发修改")
	ErrOrderStatusChanged  = errors.New("订单状态已被并发修改")
)

type OrderDAO interface {
	// CreateOrder 在同一个事务内扣减库存、写入订单和订单项、删除已结算的购物车记录
	CreateOrder(ctx context.Context, o Order, items []OrderItem, deductions []StockDeduction, cartItemIDs []int64) (int64, error)
	FindOrderBySNAndUID(ctx context.Context, sn string, uid int64) (Order, error)
	FindOrderItemsByOrderID(ctx context.Context, oid int64) ([]OrderItem, error)
	ListOrdersByUID(ctx context.Context, uid int64, offset, limit int) ([]Order, error)
	CountOrdersByUID(ctx context.Context, uid int64) (int64, error)
	ListExpiredOrders(ctx context.Context, ctime int64, offset, limit int) ([]Order, error)
	CountExpiredOrders(ctx context.Context, ctime int64) (int64, error)
	// CancelOrder 关闭待支付订单并归还库存
	CancelOrder(ctx context.Context, uid, oid int64) error
	// MarkOrderPaid 待支付 -> 待发货
	MarkOrderPaid(ctx context.Context, uid int64, sn string, paymentMethod uint8) error
}

type StockDeduction struct {
	SkuId    int64
	Quantity int64
}

type OrderGORMDAO struct {
	db *egorm.Component
}

func NewOrderGORMDAO(db *egorm.Component) OrderDAO {
	return &OrderGORMDAO{db: db}
}

func (d *OrderGORMDAO) CreateOrder(ctx context.Context, o Order, items []OrderItem, deductions []StockDeduction, cartItemIDs []int64) (int64, error) {
	// 按 SKU ID 升序加锁, 避免并发下单时死锁
	sorted := slices.Clone(deductions)
	slices.SortFunc(sorted, func(a, b StockDeduction) int {
		return cmp.Compare(a.SkuId, b.SkuId)
	})
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		for _, sd := range sorted {
			res := tx.Model(&ProductSKU{}).
				Where("id = ? AND is_active = ? AND stock >= ?", sd.SkuId, true, sd.Quantity).
				Updates(map[string]any{
					"stock": gorm.Expr("stock - ?", sd.Quantity),
					"utime": now,
				})
			if res.Error != nil {
				return fmt.Errorf("扣减库存失败: %w", res.Error)
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("%w: sku_id = %d", ErrInsufficientStock, sd.SkuId)
			}
		}

		o.Ctime, o.Utime = now, now
		res := tx.Create(&o)
		if res.Error != nil {
			if isUniqueConflict(res.Error) {
				return ErrDuplicateOrderSN
			}
			return res.Error
		}
		if res.RowsAffected != 1 {
			return fmt.Errorf("%w: 订单写入行数 %d", ErrOrderCreationFailed, res.RowsAffected)
		}

		for i := range items {
			items[i].OrderId = o.Id
			items[i].Ctime, items[i].Utime = now, now
		}
		res = tx.Create(&items)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != int64(len(items)) {
			return fmt.Errorf("%w: 订单项写入行数 %d, 预期 %d", ErrOrderCreationFailed, res.RowsAffected, len(items))
		}

		if len(cartItemIDs) == 0 {
			return nil
		}
		res = tx.Where("id IN ? AND user_id = ?", cartItemIDs, o.UserId).Delete(&ShoppingCart{})
		if res.Error != nil {
			return fmt.Errorf("删除购物车记录失败: %w", res.Error)
		}
		if res.RowsAffected != int64(len(cartItemIDs)) {
			return fmt.Errorf("%w: 删除行数 %d, 预期 %d", ErrCartItemChanged, res.RowsAffected, len(cartItemIDs))
		}
		return nil
	})
	return o.Id, err
}

func isUniqueConflict(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		return me.Number == uniqueIndexErrNo
	}
	return false
}

func (d *OrderGORMDAO) FindOrderBySNAndUID(ctx context.Context, sn string, uid int64) (Order, error) {
	var res Order
	err := d.db.WithContext(ctx).Where("order_sn = ? AND user_id = ?", sn, uid).First(&res).Error
	return res, err
}

func (d *OrderGORMDAO) FindOrderItemsByOrderID(ctx context.Context, oid int64) ([]OrderItem, error) {
	var res []OrderItem
	err := d.db.WithContext(ctx).Where("order_id = ?", oid).Order("id ASC").Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) ListOrdersByUID(ctx context.Context, uid int64, offset, limit int) ([]Order, error) {
	var res []Order
	err := d.db.WithContext(ctx).
		Where("user_id = ?", uid).
		Offset(offset).Limit(limit).
		Order("ctime DESC").
		Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) CountOrdersByUID(ctx context.Context, uid int64) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Order{}).Where("user_id = ?", uid).Count(&res).Error
	return res, err
}

func (d *OrderGORMDAO) ListExpiredOrders(ctx context.Context, ctime int64, offset, limit int) ([]Order, error) {
	var res []Order
	err := d.db.WithContext(ctx).
		Where("status = ? AND ctime <= ?", domain.StatusAwaitingPayment.ToUint8(), ctime).
		Offset(offset).Limit(limit).
		Order("ctime ASC").
		Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) CountExpiredOrders(ctx context.Context, ctime int64) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Order{}).
		Where("status = ? AND ctime <= ?", domain.StatusAwaitingPayment.ToUint8(), ctime).
		Count(&res).Error
	return res, err
}

func (d *OrderGORMDAO) CancelOrder(ctx context.Context, uid, oid int64) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		res := tx.Model(&Order{}).
			Where("id = ? AND user_id = ? AND status = ?", oid, uid, domain.StatusAwaitingPayment.ToUint8()).
			Updates(map[string]any{
				"status": domain.StatusCancelled.ToUint8(),
				"utime":  now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrOrderStatusChanged
		}

		var items []OrderItem
		if err := tx.Where("order_id = ?", oid).Order("sku_id ASC").Find(&items).Error; err != nil {
			return fmt.Errorf("查找订单项失败: %w", err)
		}
		for _, item := range items {
			if err := tx.Model(&ProductSKU{}).
				Where("id = ?", item.SkuId).
				Updates(map[string]any{
					"stock": gorm.Expr("stock + ?", item.Quantity),
					"utime": now,
				}).Error; err != nil {
				return fmt.Errorf("归还库存失败: %w", err)
			}
		}
		return nil
	})
}

func (d *OrderGORMDAO) MarkOrderPaid(ctx context.Context, uid int64, sn string, paymentMethod uint8) error {
	res := d.db.WithContext(ctx).Model(&Order{}).
		Where("order_sn = ? AND user_id = ? AND status = ?", sn, uid, domain.StatusAwaitingPayment.ToUint8()).
		Updates(map[string]any{
			"status":         domain.StatusAwaitingShipment.ToUint8(),
			"payment_method": paymentMethod,
			"utime":          time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrOrderStatusChanged
	}
	return nil
}
