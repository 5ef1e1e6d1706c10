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

var (
	ErrRecordNotFound      = dao.ErrRecordNotFound
	ErrInsufficientStock   = dao.ErrInsufficientStock
	ErrOrderCreationFailed = dao.ErrOrderCreationFailed
	ErrDuplicateOrderSN    = dao.ErrDuplicateOrderSN
	ErrCartItemChanged     = dao.ErrCartItemChanged
	ErrOrderStatusChanged  = dao.ErrOrderStatusChanged
)

//go:generate mockgen -source=./order.go -package=repomocks -destination=./mocks/order.mock.go OrderRepository
type OrderRepository interface {
	// CreateOrder 原子地扣减库存、保存订单并删除已结算的购物车记录
	CreateOrder(ctx context.Context, order domain.Order, cartItemIDs []int64) (domain.Order, error)
	FindOrderBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (domain.Order, error)
	ListOrdersByBuyerID(ctx context.Context, buyerID int64, offset, limit int) ([]domain.Order, error)
	TotalOrders(ctx context.Context, buyerID int64) (int64, error)
	ListExpiredOrders(ctx context.Context, ctime int64, offset, limit int) ([]domain.Order, error)
	TotalExpiredOrders(ctx context.Context, ctime int64) (int64, error)
	CancelOrder(ctx context.Context, order domain.Order) error
	MarkOrderPaid(ctx context.Context, buyerID int64, sn string, method domain.PaymentMethod) error
}

type orderRepository struct {
	d dao.OrderDAO
}

func NewOrderRepository(d dao.OrderDAO) OrderRepository {
	return &orderRepository{d: d}
}

func (o *orderRepository) CreateOrder(ctx context.Context, order domain.Order, cartItemIDs []int64) (domain.Order, error) {
	items, err := o.toOrderItemEntities(order.Items)
	if err != nil {
		return domain.Order{}, err
	}
	deductions := slice.Map(order.StockDeductions(), func(idx int, src domain.StockDeduction) dao.StockDeduction {
		return dao.StockDeduction{SkuId: src.SKUID, Quantity: src.Quantity}
	})
	oid, err := o.d.CreateOrder(ctx, o.toOrderEntity(order), items, deductions, cartItemIDs)
	if err != nil {
		return domain.Order{}, err
	}
	order.ID = oid
	for i := range order.Items {
		order.Items[i].OrderID = oid
	}
	return order, nil
}

func (o *orderRepository) FindOrderBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (domain.Order, error) {
	order, err := o.d.FindOrderBySNAndUID(ctx, sn, buyerID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("通过订单序列号及买家ID查找订单失败: %w", err)
	}
	items, err := o.d.FindOrderItemsByOrderID(ctx, order.Id)
	if err != nil {
		return domain.Order{}, fmt.Errorf("通过订单ID查找订单项失败: %w", err)
	}
	return o.toOrderDomain(order, items), nil
}

func (o *orderRepository) ListOrdersByBuyerID(ctx context.Context, buyerID int64, offset, limit int) ([]domain.Order, error) {
	orders, err := o.d.ListOrdersByUID(ctx, buyerID, offset, limit)
	if err != nil {
		return nil, err
	}
	res := make([]domain.Order, 0, len(orders))
	for _, order := range orders {
		items, err := o.d.FindOrderItemsByOrderID(ctx, order.Id)
		if err != nil {
			return nil, fmt.Errorf("通过订单ID查找订单项失败: %w", err)
		}
		res = append(res, o.toOrderDomain(order, items))
	}
	return res, nil
}

func (o *orderRepository) TotalOrders(ctx context.Context, buyerID int64) (int64, error) {
	return o.d.CountOrdersByUID(ctx, buyerID)
}

func (o *orderRepository) ListExpiredOrders(ctx context.Context, ctime int64, offset, limit int) ([]domain.Order, error) {
	orders, err := o.d.ListExpiredOrders(ctx, ctime, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(orders, func(idx int, src dao.Order) domain.Order {
		return o.toOrderDomain(src, nil)
	}), nil
}

func (o *orderRepository) TotalExpiredOrders(ctx context.Context, ctime int64) (int64, error) {
	return o.d.CountExpiredOrders(ctx, ctime)
}

func (o *orderRepository) CancelOrder(ctx context.Context, order domain.Order) error {
	return o.d.CancelOrder(ctx, order.BuyerID, order.ID)
}

func (o *orderRepository) MarkOrderPaid(ctx context.Context, buyerID int64, sn string, method domain.PaymentMethod) error {
	return o.d.MarkOrderPaid(ctx, buyerID, sn, method.ToUint8())
}

func (o *orderRepository) toOrderEntity(order domain.Order) dao.Order {
	return dao.Order{
		Id:                 order.ID,
		SN:                 order.SN,
		UserId:             order.BuyerID,
		TotalAmount:        order.TotalAmount,
		DiscountAmount:     order.DiscountAmount,
		ShippingFee:        order.ShippingFee,
		PayAmount:          order.PayAmount,
		ReceiverName:       order.Receiver.Name,
		ReceiverPhone:      order.Receiver.Phone,
		ReceiverProvince:   order.Receiver.Province,
		ReceiverCity:       order.Receiver.City,
		ReceiverDistrict:   order.Receiver.District,
		ReceiverDetail:     order.Receiver.Detail,
		ReceiverPostalCode: order.Receiver.PostalCode,
		Status:             order.Status.ToUint8(),
		PaymentMethod:      order.PaymentMethod.ToUint8(),
		BuyerRemark:        order.BuyerRemark,
	}
}

func (o *orderRepository) toOrderItemEntities(items []domain.OrderItem) ([]dao.OrderItem, error) {
	res := make([]dao.OrderItem, 0, len(items))
	for _, item := range items {
		specs, err := json.Marshal(item.SKUSpecs)
		if err != nil {
			return nil, fmt.Errorf("序列化SKU规格失败: %w", err)
		}
		res = append(res, dao.OrderItem{
			SkuId:           item.SKUID,
			ProductName:     item.ProductName,
			SkuSpecs:        string(specs),
			MainImage:       item.MainImage,
			Price:           item.Price,
			Quantity:        item.Quantity,
			TotalPrice:      item.TotalPrice,
			AfterSaleStatus: item.AfterSaleStatus.ToUint8(),
		})
	}
	return res, nil
}

func (o *orderRepository) toOrderDomain(order dao.Order, items []dao.OrderItem) domain.Order {
	return domain.Order{
		ID:             order.Id,
		SN:             order.SN,
		BuyerID:        order.UserId,
		TotalAmount:    order.TotalAmount,
		DiscountAmount: order.DiscountAmount,
		ShippingFee:    order.ShippingFee,
		PayAmount:      order.PayAmount,
		Receiver: domain.Receiver{
			Name:       order.ReceiverName,
			Phone:      order.ReceiverPhone,
			Province:   order.ReceiverProvince,
			City:       order.ReceiverCity,
			District:   order.ReceiverDistrict,
			Detail:     order.ReceiverDetail,
			PostalCode: order.ReceiverPostalCode,
		},
		Status:        domain.OrderStatus(order.Status),
		PaymentMethod: domain.PaymentMethod(order.PaymentMethod),
		BuyerRemark:   order.BuyerRemark,
		Items: slice.Map(items, func(idx int, src dao.OrderItem) domain.OrderItem {
			var specs map[string]string
			// 历史数据规格为空时忽略
			_ = json.Unmarshal([]byte(src.SkuSpecs), &specs)
			return domain.OrderItem{
				ID:              src.Id,
				OrderID:         src.OrderId,
				SKUID:           src.SkuId,
				ProductName:     src.ProductName,
				SKUSpecs:        specs,
				MainImage:       src.MainImage,
				Price:           src.Price,
				Quantity:        src.Quantity,
				TotalPrice:      src.TotalPrice,
				AfterSaleStatus: domain.AfterSaleStatus(src.AfterSaleStatus),
			}
		}),
		Ctime: order.Ctime,
		Utime: order.Utime,
	}
}
