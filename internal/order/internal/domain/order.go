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

package domain

import "github.com/shopspring/decimal"

type OrderStatus uint8

func (s OrderStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	StatusAwaitingPayment  OrderStatus = 0 // 待支付
	StatusAwaitingShipment OrderStatus = 1 // 待发货
	StatusAwaitingReceipt  OrderStatus = 2 // 待收货
	StatusCompleted        OrderStatus = 3 // 已完成
	StatusCancelled        OrderStatus = 4 // 已取消
	StatusRefundPending    OrderStatus = 5 // 退款中
	StatusRefundSucceeded  OrderStatus = 6 // 退款成功
	StatusRefundFailed     OrderStatus = 7 // 退款失败
)

type PaymentMethod uint8

func (p PaymentMethod) ToUint8() uint8 {
	return uint8(p)
}

const (
	PaymentMethodUnpaid PaymentMethod = 0
)

type AfterSaleStatus uint8

func (a AfterSaleStatus) ToUint8() uint8 {
	return uint8(a)
}

const (
	AfterSaleNone AfterSaleStatus = 0
)

// Order 订单聚合, 收货信息与价格均为下单时的快照
type Order struct {
	ID             int64
	SN             string
	BuyerID        int64
	TotalAmount    decimal.Decimal
	DiscountAmount decimal.Decimal
	ShippingFee    decimal.Decimal
	PayAmount      decimal.Decimal
	Receiver       Receiver
	Status         OrderStatus
	PaymentMethod  PaymentMethod
	BuyerRemark    string
	Items          []OrderItem
	Ctime          int64
	Utime          int64
}

type Receiver struct {
	Name       string
	Phone      string
	Province   string
	City       string
	District   string
	Detail     string
	PostalCode string
}

type OrderItem struct {
	ID              int64
	OrderID         int64
	SKUID           int64
	ProductName     string
	SKUSpecs        map[string]string
	MainImage       string
	Price           decimal.Decimal
	Quantity        int64
	TotalPrice      decimal.Decimal
	AfterSaleStatus AfterSaleStatus
}

// StockDeductions 按 SKU 汇总的扣减数量, 顺序为 SKU 首次出现的顺序
func (o Order) StockDeductions() []StockDeduction {
	idx := make(map[int64]int, len(o.Items))
	res := make([]StockDeduction, 0, len(o.Items))
	for _, item := range o.Items {
		if i, ok := idx[item.SKUID]; ok {
			res[i].Quantity += item.Quantity
			continue
		}
		idx[item.SKUID] = len(res)
		res = append(res, StockDeduction{SKUID: item.SKUID, Quantity: item.Quantity})
	}
	return res
}

type StockDeduction struct {
	SKUID    int64
	Quantity int64
}
