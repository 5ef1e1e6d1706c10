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
	"github.com/ecodeclub/emall/internal/order/internal/domain"
)

// DefaultImage 商品没有主图时使用的占位图
const DefaultImage = "https://static.emall.com/images/placeholder.png"

type OrderAssembler struct {
	defaultImage string
}

func NewOrderAssembler() *OrderAssembler {
	return &OrderAssembler{defaultImage: DefaultImage}
}

// Items 每个校验通过的购买行生成一个订单项, lines 与 quote.LineTotals 一一对应
func (a *OrderAssembler) Items(lines []domain.ValidatedLine, quote domain.Quote) []domain.OrderItem {
	items := make([]domain.OrderItem, 0, len(lines))
	for i, l := range lines {
		items = append(items, domain.OrderItem{
			SKUID:           l.SKU.ID,
			ProductName:     l.Product.Name,
			SKUSpecs:        l.SKU.Attrs.Specs(),
			MainImage:       a.mainImage(l.Product),
			Price:           l.SKU.Price,
			Quantity:        l.Quantity,
			TotalPrice:      quote.LineTotals[i],
			AfterSaleStatus: domain.AfterSaleNone,
		})
	}
	return items
}

func (a *OrderAssembler) Assemble(buyerID int64, addr domain.AddressSnapshot,
	lines []domain.ValidatedLine, quote domain.Quote, remark string) domain.Order {
	return domain.Order{
		BuyerID:        buyerID,
		TotalAmount:    quote.Subtotal,
		DiscountAmount: quote.Discount,
		ShippingFee:    quote.ShippingFee,
		PayAmount:      quote.PayAmount,
		Receiver:       addr.Receiver(),
		Status:         domain.StatusAwaitingPayment,
		PaymentMethod:  domain.PaymentMethodUnpaid,
		BuyerRemark:    remark,
		Items:          a.Items(lines, quote),
	}
}

func (a *OrderAssembler) mainImage(p domain.ProductSnapshot) string {
	if len(p.MainImages) == 0 || p.MainImages[0] == "" {
		return a.defaultImage
	}
	return p.MainImages[0]
}
