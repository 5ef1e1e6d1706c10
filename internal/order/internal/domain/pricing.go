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

var (
	DefaultFreeShippingThreshold = decimal.RequireFromString("99.00")
	DefaultFlatShippingFee       = decimal.RequireFromString("10.00")
)

// DiscountPolicy 优惠计算, 目前没有任何优惠活动
type DiscountPolicy interface {
	Discount(subtotal decimal.Decimal) decimal.Decimal
}

type NoDiscount struct{}

func (NoDiscount) Discount(_ decimal.Decimal) decimal.Decimal {
	return decimal.Zero
}

type PriceLine struct {
	Price    decimal.Decimal
	Quantity int64
}

type Quote struct {
	LineTotals  []decimal.Decimal
	Subtotal    decimal.Decimal
	ShippingFee decimal.Decimal
	Discount    decimal.Decimal
	PayAmount   decimal.Decimal
}

type PricingEngine struct {
	freeShippingThreshold decimal.Decimal
	flatShippingFee       decimal.Decimal
	discount              DiscountPolicy
}

func NewPricingEngine(freeShippingThreshold, flatShippingFee decimal.Decimal, discount DiscountPolicy) PricingEngine {
	if discount == nil {
		discount = NoDiscount{}
	}
	return PricingEngine{
		freeShippingThreshold: freeShippingThreshold,
		flatShippingFee:       flatShippingFee,
		discount:              discount,
	}
}

func NewDefaultPricingEngine() PricingEngine {
	return NewPricingEngine(DefaultFreeShippingThreshold, DefaultFlatShippingFee, NoDiscount{})
}

func (e PricingEngine) LineTotal(price decimal.Decimal, quantity int64) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(quantity))
}

func (e PricingEngine) ShippingFee(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThanOrEqual(e.freeShippingThreshold) {
		return decimal.Zero
	}
	return e.flatShippingFee
}

func (e PricingEngine) Quote(lines []PriceLine) Quote {
	q := Quote{
		LineTotals: make([]decimal.Decimal, 0, len(lines)),
		Subtotal:   decimal.Zero,
	}
	for _, l := range lines {
		total := e.LineTotal(l.Price, l.Quantity)
		q.LineTotals = append(q.LineTotals, total)
		q.Subtotal = q.Subtotal.Add(total)
	}
	q.ShippingFee = e.ShippingFee(q.Subtotal)
	gross := q.Subtotal.Add(q.ShippingFee)
	// 实付金额不能为负数
	q.Discount = decimal.Min(e.discount.Discount(q.Subtotal), gross)
	if q.Discount.IsNegative() {
		q.Discount = decimal.Zero
	}
	q.PayAmount = gross.Sub(q.Discount)
	return q
}
