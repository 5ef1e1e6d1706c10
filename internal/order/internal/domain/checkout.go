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

// CheckoutRequest 下单请求, Selection 只能是 BuyNow 或者 FromCart
type CheckoutRequest struct {
	RequestID   string
	AddressID   int64
	BuyerRemark string
	Selection   Selection
}

type Selection interface {
	Mode() CheckoutMode
}

type CheckoutMode string

const (
	CheckoutModeBuyNow   CheckoutMode = "buy_now"
	CheckoutModeFromCart CheckoutMode = "from_cart"
)

// BuyNow 立即购买
type BuyNow struct {
	SKUID    int64
	Quantity int64
}

func (BuyNow) Mode() CheckoutMode {
	return CheckoutModeBuyNow
}

// FromCart 购物车结算
type FromCart struct {
	CartItemIDs []int64
}

func (FromCart) Mode() CheckoutMode {
	return CheckoutModeFromCart
}

// CheckoutLine 一行待结算的商品, 购物车结算时 CartItemID 非零
type CheckoutLine struct {
	CartItemID int64
	SKUID      int64
	Quantity   int64
}

// ValidatedLine 通过校验的商品行
type ValidatedLine struct {
	CheckoutLine
	SKU     SKUSnapshot
	Product ProductSnapshot
}

type CheckoutResult struct {
	OrderSN     string
	TotalAmount decimal.Decimal
	PayAmount   decimal.Decimal
	// ExpiresIn 支付窗口, 单位秒
	ExpiresIn int64
}

type CheckoutPreview struct {
	Items []OrderItem
	Quote Quote
}
