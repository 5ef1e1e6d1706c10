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

package web

type CheckoutTokenResp struct {
	RequestID string `json:"requestId"`
}

// PreviewReq CartItemIDs 非空时按购物车结算预览, 否则按立即购买预览
type PreviewReq struct {
	AddressID   int64   `json:"addressId"`
	SpecID      int64   `json:"specId,omitempty"`
	Quantity    int64   `json:"quantity,omitempty"`
	CartItemIDs []int64 `json:"cartItemIds,omitempty"`
}

type PreviewResp struct {
	Items          []OrderItem `json:"items"`
	TotalAmount    string      `json:"totalAmount"`
	ShippingFee    string      `json:"shippingFee"`
	DiscountAmount string      `json:"discountAmount"`
	PayAmount      string      `json:"payAmount"`
}

type BuyNowReq struct {
	// RequestID 请求去重, 防止订单重复提交
	RequestID   string `json:"requestId,omitempty"`
	AddressID   int64  `json:"addressId"`
	SpecID      int64  `json:"specId"`
	Quantity    int64  `json:"quantity"`
	BuyerRemark string `json:"buyerRemark,omitempty"`
}

type FromCartReq struct {
	RequestID   string  `json:"requestId,omitempty"`
	AddressID   int64   `json:"addressId"`
	CartItemIDs []int64 `json:"cartItemIds"`
	BuyerRemark string  `json:"buyerRemark,omitempty"`
}

type CheckoutResp struct {
	OrderSN     string `json:"orderSn"`
	TotalAmount string `json:"totalAmount"`
	PayAmount   string `json:"payAmount"`
	// ExpiresIn 剩余支付时间, 单位秒
	ExpiresIn int64 `json:"expiresIn"`
}

type OrderSNReq struct {
	SN string `json:"sn"`
}

type ListOrdersReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ListOrdersResp struct {
	Total  int64   `json:"total"`
	Orders []Order `json:"orders"`
}

type Order struct {
	SN             string      `json:"sn"`
	TotalAmount    string      `json:"totalAmount"`
	DiscountAmount string      `json:"discountAmount"`
	ShippingFee    string      `json:"shippingFee"`
	PayAmount      string      `json:"payAmount"`
	Receiver       Receiver    `json:"receiver"`
	Status         uint8       `json:"status"`
	PaymentMethod  uint8       `json:"paymentMethod"`
	BuyerRemark    string      `json:"buyerRemark,omitempty"`
	Items          []OrderItem `json:"items,omitempty"`
	Ctime          int64       `json:"ctime"`
	Utime          int64       `json:"utime"`
}

type Receiver struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Province   string `json:"province"`
	City       string `json:"city"`
	District   string `json:"district"`
	Detail     string `json:"detail"`
	PostalCode string `json:"postalCode,omitempty"`
}

type OrderItem struct {
	SpecID      int64             `json:"specId"`
	ProductName string            `json:"productName"`
	SKUSpecs    map[string]string `json:"skuSpecs"`
	MainImage   string            `json:"mainImage"`
	Price       string            `json:"price"`
	Quantity    int64             `json:"quantity"`
	TotalPrice  string            `json:"totalPrice"`
}
