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

package event

const (
	OrderEventName   = "order_events"
	PaymentEventName = "payment_events"
)

type OrderEventType string

const (
	OrderEventTypeCreated OrderEventType = "created"
	OrderEventTypeClosed  OrderEventType = "closed"
)

// OrderEvent 订单创建或关闭后发送, 金额为两位小数的字符串
type OrderEvent struct {
	Type      OrderEventType `json:"type"`
	OrderSN   string         `json:"orderSn"`
	BuyerID   int64          `json:"buyerId"`
	PayAmount string         `json:"payAmount"`
	Status    uint8          `json:"status"`
	Ctime     int64          `json:"ctime"`
}

const PaymentStatusPaid uint8 = 1

// PaymentEvent 支付模块在用户支付成功后发送
type PaymentEvent struct {
	OrderSN       string `json:"orderSn"`
	BuyerID       int64  `json:"buyerId"`
	PaymentMethod uint8  `json:"paymentMethod"`
	Status        uint8  `json:"status"`
}
