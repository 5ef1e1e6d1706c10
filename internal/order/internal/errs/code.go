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

package errs

var (
	SystemError         = ErrorCode{Code: 508001, Msg: "系统错误"}
	AddressNotFound     = ErrorCode{Code: 508002, Msg: "收货地址不存在"}
	CartItemNotFound    = ErrorCode{Code: 508003, Msg: "购物车商品不存在"}
	SKUNotFound         = ErrorCode{Code: 508004, Msg: "商品规格不存在或已下架"}
	ProductNotFound     = ErrorCode{Code: 508005, Msg: "商品不存在或已下架"}
	InsufficientStock   = ErrorCode{Code: 508006, Msg: "库存不足"}
	InvalidQuantity     = ErrorCode{Code: 508007, Msg: "购买数量非法"}
	OrderCreationFailed = ErrorCode{Code: 508008, Msg: "创建订单失败"}
	DuplicateRequest    = ErrorCode{Code: 508009, Msg: "请勿重复提交订单"}
	OrderNotFound       = ErrorCode{Code: 508010, Msg: "订单不存在"}
	OrderStatusInvalid  = ErrorCode{Code: 508011, Msg: "订单状态不允许该操作"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
