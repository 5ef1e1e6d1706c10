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

import (
	"errors"

	"github.com/ecodeclub/emall/internal/order/internal/errs"
	"github.com/ecodeclub/emall/internal/order/internal/service"
	"github.com/ecodeclub/ginx"
)

var systemErrorResult = ginx.Result{
	Code: errs.SystemError.Code,
	Msg:  errs.SystemError.Msg,
}

var bizErrors = []struct {
	err  error
	code errs.ErrorCode
}{
	{err: service.ErrDuplicateRequest, code: errs.DuplicateRequest},
	{err: service.ErrAddressNotFound, code: errs.AddressNotFound},
	{err: service.ErrCartItemNotFound, code: errs.CartItemNotFound},
	{err: service.ErrSKUNotFound, code: errs.SKUNotFound},
	{err: service.ErrProductNotFound, code: errs.ProductNotFound},
	{err: service.ErrInvalidQuantity, code: errs.InvalidQuantity},
	{err: service.ErrInsufficientStock, code: errs.InsufficientStock},
	{err: service.ErrOrderCreationFailed, code: errs.OrderCreationFailed},
	{err: service.ErrOrderNotFound, code: errs.OrderNotFound},
	{err: service.ErrOrderStatusInvalid, code: errs.OrderStatusInvalid},
}

// errorResult 业务错误转换为错误码, 其余错误交给 ginx 记录日志
func errorResult(err error) (ginx.Result, error) {
	for _, b := range bizErrors {
		if errors.Is(err, b.err) {
			return ginx.Result{Code: b.code.Code, Msg: b.code.Msg}, nil
		}
	}
	return systemErrorResult, err
}
