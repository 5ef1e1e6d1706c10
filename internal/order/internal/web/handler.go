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
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/emall/internal/order/internal/domain"
	"github.com/ecodeclub/emall/internal/order/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/lithammer/shortuuid/v4"
)

const maxListLimit = 100

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc         service.Service
	checkoutSvc service.CheckoutService
}

func NewHandler(svc service.Service, checkoutSvc service.CheckoutService) *Handler {
	return &Handler{svc: svc, checkoutSvc: checkoutSvc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/checkout/token", ginx.S(h.CheckoutToken))
	g.POST("/preview", ginx.BS[PreviewReq](h.Preview))
	g.POST("/buy-now", ginx.BS[BuyNowReq](h.BuyNow))
	g.POST("/from-cart", ginx.BS[FromCartReq](h.FromCart))
	g.POST("/detail", ginx.BS[OrderSNReq](h.Detail))
	g.POST("/list", ginx.BS[ListOrdersReq](h.List))
	g.POST("/cancel", ginx.BS[OrderSNReq](h.Cancel))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

// CheckoutToken 下发下单请求ID, 客户端提交订单时带上, 用于防重
func (h *Handler) CheckoutToken(_ *ginx.Context, _ session.Session) (ginx.Result, error) {
	return ginx.Result{
		Data: CheckoutTokenResp{RequestID: shortuuid.New()},
	}, nil
}

// Preview 预览订单, 此时订单尚未创建
func (h *Handler) Preview(ctx *ginx.Context, req PreviewReq, sess session.Session) (ginx.Result, error) {
	var sel domain.Selection = domain.BuyNow{SKUID: req.SpecID, Quantity: req.Quantity}
	if len(req.CartItemIDs) > 0 {
		sel = domain.FromCart{CartItemIDs: req.CartItemIDs}
	}
	p, err := h.checkoutSvc.Preview(ctx.Request.Context(), sess.Claims().Uid, domain.CheckoutRequest{
		AddressID: req.AddressID,
		Selection: sel,
	})
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Data: PreviewResp{
			Items:          slice.Map(p.Items, func(idx int, src domain.OrderItem) OrderItem { return toOrderItemVO(src) }),
			TotalAmount:    p.Quote.Subtotal.StringFixed(2),
			ShippingFee:    p.Quote.ShippingFee.StringFixed(2),
			DiscountAmount: p.Quote.Discount.StringFixed(2),
			PayAmount:      p.Quote.PayAmount.StringFixed(2),
		},
	}, nil
}

// BuyNow 立即购买
func (h *Handler) BuyNow(ctx *ginx.Context, req BuyNowReq, sess session.Session) (ginx.Result, error) {
	return h.checkout(ctx, sess.Claims().Uid, domain.CheckoutRequest{
		RequestID:   req.RequestID,
		AddressID:   req.AddressID,
		BuyerRemark: req.BuyerRemark,
		Selection:   domain.BuyNow{SKUID: req.SpecID, Quantity: req.Quantity},
	})
}

// FromCart 购物车结算
func (h *Handler) FromCart(ctx *ginx.Context, req FromCartReq, sess session.Session) (ginx.Result, error) {
	return h.checkout(ctx, sess.Claims().Uid, domain.CheckoutRequest{
		RequestID:   req.RequestID,
		AddressID:   req.AddressID,
		BuyerRemark: req.BuyerRemark,
		Selection:   domain.FromCart{CartItemIDs: req.CartItemIDs},
	})
}

func (h *Handler) checkout(ctx *ginx.Context, uid int64, req domain.CheckoutRequest) (ginx.Result, error) {
	res, err := h.checkoutSvc.Checkout(ctx.Request.Context(), uid, req)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Data: CheckoutResp{
			OrderSN:     res.OrderSN,
			TotalAmount: res.TotalAmount.StringFixed(2),
			PayAmount:   res.PayAmount.StringFixed(2),
			ExpiresIn:   res.ExpiresIn,
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req OrderSNReq, sess session.Session) (ginx.Result, error) {
	order, err := h.svc.FindOrder(ctx.Request.Context(), req.SN, sess.Claims().Uid)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: toOrderVO(order)}, nil
}

// List 分页查询用户订单, 不返回订单项
func (h *Handler) List(ctx *ginx.Context, req ListOrdersReq, sess session.Session) (ginx.Result, error) {
	if req.Limit <= 0 || req.Limit > maxListLimit {
		req.Limit = maxListLimit
	}
	if req.Offset < 0 {
		req.Offset = 0
	}
	orders, total, err := h.svc.ListOrders(ctx.Request.Context(), sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Data: ListOrdersResp{
			Total:  total,
			Orders: slice.Map(orders, func(idx int, src domain.Order) Order { return toOrderVO(src) }),
		},
	}, nil
}

func (h *Handler) Cancel(ctx *ginx.Context, req OrderSNReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.CancelOrder(ctx.Request.Context(), sess.Claims().Uid, req.SN)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func toOrderVO(order domain.Order) Order {
	return Order{
		SN:             order.SN,
		TotalAmount:    order.TotalAmount.StringFixed(2),
		DiscountAmount: order.DiscountAmount.StringFixed(2),
		ShippingFee:    order.ShippingFee.StringFixed(2),
		PayAmount:      order.PayAmount.StringFixed(2),
		Receiver: Receiver{
			Name:       order.Receiver.Name,
			Phone:      order.Receiver.Phone,
			Province:   order.Receiver.Province,
			City:       order.Receiver.City,
			District:   order.Receiver.District,
			Detail:     order.Receiver.Detail,
			PostalCode: order.Receiver.PostalCode,
		},
		Status:        order.Status.ToUint8(),
		PaymentMethod: order.PaymentMethod.ToUint8(),
		BuyerRemark:   order.BuyerRemark,
		Items:         slice.Map(order.Items, func(idx int, src domain.OrderItem) OrderItem { return toOrderItemVO(src) }),
		Ctime:         order.Ctime,
		Utime:         order.Utime,
	}
}

func toOrderItemVO(item domain.OrderItem) OrderItem {
	return OrderItem{
		SpecID:      item.SKUID,
		ProductName: item.ProductName,
		SKUSpecs:    item.SKUSpecs,
		MainImage:   item.MainImage,
		Price:       item.Price.StringFixed(2),
		Quantity:    item.Quantity,
		TotalPrice:  item.TotalPrice.StringFixed(2),
	}
}
