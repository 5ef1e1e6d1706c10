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
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/emall/internal/order/internal/domain"
	"github.com/ecodeclub/emall/internal/order/internal/event"
	"github.com/ecodeclub/emall/internal/order/internal/repository"
	"github.com/ecodeclub/emall/internal/order/internal/repository/cache"
	"github.com/ecodeclub/emall/internal/pkg/sngenerator"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultPaymentWindow = 30 * time.Minute
	defaultConcurrency   = 8
	// 订单序列号冲突时最多尝试的次数
	maxSNAttempts = 2
)

type CheckoutConfig struct {
	PaymentWindow time.Duration
	// Concurrency 并发校验购买行的上限
	Concurrency int
}

//go:generate mockgen -source=./checkout.go -package=ordermocks -destination=../../mocks/checkout.mock.go CheckoutService
type CheckoutService interface {
	// Preview 只校验与计价, 不落库
	Preview(ctx context.Context, uid int64, req domain.CheckoutRequest) (domain.CheckoutPreview, error)
	Checkout(ctx context.Context, uid int64, req domain.CheckoutRequest) (domain.CheckoutResult, error)
}

type checkoutService struct {
	addresses AddressResolver
	skus      SKUResolver
	validator StockValidator
	pricing   domain.PricingEngine
	assembler *OrderAssembler
	catalog   repository.CatalogRepository
	repo      repository.OrderRepository
	requests  cache.RequestCache
	snGen     sngenerator.Generator
	producer  event.OrderEventProducer
	cfg       CheckoutConfig
	logger    *elog.Component
}

func NewCheckoutService(
	addresses AddressResolver,
	skus SKUResolver,
	validator StockValidator,
	pricing domain.PricingEngine,
	assembler *OrderAssembler,
	catalog repository.CatalogRepository,
	repo repository.OrderRepository,
	requests cache.RequestCache,
	snGen sngenerator.Generator,
	producer event.OrderEventProducer,
	cfg CheckoutConfig,
) CheckoutService {
	if cfg.PaymentWindow <= 0 {
		cfg.PaymentWindow = DefaultPaymentWindow
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = defaultConcurrency
	}
	return &checkoutService{
		addresses: addresses,
		skus:      skus,
		validator: validator,
		pricing:   pricing,
		assembler: assembler,
		catalog:   catalog,
		repo:      repo,
		requests:  requests,
		snGen:     snGen,
		producer:  producer,
		cfg:       cfg,
		logger:    elog.DefaultLogger,
	}
}

func (s *checkoutService) Preview(ctx context.Context, uid int64, req domain.CheckoutRequest) (domain.CheckoutPreview, error) {
	_, lines, err := s.prepare(ctx, uid, req)
	if err != nil {
		return domain.CheckoutPreview{}, err
	}
	quote := s.pricing.Quote(priceLines(lines))
	return domain.CheckoutPreview{
		Items: s.assembler.Items(lines, quote),
		Quote: quote,
	}, nil
}

func (s *checkoutService) Checkout(ctx context.Context, uid int64, req domain.CheckoutRequest) (domain.CheckoutResult, error) {
	if req.RequestID != "" {
		if err := s.requests.Acquire(ctx, uid, req.RequestID); err != nil {
			return domain.CheckoutResult{}, err
		}
	}
	res, err := s.checkout(ctx, uid, req)
	if err != nil && req.RequestID != "" {
		// 下单失败允许客户端使用同一个请求ID重试
		if er := s.requests.Release(ctx, uid, req.RequestID); er != nil {
			s.logger.Warn("释放下单请求ID失败",
				elog.FieldErr(er),
				elog.Int64("uid", uid),
				elog.String("request_id", req.RequestID))
		}
	}
	return res, err
}

func (s *checkoutService) checkout(ctx context.Context, uid int64, req domain.CheckoutRequest) (domain.CheckoutResult, error) {
	addr, lines, err := s.prepare(ctx, uid, req)
	if err != nil {
		return domain.CheckoutResult{}, err
	}
	quote := s.pricing.Quote(priceLines(lines))
	order := s.assembler.Assemble(uid, addr, lines, quote, req.BuyerRemark)

	order, err = s.createOrder(ctx, order, cartItemIDs(lines))
	if err != nil {
		return domain.CheckoutResult{}, err
	}
	s.logger.Info("创建订单成功",
		elog.String("order_sn", order.SN),
		elog.Int64("uid", uid),
		elog.String("mode", string(req.Selection.Mode())),
		elog.String("pay_amount", order.PayAmount.StringFixed(2)))
	s.sendEvent(ctx, event.OrderEventTypeCreated, order)

	return domain.CheckoutResult{
		OrderSN:     order.SN,
		TotalAmount: order.TotalAmount,
		PayAmount:   order.PayAmount,
		ExpiresIn:   int64(s.cfg.PaymentWindow / time.Second),
	}, nil
}

// prepare 依次解析收货地址、购买行, 再校验每一行的 SKU、商品与库存
func (s *checkoutService) prepare(ctx context.Context, uid int64, req domain.CheckoutRequest) (domain.AddressSnapshot, []domain.ValidatedLine, error) {
	addr, err := s.addresses.Resolve(ctx, uid, req.AddressID)
	if err != nil {
		return domain.AddressSnapshot{}, nil, err
	}
	lines, err := s.lines(ctx, uid, req.Selection)
	if err != nil {
		return domain.AddressSnapshot{}, nil, err
	}
	validated, err := s.validate(ctx, lines)
	if err != nil {
		return domain.AddressSnapshot{}, nil, err
	}
	return addr, validated, nil
}

func (s *checkoutService) lines(ctx context.Context, uid int64, sel domain.Selection) ([]domain.CheckoutLine, error) {
	switch sel := sel.(type) {
	case domain.BuyNow:
		return []domain.CheckoutLine{{SKUID: sel.SKUID, Quantity: sel.Quantity}}, nil
	case domain.FromCart:
		return s.cartLines(ctx, uid, sel.CartItemIDs)
	default:
		return nil, fmt.Errorf("%w: 未选择商品", ErrCartItemNotFound)
	}
}

// cartLines 只保留属于当前用户的购物车记录, 按请求中的顺序返回
func (s *checkoutService) cartLines(ctx context.Context, uid int64, ids []int64) ([]domain.CheckoutLine, error) {
	ordered := make([]int64, 0, len(ids))
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok || id <= 0 {
			continue
		}
		seen[id] = struct{}{}
		ordered = append(ordered, id)
	}
	if len(ordered) == 0 {
		return nil, fmt.Errorf("%w: 未选择购物车商品", ErrCartItemNotFound)
	}
	items, err := s.catalog.FindCartItems(ctx, uid, ordered)
	if err != nil {
		return nil, fmt.Errorf("查找购物车记录失败: %w", err)
	}
	found := make(map[int64]domain.CartItem, len(items))
	for _, item := range items {
		found[item.ID] = item
	}
	res := make([]domain.CheckoutLine, 0, len(items))
	for _, id := range ordered {
		item, ok := found[id]
		if !ok {
			continue
		}
		res = append(res, domain.CheckoutLine{
			CartItemID: item.ID,
			SKUID:      item.SKUID,
			Quantity:   item.Quantity,
		})
	}
	if len(res) == 0 {
		return nil, fmt.Errorf("%w: cart_item_ids = %v", ErrCartItemNotFound, ordered)
	}
	return res, nil
}

// validate 并发校验, 但总是返回请求顺序中第一个失败行的错误
func (s *checkoutService) validate(ctx context.Context, lines []domain.CheckoutLine) ([]domain.ValidatedLine, error) {
	res := make([]domain.ValidatedLine, len(lines))
	lineErrs := make([]error, len(lines))
	var eg errgroup.Group
	eg.SetLimit(s.cfg.Concurrency)
	for i := range lines {
		i := i
		eg.Go(func() error {
			res[i], lineErrs[i] = s.validateLine(ctx, lines[i])
			return nil
		})
	}
	_ = eg.Wait()
	for _, err := range lineErrs {
		if err != nil {
			return nil, err
		}
	}

	// 同一个 SKU 出现在多行时, 按合计数量校验库存
	demand := make(map[int64]int64, len(res))
	for _, l := range res {
		demand[l.SKUID] += l.Quantity
	}
	for _, l := range res {
		if err := s.validator.Validate(l.SKU, demand[l.SKUID]); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (s *checkoutService) validateLine(ctx context.Context, line domain.CheckoutLine) (domain.ValidatedLine, error) {
	sku, err := s.skus.ResolveSKU(ctx, line.SKUID)
	if err != nil {
		return domain.ValidatedLine{}, err
	}
	product, err := s.skus.ResolveProduct(ctx, sku.ProductID)
	if err != nil {
		return domain.ValidatedLine{}, err
	}
	if err = s.validator.Validate(sku, line.Quantity); err != nil {
		return domain.ValidatedLine{}, err
	}
	return domain.ValidatedLine{
		CheckoutLine: line,
		SKU:          sku,
		Product:      product,
	}, nil
}

func (s *checkoutService) createOrder(ctx context.Context, order domain.Order, cartIDs []int64) (domain.Order, error) {
	for attempt := 1; ; attempt++ {
		order.SN = s.snGen.Next()
		created, err := s.repo.CreateOrder(ctx, order, cartIDs)
		switch {
		case err == nil:
			return created, nil
		case errors.Is(err, repository.ErrDuplicateOrderSN) && attempt < maxSNAttempts:
			s.logger.Warn("订单序列号冲突, 重新生成",
				elog.String("order_sn", order.SN),
				elog.Int64("uid", order.BuyerID))
		case errors.Is(err, repository.ErrDuplicateOrderSN):
			return domain.Order{}, fmt.Errorf("%w: %w", ErrOrderCreationFailed, err)
		case errors.Is(err, repository.ErrCartItemChanged):
			return domain.Order{}, fmt.Errorf("%w: %w", ErrCartItemNotFound, err)
		case errors.Is(err, ErrInsufficientStock), errors.Is(err, ErrOrderCreationFailed):
			return domain.Order{}, err
		default:
			return domain.Order{}, fmt.Errorf("保存订单失败: %w", err)
		}
	}
}

func (s *checkoutService) sendEvent(ctx context.Context, typ event.OrderEventType, order domain.Order) {
	if err := s.producer.Produce(ctx, newOrderEvent(typ, order)); err != nil {
		s.logger.Error("发送订单事件失败",
			elog.FieldErr(err),
			elog.String("type", string(typ)),
			elog.String("order_sn", order.SN))
	}
}

func newOrderEvent(typ event.OrderEventType, order domain.Order) event.OrderEvent {
	return event.OrderEvent{
		Type:      typ,
		OrderSN:   order.SN,
		BuyerID:   order.BuyerID,
		PayAmount: order.PayAmount.StringFixed(2),
		Status:    order.Status.ToUint8(),
		Ctime:     time.Now().UnixMilli(),
	}
}

func priceLines(lines []domain.ValidatedLine) []domain.PriceLine {
	res := make([]domain.PriceLine, 0, len(lines))
	for _, l := range lines {
		res = append(res, domain.PriceLine{Price: l.SKU.Price, Quantity: l.Quantity})
	}
	return res
}

func cartItemIDs(lines []domain.ValidatedLine) []int64 {
	var res []int64
	for _, l := range lines {
		if l.CartItemID > 0 {
			res = append(res, l.CartItemID)
		}
	}
	return res
}
