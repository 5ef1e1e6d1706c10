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

	"github.com/ecodeclub/emall/internal/order/internal/domain"
	"github.com/ecodeclub/emall/internal/order/internal/event"
	"github.com/ecodeclub/emall/internal/order/internal/repository"
	"github.com/ecodeclub/emall/internal/order/internal/repository/cache"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrAddressNotFound     = errors.New("收货地址不存在")
	ErrCartItemNotFound    = errors.New("购物车记录不存在")
	ErrSKUNotFound         = errors.New("SKU不存在或已下架")
	ErrProductNotFound     = errors.New("商品不存在或已下架")
	ErrInvalidQuantity     = errors.New("购买数量非法")
	ErrInsufficientStock   = repository.ErrInsufficientStock
	ErrOrderCreationFailed = repository.ErrOrderCreationFailed
	ErrDuplicateRequest    = cache.ErrDuplicateRequest
	ErrOrderNotFound       = errors.New("订单不存在")
	ErrOrderStatusInvalid  = errors.New("订单状态非法")
)

//go:generate mockgen -source=./service.go -package=ordermocks -destination=../../mocks/order.mock.go Service
type Service interface {
	FindOrder(ctx context.Context, sn string, buyerID int64) (domain.Order, error)
	ListOrders(ctx context.Context, buyerID int64, offset, limit int) ([]domain.Order, int64, error)
	// CancelOrder 买家取消待支付订单, 归还库存
	CancelOrder(ctx context.Context, buyerID int64, sn string) error
	// MarkOrderPaid 收到支付成功通知后, 待支付订单进入待发货
	MarkOrderPaid(ctx context.Context, buyerID int64, sn string, method domain.PaymentMethod) error
	FindExpiredOrders(ctx context.Context, ctime int64, offset, limit int) ([]domain.Order, int64, error)
	// CloseExpiredOrders 关闭超时未支付的订单, 返回实际关闭的数量
	CloseExpiredOrders(ctx context.Context, orders []domain.Order) (int, error)
}

type service struct {
	repo     repository.OrderRepository
	producer event.OrderEventProducer
	logger   *elog.Component
}

func NewService(repo repository.OrderRepository, producer event.OrderEventProducer) Service {
	return &service{
		repo:     repo,
		producer: producer,
		logger:   elog.DefaultLogger,
	}
}

func (s *service) FindOrder(ctx context.Context, sn string, buyerID int64) (domain.Order, error) {
	order, err := s.repo.FindOrderBySNAndBuyerID(ctx, sn, buyerID)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.Order{}, fmt.Errorf("%w: order_sn = %s", ErrOrderNotFound, sn)
	}
	return order, err
}

func (s *service) ListOrders(ctx context.Context, buyerID int64, offset, limit int) ([]domain.Order, int64, error) {
	var (
		eg     errgroup.Group
		orders []domain.Order
		total  int64
	)
	eg.Go(func() error {
		var err error
		orders, err = s.repo.ListOrdersByBuyerID(ctx, buyerID, offset, limit)
		return err
	})

	eg.Go(func() error {
		var err error
		total, err = s.repo.TotalOrders(ctx, buyerID)
		return err
	})
	return orders, total, eg.Wait()
}

func (s *service) CancelOrder(ctx context.Context, buyerID int64, sn string) error {
	order, err := s.FindOrder(ctx, sn, buyerID)
	if err != nil {
		return err
	}
	if order.Status != domain.StatusAwaitingPayment {
		return fmt.Errorf("%w: order_sn = %s, status = %d", ErrOrderStatusInvalid, sn, order.Status)
	}
	if err = s.repo.CancelOrder(ctx, order); err != nil {
		if errors.Is(err, repository.ErrOrderStatusChanged) {
			return fmt.Errorf("%w: %w", ErrOrderStatusInvalid, err)
		}
		return err
	}
	order.Status = domain.StatusCancelled
	s.sendClosedEvent(ctx, order)
	return nil
}

func (s *service) MarkOrderPaid(ctx context.Context, buyerID int64, sn string, method domain.PaymentMethod) error {
	err := s.repo.MarkOrderPaid(ctx, buyerID, sn, method)
	if errors.Is(err, repository.ErrOrderStatusChanged) {
		return fmt.Errorf("%w: %w", ErrOrderStatusInvalid, err)
	}
	return err
}

func (s *service) FindExpiredOrders(ctx context.Context, ctime int64, offset, limit int) ([]domain.Order, int64, error) {
	var (
		eg     errgroup.Group
		orders []domain.Order
		total  int64
	)
	eg.Go(func() error {
		var err error
		orders, err = s.repo.ListExpiredOrders(ctx, ctime, offset, limit)
		return err
	})

	eg.Go(func() error {
		var err error
		total, err = s.repo.TotalExpiredOrders(ctx, ctime)
		return err
	})
	return orders, total, eg.Wait()
}

func (s *service) CloseExpiredOrders(ctx context.Context, orders []domain.Order) (int, error) {
	closed := 0
	for _, order := range orders {
		err := s.repo.CancelOrder(ctx, order)
		if errors.Is(err, repository.ErrOrderStatusChanged) {
			// 用户已支付或已取消
			continue
		}
		if err != nil {
			return closed, fmt.Errorf("关闭过期订单失败 order_sn = %s: %w", order.SN, err)
		}
		closed++
		order.Status = domain.StatusCancelled
		s.sendClosedEvent(ctx, order)
	}
	return closed, nil
}

func (s *service) sendClosedEvent(ctx context.Context, order domain.Order) {
	if err := s.producer.Produce(ctx, newOrderEvent(event.OrderEventTypeClosed, order)); err != nil {
		s.logger.Error("发送订单关闭事件失败",
			elog.FieldErr(err),
			elog.String("order_sn", order.SN))
	}
}
