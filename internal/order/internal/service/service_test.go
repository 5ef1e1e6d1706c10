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
	"testing"

	"github.com/ecodeclub/emall/internal/order/internal/domain"
	"github.com/ecodeclub/emall/internal/order/internal/event"
	evtmocks "github.com/ecodeclub/emall/internal/order/internal/event/mocks"
	"github.com/ecodeclub/emall/internal/order/internal/repository"
	repomocks "github.com/ecodeclub/emall/internal/order/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_CancelOrder(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		before  func(t *testing.T, ctrl *gomock.Controller) (repository.OrderRepository, event.OrderEventProducer)
		wantErr error
	}{
		{
			name: "取消成功",
			before: func(t *testing.T, ctrl *gomock.Controller) (repository.OrderRepository, event.OrderEventProducer) {
				repo := repomocks.NewMockOrderRepository(ctrl)
				producer := evtmocks.NewMockOrderEventProducer(ctrl)
				order := domain.Order{ID: 1, SN: "sn-1", BuyerID: testUID, Status: domain.StatusAwaitingPayment}
				repo.EXPECT().FindOrderBySNAndBuyerID(gomock.Any(), "sn-1", testUID).Return(order, nil)
				repo.EXPECT().CancelOrder(gomock.Any(), order).Return(nil)
				producer.EXPECT().Produce(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, evt event.OrderEvent) error {
						assert.Equal(t, event.OrderEventTypeClosed, evt.Type)
						assert.Equal(t, domain.StatusCancelled.ToUint8(), evt.Status)
						return nil
					})
				return repo, producer
			},
		},
		{
			name: "订单不存在",
			before: func(t *testing.T, ctrl *gomock.Controller) (repository.OrderRepository, event.OrderEventProducer) {
				repo := repomocks.NewMockOrderRepository(ctrl)
				repo.EXPECT().FindOrderBySNAndBuyerID(gomock.Any(), "sn-1", testUID).
					Return(domain.Order{}, repository.ErrRecordNotFound)
				return repo, evtmocks.NewMockOrderEventProducer(ctrl)
			},
			wantErr: ErrOrderNotFound,
		},
		{
			name: "订单已支付",
			before: func(t *testing.T, ctrl *gomock.Controller) (repository.OrderRepository, event.OrderEventProducer) {
				repo := repomocks.NewMockOrderRepository(ctrl)
				repo.EXPECT().FindOrderBySNAndBuyerID(gomock.Any(), "sn-1", testUID).
					Return(domain.Order{ID: 1, SN: "sn-1", BuyerID: testUID, Status: domain.StatusAwaitingShipment}, nil)
				return repo, evtmocks.NewMockOrderEventProducer(ctrl)
			},
			wantErr: ErrOrderStatusInvalid,
		},
		{
			name: "取消时订单状态被并发修改",
			before: func(t *testing.T, ctrl *gomock.Controller) (repository.OrderRepository, event.OrderEventProducer) {
				repo := repomocks.NewMockOrderRepository(ctrl)
				order := domain.Order{ID: 1, SN: "sn-1", BuyerID: testUID, Status: domain.StatusAwaitingPayment}
				repo.EXPECT().FindOrderBySNAndBuyerID(gomock.Any(), "sn-1", testUID).Return(order, nil)
				repo.EXPECT().CancelOrder(gomock.Any(), order).Return(repository.ErrOrderStatusChanged)
				return repo, evtmocks.NewMockOrderEventProducer(ctrl)
			},
			wantErr: ErrOrderStatusInvalid,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewService(tc.before(t, ctrl))
			err := svc.CancelOrder(context.Background(), testUID, "sn-1")
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestService_CloseExpiredOrders(t *testing.T) {
	t.Parallel()

	orders := []domain.Order{
		{ID: 1, SN: "sn-1", BuyerID: 1},
		{ID: 2, SN: "sn-2", BuyerID: 2},
		{ID: 3, SN: "sn-3", BuyerID: 3},
	}

	testCases := []struct {
		name       string
		before     func(t *testing.T, ctrl *gomock.Controller) (repository.OrderRepository, event.OrderEventProducer)
		wantClosed int
		wantErr    error
	}{
		{
			name: "跳过已支付的订单",
			before: func(t *testing.T, ctrl *gomock.Controller) (repository.OrderRepository, event.OrderEventProducer) {
				repo := repomocks.NewMockOrderRepository(ctrl)
				producer := evtmocks.NewMockOrderEventProducer(ctrl)
				repo.EXPECT().CancelOrder(gomock.Any(), orders[0]).Return(nil)
				repo.EXPECT().CancelOrder(gomock.Any(), orders[1]).Return(repository.ErrOrderStatusChanged)
				repo.EXPECT().CancelOrder(gomock.Any(), orders[2]).Return(nil)
				producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil).Times(2)
				return repo, producer
			},
			wantClosed: 2,
		},
		{
			name: "数据库错误",
			before: func(t *testing.T, ctrl *gomock.Controller) (repository.OrderRepository, event.OrderEventProducer) {
				repo := repomocks.NewMockOrderRepository(ctrl)
				producer := evtmocks.NewMockOrderEventProducer(ctrl)
				repo.EXPECT().CancelOrder(gomock.Any(), orders[0]).Return(nil)
				repo.EXPECT().CancelOrder(gomock.Any(), orders[1]).Return(errors.New("mock db error"))
				producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
				return repo, producer
			},
			wantClosed: 1,
			wantErr:    errors.New("mock db error"),
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewService(tc.before(t, ctrl))
			closed, err := svc.CloseExpiredOrders(context.Background(), orders)
			assert.Equal(t, tc.wantClosed, closed)
			if tc.wantErr != nil {
				assert.ErrorContains(t, err, tc.wantErr.Error())
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestService_MarkOrderPaid(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repomocks.NewMockOrderRepository(ctrl)
	gomock.InOrder(
		repo.EXPECT().MarkOrderPaid(gomock.Any(), testUID, "sn-1", domain.PaymentMethod(1)).Return(nil),
		repo.EXPECT().MarkOrderPaid(gomock.Any(), testUID, "sn-1", domain.PaymentMethod(1)).
			Return(repository.ErrOrderStatusChanged),
	)
	svc := NewService(repo, evtmocks.NewMockOrderEventProducer(ctrl))

	require.NoError(t, svc.MarkOrderPaid(context.Background(), testUID, "sn-1", 1))
	// 重复通知
	assert.ErrorIs(t, svc.MarkOrderPaid(context.Background(), testUID, "sn-1", 1), ErrOrderStatusInvalid)
}

func TestService_ListOrders(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repomocks.NewMockOrderRepository(ctrl)
	want := []domain.Order{{ID: 2, SN: "sn-2"}, {ID: 1, SN: "sn-1"}}
	repo.EXPECT().ListOrdersByBuyerID(gomock.Any(), testUID, 0, 10).Return(want, nil)
	repo.EXPECT().TotalOrders(gomock.Any(), testUID).Return(int64(2), nil)

	svc := NewService(repo, evtmocks.NewMockOrderEventProducer(ctrl))
	orders, total, err := svc.ListOrders(context.Background(), testUID, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, want, orders)
	assert.Equal(t, int64(2), total)
}
