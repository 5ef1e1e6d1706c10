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

package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/emall/internal/order/internal/domain"
	"github.com/ecodeclub/emall/internal/order/internal/event"
	"github.com/ecodeclub/emall/internal/order/internal/service"
	ordermocks "github.com/ecodeclub/emall/internal/order/mocks"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPaymentEventConsumer_Consume(t *testing.T) {
	testCases := []struct {
		name    string
		evt     event.PaymentEvent
		before  func(ctrl *gomock.Controller) service.Service
		wantErr error
	}{
		{
			name: "支付成功",
			evt:  event.PaymentEvent{OrderSN: "sn-1", BuyerID: 123, PaymentMethod: 1, Status: event.PaymentStatusPaid},
			before: func(ctrl *gomock.Controller) service.Service {
				svc := ordermocks.NewMockService(ctrl)
				svc.EXPECT().MarkOrderPaid(gomock.Any(), int64(123), "sn-1", domain.PaymentMethod(1)).Return(nil)
				return svc
			},
		},
		{
			name: "非支付成功的通知忽略",
			evt:  event.PaymentEvent{OrderSN: "sn-1", BuyerID: 123, Status: 2},
			before: func(ctrl *gomock.Controller) service.Service {
				return ordermocks.NewMockService(ctrl)
			},
		},
		{
			name: "重复通知",
			evt:  event.PaymentEvent{OrderSN: "sn-1", BuyerID: 123, PaymentMethod: 1, Status: event.PaymentStatusPaid},
			before: func(ctrl *gomock.Controller) service.Service {
				svc := ordermocks.NewMockService(ctrl)
				svc.EXPECT().MarkOrderPaid(gomock.Any(), int64(123), "sn-1", domain.PaymentMethod(1)).
					Return(service.ErrOrderStatusInvalid)
				return svc
			},
		},
		{
			name: "数据库错误",
			evt:  event.PaymentEvent{OrderSN: "sn-1", BuyerID: 123, PaymentMethod: 1, Status: event.PaymentStatusPaid},
			before: func(ctrl *gomock.Controller) service.Service {
				svc := ordermocks.NewMockService(ctrl)
				svc.EXPECT().MarkOrderPaid(gomock.Any(), int64(123), "sn-1", domain.PaymentMethod(1)).
					Return(errors.New("mock db error"))
				return svc
			},
			wantErr: errors.New("mock db error"),
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			q := memory.NewMQ()
			require.NoError(t, q.CreateTopic(ctx, event.PaymentEventName, 1))
			c, err := NewPaymentEventConsumer(tc.before(ctrl), q)
			require.NoError(t, err)

			producer, err := q.Producer(event.PaymentEventName)
			require.NoError(t, err)
			data, err := json.Marshal(tc.evt)
			require.NoError(t, err)
			_, err = producer.Produce(ctx, &mq.Message{Value: data})
			require.NoError(t, err)

			err = c.Consume(ctx)
			if tc.wantErr != nil {
				assert.ErrorContains(t, err, tc.wantErr.Error())
				return
			}
			assert.NoError(t, err)
		})
	}
}
