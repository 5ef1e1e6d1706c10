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

package job

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/emall/internal/order/internal/service"
	"github.com/gotomicro/ego/core/elog"
)

// CloseExpiredOrdersJob 关闭超过支付窗口仍未支付的订单并归还库存
type CloseExpiredOrdersJob struct {
	svc           service.Service
	limit         int
	paymentWindow time.Duration
	timeout       time.Duration
	logger        *elog.Component
}

const (
	defaultLimit   = 100
	defaultTimeout = 30 * time.Second
)

func NewCloseExpiredOrdersJob(svc service.Service, limit int, paymentWindow, timeout time.Duration) *CloseExpiredOrdersJob {
	if limit <= 0 {
		limit = defaultLimit
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &CloseExpiredOrdersJob{
		svc:           svc,
		limit:         limit,
		paymentWindow: paymentWindow,
		timeout:       timeout,
		logger:        elog.DefaultLogger,
	}
}

func (c *CloseExpiredOrdersJob) Name() string {
	return "CloseExpiredOrdersJob"
}

func (c *CloseExpiredOrdersJob) Run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	// 冗余10秒
	ctime := time.Now().Add(-c.paymentWindow - 10*time.Second).UnixMilli()

	total := 0
	for {
		// 关闭后的订单不会再被查出来, 所以总是从 0 开始
		orders, _, err := c.svc.FindExpiredOrders(ctx, ctime, 0, c.limit)
		if err != nil {
			return fmt.Errorf("获取过期订单失败: %w", err)
		}
		if len(orders) == 0 {
			break
		}

		closed, err := c.svc.CloseExpiredOrders(ctx, orders)
		total += closed
		if err != nil {
			return fmt.Errorf("关闭过期订单失败: %w", err)
		}
		if len(orders) < c.limit || closed == 0 {
			break
		}
	}
	c.logger.Info("关闭过期订单", elog.Int("closed", total))
	return nil
}
