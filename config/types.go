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

package config

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// OrderConfig 对应配置文件中的 order 节点
type OrderConfig struct {
	// Node 订单序列号的节点号, 多实例部署时每个实例必须不同
	Node          int64         `yaml:"node"`
	PaymentWindow time.Duration `yaml:"paymentWindow"`
	// Concurrency 并发校验购买行的上限
	Concurrency int            `yaml:"concurrency"`
	Pricing     PricingConfig  `yaml:"pricing"`
	CloseJob    CloseJobConfig `yaml:"closeJob"`
}

type PricingConfig struct {
	FreeShippingThreshold string `yaml:"freeShippingThreshold"`
	FlatShippingFee       string `yaml:"flatShippingFee"`
}

// Amounts 金额配置为空时使用默认值
func (p PricingConfig) Amounts(defThreshold, defFee decimal.Decimal) (threshold, fee decimal.Decimal, err error) {
	threshold, fee = defThreshold, defFee
	if p.FreeShippingThreshold != "" {
		threshold, err = decimal.NewFromString(p.FreeShippingThreshold)
		if err != nil {
			return decimal.Zero, decimal.Zero, fmt.Errorf("包邮门槛非法: %w", err)
		}
	}
	if p.FlatShippingFee != "" {
		fee, err = decimal.NewFromString(p.FlatShippingFee)
		if err != nil {
			return decimal.Zero, decimal.Zero, fmt.Errorf("运费非法: %w", err)
		}
	}
	if threshold.IsNegative() || fee.IsNegative() {
		return decimal.Zero, decimal.Zero, fmt.Errorf("包邮门槛和运费不能为负数: threshold = %s, fee = %s", threshold, fee)
	}
	return threshold, fee, nil
}

type CloseJobConfig struct {
	// Limit 每批关闭的订单数
	Limit   int           `yaml:"limit"`
	Timeout time.Duration `yaml:"timeout"`
}
