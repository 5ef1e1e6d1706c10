//go:build wireinject

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

package order

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/emall/config"
	"github.com/ecodeclub/emall/internal/order/internal/consumer"
	"github.com/ecodeclub/emall/internal/order/internal/domain"
	"github.com/ecodeclub/emall/internal/order/internal/event"
	"github.com/ecodeclub/emall/internal/order/internal/job"
	"github.com/ecodeclub/emall/internal/order/internal/repository"
	"github.com/ecodeclub/emall/internal/order/internal/repository/cache"
	"github.com/ecodeclub/emall/internal/order/internal/repository/dao"
	"github.com/ecodeclub/emall/internal/order/internal/service"
	"github.com/ecodeclub/emall/internal/order/internal/web"
	"github.com/ecodeclub/emall/internal/pkg/sngenerator"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var ServiceSet = wire.NewSet(
	InitTablesOnce,
	dao.NewCatalogGORMDAO,
	repository.NewOrderRepository,
	repository.NewCatalogRepository,
	cache.NewRequestECache,
	event.NewOrderEventProducer,
	service.NewService,
)

var CheckoutSet = wire.NewSet(
	initSNGenerator,
	initPricingEngine,
	initCheckoutConfig,
	service.NewAddressResolver,
	service.NewSKUResolver,
	service.NewStockValidator,
	service.NewOrderAssembler,
	service.NewCheckoutService,
)

func InitModule(db *egorm.Component, ec ecache.Cache, q mq.MQ, cfg config.OrderConfig) (*Module, error) {
	wire.Build(
		ServiceSet,
		CheckoutSet,
		web.NewHandler,
		initCloseExpiredOrdersJob,
		consumer.NewPaymentEventConsumer,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.OrderDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewOrderGORMDAO(db)
}

func initSNGenerator(cfg config.OrderConfig) (sngenerator.Generator, error) {
	return sngenerator.NewSnowflakeGenerator(cfg.Node)
}

func initPricingEngine(cfg config.OrderConfig) (domain.PricingEngine, error) {
	threshold, fee, err := cfg.Pricing.Amounts(domain.DefaultFreeShippingThreshold, domain.DefaultFlatShippingFee)
	if err != nil {
		return domain.PricingEngine{}, err
	}
	return domain.NewPricingEngine(threshold, fee, domain.NoDiscount{}), nil
}

func initCheckoutConfig(cfg config.OrderConfig) service.CheckoutConfig {
	return service.CheckoutConfig{
		PaymentWindow: cfg.PaymentWindow,
		Concurrency:   cfg.Concurrency,
	}
}

func initCloseExpiredOrdersJob(svc service.Service, cfg config.OrderConfig) *job.CloseExpiredOrdersJob {
	window := cfg.PaymentWindow
	if window <= 0 {
		window = service.DefaultPaymentWindow
	}
	return job.NewCloseExpiredOrdersJob(svc, cfg.CloseJob.Limit, window, cfg.CloseJob.Timeout)
}
