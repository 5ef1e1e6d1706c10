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

package database

import (
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

const (
	instrumentationName = "github.com/ecodeclub/emall/internal/pkg/database"
	spanKey             = "tracing:span"
)

// GormTracingPlugin 为每一条 SQL 创建一个 span, 下单事务内的扣库存、写订单、删购物车各自一个 span
type GormTracingPlugin struct {
	tracer trace.Tracer
}

func NewGormTracingPlugin() *GormTracingPlugin {
	return &GormTracingPlugin{
		tracer: otel.GetTracerProvider().Tracer(instrumentationName),
	}
}

func (p *GormTracingPlugin) Name() string {
	return "GormTracingPlugin"
}

// registrar gorm 回调的注册入口
type registrar interface {
	Register(name string, fn func(*gorm.DB)) error
}

func (p *GormTracingPlugin) Initialize(db *gorm.DB) error {
	cb := db.Callback()
	callbacks := []struct {
		op     string
		before registrar
		after  registrar
		// 查询操作的 gorm.ErrRecordNotFound 不算错误
		ignoreNotFound bool
	}{
		{op: "query", before: cb.Query().Before("gorm:query"), after: cb.Query().After("gorm:query"), ignoreNotFound: true},
		{op: "create", before: cb.Create().Before("gorm:create"), after: cb.Create().After("gorm:create")},
		{op: "update", before: cb.Update().Before("gorm:update"), after: cb.Update().After("gorm:update")},
		{op: "delete", before: cb.Delete().Before("gorm:delete"), after: cb.Delete().After("gorm:delete")},
		{op: "raw", before: cb.Raw().Before("gorm:raw"), after: cb.Raw().After("gorm:raw")},
	}
	for _, c := range callbacks {
		if err := c.before.Register("tracing:before_"+c.op, p.before(c.op)); err != nil {
			return err
		}
		if err := c.after.Register("tracing:after_"+c.op, p.after(c.ignoreNotFound)); err != nil {
			return err
		}
	}
	return nil
}

func (p *GormTracingPlugin) before(op string) func(db *gorm.DB) {
	return func(db *gorm.DB) {
		name := "gorm." + op
		if db.Statement.Table != "" {
			name = db.Statement.Table + " " + op
		}
		ctx, span := p.tracer.Start(db.Statement.Context, name, trace.WithSpanKind(trace.SpanKindClient))
		db.Statement.Context = ctx
		db.InstanceSet(spanKey, span)
	}
}

func (p *GormTracingPlugin) after(ignoreNotFound bool) func(db *gorm.DB) {
	return func(db *gorm.DB) {
		val, ok := db.InstanceGet(spanKey)
		if !ok {
			return
		}
		span, ok := val.(trace.Span)
		if !ok {
			return
		}
		defer span.End()

		attrs := []attribute.KeyValue{
			attribute.String("db.system", db.Dialector.Name()),
			attribute.String("db.statement", db.Statement.SQL.String()),
			attribute.Int64("db.rows_affected", db.Statement.RowsAffected),
		}
		if db.Statement.Table != "" {
			attrs = append(attrs, attribute.String("db.table", db.Statement.Table))
		}
		span.SetAttributes(attrs...)

		if db.Error == nil || (ignoreNotFound && errors.Is(db.Error, gorm.ErrRecordNotFound)) {
			span.SetStatus(codes.Ok, "")
			return
		}
		span.RecordError(db.Error)
		span.SetStatus(codes.Error, db.Error.Error())
	}
}
