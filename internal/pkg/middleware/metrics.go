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

package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsBuilder 统计每个路由的请求耗时和正在处理的请求数
type MetricsBuilder struct {
	durationVec *prometheus.HistogramVec
	activeReqs  *prometheus.GaugeVec
}

// NewMetricsBuilder reg 为 nil 时注册到 prometheus.DefaultRegisterer
func NewMetricsBuilder(namespace string, reg prometheus.Registerer) *MetricsBuilder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &MetricsBuilder{
		durationVec: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP 请求耗时",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		}, []string{"method", "path", "status_code"}),
		activeReqs: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "active_requests",
			Help:      "正在处理的 HTTP 请求数",
		}, []string{"method", "path"}),
	}
}

func (b *MetricsBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		method := ctx.Request.Method
		path := ctx.FullPath()
		if path == "" {
			// 未匹配到路由
			path = "unknown"
		}
		active := b.activeReqs.WithLabelValues(method, path)
		active.Inc()
		start := time.Now()
		defer func() {
			active.Dec()
			status := strconv.Itoa(ctx.Writer.Status())
			b.durationVec.WithLabelValues(method, path, status).Observe(time.Since(start).Seconds())
		}()
		ctx.Next()
	}
}
