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

package mqx

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type testEvent struct {
	SN     string `json:"sn"`
	Amount string `json:"amount"`
}

func TestTraceMq(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr)))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	const topic = "trace_test_events"
	mem := memory.NewMQ()
	require.NoError(t, mem.CreateTopic(ctx, topic, 1))
	q := NewTraceMq(mem)

	consumer, err := q.Consumer(topic, "trace_test")
	require.NoError(t, err)
	producer, err := NewGeneralProducer[testEvent](q, topic, WithKeyFunc(func(evt testEvent) string {
		return evt.SN
	}))
	require.NoError(t, err)

	want := testEvent{SN: "sn-1", Amount: "9.90"}
	require.NoError(t, producer.Produce(ctx, want))

	msg, err := consumer.Consume(ctx)
	require.NoError(t, err)
	var got testEvent
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	assert.Equal(t, want, got)

	spans := sr.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, topic+" publish", spans[0].Name())
	assert.Equal(t, topic+" receive", spans[1].Name())
}
