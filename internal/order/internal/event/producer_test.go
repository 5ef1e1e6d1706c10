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

package event

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderEventProducer_Produce(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(ctx, OrderEventName, 1))
	consumer, err := q.Consumer(OrderEventName, "order_test")
	require.NoError(t, err)

	producer, err := NewOrderEventProducer(q)
	require.NoError(t, err)

	want := OrderEvent{
		Type:      OrderEventTypeCreated,
		OrderSN:   "1790000000000000001",
		BuyerID:   123,
		PayAmount: "90.00",
		Ctime:     1715000000000,
	}
	require.NoError(t, producer.Produce(ctx, want))

	msg, err := consumer.Consume(ctx)
	require.NoError(t, err)
	var got OrderEvent
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	assert.Equal(t, want, got)
	assert.Equal(t, []byte(want.OrderSN), msg.Key)
}
