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

package sngenerator

import (
	"strconv"
	"sync"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSnowflakeGenerator(t *testing.T) {
	testCases := []struct {
		name        string
		nodeID      int64
		wantErrFunc require.ErrorAssertionFunc
	}{
		{
			name:        "最小节点号",
			nodeID:      0,
			wantErrFunc: require.NoError,
		},
		{
			name:        "最大节点号",
			nodeID:      MaxNode,
			wantErrFunc: require.NoError,
		},
		{
			name:   "节点号超出限制",
			nodeID: MaxNode + 1,
			wantErrFunc: func(t require.TestingT, err error, _ ...interface{}) {
				require.ErrorIs(t, err, ErrExceedNode)
			},
		},
		{
			name:   "负数节点号",
			nodeID: -1,
			wantErrFunc: func(t require.TestingT, err error, _ ...interface{}) {
				require.ErrorIs(t, err, ErrExceedNode)
			},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewSnowflakeGenerator(tc.nodeID)
			tc.wantErrFunc(t, err)
		})
	}
}

func TestSnowflakeGenerator_Next(t *testing.T) {
	g, err := NewSnowflakeGenerator(7)
	require.NoError(t, err)

	const goroutines, perGoroutine = 8, 5000
	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		sns = make(map[string]struct{}, goroutines*perGoroutine)
	)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]string, 0, perGoroutine)
			for j := 0; j < perGoroutine; j++ {
				local = append(local, g.Next())
			}
			mu.Lock()
			defer mu.Unlock()
			for _, sn := range local {
				sns[sn] = struct{}{}
			}
		}()
	}
	wg.Wait()
	assert.Len(t, sns, goroutines*perGoroutine)

	sn := g.Next()
	id, err := snowflake.ParseString(sn)
	require.NoError(t, err)
	assert.Equal(t, int64(7), id.Node())
}

func TestSnowflakeGenerator_Monotonic(t *testing.T) {
	g, err := NewSnowflakeGenerator(1)
	require.NoError(t, err)
	prev := int64(0)
	for i := 0; i < 10000; i++ {
		cur, err := strconv.ParseInt(g.Next(), 10, 64)
		require.NoError(t, err)
		assert.Greater(t, cur, prev)
		prev = cur
	}
}
