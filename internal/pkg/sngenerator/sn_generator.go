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
	"errors"
	"fmt"

	"github.com/bwmarrin/snowflake"
)

// MaxNode 10 位节点号
const MaxNode int64 = 1<<10 - 1

var ErrExceedNode = errors.New("node超出限制")

// Generator 生成订单序列号
//
//go:generate mockgen -source=./sn_generator.go -package=sngmocks -destination=./mocks/sn_generator.mock.go Generator
type Generator interface {
	Next() string
}

// SnowflakeGenerator 41 位毫秒时间戳 + 10 位节点号 + 12 位毫秒内序列号,
// 不同节点号的实例之间生成的序列号不会重复, 同一实例内单调递增
type SnowflakeGenerator struct {
	node *snowflake.Node
}

func NewSnowflakeGenerator(nodeID int64) (*SnowflakeGenerator, error) {
	if nodeID < 0 || nodeID > MaxNode {
		return nil, fmt.Errorf("%w: node = %d", ErrExceedNode, nodeID)
	}
	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, err
	}
	return &SnowflakeGenerator{node: n}, nil
}

func (g *SnowflakeGenerator) Next() string {
	return g.node.Generate().String()
}
