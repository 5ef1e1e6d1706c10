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

package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/pkg/errors"
)

const requestExpiration = 30 * time.Minute

var ErrDuplicateRequest = errors.New("重复请求")

// RequestCache 下单请求去重
//
//go:generate mockgen -source=./request.go -package=cachemocks -destination=./mocks/request.mock.go RequestCache
type RequestCache interface {
	// Acquire 占用请求ID, 已被占用时返回 ErrDuplicateRequest
	Acquire(ctx context.Context, uid int64, requestID string) error
	// Release 下单失败后释放请求ID, 允许客户端重试
	Release(ctx context.Context, uid int64, requestID string) error
}

type requestECache struct {
	ec         ecache.Cache
	expiration time.Duration
}

func NewRequestECache(ec ecache.Cache) RequestCache {
	return &requestECache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "order:",
		},
		expiration: requestExpiration,
	}
}

func (r *requestECache) Acquire(ctx context.Context, uid int64, requestID string) error {
	ok, err := r.ec.SetNX(ctx, r.key(uid, requestID), requestID, r.expiration)
	if err != nil {
		return errors.Wrap(err, "缓存请求ID失败")
	}
	if !ok {
		return ErrDuplicateRequest
	}
	return nil
}

func (r *requestECache) Release(ctx context.Context, uid int64, requestID string) error {
	_, err := r.ec.Delete(ctx, r.key(uid, requestID))
	return errors.Wrap(err, "释放请求ID失败")
}

func (r *requestECache) key(uid int64, requestID string) string {
	return fmt.Sprintf("checkout:%d:%s", uid, requestID)
}
