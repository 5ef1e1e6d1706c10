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
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPricingConfig_Amounts(t *testing.T) {
	defThreshold, defFee := decimal.RequireFromString("99"), decimal.RequireFromString("10")
	testCases := []struct {
		name          string
		cfg           PricingConfig
		wantThreshold string
		wantFee       string
		wantErr       bool
	}{
		{
			name:          "使用默认值",
			wantThreshold: "99.00",
			wantFee:       "10.00",
		},
		{
			name:          "覆盖默认值",
			cfg:           PricingConfig{FreeShippingThreshold: "199", FlatShippingFee: "0"},
			wantThreshold: "199.00",
			wantFee:       "0.00",
		},
		{
			name:    "金额格式非法",
			cfg:     PricingConfig{FlatShippingFee: "ten"},
			wantErr: true,
		},
		{
			name:    "运费为负数",
			cfg:     PricingConfig{FlatShippingFee: "-1"},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			threshold, fee, err := tc.cfg.Amounts(defThreshold, defFee)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantThreshold, threshold.StringFixed(2))
			assert.Equal(t, tc.wantFee, fee.StringFixed(2))
		})
	}
}
