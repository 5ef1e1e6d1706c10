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

package dao

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockGORM(t *testing.T, mockDB *sql.DB) *gorm.DB {
	db, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn: mockDB,
		// 如果为 false ，则GORM在初始化时，会先调用 show version
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db
}

func TestOrderGORMDAO_CreateOrder(t *testing.T) {
	order := Order{
		SN:          "1790000000000000001",
		UserId:      123,
		TotalAmount: decimal.RequireFromString("80.00"),
		ShippingFee: decimal.RequireFromString("10.00"),
		PayAmount:   decimal.RequireFromString("90.00"),
	}
	newItems := func() []OrderItem {
		return []OrderItem{
			{SkuId: 2, Price: decimal.RequireFromString("50.00"), Quantity: 1, TotalPrice: decimal.RequireFromString("50.00")},
			{SkuId: 1, Price: decimal.RequireFromString("30.00"), Quantity: 1, TotalPrice: decimal.RequireFromString("30.00")},
		}
	}
	deductions := []StockDeduction{{SkuId: 2, Quantity: 1}, {SkuId: 1, Quantity: 1}}

	testCases := []struct {
		name        string
		mock        func(t *testing.T) *sql.DB
		cartItemIDs []int64

		wantID  int64
		wantErr error
	}{
		{
			name: "下单成功并删除购物车",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				// 按 SKU ID 升序扣减
				mock.ExpectExec("UPDATE `product_sku` SET .*").
					WithArgs(int64(1), sqlmock.AnyArg(), int64(1), true, int64(1)).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("UPDATE `product_sku` SET .*").
					WithArgs(int64(1), sqlmock.AnyArg(), int64(2), true, int64(1)).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("INSERT INTO `order` .*").
					WillReturnResult(sqlmock.NewResult(10, 1))
				mock.ExpectExec("INSERT INTO `order_item` .*").
					WillReturnResult(sqlmock.NewResult(20, 2))
				mock.ExpectExec("DELETE FROM `shopping_cart` .*").
					WillReturnResult(sqlmock.NewResult(0, 2))
				mock.ExpectCommit()
				return mockDB
			},
			cartItemIDs: []int64{7, 8},
			wantID:      10,
		},
		{
			name: "立即购买不删除购物车",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE `product_sku` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("UPDATE `product_sku` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("INSERT INTO `order` .*").
					WillReturnResult(sqlmock.NewResult(11, 1))
				mock.ExpectExec("INSERT INTO `order_item` .*").
					WillReturnResult(sqlmock.NewResult(30, 2))
				mock.ExpectCommit()
				return mockDB
			},
			wantID: 11,
		},
		{
			name: "库存不足回滚",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE `product_sku` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("UPDATE `product_sku` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectRollback()
				return mockDB
			},
			cartItemIDs: []int64{7, 8},
			wantErr:     ErrInsufficientStock,
		},
		{
			name: "订单序列号冲突",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE `product_sku` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("UPDATE `product_sku` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("INSERT INTO `order` .*").
					WillReturnError(&mysql.MySQLError{Number: 1062})
				mock.ExpectRollback()
				return mockDB
			},
			wantErr: ErrDuplicateOrderSN,
		},
		{
			name: "订单项写入行数不符回滚",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE `product_sku` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("UPDATE `product_sku` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("INSERT INTO `order` .*").
					WillReturnResult(sqlmock.NewResult(12, 1))
				mock.ExpectExec("INSERT INTO `order_item` .*").
					WillReturnResult(sqlmock.NewResult(40, 1))
				mock.ExpectRollback()
				return mockDB
			},
			wantErr: ErrOrderCreationFailed,
		},
		{
			name: "订单写入零行回滚",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE `product_sku` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("UPDATE `product_sku` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("INSERT INTO `order` .*").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectRollback()
				return mockDB
			},
			wantErr: ErrOrderCreationFailed,
		},
		{
			name: "购物车被并发删除回滚",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE `product_sku` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("UPDATE `product_sku` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("INSERT INTO `order` .*").
					WillReturnResult(sqlmock.NewResult(13, 1))
				mock.ExpectExec("INSERT INTO `order_item` .*").
					WillReturnResult(sqlmock.NewResult(50, 2))
				mock.ExpectExec("DELETE FROM `shopping_cart` .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectRollback()
				return mockDB
			},
			cartItemIDs: []int64{7, 8},
			wantErr:     ErrCartItemChanged,
		},
		{
			name: "数据库错误",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE `product_sku` SET .*").
					WillReturnError(errors.New("mock db error"))
				mock.ExpectRollback()
				return mockDB
			},
			wantErr: errors.New("mock db error"),
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			d := NewOrderGORMDAO(newMockGORM(t, tc.mock(t)))
			id, err := d.CreateOrder(context.Background(), order, newItems(), deductions, tc.cartItemIDs)
			if tc.wantErr != nil {
				require.Error(t, err)
				if errors.Is(err, tc.wantErr) {
					return
				}
				assert.ErrorContains(t, err, tc.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantID, id)
		})
	}
}

func TestOrderGORMDAO_CancelOrder(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(t *testing.T) *sql.DB
		wantErr error
	}{
		{
			name: "取消成功并归还库存",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE `order` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				rows := sqlmock.NewRows([]string{"id", "order_id", "sku_id", "quantity"}).
					AddRow(1, 10, 1, 2).
					AddRow(2, 10, 2, 1)
				mock.ExpectQuery("SELECT \\* FROM `order_item` WHERE order_id = \\?.*").
					WillReturnRows(rows)
				mock.ExpectExec("UPDATE `product_sku` SET .*").
					WithArgs(int64(2), sqlmock.AnyArg(), int64(1)).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("UPDATE `product_sku` SET .*").
					WithArgs(int64(1), sqlmock.AnyArg(), int64(2)).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
				return mockDB
			},
		},
		{
			name: "订单状态已变化",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE `order` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectRollback()
				return mockDB
			},
			wantErr: ErrOrderStatusChanged,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			d := NewOrderGORMDAO(newMockGORM(t, tc.mock(t)))
			err := d.CancelOrder(context.Background(), 123, 10)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestOrderGORMDAO_MarkOrderPaid(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(t *testing.T) *sql.DB
		wantErr error
	}{
		{
			name: "支付成功",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("UPDATE `order` SET .*").
					WithArgs(uint8(1), uint8(1), sqlmock.AnyArg(), "sn-1", int64(123), uint8(0)).
					WillReturnResult(sqlmock.NewResult(0, 1))
				return mockDB
			},
		},
		{
			name: "订单已关闭",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("UPDATE `order` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 0))
				return mockDB
			},
			wantErr: ErrOrderStatusChanged,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			d := NewOrderGORMDAO(newMockGORM(t, tc.mock(t)))
			err := d.MarkOrderPaid(context.Background(), 123, "sn-1", 1)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
