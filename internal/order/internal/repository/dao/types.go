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
	"database/sql"

	"github.com/shopspring/decimal"
)

const (
	AddressStatusActive  uint8 = 1
	AddressStatusDeleted uint8 = 2
)

type Order struct {
	Id                 int64           `gorm:"primaryKey;autoIncrement;comment:订单自增ID"`
	SN                 string          `gorm:"column:order_sn;type:varchar(64);not null;uniqueIndex:uniq_order_sn;comment:订单序列号"`
	UserId             int64           `gorm:"not null;index:idx_user_id_ctime,priority:1;comment:购买者ID"`
	TotalAmount        decimal.Decimal `gorm:"type:decimal(10,2);not null;comment:商品总价"`
	DiscountAmount     decimal.Decimal `gorm:"type:decimal(10,2);not null;comment:优惠金额"`
	ShippingFee        decimal.Decimal `gorm:"type:decimal(10,2);not null;comment:运费"`
	PayAmount          decimal.Decimal `gorm:"type:decimal(10,2);not null;comment:实付金额"`
	ReceiverName       string          `gorm:"type:varchar(64);not null;comment:收货人"`
	ReceiverPhone      string          `gorm:"type:varchar(32);not null;comment:收货人电话"`
	ReceiverProvince   string          `gorm:"type:varchar(64);not null"`
	ReceiverCity       string          `gorm:"type:varchar(64);not null"`
	ReceiverDistrict   string          `gorm:"type:varchar(64);not null"`
	ReceiverDetail     string          `gorm:"type:varchar(255);not null"`
	ReceiverPostalCode string          `gorm:"type:varchar(16);not null"`
	Status             uint8           `gorm:"type:tinyint unsigned;not null;default:0;index:idx_status_ctime,priority:1;comment:订单状态 0=待支付 1=待发货 2=待收货 3=已完成 4=已取消 5=退款中 6=退款成功 7=退款失败"`
	PaymentMethod      uint8           `gorm:"type:tinyint unsigned;not null;default:0;comment:支付方式 0=未支付"`
	BuyerRemark        string          `gorm:"type:varchar(512);not null;default:'';comment:买家备注"`
	Ctime              int64           `gorm:"index:idx_user_id_ctime,priority:2;index:idx_status_ctime,priority:2"`
	Utime              int64
}

func (Order) TableName() string {
	return "order"
}

type OrderItem struct {
	Id              int64           `gorm:"primaryKey;autoIncrement;comment:订单项自增ID"`
	OrderId         int64           `gorm:"not null;index:idx_order_id;comment:订单自增ID"`
	SkuId           int64           `gorm:"not null;index:idx_sku_id;comment:SKU自增ID"`
	ProductName     string          `gorm:"type:varchar(255);not null;comment:商品名称快照"`
	SkuSpecs        string          `gorm:"type:varchar(1024);not null;comment:SKU规格快照,JSON格式"`
	MainImage       string          `gorm:"type:varchar(512);not null;comment:商品主图快照"`
	Price           decimal.Decimal `gorm:"type:decimal(10,2);not null;comment:单价快照"`
	Quantity        int64           `gorm:"not null;comment:购买数量"`
	TotalPrice      decimal.Decimal `gorm:"type:decimal(10,2);not null;comment:小计"`
	AfterSaleStatus uint8           `gorm:"type:tinyint unsigned;not null;default:0;comment:售后状态 0=无"`
	Ctime           int64
	Utime           int64
}

func (OrderItem) TableName() string {
	return "order_item"
}

type Product struct {
	Id         int64          `gorm:"primaryKey;autoIncrement;comment:商品自增ID"`
	Name       string         `gorm:"type:varchar(255);not null;comment:商品名称"`
	MainImages sql.NullString `gorm:"comment:商品主图,JSON数组,有序"`
	IsActive   bool           `gorm:"not null;default:true;comment:是否上架"`
	Ctime      int64
	Utime      int64
}

func (Product) TableName() string {
	return "product"
}

type ProductSKU struct {
	Id        int64           `gorm:"primaryKey;autoIncrement;comment:SKU自增ID"`
	ProductId int64           `gorm:"not null;index:idx_product_id;comment:商品ID"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null;comment:价格"`
	Stock     int64           `gorm:"not null;default:0;comment:库存数量,不能为负数"`
	OS        string          `gorm:"column:os;type:varchar(64);not null;default:''"`
	CPU       string          `gorm:"column:cpu;type:varchar(64);not null;default:''"`
	RAM       string          `gorm:"column:ram;type:varchar(64);not null;default:''"`
	Storage   string          `gorm:"type:varchar(64);not null;default:''"`
	GPU       string          `gorm:"column:gpu;type:varchar(64);not null;default:''"`
	Screen    string          `gorm:"type:varchar(64);not null;default:''"`
	Color     string          `gorm:"type:varchar(64);not null;default:''"`
	IsActive  bool            `gorm:"not null;default:true;comment:是否可售"`
	Ctime     int64
	Utime     int64
}

func (ProductSKU) TableName() string {
	return "product_sku"
}

type UserAddress struct {
	Id         int64  `gorm:"primaryKey;autoIncrement;comment:地址自增ID"`
	UserId     int64  `gorm:"not null;index:idx_user_id;comment:用户ID"`
	Name       string `gorm:"type:varchar(64);not null"`
	Phone      string `gorm:"type:varchar(32);not null"`
	Province   string `gorm:"type:varchar(64);not null"`
	City       string `gorm:"type:varchar(64);not null"`
	District   string `gorm:"type:varchar(64);not null"`
	Detail     string `gorm:"type:varchar(255);not null"`
	PostalCode string `gorm:"type:varchar(16);not null;default:''"`
	IsDefault  bool   `gorm:"not null;default:false"`
	Status     uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:状态 1=正常 2=已删除"`
	Ctime      int64
	Utime      int64
}

func (UserAddress) TableName() string {
	return "user_address"
}

type ShoppingCart struct {
	Id       int64 `gorm:"primaryKey;autoIncrement;comment:购物车自增ID"`
	UserId   int64 `gorm:"not null;index:idx_user_id;comment:用户ID"`
	SkuId    int64 `gorm:"not null;comment:SKU自增ID"`
	Quantity int64 `gorm:"not null;comment:数量"`
	Selected bool  `gorm:"not null;default:true"`
	Ctime    int64
	Utime    int64
}

func (ShoppingCart) TableName() string {
	return "shopping_cart"
}
