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

package domain

import "github.com/shopspring/decimal"

type AddressSnapshot struct {
	ID         int64
	UserID     int64
	Name       string
	Phone      string
	Province   string
	City       string
	District   string
	Detail     string
	PostalCode string
}

func (a AddressSnapshot) Receiver() Receiver {
	return Receiver{
		Name:       a.Name,
		Phone:      a.Phone,
		Province:   a.Province,
		City:       a.City,
		District:   a.District,
		Detail:     a.Detail,
		PostalCode: a.PostalCode,
	}
}

type ProductSnapshot struct {
	ID         int64
	Name       string
	MainImages []string
}

type SKUSnapshot struct {
	ID        int64
	ProductID int64
	Price     decimal.Decimal
	Stock     int64
	Attrs     SKUAttrs
}

// SKUAttrs SKU 的描述性属性
type SKUAttrs struct {
	OS      string
	CPU     string
	RAM     string
	Storage string
	GPU     string
	Screen  string
	Color   string
}

// Specs 只保留非空属性
func (a SKUAttrs) Specs() map[string]string {
	pairs := []struct {
		key string
		val string
	}{
		{key: "os", val: a.OS},
		{key: "cpu", val: a.CPU},
		{key: "ram", val: a.RAM},
		{key: "storage", val: a.Storage},
		{key: "gpu", val: a.GPU},
		{key: "screen", val: a.Screen},
		{key: "color", val: a.Color},
	}
	res := make(map[string]string, len(pairs))
	for _, p := range pairs {
		if p.val != "" {
			res[p.key] = p.val
		}
	}
	return res
}

type CartItem struct {
	ID       int64
	UserID   int64
	SKUID    int64
	Quantity int64
	Selected bool
}
