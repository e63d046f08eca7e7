package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartItemPriceCoercion(t *testing.T) {
	tests := []struct {
		name string
		body string
		want float64
	}{
		{name: "обычное число", body: `{"id":"starter","price":19}`, want: 19},
		{name: "дробное число", body: `{"price":19.5}`, want: 19.5},
		{name: "числовая строка разбирается", body: `{"price":"12"}`, want: 12},
		{name: "отсутствующая цена — ноль", body: `{"id":"starter"}`, want: 0},
		{name: "нечисловая строка — ноль", body: `{"price":"abc"}`, want: 0},
		{name: "null — ноль", body: `{"price":null}`, want: 0},
		{name: "объект — ноль", body: `{"price":{"amount":5}}`, want: 0},
		{name: "отрицательная цена принимается как есть", body: `{"price":-7}`, want: -7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var item CartItem
			require.NoError(t, json.Unmarshal([]byte(tt.body), &item))
			assert.Equal(t, tt.want, float64(item.Price))
		})
	}
}

func TestUserPublicExcludesPassword(t *testing.T) {
	user := User{Name: "QA", Email: "qa@x.com", Password: "pw1", Role: "member"}
	data, err := json.Marshal(user.Public())
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"QA","email":"qa@x.com","role":"member"}`, string(data))
}
