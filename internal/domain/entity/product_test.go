package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProduct_RecalculateDiscount(t *testing.T) {
	price := func(v float64) *float64 { return &v }

	tests := []struct {
		name          string
		price         float64
		originalPrice *float64
		expected      int
	}{
		{
			name:          "twenty percent off",
			price:         800,
			originalPrice: price(1000),
			expected:      20,
		},
		{
			name:          "fractional discount truncates",
			price:         666,
			originalPrice: price(999),
			expected:      33,
		},
		{
			name:          "no original price",
			price:         500,
			originalPrice: nil,
			expected:      0,
		},
		{
			name:          "original equals price",
			price:         500,
			originalPrice: price(500),
			expected:      0,
		},
		{
			name:          "original below price",
			price:         500,
			originalPrice: price(400),
			expected:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product := &Product{Price: tt.price, OriginalPrice: tt.originalPrice}
			product.RecalculateDiscount()

			assert.Equal(t, tt.expected, product.DiscountPercentage)
		})
	}
}

func TestProduct_RecalculateDiscount_ResetsStaleValue(t *testing.T) {
	product := &Product{Price: 500, DiscountPercentage: 40}
	product.RecalculateDiscount()

	assert.Equal(t, 0, product.DiscountPercentage)
}

func TestProduct_AverageRating(t *testing.T) {
	product := &Product{}
	assert.Equal(t, 0.0, product.AverageRating())

	product.Reviews = []*Review{
		{Rating: 5},
		{Rating: 4},
		{Rating: 3},
	}
	assert.InDelta(t, 4.0, product.AverageRating(), 0.0001)

	product.Reviews = append(product.Reviews, &Review{Rating: 4})
	assert.InDelta(t, 4.0, product.AverageRating(), 0.0001)
}

func TestShop_AverageRating(t *testing.T) {
	shop := &Shop{}
	assert.Equal(t, 0.0, shop.AverageRating())

	shop.Reviews = []*ShopReview{
		{Rating: 2},
		{Rating: 5},
	}
	assert.InDelta(t, 3.5, shop.AverageRating(), 0.0001)
}
