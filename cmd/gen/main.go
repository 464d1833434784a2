package main

import (
	"bazaar/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.CategoryModel{},
		model.BrandModel{},
		model.ProductModel{},
		model.ProductImageModel{},
		model.ReviewModel{},
		model.ShopModel{},
		model.ShopImageModel{},
		model.ShopReviewModel{},
		model.ChatRoomModel{},
		model.MessageModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
