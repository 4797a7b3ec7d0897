package fakers

import (
	"fmt"
	"math/rand"

	"github.com/fitfinder/fitfinder/app/models"
	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
)

var productColors = []string{"Black", "White", "Navy", "Olive", "Burgundy"}

func BrandFaker() *models.Brand {
	name := faker.LastName() + " & Co"
	return &models.Brand{
		ID:      uuid.New().String(),
		Name:    name,
		Slug:    slug.Make(name + "-" + uuid.NewString()[:6]),
		Website: "https://" + faker.DomainName(),
	}
}

func CategoryFaker(name string) *models.Category {
	return &models.Category{
		ID:   uuid.New().String(),
		Name: name,
		Slug: slug.Make(name),
	}
}

// ProductFaker builds a product with images and per-color/size variants of
// the given size type.
func ProductFaker(brand *models.Brand, category *models.Category, sizeType string) *models.Product {
	name := faker.Word() + " " + faker.Word()
	productID := uuid.New().String()

	originalPrice := decimal.NewFromInt(int64(rand.Intn(180) + 20))
	currentPrice := originalPrice
	if rand.Intn(3) == 0 {
		currentPrice = originalPrice.Mul(decimal.NewFromFloat(0.8)).Round(2)
	}

	numImages := rand.Intn(3) + 1
	images := make([]models.ProductImage, numImages)
	for i := 0; i < numImages; i++ {
		images[i] = models.ProductImage{
			ID:        uuid.New().String(),
			ProductID: productID,
			Image:     fmt.Sprintf("/images/products/%s-%d.jpg", slug.Make(name), i),
			AltText:   name,
			SortOrder: i,
		}
	}

	sizes := sizesForType(sizeType)
	colors := productColors[:rand.Intn(3)+1]
	variants := make([]models.ProductVariant, 0, len(sizes)*len(colors))
	for _, color := range colors {
		for _, size := range sizes {
			variants = append(variants, models.ProductVariant{
				ID:            uuid.New().String(),
				ProductID:     productID,
				Color:         color,
				Size:          size,
				SizeType:      sizeType,
				StockQuantity: rand.Intn(20),
				IsAvailable:   true,
			})
		}
	}

	return &models.Product{
		ID:            productID,
		Name:          name,
		Slug:          slug.Make(name + "-" + uuid.NewString()[:6]),
		Description:   faker.Paragraph(),
		BrandID:       brand.ID,
		CategoryID:    category.ID,
		OriginalPrice: originalPrice,
		CurrentPrice:  currentPrice,
		MainImage:     images[0].Image,
		IsActive:      true,
		Images:        images,
		Variants:      variants,
	}
}

func sizesForType(sizeType string) []string {
	switch sizeType {
	case models.SizeTypeShoe:
		return []string{"8", "8.5", "9", "9.5", "10", "11"}
	case models.SizeTypeAccessory:
		return []string{"One Size"}
	default:
		return models.ShirtSizes
	}
}
