package models

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	Slug               string    `json:"slug"`
	CategoryID         uuid.UUID `json:"category_id"`
	CategoryName       string    `json:"category_name,omitempty"`
	CategorySlug       string    `json:"category_slug,omitempty"`
	Price1Month        int64     `json:"price_1month"`
	Price2Month        int64     `json:"price_2month"`
	Price3Month        int64     `json:"price_3month"`
	Price              *int64    `json:"price,omitempty"` // tier selected by ?duration=, unset on raw listings
	ImageURL           *string   `json:"image_url"`
	Description        *string   `json:"description"`
	Specifications     *string   `json:"specifications"`
	KeyFeatures        *string   `json:"key_features"`
	YoutubeURL         *string   `json:"youtube_url"`
	SEOMetaTitle       *string   `json:"seo_meta_title"`
	SEOMetaDescription *string   `json:"seo_meta_description"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// ProductSearchResult is the reduced projection returned by product search.
type ProductSearchResult struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	CategoryName string    `json:"category_name"`
	CategorySlug string    `json:"category_slug"`
	Price1Month  int64     `json:"price_1month"`
	ImageURL     *string   `json:"image_url"`
	YoutubeURL   *string   `json:"youtube_url"`
}

type CreateProductRequest struct {
	Name               string  `json:"name" validate:"required,max=200"`
	Slug               string  `json:"slug" validate:"required,slug,max=200"`
	CategoryID         string  `json:"category_id" validate:"required,uuid"`
	Price1Month        *int64  `json:"price_1month,omitempty" validate:"omitempty,gte=0"`
	Price2Month        *int64  `json:"price_2month,omitempty" validate:"omitempty,gte=0"`
	Price3Month        *int64  `json:"price_3month,omitempty" validate:"omitempty,gte=0"`
	ImageURL           *string `json:"image_url,omitempty" validate:"omitempty,max=2048"`
	Description        *string `json:"description,omitempty"`
	Specifications     *string `json:"specifications,omitempty"`
	KeyFeatures        *string `json:"key_features,omitempty"`
	YoutubeURL         *string `json:"youtube_url,omitempty" validate:"omitempty,max=2048"`
	SEOMetaTitle       *string `json:"seo_meta_title,omitempty" validate:"omitempty,max=255"`
	SEOMetaDescription *string `json:"seo_meta_description,omitempty"`
}

type UpdateProductRequest struct {
	Name               *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Slug               *string `json:"slug,omitempty" validate:"omitempty,slug,max=200"`
	CategoryID         *string `json:"category_id,omitempty" validate:"omitempty,uuid"`
	Price1Month        *int64  `json:"price_1month,omitempty" validate:"omitempty,gte=0"`
	Price2Month        *int64  `json:"price_2month,omitempty" validate:"omitempty,gte=0"`
	Price3Month        *int64  `json:"price_3month,omitempty" validate:"omitempty,gte=0"`
	ImageURL           *string `json:"image_url,omitempty" validate:"omitempty,max=2048"`
	Description        *string `json:"description,omitempty"`
	Specifications     *string `json:"specifications,omitempty"`
	KeyFeatures        *string `json:"key_features,omitempty"`
	YoutubeURL         *string `json:"youtube_url,omitempty" validate:"omitempty,max=2048"`
	SEOMetaTitle       *string `json:"seo_meta_title,omitempty" validate:"omitempty,max=255"`
	SEOMetaDescription *string `json:"seo_meta_description,omitempty"`
}
