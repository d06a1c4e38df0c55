package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Watch represents a catalog watch as stored in the "watch" collection.
// The name field is the natural key used for upsert matching during seeding.
type Watch struct {
	ID              primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	Name            string             `json:"name" bson:"name" validate:"required"`
	Brand           string             `json:"brand" bson:"brand" validate:"required"`
	Description     *string            `json:"description,omitempty" bson:"description,omitempty"`
	Price           float64            `json:"price" bson:"price" validate:"gte=0"`
	Currency        string             `json:"currency" bson:"currency"`
	Images          []string           `json:"images" bson:"images" validate:"dive,url"`
	Thumbnail       *string            `json:"thumbnail,omitempty" bson:"thumbnail,omitempty" validate:"omitempty,url"`
	Movement        *string            `json:"movement,omitempty" bson:"movement,omitempty"`
	Case            *string            `json:"case,omitempty" bson:"case,omitempty"`
	Strap           *string            `json:"strap,omitempty" bson:"strap,omitempty"`
	WaterResistance *string            `json:"water_resistance,omitempty" bson:"water_resistance,omitempty"`
	PowerReserve    *string            `json:"power_reserve,omitempty" bson:"power_reserve,omitempty"`
	Complications   []string           `json:"complications" bson:"complications"`
	Featured        bool               `json:"featured" bson:"featured"`
	// Stored as a pointer so a document missing the field defaults to
	// in stock rather than out of stock.
	InStock *bool    `json:"in_stock,omitempty" bson:"in_stock,omitempty"`
	Rating  *float64 `json:"rating,omitempty" bson:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
}

// WatchOut is the public projection of a Watch returned by the API.
type WatchOut struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Brand           string   `json:"brand"`
	Description     *string  `json:"description,omitempty"`
	Price           float64  `json:"price"`
	Currency        string   `json:"currency"`
	Images          []string `json:"images"`
	Thumbnail       *string  `json:"thumbnail,omitempty"`
	Movement        *string  `json:"movement,omitempty"`
	Case            *string  `json:"case,omitempty"`
	Strap           *string  `json:"strap,omitempty"`
	WaterResistance *string  `json:"water_resistance,omitempty"`
	PowerReserve    *string  `json:"power_reserve,omitempty"`
	Complications   []string `json:"complications"`
	Featured        bool     `json:"featured"`
	InStock         bool     `json:"in_stock"`
	Rating          *float64 `json:"rating,omitempty"`
}

// ToOut projects a stored Watch into its public output shape.
// Missing required fields take type-appropriate defaults (price 0.0,
// currency "USD", in_stock true) so partially-malformed legacy documents
// still project instead of failing.
func (w Watch) ToOut() WatchOut {
	out := WatchOut{
		ID:              w.ID.Hex(),
		Name:            w.Name,
		Brand:           w.Brand,
		Description:     w.Description,
		Price:           w.Price,
		Currency:        w.Currency,
		Images:          w.Images,
		Thumbnail:       w.Thumbnail,
		Movement:        w.Movement,
		Case:            w.Case,
		Strap:           w.Strap,
		WaterResistance: w.WaterResistance,
		PowerReserve:    w.PowerReserve,
		Complications:   w.Complications,
		Featured:        w.Featured,
		InStock:         true,
		Rating:          w.Rating,
	}
	if out.Currency == "" {
		out.Currency = "USD"
	}
	if w.InStock != nil {
		out.InStock = *w.InStock
	}
	if out.Images == nil {
		out.Images = []string{}
	}
	if out.Complications == nil {
		out.Complications = []string{}
	}
	return out
}
