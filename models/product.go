package models

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Brand     string             `json:"brand,omitempty" bson:"brand,omitempty"`
	Model     string             `json:"model,omitempty" bson:"model,omitempty"`
	Category  string             `json:"category,omitempty" bson:"category,omitempty"`
	Price     float64            `json:"price" bson:"price"`
	Stock     int                `json:"stock" bson:"stock"`
	CreatedAt int64              `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	CreatedBy string             `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	UpdatedAt int64              `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
	UpdatedBy string             `json:"updatedBy,omitempty" bson:"updatedBy,omitempty"`
}

// Validate checks the writable shape of a product. Negative stock is not
// rejected here; it only trips the low-stock flag on the dashboard.
func (p Product) Validate() error {
	if p.Name == "" {
		return errors.New("name is required")
	}
	if p.Price < 0 {
		return errors.New("price must not be negative")
	}
	return nil
}
