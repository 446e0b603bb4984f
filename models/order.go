package models

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order is a sale. An empty PatientID means a walk-in customer. ProductName
// and TotalAmount are snapshots taken when the order is saved; a later price
// change on the product never rewrites them.
type Order struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	PatientID   string             `json:"patientId,omitempty" bson:"patientId,omitempty"`
	ProductID   string             `json:"productId" bson:"productId"`
	Quantity    int                `json:"quantity" bson:"quantity"`
	Discount    float64            `json:"discount" bson:"discount"`
	OrderDate   string             `json:"orderDate" bson:"orderDate"`
	ProductName string             `json:"productName,omitempty" bson:"productName,omitempty"`
	TotalAmount float64            `json:"totalAmount" bson:"totalAmount"`
	CreatedAt   int64              `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	CreatedBy   string             `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	UpdatedAt   int64              `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
	UpdatedBy   string             `json:"updatedBy,omitempty" bson:"updatedBy,omitempty"`
}

func (o Order) Validate() error {
	if o.ProductID == "" {
		return errors.New("productId is required")
	}
	if o.Quantity < 1 {
		return errors.New("quantity must be at least 1")
	}
	if o.Discount < 0 {
		return errors.New("discount must not be negative")
	}
	if o.OrderDate == "" {
		return errors.New("orderDate is required")
	}
	if _, err := time.Parse(DateLayout, o.OrderDate); err != nil {
		return errors.New("orderDate must be a valid date in YYYY-MM-DD form")
	}
	return nil
}
