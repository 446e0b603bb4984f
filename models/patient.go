package models

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
)

type Patient struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Phone       string             `json:"phone" bson:"phone"`
	DateOfBirth string             `json:"dob" bson:"dob"`
	Gender      string             `json:"gender" bson:"gender"`
	Notes       string             `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt   int64              `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	CreatedBy   string             `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	UpdatedAt   int64              `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
	UpdatedBy   string             `json:"updatedBy,omitempty" bson:"updatedBy,omitempty"`
}

func (p Patient) Validate() error {
	if p.Name == "" {
		return errors.New("name is required")
	}
	if p.Phone == "" {
		return errors.New("phone is required")
	}
	if p.DateOfBirth != "" {
		if _, err := time.Parse(DateLayout, p.DateOfBirth); err != nil {
			return errors.New("dob must be a valid date in YYYY-MM-DD form")
		}
	}
	if p.Gender != "" && p.Gender != GenderMale && p.Gender != GenderFemale {
		return errors.New("gender must be male or female")
	}
	return nil
}
