package models

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ExamTypeStandard      = "standard"
	ExamTypeMyopiaControl = "myopia-control"
)

// EyeReading holds the refraction measurements for a single eye. Every field
// is optional; the clinic fills in whatever the instruments produced.
type EyeReading struct {
	Sphere       string `json:"sphere,omitempty" bson:"sphere,omitempty"`
	Cylinder     string `json:"cylinder,omitempty" bson:"cylinder,omitempty"`
	Axis         string `json:"axis,omitempty" bson:"axis,omitempty"`
	AxialLength  string `json:"axialLength,omitempty" bson:"axialLength,omitempty"`
	K1           string `json:"k1,omitempty" bson:"k1,omitempty"`
	K2           string `json:"k2,omitempty" bson:"k2,omitempty"`
	VisualAcuity string `json:"va,omitempty" bson:"va,omitempty"`
	Addition     string `json:"add,omitempty" bson:"add,omitempty"`
	PD           string `json:"pd,omitempty" bson:"pd,omitempty"`
}

// Exam is one clinical refraction record. PatientID may point at a patient
// that has since been deleted; lookups treat that as "unknown".
type Exam struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	PatientID string             `json:"patientId" bson:"patientId"`
	ExamDate  string             `json:"examDate" bson:"examDate"`
	ExamType  string             `json:"examType" bson:"examType"`
	OD        EyeReading         `json:"od" bson:"od"`
	OS        EyeReading         `json:"os" bson:"os"`
	Notes     string             `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt int64              `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	CreatedBy string             `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	UpdatedAt int64              `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
	UpdatedBy string             `json:"updatedBy,omitempty" bson:"updatedBy,omitempty"`
}

func (e Exam) Validate() error {
	if e.ExamDate == "" {
		return errors.New("examDate is required")
	}
	if _, err := time.Parse(DateLayout, e.ExamDate); err != nil {
		return errors.New("examDate must be a valid date in YYYY-MM-DD form")
	}
	if e.ExamType != ExamTypeStandard && e.ExamType != ExamTypeMyopiaControl {
		return errors.New("examType must be standard or myopia-control")
	}
	return nil
}
