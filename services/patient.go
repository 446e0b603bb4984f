package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"OptiCare360/analytics"
	"OptiCare360/models"
	"OptiCare360/store"
)

type PatientService struct {
	Store   *store.Store
	Gateway Mutator
}

// PatientView decorates a patient with the derived age for the profile
// table. Age is always computed from dob, never stored.
type PatientView struct {
	models.Patient
	Age int `json:"age"`
}

/*
* Stamp the acting operator
* Write through to the remote store via the gateway
* The record store catches up on the next snapshot
 */
func (s PatientService) Save(c *gin.Context, patient models.Patient, existingID string) (string, error) {
	actor := c.GetString("actor")
	if existingID != "" {
		patient.UpdatedBy = actor
	} else {
		patient.CreatedBy = actor
	}
	id, err := s.Gateway.Save(c.Request.Context(), models.PatientCollection, patient, existingID)
	if err != nil {
		log.Println("Error from the gateway while saving patient:", err)
		return "", err
	}
	return id, nil
}

func (s PatientService) Fetch(id string) (models.Patient, error) {
	patient, ok := s.Store.FindPatient(id)
	if !ok {
		return models.Patient{}, errors.New("patient not found")
	}
	return patient, nil
}

func (s PatientService) FetchAll() []PatientView {
	return s.views(s.Store.Patients())
}

// Search matches the name or phone substring the front desk typed in.
func (s PatientService) Search(term string) []PatientView {
	patients := s.Store.Patients()
	if term == "" {
		return s.views(patients)
	}
	var out []models.Patient
	for _, p := range patients {
		if strings.Contains(p.Name, term) || strings.Contains(p.Phone, term) {
			out = append(out, p)
		}
	}
	return s.views(out)
}

func (s PatientService) views(patients []models.Patient) []PatientView {
	today := time.Now()
	views := make([]PatientView, 0, len(patients))
	for _, p := range patients {
		views = append(views, PatientView{Patient: p, Age: analytics.Age(p.DateOfBirth, today)})
	}
	return views
}

func (s PatientService) RequestDelete(id string) (string, error) {
	return s.Gateway.RequestDelete(models.PatientCollection, id)
}

func (s PatientService) ConfirmDelete(c *gin.Context, token string) error {
	return s.Gateway.ConfirmDelete(c.Request.Context(), token)
}
