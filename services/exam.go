package services

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"OptiCare360/analytics"
	"OptiCare360/models"
	"OptiCare360/store"
)

type ExamService struct {
	Store   *store.Store
	Gateway Mutator
}

// ExamView decorates an exam with the resolved patient name for the clinical
// records table. Dangling patient references render as the unknown sentinel.
type ExamView struct {
	models.Exam
	PatientName string `json:"patientName"`
}

func (s ExamService) Save(c *gin.Context, exam models.Exam, existingID string) (string, error) {
	actor := c.GetString("actor")
	if existingID != "" {
		exam.UpdatedBy = actor
	} else {
		exam.CreatedBy = actor
	}
	id, err := s.Gateway.Save(c.Request.Context(), models.ExamCollection, exam, existingID)
	if err != nil {
		log.Println("Error from the gateway while saving exam:", err)
		return "", err
	}
	return id, nil
}

func (s ExamService) Fetch(id string) (models.Exam, error) {
	exam, ok := s.Store.FindExam(id)
	if !ok {
		return models.Exam{}, errors.New("exam not found")
	}
	return exam, nil
}

func (s ExamService) FetchAll() []ExamView {
	patients := s.Store.Patients()
	names := make(map[string]string, len(patients))
	for _, p := range patients {
		names[p.ID.Hex()] = p.Name
	}

	exams := s.Store.Exams()
	views := make([]ExamView, 0, len(exams))
	for _, e := range exams {
		name, ok := names[e.PatientID]
		if !ok || name == "" {
			name = analytics.UnknownName
		}
		views = append(views, ExamView{Exam: e, PatientName: name})
	}
	return views
}

func (s ExamService) RequestDelete(id string) (string, error) {
	return s.Gateway.RequestDelete(models.ExamCollection, id)
}

func (s ExamService) ConfirmDelete(c *gin.Context, token string) error {
	return s.Gateway.ConfirmDelete(c.Request.Context(), token)
}
