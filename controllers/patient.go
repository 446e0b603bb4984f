package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"OptiCare360/models"
	"OptiCare360/services"
	"OptiCare360/util"
)

func Patient(router *gin.Engine, svc services.PatientService) {
	patient := router.Group("/patients")
	{
		patient.POST("/create", createPatient(svc))
		patient.GET("/fetch/:patientId", fetchPatient(svc))
		patient.GET("/fetchAll", fetchAllPatients(svc))
		patient.GET("/search", searchPatients(svc))
		patient.PATCH("/update/:patientId", updatePatient(svc))
		patient.DELETE("/delete/request/:patientId", requestPatientDelete(svc))
		patient.DELETE("/delete/confirm/:token", confirmPatientDelete(svc))
	}
}

func createPatient(svc services.PatientService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patient models.Patient
		if err := c.BindJSON(&patient); err != nil {
			c.JSON(http.StatusBadRequest, util.FailedResponse(err))
			return
		}
		id, err := svc.Save(c, patient, "")
		if err != nil {
			c.JSON(http.StatusBadRequest, util.FailedResponse(err))
			return
		}
		c.JSON(http.StatusOK, util.SuccessResponse(id))
	}
}

func fetchPatient(svc services.PatientService) gin.HandlerFunc {
	return func(c *gin.Context) {
		patient, err := svc.Fetch(c.Param("patientId"))
		if err != nil {
			c.JSON(http.StatusNotFound, util.FailedResponse(err))
			return
		}
		c.JSON(http.StatusOK, util.SuccessResponse(patient))
	}
}

func fetchAllPatients(svc services.PatientService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, util.SuccessResponse(svc.FetchAll()))
	}
}

func searchPatients(svc services.PatientService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, util.SuccessResponse(svc.Search(c.Query("q"))))
	}
}

func updatePatient(svc services.PatientService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patient models.Patient
		if err := c.BindJSON(&patient); err != nil {
			c.JSON(http.StatusBadRequest, util.FailedResponse(err))
			return
		}
		id, err := svc.Save(c, patient, c.Param("patientId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, util.FailedResponse(err))
			return
		}
		c.JSON(http.StatusOK, util.SuccessResponse(id))
	}
}

func requestPatientDelete(svc services.PatientService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := svc.RequestDelete(c.Param("patientId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, util.FailedResponse(err))
			return
		}
		c.JSON(http.StatusOK, util.SuccessResponse(gin.H{"confirmationToken": token}))
	}
}

func confirmPatientDelete(svc services.PatientService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.ConfirmDelete(c, c.Param("token")); err != nil {
			c.JSON(http.StatusBadRequest, util.FailedResponse(err))
			return
		}
		c.JSON(http.StatusOK, util.SuccessResponse("deleted"))
	}
}
