package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"OptiCare360/models"
	"OptiCare360/services"
	"OptiCare360/util"
)

func Exam(router *gin.Engine, svc services.ExamService) {
	exam := router.Group("/exams")
	{
		exam.POST("/create", createExam(svc))
		exam.GET("/fetch/:examId", fetchExam(svc))
		exam.GET("/fetchAll", fetchAllExams(svc))
		exam.PATCH("/update/:examId", updateExam(svc))
		exam.DELETE("/delete/request/:examId", requestExamDelete(svc))
		exam.DELETE("/delete/confirm/:token", confirmExamDelete(svc))
	}
}

func createExam(svc services.ExamService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var exam models.Exam
		if err := c.BindJSON(&exam); err != nil {
			c.JSON(http.StatusBadRequest, util.FailedResponse(err))
			return
		}
		id, err := svc.Save(c, exam, "")
		if err != nil {
			c.JSON(http.StatusBadRequest, util.FailedResponse(err))
			return
		}
		c.JSON(http.StatusOK, util.SuccessResponse(id))
	}
}

func fetchExam(svc services.ExamService) gin.HandlerFunc {
	return func(c *gin.Context) {
		exam, err := svc.Fetch(c.Param("examId"))
		if err != nil {
			c.JSON(http.StatusNotFound, util.FailedResponse(err))
			return
		}
		c.JSON(http.StatusOK, util.SuccessResponse(exam))
	}
}

func fetchAllExams(svc services.ExamService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, util.SuccessResponse(svc.FetchAll()))
	}
}

func updateExam(svc services.ExamService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var exam models.Exam
		if err := c.BindJSON(&exam); err != nil {
			c.JSON(http.StatusBadRequest, util.FailedResponse(err))
			return
		}
		id, err := svc.Save(c, exam, c.Param("examId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, util.FailedResponse(err))
			return
		}
		c.JSON(http.StatusOK, util.SuccessResponse(id))
	}
}

func requestExamDelete(svc services.ExamService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := svc.RequestDelete(c.Param("examId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, util.FailedResponse(err))
			return
		}
		c.JSON(http.StatusOK, util.SuccessResponse(gin.H{"confirmationToken": token}))
	}
}

func confirmExamDelete(svc services.ExamService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.ConfirmDelete(c, c.Param("token")); err != nil {
			c.JSON(http.StatusBadRequest, util.FailedResponse(err))
			return
		}
		c.JSON(http.StatusOK, util.SuccessResponse("deleted"))
	}
}
