package routes

import (
	"github.com/gin-gonic/gin"

	"OptiCare360/controllers"
	"OptiCare360/monitoring"
	"OptiCare360/services"
	"OptiCare360/session"
)

type Deps struct {
	Session   *session.Provider
	Patients  services.PatientService
	Exams     services.ExamService
	Products  services.ProductService
	Orders    services.OrderService
	Dashboard services.DashboardService
}

func Routes(r *gin.Engine, deps Deps) {

	//public
	r.GET("/metrics", gin.WrapH(monitoring.Handler()))

	r.Use(deps.Session.Middleware())
	controllers.Dashboard(r, deps.Dashboard)
	controllers.Patient(r, deps.Patients)
	controllers.Exam(r, deps.Exams)
	controllers.Product(r, deps.Products)
	controllers.Order(r, deps.Orders)
}
