package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"OptiCare360/models"
	"OptiCare360/services"
	"OptiCare360/util"
)

func Order(router *gin.Engine, svc services.OrderService) {
	order := router.Group("/orders")
	{
		order.POST("/create", createOrder(svc))
		order.GET("/fetch/:orderId", fetchOrder(svc))
		order.GET("/fetchAll", fetchAllOrders(svc))
		order.GET("/preview", previewOrderTotal(svc))
		order.PATCH("/update/:orderId", updateOrder(svc))
		order.DELETE("/delete/request/:orderId", requestOrderDelete(svc))
		order.DELETE("/delete/confirm/:token", confirmOrderDelete(svc))
	}
}

func createOrder(svc services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order models.Order
		if err := c.BindJSON(&order); err != nil {
			c.JSON(http.StatusBadRequest, util.FailedResponse(err))
			return
		}
		id, err := svc.Save(c, order, "")
		if err != nil {
			c.JSON(http.StatusBadRequest, util.FailedResponse(err))
			return
		}
		c.JSON(http.StatusOK, util.SuccessResponse(id))
	}
}

func fetchOrder(svc services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := svc.Fetch(c.Param("orderId"))
		if err != nil {
			c.JSON(http.StatusNotFound, util.FailedResponse(err))
			return
		}
		c.JSON(http.StatusOK, util.SuccessResponse(order))
	}
}

func fetchAllOrders(svc services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, util.SuccessResponse(svc.FetchAll()))
	}
}

// previewOrderTotal answers the sales form before anything is saved.
func previewOrderTotal(svc services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		quantity, err := strconv.Atoi(c.DefaultQuery("quantity", "1"))
		if err != nil || quantity < 1 {
			quantity = 1
		}
		discount, err := strconv.ParseFloat(c.DefaultQuery("discount", "0"), 64)
		if err != nil || discount < 0 {
			discount = 0
		}
		total := svc.Preview(c.Query("productId"), quantity, discount)
		c.JSON(http.StatusOK, util.SuccessResponse(gin.H{"totalAmount": total}))
	}
}

func updateOrder(svc services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order models.Order
		if err := c.BindJSON(&order); err != nil {
			c.JSON(http.StatusBadRequest, util.FailedResponse(err))
			return
		}
		id, err := svc.Save(c, order, c.Param("orderId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, util.FailedResponse(err))
			return
		}
		c.JSON(http.StatusOK, util.SuccessResponse(id))
	}
}

func requestOrderDelete(svc services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := svc.RequestDelete(c.Param("orderId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, util.FailedResponse(err))
			return
		}
		c.JSON(http.StatusOK, util.SuccessResponse(gin.H{"confirmationToken": token}))
	}
}

func confirmOrderDelete(svc services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.ConfirmDelete(c, c.Param("token")); err != nil {
			c.JSON(http.StatusBadRequest, util.FailedResponse(err))
			return
		}
		c.JSON(http.StatusOK, util.SuccessResponse("deleted"))
	}
}
