package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"OptiCare360/models"
	"OptiCare360/services"
	"OptiCare360/util"
)

func Product(router *gin.Engine, svc services.ProductService) {
	product := router.Group("/products")
	{
		product.POST("/create", createProduct(svc))
		product.GET("/fetch/:productId", fetchProduct(svc))
		product.GET("/fetchAll", fetchAllProducts(svc))
		product.GET("/lowStock", fetchLowStockProducts(svc))
		product.PATCH("/update/:productId", updateProduct(svc))
		product.DELETE("/delete/request/:productId", requestProductDelete(svc))
		product.DELETE("/delete/confirm/:token", confirmProductDelete(svc))
	}
}

func createProduct(svc services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := c.BindJSON(&product); err != nil {
			c.JSON(http.StatusBadRequest, util.FailedResponse(err))
			return
		}
		id, err := svc.Save(c, product, "")
		if err != nil {
			c.JSON(http.StatusBadRequest, util.FailedResponse(err))
			return
		}
		c.JSON(http.StatusOK, util.SuccessResponse(id))
	}
}

func fetchProduct(svc services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := svc.Fetch(c.Param("productId"))
		if err != nil {
			c.JSON(http.StatusNotFound, util.FailedResponse(err))
			return
		}
		c.JSON(http.StatusOK, util.SuccessResponse(product))
	}
}

func fetchAllProducts(svc services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, util.SuccessResponse(svc.FetchAll()))
	}
}

func fetchLowStockProducts(svc services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, util.SuccessResponse(svc.LowStock()))
	}
}

func updateProduct(svc services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := c.BindJSON(&product); err != nil {
			c.JSON(http.StatusBadRequest, util.FailedResponse(err))
			return
		}
		id, err := svc.Save(c, product, c.Param("productId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, util.FailedResponse(err))
			return
		}
		c.JSON(http.StatusOK, util.SuccessResponse(id))
	}
}

func requestProductDelete(svc services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := svc.RequestDelete(c.Param("productId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, util.FailedResponse(err))
			return
		}
		c.JSON(http.StatusOK, util.SuccessResponse(gin.H{"confirmationToken": token}))
	}
}

func confirmProductDelete(svc services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.ConfirmDelete(c, c.Param("token")); err != nil {
			c.JSON(http.StatusBadRequest, util.FailedResponse(err))
			return
		}
		c.JSON(http.StatusOK, util.SuccessResponse("deleted"))
	}
}
