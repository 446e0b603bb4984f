package services

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"OptiCare360/analytics"
	"OptiCare360/models"
	"OptiCare360/store"
)

type ProductService struct {
	Store   *store.Store
	Gateway Mutator
}

func (s ProductService) Save(c *gin.Context, product models.Product, existingID string) (string, error) {
	actor := c.GetString("actor")
	if existingID != "" {
		product.UpdatedBy = actor
	} else {
		product.CreatedBy = actor
	}
	id, err := s.Gateway.Save(c.Request.Context(), models.ProductCollection, product, existingID)
	if err != nil {
		log.Println("Error from the gateway while saving product:", err)
		return "", err
	}
	return id, nil
}

func (s ProductService) Fetch(id string) (models.Product, error) {
	product, ok := s.Store.FindProduct(id)
	if !ok {
		return models.Product{}, errors.New("product not found")
	}
	return product, nil
}

func (s ProductService) FetchAll() []models.Product {
	return s.Store.Products()
}

func (s ProductService) LowStock() []models.Product {
	return analytics.LowStockProducts(s.Store.Products())
}

func (s ProductService) RequestDelete(id string) (string, error) {
	return s.Gateway.RequestDelete(models.ProductCollection, id)
}

func (s ProductService) ConfirmDelete(c *gin.Context, token string) error {
	return s.Gateway.ConfirmDelete(c.Request.Context(), token)
}
