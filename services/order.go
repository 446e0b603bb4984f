package services

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"OptiCare360/analytics"
	"OptiCare360/models"
	"OptiCare360/store"
)

type OrderService struct {
	Store   *store.Store
	Gateway Mutator
}

// OrderView decorates an order with the resolved patient name. Orders with
// no patient belong to walk-in customers.
type OrderView struct {
	models.Order
	PatientName string `json:"patientName"`
}

/*
* Look up the selected product in the record store
* Snapshot its name and compute the total at this moment
* A later price change never rewrites a saved order
 */
func (s OrderService) Save(c *gin.Context, order models.Order, existingID string) (string, error) {
	if product, ok := s.Store.FindProduct(order.ProductID); ok {
		order.ProductName = product.Name
		order.TotalAmount = analytics.OrderTotal(&product, order.Quantity, order.Discount)
	} else {
		order.ProductName = analytics.UnknownName
		order.TotalAmount = analytics.OrderTotal(nil, order.Quantity, order.Discount)
	}

	actor := c.GetString("actor")
	if existingID != "" {
		order.UpdatedBy = actor
	} else {
		order.CreatedBy = actor
	}
	id, err := s.Gateway.Save(c.Request.Context(), models.OrderCollection, order, existingID)
	if err != nil {
		log.Println("Error from the gateway while saving order:", err)
		return "", err
	}
	return id, nil
}

// Preview computes the total the sales form shows before an order is saved.
func (s OrderService) Preview(productID string, quantity int, discount float64) float64 {
	if product, ok := s.Store.FindProduct(productID); ok {
		return analytics.OrderTotal(&product, quantity, discount)
	}
	return analytics.OrderTotal(nil, quantity, discount)
}

func (s OrderService) Fetch(id string) (models.Order, error) {
	order, ok := s.Store.FindOrder(id)
	if !ok {
		return models.Order{}, errors.New("order not found")
	}
	return order, nil
}

func (s OrderService) FetchAll() []OrderView {
	patients := s.Store.Patients()
	names := make(map[string]string, len(patients))
	for _, p := range patients {
		names[p.ID.Hex()] = p.Name
	}

	orders := s.Store.Orders()
	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		name := analytics.WalkInName
		if o.PatientID != "" {
			name = names[o.PatientID]
			if name == "" {
				name = analytics.UnknownName
			}
		}
		views = append(views, OrderView{Order: o, PatientName: name})
	}
	return views
}

func (s OrderService) RequestDelete(id string) (string, error) {
	return s.Gateway.RequestDelete(models.OrderCollection, id)
}

func (s OrderService) ConfirmDelete(c *gin.Context, token string) error {
	return s.Gateway.ConfirmDelete(c.Request.Context(), token)
}
