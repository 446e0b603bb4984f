package services

import (
	"context"
	"log"
	"time"

	"OptiCare360/analytics"
	"OptiCare360/cache"
	"OptiCare360/models"
	"OptiCare360/store"
)

const (
	summaryCacheKey  = "dashboard:summary"
	recallQueueLimit = 5
)

type DashboardService struct {
	Store *store.Store
	Cache *cache.Cache
}

// Summary is everything the work board shows, derived fresh from the record
// store on every change.
type Summary struct {
	PatientCount       int                     `json:"patientCount"`
	ProductCount       int                     `json:"productCount"`
	OrderCount         int                     `json:"orderCount"`
	RevenueTotal       float64                 `json:"revenueTotal"`
	MyopiaControlCount int                     `json:"myopiaControlCount"`
	LowStock           []models.Product        `json:"lowStock"`
	RecallQueue        []analytics.RecallEntry `json:"recallQueue"`
}

func (s DashboardService) Summary(ctx context.Context) Summary {
	if s.Cache != nil {
		var cached Summary
		ok, err := s.Cache.Get(ctx, summaryCacheKey, &cached)
		if err != nil {
			log.Println("Error from the dashboard cache get:", err)
		} else if ok {
			return cached
		}
	}

	summary := s.build(time.Now())

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, summaryCacheKey, summary); err != nil {
			log.Println("Error from the dashboard cache set:", err)
		}
	}
	return summary
}

func (s DashboardService) build(today time.Time) Summary {
	patients := s.Store.Patients()
	exams := s.Store.Exams()
	products := s.Store.Products()
	orders := s.Store.Orders()

	myopiaControl := 0
	for _, e := range exams {
		if e.ExamType == models.ExamTypeMyopiaControl {
			myopiaControl++
		}
	}

	queue := analytics.RecallQueue(exams, patients, today)
	return Summary{
		PatientCount:       len(patients),
		ProductCount:       len(products),
		OrderCount:         len(orders),
		RevenueTotal:       analytics.RevenueTotal(orders),
		MyopiaControlCount: myopiaControl,
		LowStock:           analytics.LowStockProducts(products),
		RecallQueue:        analytics.Top(queue, recallQueueLimit),
	}
}

// InvalidateOnChange drops the cached summary whenever any collection is
// replaced, so the next read derives from the fresh snapshot. Runs until
// ctx is cancelled.
func (s DashboardService) InvalidateOnChange(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	for _, name := range models.Collections() {
		ch := s.Store.Subscribe(name)
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case <-ch:
					if err := s.Cache.Delete(context.Background(), summaryCacheKey); err != nil {
						log.Println("Error invalidating the dashboard cache:", err)
					}
				}
			}
		}()
	}
}
