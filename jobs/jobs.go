package jobs

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"OptiCare360/analytics"
	"OptiCare360/store"
)

func StartDailyScheduler(st *store.Store) *cron.Cron {
	c := cron.New()

	// Runs every day at 00:05 AM
	c.AddFunc("5 0 * * *", func() {
		log.Println("Running Daily Recall And Stock Review...")
		RunDailyReview(st, time.Now())
	})

	c.Start()
	return c
}

// RunDailyReview logs the same picture the dashboard derives on demand: how
// many myopia-control follow-ups are in the queue, how many are overdue, and
// which products have run low.
func RunDailyReview(st *store.Store, today time.Time) {
	queue := analytics.RecallQueue(st.Exams(), st.Patients(), today)
	overdue := 0
	for _, entry := range queue {
		if entry.Overdue {
			overdue++
		}
	}
	log.Println("Recall queue:", len(queue), "exams,", overdue, "overdue")

	for _, p := range analytics.LowStockProducts(st.Products()) {
		log.Println("Low stock alert:", p.Name, "stock:", p.Stock)
	}
}
