package analytics

import (
	"sort"
	"time"

	"OptiCare360/models"
)

const (
	// RecallIntervalMonths is how long after a myopia-control exam the
	// patient is due back.
	RecallIntervalMonths = 3
	// LowStockThreshold flags products with stock strictly below it.
	LowStockThreshold = 5

	// UnknownName stands in for any reference that no longer resolves.
	UnknownName = "unknown"
	// WalkInName labels orders with no patient attached.
	WalkInName = "walk-in"
)

// Age returns whole years between dob (YYYY-MM-DD) and today. Missing or
// unparseable input yields 0 and the result is never negative.
func Age(dob string, today time.Time) int {
	if dob == "" {
		return 0
	}
	birth, err := time.Parse(models.DateLayout, dob)
	if err != nil {
		return 0
	}
	years := today.Year() - birth.Year()
	if today.Month() < birth.Month() || (today.Month() == birth.Month() && today.Day() < birth.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

// RecallDueDate is the exam date plus the recall interval in calendar
// months, clamped to the last day of the target month, so
// Jan 31 + 3 months = Apr 30.
func RecallDueDate(examDate time.Time) time.Time {
	return addMonthsClamped(examDate, RecallIntervalMonths)
}

func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	first := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	if last := first.AddDate(0, 1, -1).Day(); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, t.Location())
}

// RecallEntry pairs a myopia-control exam with its computed schedule.
type RecallEntry struct {
	Exam        models.Exam `json:"exam"`
	PatientName string      `json:"patientName"`
	DueDate     time.Time   `json:"dueDate"`
	Overdue     bool        `json:"overdue"`
}

// RecallQueue pairs every myopia-control exam with its due date and overdue
// flag, sorted ascending by due date. Exams whose date does not parse are
// skipped; exams whose patient is gone carry the unknown sentinel.
func RecallQueue(exams []models.Exam, patients []models.Patient, today time.Time) []RecallEntry {
	names := make(map[string]string, len(patients))
	for _, p := range patients {
		names[p.ID.Hex()] = p.Name
	}

	var queue []RecallEntry
	for _, e := range exams {
		if e.ExamType != models.ExamTypeMyopiaControl {
			continue
		}
		date, err := time.Parse(models.DateLayout, e.ExamDate)
		if err != nil {
			continue
		}
		due := RecallDueDate(date)
		name, ok := names[e.PatientID]
		if !ok || name == "" {
			name = UnknownName
		}
		queue = append(queue, RecallEntry{
			Exam:        e,
			PatientName: name,
			DueDate:     due,
			Overdue:     due.Before(today),
		})
	}
	sort.SliceStable(queue, func(i, j int) bool {
		return queue[i].DueDate.Before(queue[j].DueDate)
	})
	return queue
}

// Top bounds a recall queue to its first n entries.
func Top(queue []RecallEntry, n int) []RecallEntry {
	if len(queue) <= n {
		return queue
	}
	return queue[:n]
}

// RevenueTotal sums the totals stored on the orders at save time. Totals are
// never recomputed from current prices.
func RevenueTotal(orders []models.Order) float64 {
	var total float64
	for _, o := range orders {
		total += o.TotalAmount
	}
	return total
}

// LowStockProducts returns products whose stock sits below the threshold.
func LowStockProducts(products []models.Product) []models.Product {
	var low []models.Product
	for _, p := range products {
		if p.Stock < LowStockThreshold {
			low = append(low, p)
		}
	}
	return low
}

// OrderTotal previews the amount of an order before it is saved. A missing
// product counts as price 0 and the result never drops below 0.
func OrderTotal(product *models.Product, quantity int, discount float64) float64 {
	var price float64
	if product != nil {
		price = product.Price
	}
	total := price*float64(quantity) - discount
	if total < 0 {
		return 0
	}
	return total
}
