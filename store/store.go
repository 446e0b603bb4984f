package store

import (
	"sync"

	"OptiCare360/models"
)

// Store is the in-memory view of the four synchronized collections. Each
// collection is replaced wholesale by the sync manager on every remote
// snapshot; readers always see exactly the latest snapshot in the remote
// store's native order. The store is the single source of truth for the
// presentation layer and is never written to by the mutation path.
type Store struct {
	mu       sync.RWMutex
	patients []models.Patient
	exams    []models.Exam
	products []models.Product
	orders   []models.Order
	watchers map[string][]chan struct{}
}

func New() *Store {
	return &Store{watchers: make(map[string][]chan struct{})}
}

func (s *Store) ReplacePatients(docs []models.Patient) {
	s.mu.Lock()
	s.patients = docs
	s.mu.Unlock()
	s.notify(models.PatientCollection)
}

func (s *Store) ReplaceExams(docs []models.Exam) {
	s.mu.Lock()
	s.exams = docs
	s.mu.Unlock()
	s.notify(models.ExamCollection)
}

func (s *Store) ReplaceProducts(docs []models.Product) {
	s.mu.Lock()
	s.products = docs
	s.mu.Unlock()
	s.notify(models.ProductCollection)
}

func (s *Store) ReplaceOrders(docs []models.Order) {
	s.mu.Lock()
	s.orders = docs
	s.mu.Unlock()
	s.notify(models.OrderCollection)
}

func (s *Store) Patients() []models.Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Patient, len(s.patients))
	copy(out, s.patients)
	return out
}

func (s *Store) Exams() []models.Exam {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Exam, len(s.exams))
	copy(out, s.exams)
	return out
}

func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Store) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// FindPatient looks a patient up by its hex id. A miss is a normal outcome;
// references are allowed to dangle after a delete.
func (s *Store) FindPatient(id string) (models.Patient, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.patients {
		if p.ID.Hex() == id {
			return p, true
		}
	}
	return models.Patient{}, false
}

func (s *Store) FindExam(id string) (models.Exam, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.exams {
		if e.ID.Hex() == id {
			return e, true
		}
	}
	return models.Exam{}, false
}

func (s *Store) FindProduct(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID.Hex() == id {
			return p, true
		}
	}
	return models.Product{}, false
}

func (s *Store) FindOrder(id string) (models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID.Hex() == id {
			return o, true
		}
	}
	return models.Order{}, false
}

// Subscribe returns a channel that receives a signal whenever the named
// collection is replaced. Signals are coalesced; a slow consumer sees at
// least one signal for any burst of replacements.
func (s *Store) Subscribe(collection string) <-chan struct{} {
	ch := make(chan struct{}, 1)
	s.mu.Lock()
	s.watchers[collection] = append(s.watchers[collection], ch)
	s.mu.Unlock()
	return ch
}

func (s *Store) notify(collection string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ch := range s.watchers[collection] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
