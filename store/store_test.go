package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"OptiCare360/models"
)

func TestReplaceIsFullSwapNotMerge(t *testing.T) {
	s := New()

	first := []models.Patient{
		{ID: primitive.NewObjectID(), Name: "Li"},
		{ID: primitive.NewObjectID(), Name: "Chen"},
	}
	s.ReplacePatients(first)
	assert.Len(t, s.Patients(), 2)

	second := []models.Patient{{ID: primitive.NewObjectID(), Name: "Zhou"}}
	s.ReplacePatients(second)

	got := s.Patients()
	if assert.Len(t, got, 1) {
		assert.Equal(t, "Zhou", got[0].Name)
	}
}

func TestReplaceKeepsSnapshotOrder(t *testing.T) {
	s := New()
	docs := []models.Product{
		{ID: primitive.NewObjectID(), Name: "b"},
		{ID: primitive.NewObjectID(), Name: "a"},
		{ID: primitive.NewObjectID(), Name: "c"},
	}
	s.ReplaceProducts(docs)

	got := s.Products()
	assert.Equal(t, "b", got[0].Name)
	assert.Equal(t, "a", got[1].Name)
	assert.Equal(t, "c", got[2].Name)
}

func TestGettersReturnCopies(t *testing.T) {
	s := New()
	s.ReplaceOrders([]models.Order{{TotalAmount: 10}})

	got := s.Orders()
	got[0].TotalAmount = 999

	assert.Equal(t, 10.0, s.Orders()[0].TotalAmount)
}

func TestFindByIDAndMiss(t *testing.T) {
	s := New()
	product := models.Product{ID: primitive.NewObjectID(), Name: "frame", Price: 299}
	s.ReplaceProducts([]models.Product{product})

	found, ok := s.FindProduct(product.ID.Hex())
	assert.True(t, ok)
	assert.Equal(t, "frame", found.Name)

	_, ok = s.FindProduct(primitive.NewObjectID().Hex())
	assert.False(t, ok)
}

func TestSubscribeSignalsOnReplace(t *testing.T) {
	s := New()
	ch := s.Subscribe(models.ExamCollection)

	s.ReplaceExams(nil)

	select {
	case <-ch:
	default:
		t.Fatal("expected a change signal after replace")
	}
}

func TestSubscribeCoalescesBursts(t *testing.T) {
	s := New()
	ch := s.Subscribe(models.PatientCollection)

	// a burst of replacements must never block the sync path
	for i := 0; i < 10; i++ {
		s.ReplacePatients(nil)
	}

	<-ch
	select {
	case <-ch:
		t.Fatal("expected the burst to coalesce into one signal")
	default:
	}
}

func TestSubscribeIsPerCollection(t *testing.T) {
	s := New()
	ch := s.Subscribe(models.OrderCollection)

	s.ReplacePatients(nil)

	select {
	case <-ch:
		t.Fatal("patient replace must not signal order watchers")
	default:
	}
}
