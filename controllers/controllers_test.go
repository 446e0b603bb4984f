package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"OptiCare360/models"
	"OptiCare360/services"
	"OptiCare360/store"
)

type fakeMutator struct {
	saved     []models.Record
	confirmed []string
}

func (f *fakeMutator) Save(ctx context.Context, collection string, record models.Record, existingID string) (string, error) {
	f.saved = append(f.saved, record)
	return "new-id", nil
}

func (f *fakeMutator) RequestDelete(collection, id string) (string, error) {
	return "tok-" + id, nil
}

func (f *fakeMutator) ConfirmDelete(ctx context.Context, token string) error {
	f.confirmed = append(f.confirmed, token)
	return nil
}

func newTestRouter(st *store.Store, mutator *fakeMutator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	Dashboard(r, services.DashboardService{Store: st})
	Patient(r, services.PatientService{Store: st, Gateway: mutator})
	Exam(r, services.ExamService{Store: st, Gateway: mutator})
	Product(r, services.ProductService{Store: st, Gateway: mutator})
	Order(r, services.OrderService{Store: st, Gateway: mutator})
	return r
}

func perform(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreatePatientRoundTrip(t *testing.T) {
	mutator := &fakeMutator{}
	r := newTestRouter(store.New(), mutator)

	w := perform(r, "POST", "/patients/create", models.Patient{Name: "Li", Phone: "138"})
	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, mutator.saved, 1)
}

func TestCreatePatientBadJSON(t *testing.T) {
	r := newTestRouter(store.New(), &fakeMutator{})

	req := httptest.NewRequest("POST", "/patients/create", bytes.NewBufferString("{"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFetchAllServesFromRecordStore(t *testing.T) {
	st := store.New()
	st.ReplaceProducts([]models.Product{{ID: primitive.NewObjectID(), Name: "frame", Stock: 4}})
	r := newTestRouter(st, &fakeMutator{})

	w := perform(r, "GET", "/products/fetchAll", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "frame")
}

func TestFetchMissIs404(t *testing.T) {
	r := newTestRouter(store.New(), &fakeMutator{})

	w := perform(r, "GET", "/patients/fetch/"+primitive.NewObjectID().Hex(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteRequestThenConfirm(t *testing.T) {
	mutator := &fakeMutator{}
	r := newTestRouter(store.New(), mutator)

	w := perform(r, "DELETE", "/orders/delete/request/ord1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "tok-ord1")

	w = perform(r, "DELETE", "/orders/delete/confirm/tok-ord1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"tok-ord1"}, mutator.confirmed)
}

func TestOrderPreviewEndpoint(t *testing.T) {
	st := store.New()
	product := models.Product{ID: primitive.NewObjectID(), Name: "frame", Price: 299}
	st.ReplaceProducts([]models.Product{product})
	r := newTestRouter(st, &fakeMutator{})

	w := perform(r, "GET", "/orders/preview?productId="+product.ID.Hex()+"&quantity=3&discount=50", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "847")
}

func TestDashboardSummaryEndpoint(t *testing.T) {
	st := store.New()
	st.ReplaceOrders([]models.Order{{TotalAmount: 120}, {TotalAmount: 45.5}})
	r := newTestRouter(st, &fakeMutator{})

	w := perform(r, "GET", "/dashboard/summary", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "165.5")
}
