package gateway

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"OptiCare360/models"
)

type fakeWriter struct {
	inserted []bson.M
	updated  map[string]bson.M
	deleted  []string
	err      error
}

func (f *fakeWriter) InsertOne(ctx context.Context, doc bson.M) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.inserted = append(f.inserted, doc)
	return fmt.Sprintf("generated-%d", len(f.inserted)), nil
}

func (f *fakeWriter) UpdateByID(ctx context.Context, id string, fields bson.M) error {
	if f.err != nil {
		return f.err
	}
	if f.updated == nil {
		f.updated = make(map[string]bson.M)
	}
	f.updated[id] = fields
	return nil
}

func (f *fakeWriter) DeleteByID(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return f.err
}

func newTestGateway(w writer, onError func(string, error), now func() time.Time) *Gateway {
	if now == nil {
		now = time.Now
	}
	writers := make(map[string]writer)
	for _, name := range models.Collections() {
		writers[name] = w
	}
	return newWithWriters(writers, onError, now)
}

func validPatient() models.Patient {
	return models.Patient{Name: "Li", Phone: "13800000000", DateOfBirth: "2012-04-01", Gender: models.GenderMale}
}

func TestSaveCreateStampsCreatedAt(t *testing.T) {
	w := &fakeWriter{}
	g := newTestGateway(w, nil, nil)

	id, err := g.Save(context.Background(), models.PatientCollection, validPatient(), "")
	require.NoError(t, err)
	assert.Equal(t, "generated-1", id)

	require.Len(t, w.inserted, 1)
	doc := w.inserted[0]
	assert.Contains(t, doc, "createdAt")
	assert.NotContains(t, doc, "updatedAt")
	// id assignment belongs to the remote store
	assert.NotContains(t, doc, "_id")
}

func TestSaveUpdateStampsUpdatedAt(t *testing.T) {
	w := &fakeWriter{}
	g := newTestGateway(w, nil, nil)

	id, err := g.Save(context.Background(), models.PatientCollection, validPatient(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", id)

	fields := w.updated["abc123"]
	require.NotNil(t, fields)
	assert.Contains(t, fields, "updatedAt")
	// the original creation stamp is never overwritten on update
	assert.NotContains(t, fields, "createdAt")
}

func TestSaveIdempotentUpdate(t *testing.T) {
	clock := time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)
	now := func() time.Time { return clock }
	w := &fakeWriter{}
	g := newTestGateway(w, nil, now)

	_, err := g.Save(context.Background(), models.PatientCollection, validPatient(), "abc123")
	require.NoError(t, err)
	first := w.updated["abc123"]

	clock = clock.Add(2 * time.Second)
	_, err = g.Save(context.Background(), models.PatientCollection, validPatient(), "abc123")
	require.NoError(t, err)
	second := w.updated["abc123"]

	assert.Equal(t, first["name"], second["name"])
	assert.Equal(t, first["phone"], second["phone"])
	assert.GreaterOrEqual(t, second["updatedAt"].(int64), first["updatedAt"].(int64))
}

func TestSaveRejectsInvalidRecord(t *testing.T) {
	w := &fakeWriter{}
	g := newTestGateway(w, nil, nil)

	_, err := g.Save(context.Background(), models.PatientCollection, models.Patient{}, "")
	assert.Error(t, err)
	assert.Empty(t, w.inserted)
}

func TestSaveUnknownCollection(t *testing.T) {
	g := newTestGateway(&fakeWriter{}, nil, nil)

	_, err := g.Save(context.Background(), "ledgers", validPatient(), "")
	assert.Error(t, err)
}

func TestSaveFailureIsReportedNotSwallowed(t *testing.T) {
	var reported []string
	w := &fakeWriter{err: errors.New("permission denied")}
	g := newTestGateway(w, func(collection string, err error) {
		reported = append(reported, collection)
	}, nil)

	_, err := g.Save(context.Background(), models.ProductCollection, models.Product{Name: "frame"}, "")
	assert.Error(t, err)
	assert.Equal(t, []string{models.ProductCollection}, reported)
}

func TestDeleteIsTwoStep(t *testing.T) {
	w := &fakeWriter{}
	g := newTestGateway(w, nil, nil)

	token, err := g.RequestDelete(models.OrderCollection, "ord1")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	// nothing is sent until the confirmation
	assert.Empty(t, w.deleted)

	require.NoError(t, g.ConfirmDelete(context.Background(), token))
	assert.Equal(t, []string{"ord1"}, w.deleted)
}

func TestDeleteTokenIsSingleUse(t *testing.T) {
	w := &fakeWriter{}
	g := newTestGateway(w, nil, nil)

	token, _ := g.RequestDelete(models.OrderCollection, "ord1")
	require.NoError(t, g.ConfirmDelete(context.Background(), token))

	err := g.ConfirmDelete(context.Background(), token)
	assert.Error(t, err)
	assert.Len(t, w.deleted, 1)
}

func TestDeleteUnknownToken(t *testing.T) {
	g := newTestGateway(&fakeWriter{}, nil, nil)
	assert.Error(t, g.ConfirmDelete(context.Background(), "nope"))
}

func TestDeleteTokenExpires(t *testing.T) {
	clock := time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)
	now := func() time.Time { return clock }
	w := &fakeWriter{}
	g := newTestGateway(w, nil, now)

	token, _ := g.RequestDelete(models.PatientCollection, "p1")
	clock = clock.Add(confirmationTTL + time.Minute)

	assert.Error(t, g.ConfirmDelete(context.Background(), token))
	assert.Empty(t, w.deleted)
}

func TestDeleteFailureIsAtMostOnce(t *testing.T) {
	var reports int
	w := &fakeWriter{err: errors.New("network down")}
	g := newTestGateway(w, func(string, error) { reports++ }, nil)

	token, _ := g.RequestDelete(models.ExamCollection, "ex1")
	err := g.ConfirmDelete(context.Background(), token)

	assert.Error(t, err)
	assert.Equal(t, 1, reports)
	// one attempt, no retry
	assert.Len(t, w.deleted, 1)
}
