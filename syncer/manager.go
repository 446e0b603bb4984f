package syncer

import (
	"context"
	"log"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"OptiCare360/models"
	"OptiCare360/monitoring"
	"OptiCare360/store"
)

// ErrorObserver receives every subscription or reload failure. It must not
// block; the default observer just logs.
type ErrorObserver func(collection string, err error)

// Manager owns one live subscription per collection against the remote
// store. Every change-stream event triggers a full reload of that collection
// into the record store, so the store always holds exactly the latest
// snapshot. Subscriptions are independent: an error on one collection's
// stream never touches the others.
type Manager struct {
	db      *mongo.Database
	appID   string
	store   *store.Store
	onError ErrorObserver
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

func New(db *mongo.Database, appInstanceID string, st *store.Store, onError ErrorObserver) *Manager {
	if onError == nil {
		onError = func(collection string, err error) {
			log.Println("Sync error on", collection+":", err)
		}
	}
	return &Manager{db: db, appID: appInstanceID, store: st, onError: onError}
}

// Start waits for the session to become ready and then opens the four
// subscriptions. Nothing is read from the remote store before readiness.
func (m *Manager) Start(ctx context.Context, ready <-chan struct{}) {
	ctx, m.cancel = context.WithCancel(ctx)
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		select {
		case <-ready:
		case <-ctx.Done():
			return
		}
		for _, name := range models.Collections() {
			m.wg.Add(1)
			go m.watch(ctx, name)
		}
	}()
}

// Stop cancels all subscriptions and waits for them to wind down.
func (m *Manager) Stop() {
	if m.cancel != nil {
		m.cancel()
	}
	m.wg.Wait()
}

func (m *Manager) watch(ctx context.Context, collection string) {
	defer m.wg.Done()
	coll := m.db.Collection(models.CollectionPath(m.appID, collection))

	if err := m.reload(ctx, collection, coll); err != nil {
		m.report(collection, err)
	}

	stream, err := coll.Watch(ctx, mongo.Pipeline{})
	if err != nil {
		m.report(collection, err)
		return
	}
	defer stream.Close(context.Background())

	for stream.Next(ctx) {
		if err := m.reload(ctx, collection, coll); err != nil {
			m.report(collection, err)
		}
	}
	if err := stream.Err(); err != nil && ctx.Err() == nil {
		m.report(collection, err)
	}
}

/*
* Fetch the whole collection in the store's native order
* Decode into the tagged record type
* Replace the record store's collection wholesale, never merge
 */
func (m *Manager) reload(ctx context.Context, collection string, coll *mongo.Collection) error {
	cursor, err := coll.Find(ctx, bson.D{})
	if err != nil {
		return err
	}

	switch collection {
	case models.PatientCollection:
		var docs []models.Patient
		if err := cursor.All(ctx, &docs); err != nil {
			return err
		}
		m.store.ReplacePatients(docs)
	case models.ExamCollection:
		var docs []models.Exam
		if err := cursor.All(ctx, &docs); err != nil {
			return err
		}
		m.store.ReplaceExams(docs)
	case models.ProductCollection:
		var docs []models.Product
		if err := cursor.All(ctx, &docs); err != nil {
			return err
		}
		m.store.ReplaceProducts(docs)
	case models.OrderCollection:
		var docs []models.Order
		if err := cursor.All(ctx, &docs); err != nil {
			return err
		}
		m.store.ReplaceOrders(docs)
	}

	monitoring.SnapshotsApplied.WithLabelValues(collection).Inc()
	return nil
}

func (m *Manager) report(collection string, err error) {
	monitoring.SubscriptionErrors.WithLabelValues(collection).Inc()
	m.onError(collection, err)
}
