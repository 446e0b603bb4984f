package gateway

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"OptiCare360/models"
	"OptiCare360/monitoring"
)

// confirmationTTL bounds how long a requested delete stays confirmable.
const confirmationTTL = 5 * time.Minute

// writer is the slice of the remote store the gateway needs.
type writer interface {
	InsertOne(ctx context.Context, doc bson.M) (string, error)
	UpdateByID(ctx context.Context, id string, fields bson.M) error
	DeleteByID(ctx context.Context, id string) error
}

type mongoWriter struct {
	coll *mongo.Collection
}

func (w mongoWriter) InsertOne(ctx context.Context, doc bson.M) (string, error) {
	res, err := w.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("remote store returned an unexpected id type")
	}
	return oid.Hex(), nil
}

func (w mongoWriter) UpdateByID(ctx context.Context, id string, fields bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	res, err := w.coll.UpdateByID(ctx, oid, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("no document matched id " + id)
	}
	return nil
}

func (w mongoWriter) DeleteByID(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = w.coll.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}

type pendingDelete struct {
	collection  string
	id          string
	requestedAt time.Time
}

// Gateway is the single mutation entry point. All writes go straight through
// to the remote store; the local record store is never touched here and only
// catches up when the next snapshot arrives.
type Gateway struct {
	writers map[string]writer
	onError func(collection string, err error)
	now     func() time.Time

	mu      sync.Mutex
	pending map[string]pendingDelete
}

func New(db *mongo.Database, appInstanceID string, onError func(collection string, err error)) *Gateway {
	writers := make(map[string]writer, len(models.Collections()))
	for _, name := range models.Collections() {
		writers[name] = mongoWriter{coll: db.Collection(models.CollectionPath(appInstanceID, name))}
	}
	return newWithWriters(writers, onError, time.Now)
}

func newWithWriters(writers map[string]writer, onError func(string, error), now func() time.Time) *Gateway {
	if onError == nil {
		onError = func(collection string, err error) {
			log.Println("Write error on", collection+":", err)
		}
	}
	return &Gateway{
		writers: writers,
		onError: onError,
		now:     now,
		pending: make(map[string]pendingDelete),
	}
}

// Save creates the record when existingID is empty and updates the existing
// document otherwise. Creation leaves id assignment to the remote store and
// stamps createdAt; updates stamp updatedAt. Returns the document id.
func (g *Gateway) Save(ctx context.Context, collection string, record models.Record, existingID string) (string, error) {
	w, ok := g.writers[collection]
	if !ok {
		return "", fmt.Errorf("unknown collection %q", collection)
	}
	if err := record.Validate(); err != nil {
		return "", err
	}
	doc, err := toDocument(record)
	if err != nil {
		return "", err
	}
	stamp := g.now().UnixMilli()

	if existingID != "" {
		doc["updatedAt"] = stamp
		if err := w.UpdateByID(ctx, existingID, doc); err != nil {
			g.report(collection, err)
			return "", err
		}
		return existingID, nil
	}

	doc["createdAt"] = stamp
	id, err := w.InsertOne(ctx, doc)
	if err != nil {
		g.report(collection, err)
		return "", err
	}
	return id, nil
}

// RequestDelete stages a destructive delete and hands back a confirmation
// token. Nothing is sent to the remote store until the token is confirmed.
func (g *Gateway) RequestDelete(collection, id string) (string, error) {
	if _, ok := g.writers[collection]; !ok {
		return "", fmt.Errorf("unknown collection %q", collection)
	}
	if id == "" {
		return "", errors.New("delete requires an id")
	}
	token := uuid.NewString()
	g.mu.Lock()
	g.pending[token] = pendingDelete{collection: collection, id: id, requestedAt: g.now()}
	g.mu.Unlock()
	return token, nil
}

// ConfirmDelete sends the staged delete. The token is single-use and the
// delete is attempted at most once; a failure is reported, never retried.
func (g *Gateway) ConfirmDelete(ctx context.Context, token string) error {
	g.mu.Lock()
	p, ok := g.pending[token]
	delete(g.pending, token)
	g.mu.Unlock()
	if !ok {
		return errors.New("unknown or already used confirmation token")
	}
	if g.now().Sub(p.requestedAt) > confirmationTTL {
		return errors.New("confirmation token expired")
	}
	if err := g.writers[p.collection].DeleteByID(ctx, p.id); err != nil {
		g.report(p.collection, err)
		return err
	}
	return nil
}

// toDocument flattens a record to the wire shape. The id and both timestamps
// are stripped: ids are store-assigned and timestamps are gateway-stamped.
func toDocument(record models.Record) (bson.M, error) {
	raw, err := bson.Marshal(record)
	if err != nil {
		return nil, err
	}
	doc := bson.M{}
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	delete(doc, "_id")
	delete(doc, "createdAt")
	delete(doc, "updatedAt")
	return doc, nil
}

func (g *Gateway) report(collection string, err error) {
	monitoring.WriteFailures.WithLabelValues(collection).Inc()
	g.onError(collection, err)
}
