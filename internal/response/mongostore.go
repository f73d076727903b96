/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package response

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/formflow/formflow/internal/flow/model"
	"github.com/formflow/formflow/internal/system/database/provider"
)

const (
	ledgersCollection = "responses"
	eventsCollection  = "response_events"
)

// mongoLedgerStore is the MongoDB implementation of ledgerStoreInterface.
// The counters of a form live in one document keyed by its form id. Each answer event is its own
// document in the events collection, so the size of a ledger does not grow with its answers.
type mongoLedgerStore struct {
	mongoProvider provider.MongoProviderInterface
	timeout       time.Duration
	indexMu       sync.Mutex
	indexesReady  bool
}

var _ ledgerStoreInterface = (*mongoLedgerStore)(nil)

type mongoLedgerDoc struct {
	FormID    string `bson:"_id"`
	Views     int64  `bson:"views"`
	Starts    int64  `bson:"starts"`
	Completed int64  `bson:"completed"`
	CreatedAt int64  `bson:"createdAt"`
}

// mongoEventDoc is one answer event. Its ObjectID keeps the insertion order of events recorded in
// the same millisecond.
type mongoEventDoc struct {
	ID           primitive.ObjectID `bson:"_id"`
	EventID      string             `bson:"eventId"`
	FormID       string             `bson:"formId"`
	StepID       string             `bson:"stepId"`
	Value        model.Value        `bson:"value"`
	SubmissionID string             `bson:"submissionId,omitempty"`
	Timestamp    int64              `bson:"timestamp"`
}

func newMongoLedgerStore(mongoProvider provider.MongoProviderInterface, timeout time.Duration) *mongoLedgerStore {
	return &mongoLedgerStore{
		mongoProvider: mongoProvider,
		timeout:       timeout,
	}
}

func (s *mongoLedgerStore) collections() (*mongo.Collection, *mongo.Collection, error) {
	db, err := s.mongoProvider.GetDatabase(provider.DataSourceResponses)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get database: %w", err)
	}
	events := db.Collection(eventsCollection)
	if err := s.ensureIndexes(events); err != nil {
		return nil, nil, err
	}
	return db.Collection(ledgersCollection), events, nil
}

// ensureIndexes creates the event indexes once per store. A failed attempt is retried by the next call.
func (s *mongoLedgerStore) ensureIndexes(events *mongo.Collection) error {
	s.indexMu.Lock()
	defer s.indexMu.Unlock()
	if s.indexesReady {
		return nil
	}

	ctx, cancel := s.withTimeout(context.Background())
	defer cancel()

	_, err := events.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "formId", Value: 1}, {Key: "timestamp", Value: 1}, {Key: "_id", Value: 1}},
			Options: options.Index().SetName("idx_response_events_form"),
		},
		{
			Keys:    bson.D{{Key: "eventId", Value: 1}},
			Options: options.Index().SetName("uq_response_events_event").SetUnique(true),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create response event indexes: %w", err)
	}
	s.indexesReady = true
	return nil
}

func (s *mongoLedgerStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

// IncrementViews counts one view of a form.
func (s *mongoLedgerStore) IncrementViews(ctx context.Context, formID string, now time.Time) (
	analytics Analytics, err error) {
	defer observe("increment_views", time.Now(), &err)

	ledgers, _, err := s.collections()
	if err != nil {
		return Analytics{}, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	update := bson.M{
		"$inc":         bson.M{"views": int64(1)},
		"$setOnInsert": bson.M{"starts": int64(0), "completed": int64(0), "createdAt": now.UnixMilli()},
	}
	return updateCounters(ctx, ledgers, formID, update)
}

// AppendAnswers inserts the answer events, then adds to the funnel counters.
// The two writes are not one transaction. When the counter update fails the events stay recorded
// and the call returns the error.
func (s *mongoLedgerStore) AppendAnswers(ctx context.Context, formID string, events []ResponseEvent,
	starts, completed int64, now time.Time) (analytics Analytics, err error) {
	defer observe("append_answers", time.Now(), &err)

	ledgers, eventColl, err := s.collections()
	if err != nil {
		return Analytics{}, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if len(events) > 0 {
		docs := make([]interface{}, 0, len(events))
		for _, event := range events {
			docs = append(docs, mongoEventDoc{
				ID:           primitive.NewObjectID(),
				EventID:      event.ID,
				FormID:       formID,
				StepID:       event.StepID,
				Value:        event.Value,
				SubmissionID: event.SubmissionID,
				Timestamp:    event.Timestamp.UnixMilli(),
			})
		}
		if _, err = eventColl.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true)); err != nil {
			return Analytics{}, fmt.Errorf("failed to append answer events: %w", err)
		}
	}

	update := bson.M{
		"$inc":         bson.M{"starts": starts, "completed": completed},
		"$setOnInsert": bson.M{"views": int64(0), "createdAt": now.UnixMilli()},
	}
	return updateCounters(ctx, ledgers, formID, update)
}

func updateCounters(ctx context.Context, ledgers *mongo.Collection, formID string, update bson.M) (Analytics, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	// Two concurrent upserts of a new ledger can race on its _id. The loser retries once as an update.
	var doc mongoLedgerDoc
	for attempt := 0; ; attempt++ {
		err := ledgers.FindOneAndUpdate(ctx, bson.M{"_id": formID}, update, opts).Decode(&doc)
		if err == nil {
			break
		}
		if attempt == 0 && mongo.IsDuplicateKeyError(err) {
			continue
		}
		return Analytics{}, fmt.Errorf("failed to update ledger: %w", err)
	}
	return Analytics{Views: doc.Views, Starts: doc.Starts, Completed: doc.Completed}, nil
}

// GetLedger retrieves the counters and answer events of a form.
func (s *mongoLedgerStore) GetLedger(ctx context.Context, formID string) (ledger *Ledger, err error) {
	defer observe("get", time.Now(), &err)

	ledgers, eventColl, err := s.collections()
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var doc mongoLedgerDoc
	if err = ledgers.FindOne(ctx, bson.M{"_id": formID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrLedgerNotFound
		}
		return nil, fmt.Errorf("failed to find ledger: %w", err)
	}

	cursor, err := eventColl.Find(ctx, bson.M{"formId": formID},
		options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list answer events: %w", err)
	}
	var eventDocs []mongoEventDoc
	if err = cursor.All(ctx, &eventDocs); err != nil {
		return nil, fmt.Errorf("failed to decode answer events: %w", err)
	}

	events := make([]ResponseEvent, 0, len(eventDocs))
	for _, e := range eventDocs {
		events = append(events, ResponseEvent{
			ID:           e.EventID,
			StepID:       e.StepID,
			Value:        e.Value,
			SubmissionID: e.SubmissionID,
			Timestamp:    time.UnixMilli(e.Timestamp).UTC(),
		})
	}

	return &Ledger{
		FormID:    formID,
		Analytics: Analytics{Views: doc.Views, Starts: doc.Starts, Completed: doc.Completed},
		Events:    events,
		CreatedAt: time.UnixMilli(doc.CreatedAt).UTC(),
	}, nil
}
