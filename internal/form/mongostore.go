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

package form

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/formflow/formflow/internal/system/database/provider"
)

const formsCollection = "forms"

// mongoFormStore is the MongoDB implementation of formStoreInterface.
type mongoFormStore struct {
	mongoProvider provider.MongoProviderInterface
	timeout       time.Duration

	indexMu      sync.Mutex
	indexesReady bool
}

var _ formStoreInterface = (*mongoFormStore)(nil)

type mongoFormDoc struct {
	ID          string `bson:"_id"`
	OwnerID     string `bson:"ownerId"`
	Name        string `bson:"name"`
	Theme       string `bson:"theme"`
	IsPublished bool   `bson:"isPublished"`
	IsDeleted   bool   `bson:"isDeleted"`
	CreatedAt   int64  `bson:"createdAt"`
	UpdatedAt   int64  `bson:"updatedAt"`
}

func newMongoFormStore(mongoProvider provider.MongoProviderInterface, timeout time.Duration) *mongoFormStore {
	return &mongoFormStore{
		mongoProvider: mongoProvider,
		timeout:       timeout,
	}
}

func (s *mongoFormStore) collection() (*mongo.Collection, error) {
	db, err := s.mongoProvider.GetDatabase(provider.DataSourceForms)
	if err != nil {
		return nil, fmt.Errorf("failed to get database: %w", err)
	}
	coll := db.Collection(formsCollection)
	if err := s.ensureIndexes(coll); err != nil {
		return nil, err
	}
	return coll, nil
}

// ensureIndexes creates the unique index on the names of live forms once per store.
// A failed attempt is retried by the next call.
func (s *mongoFormStore) ensureIndexes(coll *mongo.Collection) error {
	s.indexMu.Lock()
	defer s.indexMu.Unlock()
	if s.indexesReady {
		return nil
	}

	ctx, cancel := s.withTimeout(context.Background())
	defer cancel()

	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "ownerId", Value: 1}, {Key: "name", Value: 1}},
		Options: options.Index().
			SetName("uq_forms_owner_name").
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"isDeleted": false}),
	})
	if err != nil {
		return fmt.Errorf("failed to create form name index: %w", err)
	}
	s.indexesReady = true
	return nil
}

func (s *mongoFormStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

// CreateForm inserts a new form.
func (s *mongoFormStore) CreateForm(ctx context.Context, form Form) (err error) {
	defer observe("create", time.Now(), &err)

	coll, err := s.collection()
	if err != nil {
		return err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if _, err = coll.InsertOne(ctx, toMongoFormDoc(form)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrFormNameConflict
		}
		return fmt.Errorf("failed to create form: %w", err)
	}
	return nil
}

// GetForm retrieves a form by its id. Soft deleted forms are returned with IsDeleted set.
func (s *mongoFormStore) GetForm(ctx context.Context, formID string) (form Form, err error) {
	defer observe("get", time.Now(), &err)

	return s.findOne(ctx, bson.M{"_id": formID})
}

// GetFormByOwnerAndName retrieves a live form of the owner by its name.
func (s *mongoFormStore) GetFormByOwnerAndName(ctx context.Context, ownerID, name string) (form Form, err error) {
	defer observe("get_by_name", time.Now(), &err)

	return s.findOne(ctx, bson.M{"ownerId": ownerID, "name": name, "isDeleted": false})
}

func (s *mongoFormStore) findOne(ctx context.Context, filter bson.M) (Form, error) {
	coll, err := s.collection()
	if err != nil {
		return Form{}, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var doc mongoFormDoc
	if err := coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Form{}, ErrFormNotFound
		}
		return Form{}, fmt.Errorf("failed to find form: %w", err)
	}
	return doc.toForm(), nil
}

// ListFormsByOwner lists the live forms of the owner, most recently updated first.
func (s *mongoFormStore) ListFormsByOwner(ctx context.Context, ownerID string) (forms []Form, err error) {
	defer observe("list", time.Now(), &err)

	coll, err := s.collection()
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}, {Key: "_id", Value: 1}})
	cursor, err := coll.Find(ctx, bson.M{"ownerId": ownerID, "isDeleted": false}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list forms: %w", err)
	}

	var docs []mongoFormDoc
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode forms: %w", err)
	}

	forms = make([]Form, 0, len(docs))
	for _, doc := range docs {
		forms = append(forms, doc.toForm())
	}
	return forms, nil
}

// UpdateForm sets the name and theme of a live form.
func (s *mongoFormStore) UpdateForm(ctx context.Context, formID, name, theme string,
	updatedAt time.Time) (err error) {
	defer observe("update", time.Now(), &err)

	return s.updateLive(ctx, formID, bson.M{"name": name, "theme": theme, "updatedAt": updatedAt.UnixMilli()})
}

// UpdatePublished sets the published flag of a live form.
func (s *mongoFormStore) UpdatePublished(ctx context.Context, formID string, published bool,
	updatedAt time.Time) (err error) {
	defer observe("update_published", time.Now(), &err)

	return s.updateLive(ctx, formID, bson.M{"isPublished": published, "updatedAt": updatedAt.UnixMilli()})
}

// SoftDeleteForm marks a live form as deleted.
func (s *mongoFormStore) SoftDeleteForm(ctx context.Context, formID string, updatedAt time.Time) (err error) {
	defer observe("delete", time.Now(), &err)

	return s.updateLive(ctx, formID, bson.M{"isDeleted": true, "updatedAt": updatedAt.UnixMilli()})
}

func (s *mongoFormStore) updateLive(ctx context.Context, formID string, set bson.M) error {
	coll, err := s.collection()
	if err != nil {
		return err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	res, err := coll.UpdateOne(ctx, bson.M{"_id": formID, "isDeleted": false}, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrFormNameConflict
		}
		return fmt.Errorf("failed to update form: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrFormNotFound
	}
	return nil
}

func toMongoFormDoc(form Form) mongoFormDoc {
	return mongoFormDoc{
		ID:          form.ID,
		OwnerID:     form.OwnerID,
		Name:        form.Name,
		Theme:       form.Theme,
		IsPublished: form.IsPublished,
		IsDeleted:   form.IsDeleted,
		CreatedAt:   form.CreatedAt.UnixMilli(),
		UpdatedAt:   form.UpdatedAt.UnixMilli(),
	}
}

func (d mongoFormDoc) toForm() Form {
	return Form{
		ID:          d.ID,
		OwnerID:     d.OwnerID,
		Name:        d.Name,
		Theme:       d.Theme,
		IsPublished: d.IsPublished,
		IsDeleted:   d.IsDeleted,
		CreatedAt:   time.UnixMilli(d.CreatedAt).UTC(),
		UpdatedAt:   time.UnixMilli(d.UpdatedAt).UTC(),
	}
}
