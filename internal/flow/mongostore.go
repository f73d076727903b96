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

package flow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/formflow/formflow/internal/flow/model"
	"github.com/formflow/formflow/internal/system/database/provider"
)

const flowsCollection = "flows"

// mongoFlowStore is the MongoDB implementation of flowStoreInterface.
// A flow is one document keyed by its form id and guarded by its version field.
type mongoFlowStore struct {
	mongoProvider provider.MongoProviderInterface
	timeout       time.Duration
}

var _ flowStoreInterface = (*mongoFlowStore)(nil)

type mongoFlowDoc struct {
	FormID      string       `bson:"_id"`
	Steps       []model.Step `bson:"steps"`
	StartStepID string       `bson:"startStepId"`
	EndStepIDs  []string     `bson:"endStepIds"`
	Version     int64        `bson:"version"`
	UpdatedAt   int64        `bson:"updatedAt"`
}

func newMongoFlowStore(mongoProvider provider.MongoProviderInterface, timeout time.Duration) *mongoFlowStore {
	return &mongoFlowStore{
		mongoProvider: mongoProvider,
		timeout:       timeout,
	}
}

func (s *mongoFlowStore) collection() (*mongo.Collection, error) {
	db, err := s.mongoProvider.GetDatabase(provider.DataSourceForms)
	if err != nil {
		return nil, fmt.Errorf("failed to get database: %w", err)
	}
	return db.Collection(flowsCollection), nil
}

func (s *mongoFlowStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

// GetFlow retrieves the flow of a form.
func (s *mongoFlowStore) GetFlow(ctx context.Context, formID string) (flow *model.Flow, err error) {
	defer observe("get", time.Now(), &err)

	coll, err := s.collection()
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var doc mongoFlowDoc
	if err = coll.FindOne(ctx, bson.M{"_id": formID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.NewFlow(formID), nil
		}
		return nil, fmt.Errorf("failed to find flow: %w", err)
	}

	return flowDocument{
		Steps:       doc.Steps,
		StartStepID: doc.StartStepID,
		EndStepIDs:  doc.EndStepIDs,
	}.toFlow(formID, doc.Version, doc.UpdatedAt), nil
}

// SaveFlow inserts the first version of a flow or replaces the document holding the expected version.
func (s *mongoFlowStore) SaveFlow(ctx context.Context, flow *model.Flow, expectedVersion int64) (err error) {
	defer observe("save", time.Now(), &err)

	coll, err := s.collection()
	if err != nil {
		return err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	doc := mongoFlowDoc{
		FormID:      flow.FormID,
		Steps:       flow.Steps,
		StartStepID: flow.StartStepID,
		EndStepIDs:  flow.EndStepIDs,
		Version:     flow.Version,
		UpdatedAt:   flow.UpdatedAt.UnixMilli(),
	}
	if doc.Steps == nil {
		doc.Steps = []model.Step{}
	}
	if doc.EndStepIDs == nil {
		doc.EndStepIDs = []string{}
	}

	if expectedVersion == 0 {
		if _, err = coll.InsertOne(ctx, doc); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return ErrFlowVersionConflict
			}
			return fmt.Errorf("failed to insert flow: %w", err)
		}
		return nil
	}

	res, err := coll.ReplaceOne(ctx, bson.M{"_id": flow.FormID, "version": expectedVersion}, doc)
	if err != nil {
		return fmt.Errorf("failed to replace flow: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrFlowVersionConflict
	}
	return nil
}
