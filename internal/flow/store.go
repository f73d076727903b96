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
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/formflow/formflow/internal/flow/model"
	"github.com/formflow/formflow/internal/system/config"
	"github.com/formflow/formflow/internal/system/database/provider"
	dbutils "github.com/formflow/formflow/internal/system/database/utils"
	"github.com/formflow/formflow/internal/system/metrics"
)

const storeMetricsName = "flows"

// flowStoreInterface defines the interface for flow store operations.
type flowStoreInterface interface {
	// GetFlow returns the stored flow of a form, or the empty flow at version 0 when none was written.
	GetFlow(ctx context.Context, formID string) (*model.Flow, error)
	// SaveFlow writes the flow carrying its new version. It returns ErrFlowVersionConflict when the
	// stored version is not expectedVersion.
	SaveFlow(ctx context.Context, flow *model.Flow, expectedVersion int64) error
}

// newFlowStore creates the flow store matching the configured forms data source.
func newFlowStore() flowStoreInterface {
	dataSource := config.GetServerRuntime().Config.Database.Forms
	if dataSource.Type == config.DataSourceTypeMongo {
		return newMongoFlowStore(provider.GetMongoProvider(), dataSource.Timeout)
	}
	return newSQLFlowStore(provider.GetDBProvider(), dataSource.Timeout)
}

// flowDocument is the persisted part of a flow. Version and update time live in their own columns.
type flowDocument struct {
	Steps       []model.Step `json:"steps"`
	StartStepID string       `json:"startStepId,omitempty"`
	EndStepIDs  []string     `json:"endStepIds"`
}

// sqlFlowStore is the database/sql implementation of flowStoreInterface.
type sqlFlowStore struct {
	dbProvider provider.DBProviderInterface
	timeout    time.Duration
}

var _ flowStoreInterface = (*sqlFlowStore)(nil)

func newSQLFlowStore(dbProvider provider.DBProviderInterface, timeout time.Duration) *sqlFlowStore {
	return &sqlFlowStore{
		dbProvider: dbProvider,
		timeout:    timeout,
	}
}

func (s *sqlFlowStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

// GetFlow retrieves the flow of a form.
func (s *sqlFlowStore) GetFlow(ctx context.Context, formID string) (flow *model.Flow, err error) {
	defer observe("get", time.Now(), &err)

	dbClient, err := s.dbProvider.GetDBClient(provider.DataSourceForms)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	results, err := dbClient.Query(ctx, queryGetFlow, formID)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return model.NewFlow(formID), nil
	}
	return parseFlowFromRow(formID, results[0])
}

// SaveFlow inserts the first version of a flow or replaces the stored version with a compare and swap.
func (s *sqlFlowStore) SaveFlow(ctx context.Context, flow *model.Flow, expectedVersion int64) (err error) {
	defer observe("save", time.Now(), &err)

	doc, err := json.Marshal(flowDocument{
		Steps:       flow.Steps,
		StartStepID: flow.StartStepID,
		EndStepIDs:  flow.EndStepIDs,
	})
	if err != nil {
		return fmt.Errorf("failed to encode flow: %w", err)
	}

	dbClient, err := s.dbProvider.GetDBClient(provider.DataSourceForms)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var rows int64
	if expectedVersion == 0 {
		rows, err = dbClient.Execute(ctx, queryInsertFlow, flow.FormID, string(doc), flow.Version,
			flow.UpdatedAt.UnixMilli())
	} else {
		rows, err = dbClient.Execute(ctx, queryUpdateFlow, string(doc), flow.Version, flow.UpdatedAt.UnixMilli(),
			flow.FormID, expectedVersion)
	}
	if err != nil {
		return fmt.Errorf("failed to save flow: %w", err)
	}
	if rows == 0 {
		return ErrFlowVersionConflict
	}
	return nil
}

// parseFlowFromRow parses a flow from a database row.
func parseFlowFromRow(formID string, row map[string]interface{}) (*model.Flow, error) {
	raw, err := dbutils.GetString(row, "flow_doc")
	if err != nil {
		return nil, err
	}
	version, err := dbutils.GetInt64(row, "version")
	if err != nil {
		return nil, err
	}
	updatedAt, err := dbutils.GetInt64(row, "updated_at")
	if err != nil {
		return nil, err
	}

	var doc flowDocument
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("failed to decode flow document: %w", err)
	}
	return doc.toFlow(formID, version, updatedAt), nil
}

func (d flowDocument) toFlow(formID string, version, updatedAt int64) *model.Flow {
	flow := model.NewFlow(formID)
	flow.StartStepID = d.StartStepID
	flow.Version = version
	flow.UpdatedAt = time.UnixMilli(updatedAt).UTC()
	for _, step := range d.Steps {
		step.Transitions = model.CloneTransitions(step.Transitions)
		flow.Steps = append(flow.Steps, step)
	}
	flow.EndStepIDs = append(flow.EndStepIDs, d.EndStepIDs...)
	return flow
}

// observe records the latency and outcome of a store call. A stale write is not a store failure.
func observe(operation string, start time.Time, err *error) {
	callErr := *err
	if errors.Is(callErr, ErrFlowVersionConflict) {
		callErr = nil
	}
	metrics.GetMetrics().ObserveStoreCall(storeMetricsName, operation, start, callErr)
}
