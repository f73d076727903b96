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
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/formflow/formflow/internal/flow/model"
	"github.com/formflow/formflow/internal/system/config"
	"github.com/formflow/formflow/internal/system/database/provider"
	dbutils "github.com/formflow/formflow/internal/system/database/utils"
	"github.com/formflow/formflow/internal/system/log"
	"github.com/formflow/formflow/internal/system/metrics"
)

const (
	storeMetricsName    = "responses"
	redisLedgerKeyspace = "formflow"
)

// ledgerStoreInterface defines the interface for response ledger store operations.
// Every write creates the ledger of the form when it does not exist yet.
type ledgerStoreInterface interface {
	// IncrementViews counts one view and returns the updated counters.
	IncrementViews(ctx context.Context, formID string, now time.Time) (Analytics, error)
	// AppendAnswers appends the events and adds to the start and completion counters in one atomic
	// write, then returns the updated counters.
	AppendAnswers(ctx context.Context, formID string, events []ResponseEvent, starts, completed int64,
		now time.Time) (Analytics, error)
	// GetLedger returns the ledger of a form, or ErrLedgerNotFound.
	GetLedger(ctx context.Context, formID string) (*Ledger, error)
}

// newLedgerStore creates the ledger store matching the configured responses data source.
func newLedgerStore() ledgerStoreInterface {
	dataSource := config.GetServerRuntime().Config.Database.Responses
	switch dataSource.Type {
	case config.DataSourceTypeMongo:
		return newMongoLedgerStore(provider.GetMongoProvider(), dataSource.Timeout)
	case config.DataSourceTypeRedis:
		return newRedisLedgerStore(provider.GetRedisProvider(), redisLedgerKeyspace, dataSource.Timeout)
	}
	return newSQLLedgerStore(provider.GetDBProvider(), dataSource.Timeout)
}

// sqlLedgerStore is the database/sql implementation of ledgerStoreInterface.
type sqlLedgerStore struct {
	dbProvider provider.DBProviderInterface
	timeout    time.Duration
}

var _ ledgerStoreInterface = (*sqlLedgerStore)(nil)

func newSQLLedgerStore(dbProvider provider.DBProviderInterface, timeout time.Duration) *sqlLedgerStore {
	return &sqlLedgerStore{
		dbProvider: dbProvider,
		timeout:    timeout,
	}
}

func (s *sqlLedgerStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

// IncrementViews counts one view of a form.
func (s *sqlLedgerStore) IncrementViews(ctx context.Context, formID string, now time.Time) (
	analytics Analytics, err error) {
	defer observe("increment_views", time.Now(), &err)

	dbClient, err := s.dbProvider.GetDBClient(provider.DataSourceResponses)
	if err != nil {
		return Analytics{}, fmt.Errorf("failed to get database client: %w", err)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	results, err := dbClient.Query(ctx, queryIncrementViews, formID, now.UnixMilli())
	if err != nil {
		return Analytics{}, fmt.Errorf("failed to count view: %w", err)
	}
	if len(results) == 0 {
		return Analytics{}, errors.New("view count returned no counters")
	}
	return parseCountersFromRow(results[0])
}

// AppendAnswers appends answer events and adds to the funnel counters in one transaction.
func (s *sqlLedgerStore) AppendAnswers(ctx context.Context, formID string, events []ResponseEvent,
	starts, completed int64, now time.Time) (analytics Analytics, err error) {
	defer observe("append_answers", time.Now(), &err)

	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "ResponseLedgerStore"))

	dbClient, err := s.dbProvider.GetDBClient(provider.DataSourceResponses)
	if err != nil {
		return Analytics{}, fmt.Errorf("failed to get database client: %w", err)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	tx, err := dbClient.BeginTx(ctx)
	if err != nil {
		return Analytics{}, fmt.Errorf("failed to begin transaction: %w", err)
	}

	rollback := func(cause error) error {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			logger.Error("Failed to roll back answer transaction", log.Error(rollbackErr))
		}
		return cause
	}

	if _, err = tx.Exec(ctx, queryAddLedgerCounters, formID, starts, completed, now.UnixMilli()); err != nil {
		return Analytics{}, rollback(fmt.Errorf("failed to update ledger counters: %w", err))
	}

	for _, event := range events {
		valueDoc, marshalErr := json.Marshal(event.Value)
		if marshalErr != nil {
			return Analytics{}, rollback(fmt.Errorf("failed to encode answer value: %w", marshalErr))
		}
		var submissionID interface{}
		if event.SubmissionID != "" {
			submissionID = event.SubmissionID
		}
		if _, err = tx.Exec(ctx, queryInsertResponseEvent, event.ID, formID, event.StepID, string(valueDoc),
			submissionID, event.Timestamp.UnixMilli()); err != nil {
			return Analytics{}, rollback(fmt.Errorf("failed to append answer event: %w", err))
		}
	}

	if err = tx.Commit(); err != nil {
		return Analytics{}, fmt.Errorf("failed to commit answer transaction: %w", err)
	}

	results, err := dbClient.Query(ctx, queryGetLedger, formID)
	if err != nil {
		return Analytics{}, fmt.Errorf("failed to read ledger counters: %w", err)
	}
	if len(results) == 0 {
		return Analytics{}, errors.New("ledger missing after answer write")
	}
	return parseCountersFromRow(results[0])
}

// GetLedger retrieves the counters and answer events of a form.
func (s *sqlLedgerStore) GetLedger(ctx context.Context, formID string) (ledger *Ledger, err error) {
	defer observe("get", time.Now(), &err)

	dbClient, err := s.dbProvider.GetDBClient(provider.DataSourceResponses)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	results, err := dbClient.Query(ctx, queryGetLedger, formID)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return nil, ErrLedgerNotFound
	}

	analytics, err := parseCountersFromRow(results[0])
	if err != nil {
		return nil, err
	}
	createdAt, err := dbutils.GetInt64(results[0], "created_at")
	if err != nil {
		return nil, err
	}

	eventRows, err := dbClient.Query(ctx, queryListResponseEvents, formID)
	if err != nil {
		return nil, fmt.Errorf("failed to list answer events: %w", err)
	}
	events := make([]ResponseEvent, 0, len(eventRows))
	for _, row := range eventRows {
		event, err := parseEventFromRow(row)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return &Ledger{
		FormID:    formID,
		Analytics: analytics,
		Events:    events,
		CreatedAt: time.UnixMilli(createdAt).UTC(),
	}, nil
}

// parseCountersFromRow parses the funnel counters of a ledger row.
func parseCountersFromRow(row map[string]interface{}) (Analytics, error) {
	views, err := dbutils.GetInt64(row, "views")
	if err != nil {
		return Analytics{}, err
	}
	starts, err := dbutils.GetInt64(row, "starts")
	if err != nil {
		return Analytics{}, err
	}
	completed, err := dbutils.GetInt64(row, "completed")
	if err != nil {
		return Analytics{}, err
	}
	return Analytics{Views: views, Starts: starts, Completed: completed}, nil
}

// parseEventFromRow parses an answer event from a database row.
func parseEventFromRow(row map[string]interface{}) (ResponseEvent, error) {
	eventID, err := dbutils.GetString(row, "event_id")
	if err != nil {
		return ResponseEvent{}, err
	}
	stepID, err := dbutils.GetString(row, "step_id")
	if err != nil {
		return ResponseEvent{}, err
	}
	valueDoc, err := dbutils.GetString(row, "value_doc")
	if err != nil {
		return ResponseEvent{}, err
	}
	submissionID, err := dbutils.GetNullableString(row, "submission_id")
	if err != nil {
		return ResponseEvent{}, err
	}
	createdAt, err := dbutils.GetInt64(row, "created_at")
	if err != nil {
		return ResponseEvent{}, err
	}

	var value model.Value
	if err := json.Unmarshal([]byte(valueDoc), &value); err != nil {
		return ResponseEvent{}, fmt.Errorf("failed to decode answer value of event %s: %w", eventID, err)
	}

	return ResponseEvent{
		ID:           eventID,
		StepID:       stepID,
		Value:        value,
		SubmissionID: submissionID,
		Timestamp:    time.UnixMilli(createdAt).UTC(),
	}, nil
}

// observe records the latency and outcome of a store call.
func observe(operation string, start time.Time, err *error) {
	callErr := *err
	if errors.Is(callErr, ErrLedgerNotFound) {
		callErr = nil
	}
	metrics.GetMetrics().ObserveStoreCall(storeMetricsName, operation, start, callErr)
}
