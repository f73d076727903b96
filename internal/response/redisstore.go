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
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/formflow/formflow/internal/flow/model"
	"github.com/formflow/formflow/internal/system/database/provider"
)

const (
	fieldViews     = "views"
	fieldStarts    = "starts"
	fieldCompleted = "completed"
	fieldCreatedAt = "createdAt"
)

// redisLedgerStore is the Redis implementation of ledgerStoreInterface.
// The counters of a ledger live in a hash and its events in a list of JSON documents.
type redisLedgerStore struct {
	redisProvider provider.RedisProviderInterface
	keyPrefix     string
	timeout       time.Duration
}

var _ ledgerStoreInterface = (*redisLedgerStore)(nil)

type redisEventDoc struct {
	EventID      string      `json:"eventId"`
	StepID       string      `json:"stepId"`
	Value        model.Value `json:"value"`
	SubmissionID string      `json:"submissionId,omitempty"`
	Timestamp    int64       `json:"timestamp"`
}

func newRedisLedgerStore(redisProvider provider.RedisProviderInterface, keyPrefix string,
	timeout time.Duration) *redisLedgerStore {
	return &redisLedgerStore{
		redisProvider: redisProvider,
		keyPrefix:     keyPrefix,
		timeout:       timeout,
	}
}

func (s *redisLedgerStore) ledgerKey(formID string) string {
	return fmt.Sprintf("%s:ledger:%s", s.keyPrefix, formID)
}

func (s *redisLedgerStore) eventsKey(formID string) string {
	return fmt.Sprintf("%s:events:%s", s.keyPrefix, formID)
}

func (s *redisLedgerStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

// IncrementViews counts one view of a form.
func (s *redisLedgerStore) IncrementViews(ctx context.Context, formID string, now time.Time) (
	analytics Analytics, err error) {
	defer observe("increment_views", time.Now(), &err)

	client, err := s.redisProvider.GetRedisClient(provider.DataSourceResponses)
	if err != nil {
		return Analytics{}, fmt.Errorf("failed to get redis client: %w", err)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	key := s.ledgerKey(formID)
	pipe := client.TxPipeline()
	pipe.HSetNX(ctx, key, fieldCreatedAt, now.UnixMilli())
	pipe.HIncrBy(ctx, key, fieldViews, 1)
	counters := pipe.HGetAll(ctx, key)
	if _, err = pipe.Exec(ctx); err != nil {
		return Analytics{}, fmt.Errorf("failed to count view: %w", err)
	}
	return parseCountersFromHash(counters.Val())
}

// AppendAnswers appends the answer events and adds to the funnel counters in one MULTI/EXEC block.
func (s *redisLedgerStore) AppendAnswers(ctx context.Context, formID string, events []ResponseEvent,
	starts, completed int64, now time.Time) (analytics Analytics, err error) {
	defer observe("append_answers", time.Now(), &err)

	docs := make([]interface{}, 0, len(events))
	for _, event := range events {
		doc, marshalErr := json.Marshal(redisEventDoc{
			EventID:      event.ID,
			StepID:       event.StepID,
			Value:        event.Value,
			SubmissionID: event.SubmissionID,
			Timestamp:    event.Timestamp.UnixMilli(),
		})
		if marshalErr != nil {
			return Analytics{}, fmt.Errorf("failed to encode answer event: %w", marshalErr)
		}
		docs = append(docs, string(doc))
	}

	client, err := s.redisProvider.GetRedisClient(provider.DataSourceResponses)
	if err != nil {
		return Analytics{}, fmt.Errorf("failed to get redis client: %w", err)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	key := s.ledgerKey(formID)
	pipe := client.TxPipeline()
	pipe.HSetNX(ctx, key, fieldCreatedAt, now.UnixMilli())
	pipe.HIncrBy(ctx, key, fieldStarts, starts)
	pipe.HIncrBy(ctx, key, fieldCompleted, completed)
	if len(docs) > 0 {
		pipe.RPush(ctx, s.eventsKey(formID), docs...)
	}
	counters := pipe.HGetAll(ctx, key)
	if _, err = pipe.Exec(ctx); err != nil {
		return Analytics{}, fmt.Errorf("failed to append answers: %w", err)
	}
	return parseCountersFromHash(counters.Val())
}

// GetLedger retrieves the counters and answer events of a form from one consistent snapshot.
func (s *redisLedgerStore) GetLedger(ctx context.Context, formID string) (ledger *Ledger, err error) {
	defer observe("get", time.Now(), &err)

	client, err := s.redisProvider.GetRedisClient(provider.DataSourceResponses)
	if err != nil {
		return nil, fmt.Errorf("failed to get redis client: %w", err)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	pipe := client.TxPipeline()
	counters := pipe.HGetAll(ctx, s.ledgerKey(formID))
	rawEvents := pipe.LRange(ctx, s.eventsKey(formID), 0, -1)
	if _, err = pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to read ledger: %w", err)
	}

	hash := counters.Val()
	if len(hash) == 0 {
		return nil, ErrLedgerNotFound
	}
	analytics, err := parseCountersFromHash(hash)
	if err != nil {
		return nil, err
	}
	createdAt, err := parseHashInt(hash, fieldCreatedAt)
	if err != nil {
		return nil, err
	}

	events := make([]ResponseEvent, 0, len(rawEvents.Val()))
	for _, raw := range rawEvents.Val() {
		var doc redisEventDoc
		if err := json.Unmarshal([]byte(raw), &doc); err != nil {
			return nil, fmt.Errorf("failed to decode answer event: %w", err)
		}
		events = append(events, ResponseEvent{
			ID:           doc.EventID,
			StepID:       doc.StepID,
			Value:        doc.Value,
			SubmissionID: doc.SubmissionID,
			Timestamp:    time.UnixMilli(doc.Timestamp).UTC(),
		})
	}

	return &Ledger{
		FormID:    formID,
		Analytics: analytics,
		Events:    events,
		CreatedAt: time.UnixMilli(createdAt).UTC(),
	}, nil
}

func parseCountersFromHash(hash map[string]string) (Analytics, error) {
	views, err := parseHashInt(hash, fieldViews)
	if err != nil {
		return Analytics{}, err
	}
	starts, err := parseHashInt(hash, fieldStarts)
	if err != nil {
		return Analytics{}, err
	}
	completed, err := parseHashInt(hash, fieldCompleted)
	if err != nil {
		return Analytics{}, err
	}
	return Analytics{Views: views, Starts: starts, Completed: completed}, nil
}

// parseHashInt reads an integer hash field. A missing field reads as zero.
func parseHashInt(hash map[string]string, field string) (int64, error) {
	raw, ok := hash[field]
	if !ok {
		return 0, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse ledger field %s: %w", field, err)
	}
	return n, nil
}
