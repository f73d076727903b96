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

// Package response records respondent answers and funnel counters and builds the response report of a form.
package response

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/formflow/formflow/internal/flow"
	"github.com/formflow/formflow/internal/form"
	"github.com/formflow/formflow/internal/system/error/serviceerror"
	"github.com/formflow/formflow/internal/system/events"
	"github.com/formflow/formflow/internal/system/log"
	"github.com/formflow/formflow/internal/system/metrics"
	"github.com/formflow/formflow/internal/system/utils"
)

const (
	responseLoggerComponentName = "ResponseService"
	maxAnswersPerRequest        = 500
	maxSubmissionIDLength       = 255
)

// ResponseServiceInterface defines the interface for the response service.
type ResponseServiceInterface interface {
	RecordView(ctx context.Context, callerID, formID string) (*Analytics, *serviceerror.ServiceError)
	RecordAnswers(ctx context.Context, callerID, formID string, request RecordAnswersRequest) (
		*Analytics, *serviceerror.ServiceError)
	GetReport(ctx context.Context, callerID, formID string) (*Report, *serviceerror.ServiceError)
}

// responseService is the default implementation of the ResponseServiceInterface.
type responseService struct {
	ledgerStore ledgerStoreInterface
	formService form.FormServiceInterface
	flowService flow.FlowServiceInterface
	publisher   events.PublisherInterface
	now         func() time.Time
	newEventID  func() string
}

// newResponseService creates a new instance of responseService.
func newResponseService(ledgerStore ledgerStoreInterface, formService form.FormServiceInterface,
	flowService flow.FlowServiceInterface, publisher events.PublisherInterface) ResponseServiceInterface {
	return &responseService{
		ledgerStore: ledgerStore,
		formService: formService,
		flowService: flowService,
		publisher:   publisher,
		now:         time.Now,
		newEventID:  utils.GenerateUUID,
	}
}

// RecordView counts one view of a form open to the caller. Repeated calls are all counted.
func (rs *responseService) RecordView(ctx context.Context, callerID, formID string) (
	*Analytics, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, responseLoggerComponentName))

	if _, svcErr := rs.formService.GetPublicForm(ctx, callerID, formID); svcErr != nil {
		return nil, svcErr
	}

	analytics, err := rs.ledgerStore.IncrementViews(ctx, formID, rs.now().UTC())
	if err != nil {
		return nil, logAndReturnStoreError(logger, "Failed to count form view", err)
	}
	metrics.GetMetrics().RecordFunnelEvent(funnelEventView)

	analytics = withCompletionRate(analytics)
	rs.publisher.Publish(ctx, events.EventFormViewRecorded, formID, map[string]interface{}{
		"views": analytics.Views,
	})
	return &analytics, nil
}

// RecordAnswers appends the answers of a respondent and moves the start and completion counters.
// Answers without a step id or without a value are skipped. An explicit null is recorded.
func (rs *responseService) RecordAnswers(ctx context.Context, callerID, formID string,
	request RecordAnswersRequest) (*Analytics, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, responseLoggerComponentName))

	if len(request.Responses) > maxAnswersPerRequest {
		return nil, invalidResponseRequestError(
			fmt.Sprintf("a request must not carry more than %d answers", maxAnswersPerRequest))
	}
	submissionID := strings.TrimSpace(request.SubmissionID)
	if len(submissionID) > maxSubmissionIDLength {
		return nil, invalidResponseRequestError(
			fmt.Sprintf("submission id must not exceed %d characters", maxSubmissionIDLength))
	}

	if _, svcErr := rs.formService.GetPublicForm(ctx, callerID, formID); svcErr != nil {
		return nil, svcErr
	}

	now := rs.now().UTC().Truncate(time.Millisecond)
	answerEvents := make([]ResponseEvent, 0, len(request.Responses))
	for _, answer := range request.Responses {
		if answer.StepID == "" || !answer.Value.IsDefined() {
			continue
		}
		answerEvents = append(answerEvents, ResponseEvent{
			ID:           rs.newEventID(),
			StepID:       answer.StepID,
			Value:        answer.Value,
			SubmissionID: submissionID,
			Timestamp:    now,
		})
	}

	var starts, completed int64
	if request.IsStart {
		starts = 1
	}
	if request.IsComplete {
		completed = 1
	}

	analytics, err := rs.ledgerStore.AppendAnswers(ctx, formID, answerEvents, starts, completed, now)
	if err != nil {
		return nil, logAndReturnStoreError(logger, "Failed to record answers", err)
	}

	m := metrics.GetMetrics()
	m.RecordAnswerEvents(len(answerEvents))
	if request.IsStart {
		m.RecordFunnelEvent(funnelEventStart)
	}
	if request.IsComplete {
		m.RecordFunnelEvent(funnelEventComplete)
	}

	logger.Debug("Recorded answers", log.String(log.LoggerKeyFormID, formID),
		log.Int("answers", len(answerEvents)), log.Bool("isStart", request.IsStart),
		log.Bool("isComplete", request.IsComplete))

	analytics = withCompletionRate(analytics)
	rs.publisher.Publish(ctx, events.EventResponseRecorded, formID, map[string]interface{}{
		"answers":      len(answerEvents),
		"isStart":      request.IsStart,
		"isComplete":   request.IsComplete,
		"submissionId": submissionID,
	})
	return &analytics, nil
}

// GetReport builds the response report of a form owned by the caller. A form without a ledger
// reports zero counters and no rows.
func (rs *responseService) GetReport(ctx context.Context, callerID, formID string) (
	*Report, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, responseLoggerComponentName))

	flowResponse, svcErr := rs.flowService.GetFlow(ctx, callerID, formID)
	if svcErr != nil {
		return nil, svcErr
	}

	ledger, err := rs.ledgerStore.GetLedger(ctx, formID)
	if err != nil {
		if !errors.Is(err, ErrLedgerNotFound) {
			return nil, logAndReturnStoreError(logger, "Failed to get response ledger", err)
		}
		ledger = &Ledger{FormID: formID}
	}

	columns, submissions := Aggregate(flowResponse.Flow.Steps, ledger.Events)
	return &Report{
		Columns:     columns,
		Submissions: submissions,
		Analytics:   withCompletionRate(ledger.Analytics),
	}, nil
}

// logAndReturnStoreError logs a store failure and returns the matching server error.
func logAndReturnStoreError(logger *log.Logger, message string, err error) *serviceerror.ServiceError {
	logger.Error(message, log.Error(err))
	if errors.Is(err, context.DeadlineExceeded) {
		return &ErrorStoreTimeout
	}
	return &ErrorInternalServerError
}

func invalidResponseRequestError(detail string) *serviceerror.ServiceError {
	return serviceerror.CustomServiceError(ErrorInvalidRequestFormat,
		fmt.Sprintf("%s: %s", ErrorInvalidRequestFormat.ErrorDescription, detail))
}
