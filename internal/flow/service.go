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

// Package flow provides the flow editing and traversal services of a form.
package flow

import (
	"context"
	"errors"
	"time"

	"github.com/formflow/formflow/internal/flow/graph"
	"github.com/formflow/formflow/internal/flow/model"
	"github.com/formflow/formflow/internal/form"
	"github.com/formflow/formflow/internal/system/error/serviceerror"
	"github.com/formflow/formflow/internal/system/events"
	"github.com/formflow/formflow/internal/system/log"
	"github.com/formflow/formflow/internal/system/metrics"
	"github.com/formflow/formflow/internal/system/utils"
)

const flowLoggerComponentName = "FlowService"

// Mutation operation names used in logs, metrics and events.
const (
	opAddStep        = "add_step"
	opUpdateStep     = "update_step"
	opSetTransitions = "set_transitions"
	opSetPosition    = "set_position"
	opSetEndStep     = "set_end_step"
	opDeleteStep     = "delete_step"
)

// NoExpectedVersion disables the client side version check of a mutation.
const NoExpectedVersion int64 = -1

var errTooManySteps = errors.New("flow has reached the step limit")

// FlowServiceInterface defines the interface for the flow service.
//
// Every mutation takes the version the client last read, or NoExpectedVersion. A mismatch is
// reported as a conflict right away. Without one, writes lost to a concurrent editor are retried
// against the fresh flow before a conflict is reported.
type FlowServiceInterface interface {
	GetFlow(ctx context.Context, callerID, formID string) (*FlowResponse, *serviceerror.ServiceError)
	GetLiveFlow(ctx context.Context, callerID, formID string) (*model.Flow, *serviceerror.ServiceError)
	ValidateFlow(ctx context.Context, callerID, formID string) (*ValidationResponse, *serviceerror.ServiceError)
	AddStep(ctx context.Context, callerID, formID string, expectedVersion int64, spec model.StepSpec) (
		*FlowResponse, *serviceerror.ServiceError)
	UpdateStep(ctx context.Context, callerID, formID, stepID string, expectedVersion int64,
		patch model.StepPatch) (*FlowResponse, *serviceerror.ServiceError)
	SetStepTransitions(ctx context.Context, callerID, formID, stepID string, expectedVersion int64,
		transitions []model.Transition) (*FlowResponse, *serviceerror.ServiceError)
	SetStepPosition(ctx context.Context, callerID, formID, stepID string, expectedVersion int64,
		position model.Position) (*FlowResponse, *serviceerror.ServiceError)
	SetEndStep(ctx context.Context, callerID, formID, stepID string, expectedVersion int64, isEnd bool) (
		*FlowResponse, *serviceerror.ServiceError)
	DeleteStep(ctx context.Context, callerID, formID, stepID string, expectedVersion int64) (
		*FlowResponse, *serviceerror.ServiceError)
	Traverse(ctx context.Context, callerID, formID string, request TraverseRequest) (
		*TraverseResponse, *serviceerror.ServiceError)
}

// flowService is the default implementation of the FlowServiceInterface.
type flowService struct {
	flowStore    flowStoreInterface
	formService  form.FormServiceInterface
	publisher    events.PublisherInterface
	maxSteps     int
	writeRetries int
	now          func() time.Time
	newStepID    func() string
}

// newFlowService creates a new instance of flowService.
func newFlowService(flowStore flowStoreInterface, formService form.FormServiceInterface,
	publisher events.PublisherInterface, maxSteps, writeRetries int) FlowServiceInterface {
	if writeRetries < 1 {
		writeRetries = 1
	}
	return &flowService{
		flowStore:    flowStore,
		formService:  formService,
		publisher:    publisher,
		maxSteps:     maxSteps,
		writeRetries: writeRetries,
		now:          time.Now,
		newStepID:    utils.GenerateUUID,
	}
}

// GetFlow retrieves the flow of a form owned by the caller together with its authoring warnings.
func (fs *flowService) GetFlow(ctx context.Context, callerID, formID string) (
	*FlowResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, flowLoggerComponentName))

	if _, svcErr := fs.formService.GetForm(ctx, callerID, formID); svcErr != nil {
		return nil, svcErr
	}

	flow, err := fs.flowStore.GetFlow(ctx, formID)
	if err != nil {
		return nil, logAndReturnStoreError(logger, "Failed to get flow", err)
	}

	return &FlowResponse{Flow: flow, Warnings: graph.Lint(flow)}, nil
}

// GetLiveFlow retrieves the flow of a form open to respondents.
func (fs *flowService) GetLiveFlow(ctx context.Context, callerID, formID string) (
	*model.Flow, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, flowLoggerComponentName))

	if _, svcErr := fs.formService.GetPublicForm(ctx, callerID, formID); svcErr != nil {
		return nil, svcErr
	}

	flow, err := fs.flowStore.GetFlow(ctx, formID)
	if err != nil {
		return nil, logAndReturnStoreError(logger, "Failed to get flow", err)
	}
	return flow, nil
}

// ValidateFlow lints the flow of a form owned by the caller.
func (fs *flowService) ValidateFlow(ctx context.Context, callerID, formID string) (
	*ValidationResponse, *serviceerror.ServiceError) {
	flowResponse, svcErr := fs.GetFlow(ctx, callerID, formID)
	if svcErr != nil {
		return nil, svcErr
	}

	return &ValidationResponse{
		Valid:    len(flowResponse.Warnings) == 0,
		Version:  flowResponse.Flow.Version,
		Warnings: flowResponse.Warnings,
	}, nil
}

// AddStep appends a step to the flow and links the previous step to it when that step has no
// transitions yet.
func (fs *flowService) AddStep(ctx context.Context, callerID, formID string, expectedVersion int64,
	spec model.StepSpec) (*FlowResponse, *serviceerror.ServiceError) {
	stepID := fs.newStepID()
	return fs.mutate(ctx, opAddStep, callerID, formID, stepID, expectedVersion, func(flow *model.Flow) error {
		if fs.maxSteps > 0 && len(flow.Steps) >= fs.maxSteps {
			return errTooManySteps
		}
		if _, err := graph.AddStep(flow, stepID, spec); err != nil {
			return err
		}
		graph.AutoLinkPredecessor(flow, stepID)
		return nil
	})
}

// UpdateStep merges the present fields of the patch into a step.
func (fs *flowService) UpdateStep(ctx context.Context, callerID, formID, stepID string, expectedVersion int64,
	patch model.StepPatch) (*FlowResponse, *serviceerror.ServiceError) {
	if patch.IsEmpty() {
		return nil, serviceerror.CustomServiceError(ErrorInvalidRequestFormat, "The patch does not carry any field")
	}
	return fs.mutate(ctx, opUpdateStep, callerID, formID, stepID, expectedVersion, func(flow *model.Flow) error {
		_, err := graph.UpdateStep(flow, stepID, patch)
		return err
	})
}

// SetStepTransitions replaces the transitions of a step.
func (fs *flowService) SetStepTransitions(ctx context.Context, callerID, formID, stepID string,
	expectedVersion int64, transitions []model.Transition) (*FlowResponse, *serviceerror.ServiceError) {
	return fs.mutate(ctx, opSetTransitions, callerID, formID, stepID, expectedVersion,
		func(flow *model.Flow) error {
			_, err := graph.SetStepTransitions(flow, stepID, transitions)
			return err
		})
}

// SetStepPosition moves a step on the authoring canvas.
func (fs *flowService) SetStepPosition(ctx context.Context, callerID, formID, stepID string,
	expectedVersion int64, position model.Position) (*FlowResponse, *serviceerror.ServiceError) {
	return fs.mutate(ctx, opSetPosition, callerID, formID, stepID, expectedVersion, func(flow *model.Flow) error {
		_, err := graph.SetStepPosition(flow, stepID, position)
		return err
	})
}

// SetEndStep marks or unmarks a step as an end step.
func (fs *flowService) SetEndStep(ctx context.Context, callerID, formID, stepID string, expectedVersion int64,
	isEnd bool) (*FlowResponse, *serviceerror.ServiceError) {
	return fs.mutate(ctx, opSetEndStep, callerID, formID, stepID, expectedVersion, func(flow *model.Flow) error {
		_, err := graph.SetEndStep(flow, stepID, isEnd)
		return err
	})
}

// DeleteStep removes a step and every reference to it.
func (fs *flowService) DeleteStep(ctx context.Context, callerID, formID, stepID string,
	expectedVersion int64) (*FlowResponse, *serviceerror.ServiceError) {
	return fs.mutate(ctx, opDeleteStep, callerID, formID, stepID, expectedVersion, func(flow *model.Flow) error {
		return graph.DeleteStep(flow, stepID)
	})
}

// Traverse selects the step following the current one of a live flow.
func (fs *flowService) Traverse(ctx context.Context, callerID, formID string, request TraverseRequest) (
	*TraverseResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, flowLoggerComponentName))

	flow, svcErr := fs.GetLiveFlow(ctx, callerID, formID)
	if svcErr != nil {
		return nil, svcErr
	}

	result, err := graph.Traverse(flow, request.CurrentStepID, request.Answers)
	if err != nil {
		if errors.Is(err, graph.ErrStepNotFound) {
			return nil, &ErrorStepNotFound
		}
		logger.Error("Failed to traverse flow", log.String(log.LoggerKeyFormID, formID), log.Error(err))
		return nil, &ErrorInternalServerError
	}

	switch result.Outcome {
	case graph.OutcomeDeadEnd:
		logger.Debug("Traversal reached a dead end", log.String(log.LoggerKeyFormID, formID),
			log.String(log.LoggerKeyStepID, result.StepID), log.String("reason", result.Reason))
		return nil, serviceerror.CustomServiceError(ErrorDeadEnd, result.Reason)
	case graph.OutcomeNext:
		next, _ := flow.GetStep(result.NextStepID)
		nextStep := next.Clone()
		return &TraverseResponse{TraversalResult: result, NextStep: &nextStep}, nil
	default:
		return &TraverseResponse{TraversalResult: result}, nil
	}
}

// mutate applies a graph operation to the flow of a form owned by the caller and writes the result
// with a version check. Stale writes are retried on a fresh read unless the caller pinned a version.
func (fs *flowService) mutate(ctx context.Context, operation, callerID, formID, stepID string,
	expectedVersion int64, apply func(flow *model.Flow) error) (*FlowResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, flowLoggerComponentName),
		log.String(log.LoggerKeyFormID, formID), log.String("operation", operation))
	m := metrics.GetMetrics()

	if _, svcErr := fs.formService.GetForm(ctx, callerID, formID); svcErr != nil {
		return nil, svcErr
	}

	for attempt := 1; attempt <= fs.writeRetries; attempt++ {
		current, err := fs.flowStore.GetFlow(ctx, formID)
		if err != nil {
			m.RecordFlowMutation(operation, storeOutcome(err))
			return nil, logAndReturnStoreError(logger, "Failed to get flow", err)
		}

		if expectedVersion != NoExpectedVersion && current.Version != expectedVersion {
			logger.Debug("Flow version does not match the expected version",
				log.Int64("expected", expectedVersion), log.Int64("current", current.Version))
			m.RecordFlowMutation(operation, metrics.OutcomeConflict)
			return nil, &ErrorFlowVersionConflict
		}

		working := current.Clone()
		if err := apply(working); err != nil {
			m.RecordFlowMutation(operation, metrics.OutcomeError)
			return nil, translateGraphError(logger, err)
		}
		if err := graph.CheckInvariants(working); err != nil {
			m.RecordFlowMutation(operation, metrics.OutcomeError)
			logger.Error("Flow mutation broke a graph invariant", log.Error(err))
			return nil, &ErrorInternalServerError
		}

		working.Version = current.Version + 1
		working.UpdatedAt = fs.now().UTC().Truncate(time.Millisecond)

		err = fs.flowStore.SaveFlow(ctx, working, current.Version)
		if err == nil {
			m.RecordFlowMutation(operation, metrics.OutcomeSuccess)
			logger.Debug("Flow updated", log.String(log.LoggerKeyStepID, stepID),
				log.Int64("version", working.Version), log.Int("attempt", attempt))
			fs.publisher.Publish(ctx, events.EventFlowUpdated, formID, map[string]interface{}{
				"operation": operation,
				"stepId":    stepID,
				"version":   working.Version,
			})
			return &FlowResponse{Flow: working, StepID: stepID, Warnings: graph.Lint(working)}, nil
		}

		if !errors.Is(err, ErrFlowVersionConflict) {
			m.RecordFlowMutation(operation, storeOutcome(err))
			return nil, logAndReturnStoreError(logger, "Failed to save flow", err)
		}

		m.RecordFlowWriteConflict(operation)
		logger.Debug("Stale flow write", log.Int("attempt", attempt))
		if expectedVersion != NoExpectedVersion {
			break
		}
	}

	m.RecordFlowMutation(operation, metrics.OutcomeConflict)
	return nil, &ErrorFlowVersionConflict
}

// translateGraphError maps a graph operation failure to a service error.
func translateGraphError(logger *log.Logger, err error) *serviceerror.ServiceError {
	var validationErr *graph.ValidationError
	switch {
	case errors.Is(err, graph.ErrStepNotFound):
		return &ErrorStepNotFound
	case errors.As(err, &validationErr):
		return serviceerror.CustomServiceError(ErrorInvalidStep, validationErr.Result.Error())
	case errors.Is(err, errTooManySteps):
		return &ErrorTooManySteps
	}
	logger.Error("Failed to apply flow mutation", log.Error(err))
	return &ErrorInternalServerError
}

func storeOutcome(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return metrics.OutcomeTimeout
	}
	return metrics.OutcomeError
}

// logAndReturnStoreError logs a store failure and returns the matching server error.
func logAndReturnStoreError(logger *log.Logger, message string, err error) *serviceerror.ServiceError {
	logger.Error(message, log.Error(err))
	if errors.Is(err, context.DeadlineExceeded) {
		return &ErrorStoreTimeout
	}
	return &ErrorInternalServerError
}
