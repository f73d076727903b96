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
	"fmt"
	"net/http"

	"github.com/formflow/formflow/internal/flow/model"
	"github.com/formflow/formflow/internal/form"
	"github.com/formflow/formflow/internal/system/constants"
	"github.com/formflow/formflow/internal/system/error/apierror"
	"github.com/formflow/formflow/internal/system/error/serviceerror"
	"github.com/formflow/formflow/internal/system/log"
	sysutils "github.com/formflow/formflow/internal/system/utils"
)

const flowHandlerLoggerComponentName = "FlowHandler"

// flowHandler is the handler for flow editing and traversal operations.
type flowHandler struct {
	flowService FlowServiceInterface
}

// newFlowHandler creates a new instance of flowHandler.
func newFlowHandler(flowService FlowServiceInterface) *flowHandler {
	return &flowHandler{
		flowService: flowService,
	}
}

// HandleFlowGetRequest handles the flow retrieval request of the form owner.
func (h *flowHandler) HandleFlowGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, flowHandlerLoggerComponentName))

	flowResponse, svcErr := h.flowService.GetFlow(r.Context(), sysutils.GetCallerID(r), r.PathValue("formId"))
	if svcErr != nil {
		writeErrorResponse(w, logger, svcErr)
		return
	}

	writeFlowResponse(w, logger, http.StatusOK, flowResponse)
}

// HandleLiveFlowGetRequest handles the public flow retrieval request of a respondent.
func (h *flowHandler) HandleLiveFlowGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, flowHandlerLoggerComponentName))

	flow, svcErr := h.flowService.GetLiveFlow(r.Context(), sysutils.GetCallerID(r), r.PathValue("formId"))
	if svcErr != nil {
		writeErrorResponse(w, logger, svcErr)
		return
	}

	sysutils.WriteJSONResponse(w, http.StatusOK, flow)
}

// HandleFlowValidateRequest handles the flow lint request.
func (h *flowHandler) HandleFlowValidateRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, flowHandlerLoggerComponentName))

	validation, svcErr := h.flowService.ValidateFlow(r.Context(), sysutils.GetCallerID(r), r.PathValue("formId"))
	if svcErr != nil {
		writeErrorResponse(w, logger, svcErr)
		return
	}

	w.Header().Set(constants.ETagHeaderName, formatETag(validation.Version))
	sysutils.WriteJSONResponse(w, http.StatusOK, validation)
}

// HandleStepPostRequest handles the step creation request.
func (h *flowHandler) HandleStepPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, flowHandlerLoggerComponentName))

	expectedVersion, ok := readExpectedVersion(w, r, logger)
	if !ok {
		return
	}
	spec, err := sysutils.DecodeJSONBody[model.StepSpec](r)
	if err != nil {
		writeErrorResponse(w, logger, serviceerror.CustomServiceError(ErrorInvalidRequestFormat,
			"Failed to parse request body"))
		return
	}

	spec.Label = sysutils.SanitizeString(spec.Label)
	spec.Placeholder = sysutils.SanitizeString(spec.Placeholder)

	flowResponse, svcErr := h.flowService.AddStep(r.Context(), sysutils.GetCallerID(r), r.PathValue("formId"),
		expectedVersion, *spec)
	if svcErr != nil {
		writeErrorResponse(w, logger, svcErr)
		return
	}

	writeFlowResponse(w, logger, http.StatusCreated, flowResponse)
}

// HandleStepPatchRequest handles the partial step update request.
func (h *flowHandler) HandleStepPatchRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, flowHandlerLoggerComponentName))

	expectedVersion, ok := readExpectedVersion(w, r, logger)
	if !ok {
		return
	}
	patch, err := sysutils.DecodeJSONBody[model.StepPatch](r)
	if err != nil {
		writeErrorResponse(w, logger, serviceerror.CustomServiceError(ErrorInvalidRequestFormat,
			"Failed to parse request body"))
		return
	}

	if patch.Label.Present {
		patch.Label.Value = sysutils.SanitizeString(patch.Label.Value)
	}
	if patch.Placeholder.Present {
		patch.Placeholder.Value = sysutils.SanitizeString(patch.Placeholder.Value)
	}

	flowResponse, svcErr := h.flowService.UpdateStep(r.Context(), sysutils.GetCallerID(r), r.PathValue("formId"),
		r.PathValue("stepId"), expectedVersion, *patch)
	if svcErr != nil {
		writeErrorResponse(w, logger, svcErr)
		return
	}

	writeFlowResponse(w, logger, http.StatusOK, flowResponse)
}

// HandleStepTransitionsPutRequest handles the transition replacement request.
func (h *flowHandler) HandleStepTransitionsPutRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, flowHandlerLoggerComponentName))

	expectedVersion, ok := readExpectedVersion(w, r, logger)
	if !ok {
		return
	}
	request, err := sysutils.DecodeJSONBody[SetTransitionsRequest](r)
	if err != nil {
		writeErrorResponse(w, logger, serviceerror.CustomServiceError(ErrorInvalidRequestFormat,
			"Failed to parse request body"))
		return
	}

	flowResponse, svcErr := h.flowService.SetStepTransitions(r.Context(), sysutils.GetCallerID(r),
		r.PathValue("formId"), r.PathValue("stepId"), expectedVersion, request.Transitions)
	if svcErr != nil {
		writeErrorResponse(w, logger, svcErr)
		return
	}

	writeFlowResponse(w, logger, http.StatusOK, flowResponse)
}

// HandleStepPositionPutRequest handles the step move request.
func (h *flowHandler) HandleStepPositionPutRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, flowHandlerLoggerComponentName))

	expectedVersion, ok := readExpectedVersion(w, r, logger)
	if !ok {
		return
	}
	position, err := sysutils.DecodeJSONBody[model.Position](r)
	if err != nil {
		writeErrorResponse(w, logger, serviceerror.CustomServiceError(ErrorInvalidRequestFormat,
			"Failed to parse request body"))
		return
	}

	flowResponse, svcErr := h.flowService.SetStepPosition(r.Context(), sysutils.GetCallerID(r),
		r.PathValue("formId"), r.PathValue("stepId"), expectedVersion, *position)
	if svcErr != nil {
		writeErrorResponse(w, logger, svcErr)
		return
	}

	writeFlowResponse(w, logger, http.StatusOK, flowResponse)
}

// HandleStepEndPutRequest handles the end flag change request.
func (h *flowHandler) HandleStepEndPutRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, flowHandlerLoggerComponentName))

	expectedVersion, ok := readExpectedVersion(w, r, logger)
	if !ok {
		return
	}
	request, err := sysutils.DecodeJSONBody[SetEndStepRequest](r)
	if err != nil || request.IsEndStep == nil {
		writeErrorResponse(w, logger, serviceerror.CustomServiceError(ErrorInvalidRequestFormat,
			"The request body must carry the isEndStep flag"))
		return
	}

	flowResponse, svcErr := h.flowService.SetEndStep(r.Context(), sysutils.GetCallerID(r),
		r.PathValue("formId"), r.PathValue("stepId"), expectedVersion, *request.IsEndStep)
	if svcErr != nil {
		writeErrorResponse(w, logger, svcErr)
		return
	}

	writeFlowResponse(w, logger, http.StatusOK, flowResponse)
}

// HandleStepDeleteRequest handles the step deletion request.
func (h *flowHandler) HandleStepDeleteRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, flowHandlerLoggerComponentName))

	expectedVersion, ok := readExpectedVersion(w, r, logger)
	if !ok {
		return
	}

	flowResponse, svcErr := h.flowService.DeleteStep(r.Context(), sysutils.GetCallerID(r),
		r.PathValue("formId"), r.PathValue("stepId"), expectedVersion)
	if svcErr != nil {
		writeErrorResponse(w, logger, svcErr)
		return
	}

	writeFlowResponse(w, logger, http.StatusOK, flowResponse)
}

// HandleTraverseRequest handles the next step request of a respondent.
func (h *flowHandler) HandleTraverseRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, flowHandlerLoggerComponentName))

	request, err := sysutils.DecodeJSONBody[TraverseRequest](r)
	if err != nil {
		writeErrorResponse(w, logger, serviceerror.CustomServiceError(ErrorInvalidRequestFormat,
			"Failed to parse request body"))
		return
	}

	traversal, svcErr := h.flowService.Traverse(r.Context(), sysutils.GetCallerID(r), r.PathValue("formId"),
		*request)
	if svcErr != nil {
		writeErrorResponse(w, logger, svcErr)
		return
	}

	sysutils.WriteJSONResponse(w, http.StatusOK, traversal)
}

// readExpectedVersion reads the If-Match header, writing an error response when it is malformed.
func readExpectedVersion(w http.ResponseWriter, r *http.Request, logger *log.Logger) (int64, bool) {
	version, err := sysutils.ParseIfMatchVersion(r)
	if err != nil {
		writeErrorResponse(w, logger, serviceerror.CustomServiceError(ErrorInvalidRequestFormat, err.Error()))
		return 0, false
	}
	if version < 0 {
		return NoExpectedVersion, true
	}
	return version, true
}

func writeFlowResponse(w http.ResponseWriter, logger *log.Logger, status int, flowResponse *FlowResponse) {
	w.Header().Set(constants.ETagHeaderName, formatETag(flowResponse.Flow.Version))
	if sysutils.WriteJSONResponse(w, status, flowResponse) {
		logger.Debug("Wrote flow response", log.String(log.LoggerKeyFormID, flowResponse.Flow.FormID),
			log.Int64("version", flowResponse.Flow.Version))
	}
}

func formatETag(version int64) string {
	return fmt.Sprintf("%q", fmt.Sprint(version))
}

// ErrorStatusCode returns the HTTP status code of a flow service error. Errors raised by the form
// service while authorizing the caller keep their form status codes.
func ErrorStatusCode(svcErr *serviceerror.ServiceError) int {
	switch svcErr.Code {
	case ErrorStepNotFound.Code:
		return http.StatusNotFound
	case ErrorFlowVersionConflict.Code:
		return http.StatusConflict
	case ErrorDeadEnd.Code:
		return http.StatusUnprocessableEntity
	case ErrorStoreTimeout.Code:
		return http.StatusGatewayTimeout
	}
	return form.ErrorStatusCode(svcErr)
}

// writeErrorResponse writes a flow service error as an API error response.
func writeErrorResponse(w http.ResponseWriter, logger *log.Logger, svcErr *serviceerror.ServiceError) {
	if !sysutils.WriteJSONResponse(w, ErrorStatusCode(svcErr), apierror.FromServiceError(svcErr)) {
		logger.Error("Error encoding error response", log.String("code", svcErr.Code))
	}
}
