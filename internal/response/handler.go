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
	"net/http"

	"github.com/formflow/formflow/internal/flow"
	"github.com/formflow/formflow/internal/system/error/apierror"
	"github.com/formflow/formflow/internal/system/error/serviceerror"
	"github.com/formflow/formflow/internal/system/log"
	sysutils "github.com/formflow/formflow/internal/system/utils"
)

const responseHandlerLoggerComponentName = "ResponseHandler"

// responseHandler is the handler for response recording and reporting operations.
type responseHandler struct {
	responseService ResponseServiceInterface
}

// newResponseHandler creates a new instance of responseHandler.
func newResponseHandler(responseService ResponseServiceInterface) *responseHandler {
	return &responseHandler{
		responseService: responseService,
	}
}

// HandleViewPostRequest handles the view count request of a respondent.
func (h *responseHandler) HandleViewPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, responseHandlerLoggerComponentName))

	analytics, svcErr := h.responseService.RecordView(r.Context(), sysutils.GetCallerID(r), r.PathValue("formId"))
	if svcErr != nil {
		writeErrorResponse(w, logger, svcErr)
		return
	}

	sysutils.WriteJSONResponse(w, http.StatusOK, ViewResponse{Views: analytics.Views})
}

// HandleResponsePostRequest handles the answer submission of a respondent.
func (h *responseHandler) HandleResponsePostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, responseHandlerLoggerComponentName))

	answersRequest, err := sysutils.DecodeJSONBody[RecordAnswersRequest](r)
	if err != nil {
		writeErrorResponse(w, logger, serviceerror.CustomServiceError(ErrorInvalidRequestFormat,
			"Failed to parse request body"))
		return
	}

	formID := r.PathValue("formId")
	analytics, svcErr := h.responseService.RecordAnswers(r.Context(), sysutils.GetCallerID(r), formID,
		*answersRequest)
	if svcErr != nil {
		writeErrorResponse(w, logger, svcErr)
		return
	}

	if sysutils.WriteJSONResponse(w, http.StatusOK, analytics) {
		logger.Debug("Successfully recorded answers", log.String(log.LoggerKeyFormID, formID))
	}
}

// HandleReportGetRequest handles the response report request of the form owner.
func (h *responseHandler) HandleReportGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, responseHandlerLoggerComponentName))

	report, svcErr := h.responseService.GetReport(r.Context(), sysutils.GetCallerID(r), r.PathValue("formId"))
	if svcErr != nil {
		writeErrorResponse(w, logger, svcErr)
		return
	}

	if sysutils.WriteJSONResponse(w, http.StatusOK, report) {
		logger.Debug("Successfully built response report", log.Int("submissions", len(report.Submissions)))
	}
}

// errorStatusCode returns the HTTP status code of a response service error. Errors raised by the
// form and flow services keep their own mapping.
func errorStatusCode(svcErr *serviceerror.ServiceError) int {
	switch svcErr.Code {
	case ErrorInvalidRequestFormat.Code:
		return http.StatusBadRequest
	case ErrorStoreTimeout.Code:
		return http.StatusGatewayTimeout
	case ErrorInternalServerError.Code:
		return http.StatusInternalServerError
	}
	return flow.ErrorStatusCode(svcErr)
}

// writeErrorResponse writes a response service error as an API error response.
func writeErrorResponse(w http.ResponseWriter, logger *log.Logger, svcErr *serviceerror.ServiceError) {
	if !sysutils.WriteJSONResponse(w, errorStatusCode(svcErr), apierror.FromServiceError(svcErr)) {
		logger.Error("Error encoding error response", log.String("code", svcErr.Code))
	}
}
