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
	"net/http"

	"github.com/formflow/formflow/internal/system/error/apierror"
	"github.com/formflow/formflow/internal/system/error/serviceerror"
	"github.com/formflow/formflow/internal/system/log"
	sysutils "github.com/formflow/formflow/internal/system/utils"
)

const formHandlerLoggerComponentName = "FormHandler"

// formHandler is the handler for form management operations.
type formHandler struct {
	formService FormServiceInterface
}

// newFormHandler creates a new instance of formHandler.
func newFormHandler(formService FormServiceInterface) *formHandler {
	return &formHandler{
		formService: formService,
	}
}

// HandleFormPostRequest handles the form creation request.
func (h *formHandler) HandleFormPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, formHandlerLoggerComponentName))

	createRequest, err := sysutils.DecodeJSONBody[CreateFormRequest](r)
	if err != nil {
		writeErrorResponse(w, logger, serviceerror.CustomServiceError(ErrorInvalidRequestFormat,
			"Failed to parse request body"))
		return
	}

	createRequest.Name = sysutils.SanitizeString(createRequest.Name)
	createRequest.Theme = sysutils.SanitizeString(createRequest.Theme)

	form, svcErr := h.formService.CreateForm(r.Context(), sysutils.GetCallerID(r), *createRequest)
	if svcErr != nil {
		writeErrorResponse(w, logger, svcErr)
		return
	}

	if sysutils.WriteJSONResponse(w, http.StatusCreated, form) {
		logger.Debug("Successfully created form", log.String(log.LoggerKeyFormID, form.ID))
	}
}

// HandleFormListRequest handles the form list request.
func (h *formHandler) HandleFormListRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, formHandlerLoggerComponentName))

	formList, svcErr := h.formService.ListForms(r.Context(), sysutils.GetCallerID(r))
	if svcErr != nil {
		writeErrorResponse(w, logger, svcErr)
		return
	}

	if sysutils.WriteJSONResponse(w, http.StatusOK, formList) {
		logger.Debug("Successfully listed forms", log.Int("totalResults", formList.TotalResults))
	}
}

// HandleFormGetRequest handles the form retrieval request.
func (h *formHandler) HandleFormGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, formHandlerLoggerComponentName))

	form, svcErr := h.formService.GetForm(r.Context(), sysutils.GetCallerID(r), r.PathValue("formId"))
	if svcErr != nil {
		writeErrorResponse(w, logger, svcErr)
		return
	}

	sysutils.WriteJSONResponse(w, http.StatusOK, form)
}

// HandleFormPutRequest handles the form update request.
func (h *formHandler) HandleFormPutRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, formHandlerLoggerComponentName))

	updateRequest, err := sysutils.DecodeJSONBody[UpdateFormRequest](r)
	if err != nil {
		writeErrorResponse(w, logger, serviceerror.CustomServiceError(ErrorInvalidRequestFormat,
			"Failed to parse request body"))
		return
	}

	if updateRequest.Name != nil {
		name := sysutils.SanitizeString(*updateRequest.Name)
		updateRequest.Name = &name
	}
	if updateRequest.Theme != nil {
		theme := sysutils.SanitizeString(*updateRequest.Theme)
		updateRequest.Theme = &theme
	}

	formID := r.PathValue("formId")
	form, svcErr := h.formService.UpdateForm(r.Context(), sysutils.GetCallerID(r), formID, *updateRequest)
	if svcErr != nil {
		writeErrorResponse(w, logger, svcErr)
		return
	}

	if sysutils.WriteJSONResponse(w, http.StatusOK, form) {
		logger.Debug("Successfully updated form", log.String(log.LoggerKeyFormID, formID))
	}
}

// HandleFormPublishRequest handles the publish state change request.
func (h *formHandler) HandleFormPublishRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, formHandlerLoggerComponentName))

	publishRequest, err := sysutils.DecodeJSONBody[PublishFormRequest](r)
	if err != nil || publishRequest.IsPublished == nil {
		writeErrorResponse(w, logger, serviceerror.CustomServiceError(ErrorInvalidRequestFormat,
			"The request body must carry the isPublished flag"))
		return
	}

	formID := r.PathValue("formId")
	form, svcErr := h.formService.SetPublished(r.Context(), sysutils.GetCallerID(r), formID,
		*publishRequest.IsPublished)
	if svcErr != nil {
		writeErrorResponse(w, logger, svcErr)
		return
	}

	if sysutils.WriteJSONResponse(w, http.StatusOK, form) {
		logger.Debug("Successfully changed form publish state", log.String(log.LoggerKeyFormID, formID),
			log.Bool("isPublished", form.IsPublished))
	}
}

// HandleFormDeleteRequest handles the form deletion request.
func (h *formHandler) HandleFormDeleteRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, formHandlerLoggerComponentName))

	formID := r.PathValue("formId")
	if svcErr := h.formService.DeleteForm(r.Context(), sysutils.GetCallerID(r), formID); svcErr != nil {
		writeErrorResponse(w, logger, svcErr)
		return
	}

	w.WriteHeader(http.StatusNoContent)
	logger.Debug("Successfully deleted form", log.String(log.LoggerKeyFormID, formID))
}

// ErrorStatusCode returns the HTTP status code of a form service error.
func ErrorStatusCode(svcErr *serviceerror.ServiceError) int {
	switch svcErr.Code {
	case ErrorFormNotFound.Code:
		return http.StatusNotFound
	case ErrorFormNameConflict.Code:
		return http.StatusConflict
	case ErrorForbidden.Code, ErrorMissingCaller.Code:
		return http.StatusForbidden
	case ErrorStoreTimeout.Code:
		return http.StatusGatewayTimeout
	}
	if svcErr.Type == serviceerror.ClientErrorType {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// writeErrorResponse writes a form service error as an API error response.
func writeErrorResponse(w http.ResponseWriter, logger *log.Logger, svcErr *serviceerror.ServiceError) {
	if !sysutils.WriteJSONResponse(w, ErrorStatusCode(svcErr), apierror.FromServiceError(svcErr)) {
		logger.Error("Error encoding error response", log.String("code", svcErr.Code))
	}
}
