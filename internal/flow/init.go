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
	"net/http"

	"github.com/formflow/formflow/internal/form"
	"github.com/formflow/formflow/internal/system/config"
	"github.com/formflow/formflow/internal/system/events"
	"github.com/formflow/formflow/internal/system/middleware"
)

// Initialize initializes the flow service and registers its routes.
func Initialize(mux *http.ServeMux, formService form.FormServiceInterface) FlowServiceInterface {
	flowConfig := config.GetServerRuntime().Config.Flow
	flowService := newFlowService(newFlowStore(), formService, events.GetPublisher(),
		flowConfig.MaxSteps, flowConfig.WriteRetries)
	flowHandler := newFlowHandler(flowService)
	registerRoutes(mux, flowHandler)
	return flowService
}

// registerRoutes registers the routes for flow editing and traversal operations.
func registerRoutes(mux *http.ServeMux, flowHandler *flowHandler) {
	ownerHeaders := "Content-Type, Authorization, X-User-Id, If-Match"

	opts1 := middleware.CORSOptions{
		AllowedMethods:   "GET",
		AllowedHeaders:   ownerHeaders,
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /forms/{formId}/flow", flowHandler.HandleFlowGetRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /forms/{formId}/flow", middleware.PreflightHandler, opts1))
	mux.HandleFunc(middleware.WithCORS("GET /forms/{formId}/flow/validate",
		flowHandler.HandleFlowValidateRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /forms/{formId}/flow/validate", middleware.PreflightHandler, opts1))

	opts2 := middleware.CORSOptions{
		AllowedMethods:   "POST",
		AllowedHeaders:   ownerHeaders,
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("POST /forms/{formId}/flow/steps", flowHandler.HandleStepPostRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /forms/{formId}/flow/steps", middleware.PreflightHandler, opts2))

	opts3 := middleware.CORSOptions{
		AllowedMethods:   "PATCH, DELETE",
		AllowedHeaders:   ownerHeaders,
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("PATCH /forms/{formId}/flow/steps/{stepId}",
		flowHandler.HandleStepPatchRequest, opts3))
	mux.HandleFunc(middleware.WithCORS("DELETE /forms/{formId}/flow/steps/{stepId}",
		flowHandler.HandleStepDeleteRequest, opts3))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /forms/{formId}/flow/steps/{stepId}",
		middleware.PreflightHandler, opts3))

	opts4 := middleware.CORSOptions{
		AllowedMethods:   "PUT",
		AllowedHeaders:   ownerHeaders,
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("PUT /forms/{formId}/flow/steps/{stepId}/transitions",
		flowHandler.HandleStepTransitionsPutRequest, opts4))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /forms/{formId}/flow/steps/{stepId}/transitions",
		middleware.PreflightHandler, opts4))
	mux.HandleFunc(middleware.WithCORS("PUT /forms/{formId}/flow/steps/{stepId}/position",
		flowHandler.HandleStepPositionPutRequest, opts4))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /forms/{formId}/flow/steps/{stepId}/position",
		middleware.PreflightHandler, opts4))
	mux.HandleFunc(middleware.WithCORS("PUT /forms/{formId}/flow/steps/{stepId}/end",
		flowHandler.HandleStepEndPutRequest, opts4))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /forms/{formId}/flow/steps/{stepId}/end",
		middleware.PreflightHandler, opts4))

	opts5 := middleware.CORSOptions{
		AllowedMethods: "GET, POST",
		AllowedHeaders: "Content-Type, X-User-Id",
	}
	mux.HandleFunc(middleware.WithCORS("GET /public/forms/{formId}/flow",
		flowHandler.HandleLiveFlowGetRequest, opts5))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /public/forms/{formId}/flow", middleware.PreflightHandler, opts5))
	mux.HandleFunc(middleware.WithCORS("POST /public/forms/{formId}/flow/next",
		flowHandler.HandleTraverseRequest, opts5))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /public/forms/{formId}/flow/next",
		middleware.PreflightHandler, opts5))
}
