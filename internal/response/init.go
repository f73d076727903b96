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
	"github.com/formflow/formflow/internal/form"
	"github.com/formflow/formflow/internal/system/events"
	"github.com/formflow/formflow/internal/system/middleware"
)

// Initialize initializes the response service and registers its routes.
func Initialize(mux *http.ServeMux, formService form.FormServiceInterface,
	flowService flow.FlowServiceInterface) ResponseServiceInterface {
	responseService := newResponseService(newLedgerStore(), formService, flowService, events.GetPublisher())
	responseHandler := newResponseHandler(responseService)
	registerRoutes(mux, responseHandler)
	return responseService
}

// registerRoutes registers the routes for response recording and reporting operations.
func registerRoutes(mux *http.ServeMux, responseHandler *responseHandler) {
	opts1 := middleware.CORSOptions{
		AllowedMethods: "POST",
		AllowedHeaders: "Content-Type, X-User-Id",
	}
	mux.HandleFunc(middleware.WithCORS("POST /public/forms/{formId}/views",
		responseHandler.HandleViewPostRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /public/forms/{formId}/views", middleware.PreflightHandler, opts1))
	mux.HandleFunc(middleware.WithCORS("POST /public/forms/{formId}/responses",
		responseHandler.HandleResponsePostRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /public/forms/{formId}/responses",
		middleware.PreflightHandler, opts1))

	opts2 := middleware.CORSOptions{
		AllowedMethods:   "GET",
		AllowedHeaders:   "Content-Type, Authorization, X-User-Id",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /forms/{formId}/responses", responseHandler.HandleReportGetRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /forms/{formId}/responses", middleware.PreflightHandler, opts2))
}
