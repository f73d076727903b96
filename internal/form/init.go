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

	"github.com/formflow/formflow/internal/system/events"
	"github.com/formflow/formflow/internal/system/middleware"
)

// Initialize initializes the form service and registers its routes.
func Initialize(mux *http.ServeMux) FormServiceInterface {
	formService := newFormService(newFormStore(), events.GetPublisher())
	formHandler := newFormHandler(formService)
	registerRoutes(mux, formHandler)
	return formService
}

// registerRoutes registers the routes for form management operations.
func registerRoutes(mux *http.ServeMux, formHandler *formHandler) {
	opts1 := middleware.CORSOptions{
		AllowedMethods:   "GET, POST",
		AllowedHeaders:   "Content-Type, Authorization, X-User-Id",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("POST /forms", formHandler.HandleFormPostRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("GET /forms", formHandler.HandleFormListRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /forms", middleware.PreflightHandler, opts1))

	opts2 := middleware.CORSOptions{
		AllowedMethods:   "GET, PUT, DELETE",
		AllowedHeaders:   "Content-Type, Authorization, X-User-Id",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /forms/{formId}", formHandler.HandleFormGetRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("PUT /forms/{formId}", formHandler.HandleFormPutRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("DELETE /forms/{formId}", formHandler.HandleFormDeleteRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /forms/{formId}", middleware.PreflightHandler, opts2))

	opts3 := middleware.CORSOptions{
		AllowedMethods:   "PUT",
		AllowedHeaders:   "Content-Type, Authorization, X-User-Id",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("PUT /forms/{formId}/publish", formHandler.HandleFormPublishRequest, opts3))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /forms/{formId}/publish", middleware.PreflightHandler, opts3))
}
