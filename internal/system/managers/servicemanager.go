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

// Package managers provides functionality for managing and registering system services.
package managers

import (
	"net/http"

	"github.com/formflow/formflow/internal/flow"
	"github.com/formflow/formflow/internal/form"
	"github.com/formflow/formflow/internal/response"
	"github.com/formflow/formflow/internal/system/config"
	"github.com/formflow/formflow/internal/system/healthcheck"
	"github.com/formflow/formflow/internal/system/metrics"
)

// ServiceManagerInterface defines the interface for managing services.
type ServiceManagerInterface interface {
	RegisterServices() error
}

// ServiceManager implements the ServiceManagerInterface and is responsible for registering services.
type ServiceManager struct {
	mux *http.ServeMux
	cfg *config.Config
}

// NewServiceManager creates a new instance of ServiceManager.
func NewServiceManager(mux *http.ServeMux, cfg *config.Config) ServiceManagerInterface {
	return &ServiceManager{
		mux: mux,
		cfg: cfg,
	}
}

// RegisterServices registers all the services with the provided HTTP multiplexer.
// The form service is registered first since the flow and response services depend on it.
func (sm *ServiceManager) RegisterServices() error {
	if sm.cfg.Metrics.Enabled {
		metrics.Initialize(sm.mux, sm.cfg.Metrics.Namespace)
	}

	_ = healthcheck.Initialize(sm.mux)

	formService := form.Initialize(sm.mux)
	flowService := flow.Initialize(sm.mux, formService)
	_ = response.Initialize(sm.mux, formService, flowService)

	return nil
}
