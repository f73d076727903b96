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

package main

import (
	"context"
	"net/http"

	"github.com/formflow/formflow/internal/system/config"
	"github.com/formflow/formflow/internal/system/database/provider"
	"github.com/formflow/formflow/internal/system/events"
	"github.com/formflow/formflow/internal/system/log"
	"github.com/formflow/formflow/internal/system/managers"
)

// registerServices registers all the services with the provided HTTP multiplexer.
func registerServices(mux *http.ServeMux, cfg *config.Config) error {
	return managers.NewServiceManager(mux, cfg).RegisterServices()
}

// shutdownServices closes the event publisher and every opened data source connection.
func shutdownServices(ctx context.Context, logger *log.Logger) {
	events.GetPublisher().Close()

	if err := provider.GetDBProvider().Close(); err != nil {
		logger.Error("Error closing database connections", log.Error(err))
	}
	if err := provider.GetMongoProvider().Close(ctx); err != nil {
		logger.Error("Error closing MongoDB connections", log.Error(err))
	}
	if err := provider.GetRedisProvider().Close(); err != nil {
		logger.Error("Error closing Redis connections", log.Error(err))
	}
	logger.Debug("Data source connections closed")
}
