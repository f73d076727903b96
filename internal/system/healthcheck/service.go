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

// Package healthcheck provides the liveness and readiness endpoints of the server.
package healthcheck

import (
	"context"
	"fmt"
	"time"

	"github.com/formflow/formflow/internal/system/config"
	"github.com/formflow/formflow/internal/system/database/provider"
	"github.com/formflow/formflow/internal/system/log"
)

const healthCheckLoggerComponentName = "HealthCheckService"

// dependencyCheck pings a single dependency.
type dependencyCheck struct {
	name    string
	timeout time.Duration
	ping    func(ctx context.Context) error
}

// HealthCheckServiceInterface defines the interface for the health check service.
type HealthCheckServiceInterface interface {
	CheckReadiness(ctx context.Context) ServerStatus
}

// healthCheckService is the default implementation of the HealthCheckServiceInterface.
type healthCheckService struct {
	checks []dependencyCheck
}

// newHealthCheckService creates a health check service pinging the configured data sources.
func newHealthCheckService() HealthCheckServiceInterface {
	dbConfig := config.GetServerRuntime().Config.Database
	return &healthCheckService{
		checks: []dependencyCheck{
			newDataSourceCheck("FormsStore", provider.DataSourceForms, dbConfig.Forms),
			newDataSourceCheck("ResponsesStore", provider.DataSourceResponses, dbConfig.Responses),
		},
	}
}

// newDataSourceCheck builds the ping for a data source according to its type.
func newDataSourceCheck(name, dataSourceName string, dataSource config.DataSource) dependencyCheck {
	check := dependencyCheck{name: name, timeout: dataSource.Timeout}

	switch {
	case dataSource.IsSQL():
		check.ping = func(ctx context.Context) error {
			dbClient, err := provider.GetDBProvider().GetDBClient(dataSourceName)
			if err != nil {
				return err
			}
			return dbClient.Ping(ctx)
		}
	case dataSource.Type == config.DataSourceTypeMongo:
		check.ping = func(ctx context.Context) error {
			return provider.GetMongoProvider().Ping(ctx, dataSourceName)
		}
	case dataSource.Type == config.DataSourceTypeRedis:
		check.ping = func(ctx context.Context) error {
			redisClient, err := provider.GetRedisProvider().GetRedisClient(dataSourceName)
			if err != nil {
				return err
			}
			return redisClient.Ping(ctx).Err()
		}
	default:
		check.ping = func(ctx context.Context) error {
			return fmt.Errorf("unsupported data source type: %s", dataSource.Type)
		}
	}
	return check
}

// CheckReadiness pings every dependency and reports DOWN when any of them fails.
func (hcs *healthCheckService) CheckReadiness(ctx context.Context) ServerStatus {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, healthCheckLoggerComponentName))

	status := StatusUp
	serviceStatus := make([]ServiceStatus, 0, len(hcs.checks))
	for _, check := range hcs.checks {
		checkStatus := StatusUp
		if err := runCheck(ctx, check); err != nil {
			logger.Error("Dependency is not reachable", log.String("dependency", check.name), log.Error(err))
			checkStatus = StatusDown
			status = StatusDown
		}
		serviceStatus = append(serviceStatus, ServiceStatus{ServiceName: check.name, Status: checkStatus})
	}

	return ServerStatus{
		Status:        status,
		ServiceStatus: serviceStatus,
	}
}

func runCheck(ctx context.Context, check dependencyCheck) error {
	if check.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, check.timeout)
		defer cancel()
	}
	return check.ping(ctx)
}
