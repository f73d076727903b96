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

package testutil

import (
	"testing"
	"time"

	"github.com/formflow/formflow/internal/system/config"
	"github.com/formflow/formflow/internal/system/database/provider"
)

// NewSQLiteDBProvider points both SQL data sources at a migrated SQLite file in a temporary
// home directory and returns a provider that is closed when the test finishes.
// The server runtime is replaced for the duration of the test.
func NewSQLiteDBProvider(t *testing.T) *provider.DBProvider {
	t.Helper()

	dataSource := config.DataSource{
		Type:         config.DataSourceTypeSQLite,
		Path:         "formflow.db",
		Options:      "_pragma=busy_timeout(5000)",
		MaxOpenConns: 1,
		Timeout:      5 * time.Second,
		AutoMigrate:  true,
	}
	config.ResetServerRuntime()
	if err := config.InitializeServerRuntime(t.TempDir(), &config.Config{
		Database: config.DatabaseConfig{Forms: dataSource, Responses: dataSource},
	}); err != nil {
		t.Fatalf("failed to initialize server runtime: %v", err)
	}

	dbProvider := provider.NewDBProvider()
	t.Cleanup(func() {
		_ = dbProvider.Close()
		config.ResetServerRuntime()
	})
	return dbProvider
}
