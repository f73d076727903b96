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

// Package provider provides functionality for managing data source connections and clients.
package provider

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"path"
	"strings"
	"sync"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	_ "github.com/lib/pq"              // registers the "postgres" driver
	_ "modernc.org/sqlite"             // registers the "sqlite" driver

	"github.com/formflow/formflow/internal/system/config"
	"github.com/formflow/formflow/internal/system/database/client"
	"github.com/formflow/formflow/internal/system/database/model"
	"github.com/formflow/formflow/internal/system/log"
)

// Names of the configured data sources.
const (
	DataSourceForms     = "forms"
	DataSourceResponses = "responses"
)

//go:embed scripts/*.sql
var schemaScripts embed.FS

// dbConfig represents the local database configuration.
type dbConfig struct {
	dsn        string
	driverName string
}

// DBProviderInterface defines the interface for getting database clients.
type DBProviderInterface interface {
	GetDBClient(dataSourceName string) (client.DBClientInterface, error)
	Close() error
}

// DBProvider is the implementation of DBProviderInterface.
type DBProvider struct {
	clients map[string]client.DBClientInterface
	mutex   sync.RWMutex
}

var (
	instance *DBProvider
	once     sync.Once
)

// GetDBProvider returns the instance of DBProvider.
func GetDBProvider() DBProviderInterface {
	once.Do(func() {
		instance = NewDBProvider()
	})
	return instance
}

// NewDBProvider creates a DBProvider with no open clients. Servers use the shared GetDBProvider instance.
func NewDBProvider() *DBProvider {
	return &DBProvider{
		clients: make(map[string]client.DBClientInterface),
	}
}

// GetDBClient returns a database client for the named data source, opening it on first use.
// Not required to close the returned client manually since it manages its own connection pool.
func (d *DBProvider) GetDBClient(dataSourceName string) (client.DBClientInterface, error) {
	dataSource, err := getDataSource(dataSourceName)
	if err != nil {
		return nil, err
	}
	if !dataSource.IsSQL() {
		return nil, fmt.Errorf("data source %s is of type %s and has no SQL client",
			dataSourceName, dataSource.Type)
	}

	d.mutex.RLock()
	if dbClient, ok := d.clients[dataSourceName]; ok {
		d.mutex.RUnlock()
		return dbClient, nil
	}
	d.mutex.RUnlock()

	d.mutex.Lock()
	defer d.mutex.Unlock()

	if dbClient, ok := d.clients[dataSourceName]; ok {
		return dbClient, nil
	}

	dbClient, err := initializeClient(dataSourceName, dataSource)
	if err != nil {
		return nil, err
	}
	d.clients[dataSourceName] = dbClient
	return dbClient, nil
}

// Close closes every opened database client.
func (d *DBProvider) Close() error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	var errs []error
	for name, dbClient := range d.clients {
		if err := dbClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close %s client: %w", name, err))
		}
		delete(d.clients, name)
	}
	return errors.Join(errs...)
}

// getDataSource returns the configured data source for the given name.
func getDataSource(dataSourceName string) (config.DataSource, error) {
	switch dataSourceName {
	case DataSourceForms:
		return config.GetServerRuntime().Config.Database.Forms, nil
	case DataSourceResponses:
		return config.GetServerRuntime().Config.Database.Responses, nil
	default:
		return config.DataSource{}, fmt.Errorf("unsupported data source name: %s", dataSourceName)
	}
}

// initializeClient opens the database, configures the pool and applies the schema when enabled.
func initializeClient(dataSourceName string, dataSource config.DataSource) (client.DBClientInterface, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "DBProvider"))

	dbConfig := getDBConfig(dataSource)
	db, err := sql.Open(dbConfig.driverName, dbConfig.dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to data source %s: %w", dataSourceName, err)
	}

	if dataSource.MaxOpenConns > 0 {
		db.SetMaxOpenConns(dataSource.MaxOpenConns)
	}
	if dataSource.MaxIdleConns > 0 {
		db.SetMaxIdleConns(dataSource.MaxIdleConns)
	}
	if dataSource.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(dataSource.ConnMaxLifetime)
	}

	ctx, cancel := context.WithTimeout(context.Background(), dataSource.Timeout)
	defer cancel()

	closeOnError := func(cause error) error {
		if closeErr := db.Close(); closeErr != nil {
			return fmt.Errorf("%w (close error: %w)", cause, closeErr)
		}
		return cause
	}

	if err := db.PingContext(ctx); err != nil {
		return nil, closeOnError(fmt.Errorf("failed to ping data source %s: %w", dataSourceName, err))
	}

	if dataSource.Type == config.DataSourceTypeSQLite {
		if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON;"); err != nil {
			return nil, closeOnError(fmt.Errorf("failed to enable foreign key constraints for %s: %w",
				dataSourceName, err))
		}
	}

	dbClient := client.NewDBClient(model.NewDB(db), dataSource.Type)
	if dataSource.AutoMigrate {
		if err := applySchema(ctx, dbClient); err != nil {
			return nil, closeOnError(fmt.Errorf("failed to apply schema for %s: %w", dataSourceName, err))
		}
		logger.Debug("Applied database schema", log.String("dataSource", dataSourceName))
	}

	logger.Debug("Opened database client", log.String("dataSource", dataSourceName),
		log.String("type", dataSource.Type))
	return dbClient, nil
}

// getDBConfig returns the driver name and DSN for the provided data source.
func getDBConfig(dataSource config.DataSource) dbConfig {
	var dbConfig dbConfig

	switch dataSource.Type {
	case config.DataSourceTypePostgres, config.DataSourceTypePgx:
		dbConfig.driverName = dataSource.Type
		dbConfig.dsn = dataSource.URI
		if dbConfig.dsn == "" {
			dbConfig.dsn = fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
				dataSource.Hostname, dataSource.Port, dataSource.Username, dataSource.Password,
				dataSource.Name, dataSource.SSLMode)
		}
	case config.DataSourceTypeSQLite:
		dbConfig.driverName = config.DataSourceTypeSQLite
		dbConfig.dsn = dataSource.URI
		if dbConfig.dsn == "" {
			options := dataSource.Options
			if options != "" && options[0] != '?' {
				options = "?" + options
			}
			dbConfig.dsn = fmt.Sprintf("%s%s",
				path.Join(config.GetServerRuntime().ServerHome, dataSource.Path), options)
		}
	}

	return dbConfig
}

// applySchema runs the embedded schema script of the client's dialect statement by statement.
func applySchema(ctx context.Context, dbClient client.DBClientInterface) error {
	scriptName := "scripts/postgres.sql"
	if dbClient.GetDBType() == config.DataSourceTypeSQLite {
		scriptName = "scripts/sqlite.sql"
	}

	script, err := schemaScripts.ReadFile(scriptName)
	if err != nil {
		return err
	}

	for i, statement := range splitStatements(string(script)) {
		query := model.DBQuery{ID: fmt.Sprintf("SCHEMA-%03d", i+1), Query: statement}
		if _, err := dbClient.Execute(ctx, query); err != nil {
			return fmt.Errorf("schema statement %d failed: %w", i+1, err)
		}
	}
	return nil
}

// splitStatements splits a schema script into its non-empty statements.
func splitStatements(script string) []string {
	statements := make([]string, 0)
	for _, part := range strings.Split(script, ";") {
		if statement := strings.TrimSpace(part); statement != "" {
			statements = append(statements, statement)
		}
	}
	return statements
}
