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

// Package config provides structures and functions for loading and managing server configurations.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	yaml "gopkg.in/yaml.v3"

	"github.com/formflow/formflow/internal/system/log"
)

// Data source types supported by the server.
const (
	DataSourceTypeSQLite   = "sqlite"
	DataSourceTypePostgres = "postgres"
	DataSourceTypePgx      = "pgx"
	DataSourceTypeMongo    = "mongo"
	DataSourceTypeRedis    = "redis"
)

// Environment variables that override values of the deployment configuration.
const (
	EnvFormsDBURI     = "FORMFLOW_FORMS_DB_URI"
	EnvResponsesDBURI = "FORMFLOW_RESPONSES_DB_URI"
	EnvMongoURI       = "MONGO_URI"
	EnvDBPassword     = "FORMFLOW_DB_PASSWORD"
	EnvNATSURL        = "NATS_URL"
)

const (
	defaultServerPort        = 8090
	defaultStoreTimeout      = 5 * time.Second
	defaultMaxSteps          = 200
	defaultWriteRetries      = 3
	defaultMetricsNamespace  = "formflow"
	defaultEventsSubjectRoot = "formflow"
)

// ServerConfig holds the server configuration details.
type ServerConfig struct {
	Hostname string `yaml:"hostname"`
	Port     int    `yaml:"port"`
}

// CORSConfig holds the CORS configuration details.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// DataSource holds the individual data source connection details.
type DataSource struct {
	Type            string        `yaml:"type"`
	Hostname        string        `yaml:"hostname"`
	Port            int           `yaml:"port"`
	Name            string        `yaml:"name"`
	Username        string        `yaml:"username"`
	Password        string        `yaml:"password"`
	SSLMode         string        `yaml:"sslmode"`
	Path            string        `yaml:"path"`
	Options         string        `yaml:"options"`
	URI             string        `yaml:"uri"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	Timeout         time.Duration `yaml:"timeout"`
	AutoMigrate     bool          `yaml:"auto_migrate"`
}

// IsSQL reports whether the data source is served by database/sql.
func (d DataSource) IsSQL() bool {
	switch d.Type {
	case DataSourceTypeSQLite, DataSourceTypePostgres, DataSourceTypePgx:
		return true
	}
	return false
}

// DatabaseConfig holds the data sources of the two stores.
type DatabaseConfig struct {
	Forms     DataSource `yaml:"forms"`
	Responses DataSource `yaml:"responses"`
}

// FlowConfig holds the flow editing limits.
type FlowConfig struct {
	MaxSteps     int `yaml:"max_steps"`
	WriteRetries int `yaml:"write_retries"`
}

// EventsConfig holds the event publisher configuration.
type EventsConfig struct {
	Enabled       bool   `yaml:"enabled"`
	URL           string `yaml:"url"`
	SubjectPrefix string `yaml:"subject_prefix"`
}

// MetricsConfig holds the metrics configuration.
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace"`
}

// Config holds the complete configuration details of the server.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	CORS     CORSConfig     `yaml:"cors"`
	Database DatabaseConfig `yaml:"database"`
	Flow     FlowConfig     `yaml:"flow"`
	Events   EventsConfig   `yaml:"events"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// LoadEnvFile loads the .env file in the given directory into the process environment and returns
// its path. It does not log, so callers can apply the file before the logger reads its settings.
func LoadEnvFile(dir string) (string, error) {
	envPath := filepath.Join(filepath.Clean(dir), ".env")
	if err := godotenv.Load(envPath); err != nil {
		return envPath, err
	}
	return envPath, nil
}

// LoadConfig loads the configurations from the specified YAML file.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	path = filepath.Clean(path)

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if ferr := file.Close(); ferr != nil {
			log.GetLogger().Error("Failed to close config file", log.Error(ferr))
		}
	}()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyEnvOverrides replaces configured values with the ones set in the environment.
func applyEnvOverrides(cfg *Config) {
	if uri := os.Getenv(EnvFormsDBURI); uri != "" {
		cfg.Database.Forms.URI = uri
	}
	if uri := os.Getenv(EnvResponsesDBURI); uri != "" {
		cfg.Database.Responses.URI = uri
	}
	if uri := os.Getenv(EnvMongoURI); uri != "" {
		for _, ds := range []*DataSource{&cfg.Database.Forms, &cfg.Database.Responses} {
			if ds.Type == DataSourceTypeMongo && ds.URI == "" {
				ds.URI = uri
			}
		}
	}
	if password := os.Getenv(EnvDBPassword); password != "" {
		cfg.Database.Forms.Password = password
		cfg.Database.Responses.Password = password
	}
	if url := os.Getenv(EnvNATSURL); url != "" {
		cfg.Events.URL = url
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaultServerPort
	}
	for _, ds := range []*DataSource{&cfg.Database.Forms, &cfg.Database.Responses} {
		if ds.Type == "" {
			ds.Type = DataSourceTypeSQLite
		}
		if ds.Timeout <= 0 {
			ds.Timeout = defaultStoreTimeout
		}
	}
	if cfg.Flow.MaxSteps <= 0 {
		cfg.Flow.MaxSteps = defaultMaxSteps
	}
	if cfg.Flow.WriteRetries <= 0 {
		cfg.Flow.WriteRetries = defaultWriteRetries
	}
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = defaultMetricsNamespace
	}
	if cfg.Events.SubjectPrefix == "" {
		cfg.Events.SubjectPrefix = defaultEventsSubjectRoot
	}
}

func validate(cfg *Config) error {
	switch cfg.Database.Forms.Type {
	case DataSourceTypeSQLite, DataSourceTypePostgres, DataSourceTypePgx, DataSourceTypeMongo:
	default:
		return fmt.Errorf("unsupported forms data source type: %s", cfg.Database.Forms.Type)
	}
	switch cfg.Database.Responses.Type {
	case DataSourceTypeSQLite, DataSourceTypePostgres, DataSourceTypePgx, DataSourceTypeMongo,
		DataSourceTypeRedis:
	default:
		return fmt.Errorf("unsupported responses data source type: %s", cfg.Database.Responses.Type)
	}
	if cfg.Events.Enabled && cfg.Events.URL == "" {
		return errors.New("events are enabled but no NATS url is configured")
	}
	return nil
}
