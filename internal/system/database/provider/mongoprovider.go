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

package provider

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/formflow/formflow/internal/system/config"
	"github.com/formflow/formflow/internal/system/log"
)

const defaultMongoDatabase = "formflow"

// MongoProviderInterface defines the interface for getting MongoDB databases.
type MongoProviderInterface interface {
	GetDatabase(dataSourceName string) (*mongo.Database, error)
	Ping(ctx context.Context, dataSourceName string) error
	Close(ctx context.Context) error
}

// MongoProvider is the implementation of MongoProviderInterface.
type MongoProvider struct {
	clients map[string]*mongo.Client
	mutex   sync.Mutex
}

var (
	mongoInstance *MongoProvider
	mongoOnce     sync.Once
)

// GetMongoProvider returns the instance of MongoProvider.
func GetMongoProvider() MongoProviderInterface {
	mongoOnce.Do(func() {
		mongoInstance = &MongoProvider{
			clients: make(map[string]*mongo.Client),
		}
	})
	return mongoInstance
}

// GetDatabase returns the database of the named data source, connecting on first use.
func (m *MongoProvider) GetDatabase(dataSourceName string) (*mongo.Database, error) {
	dataSource, err := getDataSource(dataSourceName)
	if err != nil {
		return nil, err
	}
	if dataSource.Type != config.DataSourceTypeMongo {
		return nil, fmt.Errorf("data source %s is of type %s, not mongo", dataSourceName, dataSource.Type)
	}

	mongoClient, err := m.getOrConnect(dataSourceName, dataSource)
	if err != nil {
		return nil, err
	}

	dbName := dataSource.Name
	if dbName == "" {
		dbName = defaultMongoDatabase
	}
	return mongoClient.Database(dbName), nil
}

// Ping verifies the named data source is reachable.
func (m *MongoProvider) Ping(ctx context.Context, dataSourceName string) error {
	db, err := m.GetDatabase(dataSourceName)
	if err != nil {
		return err
	}
	return db.Client().Ping(ctx, readpref.Primary())
}

// Close disconnects every opened client.
func (m *MongoProvider) Close(ctx context.Context) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	var errs []error
	for name, mongoClient := range m.clients {
		if err := mongoClient.Disconnect(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to disconnect %s client: %w", name, err))
		}
		delete(m.clients, name)
	}
	return errors.Join(errs...)
}

func (m *MongoProvider) getOrConnect(dataSourceName string, dataSource config.DataSource) (*mongo.Client, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if mongoClient, ok := m.clients[dataSourceName]; ok {
		return mongoClient, nil
	}

	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "MongoProvider"))

	ctx, cancel := context.WithTimeout(context.Background(), dataSource.Timeout)
	defer cancel()

	mongoClient, err := mongo.Connect(ctx, buildMongoClientOptions(dataSource))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to data source %s: %w", dataSourceName, err)
	}
	if err := mongoClient.Ping(ctx, readpref.Primary()); err != nil {
		_ = mongoClient.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping data source %s: %w", dataSourceName, err)
	}

	m.clients[dataSourceName] = mongoClient
	logger.Debug("Connected to MongoDB", log.String("dataSource", dataSourceName))
	return mongoClient, nil
}

// buildMongoClientOptions builds the client options for the data source.
// Nested documents decode as bson.M so stored values map back onto plain Go maps.
func buildMongoClientOptions(dataSource config.DataSource) *options.ClientOptions {
	uri := dataSource.URI
	if uri == "" {
		uri = fmt.Sprintf("mongodb://%s:%d", dataSource.Hostname, dataSource.Port)
	}

	opts := options.Client().
		ApplyURI(uri).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true}).
		SetTimeout(dataSource.Timeout)
	if dataSource.Username != "" {
		opts.SetAuth(options.Credential{
			Username: dataSource.Username,
			Password: dataSource.Password,
		})
	}
	if dataSource.MaxOpenConns > 0 {
		opts.SetMaxPoolSize(uint64(dataSource.MaxOpenConns))
	}
	return opts
}
