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

package databasemock

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// MockMongoProvider is a mock implementation of the MongoProviderInterface serving a fixed database.
type MockMongoProvider struct {
	Database *mongo.Database
	Err      error

	GetDatabaseCalls []string
	CloseCalls       int
}

// GetDatabase mocks the GetDatabase method of the MongoProviderInterface.
func (m *MockMongoProvider) GetDatabase(dataSourceName string) (*mongo.Database, error) {
	m.GetDatabaseCalls = append(m.GetDatabaseCalls, dataSourceName)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Database, nil
}

// Ping mocks the Ping method of the MongoProviderInterface.
func (m *MockMongoProvider) Ping(ctx context.Context, _ string) error {
	if m.Err != nil {
		return m.Err
	}
	return m.Database.Client().Ping(ctx, nil)
}

// Close mocks the Close method of the MongoProviderInterface.
func (m *MockMongoProvider) Close(_ context.Context) error {
	m.CloseCalls++
	return nil
}

// MockRedisProvider is a mock implementation of the RedisProviderInterface serving a fixed client.
type MockRedisProvider struct {
	Client redis.UniversalClient
	Err    error

	GetRedisClientCalls []string
	CloseCalls          int
}

// GetRedisClient mocks the GetRedisClient method of the RedisProviderInterface.
func (m *MockRedisProvider) GetRedisClient(dataSourceName string) (redis.UniversalClient, error) {
	m.GetRedisClientCalls = append(m.GetRedisClientCalls, dataSourceName)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Client, nil
}

// Close mocks the Close method of the RedisProviderInterface.
func (m *MockRedisProvider) Close() error {
	m.CloseCalls++
	return nil
}
