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

// Package databasemock provides hand written mocks of the database provider, client and transaction.
package databasemock

import (
	"context"

	"github.com/formflow/formflow/internal/system/database/model"
)

// QueryCall records the arguments of a Query or Execute call.
type QueryCall struct {
	Query model.DBQuery
	Args  []interface{}
}

// MockDBClient is a mock implementation of the DBClientInterface.
type MockDBClient struct {
	// DBType is returned by GetDBType. Defaults to postgres.
	DBType string

	MockQuery   func(query model.DBQuery, args ...interface{}) ([]map[string]interface{}, error)
	MockExecute func(query model.DBQuery, args ...interface{}) (int64, error)
	MockBeginTx func() (model.TxInterface, error)
	MockPing    func() error

	QueryCalls   []QueryCall
	ExecuteCalls []QueryCall
	BeginTxCalls int
	CloseCalls   int
}

// Query mocks the Query method of the DBClientInterface.
func (m *MockDBClient) Query(ctx context.Context, query model.DBQuery,
	args ...interface{}) ([]map[string]interface{}, error) {
	m.QueryCalls = append(m.QueryCalls, QueryCall{Query: query, Args: args})

	if m.MockQuery != nil {
		return m.MockQuery(query, args...)
	}
	return []map[string]interface{}{}, nil
}

// Execute mocks the Execute method of the DBClientInterface.
func (m *MockDBClient) Execute(ctx context.Context, query model.DBQuery, args ...interface{}) (int64, error) {
	m.ExecuteCalls = append(m.ExecuteCalls, QueryCall{Query: query, Args: args})

	if m.MockExecute != nil {
		return m.MockExecute(query, args...)
	}
	return 0, nil
}

// BeginTx mocks the BeginTx method of the DBClientInterface.
func (m *MockDBClient) BeginTx(ctx context.Context) (model.TxInterface, error) {
	m.BeginTxCalls++

	if m.MockBeginTx != nil {
		return m.MockBeginTx()
	}
	return &MockTx{}, nil
}

// Ping mocks the Ping method of the DBClientInterface.
func (m *MockDBClient) Ping(ctx context.Context) error {
	if m.MockPing != nil {
		return m.MockPing()
	}
	return nil
}

// GetDBType returns the configured database type.
func (m *MockDBClient) GetDBType() string {
	if m.DBType == "" {
		return "postgres"
	}
	return m.DBType
}

// Close mocks the Close method of the DBClientInterface.
func (m *MockDBClient) Close() error {
	m.CloseCalls++
	return nil
}
