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

	"github.com/formflow/formflow/internal/system/database/model"
)

// MockTx is a mock implementation of the TxInterface.
type MockTx struct {
	MockCommit   func() error
	MockRollback func() error
	MockExec     func(query model.DBQuery, args ...any) (int64, error)

	CommitCalls   int
	RollbackCalls int
	ExecCalls     []QueryCall
}

// Commit mocks the Commit method of the TxInterface.
func (m *MockTx) Commit() error {
	m.CommitCalls++

	if m.MockCommit != nil {
		return m.MockCommit()
	}
	return nil
}

// Rollback mocks the Rollback method of the TxInterface.
func (m *MockTx) Rollback() error {
	m.RollbackCalls++

	if m.MockRollback != nil {
		return m.MockRollback()
	}
	return nil
}

// Exec mocks the Exec method of the TxInterface.
func (m *MockTx) Exec(ctx context.Context, query model.DBQuery, args ...any) (int64, error) {
	m.ExecCalls = append(m.ExecCalls, QueryCall{Query: query, Args: args})

	if m.MockExec != nil {
		return m.MockExec(query, args...)
	}
	return 1, nil
}
