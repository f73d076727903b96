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

package client

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/formflow/formflow/internal/system/database/model"
)

type DBClientTestSuite struct {
	suite.Suite
	mockDB   *sql.DB
	mock     sqlmock.Sqlmock
	dbClient DBClientInterface
	ctx      context.Context
}

func TestDBClientSuite(t *testing.T) {
	suite.Run(t, new(DBClientTestSuite))
}

func (suite *DBClientTestSuite) SetupTest() {
	var err error
	suite.mockDB, suite.mock, err = sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		suite.T().Fatalf("Failed to create mock database: %v", err)
	}

	suite.dbClient = NewDBClient(model.NewDB(suite.mockDB), "postgres")
	suite.ctx = context.Background()
}

func (suite *DBClientTestSuite) TearDownTest() {
	if err := suite.mock.ExpectationsWereMet(); err != nil {
		suite.T().Fatalf("There were unfulfilled expectations: %v", err)
	}
}

func (suite *DBClientTestSuite) TestQuerySuccess() {
	testQuery := model.DBQuery{
		ID:    "test_query_success",
		Query: "SELECT FORM_ID, NAME FROM FORMS WHERE OWNER_ID = ?",
	}

	rows := sqlmock.NewRows([]string{"FORM_ID", "NAME"}).
		AddRow("f1", "Signup").
		AddRow("f2", "Quiz")
	suite.mock.ExpectQuery("SELECT FORM_ID, NAME FROM FORMS WHERE OWNER_ID = ?").
		WithArgs("owner-1").
		WillReturnRows(rows)

	results, err := suite.dbClient.Query(suite.ctx, testQuery, "owner-1")

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), results, 2)
	assert.Equal(suite.T(), "f1", results[0]["form_id"])
	assert.Equal(suite.T(), "Signup", results[0]["name"])
	assert.Equal(suite.T(), "Quiz", results[1]["name"])
}

func (suite *DBClientTestSuite) TestQueryUsesDialectVariant() {
	testQuery := model.DBQuery{
		ID:            "test_query_dialect",
		Query:         "SELECT 1 AS ONE",
		PostgresQuery: "SELECT 1::BIGINT AS ONE",
	}

	suite.mock.ExpectQuery("SELECT 1::BIGINT AS ONE").
		WillReturnRows(sqlmock.NewRows([]string{"ONE"}).AddRow(int64(1)))

	results, err := suite.dbClient.Query(suite.ctx, testQuery)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), results[0]["one"])
}

func (suite *DBClientTestSuite) TestQueryEmptyResults() {
	testQuery := model.DBQuery{
		ID:    "test_query_empty",
		Query: "SELECT FORM_ID FROM FORMS WHERE FORM_ID = ?",
	}

	suite.mock.ExpectQuery("SELECT FORM_ID FROM FORMS WHERE FORM_ID = ?").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"FORM_ID"}))

	results, err := suite.dbClient.Query(suite.ctx, testQuery, "missing")

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), results)
}

func (suite *DBClientTestSuite) TestQueryDatabaseError() {
	testQuery := model.DBQuery{
		ID:    "test_query_error",
		Query: "SELECT FORM_ID FROM NON_EXISTENT",
	}

	expectedErr := errors.New("table not found")
	suite.mock.ExpectQuery("SELECT FORM_ID FROM NON_EXISTENT").WillReturnError(expectedErr)

	results, err := suite.dbClient.Query(suite.ctx, testQuery)

	assert.Equal(suite.T(), expectedErr, err)
	assert.Nil(suite.T(), results)
}

func (suite *DBClientTestSuite) TestQueryCanceledContext() {
	testQuery := model.DBQuery{
		ID:    "test_query_canceled",
		Query: "SELECT FORM_ID FROM FORMS",
	}

	ctx, cancel := context.WithCancel(suite.ctx)
	cancel()
	_, err := suite.dbClient.Query(ctx, testQuery)

	assert.ErrorIs(suite.T(), err, context.Canceled)
}

func (suite *DBClientTestSuite) TestExecute() {
	testCases := []struct {
		name         string
		result       driver.Result
		err          error
		expectedRows int64
		expectError  bool
	}{
		{name: "SingleRow", result: sqlmock.NewResult(0, 1), expectedRows: 1},
		{name: "ZeroRows", result: sqlmock.NewResult(0, 0), expectedRows: 0},
		{name: "ExecError", err: errors.New("exec failed"), expectError: true},
		{
			name:        "RowsAffectedError",
			result:      sqlmock.NewErrorResult(errors.New("rows affected error")),
			expectError: true,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			testQuery := model.DBQuery{
				ID:    "test_execute",
				Query: "UPDATE FORM_FLOWS SET VERSION = $1 WHERE FORM_ID = $2",
			}

			expectation := suite.mock.ExpectExec("UPDATE FORM_FLOWS SET VERSION = \\$1 WHERE FORM_ID = \\$2").
				WithArgs(int64(2), "f1")
			if tc.err != nil {
				expectation.WillReturnError(tc.err)
			} else {
				expectation.WillReturnResult(tc.result)
			}

			rowsAffected, err := suite.dbClient.Execute(suite.ctx, testQuery, int64(2), "f1")

			if tc.expectError {
				assert.Error(suite.T(), err)
				assert.Equal(suite.T(), int64(0), rowsAffected)
			} else {
				assert.NoError(suite.T(), err)
				assert.Equal(suite.T(), tc.expectedRows, rowsAffected)
			}
		})
	}
}

func (suite *DBClientTestSuite) TestBeginTxAndExec() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec("UPDATE RESPONSE_LEDGERS SET VIEWS = VIEWS \\+ 1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	tx, err := suite.dbClient.BeginTx(suite.ctx)
	suite.Require().NoError(err)

	affected, err := tx.Exec(suite.ctx, model.DBQuery{
		ID:    "test_tx_exec",
		Query: "UPDATE RESPONSE_LEDGERS SET VIEWS = VIEWS + 1",
	})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), affected)
	assert.NoError(suite.T(), tx.Commit())
}

func (suite *DBClientTestSuite) TestBeginTxError() {
	expectedErr := errors.New("transaction error")
	suite.mock.ExpectBegin().WillReturnError(expectedErr)

	tx, err := suite.dbClient.BeginTx(suite.ctx)

	assert.Equal(suite.T(), expectedErr, err)
	assert.Nil(suite.T(), tx)
}

func (suite *DBClientTestSuite) TestPing() {
	suite.mock.ExpectPing()

	assert.NoError(suite.T(), suite.dbClient.Ping(suite.ctx))
	assert.Equal(suite.T(), "postgres", suite.dbClient.GetDBType())
}

func (suite *DBClientTestSuite) TestCloseSuccess() {
	suite.mock.ExpectClose()

	assert.NoError(suite.T(), suite.dbClient.Close())
}
