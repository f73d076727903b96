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

package flow

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/formflow/formflow/internal/flow/model"
	"github.com/formflow/formflow/internal/system/testutil"
)

type SQLiteFlowStoreTestSuite struct {
	suite.Suite
	store *sqlFlowStore
	now   time.Time
}

func TestSQLiteFlowStoreTestSuite(t *testing.T) {
	suite.Run(t, new(SQLiteFlowStoreTestSuite))
}

func (suite *SQLiteFlowStoreTestSuite) SetupTest() {
	suite.store = newSQLFlowStore(testutil.NewSQLiteDBProvider(suite.T()), 5*time.Second)
	suite.now = time.UnixMilli(1740823200123).UTC()
}

func (suite *SQLiteFlowStoreTestSuite) flowAt(version int64, stepIDs ...string) *model.Flow {
	flow := model.NewFlow(testFormID)
	for _, id := range stepIDs {
		flow.Steps = append(flow.Steps, model.Step{ID: id, Type: model.StepTypeTextInput, Label: id})
	}
	if len(stepIDs) > 0 {
		flow.StartStepID = stepIDs[0]
	}
	flow.Version = version
	flow.UpdatedAt = suite.now.Add(time.Duration(version) * time.Second)
	return flow
}

func (suite *SQLiteFlowStoreTestSuite) TestCompareAndSwap() {
	ctx := context.Background()

	empty, err := suite.store.GetFlow(ctx, testFormID)
	suite.Require().NoError(err)
	suite.Equal(int64(0), empty.Version)
	suite.Empty(empty.Steps)

	suite.Require().NoError(suite.store.SaveFlow(ctx, suite.flowAt(1, "q1"), 0))
	suite.ErrorIs(suite.store.SaveFlow(ctx, suite.flowAt(1, "other"), 0), ErrFlowVersionConflict)

	suite.Require().NoError(suite.store.SaveFlow(ctx, suite.flowAt(2, "q1", "q2"), 1))
	suite.ErrorIs(suite.store.SaveFlow(ctx, suite.flowAt(2, "stale"), 1), ErrFlowVersionConflict)

	stored, err := suite.store.GetFlow(ctx, testFormID)
	suite.Require().NoError(err)
	suite.Equal(int64(2), stored.Version)
	suite.Equal("q1", stored.StartStepID)
	suite.Require().Len(stored.Steps, 2)
	suite.Equal("q2", stored.Steps[1].ID)
	suite.True(stored.UpdatedAt.Equal(suite.now.Add(2 * time.Second)))

	suite.Require().NoError(suite.store.SaveFlow(ctx, suite.flowAt(3, "q2"), stored.Version))
	latest, err := suite.store.GetFlow(ctx, testFormID)
	suite.Require().NoError(err)
	suite.Equal(int64(3), latest.Version)
	suite.Len(latest.Steps, 1)
}
