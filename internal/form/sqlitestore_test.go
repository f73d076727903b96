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

package form

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/formflow/formflow/internal/system/testutil"
)

type SQLiteFormStoreTestSuite struct {
	suite.Suite
	store *sqlFormStore
	now   time.Time
}

func TestSQLiteFormStoreTestSuite(t *testing.T) {
	suite.Run(t, new(SQLiteFormStoreTestSuite))
}

func (suite *SQLiteFormStoreTestSuite) SetupTest() {
	suite.store = newSQLFormStore(testutil.NewSQLiteDBProvider(suite.T()), 5*time.Second)
	suite.now = time.UnixMilli(1740823200123).UTC()
}

func (suite *SQLiteFormStoreTestSuite) newForm(id, name string) Form {
	return Form{ID: id, OwnerID: testOwnerID, Name: name, Theme: DefaultTheme, CreatedAt: suite.now, UpdatedAt: suite.now}
}

func (suite *SQLiteFormStoreTestSuite) TestConcurrentCreatesWithSameName() {
	const writers = 8
	var wg sync.WaitGroup
	errs := make([]error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = suite.store.CreateForm(context.Background(), suite.newForm(fmt.Sprintf("form-%d", i), "Survey"))
		}(i)
	}
	wg.Wait()

	created, conflicts := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			created++
		case errors.Is(err, ErrFormNameConflict):
			conflicts++
		default:
			suite.Failf("unexpected error", "%v", err)
		}
	}
	suite.Equal(1, created)
	suite.Equal(writers-1, conflicts)

	forms, err := suite.store.ListFormsByOwner(context.Background(), testOwnerID)
	suite.Require().NoError(err)
	suite.Len(forms, 1)
}

func (suite *SQLiteFormStoreTestSuite) TestNameIsReusableAfterSoftDelete() {
	ctx := context.Background()
	suite.Require().NoError(suite.store.CreateForm(ctx, suite.newForm("form-a", "Survey")))
	suite.ErrorIs(suite.store.CreateForm(ctx, suite.newForm("form-b", "Survey")), ErrFormNameConflict)

	suite.Require().NoError(suite.store.SoftDeleteForm(ctx, "form-a", suite.now))
	suite.NoError(suite.store.CreateForm(ctx, suite.newForm("form-b", "Survey")))

	form, err := suite.store.GetFormByOwnerAndName(ctx, testOwnerID, "Survey")
	suite.Require().NoError(err)
	suite.Equal("form-b", form.ID)
}

func (suite *SQLiteFormStoreTestSuite) TestSameNameForDifferentOwners() {
	other := suite.newForm("form-b", "Survey")
	other.OwnerID = "owner-2"

	suite.Require().NoError(suite.store.CreateForm(context.Background(), suite.newForm("form-a", "Survey")))
	suite.NoError(suite.store.CreateForm(context.Background(), other))
}

func (suite *SQLiteFormStoreTestSuite) TestUpdateFormRename() {
	ctx := context.Background()
	suite.Require().NoError(suite.store.CreateForm(ctx, suite.newForm("form-a", "Survey")))
	suite.Require().NoError(suite.store.CreateForm(ctx, suite.newForm("form-b", "Feedback")))

	err := suite.store.UpdateForm(ctx, "form-b", "Survey", DefaultTheme, suite.now)
	suite.ErrorIs(err, ErrFormNameConflict)

	later := suite.now.Add(time.Minute)
	suite.Require().NoError(suite.store.UpdateForm(ctx, "form-b", "Feedback 2025", "dark", later))
	form, err := suite.store.GetForm(ctx, "form-b")
	suite.Require().NoError(err)
	suite.Equal("Feedback 2025", form.Name)
	suite.Equal("dark", form.Theme)
	suite.True(form.UpdatedAt.Equal(later))

	suite.ErrorIs(suite.store.UpdateForm(ctx, "missing", "Other", DefaultTheme, later), ErrFormNotFound)
}
