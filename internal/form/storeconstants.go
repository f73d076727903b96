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

import dbmodel "github.com/formflow/formflow/internal/system/database/model"

const formColumns = `FORM_ID, OWNER_ID, NAME, THEME, IS_PUBLISHED, IS_DELETED, CREATED_AT, UPDATED_AT`

var (
	// queryCreateForm inserts a new form.
	queryCreateForm = dbmodel.DBQuery{
		ID: "FRQ-FORM-001",
		Query: `INSERT INTO FORMS (` + formColumns + `) ` +
			`VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
	}

	// queryGetFormByID retrieves a form by its id, including soft deleted forms.
	queryGetFormByID = dbmodel.DBQuery{
		ID:    "FRQ-FORM-002",
		Query: `SELECT ` + formColumns + ` FROM FORMS WHERE FORM_ID = $1`,
	}

	// queryGetFormByOwnerAndName retrieves a live form of an owner by name.
	queryGetFormByOwnerAndName = dbmodel.DBQuery{
		ID: "FRQ-FORM-003",
		Query: `SELECT ` + formColumns + ` FROM FORMS ` +
			`WHERE OWNER_ID = $1 AND NAME = $2 AND IS_DELETED = $3`,
	}

	// queryListFormsByOwner lists the live forms of an owner, most recently updated first.
	queryListFormsByOwner = dbmodel.DBQuery{
		ID: "FRQ-FORM-004",
		Query: `SELECT ` + formColumns + ` FROM FORMS ` +
			`WHERE OWNER_ID = $1 AND IS_DELETED = $2 ORDER BY UPDATED_AT DESC, FORM_ID`,
	}

	// queryUpdateFormPublished sets the published flag of a live form.
	queryUpdateFormPublished = dbmodel.DBQuery{
		ID:    "FRQ-FORM-005",
		Query: `UPDATE FORMS SET IS_PUBLISHED = $1, UPDATED_AT = $2 WHERE FORM_ID = $3 AND IS_DELETED = $4`,
	}

	// querySoftDeleteForm marks a form as deleted.
	querySoftDeleteForm = dbmodel.DBQuery{
		ID:    "FRQ-FORM-006",
		Query: `UPDATE FORMS SET IS_DELETED = $1, UPDATED_AT = $2 WHERE FORM_ID = $3 AND IS_DELETED = $4`,
	}

	// queryUpdateForm renames a live form and sets its theme.
	queryUpdateForm = dbmodel.DBQuery{
		ID:    "FRQ-FORM-007",
		Query: `UPDATE FORMS SET NAME = $1, THEME = $2, UPDATED_AT = $3 WHERE FORM_ID = $4 AND IS_DELETED = $5`,
	}
)
