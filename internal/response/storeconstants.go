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

package response

import dbmodel "github.com/formflow/formflow/internal/system/database/model"

var (
	// queryIncrementViews creates the ledger of a form when missing and counts one view.
	queryIncrementViews = dbmodel.DBQuery{
		ID: "RSQ-RES-001",
		Query: `INSERT INTO RESPONSE_LEDGERS (FORM_ID, VIEWS, STARTS, COMPLETED, CREATED_AT) ` +
			`VALUES ($1, 1, 0, 0, $2) ON CONFLICT (FORM_ID) ` +
			`DO UPDATE SET VIEWS = RESPONSE_LEDGERS.VIEWS + 1 RETURNING VIEWS, STARTS, COMPLETED`,
		SQLiteQuery: `INSERT INTO RESPONSE_LEDGERS (FORM_ID, VIEWS, STARTS, COMPLETED, CREATED_AT) ` +
			`VALUES ($1, 1, 0, 0, $2) ON CONFLICT (FORM_ID) ` +
			`DO UPDATE SET VIEWS = VIEWS + 1 RETURNING VIEWS, STARTS, COMPLETED`,
	}

	// queryAddLedgerCounters creates the ledger of a form when missing and adds to its start and
	// completion counters.
	queryAddLedgerCounters = dbmodel.DBQuery{
		ID: "RSQ-RES-002",
		Query: `INSERT INTO RESPONSE_LEDGERS (FORM_ID, VIEWS, STARTS, COMPLETED, CREATED_AT) ` +
			`VALUES ($1, 0, $2, $3, $4) ON CONFLICT (FORM_ID) ` +
			`DO UPDATE SET STARTS = RESPONSE_LEDGERS.STARTS + EXCLUDED.STARTS, ` +
			`COMPLETED = RESPONSE_LEDGERS.COMPLETED + EXCLUDED.COMPLETED`,
		SQLiteQuery: `INSERT INTO RESPONSE_LEDGERS (FORM_ID, VIEWS, STARTS, COMPLETED, CREATED_AT) ` +
			`VALUES ($1, 0, $2, $3, $4) ON CONFLICT (FORM_ID) ` +
			`DO UPDATE SET STARTS = STARTS + excluded.STARTS, COMPLETED = COMPLETED + excluded.COMPLETED`,
	}

	// queryInsertResponseEvent appends one answer event.
	queryInsertResponseEvent = dbmodel.DBQuery{
		ID: "RSQ-RES-003",
		Query: `INSERT INTO RESPONSE_EVENTS (EVENT_ID, FORM_ID, STEP_ID, VALUE_DOC, SUBMISSION_ID, CREATED_AT) ` +
			`VALUES ($1, $2, $3, $4, $5, $6)`,
	}

	// queryGetLedger retrieves the counters of a ledger.
	queryGetLedger = dbmodel.DBQuery{
		ID:    "RSQ-RES-004",
		Query: `SELECT FORM_ID, VIEWS, STARTS, COMPLETED, CREATED_AT FROM RESPONSE_LEDGERS WHERE FORM_ID = $1`,
	}

	// queryListResponseEvents lists the answer events of a form in the order they were recorded.
	queryListResponseEvents = dbmodel.DBQuery{
		ID: "RSQ-RES-005",
		Query: `SELECT EVENT_ID, STEP_ID, VALUE_DOC, SUBMISSION_ID, CREATED_AT FROM RESPONSE_EVENTS ` +
			`WHERE FORM_ID = $1 ORDER BY CREATED_AT, ID`,
	}
)
