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

import dbmodel "github.com/formflow/formflow/internal/system/database/model"

var (
	// queryGetFlow retrieves the flow document of a form.
	queryGetFlow = dbmodel.DBQuery{
		ID:    "FLQ-FLOW-001",
		Query: `SELECT FORM_ID, FLOW_DOC, VERSION, UPDATED_AT FROM FORM_FLOWS WHERE FORM_ID = $1`,
	}

	// queryInsertFlow writes the first version of a flow. No row is inserted when another writer won.
	queryInsertFlow = dbmodel.DBQuery{
		ID: "FLQ-FLOW-002",
		Query: `INSERT INTO FORM_FLOWS (FORM_ID, FLOW_DOC, VERSION, UPDATED_AT) VALUES ($1, $2, $3, $4) ` +
			`ON CONFLICT (FORM_ID) DO NOTHING`,
	}

	// queryUpdateFlow replaces the flow document when the stored version matches.
	queryUpdateFlow = dbmodel.DBQuery{
		ID: "FLQ-FLOW-003",
		Query: `UPDATE FORM_FLOWS SET FLOW_DOC = $1, VERSION = $2, UPDATED_AT = $3 ` +
			`WHERE FORM_ID = $4 AND VERSION = $5`,
	}
)
