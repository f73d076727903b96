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

import (
	"encoding/json"
	"time"

	"github.com/formflow/formflow/internal/flow/model"
)

// Funnel event names used in metrics and published events.
const (
	funnelEventView     = "view"
	funnelEventStart    = "start"
	funnelEventComplete = "complete"
)

// Analytics holds the funnel counters of a form.
type Analytics struct {
	Views          int64   `json:"views"`
	Starts         int64   `json:"starts"`
	Completed      int64   `json:"completed"`
	CompletionRate float64 `json:"completionRate"`
}

// ResponseEvent is one recorded answer of a respondent to a step.
type ResponseEvent struct {
	ID           string      `json:"-"`
	StepID       string      `json:"stepId"`
	Value        model.Value `json:"value"`
	SubmissionID string      `json:"submissionId,omitempty"`
	Timestamp    time.Time   `json:"timestamp"`
}

// Ledger is the append-only answer log of a form together with its funnel counters.
type Ledger struct {
	FormID    string
	Analytics Analytics
	Events    []ResponseEvent
	CreatedAt time.Time
}

// Answer is one step answer sent by a respondent. A missing value is left undefined and ignored.
type Answer struct {
	StepID string      `json:"stepId"`
	Value  model.Value `json:"value"`
}

// RecordAnswersRequest represents the request body of an answer submission.
type RecordAnswersRequest struct {
	Responses    []Answer `json:"responses"`
	IsStart      bool     `json:"isStart"`
	IsComplete   bool     `json:"isComplete"`
	SubmissionID string   `json:"submissionId,omitempty"`
}

// ViewResponse represents the response of a view count request.
type ViewResponse struct {
	Views int64 `json:"views"`
}

// Column describes one step of the report table.
type Column struct {
	ID    string         `json:"id"`
	Label string         `json:"label"`
	Type  model.StepType `json:"type"`
}

// Submission is one reconstructed row of the report.
type Submission struct {
	Timestamp    time.Time
	SubmissionID string
	Values       map[string]model.Value
}

// MarshalJSON flattens the answers of the row next to its timestamp, keyed by step id.
func (s Submission) MarshalJSON() ([]byte, error) {
	row := make(map[string]interface{}, len(s.Values)+2)
	for stepID, value := range s.Values {
		row[stepID] = value
	}
	row["timestamp"] = s.Timestamp
	if s.SubmissionID != "" {
		row["submissionId"] = s.SubmissionID
	}
	return json.Marshal(row)
}

// Report represents the response of a report request.
type Report struct {
	Columns     []Column     `json:"columns"`
	Submissions []Submission `json:"submissions"`
	Analytics   Analytics    `json:"analytics"`
}
