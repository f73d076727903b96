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
	"sort"
	"strconv"

	"github.com/formflow/formflow/internal/flow/model"
)

// Aggregate rebuilds the report table of a form from its steps and answer events.
//
// Columns follow the authoring order of the steps. Events sharing a submission id form one row.
// Events without one are grouped by the Unix second of their timestamp. A row carries the
// timestamp of its first event, and a later answer to the same step replaces an earlier one.
// Rows are returned newest first.
func Aggregate(steps []model.Step, events []ResponseEvent) ([]Column, []Submission) {
	columns := make([]Column, 0, len(steps))
	for _, step := range steps {
		columns = append(columns, Column{
			ID:    step.ID,
			Label: step.Label,
			Type:  step.Type,
		})
	}

	groups := make(map[string]int)
	submissions := make([]Submission, 0)
	for _, event := range events {
		key := groupKey(event)
		idx, ok := groups[key]
		if !ok {
			idx = len(submissions)
			groups[key] = idx
			submissions = append(submissions, Submission{
				Timestamp:    event.Timestamp,
				SubmissionID: event.SubmissionID,
				Values:       make(map[string]model.Value),
			})
		}
		submissions[idx].Values[event.StepID] = event.Value
	}

	sort.SliceStable(submissions, func(i, j int) bool {
		return submissions[i].Timestamp.After(submissions[j].Timestamp)
	})
	return columns, submissions
}

func groupKey(event ResponseEvent) string {
	if event.SubmissionID != "" {
		return "s:" + event.SubmissionID
	}
	return "t:" + strconv.FormatInt(event.Timestamp.Unix(), 10)
}

// completionRate returns completed over starts as a percentage in [0, 100], and 0 when nothing started.
func completionRate(completed, starts int64) float64 {
	if starts <= 0 || completed <= 0 {
		return 0
	}
	rate := float64(completed) / float64(starts) * 100
	if rate > 100 {
		return 100
	}
	return rate
}

// withCompletionRate returns the counters with their completion rate filled in.
func withCompletionRate(a Analytics) Analytics {
	a.CompletionRate = completionRate(a.Completed, a.Starts)
	return a
}
