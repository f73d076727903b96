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
	"github.com/formflow/formflow/internal/flow/graph"
	"github.com/formflow/formflow/internal/flow/model"
)

// FlowResponse is returned by flow reads and mutations.
type FlowResponse struct {
	Flow     *model.Flow     `json:"flow"`
	StepID   string          `json:"stepId,omitempty"`
	Warnings []graph.Warning `json:"warnings"`
}

// ValidationResponse is the result of linting a flow.
type ValidationResponse struct {
	Valid    bool            `json:"valid"`
	Version  int64           `json:"version"`
	Warnings []graph.Warning `json:"warnings"`
}

// TraverseRequest carries the current step and the answers submitted so far.
// An empty current step asks for the start step.
type TraverseRequest struct {
	CurrentStepID string                 `json:"currentStepId"`
	Answers       map[string]model.Value `json:"answers"`
}

// TraverseResponse is the outcome of a traversal together with the selected step.
type TraverseResponse struct {
	graph.TraversalResult
	NextStep *model.Step `json:"nextStep,omitempty"`
}

// SetTransitionsRequest replaces the transitions of a step.
type SetTransitionsRequest struct {
	Transitions []model.Transition `json:"transitions"`
}

// SetEndStepRequest toggles the end flag of a step.
type SetEndStepRequest struct {
	IsEndStep *bool `json:"isEndStep"`
}
