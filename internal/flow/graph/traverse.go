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

package graph

import (
	"fmt"

	"github.com/formflow/formflow/internal/flow/model"
)

// Outcome is the kind of a traversal result.
type Outcome string

const (
	// OutcomeNext means traversal continues at NextStepID.
	OutcomeNext Outcome = "next"
	// OutcomeTerminal means the current step ends the flow.
	OutcomeTerminal Outcome = "terminal"
	// OutcomeDeadEnd means traversal cannot continue from a step that is not an end step.
	OutcomeDeadEnd Outcome = "deadEnd"
)

// TraversalResult is the step selected after the current step.
type TraversalResult struct {
	Outcome    Outcome `json:"outcome"`
	StepID     string  `json:"stepId,omitempty"`
	NextStepID string  `json:"nextStepId,omitempty"`
	Reason     string  `json:"reason,omitempty"`
}

// Traverse selects the step that follows currentStepID given the answers submitted so far.
// An empty currentStepID starts the flow at its start step.
//
// End steps are terminal regardless of their transitions. Otherwise transitions are evaluated in
// order and the first one whose condition matches, or that has no condition, wins. A winning
// transition to a missing step and a step with no matching transition are dead ends.
func Traverse(flow *model.Flow, currentStepID string, answers map[string]model.Value) (TraversalResult, error) {
	if currentStepID == "" {
		if flow.StartStepID == "" {
			return TraversalResult{Outcome: OutcomeDeadEnd, Reason: "flow has no steps"}, nil
		}
		return TraversalResult{Outcome: OutcomeNext, NextStepID: flow.StartStepID}, nil
	}

	step, ok := flow.GetStep(currentStepID)
	if !ok {
		return TraversalResult{}, ErrStepNotFound
	}

	if step.IsEndStep {
		return TraversalResult{Outcome: OutcomeTerminal, StepID: step.ID}, nil
	}

	for _, t := range step.Transitions {
		if !t.Matches(answers) {
			continue
		}
		if !flow.HasStep(t.TargetStepID) {
			return TraversalResult{
				Outcome: OutcomeDeadEnd,
				StepID:  step.ID,
				Reason:  fmt.Sprintf("transition targets missing step %s", t.TargetStepID),
			}, nil
		}
		return TraversalResult{Outcome: OutcomeNext, StepID: step.ID, NextStepID: t.TargetStepID}, nil
	}

	reason := "no transition matches the submitted answers"
	if len(step.Transitions) == 0 {
		reason = "step has no transitions and is not an end step"
	}
	return TraversalResult{Outcome: OutcomeDeadEnd, StepID: step.ID, Reason: reason}, nil
}
