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

// WarningCode classifies an authoring warning.
type WarningCode string

const (
	// WarningDeadEnd marks a non end step without transitions.
	WarningDeadEnd WarningCode = "DEAD_END"
	// WarningPossibleDeadEnd marks a non end step whose transitions are all conditional.
	WarningPossibleDeadEnd WarningCode = "POSSIBLE_DEAD_END"
	// WarningDanglingTransition marks a transition to a step that is not in the flow.
	WarningDanglingTransition WarningCode = "DANGLING_TRANSITION"
	// WarningUnreachableStep marks a step that cannot be reached from the start step.
	WarningUnreachableStep WarningCode = "UNREACHABLE_STEP"
)

// Warning is a non fatal authoring problem found in a flow.
type Warning struct {
	Code    WarningCode `json:"code"`
	StepID  string      `json:"stepId"`
	Message string      `json:"message"`
}

// Lint reports the authoring problems of a flow in step order.
func Lint(flow *model.Flow) []Warning {
	warnings := make([]Warning, 0)
	reachable := reachableSteps(flow)

	for _, step := range flow.Steps {
		for _, t := range step.Transitions {
			if !flow.HasStep(t.TargetStepID) {
				warnings = append(warnings, Warning{
					Code:    WarningDanglingTransition,
					StepID:  step.ID,
					Message: fmt.Sprintf("transition targets missing step %s", t.TargetStepID),
				})
			}
		}

		if !step.IsEndStep {
			switch {
			case len(step.Transitions) == 0:
				warnings = append(warnings, Warning{
					Code:    WarningDeadEnd,
					StepID:  step.ID,
					Message: "step has no transitions and is not an end step",
				})
			case !hasUnconditional(step.Transitions):
				warnings = append(warnings, Warning{
					Code:    WarningPossibleDeadEnd,
					StepID:  step.ID,
					Message: "all transitions are conditional and the step is not an end step",
				})
			}
		}

		if _, ok := reachable[step.ID]; !ok {
			warnings = append(warnings, Warning{
				Code:    WarningUnreachableStep,
				StepID:  step.ID,
				Message: "step cannot be reached from the start step",
			})
		}
	}
	return warnings
}

func hasUnconditional(transitions []model.Transition) bool {
	for _, t := range transitions {
		if t.IsUnconditional() {
			return true
		}
	}
	return false
}

func reachableSteps(flow *model.Flow) map[string]struct{} {
	reachable := make(map[string]struct{}, len(flow.Steps))
	if flow.StartStepID == "" {
		return reachable
	}

	queue := []string{flow.StartStepID}
	reachable[flow.StartStepID] = struct{}{}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		step, ok := flow.GetStep(current)
		if !ok || step.IsEndStep {
			continue
		}
		for _, t := range step.Transitions {
			if _, seen := reachable[t.TargetStepID]; seen || !flow.HasStep(t.TargetStepID) {
				continue
			}
			reachable[t.TargetStepID] = struct{}{}
			queue = append(queue, t.TargetStepID)
		}
	}
	return reachable
}
