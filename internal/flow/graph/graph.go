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

// Package graph implements the structural operations of a flow step graph.
// Every operation mutates the given flow in place and leaves it consistent: start and end
// pointers always reference present steps.
package graph

import (
	"errors"
	"fmt"

	"github.com/formflow/formflow/internal/flow/model"
	"github.com/formflow/formflow/internal/flow/validator"
)

// ErrStepNotFound is returned when an operation references a step that is not in the flow.
var ErrStepNotFound = errors.New("step not found")

// ValidationError is returned when a step specification or a merged step is invalid.
type ValidationError struct {
	Result validator.ValidationResult
}

func (e *ValidationError) Error() string {
	return "invalid step: " + e.Result.Error()
}

// AddStep appends a new step built from the spec. The first step of an empty flow becomes the
// start step unless a start step is already set, and an end step spec joins the end step set.
// Predecessor linking is done separately by AutoLinkPredecessor.
func AddStep(flow *model.Flow, stepID string, spec model.StepSpec) (*model.Step, error) {
	if result := validator.ValidateStepSpec(spec); !result.Valid {
		return nil, &ValidationError{Result: result}
	}
	if flow.HasStep(stepID) {
		return nil, fmt.Errorf("step %s already exists", stepID)
	}

	value := spec.Value
	if !value.IsDefined() {
		value = model.Null()
	}

	step := model.Step{
		ID:              stepID,
		Type:            spec.Type,
		Label:           spec.Label,
		Placeholder:     spec.Placeholder,
		Required:        spec.Required,
		ValidationRules: model.CloneValues(spec.ValidationRules),
		Properties:      model.CloneValues(spec.Properties),
		Transitions:     []model.Transition{},
		IsEndStep:       spec.IsEndStep,
		Value:           value,
	}
	if spec.Position != nil {
		step.Position = *spec.Position
	}

	wasEmpty := len(flow.Steps) == 0
	flow.Steps = append(flow.Steps, step)

	if wasEmpty && flow.StartStepID == "" {
		flow.StartStepID = stepID
	}
	if step.IsEndStep {
		addEndStepID(flow, stepID)
	}

	added := flow.Steps[len(flow.Steps)-1]
	return &added, nil
}

// AutoLinkPredecessor links the step preceding stepID in authoring order to stepID with a single
// unconditional transition, provided the predecessor has no transitions of its own.
// It reports whether a link was added.
func AutoLinkPredecessor(flow *model.Flow, stepID string) bool {
	idx := flow.StepIndex(stepID)
	if idx <= 0 {
		return false
	}

	predecessor := &flow.Steps[idx-1]
	if len(predecessor.Transitions) > 0 {
		return false
	}

	predecessor.Transitions = []model.Transition{{TargetStepID: stepID}}
	return true
}

// UpdateStep merges the fields present in the patch over a step. Transitions, the start step and the
// end step set are never changed.
func UpdateStep(flow *model.Flow, stepID string, patch model.StepPatch) (*model.Step, error) {
	idx := flow.StepIndex(stepID)
	if idx < 0 {
		return nil, ErrStepNotFound
	}

	merged := flow.Steps[idx].Clone()
	applyPatch(&merged, patch)

	if result := validator.ValidateStep(merged); !result.Valid {
		return nil, &ValidationError{Result: result}
	}

	flow.Steps[idx] = merged
	updated := merged.Clone()
	return &updated, nil
}

func applyPatch(step *model.Step, patch model.StepPatch) {
	if patch.Type.Present {
		step.Type = patch.Type.Value
	}
	if patch.Label.Present {
		step.Label = patch.Label.Value
	}
	if patch.Placeholder.Present {
		step.Placeholder = patch.Placeholder.Value
	}
	if patch.Required.Present {
		step.Required = patch.Required.Value
	}
	if patch.ValidationRules.Present {
		step.ValidationRules = model.CloneValues(patch.ValidationRules.Value)
	}
	if patch.Properties.Present {
		step.Properties = model.CloneValues(patch.Properties.Value)
	}
	if patch.Value.IsDefined() {
		step.Value = patch.Value
	}
	if patch.Position.Present {
		step.Position = patch.Position.Value
	}
}

// SetStepTransitions replaces the transitions of a step. Targets are not required to exist yet.
func SetStepTransitions(flow *model.Flow, stepID string, transitions []model.Transition) (*model.Step, error) {
	idx := flow.StepIndex(stepID)
	if idx < 0 {
		return nil, ErrStepNotFound
	}
	if result := validator.ValidateTransitions(transitions); !result.Valid {
		return nil, &ValidationError{Result: result}
	}

	flow.Steps[idx].Transitions = model.CloneTransitions(transitions)
	updated := flow.Steps[idx].Clone()
	return &updated, nil
}

// SetStepPosition sets the canvas position of a step.
func SetStepPosition(flow *model.Flow, stepID string, position model.Position) (*model.Step, error) {
	step, ok := flow.GetStep(stepID)
	if !ok {
		return nil, ErrStepNotFound
	}

	step.Position = position
	updated := step.Clone()
	return &updated, nil
}

// SetEndStep marks or unmarks a step as an end step and keeps the end step set in sync.
func SetEndStep(flow *model.Flow, stepID string, isEnd bool) (*model.Step, error) {
	step, ok := flow.GetStep(stepID)
	if !ok {
		return nil, ErrStepNotFound
	}

	step.IsEndStep = isEnd
	if isEnd {
		addEndStepID(flow, stepID)
	} else {
		removeEndStepID(flow, stepID)
	}

	updated := step.Clone()
	return &updated, nil
}

// DeleteStep removes a step together with every transition targeting it and its end step entry.
// When the start step is removed the first remaining step becomes the start step.
func DeleteStep(flow *model.Flow, stepID string) error {
	idx := flow.StepIndex(stepID)
	if idx < 0 {
		return ErrStepNotFound
	}

	remaining := make([]model.Step, 0, len(flow.Steps)-1)
	remaining = append(remaining, flow.Steps[:idx]...)
	remaining = append(remaining, flow.Steps[idx+1:]...)

	for i := range remaining {
		remaining[i].Transitions = pruneTransitions(remaining[i].Transitions, stepID)
	}

	flow.Steps = remaining
	removeEndStepID(flow, stepID)

	if flow.StartStepID == stepID {
		flow.StartStepID = ""
		if len(flow.Steps) > 0 {
			flow.StartStepID = flow.Steps[0].ID
		}
	}
	return nil
}

func pruneTransitions(transitions []model.Transition, targetID string) []model.Transition {
	kept := make([]model.Transition, 0, len(transitions))
	for _, t := range transitions {
		if t.TargetStepID != targetID {
			kept = append(kept, t)
		}
	}
	return kept
}

func addEndStepID(flow *model.Flow, stepID string) {
	if !flow.IsEndStepID(stepID) {
		flow.EndStepIDs = append(flow.EndStepIDs, stepID)
	}
}

func removeEndStepID(flow *model.Flow, stepID string) {
	kept := make([]string, 0, len(flow.EndStepIDs))
	for _, id := range flow.EndStepIDs {
		if id != stepID {
			kept = append(kept, id)
		}
	}
	flow.EndStepIDs = kept
}

// CheckInvariants verifies the start step, the end step set and step id uniqueness.
// Transition targets are not checked since they may be set ahead of the target step.
func CheckInvariants(flow *model.Flow) error {
	seen := make(map[string]struct{}, len(flow.Steps))
	for _, s := range flow.Steps {
		if _, dup := seen[s.ID]; dup {
			return fmt.Errorf("duplicate step id %s", s.ID)
		}
		seen[s.ID] = struct{}{}
	}

	if len(flow.Steps) == 0 && flow.StartStepID != "" {
		return fmt.Errorf("empty flow has start step %s", flow.StartStepID)
	}
	if len(flow.Steps) > 0 {
		if flow.StartStepID == "" {
			return errors.New("flow has steps but no start step")
		}
		if _, ok := seen[flow.StartStepID]; !ok {
			return fmt.Errorf("start step %s is not in the flow", flow.StartStepID)
		}
	}

	for _, id := range flow.EndStepIDs {
		if _, ok := seen[id]; !ok {
			return fmt.Errorf("end step %s is not in the flow", id)
		}
	}
	return nil
}
