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

package model

import (
	"encoding/json"
	"time"
)

// StepType is the kind of a step rendered to the respondent.
type StepType string

const (
	// StepTypeText is a static text message.
	StepTypeText StepType = "text"
	// StepTypeImage is an image element.
	StepTypeImage StepType = "image"
	// StepTypeVideo is a video element.
	StepTypeVideo StepType = "video"
	// StepTypeGIF is an animated gif element.
	StepTypeGIF StepType = "gif"
	// StepTypeTextInput is a free text question.
	StepTypeTextInput StepType = "textInput"
	// StepTypeNumber is a numeric question.
	StepTypeNumber StepType = "number"
	// StepTypeEmail is an email question.
	StepTypeEmail StepType = "email"
	// StepTypePhone is a phone number question.
	StepTypePhone StepType = "phone"
	// StepTypeDate is a date question.
	StepTypeDate StepType = "date"
	// StepTypeRating is a rating question.
	StepTypeRating StepType = "rating"
	// StepTypeButton is a button.
	StepTypeButton StepType = "button"
)

var supportedStepTypes = []StepType{
	StepTypeText, StepTypeImage, StepTypeVideo, StepTypeGIF, StepTypeTextInput, StepTypeNumber,
	StepTypeEmail, StepTypePhone, StepTypeDate, StepTypeRating, StepTypeButton,
}

// SupportedStepTypes returns the accepted step types.
func SupportedStepTypes() []StepType {
	types := make([]StepType, len(supportedStepTypes))
	copy(types, supportedStepTypes)
	return types
}

// IsValid reports whether the step type is one of the supported step types.
func (t StepType) IsValid() bool {
	for _, st := range supportedStepTypes {
		if st == t {
			return true
		}
	}
	return false
}

// Position is the cosmetic canvas coordinate of a step in the builder.
type Position struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
}

// Transition is a directed edge to another step. An empty condition always matches.
type Transition struct {
	TargetStepID string           `json:"targetStepId" bson:"targetStepId"`
	Condition    map[string]Value `json:"condition,omitempty" bson:"condition,omitempty"`
}

// IsUnconditional reports whether the transition has no condition.
func (t Transition) IsUnconditional() bool {
	return len(t.Condition) == 0
}

// Matches reports whether every condition entry is present and equal in the given answers.
func (t Transition) Matches(answers map[string]Value) bool {
	for field, expected := range t.Condition {
		actual, ok := answers[field]
		if !ok || !actual.IsDefined() || !actual.Equal(expected) {
			return false
		}
	}
	return true
}

// Step is one node of a flow.
type Step struct {
	ID              string           `json:"id" bson:"id"`
	Type            StepType         `json:"stepType" bson:"stepType"`
	Label           string           `json:"label" bson:"label"`
	Placeholder     string           `json:"placeholder,omitempty" bson:"placeholder,omitempty"`
	Required        bool             `json:"required" bson:"required"`
	ValidationRules map[string]Value `json:"validationRules,omitempty" bson:"validationRules,omitempty"`
	Properties      map[string]Value `json:"properties,omitempty" bson:"properties,omitempty"`
	Transitions     []Transition     `json:"transitions" bson:"transitions"`
	IsEndStep       bool             `json:"isEndStep" bson:"isEndStep"`
	Value           Value            `json:"value" bson:"value"`
	Position        Position         `json:"position" bson:"position"`
}

// Clone returns a deep copy of the step.
func (s Step) Clone() Step {
	clone := s
	clone.ValidationRules = CloneValues(s.ValidationRules)
	clone.Properties = CloneValues(s.Properties)
	clone.Transitions = CloneTransitions(s.Transitions)
	return clone
}

// CloneTransitions returns a deep copy of a transition list. A nil list is returned as an empty list.
func CloneTransitions(transitions []Transition) []Transition {
	out := make([]Transition, 0, len(transitions))
	for _, t := range transitions {
		out = append(out, Transition{
			TargetStepID: t.TargetStepID,
			Condition:    CloneValues(t.Condition),
		})
	}
	return out
}

// Flow is the ordered step graph of one form.
// An empty StartStepID means the flow has no start step, which holds only when Steps is empty.
type Flow struct {
	FormID      string    `json:"formId"`
	Steps       []Step    `json:"steps"`
	StartStepID string    `json:"startStepId"`
	EndStepIDs  []string  `json:"endStepIds"`
	Version     int64     `json:"version"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewFlow returns the empty flow of a form.
func NewFlow(formID string) *Flow {
	return &Flow{
		FormID:     formID,
		Steps:      []Step{},
		EndStepIDs: []string{},
	}
}

// Clone returns a deep copy of the flow.
func (f *Flow) Clone() *Flow {
	clone := &Flow{
		FormID:      f.FormID,
		Steps:       make([]Step, 0, len(f.Steps)),
		StartStepID: f.StartStepID,
		EndStepIDs:  make([]string, len(f.EndStepIDs)),
		Version:     f.Version,
		UpdatedAt:   f.UpdatedAt,
	}
	for _, s := range f.Steps {
		clone.Steps = append(clone.Steps, s.Clone())
	}
	copy(clone.EndStepIDs, f.EndStepIDs)
	return clone
}

// StepIndex returns the position of a step in authoring order, or -1.
func (f *Flow) StepIndex(stepID string) int {
	for i := range f.Steps {
		if f.Steps[i].ID == stepID {
			return i
		}
	}
	return -1
}

// GetStep returns the step with the given id.
func (f *Flow) GetStep(stepID string) (*Step, bool) {
	idx := f.StepIndex(stepID)
	if idx < 0 {
		return nil, false
	}
	return &f.Steps[idx], true
}

// HasStep reports whether a step with the given id is present.
func (f *Flow) HasStep(stepID string) bool {
	return f.StepIndex(stepID) >= 0
}

// IsEndStepID reports whether the id is in the end step set.
func (f *Flow) IsEndStepID(stepID string) bool {
	for _, id := range f.EndStepIDs {
		if id == stepID {
			return true
		}
	}
	return false
}

// MarshalJSON encodes the flow with a null startStepId when the flow has no start step.
func (f Flow) MarshalJSON() ([]byte, error) {
	type flowAlias Flow
	aux := struct {
		flowAlias
		StartStepID *string `json:"startStepId"`
	}{flowAlias: flowAlias(f)}
	if f.StartStepID != "" {
		aux.StartStepID = &f.StartStepID
	}
	if aux.Steps == nil {
		aux.Steps = []Step{}
	}
	if aux.EndStepIDs == nil {
		aux.EndStepIDs = []string{}
	}
	return json.Marshal(aux)
}

// UnmarshalJSON decodes a flow, accepting a null startStepId.
func (f *Flow) UnmarshalJSON(data []byte) error {
	type flowAlias Flow
	aux := struct {
		*flowAlias
		StartStepID *string `json:"startStepId"`
	}{flowAlias: (*flowAlias)(f)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	f.StartStepID = ""
	if aux.StartStepID != nil {
		f.StartStepID = *aux.StartStepID
	}
	return nil
}
