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

import "encoding/json"

// Field is an optional field of a partial update. It tells apart an absent field,
// a field sent as null and a field sent with a value.
type Field[T any] struct {
	Present bool
	Null    bool
	Value   T
}

// Set returns a field holding the given value.
func Set[T any](value T) Field[T] {
	return Field[T]{Present: true, Value: value}
}

// UnmarshalJSON marks the field present and decodes its value.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Present = true
	if string(data) == "null" {
		f.Null = true
		var zero T
		f.Value = zero
		return nil
	}
	return json.Unmarshal(data, &f.Value)
}

// MarshalJSON encodes the value of the field, or null.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.Present || f.Null {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// StepSpec is the specification of a new step.
type StepSpec struct {
	Type            StepType         `json:"stepType"`
	Label           string           `json:"label"`
	Placeholder     string           `json:"placeholder,omitempty"`
	Required        bool             `json:"required"`
	ValidationRules map[string]Value `json:"validationRules,omitempty"`
	Properties      map[string]Value `json:"properties,omitempty"`
	IsEndStep       bool             `json:"isEndStep"`
	Value           Value            `json:"value"`
	Position        *Position        `json:"position,omitempty"`
}

// StepPatch is a partial update of a step. Absent fields are left unchanged and a value
// sent as null is cleared. Transitions and the end flag are changed through their own operations.
type StepPatch struct {
	Type            Field[StepType]         `json:"stepType"`
	Label           Field[string]           `json:"label"`
	Placeholder     Field[string]           `json:"placeholder"`
	Required        Field[bool]             `json:"required"`
	ValidationRules Field[map[string]Value] `json:"validationRules"`
	Properties      Field[map[string]Value] `json:"properties"`
	Value           Value                   `json:"value"`
	Position        Field[Position]         `json:"position"`
}

// IsEmpty reports whether the patch carries no field at all.
func (p StepPatch) IsEmpty() bool {
	return !p.Type.Present && !p.Label.Present && !p.Placeholder.Present && !p.Required.Present &&
		!p.ValidationRules.Present && !p.Properties.Present && !p.Value.IsDefined() && !p.Position.Present
}
