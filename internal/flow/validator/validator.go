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

// Package validator validates step specifications before they are applied to a flow.
package validator

import (
	"fmt"
	"strings"

	"github.com/formflow/formflow/internal/flow/model"
)

// maxValueDepth bounds how deeply mappings may nest inside a rule, property or condition value.
const maxValueDepth = 8

// ValidationResult is the outcome of validating a step specification.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Error joins the validation errors into a single message.
func (r ValidationResult) Error() string {
	return strings.Join(r.Errors, "; ")
}

type collector struct {
	errors []string
}

func (c *collector) add(format string, args ...interface{}) {
	c.errors = append(c.errors, fmt.Sprintf(format, args...))
}

func (c *collector) result() ValidationResult {
	return ValidationResult{Valid: len(c.errors) == 0, Errors: c.errors}
}

// ValidateStepSpec validates the specification of a new step.
func ValidateStepSpec(spec model.StepSpec) ValidationResult {
	c := &collector{}
	validateType(c, spec.Type)
	validateLabel(c, spec.Label)
	validateValues(c, "validationRules", spec.ValidationRules)
	validateValues(c, "properties", spec.Properties)
	validateStepValue(c, spec.Value)
	return c.result()
}

// ValidateStep validates a complete step, including its transitions.
func ValidateStep(step model.Step) ValidationResult {
	c := &collector{}
	validateType(c, step.Type)
	validateLabel(c, step.Label)
	validateValues(c, "validationRules", step.ValidationRules)
	validateValues(c, "properties", step.Properties)
	validateStepValue(c, step.Value)
	validateTransitionList(c, step.Transitions)
	return c.result()
}

// ValidateTransitions validates a transition list. Target steps are not required to exist.
func ValidateTransitions(transitions []model.Transition) ValidationResult {
	c := &collector{}
	validateTransitionList(c, transitions)
	return c.result()
}

func validateType(c *collector, stepType model.StepType) {
	if stepType == "" {
		c.add("stepType is required")
		return
	}
	if !stepType.IsValid() {
		c.add("unsupported stepType %q", stepType)
	}
}

func validateLabel(c *collector, label string) {
	if strings.TrimSpace(label) == "" {
		c.add("label must not be empty")
	}
}

func validateStepValue(c *collector, value model.Value) {
	if value.Kind() == model.KindMap {
		m, _ := value.AsMap()
		validateNested(c, "value", m, 1)
	}
}

func validateTransitionList(c *collector, transitions []model.Transition) {
	for i, t := range transitions {
		if strings.TrimSpace(t.TargetStepID) == "" {
			c.add("transitions[%d].targetStepId must not be empty", i)
		}
		validateValues(c, fmt.Sprintf("transitions[%d].condition", i), t.Condition)
	}
}

func validateValues(c *collector, field string, values map[string]model.Value) {
	validateNested(c, field, values, 1)
}

func validateNested(c *collector, field string, values map[string]model.Value, depth int) {
	if depth > maxValueDepth {
		c.add("%s nests deeper than %d levels", field, maxValueDepth)
		return
	}
	for key, v := range values {
		if strings.TrimSpace(key) == "" {
			c.add("%s contains an empty key", field)
			continue
		}
		path := field + "." + key
		switch v.Kind() {
		case model.KindUndefined:
			c.add("%s has no value", path)
		case model.KindMap:
			nested, _ := v.AsMap()
			validateNested(c, path, nested, depth+1)
		}
	}
}
