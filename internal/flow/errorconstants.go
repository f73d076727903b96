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
	"errors"

	"github.com/formflow/formflow/internal/system/error/serviceerror"
)

// Client errors for flow editing and traversal.
var (
	// ErrorInvalidRequestFormat is the error returned when the request format is invalid.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "FLW-1001",
		Error:            "Invalid request format",
		ErrorDescription: "The request body is malformed or contains invalid data",
	}
	// ErrorStepNotFound is the error returned when the referenced step is not in the flow.
	ErrorStepNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "FLW-1002",
		Error:            "Step not found",
		ErrorDescription: "The step with the specified id does not exist in the flow",
	}
	// ErrorInvalidStep is the error returned when a step fails validation.
	ErrorInvalidStep = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "FLW-1003",
		Error:            "Invalid step",
		ErrorDescription: "The step specification is invalid",
	}
	// ErrorFlowVersionConflict is the error returned when the flow changed since it was read.
	ErrorFlowVersionConflict = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "FLW-1004",
		Error:            "Flow version conflict",
		ErrorDescription: "The flow was modified concurrently, reload it and retry",
	}
	// ErrorDeadEnd is the error returned when traversal cannot continue from a step that is not an end step.
	ErrorDeadEnd = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "FLW-1005",
		Error:            "Dead end",
		ErrorDescription: "The flow cannot continue from the current step",
	}
	// ErrorTooManySteps is the error returned when a flow would exceed the configured step limit.
	ErrorTooManySteps = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "FLW-1006",
		Error:            "Too many steps",
		ErrorDescription: "The flow has reached the maximum number of steps",
	}
)

// Server errors for flow editing and traversal.
var (
	// ErrorInternalServerError is the error returned when an internal server error occurs.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "FLW-5000",
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
	// ErrorStoreTimeout is the error returned when the flow store did not answer in time.
	ErrorStoreTimeout = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "FLW-5001",
		Error:            "Store timeout",
		ErrorDescription: "The flow store did not respond in time, the outcome is unknown",
	}
)

// ErrFlowVersionConflict is returned by the store when the stored version differs from the expected one.
var ErrFlowVersionConflict = errors.New("flow version conflict")
