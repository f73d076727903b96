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

package form

import (
	"errors"

	"github.com/formflow/formflow/internal/system/error/serviceerror"
)

// Client errors for form management operations.
var (
	// ErrorInvalidRequestFormat is the error returned when the request format is invalid.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "FRM-1001",
		Error:            "Invalid request format",
		ErrorDescription: "The request body is malformed or contains invalid data",
	}
	// ErrorFormNotFound is the error returned when a form is not found.
	ErrorFormNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "FRM-1002",
		Error:            "Form not found",
		ErrorDescription: "The form with the specified id does not exist",
	}
	// ErrorFormNameConflict is the error returned when the caller already owns a form with the name.
	ErrorFormNameConflict = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "FRM-1003",
		Error:            "Form name conflict",
		ErrorDescription: "A form with the same name already exists",
	}
	// ErrorForbidden is the error returned when the caller does not own the form.
	ErrorForbidden = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "FRM-1004",
		Error:            "Forbidden",
		ErrorDescription: "The caller is not allowed to access the form",
	}
	// ErrorMissingCaller is the error returned when the request carries no caller identity.
	ErrorMissingCaller = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "FRM-1005",
		Error:            "Missing caller identity",
		ErrorDescription: "The request does not identify the caller",
	}
)

// Server errors for form management operations.
var (
	// ErrorInternalServerError is the error returned when an internal server error occurs.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "FRM-5000",
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
	// ErrorStoreTimeout is the error returned when the form store did not answer in time.
	ErrorStoreTimeout = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "FRM-5001",
		Error:            "Store timeout",
		ErrorDescription: "The form store did not respond in time, the outcome is unknown",
	}
)

var (
	// ErrFormNotFound is returned by the store when the form does not exist.
	ErrFormNotFound = errors.New("form not found")
	// ErrFormNameConflict is returned by the store when the owner already has a live form with the name.
	ErrFormNameConflict = errors.New("form name already in use")
)
