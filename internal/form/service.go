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

// Package form handles the form records that own flows and response ledgers.
package form

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/formflow/formflow/internal/system/error/serviceerror"
	"github.com/formflow/formflow/internal/system/events"
	"github.com/formflow/formflow/internal/system/log"
	"github.com/formflow/formflow/internal/system/utils"
)

const (
	formLoggerComponentName = "FormService"
	maxFormNameLength       = 255
)

// FormServiceInterface defines the interface for the form service.
type FormServiceInterface interface {
	CreateForm(ctx context.Context, callerID string, request CreateFormRequest) (*Form, *serviceerror.ServiceError)
	ListForms(ctx context.Context, callerID string) (*FormListResponse, *serviceerror.ServiceError)
	GetForm(ctx context.Context, callerID, formID string) (*Form, *serviceerror.ServiceError)
	UpdateForm(ctx context.Context, callerID, formID string, request UpdateFormRequest) (
		*Form, *serviceerror.ServiceError)
	SetPublished(ctx context.Context, callerID, formID string, published bool) (*Form, *serviceerror.ServiceError)
	DeleteForm(ctx context.Context, callerID, formID string) *serviceerror.ServiceError
	GetPublicForm(ctx context.Context, callerID, formID string) (*Form, *serviceerror.ServiceError)
}

// formService is the default implementation of the FormServiceInterface.
type formService struct {
	formStore formStoreInterface
	publisher events.PublisherInterface
	now       func() time.Time
}

// newFormService creates a new instance of formService.
func newFormService(formStore formStoreInterface, publisher events.PublisherInterface) FormServiceInterface {
	return &formService{
		formStore: formStore,
		publisher: publisher,
		now:       time.Now,
	}
}

// CreateForm creates a new form owned by the caller. The name must be unique among the caller's live forms.
func (fs *formService) CreateForm(ctx context.Context, callerID string, request CreateFormRequest) (
	*Form, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, formLoggerComponentName))

	if callerID == "" {
		return nil, &ErrorMissingCaller
	}

	name, svcErr := normalizeFormName(request.Name)
	if svcErr != nil {
		return nil, svcErr
	}
	theme := normalizeTheme(request.Theme)

	if svcErr := fs.checkNameAvailable(ctx, logger, callerID, name, ""); svcErr != nil {
		return nil, svcErr
	}

	now := fs.now().UTC().Truncate(time.Millisecond)
	form := Form{
		ID:        utils.GenerateUUID(),
		OwnerID:   callerID,
		Name:      name,
		Theme:     theme,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := fs.formStore.CreateForm(ctx, form); err != nil {
		if errors.Is(err, ErrFormNameConflict) {
			return nil, &ErrorFormNameConflict
		}
		return nil, logAndReturnStoreError(logger, "Failed to create form", err)
	}

	logger.Debug("Created form", log.String(log.LoggerKeyFormID, form.ID))
	return &form, nil
}

// ListForms lists the live forms of the caller.
func (fs *formService) ListForms(ctx context.Context, callerID string) (
	*FormListResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, formLoggerComponentName))

	if callerID == "" {
		return nil, &ErrorMissingCaller
	}

	forms, err := fs.formStore.ListFormsByOwner(ctx, callerID)
	if err != nil {
		return nil, logAndReturnStoreError(logger, "Failed to list forms", err)
	}

	return &FormListResponse{
		TotalResults: len(forms),
		Forms:        forms,
	}, nil
}

// GetForm retrieves a live form owned by the caller.
func (fs *formService) GetForm(ctx context.Context, callerID, formID string) (*Form, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, formLoggerComponentName))

	if callerID == "" {
		return nil, &ErrorMissingCaller
	}

	form, svcErr := fs.getLiveForm(ctx, logger, formID)
	if svcErr != nil {
		return nil, svcErr
	}

	if form.OwnerID != callerID {
		logger.Debug("Caller does not own the form", log.String(log.LoggerKeyFormID, formID),
			log.String(log.LoggerKeyCallerID, log.MaskString(callerID)))
		return nil, &ErrorForbidden
	}
	return form, nil
}

// UpdateForm renames a form owned by the caller or changes its theme. The new name must be unique
// among the caller's live forms.
func (fs *formService) UpdateForm(ctx context.Context, callerID, formID string, request UpdateFormRequest) (
	*Form, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, formLoggerComponentName))

	if request.Name == nil && request.Theme == nil {
		return nil, invalidFormRequestError("at least one of name or theme must be given")
	}

	form, svcErr := fs.GetForm(ctx, callerID, formID)
	if svcErr != nil {
		return nil, svcErr
	}

	name := form.Name
	if request.Name != nil {
		if name, svcErr = normalizeFormName(*request.Name); svcErr != nil {
			return nil, svcErr
		}
	}
	theme := form.Theme
	if request.Theme != nil {
		theme = normalizeTheme(*request.Theme)
	}

	if name != form.Name {
		if svcErr := fs.checkNameAvailable(ctx, logger, callerID, name, formID); svcErr != nil {
			return nil, svcErr
		}
	}

	updatedAt := fs.now().UTC().Truncate(time.Millisecond)
	if err := fs.formStore.UpdateForm(ctx, formID, name, theme, updatedAt); err != nil {
		switch {
		case errors.Is(err, ErrFormNotFound):
			return nil, &ErrorFormNotFound
		case errors.Is(err, ErrFormNameConflict):
			return nil, &ErrorFormNameConflict
		}
		return nil, logAndReturnStoreError(logger, "Failed to update form", err)
	}

	form.Name = name
	form.Theme = theme
	form.UpdatedAt = updatedAt
	logger.Debug("Updated form", log.String(log.LoggerKeyFormID, formID))
	return form, nil
}

// SetPublished publishes or unpublishes a form owned by the caller.
func (fs *formService) SetPublished(ctx context.Context, callerID, formID string, published bool) (
	*Form, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, formLoggerComponentName))

	form, svcErr := fs.GetForm(ctx, callerID, formID)
	if svcErr != nil {
		return nil, svcErr
	}

	updatedAt := fs.now().UTC().Truncate(time.Millisecond)
	if err := fs.formStore.UpdatePublished(ctx, formID, published, updatedAt); err != nil {
		if errors.Is(err, ErrFormNotFound) {
			return nil, &ErrorFormNotFound
		}
		return nil, logAndReturnStoreError(logger, "Failed to update form publish state", err)
	}

	form.IsPublished = published
	form.UpdatedAt = updatedAt

	if published {
		fs.publisher.Publish(ctx, events.EventFormPublished, formID, map[string]interface{}{"isPublished": true})
	}
	return form, nil
}

// DeleteForm soft deletes a form owned by the caller. Its flow and responses are hidden with it.
func (fs *formService) DeleteForm(ctx context.Context, callerID, formID string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, formLoggerComponentName))

	if _, svcErr := fs.GetForm(ctx, callerID, formID); svcErr != nil {
		return svcErr
	}

	if err := fs.formStore.SoftDeleteForm(ctx, formID, fs.now().UTC().Truncate(time.Millisecond)); err != nil {
		if errors.Is(err, ErrFormNotFound) {
			return &ErrorFormNotFound
		}
		return logAndReturnStoreError(logger, "Failed to delete form", err)
	}

	fs.publisher.Publish(ctx, events.EventFormDeleted, formID, nil)
	return nil
}

// GetPublicForm retrieves a form open to respondents. Published forms are open to anyone, drafts
// only to their owner for preview. Any other form is reported as not found.
func (fs *formService) GetPublicForm(ctx context.Context, callerID, formID string) (
	*Form, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, formLoggerComponentName))

	form, svcErr := fs.getLiveForm(ctx, logger, formID)
	if svcErr != nil {
		return nil, svcErr
	}

	if !form.IsPublished && (callerID == "" || callerID != form.OwnerID) {
		return nil, &ErrorFormNotFound
	}
	return form, nil
}

func (fs *formService) getLiveForm(ctx context.Context, logger *log.Logger, formID string) (
	*Form, *serviceerror.ServiceError) {
	if strings.TrimSpace(formID) == "" {
		return nil, invalidFormRequestError("form id must not be empty")
	}

	form, err := fs.formStore.GetForm(ctx, formID)
	if err != nil {
		if errors.Is(err, ErrFormNotFound) {
			return nil, &ErrorFormNotFound
		}
		return nil, logAndReturnStoreError(logger, "Failed to get form", err)
	}
	if form.IsDeleted {
		return nil, &ErrorFormNotFound
	}
	return &form, nil
}

// checkNameAvailable fails with a conflict when another live form of the owner has the name.
// The unique index of the store still decides between concurrent writers.
func (fs *formService) checkNameAvailable(ctx context.Context, logger *log.Logger, ownerID, name,
	formID string) *serviceerror.ServiceError {
	existing, err := fs.formStore.GetFormByOwnerAndName(ctx, ownerID, name)
	if err == nil {
		if existing.ID == formID {
			return nil
		}
		return &ErrorFormNameConflict
	}
	if !errors.Is(err, ErrFormNotFound) {
		return logAndReturnStoreError(logger, "Failed to check existing form", err)
	}
	return nil
}

func normalizeFormName(raw string) (string, *serviceerror.ServiceError) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", invalidFormRequestError("form name must not be empty")
	}
	if len(name) > maxFormNameLength {
		return "", invalidFormRequestError(fmt.Sprintf("form name must not exceed %d characters", maxFormNameLength))
	}
	return name, nil
}

func normalizeTheme(raw string) string {
	if theme := strings.TrimSpace(raw); theme != "" {
		return theme
	}
	return DefaultTheme
}

// logAndReturnStoreError logs a store failure and returns the matching server error.
func logAndReturnStoreError(logger *log.Logger, message string, err error) *serviceerror.ServiceError {
	logger.Error(message, log.Error(err))
	if errors.Is(err, context.DeadlineExceeded) {
		return &ErrorStoreTimeout
	}
	return &ErrorInternalServerError
}

func invalidFormRequestError(detail string) *serviceerror.ServiceError {
	return serviceerror.CustomServiceError(ErrorInvalidRequestFormat,
		fmt.Sprintf("%s: %s", ErrorInvalidRequestFormat.ErrorDescription, detail))
}
