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
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/formflow/formflow/internal/system/config"
	"github.com/formflow/formflow/internal/system/database/provider"
	dbutils "github.com/formflow/formflow/internal/system/database/utils"
	"github.com/formflow/formflow/internal/system/metrics"
)

const storeMetricsName = "forms"

// formStoreInterface defines the interface for form store operations.
type formStoreInterface interface {
	CreateForm(ctx context.Context, form Form) error
	GetForm(ctx context.Context, formID string) (Form, error)
	GetFormByOwnerAndName(ctx context.Context, ownerID, name string) (Form, error)
	ListFormsByOwner(ctx context.Context, ownerID string) ([]Form, error)
	UpdateForm(ctx context.Context, formID, name, theme string, updatedAt time.Time) error
	UpdatePublished(ctx context.Context, formID string, published bool, updatedAt time.Time) error
	SoftDeleteForm(ctx context.Context, formID string, updatedAt time.Time) error
}

// newFormStore creates the form store matching the configured forms data source.
func newFormStore() formStoreInterface {
	dataSource := config.GetServerRuntime().Config.Database.Forms
	if dataSource.Type == config.DataSourceTypeMongo {
		return newMongoFormStore(provider.GetMongoProvider(), dataSource.Timeout)
	}
	return newSQLFormStore(provider.GetDBProvider(), dataSource.Timeout)
}

// sqlFormStore is the database/sql implementation of formStoreInterface.
type sqlFormStore struct {
	dbProvider provider.DBProviderInterface
	timeout    time.Duration
}

var _ formStoreInterface = (*sqlFormStore)(nil)

func newSQLFormStore(dbProvider provider.DBProviderInterface, timeout time.Duration) *sqlFormStore {
	return &sqlFormStore{
		dbProvider: dbProvider,
		timeout:    timeout,
	}
}

func (s *sqlFormStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

// CreateForm inserts a new form. A live form of the owner with the same name is a name conflict.
func (s *sqlFormStore) CreateForm(ctx context.Context, form Form) (err error) {
	defer observe("create", time.Now(), &err)

	dbClient, err := s.dbProvider.GetDBClient(provider.DataSourceForms)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	_, err = dbClient.Execute(ctx, queryCreateForm, form.ID, form.OwnerID, form.Name, form.Theme,
		form.IsPublished, form.IsDeleted, form.CreatedAt.UnixMilli(), form.UpdatedAt.UnixMilli())
	if err != nil {
		if dbutils.IsUniqueViolation(err) {
			return ErrFormNameConflict
		}
		return fmt.Errorf("failed to create form: %w", err)
	}
	return nil
}

// GetForm retrieves a form by its id. Soft deleted forms are returned with IsDeleted set.
func (s *sqlFormStore) GetForm(ctx context.Context, formID string) (form Form, err error) {
	defer observe("get", time.Now(), &err)

	dbClient, err := s.dbProvider.GetDBClient(provider.DataSourceForms)
	if err != nil {
		return Form{}, fmt.Errorf("failed to get database client: %w", err)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	results, err := dbClient.Query(ctx, queryGetFormByID, formID)
	if err != nil {
		return Form{}, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return Form{}, ErrFormNotFound
	}
	return parseFormFromRow(results[0])
}

// GetFormByOwnerAndName retrieves a live form of the owner by its name.
func (s *sqlFormStore) GetFormByOwnerAndName(ctx context.Context, ownerID, name string) (form Form, err error) {
	defer observe("get_by_name", time.Now(), &err)

	dbClient, err := s.dbProvider.GetDBClient(provider.DataSourceForms)
	if err != nil {
		return Form{}, fmt.Errorf("failed to get database client: %w", err)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	results, err := dbClient.Query(ctx, queryGetFormByOwnerAndName, ownerID, name, false)
	if err != nil {
		return Form{}, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return Form{}, ErrFormNotFound
	}
	return parseFormFromRow(results[0])
}

// ListFormsByOwner lists the live forms of the owner.
func (s *sqlFormStore) ListFormsByOwner(ctx context.Context, ownerID string) (forms []Form, err error) {
	defer observe("list", time.Now(), &err)

	dbClient, err := s.dbProvider.GetDBClient(provider.DataSourceForms)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	results, err := dbClient.Query(ctx, queryListFormsByOwner, ownerID, false)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	forms = make([]Form, 0, len(results))
	for _, row := range results {
		form, err := parseFormFromRow(row)
		if err != nil {
			return nil, err
		}
		forms = append(forms, form)
	}
	return forms, nil
}

// UpdateForm sets the name and theme of a live form.
func (s *sqlFormStore) UpdateForm(ctx context.Context, formID, name, theme string, updatedAt time.Time) (err error) {
	defer observe("update", time.Now(), &err)

	dbClient, err := s.dbProvider.GetDBClient(provider.DataSourceForms)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows, err := dbClient.Execute(ctx, queryUpdateForm, name, theme, updatedAt.UnixMilli(), formID, false)
	if err != nil {
		if dbutils.IsUniqueViolation(err) {
			return ErrFormNameConflict
		}
		return fmt.Errorf("failed to update form: %w", err)
	}
	if rows == 0 {
		return ErrFormNotFound
	}
	return nil
}

// UpdatePublished sets the published flag of a live form.
func (s *sqlFormStore) UpdatePublished(ctx context.Context, formID string, published bool,
	updatedAt time.Time) (err error) {
	defer observe("update_published", time.Now(), &err)

	dbClient, err := s.dbProvider.GetDBClient(provider.DataSourceForms)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows, err := dbClient.Execute(ctx, queryUpdateFormPublished, published, updatedAt.UnixMilli(), formID, false)
	if err != nil {
		return fmt.Errorf("failed to update form: %w", err)
	}
	if rows == 0 {
		return ErrFormNotFound
	}
	return nil
}

// SoftDeleteForm marks a live form as deleted.
func (s *sqlFormStore) SoftDeleteForm(ctx context.Context, formID string, updatedAt time.Time) (err error) {
	defer observe("delete", time.Now(), &err)

	dbClient, err := s.dbProvider.GetDBClient(provider.DataSourceForms)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows, err := dbClient.Execute(ctx, querySoftDeleteForm, true, updatedAt.UnixMilli(), formID, false)
	if err != nil {
		return fmt.Errorf("failed to delete form: %w", err)
	}
	if rows == 0 {
		return ErrFormNotFound
	}
	return nil
}

// parseFormFromRow parses a form from a database row.
func parseFormFromRow(row map[string]interface{}) (Form, error) {
	formID, err := dbutils.GetString(row, "form_id")
	if err != nil {
		return Form{}, err
	}
	ownerID, err := dbutils.GetString(row, "owner_id")
	if err != nil {
		return Form{}, err
	}
	name, err := dbutils.GetString(row, "name")
	if err != nil {
		return Form{}, err
	}
	theme, err := dbutils.GetString(row, "theme")
	if err != nil {
		return Form{}, err
	}
	isPublished, err := dbutils.GetBool(row, "is_published")
	if err != nil {
		return Form{}, err
	}
	isDeleted, err := dbutils.GetBool(row, "is_deleted")
	if err != nil {
		return Form{}, err
	}
	createdAt, err := dbutils.GetInt64(row, "created_at")
	if err != nil {
		return Form{}, err
	}
	updatedAt, err := dbutils.GetInt64(row, "updated_at")
	if err != nil {
		return Form{}, err
	}

	return Form{
		ID:          formID,
		OwnerID:     ownerID,
		Name:        name,
		Theme:       theme,
		IsPublished: isPublished,
		IsDeleted:   isDeleted,
		CreatedAt:   time.UnixMilli(createdAt).UTC(),
		UpdatedAt:   time.UnixMilli(updatedAt).UTC(),
	}, nil
}

// observe records the latency and outcome of a store call.
// A missing form or a name conflict is not counted as a store failure.
func observe(operation string, start time.Time, err *error) {
	callErr := *err
	if errors.Is(callErr, ErrFormNotFound) || errors.Is(callErr, ErrFormNameConflict) {
		callErr = nil
	}
	metrics.GetMetrics().ObserveStoreCall(storeMetricsName, operation, start, callErr)
}
