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

import "time"

// DefaultTheme is the theme of a form created without one.
const DefaultTheme = "light"

// Form is the record that owns a flow and its response ledger.
type Form struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"ownerId"`
	Name        string    `json:"name"`
	Theme       string    `json:"theme"`
	IsPublished bool      `json:"isPublished"`
	IsDeleted   bool      `json:"-"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateFormRequest represents the request body of a form creation.
type CreateFormRequest struct {
	Name  string `json:"name"`
	Theme string `json:"theme,omitempty"`
}

// UpdateFormRequest represents the request body of a form update. Omitted fields are left unchanged.
type UpdateFormRequest struct {
	Name  *string `json:"name,omitempty"`
	Theme *string `json:"theme,omitempty"`
}

// PublishFormRequest represents the request body of a publish state change.
type PublishFormRequest struct {
	IsPublished *bool `json:"isPublished"`
}

// FormListResponse represents the response of a form list request.
type FormListResponse struct {
	TotalResults int    `json:"totalResults"`
	Forms        []Form `json:"forms"`
}
