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

// Package utils provides utility functions for HTTP operations.
package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/formflow/formflow/internal/system/constants"
	"github.com/formflow/formflow/internal/system/log"
)

// maxRequestBodyBytes bounds the size of a decoded JSON request body.
const maxRequestBodyBytes = 1 << 20

// DecodeJSONBody decodes the JSON body of the request into a value of type T.
func DecodeJSONBody[T any](r *http.Request) (*T, error) {
	if r.Body == nil {
		return nil, errors.New("request body is empty")
	}

	var data T
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxRequestBodyBytes))
	if err := decoder.Decode(&data); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("request body is empty")
		}
		return nil, fmt.Errorf("failed to decode request body: %w", err)
	}

	return &data, nil
}

// GetCallerID returns the authenticated caller id forwarded by the gateway.
func GetCallerID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(constants.CallerIDHeaderName))
}

// ParseIfMatchVersion parses the optional If-Match header into a flow version.
// A missing header returns -1.
func ParseIfMatchVersion(r *http.Request) (int64, error) {
	raw := strings.TrimSpace(r.Header.Get(constants.IfMatchHeaderName))
	if raw == "" {
		return -1, nil
	}
	raw = strings.TrimPrefix(raw, "W/")
	raw = strings.Trim(raw, `"`)

	version, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || version < 0 {
		return -1, fmt.Errorf("invalid If-Match header value: %s", raw)
	}
	return version, nil
}

// WriteJSONResponse writes the given payload as a JSON response with the given status code.
func WriteJSONResponse(w http.ResponseWriter, statusCode int, payload interface{}) bool {
	w.Header().Set(constants.ContentTypeHeaderName, constants.ContentTypeJSON)
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.GetLogger().Error("Error encoding response", log.Error(err))
		return false
	}
	return true
}
