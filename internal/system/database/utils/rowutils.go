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

// Package utils provides utility functions for reading database rows.
package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// GetString reads a text column. Drivers may return TEXT columns as []byte.
func GetString(row map[string]interface{}, column string) (string, error) {
	switch v := row[column].(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("failed to parse %s as string", column)
	}
}

// GetNullableString reads a nullable text column. NULL is returned as an empty string.
func GetNullableString(row map[string]interface{}, column string) (string, error) {
	if row[column] == nil {
		return "", nil
	}
	return GetString(row, column)
}

// GetInt64 reads an integer column.
func GetInt64(row map[string]interface{}, column string) (int64, error) {
	switch v := row[column].(type) {
	case int64:
		return v, nil
	case int32:
		return int64(v), nil
	case int:
		return int64(v), nil
	case float64:
		return int64(v), nil
	case []byte:
		return parseInt(column, string(v))
	case string:
		return parseInt(column, v)
	default:
		return 0, fmt.Errorf("failed to parse %s as integer", column)
	}
}

// GetBool reads a boolean column. SQLite stores booleans as integers.
func GetBool(row map[string]interface{}, column string) (bool, error) {
	switch v := row[column].(type) {
	case bool:
		return v, nil
	case int64:
		return v != 0, nil
	case []byte:
		return parseBool(column, string(v))
	case string:
		return parseBool(column, v)
	default:
		return false, fmt.Errorf("failed to parse %s as boolean", column)
	}
}

func parseInt(column, raw string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s as integer: %w", column, err)
	}
	return n, nil
}

func parseBool(column, raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "t", "true", "1":
		return true, nil
	case "f", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("failed to parse %s as boolean", column)
	}
}
