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

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/formflow/formflow/internal/system/config"
)

type CORSMiddlewareTestSuite struct {
	suite.Suite
}

func TestCORSMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(CORSMiddlewareTestSuite))
}

func (suite *CORSMiddlewareTestSuite) SetupTest() {
	config.ResetServerRuntime()
	cfg := &config.Config{
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"https://builder.example.com", "https://preview.example.com"},
		},
	}
	_ = config.InitializeServerRuntime("/tmp", cfg)
}

func (suite *CORSMiddlewareTestSuite) TearDownTest() {
	config.ResetServerRuntime()
}

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (suite *CORSMiddlewareTestSuite) TestWithCORS() {
	fullOpts := CORSOptions{
		AllowedMethods:   "GET, POST",
		AllowedHeaders:   "Content-Type, X-User-Id",
		ExposedHeaders:   "ETag",
		AllowCredentials: true,
	}

	testCases := []struct {
		name            string
		opts            CORSOptions
		origin          string
		expectedOrigin  string
		expectedMethods string
		expectedHeaders string
		expectedExpose  string
		expectedCreds   string
	}{
		{
			name:            "AllowedOrigin",
			opts:            fullOpts,
			origin:          "https://builder.example.com",
			expectedOrigin:  "https://builder.example.com",
			expectedMethods: "GET, POST",
			expectedHeaders: "Content-Type, X-User-Id",
			expectedExpose:  "ETag",
			expectedCreds:   "true",
		},
		{
			name:            "SecondAllowedOrigin",
			opts:            CORSOptions{AllowedMethods: "GET"},
			origin:          "https://preview.example.com",
			expectedOrigin:  "https://preview.example.com",
			expectedMethods: "GET",
		},
		{
			name:   "DisallowedOrigin",
			opts:   fullOpts,
			origin: "https://malicious.com",
		},
		{
			name: "NoOriginHeader",
			opts: fullOpts,
		},
		{
			name:           "EmptyOptions",
			opts:           CORSOptions{},
			origin:         "https://builder.example.com",
			expectedOrigin: "https://builder.example.com",
		},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			pattern, wrapped := WithCORS("GET /forms", okHandler, tc.opts)
			assert.Equal(t, "GET /forms", pattern)

			req := httptest.NewRequest(http.MethodGet, "/forms", nil)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			w := httptest.NewRecorder()

			wrapped(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "OK", w.Body.String())
			assert.Equal(t, tc.expectedOrigin, w.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tc.expectedMethods, w.Header().Get("Access-Control-Allow-Methods"))
			assert.Equal(t, tc.expectedHeaders, w.Header().Get("Access-Control-Allow-Headers"))
			assert.Equal(t, tc.expectedExpose, w.Header().Get("Access-Control-Expose-Headers"))
			assert.Equal(t, tc.expectedCreds, w.Header().Get("Access-Control-Allow-Credentials"))
		})
	}
}

func (suite *CORSMiddlewareTestSuite) TestPreflightHandler() {
	_, wrapped := WithCORS("OPTIONS /forms", PreflightHandler, CORSOptions{AllowedMethods: "GET, POST"})

	req := httptest.NewRequest(http.MethodOptions, "/forms", nil)
	req.Header.Set("Origin", "https://builder.example.com")
	w := httptest.NewRecorder()

	wrapped(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
	assert.Equal(suite.T(), "GET, POST", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(suite.T(), "Origin", w.Header().Get("Vary"))
}

func (suite *CORSMiddlewareTestSuite) TestGetAllowedOrigins() {
	origins := getAllowedOrigins()
	assert.Len(suite.T(), origins, 2)
	assert.Contains(suite.T(), origins, "https://builder.example.com")
}
