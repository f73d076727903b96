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

package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type MetricsTestSuite struct {
	suite.Suite
	metrics *Metrics
}

func TestMetricsSuite(t *testing.T) {
	suite.Run(t, new(MetricsTestSuite))
}

func (suite *MetricsTestSuite) SetupTest() {
	suite.metrics = NewMetrics("formflow_test")
}

func (suite *MetricsTestSuite) TestRecordFlowMutation() {
	suite.metrics.RecordFlowMutation("add_step", OutcomeSuccess)
	suite.metrics.RecordFlowMutation("add_step", OutcomeSuccess)
	suite.metrics.RecordFlowMutation("add_step", OutcomeConflict)
	suite.metrics.RecordFlowWriteConflict("add_step")

	assert.Equal(suite.T(), 2.0,
		testutil.ToFloat64(suite.metrics.FlowMutations.WithLabelValues("add_step", OutcomeSuccess)))
	assert.Equal(suite.T(), 1.0,
		testutil.ToFloat64(suite.metrics.FlowMutations.WithLabelValues("add_step", OutcomeConflict)))
	assert.Equal(suite.T(), 1.0,
		testutil.ToFloat64(suite.metrics.FlowWriteConflicts.WithLabelValues("add_step")))
}

func (suite *MetricsTestSuite) TestRecordFunnelAndAnswers() {
	suite.metrics.RecordFunnelEvent("view")
	suite.metrics.RecordAnswerEvents(3)

	assert.Equal(suite.T(), 1.0, testutil.ToFloat64(suite.metrics.FunnelEvents.WithLabelValues("view")))
	assert.Equal(suite.T(), 3.0, testutil.ToFloat64(suite.metrics.AnswerEvents))
}

func (suite *MetricsTestSuite) TestObserveStoreCall() {
	start := time.Now()
	suite.metrics.ObserveStoreCall("flow", "write", start, nil)
	suite.metrics.ObserveStoreCall("flow", "write", start, errors.New("boom"))
	suite.metrics.ObserveStoreCall("flow", "write", start,
		fmt.Errorf("failed: %w", context.DeadlineExceeded))

	assert.Equal(suite.T(), 1, testutil.CollectAndCount(suite.metrics.StoreDuration))
	assert.Equal(suite.T(), 1.0,
		testutil.ToFloat64(suite.metrics.StoreErrors.WithLabelValues("flow", "write", OutcomeError)))
	assert.Equal(suite.T(), 1.0,
		testutil.ToFloat64(suite.metrics.StoreErrors.WithLabelValues("flow", "write", OutcomeTimeout)))
}

func (suite *MetricsTestSuite) TestInitializeRegistersHandler() {
	mux := http.NewServeMux()
	m := Initialize(mux, "formflow_http")
	m.RecordFunnelEvent("start")

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.True(suite.T(), strings.Contains(rec.Body.String(), "formflow_http_responses_funnel_events_total"))
	assert.Same(suite.T(), m, GetMetrics())
}
