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

package response

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/formflow/formflow/internal/flow"
	"github.com/formflow/formflow/internal/flow/model"
	"github.com/formflow/formflow/internal/form"
	"github.com/formflow/formflow/internal/system/events"
	"github.com/formflow/formflow/tests/mocks/eventsmock"
	"github.com/formflow/formflow/tests/mocks/flowmock"
	"github.com/formflow/formflow/tests/mocks/formmock"
)

const (
	testOwnerID = "owner-1"
	testFormID  = "form-1"
)

type ResponseServiceTestSuite struct {
	suite.Suite
	mockStore       *ledgerStoreInterfaceMock
	mockFormService *formmock.FormServiceInterfaceMock
	mockFlowService *flowmock.FlowServiceInterfaceMock
	mockPublisher   *eventsmock.PublisherInterfaceMock
	service         *responseService
	fixedNow        time.Time
	idCounter       int
}

func TestResponseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseServiceTestSuite))
}

func (suite *ResponseServiceTestSuite) SetupTest() {
	suite.mockStore = newLedgerStoreInterfaceMock(suite.T())
	suite.mockFormService = formmock.NewFormServiceInterfaceMock(suite.T())
	suite.mockFlowService = flowmock.NewFlowServiceInterfaceMock(suite.T())
	suite.mockPublisher = eventsmock.NewPublisherInterfaceMock(suite.T())
	suite.fixedNow = time.Date(2025, 3, 1, 10, 0, 0, 123456789, time.UTC)
	suite.idCounter = 0
	suite.service = &responseService{
		ledgerStore: suite.mockStore,
		formService: suite.mockFormService,
		flowService: suite.mockFlowService,
		publisher:   suite.mockPublisher,
		now:         func() time.Time { return suite.fixedNow },
		newEventID: func() string {
			suite.idCounter++
			return fmt.Sprintf("event-%d", suite.idCounter)
		},
	}
}

func (suite *ResponseServiceTestSuite) expectOpenForm(callerID string) {
	suite.mockFormService.On("GetPublicForm", mock.Anything, callerID, testFormID).
		Return(&form.Form{ID: testFormID, OwnerID: testOwnerID, IsPublished: true}, nil).Once()
}

func (suite *ResponseServiceTestSuite) TestRecordView() {
	suite.expectOpenForm("")
	suite.mockStore.On("IncrementViews", mock.Anything, testFormID, suite.fixedNow).
		Return(Analytics{Views: 3, Starts: 2, Completed: 1}, nil).Once()
	suite.mockPublisher.On("Publish", mock.Anything, events.EventFormViewRecorded, testFormID,
		map[string]interface{}{"views": int64(3)}).Once()

	analytics, svcErr := suite.service.RecordView(context.Background(), "", testFormID)
	suite.Nil(svcErr)
	suite.Equal(&Analytics{Views: 3, Starts: 2, Completed: 1, CompletionRate: 50}, analytics)
}

func (suite *ResponseServiceTestSuite) TestRecordViewHiddenForm() {
	suite.mockFormService.On("GetPublicForm", mock.Anything, "", testFormID).
		Return(nil, &form.ErrorFormNotFound).Once()

	_, svcErr := suite.service.RecordView(context.Background(), "", testFormID)
	suite.Equal(&form.ErrorFormNotFound, svcErr)
	suite.mockStore.AssertNotCalled(suite.T(), "IncrementViews", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ResponseServiceTestSuite) TestRecordViewStoreErrors() {
	testCases := []struct {
		name     string
		storeErr error
		expected string
	}{
		{name: "Timeout", storeErr: fmt.Errorf("failed to count view: %w", context.DeadlineExceeded),
			expected: ErrorStoreTimeout.Code},
		{name: "Failure", storeErr: errors.New("connection refused"), expected: ErrorInternalServerError.Code},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest()
			suite.expectOpenForm("")
			suite.mockStore.On("IncrementViews", mock.Anything, testFormID, mock.Anything).
				Return(Analytics{}, tc.storeErr).Once()

			_, svcErr := suite.service.RecordView(context.Background(), "", testFormID)
			suite.Require().NotNil(svcErr)
			suite.Equal(tc.expected, svcErr.Code)
		})
	}
}

func (suite *ResponseServiceTestSuite) TestRecordAnswers() {
	suite.expectOpenForm("")
	truncated := suite.fixedNow.Truncate(time.Millisecond)

	expectedEvents := []ResponseEvent{
		{ID: "event-1", StepID: "A", Value: model.String("Ann"), SubmissionID: "sub-1", Timestamp: truncated},
		{ID: "event-2", StepID: "C", Value: model.Null(), SubmissionID: "sub-1", Timestamp: truncated},
	}
	suite.mockStore.On("AppendAnswers", mock.Anything, testFormID, expectedEvents, int64(1), int64(1), truncated).
		Return(Analytics{Views: 5, Starts: 4, Completed: 1}, nil).Once()
	suite.mockPublisher.On("Publish", mock.Anything, events.EventResponseRecorded, testFormID,
		mock.MatchedBy(func(data map[string]interface{}) bool {
			return data["answers"] == 2 && data["submissionId"] == "sub-1"
		})).Once()

	request := RecordAnswersRequest{
		Responses: []Answer{
			{StepID: "A", Value: model.String("Ann")},
			{StepID: "B"},
			{StepID: "", Value: model.String("orphan")},
			{StepID: "C", Value: model.Null()},
		},
		IsStart:      true,
		IsComplete:   true,
		SubmissionID: " sub-1 ",
	}

	analytics, svcErr := suite.service.RecordAnswers(context.Background(), "", testFormID, request)
	suite.Nil(svcErr)
	suite.Equal(int64(4), analytics.Starts)
	suite.InDelta(25.0, analytics.CompletionRate, 1e-9)
}

func (suite *ResponseServiceTestSuite) TestRecordAnswersWithoutAnswersStillCountsStart() {
	suite.expectOpenForm(testOwnerID)
	suite.mockStore.On("AppendAnswers", mock.Anything, testFormID, []ResponseEvent{}, int64(1), int64(0),
		mock.Anything).Return(Analytics{Starts: 1}, nil).Once()
	suite.mockPublisher.On("Publish", mock.Anything, events.EventResponseRecorded, testFormID, mock.Anything).Once()

	analytics, svcErr := suite.service.RecordAnswers(context.Background(), testOwnerID, testFormID,
		RecordAnswersRequest{IsStart: true})
	suite.Nil(svcErr)
	suite.Equal(float64(0), analytics.CompletionRate)
}

func (suite *ResponseServiceTestSuite) TestRecordAnswersValidation() {
	tooMany := make([]Answer, maxAnswersPerRequest+1)
	longID := make([]byte, maxSubmissionIDLength+1)
	for i := range longID {
		longID[i] = 'x'
	}

	testCases := []struct {
		name    string
		request RecordAnswersRequest
	}{
		{name: "TooManyAnswers", request: RecordAnswersRequest{Responses: tooMany}},
		{name: "SubmissionIDTooLong", request: RecordAnswersRequest{SubmissionID: string(longID)}},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			_, svcErr := suite.service.RecordAnswers(context.Background(), "", testFormID, tc.request)
			suite.Require().NotNil(svcErr)
			suite.Equal(ErrorInvalidRequestFormat.Code, svcErr.Code)
		})
	}
}

func (suite *ResponseServiceTestSuite) TestRecordAnswersStoreTimeout() {
	suite.expectOpenForm("")
	suite.mockStore.On("AppendAnswers", mock.Anything, testFormID, mock.Anything, int64(0), int64(1),
		mock.Anything).Return(Analytics{}, context.DeadlineExceeded).Once()

	_, svcErr := suite.service.RecordAnswers(context.Background(), "", testFormID,
		RecordAnswersRequest{IsComplete: true})
	suite.Equal(&ErrorStoreTimeout, svcErr)
}

func (suite *ResponseServiceTestSuite) flowWithSteps() *flow.FlowResponse {
	f := model.NewFlow(testFormID)
	f.Steps = []model.Step{
		{ID: "A", Label: "Name", Type: model.StepTypeTextInput},
		{ID: "B", Label: "Thanks", Type: model.StepTypeText, IsEndStep: true},
	}
	return &flow.FlowResponse{Flow: f}
}

func (suite *ResponseServiceTestSuite) TestGetReport() {
	suite.mockFlowService.On("GetFlow", mock.Anything, testOwnerID, testFormID).
		Return(suite.flowWithSteps(), nil).Once()
	suite.mockStore.On("GetLedger", mock.Anything, testFormID).Return(&Ledger{
		FormID:    testFormID,
		Analytics: Analytics{Views: 10, Starts: 3, Completed: 2},
		Events: []ResponseEvent{
			answerEvent("A", model.String("Ann"), at(0), ""),
			answerEvent("A", model.String("Bob"), at(3000), ""),
		},
	}, nil).Once()

	report, svcErr := suite.service.GetReport(context.Background(), testOwnerID, testFormID)
	suite.Nil(svcErr)
	suite.Len(report.Columns, 2)
	suite.Equal("Name", report.Columns[0].Label)
	suite.Len(report.Submissions, 2)
	suite.True(report.Submissions[0].Values["A"].Equal(model.String("Bob")))
	suite.Equal(int64(10), report.Analytics.Views)
	suite.InDelta(200.0/3.0, report.Analytics.CompletionRate, 1e-9)
}

func (suite *ResponseServiceTestSuite) TestGetReportWithoutLedger() {
	suite.mockFlowService.On("GetFlow", mock.Anything, testOwnerID, testFormID).
		Return(suite.flowWithSteps(), nil).Once()
	suite.mockStore.On("GetLedger", mock.Anything, testFormID).Return(nil, ErrLedgerNotFound).Once()

	report, svcErr := suite.service.GetReport(context.Background(), testOwnerID, testFormID)
	suite.Nil(svcErr)
	suite.Len(report.Columns, 2)
	suite.Empty(report.Submissions)
	suite.Equal(Analytics{}, report.Analytics)
}

func (suite *ResponseServiceTestSuite) TestGetReportPassesOwnershipErrors() {
	suite.mockFlowService.On("GetFlow", mock.Anything, "intruder", testFormID).
		Return(nil, &form.ErrorForbidden).Once()

	_, svcErr := suite.service.GetReport(context.Background(), "intruder", testFormID)
	suite.Equal(&form.ErrorForbidden, svcErr)
	suite.mockStore.AssertNotCalled(suite.T(), "GetLedger", mock.Anything, mock.Anything)
}

func (suite *ResponseServiceTestSuite) TestGetReportStoreFailure() {
	suite.mockFlowService.On("GetFlow", mock.Anything, testOwnerID, testFormID).
		Return(suite.flowWithSteps(), nil).Once()
	suite.mockStore.On("GetLedger", mock.Anything, testFormID).Return(nil, errors.New("boom")).Once()

	_, svcErr := suite.service.GetReport(context.Background(), testOwnerID, testFormID)
	suite.Equal(&ErrorInternalServerError, svcErr)
}
