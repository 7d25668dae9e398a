package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestSubmitHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	submissionDate := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		body           any
		rawBody        string
		mockSetup      func(m *MockScoreSubmitter)
		expectedStatus int
		expectedBody   map[string]any
	}{
		{
			name: "Success",
			body: SubmitRequest{UserID: 1, SubmissionDate: submissionDate, Score: 500},
			mockSetup: func(m *MockScoreSubmitter) {
				m.EXPECT().
					Submit(gomock.Any(), int64(1), submissionDate, int64(500)).
					Return(2, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   map[string]any{"state": "success", "rank": float64(2)},
		},
		{
			name:           "InvalidJSON",
			rawBody:        "{invalid-json}",
			mockSetup:      func(m *MockScoreSubmitter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]any{"state": "failed", "message": "Invalid data."},
		},
		{
			name:           "MissingUserID",
			body:           SubmitRequest{SubmissionDate: submissionDate, Score: 500},
			mockSetup:      func(m *MockScoreSubmitter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]any{"state": "failed", "message": "Invalid data."},
		},
		{
			name:           "NegativeUserID",
			body:           SubmitRequest{UserID: -1, SubmissionDate: submissionDate, Score: 500},
			mockSetup:      func(m *MockScoreSubmitter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]any{"state": "failed", "message": "Invalid data."},
		},
		{
			name: "InternalError",
			body: SubmitRequest{UserID: 1, SubmissionDate: submissionDate, Score: 500},
			mockSetup: func(m *MockScoreSubmitter) {
				m.EXPECT().
					Submit(gomock.Any(), int64(1), submissionDate, int64(500)).
					Return(0, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   map[string]any{"state": "failed", "message": "An error occurred while processing the request."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockScoreSubmitter(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewSubmitHandler(mockSvc)

			var bodyBytes []byte
			if tt.rawBody != "" {
				bodyBytes = []byte(tt.rawBody)
			} else {
				bodyBytes, _ = json.Marshal(tt.body)
			}

			req := httptest.NewRequest(http.MethodPost, "/scores/submit", bytes.NewReader(bodyBytes))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			var got map[string]any
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, tt.expectedBody, got)
		})
	}
}
