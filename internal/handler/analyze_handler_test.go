package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"item-api/internal/analyzer"
	"item-api/internal/model"
	"item-api/internal/validation"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeHandler_Analyze(t *testing.T) {
	handler := http.HandlerFunc(NewAnalyzeHandler(validation.New(), zerolog.Nop()).Analyze)

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedCode   string
		expected       *analyzer.Result
	}{
		{
			name:           "Counts words and characters",
			body:           `{"text": "go is go"}`,
			expectedStatus: http.StatusOK,
			expected: &analyzer.Result{
				WordCount:     3,
				CharCount:     8,
				WordFrequency: map[string]int{"go": 2, "is": 1},
			},
		},
		{
			name:           "Empty text",
			body:           `{"text": ""}`,
			expectedStatus: http.StatusOK,
			expected: &analyzer.Result{
				WordCount:     0,
				CharCount:     0,
				WordFrequency: map[string]int{},
			},
		},
		{
			name:           "Missing text",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeValidationFailed,
		},
		{
			name:           "Malformed JSON",
			body:           `{"text":`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeInvalidJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(handler, http.MethodPost, "/analyze", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeError(t, w).Error)
				return
			}

			var got analyzer.Result
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, *tt.expected, got)
		})
	}
}
