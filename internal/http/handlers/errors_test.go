package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"tripsearch/internal/domain"

	"github.com/gin-gonic/gin"
	pkgerrors "github.com/pkg/errors"
)

func TestRespondDomainError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", domain.ValidationError{Field: "keywords", Msg: "too long"}, http.StatusBadRequest, "validation_error"},
		{"upstream wrapped", pkgerrors.Wrap(domain.UpstreamError{Op: "GET /trips", Status: 500}, "search trips"), http.StatusBadGateway, "upstream_error"},
		{"not found", domain.NotFoundError{Resource: "trip"}, http.StatusNotFound, "not_found"},
		{"other", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			RespondDomainError(c, tc.err)

			if w.Code != tc.status {
				t.Fatalf("status = %d, want %d", w.Code, tc.status)
			}
			var resp ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp.Code != tc.code {
				t.Fatalf("code = %q, want %q", resp.Code, tc.code)
			}
		})
	}
}
