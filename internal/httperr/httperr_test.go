package httperr

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRespond_MapsKindToStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err    error
		status int
		code   string
	}{
		{ErrNotFound("service_not_found"), http.StatusNotFound, "service_not_found"},
		{ErrBusiness("invalid_service"), http.StatusBadRequest, "invalid_service"},
		{ErrConflict("time_conflict"), http.StatusConflict, "time_conflict"},
		{errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		Respond(c, tc.err)

		if w.Code != tc.status {
			t.Fatalf("%v: expected status %d, got %d", tc.err, tc.status, w.Code)
		}
		var body HTTPError
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.Code != tc.code {
			t.Fatalf("expected code %q, got %q", tc.code, body.Code)
		}
	}
}

func TestIsKind_Wrapped(t *testing.T) {
	err := errors.Join(errors.New("context"), ErrConflict("time_conflict"))
	if !IsKind(err, KindConflict) {
		t.Fatalf("expected wrapped conflict to be detected")
	}
	if !IsBusiness(err, "time_conflict") {
		t.Fatalf("expected code match")
	}
	if IsKind(err, KindNotFound) {
		t.Fatalf("unexpected kind match")
	}
}
