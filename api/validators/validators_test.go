package validators_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/angelmondragon/pricetracker-backend/api/validators"
	pkgerrors "github.com/angelmondragon/pricetracker-backend/pkg/errors"
)

type samplePayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func TestDecodeJSONBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"casey@example.com","password":"hunter22"}`))

	var payload samplePayload
	if err := validators.DecodeJSONBody(req, &payload); err != nil {
		t.Fatalf("DecodeJSONBody returned error: %v", err)
	}
	if payload.Email != "casey@example.com" {
		t.Fatalf("unexpected email %q", payload.Email)
	}
}

func TestDecodeJSONBodyMalformedJSON(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":`))

	var payload samplePayload
	err := validators.DecodeJSONBody(req, &payload)
	if err == nil {
		t.Fatal("expected error for malformed json")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDecodeJSONBodyReportsJSONFieldNames(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"nope","password":"x"}`))

	var payload samplePayload
	err := validators.DecodeJSONBody(req, &payload)
	if err == nil {
		t.Fatal("expected validation error")
	}

	typed := pkgerrors.As(err)
	if typed == nil {
		t.Fatalf("expected typed error, got %v", err)
	}
	msg := typed.Message()
	if !strings.Contains(msg, "email must be a valid email") {
		t.Fatalf("expected email message, got %q", msg)
	}
	if !strings.Contains(msg, "password must be at least 6 characters") {
		t.Fatalf("expected password message, got %q", msg)
	}
}

func TestParseQueryInt(t *testing.T) {
	req := httptest.NewRequest("GET", "/?limit=25", nil)

	value, err := validators.ParseQueryInt(req, "limit", 100)
	if err != nil {
		t.Fatalf("ParseQueryInt returned error: %v", err)
	}
	if value != 25 {
		t.Fatalf("expected 25, got %d", value)
	}
}

func TestParseQueryIntDefault(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)

	value, err := validators.ParseQueryInt(req, "limit", 100)
	if err != nil {
		t.Fatalf("ParseQueryInt returned error: %v", err)
	}
	if value != 100 {
		t.Fatalf("expected default 100, got %d", value)
	}
}

func TestParseQueryIntRejectsBadValues(t *testing.T) {
	for _, raw := range []string{"abc", "-5", "1.5"} {
		req := httptest.NewRequest("GET", "/?offset="+raw, nil)
		if _, err := validators.ParseQueryInt(req, "offset", 0); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}
