package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	pkgerrors "github.com/angelmondragon/pricetracker-backend/pkg/errors"
)

func TestNewAndAccessors(t *testing.T) {
	err := pkgerrors.New(pkgerrors.CodeNotFound, "not found")

	if err.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("unexpected code %s", err.Code())
	}
	if err.Message() != "not found" {
		t.Fatalf("unexpected message %q", err.Message())
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("disk full")
	err := pkgerrors.Wrap(pkgerrors.CodeInternal, cause, "write failed")

	if !errors.Is(err, cause) {
		t.Fatal("expected wrapped cause to be discoverable")
	}
}

func TestAsFindsTypedErrorThroughWrapping(t *testing.T) {
	inner := pkgerrors.New(pkgerrors.CodeValidation, "bad input")
	outer := fmt.Errorf("handling request: %w", inner)

	typed := pkgerrors.As(outer)
	if typed == nil {
		t.Fatal("expected typed error")
	}
	if typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("unexpected code %s", typed.Code())
	}
}

func TestAsReturnsNilForUntypedError(t *testing.T) {
	if typed := pkgerrors.As(errors.New("plain")); typed != nil {
		t.Fatalf("expected nil, got %v", typed)
	}
}

func TestMetadataFor(t *testing.T) {
	cases := []struct {
		code   pkgerrors.Code
		status int
	}{
		{pkgerrors.CodeValidation, http.StatusBadRequest},
		{pkgerrors.CodeDuplicateEmail, http.StatusBadRequest},
		{pkgerrors.CodeInvalidCredentials, http.StatusUnauthorized},
		{pkgerrors.CodeUnauthenticated, http.StatusUnauthorized},
		{pkgerrors.CodeInvalidToken, http.StatusForbidden},
		{pkgerrors.CodeNotFound, http.StatusNotFound},
		{pkgerrors.CodeIngestion, http.StatusInternalServerError},
		{pkgerrors.CodeInternal, http.StatusInternalServerError},
		{pkgerrors.CodeDependency, http.StatusServiceUnavailable},
	}

	for _, tc := range cases {
		if got := pkgerrors.MetadataFor(tc.code).HTTPStatus; got != tc.status {
			t.Fatalf("code %s: expected status %d, got %d", tc.code, tc.status, got)
		}
	}
}

func TestMetadataForUnknownCodeFallsBack(t *testing.T) {
	meta := pkgerrors.MetadataFor(pkgerrors.Code("SOMETHING_ELSE"))
	if meta.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected fallback 500, got %d", meta.HTTPStatus)
	}
}
