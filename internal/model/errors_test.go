package model

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestAPIError_WriteJSON(t *testing.T) {
	rr := httptest.NewRecorder()
	NewNotFoundError("Todo").WriteJSON(rr)

	if rr.Code != 404 {
		t.Errorf("expected status 404, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %s", ct)
	}

	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["error"] != "Todo not found" {
		t.Errorf("expected body error 'Todo not found', got %q", body["error"])
	}
}

func TestValidationError_WriteJSON_ListsEveryViolation(t *testing.T) {
	rr := httptest.NewRecorder()
	NewValidationError([]FieldError{
		{Field: "title", Message: "title must not be empty"},
		{Field: "title", Message: "title must be at least 3 characters long"},
	}).WriteJSON(rr)

	if rr.Code != 422 {
		t.Errorf("expected status 422, got %d", rr.Code)
	}

	var body struct {
		Errors []FieldError `json:"errors"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if len(body.Errors) != 2 {
		t.Fatalf("expected 2 violations, got %d", len(body.Errors))
	}
	if body.Errors[0].Field != "title" {
		t.Errorf("expected first violation on title, got %s", body.Errors[0].Field)
	}
}

func TestValidationError_Error_SummarizesViolations(t *testing.T) {
	err := NewValidationError([]FieldError{
		{Field: "title", Message: "title must not be empty"},
		{Field: "title", Message: "title must be at least 3 characters long"},
	})

	if !strings.Contains(err.Error(), "title") {
		t.Errorf("expected message to mention the field, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "1 more") {
		t.Errorf("expected message to count remaining violations, got %q", err.Error())
	}
}

func TestUpdateTodoRequest_Fields_OnlySuppliedKeys(t *testing.T) {
	status := 1
	req := UpdateTodoRequest{Status: &status}

	fields := req.Fields()
	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}
	if fields["status"] != 1 {
		t.Errorf("expected status 1, got %v", fields["status"])
	}
	if _, ok := fields["id"]; ok {
		t.Error("id must never appear in update fields")
	}
}
