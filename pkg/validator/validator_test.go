package validator

import (
	"errors"
	"strings"
	"testing"
)

type sample struct {
	Title string `json:"title" validate:"required,max=5"`
	Note  string `validate:"max=3"`
}

func TestValidateStruct_Valid(t *testing.T) {
	if err := New().ValidateStruct(sample{Title: "ok"}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestValidateStruct_UsesJSONNames(t *testing.T) {
	err := New().ValidateStruct(sample{Title: "too long", Note: "long"})

	var verrs Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected Errors, got %T", err)
	}
	if len(verrs) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(verrs))
	}
	if verrs[0].Field != "title" || verrs[0].Tag != "max" || verrs[0].Param != "5" {
		t.Errorf("unexpected first error %+v", verrs[0])
	}
	if verrs[1].Field != "Note" {
		t.Errorf("expected untagged field to keep its Go name, got %q", verrs[1].Field)
	}
	if !strings.Contains(err.Error(), "title must be at most 5 characters") {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestValidateStruct_Required(t *testing.T) {
	err := New().ValidateStruct(sample{})
	if err == nil || err.Error() != "title is required" {
		t.Fatalf("expected required message, got %v", err)
	}
}
