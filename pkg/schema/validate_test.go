package schema

import (
	"testing"
)

func TestCheckData_Success(t *testing.T) {
	def, err := ParseDefinition([]byte(signupYAML), FormatYAML)
	if err != nil {
		t.Fatalf("ParseDefinition() error = %v", err)
	}

	data := map[string]any{
		"email":   "ada@example.com",
		"terms":   map[string]any{"checked": true, "value": "yes"},
		"tags":    []string{"a", "b"},
		"address": map[string]any{"city": "Lisbon"},
	}

	if err := CheckData(def.Fields, data); err != nil {
		t.Errorf("CheckData() error = %v, want nil", err)
	}

	if err := CheckData(def.Fields, map[string]any{}); err != nil {
		t.Errorf("CheckData() on empty data error = %v, want nil", err)
	}
}

func TestCheckData_Failures(t *testing.T) {
	def, err := ParseDefinition([]byte(signupYAML), FormatYAML)
	if err != nil {
		t.Fatalf("ParseDefinition() error = %v", err)
	}

	data := map[string]any{
		"email":   []any{"a"},
		"tags":    "x",
		"address": map[string]any{"city": map[string]any{}, "planet": "earth"},
		"zzz":     1,
		"aaa":     2,
	}

	err = CheckData(def.Fields, data)
	if err == nil {
		t.Fatal("CheckData() should return error")
	}

	aggr, ok := err.(*AggregateError)
	if !ok {
		t.Fatalf("error should be *AggregateError, got %T", err)
	}

	want := []string{"email", "tags", "address[city]", "address[planet]", "aaa", "zzz"}
	if len(aggr.Errors) != len(want) {
		t.Fatalf("CheckData() = %d errors, want %d: %v", len(aggr.Errors), len(want), aggr)
	}
	for i, key := range want {
		validErr, ok := aggr.Errors[i].(*ValidationError)
		if !ok {
			t.Fatalf("error should be *ValidationError, got %T", aggr.Errors[i])
		}
		if validErr.Key != key {
			t.Errorf("error %d key = %q, want %q", i, validErr.Key, key)
		}
	}
}

func TestCheckData_CollectionElements(t *testing.T) {
	def, err := ParseDefinition([]byte(`
fields:
  grid: "[[input]]"
  people:
    type: collection
    of:
      type: shape
      fields:
        name: input
`), FormatYAML)
	if err != nil {
		t.Fatalf("ParseDefinition() error = %v", err)
	}

	data := map[string]any{
		"grid":   []any{[]any{"a"}, "b"},
		"people": []any{map[string]any{"name": "Ada"}, "Grace"},
	}

	err = CheckData(def.Fields, data)
	errs := ValidationErrors(err)
	if len(errs) != 2 {
		t.Fatalf("CheckData() = %v, want 2 errors", err)
	}
	if key := errs[0].(*ValidationError).Key; key != "grid[1]" {
		t.Errorf("first error key = %q, want grid[1]", key)
	}
	if key := errs[1].(*ValidationError).Key; key != "people[1]" {
		t.Errorf("second error key = %q, want people[1]", key)
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Key: "a", Reason: "bad"}
	if got := err.Error(); got != `field "a": bad` {
		t.Errorf("Error() = %q", got)
	}

	err = &ValidationError{Key: "a", Reason: "bad", Value: "slice"}
	if got := err.Error(); got != `field "a": bad (got slice)` {
		t.Errorf("Error() = %q", got)
	}

	aggr := &AggregateError{Errors: []error{err, err}}
	if got := aggr.Error(); got == "" {
		t.Error("AggregateError.Error() is empty")
	}
}
