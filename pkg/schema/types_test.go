package schema

import (
	"testing"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"input", "input", false},
		{"textarea", "textarea", false},
		{"select", "select", false},
		{"checkbox", "checkbox", false},
		{"toggle", "toggle", false},
		{"radio", "radio", false},
		{"shape", "shape", false},
		{"collection", "collection", false},
		{"[input]", "[input]", false},
		{"[[radio]]", "[[radio]]", false},
		{"[shape]", "[shape]", false},
		{" input ", "input", false},
		{"", "", true},
		{"[]", "", true},
		{"[collection]", "", true},
		{"string", "", true},
		{"[unknown]", "", true},
	}

	for _, tt := range tests {
		typ, err := ParseType(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseType(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if err == nil && typ.Name() != tt.want {
			t.Errorf("ParseType(%q).Name() = %q, want %q", tt.input, typ.Name(), tt.want)
		}
	}
}

func TestLeafType_Toggle(t *testing.T) {
	for name, want := range map[string]bool{"checkbox": true, "toggle": true, "input": false, "radio": false} {
		typ, err := ParseType(name)
		if err != nil {
			t.Fatalf("ParseType(%q) error = %v", name, err)
		}
		if got := typ.(*LeafType).Toggle(); got != want {
			t.Errorf("%s.Toggle() = %v, want %v", name, got, want)
		}
	}
}

func TestTypeNames(t *testing.T) {
	names := TypeNames()
	if len(names) != 8 {
		t.Fatalf("TypeNames() = %v, want 8 names", names)
	}
	if names[0] != "checkbox" || names[len(names)-1] != "toggle" {
		t.Errorf("TypeNames() not sorted: %v", names)
	}
}
