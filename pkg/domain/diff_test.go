package domain

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestDiff(t *testing.T) {
	tests := []struct {
		name string
		old  map[string]any
		new  map[string]any
		want map[string]any
	}{
		{
			name: "Initial Load (Old is Nil)",
			old:  nil,
			new:  map[string]any{"a": "1"},
			want: map[string]any{"a": "1"},
		},
		{
			name: "No Changes",
			old:  map[string]any{"a": "1", "list": []any{"x"}},
			new:  map[string]any{"a": "1", "list": []any{"x"}},
			want: nil,
		},
		{
			name: "Modified Nested Value",
			old:  map[string]any{"list": []any{"x"}, "b": "same"},
			new:  map[string]any{"list": []any{"x", ""}, "b": "same"},
			want: map[string]any{"list": []any{"x", ""}},
		},
		{
			name: "Deleted Key",
			old:  map[string]any{"a": "1", "gone": "2"},
			new:  map[string]any{"a": "1"},
			want: map[string]any{"gone": nil},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Diff(tt.old, tt.new)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Diff() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestDiff_JSONOmitsEmpty(t *testing.T) {
	ev := UpdateEvent{Changed: Diff(map[string]any{"a": "1"}, map[string]any{"a": "1"})}
	data, err := json.Marshal(ev)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if _, ok := raw["changed"]; ok {
		t.Errorf("expected 'changed' to be omitted, got %s", data)
	}
}
