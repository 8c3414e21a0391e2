package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aretw0/formtree/pkg/domain"
	"github.com/aretw0/formtree/pkg/schema"
)

// Violations renders a violation tree as a markdown section, one bullet per
// message, with paths in lexical order.
func Violations(errs domain.Violations) string {
	var sb strings.Builder
	sb.WriteString("## Violations\n\n")

	flat := domain.Flatten("", errs)
	if len(flat) == 0 {
		sb.WriteString("No violations.\n")
		return sb.String()
	}

	for _, path := range domain.SortedPaths(flat) {
		for _, msg := range flat[path] {
			sb.WriteString(fmt.Sprintf("- **%s**: %s\n", path, msg))
		}
	}
	return sb.String()
}

// Value renders a value as an indented JSON block under a heading.
func Value(title string, v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode %s: %w", strings.ToLower(title), err)
	}
	return fmt.Sprintf("## %s\n\n```json\n%s\n```\n", title, data), nil
}

// Definition renders a definition as a nested markdown outline.
func Definition(def *schema.Definition) string {
	var sb strings.Builder
	title := def.Title
	if title == "" {
		title = "Form"
	}
	sb.WriteString(fmt.Sprintf("# %s\n\n", title))
	writeFields(&sb, 0, def.Fields)
	return sb.String()
}

func writeFields(sb *strings.Builder, depth int, fs schema.Fields) {
	for _, f := range fs {
		writeField(sb, depth, f.Key, f.Def)
	}
}

func writeField(sb *strings.Builder, depth int, key string, def schema.FieldDef) {
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(fmt.Sprintf("- **%s** `%s`", key, def.Type))
	if len(def.Validators) > 0 {
		names := make([]string, len(def.Validators))
		for i, v := range def.Validators {
			names[i] = v.Name
		}
		sb.WriteString(" (" + strings.Join(names, ", "))
		if def.ShortCircuit {
			sb.WriteString(", short circuit")
		}
		sb.WriteString(")")
	}
	sb.WriteString("\n")

	writeFields(sb, depth+1, def.Fields)
	if def.Of != nil {
		writeField(sb, depth+1, "item", *def.Of)
	}
}
