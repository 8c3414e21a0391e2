package graph

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/aretw0/formtree/pkg/domain"
	"github.com/aretw0/formtree/pkg/schema"
)

// GraphOverlay contains dynamic form data to visualize on the graph.
type GraphOverlay struct {
	// Invalid holds violation paths as produced by domain.Flatten.
	Invalid []string
}

// GenerateMermaid produces a Mermaid flowchart syntax string from a form
// definition. It applies semantic styling:
// - Form root: ((Circle))
// - Shape: {{Hexagon}}
// - Collection: [[Subroutine]]
// - Leaf: [Rectangle]
// Validator names are listed under the field label. Fields named in the
// overlay are highlighted.
func GenerateMermaid(def *schema.Definition, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	title := def.Title
	if title == "" {
		title = "form"
	}
	sb.WriteString(fmt.Sprintf("    form((\"%s\"))\n", escapeLabel(title)))
	writeFields(&sb, "form", "", def.Fields)

	// Apply Overlay Styles
	if overlay != nil && len(overlay.Invalid) > 0 {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef invalid fill:#fee2e2,stroke:#b91c1c,stroke-width:3px,color:#000;\n")

		seen := make(map[string]bool)
		var ids []string
		for _, path := range overlay.Invalid {
			id := sanitizeMermaidID(elementPath(path))
			if !seen[id] && id != "" {
				seen[id] = true
				ids = append(ids, id)
			}
		}
		sort.Strings(ids)
		for _, id := range ids {
			sb.WriteString(fmt.Sprintf("    class %s invalid;\n", id))
		}
	}

	return sb.String()
}

func writeFields(sb *strings.Builder, parentID, parentPath string, fs schema.Fields) {
	for _, f := range fs {
		writeField(sb, parentID, domain.ChildName(parentPath, f.Key), f.Key, f.Def)
	}
}

func writeField(sb *strings.Builder, parentID, path, label string, def schema.FieldDef) {
	id := sanitizeMermaidID(path)

	// Node Shape based on Type
	opener, closer := "[", "]"
	typ, err := schema.ParseType(def.Type)
	switch typ.(type) {
	case *schema.ShapeType:
		opener, closer = "{{", "}}"
	case *schema.CollectionType:
		opener, closer = "[[", "]]"
	}

	text := label
	if def.Type != "" {
		text = fmt.Sprintf("%s: %s", label, def.Type)
	}
	if err != nil {
		text += " ⚠️"
	}
	if len(def.Validators) > 0 {
		names := make([]string, len(def.Validators))
		for i, v := range def.Validators {
			names[i] = v.Name
		}
		text += " <br/> " + strings.Join(names, ", ")
	}

	sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", id, opener, escapeLabel(text), closer))
	sb.WriteString(fmt.Sprintf("    %s --> %s\n", parentID, id))

	writeFields(sb, id, path, def.Fields)
	if def.Of != nil {
		writeField(sb, id, path+"[]", "item", *def.Of)
	}
}

var indexPattern = regexp.MustCompile(`\[\d+\]`)

// elementPath maps a value path ("tags[3]") to the definition path of its
// element ("tags[]").
func elementPath(path string) string {
	return indexPattern.ReplaceAllString(path, "[]")
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, "[", "_")
	s = strings.ReplaceAll(s, "]", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
