package services

import (
	"fmt"

	"portfolio/domain/core/entities"
	"portfolio/domain/core/valueobjects"
)

// Finding is one problem spotted in a content document. Findings never block
// a save; they are reported to the operator.
type Finding struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (f Finding) String() string {
	return f.Path + ": " + f.Message
}

// AssetCheck reports whether an uploaded asset URL resolves.
type AssetCheck func(url string) bool

// CheckDocument lints doc. assetExists may be nil to skip logo checks.
func CheckDocument(doc entities.Document, assetExists AssetCheck) []Finding {
	var findings []Finding
	add := func(path, format string, args ...interface{}) {
		findings = append(findings, Finding{Path: path, Message: fmt.Sprintf(format, args...)})
	}

	if n, p := len(doc.Strategy.PointPositions), len(doc.Strategy.Points); n > 0 && n != p {
		add("strategy.pointPositions", "%d positions for %d points; the default layout will be used", n, p)
	}

	seen := make(map[string]string)
	var visit func(path string, m entities.Milestone, child bool)
	visit = func(path string, m entities.Milestone, child bool) {
		switch {
		case m.ID == "":
			add(path, "milestone has no id")
		case seen[m.ID] != "":
			add(path, "id %q already used by %s", m.ID, seen[m.ID])
		default:
			seen[m.ID] = path
		}

		if m.Phase == "" {
			if !child {
				add(path, "phase is missing; the fallback colour will be used")
			}
		} else if !m.Phase.IsValid() {
			add(path, "unknown phase %q", m.Phase)
		}

		if m.Color != "" {
			if _, ok := valueobjects.ColorPresets[m.Color]; !ok {
				add(path, "unknown colour %q", m.Color)
			}
		}

		if m.LogoURL != "" && assetExists != nil && !assetExists(m.LogoURL) {
			add(path, "logo %s not found", m.LogoURL)
		}

		if child {
			if len(m.Children) > 0 {
				add(path, "children of a child milestone are ignored")
			}
			return
		}
		for i, c := range m.Children {
			visit(fmt.Sprintf("%s.children[%d]", path, i), c, true)
		}
	}

	for i, m := range doc.Timeline {
		visit(fmt.Sprintf("timeline[%d]", i), m, false)
	}

	return findings
}
