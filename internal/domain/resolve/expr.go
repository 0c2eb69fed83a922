package resolve

import "strings"

// InputSeparator separates components of a typed path
const InputSeparator = "/"

// ParentRef is the expression that navigates one level up
const ParentRef = ".."

// Expr is a parsed path expression.
//
// An expression containing ':' is drive-rooted: its first component names
// the drive and the rest are walked from the root. Anything else is walked
// from the working folder. Empty components are dropped, so "Docs//A/" and
// "Docs/A" address the same folder.
type Expr struct {
	Raw        string
	Drive      string
	Absolute   bool
	Components []string
}

// Parse parses a path expression
func Parse(raw string) Expr {
	e := Expr{Raw: raw}
	parts := strings.Split(raw, InputSeparator)
	if strings.Contains(raw, ":") {
		e.Absolute = true
		e.Drive = parts[0]
		parts = parts[1:]
	}
	for _, p := range parts {
		if p != "" {
			e.Components = append(e.Components, p)
		}
	}
	return e
}

// Split separates the last component, the target name, from the path of
// the folder that contains it. The name is trimmed of surrounding blanks
// and may be empty.
func Split(raw string) (parent Expr, name string) {
	i := strings.LastIndex(raw, InputSeparator)
	if i < 0 {
		return Parse(""), strings.TrimSpace(raw)
	}
	return Parse(raw[:i]), strings.TrimSpace(raw[i+1:])
}

// Empty reports whether the expression addresses its starting folder
// without walking
func (e Expr) Empty() bool {
	return len(e.Components) == 0
}

// Foreign reports whether a drive-rooted expression names a drive other
// than label
func (e Expr) Foreign(label string) bool {
	return e.Absolute && e.Drive != label
}
