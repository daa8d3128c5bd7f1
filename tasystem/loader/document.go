// File: document.go
// Role: The YAML document shape: one struct per §6 declaration list,
// field names matching the abstract input model's vocabulary directly
// rather than any original parser's concrete syntax.

package loader

// ClockDecl declares a (possibly array-typed) clock.
type ClockDecl struct {
	Name string `yaml:"name"`
	Size int    `yaml:"size"`
}

// IntVarDecl declares a bounded integer variable.
type IntVarDecl struct {
	Name string `yaml:"name"`
	Size int    `yaml:"size"`
	Min  int    `yaml:"min"`
	Max  int    `yaml:"max"`
	Init int    `yaml:"init"`
}

// ClockGuard is one clock constraint "clock <cmp> value", or the
// difference constraint "clock - ref <cmp> value" when ref is set. cmp
// is one of "<", "<=", ">", ">=", "==".
type ClockGuard struct {
	Clock string `yaml:"clock"`
	Ref   string `yaml:"ref,omitempty"`
	Cmp   string `yaml:"cmp"`
	Value int64  `yaml:"value"`
}

// ClockReset resets clock to zero. The translator (refclock.TranslateReset) only
// supports resetting to the constant zero, never to another clock's
// value, so Reset carries no ref/value fields.
type ClockReset struct {
	Clock string `yaml:"clock"`
}

// IntGuard constrains a bounded integer variable against a threshold.
// cmp is one of "==", "!=", "<", "<=", ">", ">=".
type IntGuard struct {
	Var   string `yaml:"var"`
	Cmp   string `yaml:"cmp"`
	Value int    `yaml:"value"`
}

// IntAssign assigns Var to Value, or to its current value plus Delta.
// Exactly one of Value/Delta should be set; Delta wins if both are.
type IntAssign struct {
	Var   string `yaml:"var"`
	Value *int   `yaml:"value,omitempty"`
	Delta *int   `yaml:"delta,omitempty"`
}

// LocationDecl declares one location of a process.
type LocationDecl struct {
	Process   string       `yaml:"process"`
	Name      string       `yaml:"name"`
	Initial   bool         `yaml:"initial,omitempty"`
	Committed bool         `yaml:"committed,omitempty"`
	Labels    []string     `yaml:"labels,omitempty"`
	Invariant []ClockGuard `yaml:"invariant,omitempty"`
}

// EdgeDecl declares one edge of a process.
type EdgeDecl struct {
	Process     string       `yaml:"process"`
	Src         string       `yaml:"src"`
	Tgt         string       `yaml:"tgt"`
	Event       string       `yaml:"event"`
	Guard       []ClockGuard `yaml:"guard,omitempty"`
	IntGuard    []IntGuard   `yaml:"int_guard,omitempty"`
	Resets      []ClockReset `yaml:"resets,omitempty"`
	Assignments []IntAssign  `yaml:"assignments,omitempty"`
}

// SyncParticipant is one (process, event) pair of a synchronization
// vector. Strength is "strong" (default, mandatory) or "weak"
// (optional/broadcast).
type SyncParticipant struct {
	Process  string `yaml:"process"`
	Event    string `yaml:"event"`
	Strength string `yaml:"strength,omitempty"`
}

// SyncVector declares one synchronization vector.
type SyncVector struct {
	Participants []SyncParticipant `yaml:"participants"`
}

// Document is the top-level YAML shape: ordered declaration lists.
// Labels are not declared directly; they are collected, in first-seen
// order, from every LocationDecl.Labels entry.
type Document struct {
	Processes []string       `yaml:"processes"`
	Events    []string       `yaml:"events"`
	Clocks    []ClockDecl    `yaml:"clocks,omitempty"`
	IntVars   []IntVarDecl   `yaml:"int_vars,omitempty"`
	Locations []LocationDecl `yaml:"locations"`
	Edges     []EdgeDecl     `yaml:"edges"`
	Syncs     []SyncVector   `yaml:"syncs,omitempty"`
}
