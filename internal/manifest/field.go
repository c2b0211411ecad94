package manifest

// VersionKind distinguishes the states a manifest's version field can be in.
type VersionKind int

const (
	// KindAbsent means the manifest has no version key.
	KindAbsent VersionKind = iota
	// KindConcrete means the manifest states its own version string.
	KindConcrete
	// KindInherited means the manifest takes its version from the
	// workspace-level shared value.
	KindInherited
)

func (k VersionKind) String() string {
	switch k {
	case KindConcrete:
		return "concrete"
	case KindInherited:
		return "inherited"
	default:
		return "absent"
	}
}

// VersionField is the version state of a single manifest.
type VersionField struct {
	Kind  VersionKind
	Value string // set only for KindConcrete
}

// Absent returns a field with no version.
func Absent() VersionField { return VersionField{Kind: KindAbsent} }

// Concrete returns a field holding version v.
func Concrete(v string) VersionField { return VersionField{Kind: KindConcrete, Value: v} }

// Inherited returns a field that defers to the workspace version.
func Inherited() VersionField { return VersionField{Kind: KindInherited} }

// Concrete returns the version string and true when the field is concrete.
func (f VersionField) Concrete() (string, bool) {
	return f.Value, f.Kind == KindConcrete
}

func (f VersionField) String() string {
	switch f.Kind {
	case KindConcrete:
		return f.Value
	case KindInherited:
		return "(workspace)"
	default:
		return "(none)"
	}
}
