package persistence

// SourceKind distinguishes the kinds of locations a journal can be loaded from.
type SourceKind int

const (
	SourceKindFile SourceKind = iota + 1
	SourceKindURL
)

func (k SourceKind) String() string {
	switch k {
	case SourceKindFile:
		return "file"
	case SourceKindURL:
		return "url"
	default:
		return "unknown"
	}
}

// Source is the location a journal is loaded from. Build it with FromFile or FromURL.
type Source struct {
	kind     SourceKind
	location string
}

// FromFile creates a Source for a file path.
func FromFile(path string) Source {
	return Source{kind: SourceKindFile, location: path}
}

// FromURL creates a Source for an http or https URL.
func FromURL(rawURL string) Source {
	return Source{kind: SourceKindURL, location: rawURL}
}

func (s Source) Kind() SourceKind {
	return s.kind
}

func (s Source) Location() string {
	return s.location
}

func (s Source) String() string {
	return s.kind.String() + ":" + s.location
}
