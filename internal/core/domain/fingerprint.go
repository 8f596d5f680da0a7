package domain

// FingerprintKind tags the concrete type of a fingerprint. The set of kinds is closed.
type FingerprintKind string

const (
	// FingerprintSourceSet captures file sizes and content checksums of a source set.
	FingerprintSourceSet FingerprintKind = "source-set"
	// FingerprintObjectProperties captures named project properties.
	FingerprintObjectProperties FingerprintKind = "object-properties"
	// FingerprintCombined is an unordered collection of child fingerprints.
	FingerprintCombined FingerprintKind = "combined"
)

// Fingerprint is a comparable snapshot of everything a builder's output depends on.
type Fingerprint interface {
	// Kind returns the tag used to reconstruct the fingerprint from its protocol form.
	Kind() FingerprintKind
	// Equal reports whether other describes the same inputs.
	Equal(other Fingerprint) bool
	// Protocol returns the serializable form.
	Protocol() FingerprintProtocol
}

// Dependencies describes the inputs of a builder.
type Dependencies interface {
	// CreateFingerprint captures the current state of the inputs.
	CreateFingerprint() (Fingerprint, error)
}

// FileStamp records one file of a source set fingerprint.
type FileStamp struct {
	Path     string `json:"path" msgpack:"path"`
	Size     int64  `json:"size" msgpack:"size"`
	Checksum uint64 `json:"checksum" msgpack:"checksum"`
}

// FingerprintProtocol is the serializable union of all fingerprint kinds.
// Kind selects which of the payload fields are meaningful.
type FingerprintProtocol struct {
	Kind     FingerprintKind       `json:"kind" msgpack:"kind"`
	Files    []FileStamp           `json:"files,omitempty" msgpack:"files,omitempty"`
	Values   map[string]string     `json:"values,omitempty" msgpack:"values,omitempty"`
	Children []FingerprintProtocol `json:"children,omitempty" msgpack:"children,omitempty"`
}
