package domain

import (
	"net/url"
	"strings"

	"go.trai.ch/zerr"
)

// ReferenceScheme selects how a reference is resolved.
type ReferenceScheme string

const (
	// SchemeModule resolves a project inside the referencing project's module: module://Project.
	SchemeModule ReferenceScheme = "module"
	// SchemeSuite resolves a project anywhere in the suite: suite://Module/Project.
	SchemeSuite ReferenceScheme = "suite"
)

// Reference is a symbolic pointer to another project.
type Reference struct {
	Scheme  ReferenceScheme
	Module  string
	Project string
}

// ParseReference parses a reference URI.
func ParseReference(raw string) (Reference, error) {
	invalid := func(reason string) error {
		err := zerr.Wrap(ErrInvalidReference, reason)
		return zerr.With(err, "reference", raw)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return Reference{}, invalid("malformed reference uri")
	}

	segment := strings.Trim(u.Path, "/")
	switch ReferenceScheme(strings.ToLower(u.Scheme)) {
	case SchemeModule:
		if u.Host == "" || segment != "" {
			return Reference{}, invalid("module reference must be module://Project")
		}
		return Reference{Scheme: SchemeModule, Project: u.Host}, nil
	case SchemeSuite:
		if u.Host == "" || segment == "" || strings.Contains(segment, "/") {
			return Reference{}, invalid("suite reference must be suite://Module/Project")
		}
		return Reference{Scheme: SchemeSuite, Module: u.Host, Project: segment}, nil
	default:
		return Reference{}, invalid("unsupported reference scheme")
	}
}

// MustParseReference is like ParseReference but panics on error.
func MustParseReference(raw string) Reference {
	ref, err := ParseReference(raw)
	if err != nil {
		panic(err)
	}
	return ref
}

// String returns the URI form of the reference.
func (r Reference) String() string {
	if r.Scheme == SchemeSuite {
		return string(r.Scheme) + "://" + r.Module + "/" + r.Project
	}
	return string(r.Scheme) + "://" + r.Project
}
