package cache

import (
	"strings"

	"go.trai.ch/keel/internal/core/domain"
)

// IgnorableOutputPolicy reports whether an I/O failure while storing output may be skipped.
type IgnorableOutputPolicy func(output domain.TargetRelativePath) bool

// SuffixPolicy accepts outputs whose relative path ends with one of the suffixes, ignoring case.
// Without suffixes it accepts nothing.
func SuffixPolicy(suffixes ...string) IgnorableOutputPolicy {
	lowered := make([]string, 0, len(suffixes))
	for _, s := range suffixes {
		if s != "" {
			lowered = append(lowered, strings.ToLower(s))
		}
	}
	return func(output domain.TargetRelativePath) bool {
		p := strings.ToLower(output.RelativePath)
		for _, s := range lowered {
			if strings.HasSuffix(p, s) {
				return true
			}
		}
		return false
	}
}

// DefaultIgnorableOutputPolicy skips the Visual Studio hosting process executable, which is
// routinely locked while the IDE is open.
func DefaultIgnorableOutputPolicy() IgnorableOutputPolicy {
	return SuffixPolicy(domain.DefaultIgnorableSuffix)
}
