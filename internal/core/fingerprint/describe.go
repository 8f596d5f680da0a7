package fingerprint

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"go.trai.ch/keel/internal/core/domain"
)

// Describe renders fp as indented text for diagnostics.
func Describe(fp domain.Fingerprint) string {
	var b strings.Builder
	describe(&b, fp.Protocol(), 0)
	return b.String()
}

func describe(b *strings.Builder, p domain.FingerprintProtocol, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(b, "%s%s\n", indent, p.Kind)
	for _, f := range p.Files {
		fmt.Fprintf(b, "%s  %s size=%d xxhash=%016x\n", indent, f.Path, f.Size, f.Checksum)
	}
	for _, k := range slices.Sorted(maps.Keys(p.Values)) {
		fmt.Fprintf(b, "%s  %s=%s\n", indent, k, p.Values[k])
	}
	for _, c := range p.Children {
		describe(b, c, depth+1)
	}
}
