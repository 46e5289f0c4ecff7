package storage

import (
	"fmt"
	"strings"
)

// ResolveName returns a name not present in existing, derived from desired.
// If desired is free it is returned unchanged; otherwise the name is split
// into stem and extension at the last dot and "stem_<n><ext>" is tried for
// n = 1, 2, 3, ... ("desired_<n>" when there is no extension).
//
// Pure and deterministic. Callers that may race on creation must still use
// an exclusive-create primitive at write time; see DiskStore.CreateNew.
func ResolveName(desired string, existing map[string]struct{}) string {
	if _, taken := existing[desired]; !taken {
		return desired
	}

	stem := desired
	ext := ""
	if i := strings.LastIndex(desired, "."); i != -1 {
		stem, ext = desired[:i], desired[i:]
	}

	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s_%d%s", stem, n, ext)
		if _, taken := existing[candidate]; !taken {
			return candidate
		}
	}
}
