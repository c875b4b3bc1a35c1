package listedit

import (
	_ "embed"
	"strings"

	"golang.org/x/mod/semver"
)

//go:embed VERSION
var embeddedVersion string

// Version returns the module version string in SemVer format (without `v`).
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns the git tag form of Version (with leading `v`).
func VersionTag() string {
	return "v" + Version()
}

// IsSemver reports whether v is a full SemVer 2.0.0 version without a `v`
// prefix. Shorthands such as "1.2" are rejected.
func IsSemver(v string) bool {
	v = strings.TrimSpace(v)
	if v == "" || strings.HasPrefix(v, "v") {
		return false
	}
	tag := "v" + v
	if !semver.IsValid(tag) {
		return false
	}
	base, _, _ := strings.Cut(tag, "+")
	return semver.Canonical(tag) == base
}
