// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// UnknownBuildValue stands in for build metadata the linker did not set.
const UnknownBuildValue = "N/A"

// AppBuildInfo carries immutable build-time metadata embedded into binaries.
//
// Values are injected with -ldflags "-X main.buildVersion=..." and shown by
// armqr at startup and by armqrctl version.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build metadata.
// Empty values are replaced by [UnknownBuildValue].
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orUnknown(buildVersion),
		buildDate:    orUnknown(buildDate),
		buildCommit:  orUnknown(buildCommit),
	}
}

func orUnknown(v string) string {
	if v == "" {
		return UnknownBuildValue
	}
	return v
}

// BuildVersion returns the semantic version string of the build.
func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

// BuildDate returns the build timestamp string.
func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

// BuildCommit returns the source-control commit hash used for the build.
func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

// HasVersion reports whether a version was stamped into the binary.
func (a AppBuildInfo) HasVersion() bool {
	return a.buildVersion != "" && a.buildVersion != UnknownBuildValue
}

func (a AppBuildInfo) String() string {
	return fmt.Sprintf("version %s, built %s, commit %s", a.buildVersion, a.buildDate, a.buildCommit)
}
