// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

const buildInfoUnknown = "N/A"

// AppBuildInfo carries build-time metadata injected by linker flags.
// The server falls back to BuildVersion when no version is configured.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo]. An empty version becomes "dev",
// other empty values become "N/A".
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	info := AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
	if info.buildVersion == "" {
		info.buildVersion = "dev"
	}
	if info.buildDate == "" {
		info.buildDate = buildInfoUnknown
	}
	if info.buildCommit == "" {
		info.buildCommit = buildInfoUnknown
	}
	return info
}

func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

// String formats the metadata the way it is printed on startup.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s",
		a.buildVersion, a.buildDate, a.buildCommit)
}
