package models

import "strings"

const buildValueUnknown = "N/A"

// AppBuildInfo is the linker-injected metadata of a project-keeper binary.
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		Version: strings.TrimSpace(version),
		Date:    strings.TrimSpace(date),
		Commit:  strings.TrimSpace(commit),
	}
}

// VersionResponse builds the /api/version body. A non-empty override
// replaces the build version; date and commit always come from the build.
func (a AppBuildInfo) VersionResponse(override string) VersionResponse {
	version := strings.TrimSpace(override)
	if version == "" {
		version = a.Version
	}

	return VersionResponse{
		Version: version,
		Date:    a.Date,
		Commit:  a.Commit,
	}
}

// Rows returns label/value pairs for display, unknown values as "N/A".
func (a AppBuildInfo) Rows() [][2]string {
	return [][2]string{
		{"Версия", orUnknown(a.Version)},
		{"Дата", orUnknown(a.Date)},
		{"Коммит", orUnknown(a.Commit)},
	}
}

func orUnknown(v string) string {
	if v == "" {
		return buildValueUnknown
	}
	return v
}
