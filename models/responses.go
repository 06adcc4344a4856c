package models

// ProjectsResponse is the body of GET /api/projects.
type ProjectsResponse struct {
	// Projects are ordered newest first.
	Projects []Project `json:"projects"`

	// Length is the number of entries in Projects.
	Length int `json:"length"`
}

// VersionResponse is the body of GET /api/version.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date,omitempty"`
	Commit  string `json:"commit,omitempty"`
}
