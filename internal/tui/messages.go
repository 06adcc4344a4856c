package tui

import (
	"github.com/MKhiriev/go-project-keeper/models"
)

// eventMsg carries one notification from the client services. ok is false
// once the subscription is closed.
type eventMsg struct {
	event models.Event
	ok    bool
}

type projectsLoadedMsg struct {
	projects []models.Project
}

type currentUserMsg struct {
	username string
	err      error
}

type projectCreatedMsg struct {
	result models.ProjectResult
}

type projectChangedMsg struct {
	result models.ProjectResult
	err    error
}

type projectDeletedMsg struct {
	id     string
	source models.Source
	err    error
}

type authDoneMsg struct {
	username string
	signUp   bool
	err      error
}

type signedOutMsg struct {
	err error
}

type copiedMsg struct {
	id  string
	err error
}

type clearStatusMsg struct{}
