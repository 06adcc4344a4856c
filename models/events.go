// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EventType enumerates notifications emitted by the client services.
type EventType int

const (
	// EventProjectsUpdated is emitted after every local write and once at
	// start-up, carrying the full local collection.
	EventProjectsUpdated EventType = iota + 1
	// EventUserChanged is emitted on sign-in, sign-up and sign-out.
	EventUserChanged
)

// Event is a notification delivered to subscribers.
type Event struct {
	Type EventType

	// Projects is set for EventProjectsUpdated.
	Projects []Project

	// Username is set for EventUserChanged; empty after sign-out.
	Username string
	SignedIn bool
}

// ProjectsUpdated builds an EventProjectsUpdated event.
func ProjectsUpdated(projects []Project) Event {
	cp := make([]Project, len(projects))
	for i, p := range projects {
		cp[i] = p.Clone()
	}
	return Event{Type: EventProjectsUpdated, Projects: cp}
}

// UserChanged builds an EventUserChanged event. An empty username means
// nobody is signed in.
func UserChanged(username string) Event {
	return Event{Type: EventUserChanged, Username: username, SignedIn: username != ""}
}
