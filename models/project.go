// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
	"unicode/utf8"
)

// PreviewTextLimit is the maximum number of characters taken from Desc when
// a preview text has to be derived.
const PreviewTextLimit = 200

// Project is a single project record. The same structure is stored in the
// local record store and exchanged with the remote collection.
//
// Optional fields use pointers where "not set" must be told apart from the
// zero value: Public is nil until it is defaulted, PreviewImage is nil when
// the image is absent.
type Project struct {
	// ID is assigned by whichever backend creates the record. Locally minted
	// identifiers carry the [LocalIDPrefix] prefix.
	ID string `json:"id,omitempty"`

	Title  string `json:"title,omitempty"`
	Desc   string `json:"desc,omitempty"`
	Author string `json:"author,omitempty"`

	// Public governs inclusion in public listings. Defaults to true.
	Public *bool `json:"public,omitempty"`

	PreviewImage *string `json:"previewImage,omitempty"`
	PreviewText  string  `json:"previewText,omitempty"`

	// CreatedAt and UpdatedAt are ISO-8601 timestamps kept verbatim, so that
	// values written by other clients compare byte for byte.
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`

	// LegacyImage is the image field name used by older clients. It is only
	// read; the normalizer removes it from stored records.
	LegacyImage *string `json:"image,omitempty"`
}

// LocalIDPrefix marks identifiers minted by the local record store.
const LocalIDPrefix = "local-"

// IsLocalID reports whether id was minted locally.
func IsLocalID(id string) bool {
	return strings.HasPrefix(id, LocalIDPrefix)
}

// IsPublic reports the effective visibility; an undefined flag counts as public.
func (p Project) IsPublic() bool {
	return p.Public == nil || *p.Public
}

// DerivedPreviewText returns PreviewText when set, otherwise Desc, cut to
// [PreviewTextLimit] characters either way.
func (p Project) DerivedPreviewText() string {
	text := p.PreviewText
	if text == "" {
		text = p.Desc
	}
	if utf8.RuneCountInString(text) <= PreviewTextLimit {
		return text
	}
	return string([]rune(text)[:PreviewTextLimit])
}

// Clone returns a deep copy of p; pointer fields are not shared.
func (p Project) Clone() Project {
	c := p
	if p.Public != nil {
		c.Public = Bool(*p.Public)
	}
	if p.PreviewImage != nil {
		c.PreviewImage = String(*p.PreviewImage)
	}
	if p.LegacyImage != nil {
		c.LegacyImage = String(*p.LegacyImage)
	}
	return c
}

// ProjectUpdate holds a partial update. Only non-nil fields are applied.
type ProjectUpdate struct {
	Title        *string `json:"title,omitempty"`
	Desc         *string `json:"desc,omitempty"`
	Author       *string `json:"author,omitempty"`
	Public       *bool   `json:"public,omitempty"`
	PreviewImage *string `json:"previewImage,omitempty"`
	PreviewText  *string `json:"previewText,omitempty"`

	// UpdatedAt is filled in by the store before the update is applied.
	UpdatedAt string `json:"updated_at,omitempty"`
}

// ApplyTo merges u over p and returns the result. p is not modified.
func (u ProjectUpdate) ApplyTo(p Project) Project {
	out := p.Clone()
	if u.Title != nil {
		out.Title = *u.Title
	}
	if u.Desc != nil {
		out.Desc = *u.Desc
	}
	if u.Author != nil {
		out.Author = *u.Author
	}
	if u.Public != nil {
		out.Public = Bool(*u.Public)
	}
	if u.PreviewImage != nil {
		out.PreviewImage = String(*u.PreviewImage)
	}
	if u.PreviewText != nil {
		out.PreviewText = *u.PreviewText
	}
	if u.UpdatedAt != "" {
		out.UpdatedAt = u.UpdatedAt
	}
	return out
}

// Source names the backend that answered a request.
type Source string

const (
	SourceRemote Source = "remote"
	SourceLocal  Source = "local"
)

// ProjectResult is a record tagged with the backend that served it.
type ProjectResult struct {
	Project Project `json:"project"`
	Source  Source  `json:"source"`
}

// ListFilter narrows ListProjects results.
type ListFilter struct {
	PublicOnly bool
}

// FilterPublic returns the records explicitly marked public. Records with an
// undefined flag are left out.
func FilterPublic(projects []Project) []Project {
	out := make([]Project, 0, len(projects))
	for _, p := range projects {
		if p.Public != nil && *p.Public {
			out = append(out, p)
		}
	}
	return out
}

// Timestamp formats t the way project timestamps are stored.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }

// String returns a pointer to v.
func String(v string) *string { return &v }
