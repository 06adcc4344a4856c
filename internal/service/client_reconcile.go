// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-project-keeper/internal/adapter"
	"github.com/MKhiriev/go-project-keeper/internal/logger"
	"github.com/MKhiriev/go-project-keeper/internal/store"
	"github.com/MKhiriev/go-project-keeper/internal/validators"
	"github.com/MKhiriev/go-project-keeper/models"
)

// ReconcileOptions tunes a reconciliation pass.
type ReconcileOptions struct {
	// DeploymentHost and DeploymentAuthor: on the host named DeploymentHost
	// records without an author are pushed as DeploymentAuthor.
	DeploymentHost   string
	DeploymentAuthor string

	// SkipPrivate leaves private records local instead of publishing them.
	SkipPrivate bool

	// Hostname defaults to os.Hostname.
	Hostname func() (string, error)
}

type reconcileService struct {
	records   store.RecordStore
	remote    adapter.RemoteCollection
	accounts  store.AccountStore
	validator validators.Validator
	opts      ReconcileOptions

	logger *logger.Logger
}

func NewReconcileService(records store.RecordStore, remote adapter.RemoteCollection, accounts store.AccountStore, opts ReconcileOptions, logger *logger.Logger) ReconcileService {
	if opts.Hostname == nil {
		opts.Hostname = os.Hostname
	}

	return &reconcileService{
		records:   records,
		remote:    remote,
		accounts:  accounts,
		validator: validators.NewProjectValidator(),
		opts:      opts,
		logger:    logger,
	}
}

func (s *reconcileService) Reconcile(ctx context.Context) (models.SyncReport, error) {
	report := models.SyncReport{Pushed: []models.Project{}, Failed: []string{}}

	local, err := s.records.ReadAll(ctx)
	if err != nil {
		report.Aborted = true
		return report, fmt.Errorf("read local projects: %w", err)
	}

	if s.remote == nil {
		report.Aborted = true
		return report, adapter.ErrRemoteUnavailable
	}

	remote, err := s.remote.List(ctx)
	if err != nil {
		report.Aborted = true
		return report, fmt.Errorf("list remote projects: %w", err)
	}

	matches := newRemoteMatches(remote, local)
	defaultAuthor := s.defaultAuthor(ctx)

	for _, p := range local {
		if key, ok := matches.claim(p); ok {
			s.logger.Debug().Str("func", "reconcileService.Reconcile").
				Str("project_id", p.ID).
				Stringer("key", key).
				Msg("project already in the remote collection")
			report.Skipped++
			continue
		}
		if s.opts.SkipPrivate && !p.IsPublic() {
			report.Skipped++
			continue
		}

		payload := remotePayload(p, defaultAuthor)
		if err = s.validator.Validate(ctx, payload); err != nil {
			s.logger.Warn().Err(err).Str("func", "reconcileService.Reconcile").
				Str("project_id", p.ID).
				Msg("local project does not fit the remote collection, kept local")
			report.Failed = append(report.Failed, p.ID)
			continue
		}

		created, err := s.remote.Create(ctx, payload)
		if err != nil {
			s.logger.Warn().Err(err).Str("func", "reconcileService.Reconcile").
				Str("project_id", p.ID).
				Msg("failed to push local project")
			report.Failed = append(report.Failed, p.ID)
			continue
		}

		matches.pushed(p)
		report.Pushed = append(report.Pushed, created)
	}

	return report, nil
}

// defaultAuthor picks the author for records that have none: the deployment
// author on the deployment host, else the signed-in user, else "".
func (s *reconcileService) defaultAuthor(ctx context.Context) string {
	if s.opts.DeploymentHost != "" {
		host, err := s.opts.Hostname()
		if err == nil && strings.EqualFold(host, s.opts.DeploymentHost) {
			return s.opts.DeploymentAuthor
		}
	}

	if s.accounts == nil {
		return ""
	}

	session, err := s.accounts.GetSession(ctx)
	if err != nil {
		s.logger.Debug().Err(err).Str("func", "reconcileService.defaultAuthor").Msg("no session available")
		return ""
	}
	if session == nil {
		return ""
	}
	return session.Username
}

// remotePayload builds what gets pushed for a local record: public, without
// images, with a preview text.
func remotePayload(p models.Project, defaultAuthor string) models.Project {
	author := p.Author
	if author == "" {
		author = defaultAuthor
	}

	return models.Project{
		Title:       p.Title,
		Desc:        p.Desc,
		Author:      author,
		Public:      models.Bool(true),
		PreviewText: p.DerivedPreviewText(),
		CreatedAt:   p.CreatedAt,
	}
}

// remoteMatches pairs local records with remote ones. Id matches are
// resolved first. A title+created_at match is one-to-one: each remote record
// absorbs at most one local record, so local twins sharing title and
// created_at are pushed until the remote holds as many copies.
type remoteMatches struct {
	composite map[models.DedupKey]int
	// id keys of local records already accounted for in this pass
	done map[models.DedupKey]struct{}
}

func newRemoteMatches(remote, local []models.Project) *remoteMatches {
	m := &remoteMatches{
		composite: make(map[models.DedupKey]int, len(remote)),
		done:      make(map[models.DedupKey]struct{}, len(local)),
	}

	byID := make(map[models.DedupKey]models.Project, len(remote))
	for _, r := range remote {
		if k, ok := models.IDKey(r); ok {
			byID[k] = r
		}
		if k, ok := models.CompositeKey(r); ok {
			m.composite[k]++
		}
	}

	for _, p := range local {
		k, ok := models.IDKey(p)
		if !ok {
			continue
		}
		if r, found := byID[k]; found {
			delete(byID, k)
			m.done[k] = struct{}{}
			m.take(r)
		}
	}

	return m
}

// claim reports whether p already has a remote counterpart, consuming a
// composite match when that is what it used. The returned key is the one
// that matched.
func (m *remoteMatches) claim(p models.Project) (models.DedupKey, bool) {
	idKey, hasID := models.IDKey(p)
	if hasID {
		if _, ok := m.done[idKey]; ok {
			return idKey, true
		}
	}

	k, ok := models.CompositeKey(p)
	if !ok || !m.take(p) {
		return models.DedupKey{}, false
	}
	m.pushed(p)
	return k, true
}

// pushed marks p as handled so a later entry with the same id is skipped.
func (m *remoteMatches) pushed(p models.Project) {
	if k, ok := models.IDKey(p); ok {
		m.done[k] = struct{}{}
	}
}

func (m *remoteMatches) take(p models.Project) bool {
	k, ok := models.CompositeKey(p)
	if !ok || m.composite[k] == 0 {
		return false
	}
	m.composite[k]--
	return true
}
