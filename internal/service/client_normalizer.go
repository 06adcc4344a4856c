package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-project-keeper/internal/logger"
	"github.com/MKhiriev/go-project-keeper/internal/store"
	"github.com/MKhiriev/go-project-keeper/models"
)

type normalizer struct {
	records  store.RecordStore
	ids      IDGenerator
	notifier *Notifier
	logger   *logger.Logger
}

func NewNormalizer(records store.RecordStore, ids IDGenerator, notifier *Notifier, logger *logger.Logger) Normalizer {
	return &normalizer{records: records, ids: ids, notifier: notifier, logger: logger}
}

func (n *normalizer) Normalize(ctx context.Context) ([]models.Project, error) {
	projects, err := n.records.ReadAll(ctx)
	if err != nil {
		n.logger.Err(err).Str("func", "normalizer.Normalize").Msg("failed to read local projects")
		n.notifier.Publish(models.ProjectsUpdated(nil))
		return nil, fmt.Errorf("read local projects: %w", err)
	}

	changed := 0
	for i := range projects {
		if n.normalize(&projects[i]) {
			changed++
		}
	}

	if changed > 0 {
		if err = n.records.WriteAll(ctx, projects); err != nil {
			n.logger.Warn().Err(err).Str("func", "normalizer.Normalize").
				Int("changed", changed).
				Msg("failed to persist normalized projects")
		} else {
			n.logger.Info().Str("func", "normalizer.Normalize").
				Int("changed", changed).
				Int("projects", len(projects)).
				Msg("local projects normalized")
		}
	}

	n.notifier.Publish(models.ProjectsUpdated(projects))
	return projects, nil
}

// normalize brings p to the current record shape and reports whether
// anything changed.
func (n *normalizer) normalize(p *models.Project) bool {
	changed := false

	if p.ID == "" {
		p.ID = n.ids.Generate()
		changed = true
	}

	if p.Public == nil {
		p.Public = models.Bool(true)
		changed = true
	}

	// legacy "image" is dropped; previewImage stays absent
	if p.LegacyImage != nil && p.PreviewImage == nil {
		p.LegacyImage = nil
		changed = true
	}

	return changed
}
