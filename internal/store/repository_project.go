// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-project-keeper/internal/logger"
	"github.com/MKhiriev/go-project-keeper/models"
)

// projectRepository is the PostgreSQL-backed implementation of
// [ProjectRepository] over the "projects" table.
//
// Every method obtains a context-scoped logger via [logger.FromContext] so
// database failures are traced with the request's trace id.
type projectRepository struct {
	*DB
	logger *logger.Logger
}

func NewProjectRepository(db *DB, logger *logger.Logger) ProjectRepository {
	logger.Debug().Msg("creating project repository")
	return &projectRepository{
		DB:     db,
		logger: logger,
	}
}

// ListProjects returns all projects, newest first. With publicOnly only
// public projects are returned.
func (r *projectRepository) ListProjects(ctx context.Context, publicOnly bool) ([]models.Project, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListProjectsQuery(publicOnly)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var rows *sql.Rows
	err = r.withRetry(ctx, func() error {
		var qErr error
		rows, qErr = r.DB.QueryContext(ctx, query, args...)
		return qErr
	})
	if err != nil {
		log.Err(err).Str("func", "projectRepository.ListProjects").Msg("failed to execute query for listing projects")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	projects := make([]models.Project, 0)
	for rows.Next() {
		p, scanErr := scanProject(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "projectRepository.ListProjects").Msg("failed to scan project row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		projects = append(projects, p)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "projectRepository.ListProjects").Msg("error iterating project rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return projects, nil
}

// GetProject returns the project with id or [ErrProjectNotFound].
func (r *projectRepository) GetProject(ctx context.Context, id string) (models.Project, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetProjectQuery(id)
	if err != nil {
		return models.Project{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var p models.Project
	err = r.withRetry(ctx, func() error {
		var scanErr error
		p, scanErr = scanProject(r.DB.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Project{}, ErrProjectNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "projectRepository.GetProject").Str("project_id", id).Msg("failed to get project")
		return models.Project{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return p, nil
}

// CreateProject inserts project as is; the caller assigns the id.
func (r *projectRepository) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertProjectQuery(project)
	if err != nil {
		return models.Project{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Project
	err = r.withRetry(ctx, func() error {
		var scanErr error
		created, scanErr = scanProject(r.DB.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		log.Err(err).Str("func", "projectRepository.CreateProject").Str("project_id", project.ID).Msg("failed to insert project")
		return models.Project{}, projectWriteError(err)
	}

	return created, nil
}

// UpdateProject overwrites the mutable columns of project.ID.
func (r *projectRepository) UpdateProject(ctx context.Context, project models.Project) (models.Project, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateProjectQuery(project)
	if err != nil {
		return models.Project{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Project
	err = r.withRetry(ctx, func() error {
		var scanErr error
		updated, scanErr = scanProject(r.DB.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Project{}, ErrProjectNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "projectRepository.UpdateProject").Str("project_id", project.ID).Msg("failed to update project")
		return models.Project{}, projectWriteError(err)
	}

	return updated, nil
}

// DeleteProject removes the project with id or returns [ErrProjectNotFound].
func (r *projectRepository) DeleteProject(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteProjectQuery(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var result sql.Result
	err = r.withRetry(ctx, func() error {
		var execErr error
		result, execErr = r.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "projectRepository.DeleteProject").Str("project_id", id).Msg("failed to delete project")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrProjectNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (models.Project, error) {
	var (
		p            models.Project
		public       bool
		previewImage sql.NullString
	)

	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Desc,
		&p.Author,
		&public,
		&previewImage,
		&p.PreviewText,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return models.Project{}, err
	}

	p.Public = models.Bool(public)
	if previewImage.Valid {
		p.PreviewImage = models.String(previewImage.String)
	}

	return p, nil
}
