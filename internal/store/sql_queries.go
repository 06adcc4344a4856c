package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-project-keeper/models"
)

const (
	slotsTable    = "slots"
	projectsTable = "projects"
)

var (
	sqliteBuilder   = sq.StatementBuilder.PlaceholderFormat(sq.Question)
	postgresBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
)

// projectColumns is the column order every project query selects and scans.
var projectColumns = []string{
	"id",
	"title",
	"description",
	"author",
	"public",
	"preview_image",
	"preview_text",
	"created_at",
	"updated_at",
}

// ── slots (sqlite) ───────────────────────────────────────────────────────────

func buildGetSlotQuery(name string) (string, []any, error) {
	return sqliteBuilder.
		Select("value").
		From(slotsTable).
		Where(sq.Eq{"name": name}).
		ToSql()
}

func buildPutSlotQuery(name string, value []byte, updatedAt string) (string, []any, error) {
	return sqliteBuilder.
		Insert(slotsTable).
		Columns("name", "value", "updated_at").
		Values(name, string(value), updatedAt).
		Suffix("ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func buildDeleteSlotQuery(name string) (string, []any, error) {
	return sqliteBuilder.
		Delete(slotsTable).
		Where(sq.Eq{"name": name}).
		ToSql()
}

// ── projects (postgres) ──────────────────────────────────────────────────────

func buildListProjectsQuery(publicOnly bool) (string, []any, error) {
	query := postgresBuilder.
		Select(projectColumns...).
		From(projectsTable).
		OrderBy("inserted_at DESC")

	if publicOnly {
		query = query.Where(sq.Eq{"public": true})
	}

	return query.ToSql()
}

func buildGetProjectQuery(id string) (string, []any, error) {
	return postgresBuilder.
		Select(projectColumns...).
		From(projectsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildInsertProjectQuery(p models.Project) (string, []any, error) {
	return postgresBuilder.
		Insert(projectsTable).
		Columns(projectColumns...).
		Values(
			p.ID,
			p.Title,
			p.Desc,
			p.Author,
			p.IsPublic(),
			p.PreviewImage,
			p.PreviewText,
			p.CreatedAt,
			p.UpdatedAt,
		).
		Suffix(returningProjectColumns()).
		ToSql()
}

func buildUpdateProjectQuery(p models.Project) (string, []any, error) {
	return postgresBuilder.
		Update(projectsTable).
		SetMap(map[string]any{
			"title":         p.Title,
			"description":   p.Desc,
			"author":        p.Author,
			"public":        p.IsPublic(),
			"preview_image": p.PreviewImage,
			"preview_text":  p.PreviewText,
			"updated_at":    p.UpdatedAt,
		}).
		Where(sq.Eq{"id": p.ID}).
		Suffix(returningProjectColumns()).
		ToSql()
}

func buildDeleteProjectQuery(id string) (string, []any, error) {
	return postgresBuilder.
		Delete(projectsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func returningProjectColumns() string {
	suffix := "RETURNING "
	for i, c := range projectColumns {
		if i > 0 {
			suffix += ", "
		}
		suffix += c
	}
	return suffix
}
