package validators

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-project-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldID           = "id"
	FieldTitle        = "title"
	FieldDesc         = "desc"
	FieldAuthor       = "author"
	FieldPreviewText  = "previewText"
	FieldPreviewImage = "previewImage"
	FieldCreatedAt    = "created_at"
	FieldUpdatedAt    = "updated_at"
)

// Length limits, in characters.
const (
	MaxTitleLength  = 200
	MaxDescLength   = 20000
	MaxAuthorLength = 100
)

// ProjectValidator implements [Validator] for project payloads accepted by
// the remote collection server: models.Project, models.ProjectUpdate and
// their pointer forms.
type ProjectValidator struct {
}

func NewProjectValidator() Validator {
	return &ProjectValidator{}
}

func (v *ProjectValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Project:
		return v.validateProject(ctx, value, fields...)
	case *models.Project:
		return v.validateProject(ctx, *value, fields...)

	case models.ProjectUpdate:
		return v.validateProjectUpdate(ctx, value, fields...)
	case *models.ProjectUpdate:
		return v.validateProjectUpdate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateProject validates a record submitted for creation.
//
// Default validated fields: title, desc, author, previewText, previewImage,
// created_at.
func (v *ProjectValidator) validateProject(ctx context.Context, project models.Project, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldDesc, FieldAuthor, FieldPreviewText, FieldPreviewImage, FieldCreatedAt}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if project.ID == "" {
				return ErrInvalidID
			}
		case FieldTitle:
			if utf8.RuneCountInString(project.Title) > MaxTitleLength {
				return ErrTitleTooLong
			}
		case FieldDesc:
			if utf8.RuneCountInString(project.Desc) > MaxDescLength {
				return ErrDescTooLong
			}
		case FieldAuthor:
			if utf8.RuneCountInString(project.Author) > MaxAuthorLength {
				return ErrAuthorTooLong
			}
		case FieldPreviewText:
			if utf8.RuneCountInString(project.PreviewText) > models.PreviewTextLimit {
				return ErrPreviewTextTooLong
			}
		case FieldPreviewImage:
			if project.PreviewImage != nil || project.LegacyImage != nil {
				return ErrImageNotAllowed
			}
		case FieldCreatedAt:
			if !isTimestamp(project.CreatedAt) {
				return ErrInvalidTimestamp
			}
		case FieldUpdatedAt:
			if !isTimestamp(project.UpdatedAt) {
				return ErrInvalidTimestamp
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateProjectUpdate validates a partial update. Only the fields present
// in the update are checked; an update without any field is rejected.
func (v *ProjectValidator) validateProjectUpdate(ctx context.Context, update models.ProjectUpdate, fields ...string) error {
	if update.Title == nil && update.Desc == nil && update.Author == nil &&
		update.Public == nil && update.PreviewImage == nil && update.PreviewText == nil {
		return ErrNoFieldsToUpdate
	}

	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldDesc, FieldAuthor, FieldPreviewText, FieldPreviewImage, FieldUpdatedAt}
	}

	// the update is checked as the record it would produce from an empty one
	merged := update.ApplyTo(models.Project{})
	return v.validateProject(ctx, merged, fields...)
}

// isTimestamp reports whether ts is empty or an RFC 3339 timestamp.
func isTimestamp(ts string) bool {
	if ts == "" {
		return true
	}
	_, err := time.Parse(time.RFC3339Nano, ts)
	return err == nil
}
