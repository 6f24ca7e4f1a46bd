package usecase

import (
	"context"

	"staradmin/internal/domain/entity"
)

// BuilderMessageSource is the required source tag of preview messages;
// messages tagged otherwise are ignored.
const BuilderMessageSource = "site-builder"

// BuilderUsecase defines the interface for storefront layout editing.
type BuilderUsecase interface {
	// Sections returns the cached sections of one page in render order.
	Sections(page string) []entity.SiteSection
	// Pages lists the known page slugs, home first.
	Pages() []string
	// AddPage registers a new page slug derived from name.
	AddPage(ctx context.Context, name string) (string, error)
	// DeletePage removes a page and every section on it. Home is protected.
	DeletePage(ctx context.Context, page string) error

	// SeedDefaultLayout pushes the default storefront layout when the
	// backend holds no sections at all.
	SeedDefaultLayout(ctx context.Context) error

	// AddSection inserts a new section of the given type on a page.
	// insertIndex below zero appends at the end.
	AddSection(ctx context.Context, page string, sectionType entity.SectionType, insertIndex int) (entity.SiteSection, error)
	// UpdateSection persists edited section data, refreshing the derived
	// translations for its text fields.
	UpdateSection(ctx context.Context, input *UpdateSectionInput) (entity.SiteSection, error)
	// DeleteSection removes one section.
	DeleteSection(ctx context.Context, id string) error
	// MoveSection swaps a section with its neighbour and renumbers the page.
	MoveSection(ctx context.Context, id string, direction MoveDirection) error

	// HandleMessage dispatches one structural command sent by the embedded
	// storefront preview.
	HandleMessage(ctx context.Context, msg *BuilderMessage) error

	// PreviewURL returns the persisted storefront preview address.
	PreviewURL() string
	// SetPreviewURL persists a new preview address.
	SetPreviewURL(ctx context.Context, url string) error
	// PreviewQR renders the preview address as a QR PNG for phones.
	PreviewQR() ([]byte, error)
}

// MoveDirection selects which neighbour a section swaps with.
type MoveDirection string

const (
	MoveUp   MoveDirection = "up"
	MoveDown MoveDirection = "down"
)

// UpdateSectionInput defines the editable fields of a section.
type UpdateSectionInput struct {
	ID      string         `json:"id" validate:"required"`
	Enabled *bool          `json:"enabled"`
	Data    map[string]any `json:"data"`
}

// BuilderMessage is the command envelope posted by the storefront
// preview while the operator edits in place.
type BuilderMessage struct {
	Source      string `json:"source" validate:"required"`
	Type        string `json:"type" validate:"required,oneof=select add add-slide set-link delete"`
	Page        string `json:"page"`
	SectionID   string `json:"sectionId"`
	SectionType string `json:"sectionType"`
	InsertIndex *int   `json:"insertIndex"`
	LinkTarget  string `json:"linkTarget"`
	LinkURL     string `json:"linkUrl"`
}
