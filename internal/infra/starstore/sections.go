package starstore

import (
	"context"
	"net/http"

	"staradmin/internal/domain/entity"
	"staradmin/internal/domain/repository"

	"github.com/pkg/errors"
)

type sectionRepository struct {
	client *Client
}

// NewSectionRepository implements repository.SectionRepository over the
// backend's /site-sections resource.
func NewSectionRepository(client *Client) repository.SectionRepository {
	return &sectionRepository{client: client}
}

func (r *sectionRepository) ListSections(ctx context.Context) ([]entity.SiteSection, error) {
	raw, err := r.client.do(ctx, http.MethodGet, "/site-sections", nil)
	if err != nil {
		return nil, err
	}

	dtos, err := decodeList[sectionDTO](raw, "sections", "data")
	if err != nil {
		return nil, errors.Wrap(err, "decode site sections")
	}

	sections := make([]entity.SiteSection, 0, len(dtos))
	for _, dto := range dtos {
		sections = append(sections, dto.toEntity())
	}

	return sections, nil
}

func (r *sectionRepository) CreateSection(ctx context.Context, section entity.SiteSection) (entity.SiteSection, error) {
	raw, err := r.client.do(ctx, http.MethodPost, "/site-sections", sectionToDTO(section))
	if err != nil {
		return entity.SiteSection{}, err
	}

	dto, err := decodeRecord[sectionDTO](raw, "section", "data")
	if err != nil {
		return entity.SiteSection{}, errors.Wrap(err, "decode created section")
	}
	created := dto.toEntity()
	if created.ID == "" {
		created = section
	}

	return created, nil
}

func (r *sectionRepository) UpdateSection(ctx context.Context, section entity.SiteSection) (entity.SiteSection, error) {
	raw, err := r.client.do(ctx, http.MethodPut, pathID("/site-sections", section.ID), sectionToDTO(section))
	if err != nil {
		return entity.SiteSection{}, err
	}

	dto, err := decodeRecord[sectionDTO](raw, "section", "data")
	if err != nil {
		return entity.SiteSection{}, errors.Wrap(err, "decode updated section")
	}
	updated := dto.toEntity()
	if updated.ID == "" {
		updated = section
	}

	return updated, nil
}

func (r *sectionRepository) DeleteSection(ctx context.Context, id string) error {
	_, err := r.client.do(ctx, http.MethodDelete, pathID("/site-sections", id), nil)

	return err
}

// ReorderSections pushes the full layout in one call; the backend
// replaces every section's page and order index from the list.
func (r *sectionRepository) ReorderSections(ctx context.Context, sections []entity.SiteSection) error {
	dtos := make([]sectionDTO, 0, len(sections))
	for _, section := range sections {
		dtos = append(dtos, sectionToDTO(section))
	}

	body := map[string]any{"sections": dtos}
	_, err := r.client.do(ctx, http.MethodPut, "/site-sections/reorder", body)

	return err
}
