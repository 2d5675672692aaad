package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"bizhub/internal/domain/entities"
	"bizhub/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrWebsiteNotFound      = errors.New("website not found")
	ErrInvalidWebsiteID     = errors.New("invalid website id")
	ErrInvalidWebsiteDomain = errors.New("invalid website domain")
	ErrInvalidWebsiteStatus = errors.New("invalid website status")
)

// CreateWebsiteInput carries the fields of a new website record.
type CreateWebsiteInput struct {
	Name           string
	Domain         string
	Status         entities.WebsiteStatus
	OrganisationID string
	Notes          string
}

// IWebsiteUseCase exposes website operations.

type IWebsiteUseCase interface {
	Create(ctx context.Context, in CreateWebsiteInput) (entities.Website, error)
	GetByID(ctx context.Context, id string) (entities.Website, error)
	List(ctx context.Context, f interfaces.WebsiteFilter) ([]entities.Website, error)
	Update(ctx context.Context, id string, patch interfaces.WebsitePatch) (entities.Website, error)
	Delete(ctx context.Context, id string) error
}

type WebsiteUseCase struct {
	websites      interfaces.IWebsiteRepository
	organisations interfaces.IOrganisationRepository
}

var _ IWebsiteUseCase = (*WebsiteUseCase)(nil)

func NewWebsiteUseCase(websites interfaces.IWebsiteRepository, organisations interfaces.IOrganisationRepository) *WebsiteUseCase {
	return &WebsiteUseCase{websites: websites, organisations: organisations}
}

func (u *WebsiteUseCase) Create(ctx context.Context, in CreateWebsiteInput) (entities.Website, error) {
	in.Domain = strings.TrimSpace(in.Domain)
	if in.Domain == "" {
		return entities.Website{}, ErrInvalidWebsiteDomain
	}

	status := in.Status
	if status == "" {
		status = entities.WebsiteStatusDevelopment
	}
	if !status.Valid() {
		return entities.Website{}, ErrInvalidWebsiteStatus
	}

	now := time.Now().UTC()
	w := entities.Website{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Domain:    in.Domain,
		Status:    status,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if orgID := strings.TrimSpace(in.OrganisationID); orgID != "" {
		org, err := u.organisations.GetByID(ctx, orgID)
		if err != nil {
			return entities.Website{}, err
		}
		if org.ID == "" {
			return entities.Website{}, ErrOrganisationNotFound
		}
		w.OrganisationID = org.ID
		w.OrganisationName = org.Name
	}

	return u.websites.Create(ctx, w)
}

func (u *WebsiteUseCase) GetByID(ctx context.Context, id string) (entities.Website, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Website{}, ErrInvalidWebsiteID
	}
	w, err := u.websites.GetByID(ctx, id)
	if err != nil {
		return entities.Website{}, err
	}
	if w.ID == "" {
		return entities.Website{}, ErrWebsiteNotFound
	}
	return w, nil
}

func (u *WebsiteUseCase) List(ctx context.Context, f interfaces.WebsiteFilter) ([]entities.Website, error) {
	if f.Limit < 0 {
		f.Limit = 0
	}
	return u.websites.List(ctx, f)
}

func (u *WebsiteUseCase) Update(ctx context.Context, id string, patch interfaces.WebsitePatch) (entities.Website, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Website{}, ErrInvalidWebsiteID
	}
	if patch.Domain != nil && strings.TrimSpace(*patch.Domain) == "" {
		return entities.Website{}, ErrInvalidWebsiteDomain
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return entities.Website{}, ErrInvalidWebsiteStatus
	}

	// Re-resolve the denormalized organisation name whenever the link is
	// rewritten; an empty id clears both fields.
	if patch.OrganisationID != nil {
		orgID := strings.TrimSpace(*patch.OrganisationID)
		name := ""
		if orgID != "" {
			org, err := u.organisations.GetByID(ctx, orgID)
			if err != nil {
				return entities.Website{}, err
			}
			if org.ID == "" {
				return entities.Website{}, ErrOrganisationNotFound
			}
			name = org.Name
		}
		patch.OrganisationID = &orgID
		patch.OrganisationName = &name
	}

	updated, err := u.websites.Update(ctx, id, patch)
	if err != nil {
		return entities.Website{}, err
	}
	if updated.ID == "" {
		return entities.Website{}, ErrWebsiteNotFound
	}
	return updated, nil
}

func (u *WebsiteUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidWebsiteID
	}
	found, err := u.websites.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrWebsiteNotFound
	}
	return nil
}
