package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"bizhub/internal/domain/entities"
	"bizhub/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOrganisationNotFound        = errors.New("organisation not found")
	ErrInvalidOrganisationID       = errors.New("invalid organisation id")
	ErrInvalidOrganisationName     = errors.New("invalid organisation name")
	ErrOrganisationContactNotFound = errors.New("organisation contact not found")
	ErrInvalidRelationshipID       = errors.New("invalid relationship id")
)

// CreateOrganisationInput carries the fields of a new organisation.
type CreateOrganisationInput struct {
	Name     string
	Industry string
	Website  string
	Email    string
	Phone    string
	Address  string
	City     string
	Country  string
	Notes    string
}

// LinkContactInput describes a new organisation-contact relationship.
type LinkContactInput struct {
	ContactID string
	Role      string
	IsPrimary bool
	Priority  int
}

// IOrganisationUseCase exposes organisation operations and the
// organisation-contact relationship.
//
// LinkContact and SetPrimary maintain the at-most-one-primary invariant by
// demoting every currently-primary relationship of the organisation before
// the write. The demotion is not atomic with the write it precedes.

type IOrganisationUseCase interface {
	Create(ctx context.Context, in CreateOrganisationInput) (entities.Organisation, error)
	GetByID(ctx context.Context, id string) (entities.Organisation, error)
	List(ctx context.Context, f interfaces.OrganisationFilter) ([]entities.Organisation, error)
	Update(ctx context.Context, id string, patch interfaces.OrganisationPatch) (entities.Organisation, error)
	Delete(ctx context.Context, id string) error
	LinkContact(ctx context.Context, organisationID string, in LinkContactInput) (entities.OrganisationContact, error)
	ListContacts(ctx context.Context, organisationID string) ([]entities.OrganisationContact, error)
	UpdateLink(ctx context.Context, relationshipID string, patch interfaces.OrganisationContactPatch) (entities.OrganisationContact, error)
	UnlinkContact(ctx context.Context, relationshipID string) error
	SetPrimary(ctx context.Context, relationshipID string) (entities.OrganisationContact, error)
}

type OrganisationUseCase struct {
	organisations interfaces.IOrganisationRepository
	relationships interfaces.IOrganisationContactRepository
	contacts      interfaces.IContactRepository
}

var _ IOrganisationUseCase = (*OrganisationUseCase)(nil)

func NewOrganisationUseCase(organisations interfaces.IOrganisationRepository, relationships interfaces.IOrganisationContactRepository, contacts interfaces.IContactRepository) *OrganisationUseCase {
	return &OrganisationUseCase{organisations: organisations, relationships: relationships, contacts: contacts}
}

func (u *OrganisationUseCase) Create(ctx context.Context, in CreateOrganisationInput) (entities.Organisation, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return entities.Organisation{}, ErrInvalidOrganisationName
	}

	now := time.Now().UTC()
	o := entities.Organisation{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Industry:  strings.TrimSpace(in.Industry),
		Website:   strings.TrimSpace(in.Website),
		Email:     strings.TrimSpace(in.Email),
		Phone:     strings.TrimSpace(in.Phone),
		Address:   strings.TrimSpace(in.Address),
		City:      strings.TrimSpace(in.City),
		Country:   strings.TrimSpace(in.Country),
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.organisations.Create(ctx, o)
}

func (u *OrganisationUseCase) GetByID(ctx context.Context, id string) (entities.Organisation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Organisation{}, ErrInvalidOrganisationID
	}
	o, err := u.organisations.GetByID(ctx, id)
	if err != nil {
		return entities.Organisation{}, err
	}
	if o.ID == "" {
		return entities.Organisation{}, ErrOrganisationNotFound
	}
	return o, nil
}

func (u *OrganisationUseCase) List(ctx context.Context, f interfaces.OrganisationFilter) ([]entities.Organisation, error) {
	if f.Limit < 0 {
		f.Limit = 0
	}
	return u.organisations.List(ctx, f)
}

func (u *OrganisationUseCase) Update(ctx context.Context, id string, patch interfaces.OrganisationPatch) (entities.Organisation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Organisation{}, ErrInvalidOrganisationID
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return entities.Organisation{}, ErrInvalidOrganisationName
	}
	updated, err := u.organisations.Update(ctx, id, patch)
	if err != nil {
		return entities.Organisation{}, err
	}
	if updated.ID == "" {
		return entities.Organisation{}, ErrOrganisationNotFound
	}
	return updated, nil
}

func (u *OrganisationUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidOrganisationID
	}
	found, err := u.organisations.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrOrganisationNotFound
	}
	return nil
}

func (u *OrganisationUseCase) LinkContact(ctx context.Context, organisationID string, in LinkContactInput) (entities.OrganisationContact, error) {
	organisationID = strings.TrimSpace(organisationID)
	if organisationID == "" {
		return entities.OrganisationContact{}, ErrInvalidOrganisationID
	}
	in.ContactID = strings.TrimSpace(in.ContactID)
	if in.ContactID == "" {
		return entities.OrganisationContact{}, ErrInvalidContactID
	}

	org, err := u.organisations.GetByID(ctx, organisationID)
	if err != nil {
		return entities.OrganisationContact{}, err
	}
	if org.ID == "" {
		return entities.OrganisationContact{}, ErrOrganisationNotFound
	}
	contact, err := u.contacts.GetByID(ctx, in.ContactID)
	if err != nil {
		return entities.OrganisationContact{}, err
	}
	if contact.ID == "" {
		return entities.OrganisationContact{}, ErrContactNotFound
	}

	if in.IsPrimary {
		demoted, err := u.relationships.DemotePrimaries(ctx, organisationID, "")
		if err != nil {
			return entities.OrganisationContact{}, err
		}
		if demoted > 0 {
			log.Printf("[organisation][usecase] demoted %d primary contact(s) organisation_id=%s", demoted, organisationID)
		}
	}

	now := time.Now().UTC()
	rel := entities.OrganisationContact{
		ID:             uuid.NewString(),
		OrganisationID: organisationID,
		ContactID:      contact.ID,
		ContactName:    contact.DisplayName(),
		Role:           strings.TrimSpace(in.Role),
		IsPrimary:      in.IsPrimary,
		Priority:       in.Priority,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return u.relationships.Create(ctx, rel)
}

func (u *OrganisationUseCase) ListContacts(ctx context.Context, organisationID string) ([]entities.OrganisationContact, error) {
	organisationID = strings.TrimSpace(organisationID)
	if organisationID == "" {
		return nil, ErrInvalidOrganisationID
	}
	rels, err := u.relationships.ListByOrganisation(ctx, organisationID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(rels, func(i, j int) bool {
		if rels[i].IsPrimary != rels[j].IsPrimary {
			return rels[i].IsPrimary
		}
		return rels[i].Priority < rels[j].Priority
	})
	return rels, nil
}

func (u *OrganisationUseCase) UpdateLink(ctx context.Context, relationshipID string, patch interfaces.OrganisationContactPatch) (entities.OrganisationContact, error) {
	relationshipID = strings.TrimSpace(relationshipID)
	if relationshipID == "" {
		return entities.OrganisationContact{}, ErrInvalidRelationshipID
	}

	if patch.IsPrimary != nil && *patch.IsPrimary {
		rel, err := u.relationships.GetByID(ctx, relationshipID)
		if err != nil {
			return entities.OrganisationContact{}, err
		}
		if rel.ID == "" {
			return entities.OrganisationContact{}, ErrOrganisationContactNotFound
		}
		if _, err := u.relationships.DemotePrimaries(ctx, rel.OrganisationID, rel.ID); err != nil {
			return entities.OrganisationContact{}, err
		}
	}

	updated, err := u.relationships.Update(ctx, relationshipID, patch)
	if err != nil {
		return entities.OrganisationContact{}, err
	}
	if updated.ID == "" {
		return entities.OrganisationContact{}, ErrOrganisationContactNotFound
	}
	return updated, nil
}

func (u *OrganisationUseCase) UnlinkContact(ctx context.Context, relationshipID string) error {
	relationshipID = strings.TrimSpace(relationshipID)
	if relationshipID == "" {
		return ErrInvalidRelationshipID
	}
	found, err := u.relationships.Delete(ctx, relationshipID)
	if err != nil {
		return err
	}
	if !found {
		return ErrOrganisationContactNotFound
	}
	return nil
}

func (u *OrganisationUseCase) SetPrimary(ctx context.Context, relationshipID string) (entities.OrganisationContact, error) {
	isPrimary := true
	return u.UpdateLink(ctx, relationshipID, interfaces.OrganisationContactPatch{IsPrimary: &isPrimary})
}
