package usecase

import (
	"context"
	"errors"
	"testing"

	"bizhub/internal/domain/entities"
	"bizhub/internal/usecase/interfaces"
	mock_interfaces "bizhub/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestOrganisationUseCase_Create(t *testing.T) {
	t.Run("empty name", func(t *testing.T) {
		uc := NewOrganisationUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), CreateOrganisationInput{Name: "   "})
		if !errors.Is(err, ErrInvalidOrganisationName) {
			t.Fatalf("expected ErrInvalidOrganisationName, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrganisationRepository(ctrl)
		uc := NewOrganisationUseCase(repo, nil, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Organisation{})).DoAndReturn(
			func(_ context.Context, o entities.Organisation) (entities.Organisation, error) {
				if o.ID == "" || o.Name != "Acme Ltd" || o.Industry != "Manufacturing" {
					t.Fatalf("unexpected organisation: %+v", o)
				}
				if o.CreatedAt.IsZero() || o.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return o, nil
			},
		)

		res, err := uc.Create(context.Background(), CreateOrganisationInput{Name: " Acme Ltd ", Industry: " Manufacturing "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Name != "Acme Ltd" {
			t.Fatalf("expected trimmed name, got %q", res.Name)
		}
	})
}

func TestOrganisationUseCase_Update(t *testing.T) {
	t.Run("blank name", func(t *testing.T) {
		uc := NewOrganisationUseCase(nil, nil, nil)
		name := " "
		_, err := uc.Update(context.Background(), "org-1", interfaces.OrganisationPatch{Name: &name})
		if !errors.Is(err, ErrInvalidOrganisationName) {
			t.Fatalf("expected ErrInvalidOrganisationName, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrganisationRepository(ctrl)
		uc := NewOrganisationUseCase(repo, nil, nil)

		repo.EXPECT().Update(gomock.Any(), "org-1", gomock.Any()).Return(entities.Organisation{}, nil)

		_, err := uc.Update(context.Background(), "org-1", interfaces.OrganisationPatch{})
		if !errors.Is(err, ErrOrganisationNotFound) {
			t.Fatalf("expected ErrOrganisationNotFound, got %v", err)
		}
	})
}

func TestOrganisationUseCase_LinkContact(t *testing.T) {
	t.Run("missing contact id", func(t *testing.T) {
		uc := NewOrganisationUseCase(nil, nil, nil)
		_, err := uc.LinkContact(context.Background(), "org-1", LinkContactInput{ContactID: "  "})
		if !errors.Is(err, ErrInvalidContactID) {
			t.Fatalf("expected ErrInvalidContactID, got %v", err)
		}
	})

	t.Run("organisation missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orgRepo := mock_interfaces.NewMockIOrganisationRepository(ctrl)
		uc := NewOrganisationUseCase(orgRepo, nil, nil)

		orgRepo.EXPECT().GetByID(gomock.Any(), "org-1").Return(entities.Organisation{}, nil)

		_, err := uc.LinkContact(context.Background(), "org-1", LinkContactInput{ContactID: "contact-1"})
		if !errors.Is(err, ErrOrganisationNotFound) {
			t.Fatalf("expected ErrOrganisationNotFound, got %v", err)
		}
	})

	t.Run("contact missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orgRepo := mock_interfaces.NewMockIOrganisationRepository(ctrl)
		contactRepo := mock_interfaces.NewMockIContactRepository(ctrl)
		uc := NewOrganisationUseCase(orgRepo, nil, contactRepo)

		orgRepo.EXPECT().GetByID(gomock.Any(), "org-1").Return(entities.Organisation{ID: "org-1"}, nil)
		contactRepo.EXPECT().GetByID(gomock.Any(), "contact-1").Return(entities.Contact{}, nil)

		_, err := uc.LinkContact(context.Background(), "org-1", LinkContactInput{ContactID: "contact-1"})
		if !errors.Is(err, ErrContactNotFound) {
			t.Fatalf("expected ErrContactNotFound, got %v", err)
		}
	})

	t.Run("primary demotes existing primaries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orgRepo := mock_interfaces.NewMockIOrganisationRepository(ctrl)
		relRepo := mock_interfaces.NewMockIOrganisationContactRepository(ctrl)
		contactRepo := mock_interfaces.NewMockIContactRepository(ctrl)
		uc := NewOrganisationUseCase(orgRepo, relRepo, contactRepo)

		orgRepo.EXPECT().GetByID(gomock.Any(), "org-1").Return(entities.Organisation{ID: "org-1", Name: "Acme Ltd"}, nil)
		contactRepo.EXPECT().GetByID(gomock.Any(), "contact-1").Return(entities.Contact{ID: "contact-1", FirstName: "Jane", LastName: "Doe"}, nil)
		relRepo.EXPECT().DemotePrimaries(gomock.Any(), "org-1", "").Return(1, nil)
		relRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.OrganisationContact{})).DoAndReturn(
			func(_ context.Context, rel entities.OrganisationContact) (entities.OrganisationContact, error) {
				if rel.ID == "" || rel.OrganisationID != "org-1" || rel.ContactID != "contact-1" {
					t.Fatalf("unexpected relationship: %+v", rel)
				}
				if rel.ContactName != "Jane Doe" {
					t.Fatalf("expected denormalized contact name, got %q", rel.ContactName)
				}
				if !rel.IsPrimary {
					t.Fatalf("expected primary relationship")
				}
				return rel, nil
			},
		)

		_, err := uc.LinkContact(context.Background(), "org-1", LinkContactInput{ContactID: "contact-1", Role: "Director", IsPrimary: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("non primary skips demotion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orgRepo := mock_interfaces.NewMockIOrganisationRepository(ctrl)
		relRepo := mock_interfaces.NewMockIOrganisationContactRepository(ctrl)
		contactRepo := mock_interfaces.NewMockIContactRepository(ctrl)
		uc := NewOrganisationUseCase(orgRepo, relRepo, contactRepo)

		orgRepo.EXPECT().GetByID(gomock.Any(), "org-1").Return(entities.Organisation{ID: "org-1"}, nil)
		contactRepo.EXPECT().GetByID(gomock.Any(), "contact-1").Return(entities.Contact{ID: "contact-1", FirstName: "Jane"}, nil)
		relRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, rel entities.OrganisationContact) (entities.OrganisationContact, error) {
				return rel, nil
			},
		)

		if _, err := uc.LinkContact(context.Background(), "org-1", LinkContactInput{ContactID: "contact-1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestOrganisationUseCase_ListContacts(t *testing.T) {
	t.Run("primary first then priority", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		relRepo := mock_interfaces.NewMockIOrganisationContactRepository(ctrl)
		uc := NewOrganisationUseCase(nil, relRepo, nil)

		relRepo.EXPECT().ListByOrganisation(gomock.Any(), "org-1").Return([]entities.OrganisationContact{
			{ID: "rel-3", Priority: 2},
			{ID: "rel-1", Priority: 5, IsPrimary: true},
			{ID: "rel-2", Priority: 1},
		}, nil)

		rels, err := uc.ListContacts(context.Background(), "org-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rels) != 3 || rels[0].ID != "rel-1" || rels[1].ID != "rel-2" || rels[2].ID != "rel-3" {
			t.Fatalf("unexpected order: %+v", rels)
		}
	})
}

func TestOrganisationUseCase_UpdateLink(t *testing.T) {
	t.Run("promotion demotes others", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		relRepo := mock_interfaces.NewMockIOrganisationContactRepository(ctrl)
		uc := NewOrganisationUseCase(nil, relRepo, nil)

		relRepo.EXPECT().GetByID(gomock.Any(), "rel-1").Return(entities.OrganisationContact{ID: "rel-1", OrganisationID: "org-1"}, nil)
		relRepo.EXPECT().DemotePrimaries(gomock.Any(), "org-1", "rel-1").Return(1, nil)
		relRepo.EXPECT().Update(gomock.Any(), "rel-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, patch interfaces.OrganisationContactPatch) (entities.OrganisationContact, error) {
				if patch.IsPrimary == nil || !*patch.IsPrimary {
					t.Fatalf("expected primary patch")
				}
				return entities.OrganisationContact{ID: "rel-1", OrganisationID: "org-1", IsPrimary: true}, nil
			},
		)

		rel, err := uc.SetPrimary(context.Background(), "rel-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !rel.IsPrimary {
			t.Fatalf("expected primary relationship, got %+v", rel)
		}
	})

	t.Run("promotion of missing relationship", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		relRepo := mock_interfaces.NewMockIOrganisationContactRepository(ctrl)
		uc := NewOrganisationUseCase(nil, relRepo, nil)

		relRepo.EXPECT().GetByID(gomock.Any(), "rel-1").Return(entities.OrganisationContact{}, nil)

		_, err := uc.SetPrimary(context.Background(), "rel-1")
		if !errors.Is(err, ErrOrganisationContactNotFound) {
			t.Fatalf("expected ErrOrganisationContactNotFound, got %v", err)
		}
	})

	t.Run("demotion skips lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		relRepo := mock_interfaces.NewMockIOrganisationContactRepository(ctrl)
		uc := NewOrganisationUseCase(nil, relRepo, nil)

		isPrimary := false
		relRepo.EXPECT().Update(gomock.Any(), "rel-1", gomock.Any()).Return(entities.OrganisationContact{ID: "rel-1"}, nil)

		if _, err := uc.UpdateLink(context.Background(), "rel-1", interfaces.OrganisationContactPatch{IsPrimary: &isPrimary}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestOrganisationUseCase_UnlinkContact(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		relRepo := mock_interfaces.NewMockIOrganisationContactRepository(ctrl)
		uc := NewOrganisationUseCase(nil, relRepo, nil)

		relRepo.EXPECT().Delete(gomock.Any(), "rel-1").Return(false, nil)

		if err := uc.UnlinkContact(context.Background(), "rel-1"); !errors.Is(err, ErrOrganisationContactNotFound) {
			t.Fatalf("expected ErrOrganisationContactNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		relRepo := mock_interfaces.NewMockIOrganisationContactRepository(ctrl)
		uc := NewOrganisationUseCase(nil, relRepo, nil)

		relRepo.EXPECT().Delete(gomock.Any(), "rel-1").Return(true, nil)

		if err := uc.UnlinkContact(context.Background(), "rel-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
