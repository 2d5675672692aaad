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

func TestContactUseCase_Create(t *testing.T) {
	t.Run("no name at all", func(t *testing.T) {
		uc := NewContactUseCase(nil)
		_, err := uc.Create(context.Background(), CreateContactInput{FirstName: "  ", LastName: ""})
		if !errors.Is(err, ErrInvalidContactName) {
			t.Fatalf("expected ErrInvalidContactName, got %v", err)
		}
	})

	t.Run("last name only is enough", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContactRepository(ctrl)
		uc := NewContactUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Contact{})).DoAndReturn(
			func(_ context.Context, c entities.Contact) (entities.Contact, error) {
				if c.ID == "" || c.FirstName != "" || c.LastName != "Doe" {
					t.Fatalf("unexpected contact: %+v", c)
				}
				if c.CreatedAt.IsZero() || c.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return c, nil
			},
		)

		c, err := uc.Create(context.Background(), CreateContactInput{LastName: " Doe "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.DisplayName() != "Doe" {
			t.Fatalf("unexpected display name: %q", c.DisplayName())
		}
	})
}

func TestContactUseCase_Update(t *testing.T) {
	t.Run("clearing both names", func(t *testing.T) {
		uc := NewContactUseCase(nil)
		blank := " "
		_, err := uc.Update(context.Background(), "contact-1", interfaces.ContactPatch{FirstName: &blank, LastName: &blank})
		if !errors.Is(err, ErrInvalidContactName) {
			t.Fatalf("expected ErrInvalidContactName, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContactRepository(ctrl)
		uc := NewContactUseCase(repo)

		repo.EXPECT().Update(gomock.Any(), "contact-1", gomock.Any()).Return(entities.Contact{}, nil)

		_, err := uc.Update(context.Background(), "contact-1", interfaces.ContactPatch{})
		if !errors.Is(err, ErrContactNotFound) {
			t.Fatalf("expected ErrContactNotFound, got %v", err)
		}
	})
}

func TestContactUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContactRepository(ctrl)
		uc := NewContactUseCase(repo)

		repo.EXPECT().Delete(gomock.Any(), "contact-1").Return(false, nil)

		if err := uc.Delete(context.Background(), "contact-1"); !errors.Is(err, ErrContactNotFound) {
			t.Fatalf("expected ErrContactNotFound, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContactRepository(ctrl)
		uc := NewContactUseCase(repo)

		repo.EXPECT().Delete(gomock.Any(), "contact-1").Return(false, errors.New("db"))

		if err := uc.Delete(context.Background(), "contact-1"); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
