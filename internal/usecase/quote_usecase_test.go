package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"bizhub/internal/domain/entities"
	"bizhub/internal/usecase/interfaces"
	mock_interfaces "bizhub/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func fixedQuoteClock() func() time.Time {
	return func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
}

func TestQuoteUseCase_Create(t *testing.T) {
	t.Run("empty subject", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), CreateQuoteInput{Subject: "   "})
		if !errors.Is(err, ErrInvalidQuoteSubject) {
			t.Fatalf("expected ErrInvalidQuoteSubject, got %v", err)
		}
	})

	t.Run("invalid item", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), CreateQuoteInput{
			Subject: "Website build",
			Items:   []entities.QuoteItem{{Description: "Design", Quantity: 0, UnitPrice: 50}},
		})
		if !errors.Is(err, ErrInvalidQuoteItems) {
			t.Fatalf("expected ErrInvalidQuoteItems, got %v", err)
		}
	})

	t.Run("expiry before issue", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil)
		issue := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
		_, err := uc.Create(context.Background(), CreateQuoteInput{
			Subject:    "Website build",
			IssueDate:  issue,
			ExpiryDate: issue.AddDate(0, 0, -1),
		})
		if !errors.Is(err, ErrInvalidQuoteDates) {
			t.Fatalf("expected ErrInvalidQuoteDates, got %v", err)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), CreateQuoteInput{Subject: "Website build", Status: "archived"})
		if !errors.Is(err, ErrInvalidQuoteStatus) {
			t.Fatalf("expected ErrInvalidQuoteStatus, got %v", err)
		}
	})

	t.Run("first quote of the year", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil)
		uc.now = fixedQuoteClock()

		repo.EXPECT().LatestNumberForYear(gomock.Any(), 2025).Return("", nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.ID == "" {
					t.Fatalf("expected generated id")
				}
				if q.QuoteNumber != "Q-2025-0001" {
					t.Fatalf("expected Q-2025-0001, got %s", q.QuoteNumber)
				}
				if q.Status != entities.QuoteStatusDraft {
					t.Fatalf("expected draft, got %s", q.Status)
				}
				if q.Subtotal != 130 || q.Tax != 13 || q.Total != 143 {
					t.Fatalf("unexpected totals: %v %v %v", q.Subtotal, q.Tax, q.Total)
				}
				if len(q.Items) != 2 || q.Items[0].Amount != 100 || q.Items[1].Amount != 30 {
					t.Fatalf("unexpected items: %+v", q.Items)
				}
				if q.Items[0].ID == "" || q.Items[1].ID == "" {
					t.Fatalf("expected generated item ids")
				}
				if q.CreatedAt.IsZero() || q.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return q, nil
			},
		)

		res, err := uc.Create(context.Background(), CreateQuoteInput{
			Subject: " Website build ",
			Items: []entities.QuoteItem{
				{Description: "Design", Quantity: 2, UnitPrice: 50},
				{Description: "Hosting", Quantity: 1, UnitPrice: 30},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Subject != "Website build" {
			t.Fatalf("expected trimmed subject, got %q", res.Subject)
		}
	})

	t.Run("increments latest number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil)
		uc.now = fixedQuoteClock()

		repo.EXPECT().LatestNumberForYear(gomock.Any(), 2025).Return("Q-2025-0037", nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.QuoteNumber != "Q-2025-0038" {
					t.Fatalf("expected Q-2025-0038, got %s", q.QuoteNumber)
				}
				return q, nil
			},
		)

		if _, err := uc.Create(context.Background(), CreateQuoteInput{Subject: "Website build"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("numbering lookup failure falls back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil)
		uc.now = fixedQuoteClock()

		repo.EXPECT().LatestNumberForYear(gomock.Any(), 2025).Return("", errors.New("scan throttled"))
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if !strings.HasPrefix(q.QuoteNumber, "Q-2025-T") {
					t.Fatalf("expected fallback number, got %s", q.QuoteNumber)
				}
				return q, nil
			},
		)

		if _, err := uc.Create(context.Background(), CreateQuoteInput{Subject: "Website build"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unparseable latest number falls back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil)
		uc.now = fixedQuoteClock()

		repo.EXPECT().LatestNumberForYear(gomock.Any(), 2025).Return("Q-2025-Txyz", nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if !strings.HasPrefix(q.QuoteNumber, "Q-2025-T") {
					t.Fatalf("expected fallback number, got %s", q.QuoteNumber)
				}
				return q, nil
			},
		)

		if _, err := uc.Create(context.Background(), CreateQuoteInput{Subject: "Website build"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("resolves organisation and contact names", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		orgRepo := mock_interfaces.NewMockIOrganisationRepository(ctrl)
		contactRepo := mock_interfaces.NewMockIContactRepository(ctrl)
		uc := NewQuoteUseCase(repo, orgRepo, contactRepo)
		uc.now = fixedQuoteClock()

		repo.EXPECT().LatestNumberForYear(gomock.Any(), 2025).Return("", nil)
		orgRepo.EXPECT().GetByID(gomock.Any(), "org-1").Return(entities.Organisation{ID: "org-1", Name: "Acme Ltd"}, nil)
		contactRepo.EXPECT().GetByID(gomock.Any(), "contact-1").Return(entities.Contact{ID: "contact-1", FirstName: "Jane", LastName: "Doe"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.OrganisationName != "Acme Ltd" {
					t.Fatalf("expected organisation name, got %q", q.OrganisationName)
				}
				if q.ContactName != "Jane Doe" {
					t.Fatalf("expected contact name, got %q", q.ContactName)
				}
				return q, nil
			},
		)

		_, err := uc.Create(context.Background(), CreateQuoteInput{
			Subject:        "Website build",
			OrganisationID: "org-1",
			ContactID:      "contact-1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown organisation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		orgRepo := mock_interfaces.NewMockIOrganisationRepository(ctrl)
		uc := NewQuoteUseCase(repo, orgRepo, nil)
		uc.now = fixedQuoteClock()

		repo.EXPECT().LatestNumberForYear(gomock.Any(), 2025).Return("", nil)
		orgRepo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Organisation{}, nil)

		_, err := uc.Create(context.Background(), CreateQuoteInput{Subject: "Website build", OrganisationID: "missing"})
		if !errors.Is(err, ErrQuoteLinkNotFound) {
			t.Fatalf("expected ErrQuoteLinkNotFound, got %v", err)
		}
	})
}

func TestQuoteUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil)

		_, err := uc.GetByID(context.Background(), "q-1")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1"}, nil)

		q, err := uc.GetByID(context.Background(), " q-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.ID != "q-1" {
			t.Fatalf("unexpected quote: %+v", q)
		}
	})
}

func TestQuoteUseCase_Update(t *testing.T) {
	t.Run("blank subject", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil)
		subject := "   "
		_, err := uc.Update(context.Background(), "q-1", UpdateQuoteInput{Subject: &subject})
		if !errors.Is(err, ErrInvalidQuoteSubject) {
			t.Fatalf("expected ErrInvalidQuoteSubject, got %v", err)
		}
	})

	t.Run("expiry moved before stored issue date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil)

		issue := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", IssueDate: issue}, nil)

		expiry := issue.AddDate(0, 0, -1)
		_, err := uc.Update(context.Background(), "q-1", UpdateQuoteInput{ExpiryDate: &expiry})
		if !errors.Is(err, ErrInvalidQuoteDates) {
			t.Fatalf("expected ErrInvalidQuoteDates, got %v", err)
		}
	})

	t.Run("expiry moved after stored issue date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil)

		issue := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
		expiry := issue.AddDate(0, 0, 30)
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", IssueDate: issue}, nil)
		repo.EXPECT().Update(gomock.Any(), "q-1", gomock.Any()).Return(entities.Quote{ID: "q-1", IssueDate: issue, ExpiryDate: expiry}, nil)

		if _, err := uc.Update(context.Background(), "q-1", UpdateQuoteInput{ExpiryDate: &expiry}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("items recompute totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil)

		items := []entities.QuoteItem{
			{Description: "Design", Quantity: 2, UnitPrice: 50},
			{Description: "Hosting", Quantity: 1, UnitPrice: 30},
		}
		repo.EXPECT().Update(gomock.Any(), "q-1", gomock.AssignableToTypeOf(interfaces.QuotePatch{})).DoAndReturn(
			func(_ context.Context, _ string, patch interfaces.QuotePatch) (entities.Quote, error) {
				if patch.Items == nil || patch.Subtotal == nil || patch.Tax == nil || patch.Total == nil {
					t.Fatalf("expected items and totals in patch")
				}
				if *patch.Subtotal != 130 || *patch.Tax != 13 || *patch.Total != 143 {
					t.Fatalf("unexpected totals: %v %v %v", *patch.Subtotal, *patch.Tax, *patch.Total)
				}
				got := *patch.Items
				if len(got) != 2 || got[0].Amount != 100 || got[1].Amount != 30 {
					t.Fatalf("unexpected items: %+v", got)
				}
				return entities.Quote{ID: "q-1"}, nil
			},
		)

		if _, err := uc.Update(context.Background(), "q-1", UpdateQuoteInput{Items: &items}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil)

		subject := "Revised"
		repo.EXPECT().Update(gomock.Any(), "q-1", gomock.Any()).Return(entities.Quote{}, nil)

		_, err := uc.Update(context.Background(), "q-1", UpdateQuoteInput{Subject: &subject})
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})
}

func TestQuoteUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil)

		repo.EXPECT().Delete(gomock.Any(), "q-1").Return(false, nil)

		if err := uc.Delete(context.Background(), "q-1"); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil)

		repo.EXPECT().Delete(gomock.Any(), "q-1").Return(true, nil)

		if err := uc.Delete(context.Background(), "q-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuoteUseCase_UpdateStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil)
		_, err := uc.UpdateStatus(context.Background(), "q-1", "archived")
		if !errors.Is(err, ErrInvalidQuoteStatus) {
			t.Fatalf("expected ErrInvalidQuoteStatus, got %v", err)
		}
	})

	t.Run("send marks as sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil)

		repo.EXPECT().Update(gomock.Any(), "q-1", gomock.AssignableToTypeOf(interfaces.QuotePatch{})).DoAndReturn(
			func(_ context.Context, _ string, patch interfaces.QuotePatch) (entities.Quote, error) {
				if patch.Status == nil || *patch.Status != entities.QuoteStatusSent {
					t.Fatalf("expected sent status in patch")
				}
				return entities.Quote{ID: "q-1", Status: entities.QuoteStatusSent}, nil
			},
		)

		q, err := uc.Send(context.Background(), "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Status != entities.QuoteStatusSent {
			t.Fatalf("expected sent, got %s", q.Status)
		}
	})
}

func TestQuoteUseCase_Link(t *testing.T) {
	t.Run("unknown field", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil)
		_, err := uc.Link(context.Background(), "q-1", "supplier", "s-1", "")
		if !errors.Is(err, ErrInvalidQuoteLink) {
			t.Fatalf("expected ErrInvalidQuoteLink, got %v", err)
		}
	})

	t.Run("organisation link resolves name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		orgRepo := mock_interfaces.NewMockIOrganisationRepository(ctrl)
		uc := NewQuoteUseCase(repo, orgRepo, nil)

		orgRepo.EXPECT().GetByID(gomock.Any(), "org-1").Return(entities.Organisation{ID: "org-1", Name: "Acme Ltd"}, nil)
		repo.EXPECT().SetLink(gomock.Any(), "q-1", interfaces.QuoteLinkOrganisation, "org-1", "Acme Ltd").
			Return(entities.Quote{ID: "q-1", OrganisationID: "org-1", OrganisationName: "Acme Ltd"}, nil)

		q, err := uc.Link(context.Background(), "q-1", interfaces.QuoteLinkOrganisation, "org-1", "ignored")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.OrganisationName != "Acme Ltd" {
			t.Fatalf("unexpected quote: %+v", q)
		}
	})

	t.Run("organisation target missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orgRepo := mock_interfaces.NewMockIOrganisationRepository(ctrl)
		uc := NewQuoteUseCase(nil, orgRepo, nil)

		orgRepo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Organisation{}, nil)

		_, err := uc.Link(context.Background(), "q-1", interfaces.QuoteLinkOrganisation, "missing", "")
		if !errors.Is(err, ErrQuoteLinkNotFound) {
			t.Fatalf("expected ErrQuoteLinkNotFound, got %v", err)
		}
	})

	t.Run("empty id unlinks without lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil)

		repo.EXPECT().SetLink(gomock.Any(), "q-1", interfaces.QuoteLinkOrganisation, "", "").
			Return(entities.Quote{ID: "q-1"}, nil)

		if _, err := uc.Link(context.Background(), "q-1", interfaces.QuoteLinkOrganisation, "", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("lead link keeps caller name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil)

		repo.EXPECT().SetLink(gomock.Any(), "q-1", interfaces.QuoteLinkLead, "lead-1", "Warm lead").
			Return(entities.Quote{ID: "q-1", LeadID: "lead-1", LeadName: "Warm lead"}, nil)

		q, err := uc.Link(context.Background(), "q-1", interfaces.QuoteLinkLead, "lead-1", " Warm lead ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.LeadName != "Warm lead" {
			t.Fatalf("unexpected quote: %+v", q)
		}
	})

	t.Run("quote missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil)

		repo.EXPECT().SetLink(gomock.Any(), "q-1", interfaces.QuoteLinkLead, "lead-1", "").
			Return(entities.Quote{}, nil)

		_, err := uc.Link(context.Background(), "q-1", interfaces.QuoteLinkLead, "lead-1", "")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})
}
