package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bizhub/internal/adapter/http/handlers/mocks"
	"bizhub/internal/domain/entities"
	"bizhub/internal/usecase"
	"bizhub/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestOrganisationHandler_CreateOrganisation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrganisationUseCase(ctrl)
		h := NewOrganisationHandler(uc)

		r := gin.New()
		r.POST("/v1/organisations", h.CreateOrganisation)

		req := httptest.NewRequest(http.MethodPost, "/v1/organisations", bytes.NewBufferString(`{"industry":"Retail"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrganisationUseCase(ctrl)
		h := NewOrganisationHandler(uc)

		r := gin.New()
		r.POST("/v1/organisations", h.CreateOrganisation)

		uc.EXPECT().Create(gomock.Any(), usecase.CreateOrganisationInput{Name: "Acme Ltd", Industry: "Retail"}).
			Return(entities.Organisation{ID: "org-1", Name: "Acme Ltd", Industry: "Retail"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/organisations", bytes.NewBufferString(`{"name":"Acme Ltd","industry":"Retail"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestOrganisationHandler_ListOrganisationContacts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrganisationUseCase(ctrl)
		h := NewOrganisationHandler(uc)

		r := gin.New()
		r.GET("/v1/organisations/:id/contacts", h.ListOrganisationContacts)

		uc.EXPECT().ListContacts(gomock.Any(), "org-1").Return([]entities.OrganisationContact{
			{ID: "rel-1", ContactName: "Jane Doe", IsPrimary: true},
			{ID: "rel-2", ContactName: "John Roe"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/organisations/org-1/contacts", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(resp) != 2 || resp[0]["contact_name"] != "Jane Doe" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestOrganisationHandler_LinkContact(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing contact id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrganisationUseCase(ctrl)
		h := NewOrganisationHandler(uc)

		r := gin.New()
		r.POST("/v1/organisations/:id/contacts", h.LinkContact)

		req := httptest.NewRequest(http.MethodPost, "/v1/organisations/org-1/contacts", bytes.NewBufferString(`{"role":"Director"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("contact missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrganisationUseCase(ctrl)
		h := NewOrganisationHandler(uc)

		r := gin.New()
		r.POST("/v1/organisations/:id/contacts", h.LinkContact)

		uc.EXPECT().LinkContact(gomock.Any(), "org-1", gomock.Any()).Return(entities.OrganisationContact{}, usecase.ErrContactNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/organisations/org-1/contacts", bytes.NewBufferString(`{"contact_id":"missing"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrganisationUseCase(ctrl)
		h := NewOrganisationHandler(uc)

		r := gin.New()
		r.POST("/v1/organisations/:id/contacts", h.LinkContact)

		uc.EXPECT().LinkContact(gomock.Any(), "org-1", usecase.LinkContactInput{ContactID: "contact-1", Role: "Director", IsPrimary: true, Priority: 1}).
			Return(entities.OrganisationContact{ID: "rel-1", OrganisationID: "org-1", ContactID: "contact-1", IsPrimary: true}, nil)

		body := `{"contact_id":"contact-1","role":"Director","is_primary":true,"priority":1}`
		req := httptest.NewRequest(http.MethodPost, "/v1/organisations/org-1/contacts", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestOrganisationHandler_SetPrimaryContact(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrganisationUseCase(ctrl)
		h := NewOrganisationHandler(uc)

		r := gin.New()
		r.POST("/v1/organisation-contacts/:id/primary", h.SetPrimaryContact)

		uc.EXPECT().SetPrimary(gomock.Any(), "rel-1").Return(entities.OrganisationContact{}, usecase.ErrOrganisationContactNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/organisation-contacts/rel-1/primary", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrganisationUseCase(ctrl)
		h := NewOrganisationHandler(uc)

		r := gin.New()
		r.POST("/v1/organisation-contacts/:id/primary", h.SetPrimaryContact)

		uc.EXPECT().SetPrimary(gomock.Any(), "rel-1").Return(entities.OrganisationContact{ID: "rel-1", IsPrimary: true}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/organisation-contacts/rel-1/primary", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestOrganisationHandler_UpdateOrganisation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("partial patch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrganisationUseCase(ctrl)
		h := NewOrganisationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/organisations/:id", h.UpdateOrganisation)

		uc.EXPECT().Update(gomock.Any(), "org-1", gomock.AssignableToTypeOf(interfaces.OrganisationPatch{})).DoAndReturn(
			func(_ any, _ string, patch interfaces.OrganisationPatch) (entities.Organisation, error) {
				if patch.Industry == nil || *patch.Industry != "Hospitality" {
					t.Fatalf("expected industry in patch")
				}
				if patch.Name != nil {
					t.Fatalf("expected name untouched")
				}
				return entities.Organisation{ID: "org-1", Industry: "Hospitality"}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPatch, "/v1/organisations/org-1", bytes.NewBufferString(`{"industry":"Hospitality"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
