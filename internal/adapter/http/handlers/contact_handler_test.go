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

func TestContactHandler_CreateContact(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContactUseCase(ctrl)
		h := NewContactHandler(uc)

		r := gin.New()
		r.POST("/v1/contacts", h.CreateContact)

		req := httptest.NewRequest(http.MethodPost, "/v1/contacts", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("nameless contact", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContactUseCase(ctrl)
		h := NewContactHandler(uc)

		r := gin.New()
		r.POST("/v1/contacts", h.CreateContact)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Contact{}, usecase.ErrInvalidContactName)

		req := httptest.NewRequest(http.MethodPost, "/v1/contacts", bytes.NewBufferString(`{"email":"jane@acme.example"}`))
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
		uc := mocks.NewMockIContactUseCase(ctrl)
		h := NewContactHandler(uc)

		r := gin.New()
		r.POST("/v1/contacts", h.CreateContact)

		uc.EXPECT().Create(gomock.Any(), usecase.CreateContactInput{FirstName: "Jane", LastName: "Doe", Email: "jane@acme.example"}).
			Return(entities.Contact{ID: "contact-1", FirstName: "Jane", LastName: "Doe", Email: "jane@acme.example"}, nil)

		body := `{"first_name":"Jane","last_name":"Doe","email":"jane@acme.example"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/contacts", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["display_name"] != "Jane Doe" {
			t.Fatalf("unexpected display name: %v", resp["display_name"])
		}
	})
}

func TestContactHandler_ListContacts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("passes query filters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContactUseCase(ctrl)
		h := NewContactHandler(uc)

		r := gin.New()
		r.GET("/v1/contacts", h.ListContacts)

		uc.EXPECT().List(gomock.Any(), interfaces.ContactFilter{Search: "jane", SortBy: "last_name", SortDir: "asc", Limit: 5}).
			Return([]entities.Contact{{ID: "contact-1", FirstName: "Jane", LastName: "Doe"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/contacts?search=jane&sort_by=last_name&sort_dir=asc&limit=5", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestContactHandler_GetContact(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContactUseCase(ctrl)
		h := NewContactHandler(uc)

		r := gin.New()
		r.GET("/v1/contacts/:id", h.GetContact)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Contact{}, usecase.ErrContactNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/contacts/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["code"] != "CONTACT_NOT_FOUND" {
			t.Fatalf("unexpected error code: %v", resp["code"])
		}
	})
}

func TestContactHandler_UpdateContact(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("partial patch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContactUseCase(ctrl)
		h := NewContactHandler(uc)

		r := gin.New()
		r.PATCH("/v1/contacts/:id", h.UpdateContact)

		uc.EXPECT().Update(gomock.Any(), "contact-1", gomock.AssignableToTypeOf(interfaces.ContactPatch{})).DoAndReturn(
			func(_ any, _ string, patch interfaces.ContactPatch) (entities.Contact, error) {
				if patch.JobTitle == nil || *patch.JobTitle != "CTO" {
					t.Fatalf("expected job title in patch")
				}
				if patch.FirstName != nil {
					t.Fatalf("expected first name untouched")
				}
				return entities.Contact{ID: "contact-1", FirstName: "Jane", JobTitle: "CTO"}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPatch, "/v1/contacts/contact-1", bytes.NewBufferString(`{"job_title":"CTO"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestContactHandler_DeleteContact(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContactUseCase(ctrl)
		h := NewContactHandler(uc)

		r := gin.New()
		r.DELETE("/v1/contacts/:id", h.DeleteContact)

		uc.EXPECT().Delete(gomock.Any(), "missing").Return(usecase.ErrContactNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/contacts/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContactUseCase(ctrl)
		h := NewContactHandler(uc)

		r := gin.New()
		r.DELETE("/v1/contacts/:id", h.DeleteContact)

		uc.EXPECT().Delete(gomock.Any(), "contact-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/contacts/contact-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
