package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"agencia_xpto/internal/adapter/http/handlers/mocks"
	"agencia_xpto/internal/domain/entities"
	"agencia_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestProposalHandler_CreateProposal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.POST("/v1/proposals", h.CreateProposal)

		req := httptest.NewRequest(http.MethodPost, "/v1/proposals", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing client name fails binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.POST("/v1/proposals", h.CreateProposal)

		req := httptest.NewRequest(http.MethodPost, "/v1/proposals", bytes.NewBufferString(`{"client":{"company":"Acme"}}`))
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
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(
			entities.Proposal{ID: "prop-1", Client: entities.Client{Name: "Maria"}, Status: entities.ProposalStatusRascunho}, nil)

		r := gin.New()
		r.POST("/v1/proposals", h.CreateProposal)

		req := httptest.NewRequest(http.MethodPost, "/v1/proposals", bytes.NewBufferString(`{"client":{"name":"Maria"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if body["id"] != "prop-1" || body["status"] != "rascunho" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Proposal{}, errors.New("db"))

		r := gin.New()
		r.POST("/v1/proposals", h.CreateProposal)

		req := httptest.NewRequest(http.MethodPost, "/v1/proposals", bytes.NewBufferString(`{"client":{"name":"Maria"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestProposalHandler_GetProposal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), "prop-1").Return(entities.Proposal{}, usecase.ErrProposalNotFound)

		r := gin.New()
		r.GET("/v1/proposals/:id", h.GetProposal)

		req := httptest.NewRequest(http.MethodGet, "/v1/proposals/prop-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), "prop-1").Return(entities.Proposal{ID: "prop-1"}, nil)

		r := gin.New()
		r.GET("/v1/proposals/:id", h.GetProposal)

		req := httptest.NewRequest(http.MethodGet, "/v1/proposals/prop-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestProposalHandler_UpdateSteps(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("services invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.PUT("/v1/proposals/:id/services", h.UpdateServices)

		req := httptest.NewRequest(http.MethodPut, "/v1/proposals/prop-1/services", bytes.NewBufferString("not json"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("services success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		uc.EXPECT().UpdateServices(gomock.Any(), "prop-1", gomock.Len(1)).Return(entities.Proposal{ID: "prop-1"}, nil)

		r := gin.New()
		r.PUT("/v1/proposals/:id/services", h.UpdateServices)

		body := `{"services":[{"type":"social","title":"Social Media","isMonthly":true,"term":6,"qty":1,"unitValue":1500}]}`
		req := httptest.NewRequest(http.MethodPut, "/v1/proposals/prop-1/services", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("conditions success with loose types", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		uc.EXPECT().UpdateConditions(gomock.Any(), "prop-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, conditions map[string]entities.PaymentCondition) (entities.Proposal, error) {
				if conditions["social"].Entry != "R$ 500,00" {
					t.Fatalf("expected raw entry string, got %v", conditions["social"].Entry)
				}
				return entities.Proposal{ID: "prop-1", Conditions: conditions}, nil
			},
		)

		r := gin.New()
		r.PUT("/v1/proposals/:id/conditions", h.UpdateConditions)

		body := `{"conditions":{"social":{"method":"pix","entry":"R$ 500,00","installments":3}}}`
		req := httptest.NewRequest(http.MethodPut, "/v1/proposals/prop-1/conditions", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})
}

func TestProposalHandler_PreviewProposal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		uc.EXPECT().Preview(gomock.Any(), "prop-1").Return(usecase.BuildPreview(entities.Proposal{
			ID: "prop-1",
			Services: []entities.ServiceLineItem{
				{ID: "s1", Type: "social", IsMonthly: true, Term: 6, Qty: 1, UnitValue: 1000},
			},
			Conditions: map[string]entities.PaymentCondition{
				"social": {Entry: "R$ 1.000,00", Installments: 5},
			},
		}), nil)

		r := gin.New()
		r.GET("/v1/proposals/:id/preview", h.PreviewProposal)

		req := httptest.NewRequest(http.MethodGet, "/v1/proposals/prop-1/preview", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body struct {
			Items        []map[string]any   `json:"items"`
			TypeOrder    []string           `json:"typeOrder"`
			Totals       map[string]float64 `json:"totals"`
			Installments []map[string]any   `json:"installments"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if len(body.Items) != 1 || body.Items[0]["subtotal"] != float64(6000) {
			t.Fatalf("unexpected items: %v", body.Items)
		}
		if body.Totals["overall"] != 6000 {
			t.Fatalf("unexpected totals: %v", body.Totals)
		}
		if len(body.Installments) != 1 || body.Installments[0]["amount"] != float64(1000) {
			t.Fatalf("unexpected installments: %v", body.Installments)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		uc.EXPECT().Preview(gomock.Any(), "prop-1").Return(usecase.ProposalPreview{}, usecase.ErrProposalNotFound)

		r := gin.New()
		r.GET("/v1/proposals/:id/preview", h.PreviewProposal)

		req := httptest.NewRequest(http.MethodGet, "/v1/proposals/prop-1/preview", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestProposalHandler_Transitions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("send success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		uc.EXPECT().SendByID(gomock.Any(), "prop-1").Return(entities.Proposal{ID: "prop-1", Status: entities.ProposalStatusEnviada}, nil)

		r := gin.New()
		r.PATCH("/v1/proposals/:id/send", h.SendProposal)

		req := httptest.NewRequest(http.MethodPatch, "/v1/proposals/prop-1/send", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("accept invalid transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		uc.EXPECT().AcceptByID(gomock.Any(), "prop-1").Return(entities.Proposal{}, usecase.ErrInvalidTransition)

		r := gin.New()
		r.PATCH("/v1/proposals/:id/accept", h.AcceptProposal)

		req := httptest.NewRequest(http.MethodPatch, "/v1/proposals/prop-1/accept", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("decline success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		uc.EXPECT().DeclineByID(gomock.Any(), "prop-1").Return(entities.Proposal{ID: "prop-1", Status: entities.ProposalStatusRecusada}, nil)

		r := gin.New()
		r.PATCH("/v1/proposals/:id/decline", h.DeclineProposal)

		req := httptest.NewRequest(http.MethodPatch, "/v1/proposals/prop-1/decline", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
