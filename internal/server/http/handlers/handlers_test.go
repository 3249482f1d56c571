package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/dmoura/pastelaria/internal/domain/errors"
	"github.com/dmoura/pastelaria/internal/domain/model"
	"github.com/dmoura/pastelaria/internal/server/http/dto"
	testhelpers "github.com/dmoura/pastelaria/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, method, path string, handler gin.HandlerFunc, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, path, handler)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeDetail(t *testing.T, resp *httptest.ResponseRecorder) string {
	t.Helper()
	var payload dto.ErrorResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("expected error payload, got %q: %v", resp.Body.String(), err)
	}
	return payload.Detail
}

func TestRoot(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/", Root, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var payload dto.MessageResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Message != WelcomeMessage {
		t.Fatalf("unexpected message %q", payload.Message)
	}
}

func TestFlavorHandlerList(t *testing.T) {
	handler := NewFlavorHandler(testhelpers.CatalogFacadeStub{FlavorsFn: func(context.Context) ([]model.Flavor, error) {
		return []model.Flavor{
			{ID: "f-1", Name: "Misto", Price: 8.0, Description: "Queijo e presunto"},
			{ID: "f-2", Name: "Carne", Price: 9.0, Description: "Carne moída temperada"},
		}, nil
	}})

	resp := performRequest(t, http.MethodGet, "/flavors", handler.List, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var flavors []dto.FlavorResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &flavors); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(flavors) != 2 || flavors[0].Name != "Misto" {
		t.Fatalf("unexpected flavors: %+v", flavors)
	}
}

func TestFlavorHandlerListFailure(t *testing.T) {
	handler := NewFlavorHandler(testhelpers.CatalogFacadeStub{FlavorsFn: func(context.Context) ([]model.Flavor, error) {
		return nil, errors.New("boom")
	}})

	resp := performRequest(t, http.MethodGet, "/flavors", handler.List, nil)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
}

func TestOrderHandlerCreate(t *testing.T) {
	name := testhelpers.RandomASCIIString(5, 12)
	phone := testhelpers.RandomPhone()
	body, _ := json.Marshal(dto.OrderCreateRequest{
		CustomerName:  name,
		CustomerPhone: phone,
		Items: []dto.OrderItemPayload{
			{FlavorName: "Misto", Quantity: 2, Price: 8.0},
			{FlavorName: "Calabresa", Quantity: 1, Price: 9.0},
		},
		TotalAmount: 25.0,
	})

	handler := NewOrderHandler(testhelpers.OrderFacadeStub{})
	resp := performRequest(t, http.MethodPost, "/orders", handler.Create, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var order dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &order); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if order.ID == "" {
		t.Fatal("expected assigned id")
	}
	if order.Status != string(model.OrderStatusPendente) {
		t.Fatalf("expected status Pendente, got %q", order.Status)
	}
	if order.TotalAmount != 25.0 {
		t.Fatalf("expected total 25.0, got %v", order.TotalAmount)
	}
	if len(order.Items) != 2 || order.Items[0].FlavorName != "Misto" {
		t.Fatalf("unexpected items: %+v", order.Items)
	}
	if order.CustomerName != name || order.CustomerPhone != phone {
		t.Fatalf("expected customer fields echoed back, got %+v", order)
	}
}

func TestOrderHandlerCreateValidation(t *testing.T) {
	tests := []struct {
		name string
		body []byte
	}{
		{"malformed json", []byte(`{`)},
		{"missing customer", mustJSON(t, dto.OrderCreateRequest{
			CustomerPhone: "11 99999-0000",
			Items:         []dto.OrderItemPayload{{FlavorName: "Misto", Quantity: 1, Price: 8.0}},
		})},
		{"no items", mustJSON(t, dto.OrderCreateRequest{
			CustomerName:  "Ana",
			CustomerPhone: "11 99999-0000",
		})},
		{"zero quantity", mustJSON(t, dto.OrderCreateRequest{
			CustomerName:  "Ana",
			CustomerPhone: "11 99999-0000",
			Items:         []dto.OrderItemPayload{{FlavorName: "Misto", Quantity: 0, Price: 8.0}},
		})},
	}

	handler := NewOrderHandler(testhelpers.OrderFacadeStub{CreateFn: func(context.Context, model.OrderDraft) (*model.Order, error) {
		t.Fatal("facade should not be reached on validation failure")
		return nil, nil
	}})

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/orders", handler.Create, tc.body)
			if resp.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", resp.Code)
			}
			if decodeDetail(t, resp) == "" {
				t.Fatal("expected error detail")
			}
		})
	}
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	body, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return body
}

func TestOrderHandlerCreateFacadeFailures(t *testing.T) {
	body := mustJSON(t, dto.OrderCreateRequest{
		CustomerName:  "Ana",
		CustomerPhone: "11 99999-0000",
		Items:         []dto.OrderItemPayload{{FlavorName: "Misto", Quantity: 1, Price: 8.0}},
		TotalAmount:   8.0,
	})

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"empty order", domainErrors.ErrEmptyOrder, http.StatusBadRequest},
		{"invalid item", domainErrors.ErrInvalidItem, http.StatusBadRequest},
		{"storage failure", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewOrderHandler(testhelpers.OrderFacadeStub{CreateFn: func(context.Context, model.OrderDraft) (*model.Order, error) {
				return nil, tc.err
			}})
			resp := performRequest(t, http.MethodPost, "/orders", handler.Create, body)
			if resp.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, resp.Code)
			}
		})
	}
}

func TestOrderHandlerList(t *testing.T) {
	newer := time.Now().UTC()
	older := newer.Add(-time.Hour)
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{OrdersFn: func(context.Context) ([]model.Order, error) {
		return []model.Order{
			{ID: "o-2", Status: model.OrderStatusPendente, CreatedAt: newer, UpdatedAt: newer},
			{ID: "o-1", Status: model.OrderStatusEntregue, CreatedAt: older, UpdatedAt: older},
		}, nil
	}})

	resp := performRequest(t, http.MethodGet, "/orders", handler.List, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var orders []dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &orders); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(orders) != 2 || orders[0].ID != "o-2" {
		t.Fatalf("expected newest-first listing, got %+v", orders)
	}
}

func TestOrderHandlerGetNotFound(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{OrderFn: func(context.Context, string) (*model.Order, error) {
		return nil, domainErrors.ErrNotFound
	}})

	resp := performRequest(t, http.MethodGet, "/orders/:id", handler.Get, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
	if detail := decodeDetail(t, resp); detail != "Pedido não encontrado" {
		t.Fatalf("unexpected detail %q", detail)
	}
}

func TestOrderHandlerUpdateStatus(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{UpdateFn: func(_ context.Context, id string, status model.OrderStatus) (*model.Order, error) {
		if status != model.OrderStatusPreparando {
			t.Fatalf("unexpected status %s", status)
		}
		return &model.Order{ID: id, Status: status, UpdatedAt: time.Now().UTC()}, nil
	}})

	body := mustJSON(t, dto.OrderStatusUpdateRequest{Status: "Preparando"})
	resp := performRequest(t, http.MethodPut, "/orders/:id", handler.UpdateStatus, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var order dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &order); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if order.Status != "Preparando" {
		t.Fatalf("expected Preparando, got %q", order.Status)
	}
}

func TestOrderHandlerUpdateStatusFailures(t *testing.T) {
	tests := []struct {
		name   string
		body   []byte
		err    error
		status int
	}{
		{"missing status", []byte(`{}`), nil, http.StatusBadRequest},
		{"unknown status", mustJSON(t, dto.OrderStatusUpdateRequest{Status: "Cancelado"}), domainErrors.ErrInvalidStatus, http.StatusBadRequest},
		{"absent order", mustJSON(t, dto.OrderStatusUpdateRequest{Status: "Pronto"}), domainErrors.ErrNotFound, http.StatusNotFound},
		{"storage failure", mustJSON(t, dto.OrderStatusUpdateRequest{Status: "Pronto"}), errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewOrderHandler(testhelpers.OrderFacadeStub{UpdateFn: func(context.Context, string, model.OrderStatus) (*model.Order, error) {
				if tc.err == nil {
					t.Fatal("facade should not be reached")
				}
				return nil, tc.err
			}})
			resp := performRequest(t, http.MethodPut, "/orders/:id", handler.UpdateStatus, tc.body)
			if resp.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, resp.Code)
			}
		})
	}
}

func TestReviewHandlerCreate(t *testing.T) {
	handler := NewReviewHandler(testhelpers.ReviewFacadeStub{})

	for _, rating := range []int{1, 5} {
		body := mustJSON(t, dto.ReviewCreateRequest{CustomerName: "Bia", Rating: rating, Comment: "Ótimo"})
		resp := performRequest(t, http.MethodPost, "/reviews", handler.Create, body)
		if resp.Code != http.StatusOK {
			t.Fatalf("rating %d: expected 200, got %d", rating, resp.Code)
		}
		var review dto.ReviewResponse
		if err := json.Unmarshal(resp.Body.Bytes(), &review); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if review.ID == "" || review.Rating != rating {
			t.Fatalf("unexpected review: %+v", review)
		}
	}
}

func TestReviewHandlerCreateRejectsOutOfRangeRating(t *testing.T) {
	handler := NewReviewHandler(testhelpers.ReviewFacadeStub{CreateFn: func(context.Context, model.ReviewDraft) (*model.Review, error) {
		t.Fatal("facade should not be reached on validation failure")
		return nil, nil
	}})

	for _, rating := range []int{0, 6} {
		body := mustJSON(t, dto.ReviewCreateRequest{CustomerName: "Bia", Rating: rating, Comment: "hm"})
		resp := performRequest(t, http.MethodPost, "/reviews", handler.Create, body)
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("rating %d: expected 400, got %d", rating, resp.Code)
		}
	}
}

func TestReviewHandlerList(t *testing.T) {
	now := time.Now().UTC()
	handler := NewReviewHandler(testhelpers.ReviewFacadeStub{ReviewsFn: func(context.Context) ([]model.Review, error) {
		return []model.Review{
			{ID: "r-2", Rating: 4, CreatedAt: now},
			{ID: "r-1", Rating: 5, CreatedAt: now.Add(-time.Hour)},
		}, nil
	}})

	resp := performRequest(t, http.MethodGet, "/reviews", handler.List, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var reviews []dto.ReviewResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &reviews); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(reviews) != 2 || reviews[0].ID != "r-2" {
		t.Fatalf("expected newest-first listing, got %+v", reviews)
	}
}
