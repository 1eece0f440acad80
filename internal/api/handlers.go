package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/example/catalog-cart/internal/api/middleware"
	"github.com/example/catalog-cart/internal/command"
	"github.com/example/catalog-cart/internal/domain/errs"
	"github.com/example/catalog-cart/internal/domain/product"
	"github.com/example/catalog-cart/internal/query"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const defaultSessionID = "default-session"

type Handlers struct {
	cmdHandler   *command.Handler
	queryHandler *query.Handler
	logger       *zap.Logger
}

func NewHandlers(cmdHandler *command.Handler, queryHandler *query.Handler, logger *zap.Logger) *Handlers {
	return &Handlers{
		cmdHandler:   cmdHandler,
		queryHandler: queryHandler,
		logger:       logger,
	}
}

// Product Handlers

func (h *Handlers) GetCategories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, product.Categories())
}

// GetProducts lists products filtered by ?category= and ?show_out_of_stock=, paged by ?page= and ?page_size=.
func (h *Handlers) GetProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var filter product.Filter
	if c := q.Get("category"); c != "" && c != "all" {
		category, err := product.ParseCategory(c)
		if err != nil {
			h.respondErr(w, err)
			return
		}
		filter.Category = category
	}
	if s := q.Get("show_out_of_stock"); s != "" {
		show, err := strconv.ParseBool(s)
		if err != nil {
			respondError(w, "show_out_of_stock must be a boolean", http.StatusBadRequest)
			return
		}
		filter.ShowOutOfStock = show
	}

	page, err := intParam(q.Get("page"), 1)
	if err != nil {
		respondError(w, "page must be an integer", http.StatusBadRequest)
		return
	}
	pageSize, err := intParam(q.Get("page_size"), query.DefaultPageSize)
	if err != nil {
		respondError(w, "page_size must be an integer", http.StatusBadRequest)
		return
	}

	products, err := h.queryHandler.ListProducts(filter, page, pageSize)
	if err != nil {
		h.respondErr(w, err)
		return
	}
	respondJSON(w, http.StatusOK, products)
}

// GetProduct returns one product and records a product view.
func (h *Handlers) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := extractPathParam(r.URL.Path, "/products/")
	p, ok := h.queryHandler.GetProduct(id)
	if !ok {
		respondError(w, "product not found", http.StatusNotFound)
		return
	}

	h.cmdHandler.RecordProductView(r.Context(), command.RecordProductView{ProductID: p.ID})
	respondJSON(w, http.StatusOK, p)
}

func (h *Handlers) GetDiscount(w http.ResponseWriter, r *http.Request) {
	path := extractPathParam(r.URL.Path, "/products/")
	id := strings.TrimSuffix(path, "/discount")

	percent, err := decimal.NewFromString(r.URL.Query().Get("percent"))
	if err != nil {
		respondError(w, "percent must be a number", http.StatusBadRequest)
		return
	}

	quote, err := h.queryHandler.Discount(id, percent)
	if err != nil {
		h.respondErr(w, err)
		return
	}
	respondJSON(w, http.StatusOK, quote)
}

// Cart Handlers

func (h *Handlers) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"product_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, err.Error(), http.StatusBadRequest)
		return
	}

	sessionID := getSessionID(r)
	cmd := command.AddToCart{
		SessionID: sessionID,
		ProductID: req.ProductID,
	}
	if err := h.cmdHandler.AddToCart(r.Context(), cmd); err != nil {
		h.respondErr(w, err)
		return
	}

	respondJSON(w, http.StatusOK, h.queryHandler.GetCart(sessionID))
}

func (h *Handlers) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	sessionID := getSessionID(r)
	cmd := command.RemoveFromCart{
		SessionID: sessionID,
		ProductID: extractPathParam(r.URL.Path, "/cart/items/"),
	}
	if err := h.cmdHandler.RemoveFromCart(r.Context(), cmd); err != nil {
		h.respondErr(w, err)
		return
	}

	respondJSON(w, http.StatusOK, h.queryHandler.GetCart(sessionID))
}

func (h *Handlers) GetCart(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.queryHandler.GetCart(getSessionID(r)))
}

func (h *Handlers) Checkout(w http.ResponseWriter, r *http.Request) {
	event, err := h.cmdHandler.Checkout(r.Context(), command.Checkout{SessionID: getSessionID(r)})
	if err != nil {
		h.respondErr(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, event)
}

// Helper functions

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, message string, status int) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondErr maps domain error kinds to HTTP status codes.
func (h *Handlers) respondErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, query.ErrProductNotFound), errors.Is(err, command.ErrProductNotFound):
		respondError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, errs.ErrInvalidArgument):
		respondError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, errs.ErrInvalidState):
		respondError(w, err.Error(), http.StatusConflict)
	default:
		h.logger.Error("Request failed", zap.Error(err))
		respondError(w, "internal error", http.StatusInternalServerError)
	}
}

func extractPathParam(path, prefix string) string {
	return strings.TrimPrefix(path, prefix)
}

func intParam(s string, defaultValue int) (int, error) {
	if s == "" {
		return defaultValue, nil
	}
	return strconv.Atoi(s)
}

// getSessionID extracts the session ID from the token context or falls back to the X-Session-ID header.
// The fallbacks are unauthenticated and demo-only: every token-less client without the header shares
// the default-session cart, and any client can open a cart by naming it. A valid token always wins.
func getSessionID(r *http.Request) string {
	if sessionID := middleware.GetSessionID(r.Context()); sessionID != "" {
		return sessionID
	}

	if sessionID := r.Header.Get("X-Session-ID"); sessionID != "" {
		return sessionID
	}

	return defaultSessionID
}
