package api

import (
	"net/http"
	"strings"

	"github.com/example/catalog-cart/internal/api/middleware"
	"github.com/example/catalog-cart/internal/auth"
	"go.uber.org/zap"
)

type RouterConfig struct {
	Handlers        *Handlers
	SessionHandlers *SessionHandlers
	Tokens          *auth.SessionTokens
	Logger          *zap.Logger
}

func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()
	handlers := cfg.Handlers
	requireSession := middleware.RequireSession(cfg.Tokens)

	// Session
	mux.HandleFunc("/session", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			cfg.SessionHandlers.CreateSession(w, r)
		case http.MethodGet:
			requireSession(http.HandlerFunc(cfg.SessionHandlers.GetSession)).ServeHTTP(w, r)
		default:
			methodNotAllowed(w)
		}
	})

	// Catalog
	mux.HandleFunc("/categories", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			handlers.GetCategories(w, r)
		default:
			methodNotAllowed(w)
		}
	})

	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			handlers.GetProducts(w, r)
		default:
			methodNotAllowed(w)
		}
	})

	mux.HandleFunc("/products/", func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method != http.MethodGet:
			methodNotAllowed(w)
		case strings.HasSuffix(r.URL.Path, "/discount"):
			handlers.GetDiscount(w, r)
		default:
			handlers.GetProduct(w, r)
		}
	})

	// Cart
	mux.HandleFunc("/cart", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			handlers.GetCart(w, r)
		default:
			methodNotAllowed(w)
		}
	})

	mux.HandleFunc("/cart/items", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			handlers.AddToCart(w, r)
		default:
			methodNotAllowed(w)
		}
	})

	mux.HandleFunc("/cart/items/", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodDelete:
			handlers.RemoveFromCart(w, r)
		default:
			methodNotAllowed(w)
		}
	})

	mux.HandleFunc("/cart/checkout", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			handlers.Checkout(w, r)
		default:
			methodNotAllowed(w)
		}
	})

	var handler http.Handler = mux
	handler = middleware.OptionalSession(cfg.Tokens)(handler)
	handler = middleware.RequestLogger(cfg.Logger)(handler)
	return handler
}

func methodNotAllowed(w http.ResponseWriter) {
	respondError(w, "method not allowed", http.StatusMethodNotAllowed)
}
