package httpapi

import (
	"net/http"

	"vitrine-be/internal/logger"

	"github.com/gorilla/mux"
)

// Router wires every storefront operation under /api, with the session
// middleware resolving (or issuing) the caller's session.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()
	api.Use(h.sessionMiddleware)

	api.HandleFunc("/products", h.ListProducts).Methods(http.MethodGet)
	api.HandleFunc("/coupons", h.ListCoupons).Methods(http.MethodGet)
	api.HandleFunc("/promotions", h.ListPromotions).Methods(http.MethodGet)

	api.HandleFunc("/cart", h.GetCart).Methods(http.MethodGet)
	api.HandleFunc("/cart/items", h.AddToCart).Methods(http.MethodPost)
	api.HandleFunc("/cart/items/{index}", h.RemoveFromCart).Methods(http.MethodDelete)
	api.HandleFunc("/cart/coupon", h.ApplyCoupon).Methods(http.MethodPost)
	api.HandleFunc("/cart/shipping", h.CalculateShipping).Methods(http.MethodPost)
	api.HandleFunc("/cart/totals", h.GetTotals).Methods(http.MethodGet)

	api.HandleFunc("/checkout", h.GetCheckout).Methods(http.MethodGet)
	api.HandleFunc("/checkout/customer", h.SubmitCustomer).Methods(http.MethodPost)
	api.HandleFunc("/checkout/payment", h.SubmitPayment).Methods(http.MethodPost)
	api.HandleFunc("/checkout/back", h.CheckoutBack).Methods(http.MethodPost)
	api.HandleFunc("/checkout/confirm", h.ConfirmOrder).Methods(http.MethodPost)

	return r
}

// sessionMiddleware resolves the caller's session from X-Session-ID and
// echoes the ID back so first-contact clients learn theirs.
func (h *Handler) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := h.sessions.Resolve(r.Header.Get("X-Session-ID"))

		ctx := withSession(r.Context(), sess)
		ctx = logger.WithSessionID(ctx, sess.ID.String())
		w.Header().Set("X-Session-ID", sess.ID.String())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
