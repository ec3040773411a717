package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"vitrine-be/internal/cart"
	"vitrine-be/internal/catalog"
	"vitrine-be/internal/checkout"
	"vitrine-be/internal/coupon"
	"vitrine-be/internal/logger"
	"vitrine-be/internal/session"
	"vitrine-be/internal/shipping"
	"vitrine-be/internal/utils"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Handler exposes the storefront operations to the UI layer.
type Handler struct {
	catalogSvc catalog.Service
	sessions   *session.Manager
	estimator  shipping.Estimator

	// now is injectable so coupon expiry is testable.
	now func() time.Time
}

func NewHandler(catalogSvc catalog.Service, sessions *session.Manager, estimator shipping.Estimator) *Handler {
	return &Handler{
		catalogSvc: catalogSvc,
		sessions:   sessions,
		estimator:  estimator,
		now:        time.Now,
	}
}

/* ---------- CATALOG ---------- */

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogSvc.ListProducts(r.Context())
	if err != nil {
		utils.WriteJSONError(w, "failed to load catalog", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]any{"products": products})
}

func (h *Handler) ListCoupons(w http.ResponseWriter, r *http.Request) {
	defs, err := h.catalogSvc.ListCoupons(r.Context())
	if err != nil {
		utils.WriteJSONError(w, "failed to load coupons", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]any{"coupons": defs})
}

func (h *Handler) ListPromotions(w http.ResponseWriter, r *http.Request) {
	promos, err := h.catalogSvc.ListPromotions(r.Context())
	if err != nil {
		utils.WriteJSONError(w, "failed to load promotions", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]any{"promotions": promos})
}

/* ---------- CART ---------- */

type addToCartRequest struct {
	ProductID int `json:"productId"`
}

func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())

	var req addToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	product, err := h.catalogSvc.GetProduct(r.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			utils.WriteJSONError(w, "product not found", http.StatusNotFound)
			return
		}
		utils.WriteJSONError(w, "failed to load product", http.StatusInternalServerError)
		return
	}

	sess.AddProduct(r.Context(), *product)
	h.writeCart(w, http.StatusCreated, sess)
}

func (h *Handler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())

	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		utils.WriteJSONError(w, "invalid cart index", http.StatusBadRequest)
		return
	}

	if err := sess.RemoveLine(r.Context(), index); err != nil {
		if errors.Is(err, cart.ErrIndexOutOfRange) {
			utils.WriteJSONError(w, err.Error(), http.StatusNotFound)
			return
		}
		utils.WriteJSONError(w, "failed to remove cart line", http.StatusInternalServerError)
		return
	}

	h.writeCart(w, http.StatusOK, sess)
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	h.writeCart(w, http.StatusOK, sessionFrom(r.Context()))
}

func (h *Handler) GetTotals(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())
	utils.WriteJSON(w, http.StatusOK, sess.Totals())
}

func (h *Handler) writeCart(w http.ResponseWriter, code int, sess *session.Session) {
	utils.WriteJSON(w, code, map[string]any{
		"items":    sess.Items(),
		"coupon":   sess.AppliedCoupon(),
		"shipping": sess.Quote(),
		"totals":   sess.Totals(),
	})
}

/* ---------- COUPON ---------- */

type applyCouponRequest struct {
	Code string `json:"code"`
}

func (h *Handler) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())

	var req applyCouponRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	defs, err := h.catalogSvc.ListCoupons(r.Context())
	if err != nil {
		utils.WriteJSONError(w, "failed to load coupons", http.StatusInternalServerError)
		return
	}

	applied, err := sess.ApplyCoupon(r.Context(), req.Code, defs, h.now())
	if err != nil {
		h.writeCouponError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"coupon": applied,
		"totals": sess.Totals(),
	})
}

func (h *Handler) writeCouponError(w http.ResponseWriter, err error) {
	var belowMin *coupon.BelowMinimumError
	switch {
	case errors.Is(err, coupon.ErrCouponNotFound):
		utils.WriteJSONError(w, "Cupom inválido", http.StatusUnprocessableEntity)
	case errors.Is(err, coupon.ErrCouponExpired):
		utils.WriteJSONError(w, "Cupom expirado", http.StatusUnprocessableEntity)
	case errors.As(err, &belowMin):
		utils.WriteJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":    "Valor mínimo para este cupom: R$ " + belowMin.Required.StringFixed(2),
			"required": belowMin.Required,
		})
	default:
		utils.WriteJSONError(w, "failed to apply coupon", http.StatusInternalServerError)
	}
}

/* ---------- SHIPPING ---------- */

type calculateShippingRequest struct {
	CEP string `json:"cep"`
}

func (h *Handler) CalculateShipping(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())

	var req calculateShippingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	// Formatting characters are stripped here; the estimator contract
	// assumes a pre-validated 8-digit CEP.
	cep := utils.DigitsOnly(req.CEP)
	if !shipping.ValidCEP(cep) {
		utils.WriteJSONError(w, "CEP inválido", http.StatusBadRequest)
		return
	}

	quote, err := sess.CalculateShipping(r.Context(), h.estimator, cep)
	if err != nil {
		if errors.Is(err, shipping.ErrLookupFailed) {
			utils.WriteJSONError(w, "Erro ao calcular frete", http.StatusBadGateway)
			return
		}
		logger.FromCtx(r.Context()).Error("shipping lookup failed", zap.Error(err))
		utils.WriteJSONError(w, "failed to calculate shipping", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"shipping": quote,
		"totals":   sess.Totals(),
	})
}

/* ---------- CHECKOUT ---------- */

func (h *Handler) GetCheckout(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"step":     sess.CheckoutStep(),
		"customer": sess.CheckoutCustomer(),
		"payment":  sess.CheckoutPayment(),
		"totals":   sess.Totals(),
	})
}

func (h *Handler) SubmitCustomer(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())

	var data checkout.CustomerData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := sess.SubmitCustomer(r.Context(), data); err != nil {
		h.writeCheckoutError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{"step": sess.CheckoutStep()})
}

func (h *Handler) SubmitPayment(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())

	var pm checkout.PaymentMethod
	if err := json.NewDecoder(r.Body).Decode(&pm); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := sess.SubmitPayment(r.Context(), pm); err != nil {
		h.writeCheckoutError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{"step": sess.CheckoutStep()})
}

func (h *Handler) CheckoutBack(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())

	if err := sess.CheckoutBack(r.Context()); err != nil {
		h.writeCheckoutError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{"step": sess.CheckoutStep()})
}

func (h *Handler) ConfirmOrder(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())

	snapshot, err := sess.ConfirmOrder(r.Context())
	if err != nil {
		h.writeCheckoutError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, snapshot)
}

func (h *Handler) writeCheckoutError(w http.ResponseWriter, err error) {
	var ferrs checkout.ValidationErrors
	switch {
	case errors.As(err, &ferrs):
		utils.WriteJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": ferrs})
	case errors.Is(err, checkout.ErrInvalidTransition), errors.Is(err, checkout.ErrCheckoutComplete):
		utils.WriteJSONError(w, err.Error(), http.StatusConflict)
	default:
		utils.WriteJSONError(w, "checkout failed", http.StatusInternalServerError)
	}
}
