package controllers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/kartzyhq/kartzy-backend/api/middleware"
	"github.com/kartzyhq/kartzy-backend/api/responses"
	"github.com/kartzyhq/kartzy-backend/api/validators"
	"github.com/kartzyhq/kartzy-backend/internal/cart"
	pkgerrors "github.com/kartzyhq/kartzy-backend/pkg/errors"
	"github.com/kartzyhq/kartzy-backend/pkg/logger"
)

// FetchCart returns the caller's persisted cart snapshot.
func FetchCart(factory cart.StoreFactory, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ledger, err := openLedger(r, factory)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, map[string]any{
			"items":     ledger.Items(),
			"total":     ledger.Total(),
			"itemCount": ledger.ItemCount(),
		})
	}
}

// ReplaceCart overwrites the caller's cart with the supplied items.
// Clients use it to sync a locally held cart into the server slot.
func ReplaceCart(factory cart.StoreFactory, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload replaceCartRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ledger, err := openLedger(r, factory)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := r.Context()
		if err := ledger.Clear(ctx); err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist cart"))
			return
		}
		for _, item := range payload.Items {
			if item.Quantity <= 0 {
				continue
			}
			if err := ledger.AddItem(ctx, cart.Item{
				ID:      item.ID,
				Name:    item.Name,
				Price:   decimal.NewFromFloat(item.Price),
				Image:   item.Image,
				Variant: item.Variant,
			}); err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist cart"))
				return
			}
			if item.Quantity > 1 {
				if err := ledger.UpdateQuantity(ctx, item.ID, item.Quantity); err != nil {
					responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist cart"))
					return
				}
			}
		}

		responses.WriteJSON(w, http.StatusOK, map[string]any{
			"message":   "Cart updated successfully",
			"items":     ledger.Items(),
			"total":     ledger.Total(),
			"itemCount": ledger.ItemCount(),
		})
	}
}

func openLedger(r *http.Request, factory cart.StoreFactory) (*cart.Ledger, error) {
	if factory == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "cart store unavailable")
	}
	owner := middleware.UserIDFromContext(r.Context())
	if owner == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "Authentication required")
	}

	store, err := factory(owner)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "open cart slot")
	}
	return cart.NewLedger(r.Context(), store), nil
}

type replaceCartRequest struct {
	Items []cartItemPayload `json:"items" validate:"required,dive"`
}

type cartItemPayload struct {
	ID       string  `json:"id" validate:"required"`
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"gte=0"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity" validate:"gte=0"`
	Variant  string  `json:"variant,omitempty"`
}
