package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kartzyhq/kartzy-backend/api/responses"
	"github.com/kartzyhq/kartzy-backend/api/validators"
	"github.com/kartzyhq/kartzy-backend/internal/catalog"
	pkgerrors "github.com/kartzyhq/kartzy-backend/pkg/errors"
	"github.com/kartzyhq/kartzy-backend/pkg/logger"
)

// ListProducts serves the filtered, sorted, paginated catalog page.
func ListProducts(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		spec := catalog.ParseQuerySpec(r.URL.Query())
		result, err := svc.ListProducts(r.Context(), spec)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, result)
	}
}

// GetProduct serves one product by id.
func GetProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		product, err := svc.GetProduct(r.Context(), chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, map[string]any{"product": product})
	}
}

// ListCategories serves the deduplicated category labels.
func ListCategories(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		categories, err := svc.Categories(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, map[string]any{"categories": categories})
	}
}

// CreateProduct handles admin product creation.
func CreateProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		var payload createProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.CreateProduct(r.Context(), payload.toCreateInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusCreated, map[string]any{
			"message": "Product created successfully",
			"product": product,
		})
	}
}

// UpdateProduct merges the supplied fields over an existing product.
func UpdateProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		var payload updateProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.UpdateProduct(r.Context(), chi.URLParam(r, "productId"), payload.toUpdateInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, map[string]any{
			"message": "Product updated successfully",
			"product": product,
		})
	}
}

// DeleteProduct removes a product by id.
func DeleteProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		if err := svc.DeleteProduct(r.Context(), chi.URLParam(r, "productId")); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, map[string]any{
			"message": "Product deleted successfully",
		})
	}
}

type createProductRequest struct {
	Name           string            `json:"name" validate:"required,min=2,max=100"`
	Price          float64           `json:"price" validate:"required,gt=0"`
	OriginalPrice  *float64          `json:"originalPrice,omitempty" validate:"omitempty,gt=0"`
	Image          string            `json:"image" validate:"required,uri"`
	Category       string            `json:"category" validate:"required"`
	Description    string            `json:"description" validate:"required,min=10,max=1000"`
	Stock          *int              `json:"stock" validate:"required,gte=0"`
	Specifications map[string]string `json:"specifications,omitempty"`
}

func (r createProductRequest) toCreateInput() catalog.CreateProductInput {
	stock := 0
	if r.Stock != nil {
		stock = *r.Stock
	}
	return catalog.CreateProductInput{
		Name:           r.Name,
		Price:          r.Price,
		OriginalPrice:  r.OriginalPrice,
		Image:          r.Image,
		Category:       r.Category,
		Description:    r.Description,
		Stock:          stock,
		Specifications: r.Specifications,
	}
}

type updateProductRequest struct {
	Name           *string            `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Price          *float64           `json:"price,omitempty" validate:"omitempty,gt=0"`
	OriginalPrice  *float64           `json:"originalPrice,omitempty" validate:"omitempty,gt=0"`
	Image          *string            `json:"image,omitempty" validate:"omitempty,uri"`
	Category       *string            `json:"category,omitempty"`
	Description    *string            `json:"description,omitempty" validate:"omitempty,min=10,max=1000"`
	Stock          *int               `json:"stock,omitempty" validate:"omitempty,gte=0"`
	Specifications *map[string]string `json:"specifications,omitempty"`
}

func (r updateProductRequest) toUpdateInput() catalog.UpdateProductInput {
	return catalog.UpdateProductInput{
		Name:           r.Name,
		Price:          r.Price,
		OriginalPrice:  r.OriginalPrice,
		Image:          r.Image,
		Category:       r.Category,
		Description:    r.Description,
		Stock:          r.Stock,
		Specifications: r.Specifications,
	}
}
