package controllers

import (
	"net/http"

	"github.com/galleypos/galleypos-backend/api/responses"
	"github.com/galleypos/galleypos-backend/internal/catalog"
	pkgerrors "github.com/galleypos/galleypos-backend/pkg/errors"
	"github.com/galleypos/galleypos-backend/pkg/logger"
)

// CatalogList returns every item loadable onto the trolley.
func CatalogList(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		products, err := svc.ListItems(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newProductViews(products))
	}
}

// CatalogReset reseeds the catalog with a fresh random load. Dev only;
// the route is not registered in prod.
func CatalogReset(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		products, err := svc.Reseed(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newProductViews(products))
	}
}
