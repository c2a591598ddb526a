package transport

import (
	"net/http"

	"github.com/markbaxman/WightCars-sub000/constant"
	utilsContext "github.com/markbaxman/WightCars-sub000/utils/context"
	"github.com/markbaxman/WightCars-sub000/utils/errors"
)

// ToggleFavorite handler
// @Summary Save or unsave a listing
// @Description Toggles the caller's saved mark on a car; response carries the new state
// @Tags Favorites
// @Produce json
// @Param id path int true "Car ID"
// @Success 200 {object} model.ToggleFavoriteResponse
// @Failure 404 {object} errors.CustomError
// @Security BearerAuth
// @Router /cars/{id}/save [post]
func (s *RestHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	carID, err := parseID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.FavoriteApp.Toggle(ctx, userID, carID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	page, limit := pageWindow(r)

	res, err := s.FavoriteApp.ListFavorites(ctx, userID, page, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writePage(w, res.Cars, res.Pagination)
}
