package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/markbaxman/WightCars-sub000/constant"
	"github.com/markbaxman/WightCars-sub000/model"
	utilsContext "github.com/markbaxman/WightCars-sub000/utils/context"
	"github.com/markbaxman/WightCars-sub000/utils/errors"
	validatorx "github.com/markbaxman/WightCars-sub000/utils/validator"
)

// ListCars handler
// @Summary Browse listings
// @Description Search active approved listings with filters, sorting and pagination
// @Tags Cars
// @Produce json
// @Param make query string false "Exact make"
// @Param model query string false "Exact model"
// @Param min_year query int false "Minimum year"
// @Param max_year query int false "Maximum year"
// @Param min_price query int false "Minimum price in pence"
// @Param max_price query int false "Maximum price in pence"
// @Param min_mileage query int false "Minimum mileage"
// @Param max_mileage query int false "Maximum mileage"
// @Param fuel_type query string false "Fuel type"
// @Param transmission query string false "Transmission"
// @Param body_type query string false "Body type"
// @Param location query string false "Location substring"
// @Param search query string false "Free-text search"
// @Param status query string false "active, sold, withdrawn, pending (default active)"
// @Param is_dealer query bool false "Dealer sellers only (false = private sellers only)"
// @Param sort_by query string false "price_asc, price_desc, year_asc, year_desc, mileage_asc, mileage_desc, created_asc, created_desc"
// @Param page query int false "Page (1-based)"
// @Param limit query int false "Page size, max 50"
// @Success 200 {object} model.CarListResponse
// @Failure 503 {object} errors.CustomError
// @Router /cars [get]
func (s *RestHandler) ListCars(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := s.CarApp.List(ctx, parseCarFilter(r))
	if err != nil {
		writeError(w, err)
		return
	}

	writePage(w, res.Cars, res.Pagination)
}

// GetCar handler
// @Summary Listing detail
// @Description Fetch one listing with seller contact fields; records a view
// @Tags Cars
// @Produce json
// @Param id path int true "Car ID"
// @Success 200 {object} model.CarDetail
// @Failure 404 {object} errors.CustomError
// @Router /cars/{id} [get]
func (s *RestHandler) GetCar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CarApp.GetCar(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreateCar handler
// @Summary Create listing
// @Description Submit a listing; it enters the pending moderation queue
// @Tags Cars
// @Accept json
// @Produce json
// @Param request body model.CarCreateRequest true "Listing"
// @Success 200 {object} model.CarEntity
// @Failure 400 {object} errors.CustomError
// @Security BearerAuth
// @Router /cars [post]
func (s *RestHandler) CreateCar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.CarCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetValidationError(validatorx.FieldErrors(err)...))
		return
	}

	res, err := s.CarApp.CreateCar(ctx, userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) UpdateCar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.CarUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CarApp.UpdateCar(ctx, userID, id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) UpdateCarStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.CarStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetValidationError(validatorx.FieldErrors(err)...))
		return
	}

	if err := s.CarApp.UpdateStatus(ctx, userID, id, req.Status); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]string{"status": req.Status})
}

func (s *RestHandler) DeleteCar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.CarApp.DeleteCar(ctx, userID, id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

func (s *RestHandler) MyCars(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.CarApp.MyCars(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func parseCarFilter(r *http.Request) *model.CarFilter {
	q := r.URL.Query()

	f := &model.CarFilter{
		Make:         q.Get("make"),
		Model:        q.Get("model"),
		MinYear:      queryInt(q, "min_year"),
		MaxYear:      queryInt(q, "max_year"),
		MinPrice:     queryInt64(q, "min_price"),
		MaxPrice:     queryInt64(q, "max_price"),
		MinMileage:   queryInt(q, "min_mileage"),
		MaxMileage:   queryInt(q, "max_mileage"),
		FuelType:     q.Get("fuel_type"),
		Transmission: q.Get("transmission"),
		BodyType:     q.Get("body_type"),
		Location:     q.Get("location"),
		Search:       q.Get("search"),
		Status:       q.Get("status"),
		SortBy:       q.Get("sort_by"),
		Page:         queryInt(q, "page"),
		Limit:        queryInt(q, "limit"),
	}

	if v := q.Get("is_dealer"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			f.IsDealer = &b
		}
	}

	return f
}
