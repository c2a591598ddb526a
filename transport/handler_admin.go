package transport

import (
	"encoding/json"
	"net/http"

	"github.com/markbaxman/WightCars-sub000/constant"
	"github.com/markbaxman/WightCars-sub000/model"
	utilsContext "github.com/markbaxman/WightCars-sub000/utils/context"
	"github.com/markbaxman/WightCars-sub000/utils/errors"
	validatorx "github.com/markbaxman/WightCars-sub000/utils/validator"
)

func (s *RestHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	adminID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.AdminApp.Dashboard(ctx, adminID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) Growth(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	adminID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	days := queryInt(r.URL.Query(), "days")

	res, err := s.AdminApp.Growth(ctx, adminID, days)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// AdminCars pages through listings by moderation status (default pending).
func (s *RestHandler) AdminCars(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	adminID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	page, limit := pageWindow(r)

	res, err := s.AdminApp.ListCarsByModeration(ctx, adminID, r.URL.Query().Get("status"), page, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writePage(w, res.Cars, res.Pagination)
}

func (s *RestHandler) ModerateCar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	adminID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.ModerateCarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetValidationError(validatorx.FieldErrors(err)...))
		return
	}

	if err := s.AdminApp.ModerateCar(ctx, adminID, id, req.Status, clientIP(r)); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]string{"moderation_status": req.Status})
}

func (s *RestHandler) FeatureCar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	adminID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.FeatureCarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.AdminApp.FeatureCar(ctx, adminID, id, req.Featured, clientIP(r)); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

func (s *RestHandler) AdminDeleteCar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	adminID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.AdminApp.DeleteCar(ctx, adminID, id, clientIP(r)); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

func (s *RestHandler) AdminUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	adminID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	page, limit := pageWindow(r)

	res, err := s.AdminApp.ListUsers(ctx, adminID, r.URL.Query().Get("search"), page, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writePage(w, res.Users, res.Pagination)
}

func (s *RestHandler) SuspendUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	adminID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.SuspendUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.AdminApp.SuspendUser(ctx, adminID, id, req.Suspended, clientIP(r)); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// AdminReports pages through the report queue (default open).
func (s *RestHandler) AdminReports(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	adminID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	page, limit := pageWindow(r)

	res, err := s.AdminApp.ListReports(ctx, adminID, r.URL.Query().Get("status"), page, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writePage(w, res.Reports, res.Pagination)
}

func (s *RestHandler) ResolveReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	adminID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.ResolveReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetValidationError(validatorx.FieldErrors(err)...))
		return
	}

	if err := s.AdminApp.ResolveReport(ctx, adminID, id, req.Status, clientIP(r)); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]string{"status": req.Status})
}

func (s *RestHandler) AdminLogs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	adminID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	page, limit := pageWindow(r)

	res, err := s.AdminApp.ListLogs(ctx, adminID, page, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writePage(w, res.Logs, res.Pagination)
}

func (s *RestHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	adminID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.AdminApp.ListSettings(ctx, adminID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) UpdateSetting(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	adminID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.UpdateSettingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetValidationError(validatorx.FieldErrors(err)...))
		return
	}

	if err := s.AdminApp.UpdateSetting(ctx, adminID, req.Key, req.Value, clientIP(r)); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}
