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

// SendMessage delivers a buyer enquiry to the listing owner.
func (s *RestHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
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

	var req model.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetValidationError(validatorx.FieldErrors(err)...))
		return
	}

	res, err := s.MessageApp.SendMessage(ctx, userID, carID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CarThread returns the caller's conversation on one listing.
func (s *RestHandler) CarThread(w http.ResponseWriter, r *http.Request) {
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

	res, err := s.MessageApp.Thread(ctx, carID, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) Inbox(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	page, limit := pageWindow(r)

	res, err := s.MessageApp.Inbox(ctx, userID, page, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writePage(w, res.Messages, res.Pagination)
}

func (s *RestHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.MessageApp.UnreadCount(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) MarkMessageRead(w http.ResponseWriter, r *http.Request) {
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

	if err := s.MessageApp.MarkRead(ctx, userID, id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}
