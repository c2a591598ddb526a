package transport

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/markbaxman/WightCars-sub000/constant"
	"github.com/markbaxman/WightCars-sub000/model"
	"github.com/markbaxman/WightCars-sub000/utils/errors"
)

type successBody struct {
	Success    bool              `json:"success"`
	Data       interface{}       `json:"data"`
	Pagination *model.Pagination `json:"pagination,omitempty"`
}

type errorBody struct {
	Success bool                `json:"success"`
	Error   string              `json:"error"`
	Code    string              `json:"code"`
	Fields  []errors.FieldError `json:"fields,omitempty"`
}

// writeSuccess writes the standard success envelope
func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, successBody{Success: true, Data: data})
}

// writePage writes the success envelope with pagination alongside data
func writePage(w http.ResponseWriter, data interface{}, p model.Pagination) {
	writeJSON(w, http.StatusOK, successBody{Success: true, Data: data, Pagination: &p})
}

// writeError writes the failure envelope. Anything that is not a
// CustomError collapses to ErrInternal so internals never leak.
func writeError(w http.ResponseWriter, err error) {
	var ce errors.CustomError
	if !stderrors.As(err, &ce) {
		ce = errors.SetCustomError(constant.ErrInternal)
	}

	writeJSON(w, ce.ErrorHTTPCode(), errorBody{
		Success: false,
		Error:   ce.Error(),
		Code:    ce.ErrorCode(),
		Fields:  ce.ErrorFields(),
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
