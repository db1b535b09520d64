package controllers

import (
	"meetslot-service/internal/pkg/exceptions"
	"meetslot-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

// decodeAndValidate parses and validates a JSON body, writing the error
// response itself when either step fails.
func decodeAndValidate(log *zap.Logger, w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := utils.ParseJSONBody(r, dst); err != nil {
		utils.BuildErrorResponse(log, w, exceptions.ErrCannotParseJSON(err))
		return false
	}
	if err := utils.ValidateStruct(dst); err != nil {
		utils.BuildErrorResponse(log, w, exceptions.ErrInputValidation(err))
		return false
	}
	return true
}
