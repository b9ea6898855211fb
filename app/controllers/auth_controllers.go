package controllers

import (
	"net/http"

	"github.com/printfarmlabs/stockpile/app/services"
	"github.com/printfarmlabs/stockpile/pkg/bind"
	"github.com/printfarmlabs/stockpile/pkg/response"
	"github.com/printfarmlabs/stockpile/pkg/validate"
)

type AuthController struct {
	authenticator services.Authenticator
}

func NewAuthController(a services.Authenticator) *AuthController {
	return &AuthController{authenticator: a}
}

// Login exchanges the shared password for a bearer token.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var creds services.Credentials
	errs, err := bind.JSON(r, &creds)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	session, err := c.authenticator.Authenticate(creds)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	response.Success(w, session)
}
