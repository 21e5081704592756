package main

import (
	"errors"
	"net/http"

	"github.com/jadewing/inkstream/internal/common"
	"github.com/jadewing/inkstream/internal/userservice"
)

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (app *application) signupHandler(w http.ResponseWriter, r *http.Request) {
	var input signupRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	token, err := app.userService.Signup(r.Context(), input.Username, input.Email, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, userservice.ErrDuplicateEmail):
			app.conflictErrorResponse(w, r, "Email already in use")
		case errors.As(err, &common.ValidationError{}):
			app.badRequestErrorResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusCreated, map[string]any{"jwt_token": *token}, "Account Created Successfully")
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (app *application) signinHandler(w http.ResponseWriter, r *http.Request) {
	var input signinRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	token, err := app.userService.Signin(r.Context(), input.Email, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, userservice.ErrAuthenticationFailure):
			app.writeErrorResponse(w, r, http.StatusUnauthorized, "Invalid Credentials")
		case errors.As(err, &common.ValidationError{}):
			app.writeErrorResponse(w, r, http.StatusUnauthorized, "Invalid Credentials")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, map[string]any{"jwt_token": *token}, "Successfull Login")
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) listUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := app.userService.Users(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, users, "All Users")
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}
