package main

import (
	"log/slog"
	"net/http"
)

func (app *application) logError(r *http.Request, err error) {
	var (
		method  = r.Method
		url     = r.URL.RequestURI()
		message = err.Error()
	)

	app.logger.Error(message, slog.String("method", method), slog.String("url", url))
}

func (app *application) writeErrorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	err := app.writeJSON(w, status, nil, message)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
}

// serverErrorResponse logs the full error server-side and returns a generic
// 500 envelope with no detail leaked to the client.
func (app *application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)
	app.writeErrorResponse(w, r, http.StatusInternalServerError, "Internal Server Issue")
}

func (app *application) badRequestErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.writeErrorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (app *application) notFoundErrorResponse(w http.ResponseWriter, r *http.Request, message string) {
	app.writeErrorResponse(w, r, http.StatusNotFound, message)
}

func (app *application) conflictErrorResponse(w http.ResponseWriter, r *http.Request, message string) {
	app.writeErrorResponse(w, r, http.StatusConflict, message)
}

func (app *application) unauthorizedErrorResponse(w http.ResponseWriter, r *http.Request) {
	app.writeErrorResponse(w, r, http.StatusUnauthorized, "Unauthorized User")
}

func (app *application) routeNotFoundHandler(w http.ResponseWriter, r *http.Request) {
	app.writeErrorResponse(w, r, http.StatusNotFound, "Resource not found")
}

func (app *application) methodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	app.writeErrorResponse(w, r, http.StatusMethodNotAllowed, "Method not allowed")
}
