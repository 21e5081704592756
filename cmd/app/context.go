package main

import (
	"context"
	"net/http"
)

type contextKey string

const actorContextKey = contextKey("actor")

// createActorContext stores the authenticated user id on the request. An id
// of zero means the request is anonymous.
func (app *application) createActorContext(r *http.Request, userID int) *http.Request {
	ctx := context.WithValue(r.Context(), actorContextKey, userID)
	return r.WithContext(ctx)
}

func (app *application) actorID(r *http.Request) int {
	userID, ok := r.Context().Value(actorContextKey).(int)
	if !ok {
		return 0
	}
	return userID
}
