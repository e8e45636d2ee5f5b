package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/andrebq/courseshelf/catalog"
	"github.com/andrebq/courseshelf/catalog/auth"
	"github.com/andrebq/courseshelf/internal/logutil"
)

type (
	userPayload struct {
		FirstName    string `json:"firstName" validate:"required"`
		LastName     string `json:"lastName" validate:"required"`
		EmailAddress string `json:"emailAddress" validate:"required,email"`
		Password     string `json:"password" validate:"required,max=72"`
	}
)

func currentUser() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := auth.CurrentUser(r.Context())
		if !ok {
			// Protect always runs first, getting here without a
			// principal means the route was wired wrong
			writeMessage(w, http.StatusInternalServerError, "unable to process request, check logs for more information")
			return
		}
		writeJSON(w, http.StatusOK, user)
	})
}

func createUser(ctx context.Context, ctl *catalog.Control, hasher auth.Hasher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload userPayload
		if err := decodeBody(r, &payload); err != nil {
			writeMessage(w, http.StatusBadRequest, "unable to parse request body")
			return
		}
		if msgs := validateStruct(payload); msgs != nil {
			writeValidationErrors(w, msgs)
			return
		}
		hash, err := hasher.Hash(payload.Password)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "Please enter a password of 72 characters or fewer.")
			return
		}
		user, created, err := ctl.CreateUser(r.Context(), catalog.User{
			FirstName: payload.FirstName,
			LastName:  payload.LastName,
			Email:     payload.EmailAddress,
			Password:  hash,
		})
		if err != nil {
			writeStorageError(r.Context(), w, err)
			return
		}
		if !created {
			writeMessage(w, http.StatusBadRequest,
				fmt.Sprintf("user not created, %v is already tied to an account", user.Email))
			return
		}
		log := logutil.GetOrDefault(ctx)
		log.Info().Str("email", user.Email).Msg("User registered")
		w.Header().Set("Location", "/")
		w.WriteHeader(http.StatusCreated)
	}
}
