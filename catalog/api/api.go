package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/andrebq/courseshelf/catalog"
	"github.com/andrebq/courseshelf/catalog/auth"
	"github.com/andrebq/courseshelf/internal/logutil"
	"github.com/julienschmidt/httprouter"
)

// AsHandler exposes the catalog as a REST API. Reads are open to
// anyone, writes go through the realm, course mutations additionally
// require ownership.
func AsHandler(ctx context.Context, ctl *catalog.Control, realm *auth.SecurityRealm, hasher auth.Hasher) http.Handler {
	router := httprouter.New()
	router.PanicHandler = func(w http.ResponseWriter, r *http.Request, rcv interface{}) {
		log := logutil.GetOrDefault(ctx)
		log.Error().Interface("panic", rcv).Str("path", r.URL.Path).Msg("Handler panicked")
		writeMessage(w, http.StatusInternalServerError, "unable to process request, check logs for more information")
	}
	router.Handler("GET", "/api/users", realm.Protect(currentUser()))
	router.HandlerFunc("POST", "/api/users", createUser(ctx, ctl, hasher))
	router.HandlerFunc("GET", "/api/courses", listCourses(ctx, ctl))
	router.HandlerFunc("GET", "/api/courses/:id", getCourse(ctx, ctl))
	router.Handler("POST", "/api/courses", realm.Protect(createCourse(ctx, ctl)))
	router.Handler("PUT", "/api/courses/:id", realm.Protect(updateCourse(ctx, ctl)))
	router.Handler("DELETE", "/api/courses/:id", realm.Protect(deleteCourse(ctx, ctl)))
	return router
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

func writeValidationErrors(w http.ResponseWriter, msgs []string) {
	writeJSON(w, http.StatusBadRequest, map[string][]string{"errors": msgs})
}

// writeStorageError is the single place where catalog errors become
// HTTP responses.
func writeStorageError(ctx context.Context, w http.ResponseWriter, err error) {
	var courseNotFound catalog.CourseNotFound
	var userNotFound catalog.UserNotFound
	switch {
	case errors.As(err, &courseNotFound):
		writeMessage(w, http.StatusNotFound, courseNotFound.Error()+", please search for another course")
	case errors.As(err, &userNotFound):
		writeMessage(w, http.StatusNotFound, userNotFound.Error())
	default:
		log := logutil.GetOrDefault(ctx)
		log.Error().Err(err).Msg("Unexpected catalog error")
		writeMessage(w, http.StatusInternalServerError, "unable to process request, check logs for more information")
	}
}

func decodeBody(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
