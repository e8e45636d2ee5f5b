package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/andrebq/courseshelf/catalog"
	"github.com/andrebq/courseshelf/catalog/auth"
	"github.com/cespare/xxhash/v2"
	"github.com/julienschmidt/httprouter"
)

type (
	coursePayload struct {
		Title           string `json:"title" validate:"required"`
		Description     string `json:"description" validate:"required"`
		EstimatedTime   string `json:"estimatedTime"`
		MaterialsNeeded string `json:"materialsNeeded"`
	}

	// coursePatchPayload has no required fields, omitted or empty
	// fields keep their stored value.
	coursePatchPayload struct {
		Title           string `json:"title"`
		Description     string `json:"description"`
		EstimatedTime   string `json:"estimatedTime"`
		MaterialsNeeded string `json:"materialsNeeded"`
	}
)

func courseID(r *http.Request) (int64, bool) {
	params := httprouter.ParamsFromContext(r.Context())
	id, err := strconv.ParseInt(params.ByName("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func listCourses(ctx context.Context, ctl *catalog.Control) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		courses, err := ctl.ListCourses(r.Context())
		if err != nil {
			writeStorageError(r.Context(), w, err)
			return
		}
		if courses == nil {
			courses = []catalog.CourseDetail{}
		}
		writeJSON(w, http.StatusOK, courses)
	}
}

func getCourse(ctx context.Context, ctl *catalog.Control) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := courseID(r)
		if !ok {
			writeStorageError(r.Context(), w, catalog.CourseNotFound{})
			return
		}
		course, err := ctl.FindCourse(r.Context(), id)
		if err != nil {
			writeStorageError(r.Context(), w, err)
			return
		}
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(course); err != nil {
			writeStorageError(r.Context(), w, err)
			return
		}
		etag := fmt.Sprintf(`"%x"`, xxhash.Sum64(buf.Bytes()))
		if r.Header.Get("If-None-Match") == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		w.Header().Set("ETag", etag)
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
		w.WriteHeader(http.StatusOK)
		w.Write(buf.Bytes())
	}
}

func createCourse(ctx context.Context, ctl *catalog.Control) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, _ := auth.CurrentUser(r.Context())
		var payload coursePayload
		if err := decodeBody(r, &payload); err != nil {
			writeMessage(w, http.StatusBadRequest, "unable to parse request body")
			return
		}
		if msgs := validateStruct(payload); msgs != nil {
			writeValidationErrors(w, msgs)
			return
		}
		course, err := ctl.CreateCourse(r.Context(), user.ID, catalog.Course{
			Title:           payload.Title,
			Description:     payload.Description,
			EstimatedTime:   payload.EstimatedTime,
			MaterialsNeeded: payload.MaterialsNeeded,
		})
		if err != nil {
			writeStorageError(r.Context(), w, err)
			return
		}
		w.Header().Set("Location", fmt.Sprintf("/api/courses/%v", course.ID))
		w.WriteHeader(http.StatusCreated)
	})
}

func updateCourse(ctx context.Context, ctl *catalog.Control) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, _ := auth.CurrentUser(r.Context())
		id, ok := courseID(r)
		if !ok {
			writeStorageError(r.Context(), w, catalog.CourseNotFound{})
			return
		}
		var payload coursePatchPayload
		if err := decodeBody(r, &payload); err != nil {
			writeMessage(w, http.StatusBadRequest, "unable to parse request body")
			return
		}
		course, err := ctl.FindCourse(r.Context(), id)
		if err != nil {
			writeStorageError(r.Context(), w, err)
			return
		}
		if !auth.Owns(user.ID, course.OwnerID) {
			writeMessage(w, http.StatusForbidden,
				fmt.Sprintf("you are not allowed to update course %v", id))
			return
		}
		err = ctl.UpdateCourse(r.Context(), id, catalog.CoursePatch{
			Title:           payload.Title,
			Description:     payload.Description,
			EstimatedTime:   payload.EstimatedTime,
			MaterialsNeeded: payload.MaterialsNeeded,
		})
		if err != nil {
			writeStorageError(r.Context(), w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

func deleteCourse(ctx context.Context, ctl *catalog.Control) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, _ := auth.CurrentUser(r.Context())
		id, ok := courseID(r)
		if !ok {
			writeStorageError(r.Context(), w, catalog.CourseNotFound{})
			return
		}
		course, err := ctl.FindCourse(r.Context(), id)
		if err != nil {
			writeStorageError(r.Context(), w, err)
			return
		}
		if !auth.Owns(user.ID, course.OwnerID) {
			writeMessage(w, http.StatusForbidden,
				fmt.Sprintf("you are not allowed to delete course %v", id))
			return
		}
		if err := ctl.DeleteCourse(r.Context(), id); err != nil {
			writeStorageError(r.Context(), w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}
