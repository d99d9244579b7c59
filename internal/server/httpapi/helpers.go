package httpapi

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"time"

	"blogcms/internal/common"
	"blogcms/internal/server/auth"
	"blogcms/internal/server/blob"
)

// maxUploadSize bounds multipart request parsing.
const maxUploadSize = 10 << 20 // 10 MiB

func decodeJSON(r *http.Request, out interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(out)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{"success": false, "message": message})
}

// writeServiceError maps service-layer sentinels onto the status codes
// and messages the frontend expects.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrorValidation):
		writeError(w, http.StatusBadRequest, "All fields are required")
	case errors.Is(err, common.ErrorUnauthorized):
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, common.ErrorForbidden):
		writeError(w, http.StatusForbidden, "Access denied")
	case errors.Is(err, common.ErrorNotFound):
		writeError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, common.ErrorAlreadyExists):
		writeError(w, http.StatusConflict, "user already exists please login")
	case errors.Is(err, common.ErrOldPasswordRequired):
		writeError(w, http.StatusBadRequest, "Please provide your old password to update to a new password")
	case errors.Is(err, common.ErrOldPasswordIncorrect):
		writeError(w, http.StatusBadRequest, "Old password is incorrect")
	case errors.Is(err, common.ErrAdminProtected):
		writeError(w, http.StatusBadRequest, "Sorry You Are Admin You Can't Delete Your Account")
	default:
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// setAuthCookie mirrors the token into an httpOnly cookie for browser
// clients; its lifetime matches the token's.
func setAuthCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     common.AuthCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(auth.TokenValidity / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearAuthCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     common.AuthCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// saveUpload stores an uploaded multipart file in the blob store and
// returns its generated key. An absent file yields an empty key.
func (s *Server) saveUpload(r *http.Request, field string) (string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil
		}
		return "", err
	}
	defer file.Close()

	key := blob.NewStorageKey(header.Filename)
	if err := s.blobs.Save(r.Context(), key, uploadContentType(header), file); err != nil {
		return "", err
	}

	return key, nil
}

func uploadContentType(header *multipart.FileHeader) string {
	if ct := header.Header.Get("Content-Type"); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
