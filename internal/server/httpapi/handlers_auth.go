package httpapi

import (
	"net/http"

	"blogcms/internal/server/services"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	fullName := r.FormValue("FullName")
	email := r.FormValue("email")
	password := r.FormValue("password")
	if fullName == "" || email == "" || password == "" {
		writeError(w, http.StatusBadRequest, "All fields are required")
		return
	}

	profileKey, err := s.saveUpload(r, "profile")
	if err != nil {
		s.logger.Error(r.Context(), "profile upload failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	user, err := s.users.Register(r.Context(), fullName, email, password, profileKey)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "User registered successfully",
		"user":    user,
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "All fields are required")
		return
	}

	user, token, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	setAuthCookie(w, token)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Login successful",
		"user":    user,
		"token":   token,
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	// Tokens are stateless; logout only clears the cookie. Issued tokens
	// stay valid until natural expiry.
	clearAuthCookie(w)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Logout successfully",
	})
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Authentication successful",
		"user":    user,
	})
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	profileKey, err := s.saveUpload(r, "profile")
	if err != nil {
		s.logger.Error(r.Context(), "profile upload failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	actor := userFromContext(r.Context())
	user, token, err := s.users.UpdateProfile(r.Context(), actor.ID, services.UpdateProfileParams{
		FullName:     r.FormValue("FullName"),
		OldPassword:  r.FormValue("oldPassword"),
		NewPassword:  r.FormValue("newPassword"),
		ProfileImage: profileKey,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Profile updated successfully",
		"user":    user,
		"token":   token,
	})
}
