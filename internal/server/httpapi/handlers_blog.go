package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"blogcms/internal/server/services"
)

func (s *Server) handleRecentPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := s.posts.ListRecent(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"posts":   posts,
	})
}

func (s *Server) handleGetPost(w http.ResponseWriter, r *http.Request) {
	post, err := s.posts.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"post":    post,
	})
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	imageKey, err := s.saveUpload(r, "postImage")
	if err != nil {
		s.logger.Error(r.Context(), "post image upload failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if imageKey == "" {
		writeError(w, http.StatusBadRequest, "post image is required")
		return
	}

	actor := userFromContext(r.Context())
	post, err := s.posts.Create(r.Context(), actor.ID, r.FormValue("title"), r.FormValue("desc"), imageKey)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Post Created successfully",
		"post":    post,
	})
}

func (s *Server) handleUpdatePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	imageKey, err := s.saveUpload(r, "postImage")
	if err != nil {
		s.logger.Error(r.Context(), "post image upload failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	post, err := s.posts.Update(r.Context(), chi.URLParam(r, "id"), services.UpdatePostParams{
		Title:       r.FormValue("title"),
		Description: r.FormValue("desc"),
		Image:       imageKey,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "post updated successfully",
		"post":    post,
	})
}

func (s *Server) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	if err := s.posts.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Post and associated comments deleted successfully",
	})
}
