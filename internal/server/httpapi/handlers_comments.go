package httpapi

import "net/http"

type addCommentRequest struct {
	PostID  string `json:"postId"`
	Comment string `json:"comment"`
}

type deleteCommentRequest struct {
	CommentID string `json:"commentId"`
}

func (s *Server) handleAddComment(w http.ResponseWriter, r *http.Request) {
	var req addCommentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	actor := userFromContext(r.Context())
	comment, err := s.comments.Add(r.Context(), actor.ID, req.PostID, req.Comment)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Comment added successfully",
		"comment": comment,
	})
}

func (s *Server) handleDeleteComment(w http.ResponseWriter, r *http.Request) {
	var req deleteCommentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.CommentID == "" {
		writeError(w, http.StatusBadRequest, "commentId is required")
		return
	}

	if err := s.comments.Delete(r.Context(), req.CommentID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Comment deleted successfully",
	})
}
