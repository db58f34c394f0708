package http

import (
	"net/http"

	"github.com/aussiebroadwan/notes/internal/notes/service"
	"github.com/aussiebroadwan/notes/pkg/httpx"
	"github.com/aussiebroadwan/notes/pkg/notesdk"
)

type ProfileHandler struct {
	ProfileService *service.ProfileService
}

// HandleGet returns the caller's profile.
//
//	@Summary	Get my profile
//	@Tags		Profile
//	@Security	SessionCookie
//	@Produce	json
//	@Success	200	{object}	notesdk.UserResponse
//	@Failure	401	{object}	notesdk.MessageResponse
//	@Failure	500	{object}	notesdk.MessageResponse
//	@Router		/api/profile/me [get].
func (h *ProfileHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	user, err := h.ProfileService.GetProfile(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, notesdk.UserResponse{Success: true, User: toUser(user)})
}

// HandleUpdate changes username, email or bio.
//
//	@Summary		Update my profile
//	@Description	Only the fields present in the body change. An empty bio clears it.
//	@Tags			Profile
//	@Security		SessionCookie
//	@Accept			json
//	@Produce		json
//	@Param			body	body		notesdk.UpdateProfileRequest	true	"Fields to change"
//	@Success		200		{object}	notesdk.UserResponse
//	@Failure		400		{object}	notesdk.MessageResponse	"Bio too long or username/email taken"
//	@Failure		401		{object}	notesdk.MessageResponse
//	@Failure		500		{object}	notesdk.MessageResponse
//	@Router			/api/profile/update [put].
func (h *ProfileHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req notesdk.UpdateProfileRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadBody(w)
		return
	}

	user, err := h.ProfileService.UpdateProfile(r.Context(), userID, service.ProfileUpdate{
		Username: req.Username,
		Email:    req.Email,
		Bio:      req.Bio,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, notesdk.UserResponse{
		Success: true,
		User:    toUser(user),
		Message: "Profile updated successfully",
	})
}
