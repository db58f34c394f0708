package http

import (
	"net/http"

	"github.com/aussiebroadwan/notes/internal/notes/service"
	"github.com/aussiebroadwan/notes/pkg/httpx"
	"github.com/aussiebroadwan/notes/pkg/idx"
	"github.com/aussiebroadwan/notes/pkg/notesdk"
)

type FolderHandler struct {
	FolderService *service.FolderService
}

// HandleList returns the caller's folders with note counts.
//
//	@Summary	List folders
//	@Tags		Folders
//	@Security	SessionCookie
//	@Produce	json
//	@Success	200	{array}		notesdk.Folder	"Newest first, with noteCount"
//	@Failure	401	{object}	notesdk.MessageResponse
//	@Failure	500	{object}	notesdk.MessageResponse
//	@Router		/api/folders [get].
func (h *FolderHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	folders, err := h.FolderService.ListFolders(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toFolders(folders))
}

// HandleCreate creates a folder.
//
//	@Summary	Create folder
//	@Tags		Folders
//	@Security	SessionCookie
//	@Accept		json
//	@Produce	json
//	@Param		body	body		notesdk.FolderRequest	true	"Folder"
//	@Success	201		{object}	notesdk.Folder
//	@Failure	400		{object}	notesdk.MessageResponse	"Missing or duplicate name"
//	@Failure	401		{object}	notesdk.MessageResponse
//	@Failure	500		{object}	notesdk.MessageResponse
//	@Router		/api/folders [post].
func (h *FolderHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req notesdk.FolderRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadBody(w)
		return
	}

	folder, err := h.FolderService.CreateFolder(r.Context(), userID, service.FolderInput(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toFolder(folder))
}

// HandleGet returns a folder and its notes.
//
//	@Summary	Get folder
//	@Tags		Folders
//	@Security	SessionCookie
//	@Produce	json
//	@Param		id	path		string	true	"Folder id"
//	@Success	200	{object}	notesdk.FolderDetail
//	@Failure	401	{object}	notesdk.MessageResponse
//	@Failure	404	{object}	notesdk.MessageResponse
//	@Failure	500	{object}	notesdk.MessageResponse
//	@Router		/api/folders/{id} [get].
func (h *FolderHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, folderID, ok := folderTarget(w, r)
	if !ok {
		return
	}

	detail, err := h.FolderService.GetFolder(r.Context(), userID, folderID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, notesdk.FolderDetail{
		Folder: toFolder(detail.Folder),
		Notes:  toNotes(detail.Notes),
	})
}

// HandleUpdate replaces a folder's name, description and color.
//
//	@Summary		Update folder
//	@Description	Omitted description and color reset to their defaults.
//	@Tags			Folders
//	@Security		SessionCookie
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Folder id"
//	@Param			body	body		notesdk.FolderRequest	true	"Folder"
//	@Success		200		{object}	notesdk.Folder
//	@Failure		400		{object}	notesdk.MessageResponse
//	@Failure		401		{object}	notesdk.MessageResponse
//	@Failure		404		{object}	notesdk.MessageResponse
//	@Failure		500		{object}	notesdk.MessageResponse
//	@Router			/api/folders/{id} [put].
func (h *FolderHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, folderID, ok := folderTarget(w, r)
	if !ok {
		return
	}

	var req notesdk.FolderRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadBody(w)
		return
	}

	folder, err := h.FolderService.UpdateFolder(r.Context(), userID, folderID, service.FolderInput(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toFolder(folder))
}

// HandleDelete deletes a folder. Its notes stay, without a folder.
//
//	@Summary	Delete folder
//	@Tags		Folders
//	@Security	SessionCookie
//	@Produce	json
//	@Param		id	path		string	true	"Folder id"
//	@Success	200	{object}	notesdk.MessageResponse
//	@Failure	401	{object}	notesdk.MessageResponse
//	@Failure	404	{object}	notesdk.MessageResponse
//	@Failure	500	{object}	notesdk.MessageResponse
//	@Router		/api/folders/{id} [delete].
func (h *FolderHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, folderID, ok := folderTarget(w, r)
	if !ok {
		return
	}

	if _, err := h.FolderService.DeleteFolder(r.Context(), userID, folderID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, notesdk.MessageResponse{Message: "Folder deleted successfully!"})
}

// folderTarget reads the caller and the {id} path value. Malformed ids are
// answered as missing folders.
func folderTarget(w http.ResponseWriter, r *http.Request) (userID, folderID string, ok bool) {
	userID, ok = callerID(w, r)
	if !ok {
		return "", "", false
	}
	folderID = r.PathValue("id")
	if !idx.Valid(folderID) {
		writeServiceError(w, r, service.ErrFolderNotFound)
		return "", "", false
	}
	return userID, folderID, true
}
