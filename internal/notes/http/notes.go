package http

import (
	"net/http"

	"github.com/aussiebroadwan/notes/internal/notes/service"
	"github.com/aussiebroadwan/notes/pkg/httpx"
	"github.com/aussiebroadwan/notes/pkg/idx"
	"github.com/aussiebroadwan/notes/pkg/notesdk"
)

type NoteHandler struct {
	NoteService *service.NoteService
}

// HandleList returns the caller's notes.
//
//	@Summary		List notes
//	@Description	Without folderId every note is returned; "none" or "null" returns notes outside any folder.
//	@Tags			Notes
//	@Security		SessionCookie
//	@Produce		json
//	@Param			folderId	query		string	false	"Folder id, none or null"
//	@Success		200			{array}		notesdk.Note	"Newest first"
//	@Failure		401			{object}	notesdk.MessageResponse
//	@Failure		500			{object}	notesdk.MessageResponse
//	@Router			/api/notes [get].
func (h *NoteHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	filter := service.ParseNoteFilter(r.URL.Query().Get("folderId"))
	notes, err := h.NoteService.ListNotes(r.Context(), userID, filter)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toNotes(notes))
}

// HandleCreate creates a note.
//
//	@Summary	Create note
//	@Tags		Notes
//	@Security	SessionCookie
//	@Accept		json
//	@Produce	json
//	@Param		body	body		notesdk.CreateNoteRequest	true	"Note"
//	@Success	201		{object}	notesdk.Note
//	@Failure	400		{object}	notesdk.MessageResponse	"Missing title or content, bad priority or folder"
//	@Failure	401		{object}	notesdk.MessageResponse
//	@Failure	500		{object}	notesdk.MessageResponse
//	@Router		/api/notes [post].
func (h *NoteHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req notesdk.CreateNoteRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadBody(w)
		return
	}

	note, err := h.NoteService.CreateNote(r.Context(), userID, service.NoteInput(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toNote(note))
}

// HandleGet returns one note.
//
//	@Summary	Get note
//	@Tags		Notes
//	@Security	SessionCookie
//	@Produce	json
//	@Param		id	path		string	true	"Note id"
//	@Success	200	{object}	notesdk.Note
//	@Failure	401	{object}	notesdk.MessageResponse
//	@Failure	404	{object}	notesdk.MessageResponse
//	@Failure	500	{object}	notesdk.MessageResponse
//	@Router		/api/notes/{id} [get].
func (h *NoteHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, noteID, ok := noteTarget(w, r)
	if !ok {
		return
	}

	note, err := h.NoteService.GetNote(r.Context(), userID, noteID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toNote(note))
}

// HandleRender returns the note content as HTML.
//
//	@Summary		Render note
//	@Description	Markdown content rendered to HTML. Raw HTML in the note is dropped.
//	@Tags			Notes
//	@Security		SessionCookie
//	@Produce		json
//	@Param			id	path		string	true	"Note id"
//	@Success		200	{object}	notesdk.NoteHTML
//	@Failure		401	{object}	notesdk.MessageResponse
//	@Failure		404	{object}	notesdk.MessageResponse
//	@Failure		500	{object}	notesdk.MessageResponse
//	@Router			/api/notes/{id}/html [get].
func (h *NoteHandler) HandleRender(w http.ResponseWriter, r *http.Request) {
	userID, noteID, ok := noteTarget(w, r)
	if !ok {
		return
	}

	html, err := h.NoteService.RenderNote(r.Context(), userID, noteID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, notesdk.NoteHTML{ID: noteID, HTML: html})
}

// HandleUpdate changes the fields present in the body.
//
//	@Summary		Update note
//	@Description	Title and content overwrite when present. Empty priority or color is ignored.
//	@Description	folderId null, "" or "null" takes the note out of its folder; an absent folderId keeps it.
//	@Tags			Notes
//	@Security		SessionCookie
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Note id"
//	@Param			body	body		notesdk.UpdateNoteRequest	true	"Fields to change"
//	@Success		200		{object}	notesdk.Note
//	@Failure		400		{object}	notesdk.MessageResponse
//	@Failure		401		{object}	notesdk.MessageResponse
//	@Failure		404		{object}	notesdk.MessageResponse
//	@Failure		500		{object}	notesdk.MessageResponse
//	@Router			/api/notes/{id} [put].
func (h *NoteHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, noteID, ok := noteTarget(w, r)
	if !ok {
		return
	}

	var req notesdk.UpdateNoteRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadBody(w)
		return
	}

	note, err := h.NoteService.UpdateNote(r.Context(), userID, noteID, service.NoteUpdate(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toNote(note))
}

// HandleDelete deletes a note.
//
//	@Summary	Delete note
//	@Tags		Notes
//	@Security	SessionCookie
//	@Produce	json
//	@Param		id	path		string	true	"Note id"
//	@Success	200	{object}	notesdk.MessageResponse
//	@Failure	401	{object}	notesdk.MessageResponse
//	@Failure	404	{object}	notesdk.MessageResponse
//	@Failure	500	{object}	notesdk.MessageResponse
//	@Router		/api/notes/{id} [delete].
func (h *NoteHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, noteID, ok := noteTarget(w, r)
	if !ok {
		return
	}

	if err := h.NoteService.DeleteNote(r.Context(), userID, noteID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, notesdk.MessageResponse{Message: "Note deleted successfully!"})
}

func noteTarget(w http.ResponseWriter, r *http.Request) (userID, noteID string, ok bool) {
	userID, ok = callerID(w, r)
	if !ok {
		return "", "", false
	}
	noteID = r.PathValue("id")
	if !idx.Valid(noteID) {
		writeServiceError(w, r, service.ErrNoteNotFound)
		return "", "", false
	}
	return userID, noteID, true
}
