package handler

import (
	"net/http"

	"chatserver/internal/app/realtime"
	"chatserver/internal/app/storage"
	"chatserver/internal/app/store"
	"chatserver/internal/pkg/auth/jwt"
	"chatserver/internal/pkg/errs"
	"chatserver/internal/pkg/logx"
	"chatserver/internal/pkg/req"
	"chatserver/internal/pkg/resp"
)

// HandleSendAttachments stores the uploaded files of a multipart form (chatId plus 1 to 5
// "files" parts) as one message and pushes it to the chat's members. Unlike text sent over
// the socket, the message is persisted before it is delivered.
func HandleSendAttachments(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		me := jwt.UserID(r)

		if customErr := req.SetupMultipart(w, r); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		files := r.MultipartForm.File["files"]
		if len(files) == 0 {
			resp.RespondError(w, r, errs.NewError(errs.ErrFileRequired))
			return
		}
		if len(files) > storage.MaxAttachmentsPerMessage {
			resp.RespondError(w, r, errs.NewError(errs.ErrTooManyFiles, storage.MaxAttachmentsPerMessage))
			return
		}

		chatID := r.FormValue("chatId")
		members, customErr := memberAudience(r, deps, chatID, me)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		sender, err := deps.DB.GetUserByID(r.Context(), me)
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown, err))
			return
		}

		attachments, customErr := storage.UploadFiles(r.Context(), deps.StorageService, storage.KindAttachment, files)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		message, err := deps.DB.CreateMessage(r.Context(), store.CreateMessageParams{
			ChatID:      chatID,
			SenderID:    me,
			Attachments: attachments,
		})
		if err != nil {
			keys := make([]string, 0, len(attachments))
			for _, a := range attachments {
				keys = append(keys, a.PublicID)
			}
			deleteBlobs(deps, keys...)

			logx.Error(err, "failed to store attachment message", "chat_id", chatID, "user_id", me)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		live := realtime.StoredLiveMessage(message, realtime.Sender{ID: sender.ID, Name: sender.Name})
		deps.emit(members, realtime.EventNewMessage, realtime.NewMessageData{ChatID: chatID, Message: live})
		deps.emit(members, realtime.EventNewMessageAlert, realtime.ChatScope{ChatID: chatID})

		resp.RespondMessage(w, r, http.StatusOK, "Attachments sent successfully", map[string]any{
			"message": live,
		})
	}
}
