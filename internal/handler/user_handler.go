/*
Package handler provides HTTP handler functions for user search and friend requests.
*/
package handler

import (
	"net/http"
	"strings"

	"github.com/samber/lo"

	"chatserver/internal/app/realtime"
	"chatserver/internal/app/store"
	"chatserver/internal/pkg/auth/jwt"
	"chatserver/internal/pkg/errs"
	"chatserver/internal/pkg/logx"
	"chatserver/internal/pkg/randx"
	"chatserver/internal/pkg/req"
	"chatserver/internal/pkg/resp"
)

// HandleSearchUsers finds users by name that the caller has no direct chat with yet.
func HandleSearchUsers(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimSpace(r.URL.Query().Get("name"))

		users, err := deps.DB.SearchUsers(r.Context(), jwt.UserID(r), name)
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown, err))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"users": users,
		})
	}
}

type SendRequestInput struct {
	UserID string `json:"userId" validate:"required,uuid"`
}

// HandleSendRequest creates a pending friend request and notifies the receiver.
func HandleSendRequest(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		me := jwt.UserID(r)

		var input SendRequestInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if input.UserID == me {
			resp.RespondError(w, r, errs.NewError(errs.ErrSelfRequest))
			return
		}

		if _, err := deps.DB.GetUserByID(r.Context(), input.UserID); err != nil {
			if store.IsNotFound(err) {
				resp.RespondError(w, r, errs.NewError(errs.ErrUserNotFound))
				return
			}
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown, err))
			return
		}

		_, err := deps.DB.FindRequestBetween(r.Context(), me, input.UserID)
		switch {
		case err == nil:
			resp.RespondError(w, r, errs.NewError(errs.ErrRequestAlreadySent))
			return
		case !store.IsNotFound(err):
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown, err))
			return
		}

		request, err := deps.DB.CreateRequest(r.Context(), me, input.UserID)
		if err != nil {
			if store.IsUniqueViolation(err) {
				resp.RespondError(w, r, errs.NewError(errs.ErrRequestAlreadySent))
				return
			}
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown, err))
			return
		}

		deps.emit([]string{input.UserID}, realtime.EventNewRequest, nil)

		logx.Info("Friend request sent", "request_id", request.ID, "sender_id", me, "receiver_id", input.UserID)
		resp.RespondMessage(w, r, http.StatusOK, "Request sent successfully", nil)
	}
}

// NotificationView is a pending request as shown to its receiver.
type NotificationView struct {
	ID     string        `json:"_id"`
	Sender store.Profile `json:"sender"`
}

// HandleGetNotifications lists the pending requests addressed to the caller.
func HandleGetNotifications(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requests, err := deps.DB.ListRequestsForReceiver(r.Context(), jwt.UserID(r))
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown, err))
			return
		}

		views := lo.Map(requests, func(in store.IncomingRequest, _ int) NotificationView {
			return NotificationView{
				ID: in.ID,
				Sender: store.Profile{
					ID:     in.SenderID,
					Name:   in.SenderName,
					Avatar: in.SenderAvatar,
				},
			}
		})

		resp.RespondSuccess(w, r, map[string]any{
			"allRequests": views,
		})
	}
}

type AcceptRequestInput struct {
	RequestID string `json:"requestId" validate:"required,uuid"`
	Accept    *bool  `json:"accept" validate:"required"`
}

// HandleAcceptRequest answers a pending request. Accepting opens a direct chat between
// both parties; either answer removes the request.
func HandleAcceptRequest(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		me := jwt.UserID(r)

		var input AcceptRequestInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		request, err := deps.DB.GetRequest(r.Context(), input.RequestID)
		if err != nil {
			if store.IsNotFound(err) {
				resp.RespondError(w, r, errs.NewError(errs.ErrRequestNotFound))
				return
			}
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown, err))
			return
		}

		if request.ReceiverID != me {
			logx.Warn("User answered a request addressed to someone else", "user_id", me, "request_id", request.ID)
			resp.RespondError(w, r, errs.NewError(errs.ErrRequestNotAllowed))
			return
		}

		if !*input.Accept {
			if err := deps.DB.DeleteRequest(r.Context(), request.ID); err != nil && !store.IsNotFound(err) {
				resp.RespondError(w, r, errs.NewError(errs.ErrUnknown, err))
				return
			}
			resp.RespondMessage(w, r, http.StatusOK, "Request Rejected", nil)
			return
		}

		users, err := deps.DB.GetUsersByIDs(r.Context(), []string{request.SenderID, request.ReceiverID})
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown, err))
			return
		}
		if len(users) != 2 {
			resp.RespondError(w, r, errs.NewError(errs.ErrUserNotFound))
			return
		}

		chat, err := deps.DB.AcceptRequest(r.Context(), request, directChatName(users[0].Name, users[1].Name))
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown, err))
			return
		}

		deps.emit(chat.Members, realtime.EventRefetchData, nil)

		resp.RespondMessage(w, r, http.StatusOK, "Request Accepted", map[string]any{
			"senderId": request.SenderID,
			"chatId":   chat.ID,
		})
	}
}

// directChatName names the chat opened by an accepted request.
func directChatName(senderName, receiverName string) string {
	return senderName + "--" + receiverName
}

// HandleGetFriends lists the caller's direct-chat partners. With ?chatId= it lists only
// those not yet in that chat.
func HandleGetFriends(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		partners, err := deps.DB.DirectChatPartners(r.Context(), jwt.UserID(r))
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown, err))
			return
		}

		friends := lo.UniqBy(lo.Map(partners, func(m store.MemberProfile, _ int) store.Profile {
			return store.Profile{ID: m.ID, Name: m.Name, Avatar: m.Avatar}
		}), func(p store.Profile) string {
			return p.ID
		})

		chatID := r.URL.Query().Get("chatId")
		if chatID == "" {
			resp.RespondSuccess(w, r, map[string]any{
				"friends": friends,
			})
			return
		}

		if !randx.IsValidID(chatID) {
			resp.RespondError(w, r, errs.NewError(errs.ErrValidationFailed, "chatId"))
			return
		}

		members, err := deps.DB.ChatMembers(r.Context(), chatID)
		if err != nil {
			if store.IsNotFound(err) {
				resp.RespondError(w, r, errs.NewError(errs.ErrChatNotFound))
				return
			}
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown, err))
			return
		}

		available := availableFriends(friends, members)

		resp.RespondSuccess(w, r, map[string]any{
			"availableFriends": available,
		})
	}
}

// availableFriends drops the friends that already belong to a chat.
func availableFriends(friends []store.Profile, members []string) []store.Profile {
	return lo.Filter(friends, func(p store.Profile, _ int) bool {
		return !lo.Contains(members, p.ID)
	})
}
