/*
Package handler provides HTTP handler functions for chats, groups and message history.
*/
package handler

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
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

const (
	// MaxGroupMembers bounds the size of a group chat.
	MaxGroupMembers = 100

	// MinGroupMembers is the smallest group a member may leave or be removed from.
	MinGroupMembers = 3

	// MessagesPerPage is the page size of the message history.
	MessagesPerPage = 20
)

type NewGroupInput struct {
	Name    string   `json:"name" validate:"required,max=100"`
	Members []string `json:"members" validate:"required,min=3,max=99,dive,uuid"`
}

// HandleNewGroup creates a group chat owned by the caller.
func HandleNewGroup(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		me := jwt.UserID(r)

		var input NewGroupInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		members := lo.Uniq(append([]string{me}, input.Members...))
		if len(members) > MaxGroupMembers {
			resp.RespondError(w, r, errs.NewError(errs.ErrMembersLimitReached))
			return
		}

		users, err := deps.DB.GetUsersByIDs(r.Context(), members)
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown, err))
			return
		}
		if len(users) != len(members) {
			resp.RespondError(w, r, errs.NewError(errs.ErrUserNotFound))
			return
		}

		chat, err := deps.DB.CreateChat(r.Context(), store.CreateChatParams{
			Name:      strings.TrimSpace(input.Name),
			GroupChat: true,
			CreatorID: me,
			Members:   members,
		})
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown, err))
			return
		}

		deps.emit(chat.Members, realtime.EventAlert, realtime.AlertData{
			ChatID:  chat.ID,
			Message: "Welcome to " + chat.Name,
		})
		deps.emit(chat.Members, realtime.EventRefetchData, nil)

		logx.Info("Group created", "chat_id", chat.ID, "creator_id", me, "members", len(chat.Members))
		resp.RespondMessage(w, r, http.StatusCreated, "Group created successfully", map[string]any{
			"chat": newChatView(chat, nil),
		})
	}
}

// ChatListItem is one entry of the caller's chat list.
type ChatListItem struct {
	ID        string   `json:"_id"`
	Name      string   `json:"name"`
	GroupChat bool     `json:"groupChat"`
	Avatar    []string `json:"avatar"`
	// Members excludes the caller.
	Members []string `json:"members"`
}

// HandleGetMyChats lists every chat the caller belongs to, most recently active first.
func HandleGetMyChats(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		me := jwt.UserID(r)

		chats, profiles, customErr := loadChatsWithProfiles(r, deps, deps.DB.ListChatsForUser)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"chats": buildChatList(chats, profiles, me),
		})
	}
}

// HandleGetMyGroups lists the groups the caller created.
func HandleGetMyGroups(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		me := jwt.UserID(r)

		chats, profiles, customErr := loadChatsWithProfiles(r, deps, deps.DB.ListGroupsCreatedBy)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		groups := lo.Map(buildChatList(chats, profiles, me), func(item ChatListItem, _ int) map[string]any {
			return map[string]any{
				"_id":       item.ID,
				"name":      item.Name,
				"groupChat": item.GroupChat,
				"avatar":    item.Avatar,
			}
		})

		resp.RespondSuccess(w, r, map[string]any{
			"groups": groups,
		})
	}
}

type chatLister func(ctx context.Context, userID string) ([]store.Chat, error)

func loadChatsWithProfiles(r *http.Request, deps *AppDeps, list chatLister) ([]store.Chat, []store.MemberProfile, *errs.CustomError) {
	chats, err := list(r.Context(), jwt.UserID(r))
	if err != nil {
		return nil, nil, errs.NewError(errs.ErrUnknown, err)
	}
	if len(chats) == 0 {
		return chats, nil, nil
	}

	ids := lo.Map(chats, func(c store.Chat, _ int) string { return c.ID })
	profiles, err := deps.DB.ListMemberProfiles(r.Context(), ids)
	if err != nil {
		return nil, nil, errs.NewError(errs.ErrUnknown, err)
	}

	return chats, profiles, nil
}

// buildChatList shapes chats for the sidebar: a direct chat is shown under the other
// member's name and avatar, a group under its own name with up to three member avatars.
func buildChatList(chats []store.Chat, profiles []store.MemberProfile, me string) []ChatListItem {
	byChat := lo.GroupBy(profiles, func(p store.MemberProfile) string { return p.ChatID })

	return lo.Map(chats, func(c store.Chat, _ int) ChatListItem {
		members := byChat[c.ID]
		item := ChatListItem{
			ID:        c.ID,
			Name:      c.Name,
			GroupChat: c.GroupChat,
			Avatar:    []string{},
			Members:   lo.Without(c.Members, me),
		}

		if c.GroupChat {
			item.Avatar = lo.Map(lo.Subset(members, 0, 3), func(p store.MemberProfile, _ int) string { return p.Avatar })
			return item
		}

		if other, ok := lo.Find(members, func(p store.MemberProfile) bool { return p.ID != me }); ok {
			item.Name = other.Name
			item.Avatar = []string{other.Avatar}
		}
		return item
	})
}

type AddMembersInput struct {
	ChatID  string   `json:"chatId" validate:"required,uuid"`
	Members []string `json:"members" validate:"required,min=1,max=97,dive,uuid"`
}

// HandleAddMembers adds existing users to a group the caller belongs to.
func HandleAddMembers(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		me := jwt.UserID(r)

		var input AddMembersInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		chat, customErr := loadGroup(r, deps, input.ChatID)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if !chat.HasMember(me) {
			resp.RespondError(w, r, errs.NewError(errs.ErrNotChatMember))
			return
		}

		users, err := deps.DB.GetUsersByIDs(r.Context(), lo.Uniq(input.Members))
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown, err))
			return
		}

		newcomers := lo.Filter(users, func(u store.User, _ int) bool { return !chat.HasMember(u.ID) })
		if len(newcomers) == 0 {
			resp.RespondMessage(w, r, http.StatusOK, "No new members to add", nil)
			return
		}

		if len(chat.Members)+len(newcomers) > MaxGroupMembers {
			resp.RespondError(w, r, errs.NewError(errs.ErrMembersLimitReached))
			return
		}

		ids := lo.Map(newcomers, func(u store.User, _ int) string { return u.ID })
		if err := deps.DB.AddChatMembers(r.Context(), chat.ID, ids); err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown, err))
			return
		}

		members := append(slices.Clone(chat.Members), ids...)
		names := lo.Map(newcomers, func(u store.User, _ int) string { return u.Username })

		deps.emit(members, realtime.EventAlert, realtime.AlertData{
			ChatID:  chat.ID,
			Message: fmt.Sprintf("Welcome %s to the group", strings.Join(names, ", ")),
		})
		deps.emit(members, realtime.EventRefetchData, nil)

		resp.RespondMessage(w, r, http.StatusOK, "Members added successfully", nil)
	}
}

type RemoveMemberInput struct {
	ChatID string `json:"chatId" validate:"required,uuid"`
	UserID string `json:"userId" validate:"required,uuid"`
}

// HandleRemoveMember lets a group's creator remove another member.
func HandleRemoveMember(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		me := jwt.UserID(r)

		var input RemoveMemberInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		chat, customErr := loadGroup(r, deps, input.ChatID)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if !chat.IsCreator(me) {
			logx.Warn("Non-creator tried to remove a group member", "user_id", me, "chat_id", chat.ID)
			resp.RespondError(w, r, errs.NewError(errs.ErrNotChatCreator))
			return
		}

		// the creator leaves through leaveMember so the group gets a new owner
		if input.UserID == me {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		if !chat.HasMember(input.UserID) {
			resp.RespondError(w, r, errs.NewError(errs.ErrUserNotFound))
			return
		}

		remaining := lo.Without(chat.Members, input.UserID)
		if len(remaining) < MinGroupMembers {
			resp.RespondError(w, r, errs.NewError(errs.ErrGroupTooSmall, MinGroupMembers))
			return
		}

		removed, err := deps.DB.GetUserByID(r.Context(), input.UserID)
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown, err))
			return
		}

		if err := deps.DB.RemoveChatMember(r.Context(), chat.ID, input.UserID); err != nil {
			if store.IsNotFound(err) {
				resp.RespondError(w, r, errs.NewError(errs.ErrUserNotFound))
				return
			}
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown, err))
			return
		}

		deps.emit(remaining, realtime.EventAlert, realtime.AlertData{
			ChatID:  chat.ID,
			Message: fmt.Sprintf("Member %s has been removed from the group", removed.Username),
		})
		deps.emit(append(remaining, input.UserID), realtime.EventRefetchData, nil)

		resp.RespondMessage(w, r, http.StatusOK, "Member removed successfully", nil)
	}
}

// HandleLeaveGroup removes the caller from a group. A leaving creator hands the group
// to a random remaining member.
func HandleLeaveGroup(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		me := jwt.UserID(r)

		chat, customErr := loadGroup(r, deps, chi.URLParam(r, "id"))
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if !chat.HasMember(me) {
			resp.RespondError(w, r, errs.NewError(errs.ErrNotChatMember))
			return
		}

		remaining := lo.Without(chat.Members, me)
		if len(remaining) < MinGroupMembers {
			resp.RespondError(w, r, errs.NewError(errs.ErrGroupTooSmall, MinGroupMembers))
			return
		}

		newCreator := ""
		if chat.IsCreator(me) {
			idx, err := randx.Index(len(remaining))
			if err != nil {
				resp.RespondError(w, r, errs.NewError(errs.ErrUnknown, err))
				return
			}
			newCreator = remaining[idx]
		}

		leaver, err := deps.DB.GetUserByID(r.Context(), me)
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown, err))
			return
		}

		if err := deps.DB.LeaveChat(r.Context(), chat.ID, me, newCreator); err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown, err))
			return
		}

		deps.emit(remaining, realtime.EventAlert, realtime.AlertData{
			ChatID:  chat.ID,
			Message: fmt.Sprintf("User %s has left the group", leaver.Username),
		})
		deps.emit(remaining, realtime.EventRefetchData, nil)

		if newCreator != "" {
			logx.Info("Group ownership transferred", "chat_id", chat.ID, "new_creator_id", newCreator)
		}
		resp.RespondMessage(w, r, http.StatusOK, "Left group successfully", nil)
	}
}

// MessageView is a stored message as listed in the chat history.
type MessageView struct {
	ID          string             `json:"_id"`
	Content     string             `json:"content"`
	Attachments []store.Attachment `json:"attachments"`
	Sender      realtime.Sender    `json:"sender"`
	Chat        string             `json:"chat"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// HandleGetMessages returns one page of a chat's history. Pages count back from the
// newest message; messages inside a page run oldest to newest.
func HandleGetMessages(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		me := jwt.UserID(r)
		chatID := chi.URLParam(r, "id")

		if _, customErr := memberAudience(r, deps, chatID, me); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		page := req.QueryInt(r, "page", 1)

		messages, err := deps.DB.ListChatMessages(r.Context(), chatID, MessagesPerPage, (page-1)*MessagesPerPage)
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown, err))
			return
		}

		total, err := deps.DB.CountChatMessages(r.Context(), chatID)
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown, err))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"messages":   historyPage(messages),
			"totalPages": totalPages(total, MessagesPerPage),
		})
	}
}

// historyPage converts a newest-first page into chronological views.
func historyPage(messages []store.ChatMessage) []MessageView {
	views := lo.Map(messages, func(m store.ChatMessage, _ int) MessageView {
		return MessageView{
			ID:          m.ID,
			Content:     m.Content,
			Attachments: m.Attachments,
			Sender:      realtime.Sender{ID: m.SenderID, Name: m.SenderName},
			Chat:        m.ChatID,
			CreatedAt:   m.CreatedAt,
		}
	})
	slices.Reverse(views)
	return views
}

func totalPages(total int64, perPage int) int {
	return int(math.Ceil(float64(total) / float64(perPage)))
}

// ChatView is a chat's detail. Members holds ids, or profiles when populated.
type ChatView struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	GroupChat bool      `json:"groupChat"`
	Creator   string    `json:"creator,omitempty"`
	Members   any       `json:"members"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newChatView(c store.Chat, profiles []store.Profile) ChatView {
	view := ChatView{
		ID:        c.ID,
		Name:      c.Name,
		GroupChat: c.GroupChat,
		Creator:   c.CreatorID.String,
		Members:   c.Members,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if profiles != nil {
		view.Members = profiles
	}
	return view
}

// HandleGetChat returns a chat's detail; ?populate=true expands members into profiles.
func HandleGetChat(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		me := jwt.UserID(r)

		chat, customErr := loadChat(r, deps, chi.URLParam(r, "id"))
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if !chat.HasMember(me) {
			resp.RespondError(w, r, errs.NewError(errs.ErrNotChatMember))
			return
		}

		if r.URL.Query().Get("populate") != "true" {
			resp.RespondSuccess(w, r, map[string]any{
				"chat": newChatView(chat, nil),
			})
			return
		}

		members, err := deps.DB.ListMemberProfiles(r.Context(), []string{chat.ID})
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown, err))
			return
		}

		profiles := lo.Map(members, func(m store.MemberProfile, _ int) store.Profile {
			return store.Profile{ID: m.ID, Name: m.Name, Avatar: m.Avatar}
		})

		resp.RespondSuccess(w, r, map[string]any{
			"chat": newChatView(chat, profiles),
		})
	}
}

type RenameGroupInput struct {
	Name string `json:"name" validate:"required,max=100"`
}

// HandleRenameGroup lets a group's creator rename it.
func HandleRenameGroup(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		me := jwt.UserID(r)

		var input RenameGroupInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		chat, customErr := loadGroup(r, deps, chi.URLParam(r, "id"))
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if !chat.IsCreator(me) {
			logx.Warn("Non-creator tried to rename a group", "user_id", me, "chat_id", chat.ID)
			resp.RespondError(w, r, errs.NewError(errs.ErrNotChatCreator))
			return
		}

		if err := deps.DB.RenameChat(r.Context(), chat.ID, strings.TrimSpace(input.Name)); err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown, err))
			return
		}

		deps.emit(chat.Members, realtime.EventRefetchData, nil)
		resp.RespondMessage(w, r, http.StatusOK, "Renamed group successfully", nil)
	}
}

// HandleDeleteChat deletes a chat with its messages and attachment blobs. Groups may
// only be deleted by their creator, direct chats by either member.
func HandleDeleteChat(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		me := jwt.UserID(r)

		chat, customErr := loadChat(r, deps, chi.URLParam(r, "id"))
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if customErr := canDelete(chat, me); customErr != nil {
			logx.Warn("User tried to delete a chat without permission", "user_id", me, "chat_id", chat.ID)
			resp.RespondError(w, r, customErr)
			return
		}

		keys, err := deps.DB.ChatAttachmentKeys(r.Context(), chat.ID)
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown, err))
			return
		}

		if err := deps.DB.DeleteChat(r.Context(), chat.ID); err != nil {
			if store.IsNotFound(err) {
				resp.RespondError(w, r, errs.NewError(errs.ErrChatNotFound))
				return
			}
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown, err))
			return
		}

		deleteBlobs(deps, keys...)
		deps.emit(chat.Members, realtime.EventRefetchData, nil)

		logx.Info("Chat deleted", "chat_id", chat.ID, "user_id", me, "attachments", len(keys))
		resp.RespondMessage(w, r, http.StatusOK, "Chat deleted successfully", nil)
	}
}

func canDelete(chat store.Chat, userID string) *errs.CustomError {
	if chat.GroupChat {
		if !chat.IsCreator(userID) {
			return errs.NewError(errs.ErrNotChatCreator)
		}
		return nil
	}

	if !chat.HasMember(userID) {
		return errs.NewError(errs.ErrNotChatMember)
	}
	return nil
}

func loadChat(r *http.Request, deps *AppDeps, chatID string) (store.Chat, *errs.CustomError) {
	if !randx.IsValidID(chatID) {
		return store.Chat{}, errs.NewError(errs.ErrValidationFailed, "chatId")
	}

	chat, err := deps.DB.GetChat(r.Context(), chatID)
	if err != nil {
		if store.IsNotFound(err) {
			return store.Chat{}, errs.NewError(errs.ErrChatNotFound)
		}
		return store.Chat{}, errs.NewError(errs.ErrUnknown, err)
	}

	return chat, nil
}

func loadGroup(r *http.Request, deps *AppDeps, chatID string) (store.Chat, *errs.CustomError) {
	chat, customErr := loadChat(r, deps, chatID)
	if customErr != nil {
		return store.Chat{}, customErr
	}

	if !chat.GroupChat {
		return store.Chat{}, errs.NewError(errs.ErrNotGroupChat)
	}

	return chat, nil
}

// memberAudience returns the chat's members after checking userID is one of them.
func memberAudience(r *http.Request, deps *AppDeps, chatID, userID string) ([]string, *errs.CustomError) {
	if !randx.IsValidID(chatID) {
		return nil, errs.NewError(errs.ErrValidationFailed, "chatId")
	}

	members, err := deps.DB.ChatMembers(r.Context(), chatID)
	if err != nil {
		if store.IsNotFound(err) {
			return nil, errs.NewError(errs.ErrChatNotFound)
		}
		return nil, errs.NewError(errs.ErrUnknown, err)
	}

	if !lo.Contains(members, userID) {
		logx.Warn("User accessed a chat without membership", "user_id", userID, "chat_id", chatID)
		return nil, errs.NewError(errs.ErrNotChatMember)
	}

	return members, nil
}
