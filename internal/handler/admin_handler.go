/*
Package handler provides the HTTP handler functions of the admin dashboard.
*/
package handler

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/samber/lo"

	"chatserver/internal/app/store"
	"chatserver/internal/pkg/auth/jwt"
	"chatserver/internal/pkg/errs"
	"chatserver/internal/pkg/logx"
	"chatserver/internal/pkg/req"
	"chatserver/internal/pkg/resp"
)

const (
	// chartDays is the width of the message chart; the last slot is today.
	chartDays = 7

	recentMessagesLimit = 5
)

type AdminVerifyInput struct {
	SecretKey string `json:"secretKey" validate:"required"`
}

// HandleAdminVerify exchanges the admin secret for a short-lived admin session.
func HandleAdminVerify(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input AdminVerifyInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if subtle.ConstantTimeCompare([]byte(input.SecretKey), []byte(deps.Config.AdminSecretKey)) != 1 {
			logx.Warn("Admin verification failed", "ip", logx.AnonymizeIP(r.RemoteAddr))
			resp.RespondError(w, r, errs.NewError(errs.ErrAdminUnauthorized))
			return
		}

		if err := deps.startSession(w, adminCookieName, &jwt.Payload{Role: jwt.RoleAdmin}); err != nil {
			logx.Error(err, "admin: token generation failed")
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		resp.RespondMessage(w, r, http.StatusOK, "Admin login successfully", nil)
	}
}

// HandleAdminLogout expires the admin session cookie.
func HandleAdminLogout(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jwt.ClearSessionCookie(w, adminCookieName, !deps.Config.IsDevelopment())
		resp.RespondMessage(w, r, http.StatusOK, "Admin logout successfully", nil)
	}
}

// DashboardStats holds the global totals shown on the dashboard.
type DashboardStats struct {
	GroupsCount   int64 `json:"groupsCount"`
	UserCount     int64 `json:"userCount"`
	MessagesCount int64 `json:"messagesCount"`
	ChatCount     int64 `json:"chatCount"`
	MessagesChart []int `json:"messagesChart,omitempty"`
}

func newDashboardStats(c store.Counts) DashboardStats {
	return DashboardStats{
		GroupsCount:   c.Groups,
		UserCount:     c.Users,
		MessagesCount: c.Messages,
		ChatCount:     c.Chats,
	}
}

type adminSender struct {
	ID     string `json:"_id,omitempty"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// HandleAdminDashboard returns the totals and the five most recent messages.
func HandleAdminDashboard(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counts, err := deps.DB.Counts(r.Context())
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown, err))
			return
		}

		recent, err := deps.DB.RecentMessages(r.Context(), recentMessagesLimit)
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown, err))
			return
		}

		recentMessages := lo.Map(recent, func(m store.AdminMessage, _ int) map[string]any {
			return map[string]any{
				"_id":     m.ID,
				"content": m.Content,
				"sender":  adminSender{Name: m.SenderName, Avatar: m.SenderAvatar},
				"chat": map[string]any{
					"name":      m.ChatName,
					"groupChat": m.GroupChat,
				},
				"createdAt": m.CreatedAt,
			}
		})

		resp.RespondSuccess(w, r, map[string]any{
			"adminData": map[string]any{
				"stats":          newDashboardStats(counts),
				"recentMessages": recentMessages,
			},
		})
	}
}

// HandleAdminUsers lists every user with their group and direct chat counts.
func HandleAdminUsers(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := deps.DB.ListUsersWithCounts(r.Context())
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown, err))
			return
		}

		users := lo.Map(rows, func(u store.UserWithCounts, _ int) map[string]any {
			return map[string]any{
				"_id":      u.ID,
				"name":     u.Name,
				"username": u.Username,
				"avatar":   u.Avatar,
				"groups":   u.Groups,
				"friends":  u.Friends,
			}
		})

		resp.RespondSuccess(w, r, map[string]any{
			"users": users,
		})
	}
}

// HandleAdminChats lists every chat with its members, creator and totals.
func HandleAdminChats(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		chats, err := deps.DB.ListAllChats(r.Context())
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown, err))
			return
		}

		var profiles []store.MemberProfile
		if len(chats) > 0 {
			ids := lo.Map(chats, func(c store.ChatSummary, _ int) string { return c.ID })
			profiles, err = deps.DB.ListMemberProfiles(r.Context(), ids)
			if err != nil {
				resp.RespondError(w, r, errs.NewError(errs.ErrUnknown, err))
				return
			}
		}

		resp.RespondSuccess(w, r, map[string]any{
			"chats": adminChatRows(chats, profiles),
		})
	}
}

func adminChatRows(chats []store.ChatSummary, profiles []store.MemberProfile) []map[string]any {
	byChat := lo.GroupBy(profiles, func(p store.MemberProfile) string { return p.ChatID })

	return lo.Map(chats, func(c store.ChatSummary, _ int) map[string]any {
		members := lo.Map(byChat[c.ID], func(p store.MemberProfile, _ int) adminSender {
			return adminSender{ID: p.ID, Name: p.Name, Avatar: p.Avatar}
		})

		creator := adminSender{Name: "None"}
		if c.CreatorName.Valid {
			creator = adminSender{Name: c.CreatorName.String, Avatar: c.CreatorAvatar.String}
		}

		return map[string]any{
			"_id":           c.ID,
			"name":          c.Name,
			"groupChat":     c.GroupChat,
			"avatar":        lo.Map(lo.Subset(members, 0, 3), func(m adminSender, _ int) string { return m.Avatar }),
			"members":       members,
			"creator":       creator,
			"totalMembers":  c.TotalMembers,
			"totalMessages": c.TotalMessages,
		}
	})
}

// HandleAdminMessages lists every message with its sender and chat.
func HandleAdminMessages(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := deps.DB.ListAllMessages(r.Context())
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown, err))
			return
		}

		messages := lo.Map(rows, func(m store.AdminMessage, _ int) map[string]any {
			return map[string]any{
				"_id":         m.ID,
				"content":     m.Content,
				"attachments": m.Attachments,
				"createdAt":   m.CreatedAt,
				"chat":        m.ChatID,
				"groupChat":   m.GroupChat,
				"sender":      adminSender{ID: m.SenderID, Name: m.SenderName, Avatar: m.SenderAvatar},
			}
		})

		resp.RespondSuccess(w, r, map[string]any{
			"messages": messages,
		})
	}
}

// HandleAdminStats returns the totals and the message count of each of the last seven days.
func HandleAdminStats(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counts, err := deps.DB.Counts(r.Context())
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown, err))
			return
		}

		now := time.Now()
		times, err := deps.DB.MessageTimesSince(r.Context(), now.Add(-chartDays*24*time.Hour), now)
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown, err))
			return
		}

		stats := newDashboardStats(counts)
		stats.MessagesChart = messageChart(now, times)

		resp.RespondSuccess(w, r, map[string]any{
			"stats": stats,
		})
	}
}

// messageChart buckets message times into chartDays slots of 24 hours counted back from
// now. Slot chartDays-1 holds the most recent 24 hours.
func messageChart(now time.Time, times []time.Time) []int {
	chart := make([]int, chartDays)
	for _, t := range times {
		index := int(now.Sub(t) / (24 * time.Hour))
		if index >= 0 && index < chartDays && !t.After(now) {
			chart[chartDays-1-index]++
		}
	}
	return chart
}
