/*
Package handler provides HTTP handler functions for user authentication and management.
*/
package handler

import (
	"context"
	"net/http"
	"regexp"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"chatserver/internal/app/storage"
	"chatserver/internal/app/store"
	"chatserver/internal/pkg/auth/jwt"
	"chatserver/internal/pkg/errs"
	"chatserver/internal/pkg/logx"
	"chatserver/internal/pkg/req"
	"chatserver/internal/pkg/resp"
)

var (
	usernameRegex = regexp.MustCompile(`^[A-Za-z0-9_.]{3,30}$`)
)

type RegisterInput struct {
	Name     string `json:"name" validate:"required,max=50"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Bio      string `json:"bio" validate:"required,max=200"`
}

// UserView is the account representation returned to its owner.
type UserView struct {
	ID        string           `json:"_id"`
	Name      string           `json:"name"`
	Username  string           `json:"username"`
	Bio       string           `json:"bio"`
	Avatar    store.Attachment `json:"avatar"`
	CreatedAt time.Time        `json:"createdAt"`
}

func newUserView(u store.User) UserView {
	return UserView{
		ID:        u.ID,
		Name:      u.Name,
		Username:  u.Username,
		Bio:       u.Bio,
		Avatar:    u.Avatar(),
		CreatedAt: u.CreatedAt,
	}
}

// HandleRegister creates an account from a multipart form carrying the profile fields
// and exactly one avatar image, then starts a session.
func HandleRegister(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if payload := jwt.GetPayloadFromContext(r); payload != nil && !payload.IsAdmin() {
			resp.RespondError(w, r, errs.NewError(errs.ErrAlreadyLoggedIn))
			return
		}

		if customErr := req.SetupMultipart(w, r); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		input := RegisterInput{
			Name:     strings.TrimSpace(r.FormValue("name")),
			Username: strings.TrimSpace(r.FormValue("username")),
			Password: r.FormValue("password"),
			Bio:      strings.TrimSpace(r.FormValue("bio")),
		}
		if customErr := req.Validate(&input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if !usernameRegex.MatchString(input.Username) {
			resp.RespondError(w, r, errs.NewError(errs.ErrValidationFailed, "username"))
			return
		}

		files := r.MultipartForm.File["avatar"]
		if len(files) == 0 {
			resp.RespondError(w, r, errs.NewError(errs.ErrFileRequired))
			return
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown, err))
			return
		}

		uploaded, customErr := storage.UploadFiles(r.Context(), deps.StorageService, storage.KindAvatar, files[:1])
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}
		avatar := uploaded[0]

		user, err := deps.DB.CreateUser(r.Context(), store.CreateUserParams{
			Name:         input.Name,
			Username:     input.Username,
			PasswordHash: string(hashedPassword),
			Bio:          input.Bio,
			AvatarKey:    avatar.PublicID,
			AvatarURL:    avatar.URL,
		})
		if err != nil {
			deleteBlobs(deps, avatar.PublicID)

			if store.IsUniqueViolation(err) {
				logx.Warn("registration conflict: username already exists", "username", input.Username)
				resp.RespondError(w, r, errs.NewError(errs.ErrUserAlreadyExists))
				return
			}

			logx.Error(err, "failed to create user in database")
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		if err := deps.startSession(w, deps.Auth.CookieName, &jwt.Payload{ID: user.ID, Role: jwt.RoleUser}); err != nil {
			logx.Error(err, "failed to generate token after registration", "user_id", user.ID)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		logx.Info("User registered", "user_id", user.ID)
		resp.RespondMessage(w, r, http.StatusCreated, "User created", map[string]any{
			"user": newUserView(user),
		})
	}
}

type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin verifies user credentials and issues the session cookie.
func HandleLogin(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if payload := jwt.GetPayloadFromContext(r); payload != nil && !payload.IsAdmin() {
			resp.RespondError(w, r, errs.NewError(errs.ErrAlreadyLoggedIn))
			return
		}

		var input LoginInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		user, err := deps.DB.GetUserByUsername(r.Context(), input.Username)
		if err != nil {
			if !store.IsNotFound(err) {
				logx.Error(err, "login: user fetch failed", "username", input.Username)
				resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
				return
			}
			logx.Warn("login: unknown username", "username", input.Username)
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidCredentials))
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
			logx.Warn("login: password mismatch", "username", input.Username)
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidCredentials))
			return
		}

		if err := deps.startSession(w, deps.Auth.CookieName, &jwt.Payload{ID: user.ID, Role: jwt.RoleUser}); err != nil {
			logx.Error(err, "login: jwt generation failed", "user_id", user.ID)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		resp.RespondMessage(w, r, http.StatusOK, "Welcome back, "+user.Name, map[string]any{
			"user": newUserView(user),
		})
	}
}

// HandleGetProfile returns the authenticated user's account.
func HandleGetProfile(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := jwt.UserID(r)

		user, err := deps.DB.GetUserByID(r.Context(), userID)
		if err != nil {
			if store.IsNotFound(err) {
				logx.Warn("get_profile: user not found", "user_id", userID)
				resp.RespondError(w, r, errs.NewError(errs.ErrUserNotFound))
				return
			}
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown, err))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"user": newUserView(user),
		})
	}
}

// HandleLogout expires the session cookie.
func HandleLogout(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jwt.ClearSessionCookie(w, deps.Auth.CookieName, !deps.Config.IsDevelopment())
		resp.RespondMessage(w, r, http.StatusOK, "Logged out successfully", nil)
	}
}

// deleteBlobs removes stored objects in the background; failures are only logged.
func deleteBlobs(deps *AppDeps, keys ...string) {
	if len(keys) == 0 {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := deps.StorageService.Delete(ctx, keys...); err != nil {
			logx.Error(err, "failed to delete stored objects", "count", len(keys))
		}
	}()
}
