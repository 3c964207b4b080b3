package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/ngxblog/internal/blog/domain"
	"github.com/aussiebroadwan/ngxblog/internal/blog/service"
	"github.com/aussiebroadwan/ngxblog/pkg/blogsdk"
	"github.com/aussiebroadwan/ngxblog/pkg/httpx"
	"github.com/aussiebroadwan/ngxblog/pkg/slogx"
)

type UsersHandler struct {
	UserService *service.UserService
}

func userDTO(u domain.User) blogsdk.UserDTO {
	return blogsdk.UserDTO{ID: u.ID, Email: u.Email, FullName: u.FullName}
}

// HandleRegister creates an account.
//
//	@Summary		Register
//	@Description	Creates an account with a freshly salted PBKDF2 hash. Accepts JSON or form bodies.
//	@Tags			Users
//	@Accept			json,x-www-form-urlencoded
//	@Produce		json
//	@Param			request	body		blogsdk.RegisterRequest	true	"Account details"
//	@Success		200		{object}	blogsdk.UserResponse
//	@Failure		422		{object}	blogsdk.ErrorResponse	"Blank field or email already taken"
//	@Failure		500		{object}	blogsdk.ErrorResponse
//	@Router			/api/register [post].
func (h *UsersHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req blogsdk.RegisterRequest
	if !decodeInto(w, r, &req) {
		return
	}

	u, err := h.UserService.Register(r.Context(), service.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, blogsdk.UserResponse{User: userDTO(u)})
}

// HandleLogin exchanges credentials for a session token.
//
//	@Summary		Login
//	@Description	Verifies email and password and issues a 60 day HS256 session token.
//	@Tags			Users
//	@Accept			json,x-www-form-urlencoded
//	@Produce		json
//	@Param			request	body		blogsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	blogsdk.UserResponse	"User with token"
//	@Failure		422		{object}	blogsdk.ErrorResponse	"Blank field or invalid credentials"
//	@Router			/api/login [post].
func (h *UsersHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req blogsdk.LoginRequest
	if !decodeInto(w, r, &req) {
		return
	}

	u, token, err := h.UserService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	dto := userDTO(u)
	dto.Token = token
	httpx.WriteJSON(w, http.StatusOK, blogsdk.UserResponse{User: dto})
}

// HandleCurrentUser returns the account behind the session token.
//
//	@Summary		Current user
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	blogsdk.CurrentUserResponse
//	@Failure		401	{object}	blogsdk.ErrorResponse		"Invalid or missing token"
//	@Failure		500	{object}	blogsdk.CurrentUserResponse	"loginOk false when the account is gone"
//	@Router			/api/user [get].
func (h *UsersHandler) HandleCurrentUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := identity(w, r)
	if !ok {
		return
	}

	u, err := h.UserService.GetByUsername(ctx, id.Username)
	if err != nil {
		if !errors.Is(err, service.ErrUserNotFound) {
			slogx.FromContext(ctx).Error("failed to load user", "error", err)
		}
		httpx.WriteJSON(w, http.StatusInternalServerError, blogsdk.CurrentUserResponse{LoginOK: false})
		return
	}

	dto := userDTO(u)
	httpx.WriteJSON(w, http.StatusOK, blogsdk.CurrentUserResponse{
		LoginOK:  true,
		JWTToken: httpx.TokenFromContext(ctx),
		User:     &dto,
	})
}

// HandleChangePassword replaces the caller's password.
//
//	@Summary		Change password
//	@Description	Checks the current password and sets a new one. The new password must be at least 12 characters with a digit, a symbol, a lowercase and an uppercase letter.
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			json,x-www-form-urlencoded
//	@Produce		json
//	@Param			request	body		blogsdk.ChangePasswordRequest	true	"Current and new password"
//	@Success		200		{object}	blogsdk.ResultResponse
//	@Failure		401		{object}	blogsdk.ErrorResponse
//	@Failure		422		{object}	blogsdk.ErrorResponse	"Blank field, weak new password or wrong current password"
//	@Router			/api/changePassword [post].
func (h *UsersHandler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	var req blogsdk.ChangePasswordRequest
	if !decodeInto(w, r, &req) {
		return
	}

	if err := h.UserService.ChangePassword(r.Context(), id.Username, req.Password, req.NewPassword); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, blogsdk.ResultResponse{Result: "Success!"})
}
