package routes

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"adipo-server/internal/repos"
	pkgauth "adipo-server/pkg/auth"
	pkghttpx "adipo-server/pkg/httpx"
)

type adminLoginReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AdminLogin handles POST /api/admin/login. Passwords are verified against
// the stored bcrypt hash; a valid pair yields a signed admin token.
func AdminLogin(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		var req adminLoginReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			pkghttpx.WriteError(w, r, pkghttpx.BadRequest("invalid json", err))
			return
		}
		if err := validate.Struct(req); err != nil {
			pkghttpx.WriteError(w, r, pkghttpx.Validation("username and password are required", fieldErrors(err)))
			return
		}
		admin, err := d.Users.GetAdmin(ctx, req.Username)
		if err != nil {
			if errors.Is(err, repos.ErrNotFound) {
				pkghttpx.WriteError(w, r, pkghttpx.Unauthorized("invalid credentials", nil))
				return
			}
			pkghttpx.WriteError(w, r, pkghttpx.Internal("failed to look up admin", err))
			return
		}
		if !pkgauth.CheckPassword(admin.PasswordHash, req.Password) {
			pkghttpx.WriteError(w, r, pkghttpx.Unauthorized("invalid credentials", nil))
			return
		}
		token, err := d.Tokens.Issue(admin.Username, pkgauth.RoleAdmin, time.Now().UTC())
		if err != nil {
			pkghttpx.WriteError(w, r, pkghttpx.Internal("failed to issue token", err))
			return
		}
		pkghttpx.WriteJSON(w, http.StatusOK, map[string]any{
			"token":   token,
			"user":    map[string]string{"username": admin.Username},
			"message": "Login successful",
		})
	}
}

type userLoginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserLogin handles POST /api/user/login against the users table.
func UserLogin(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		var req userLoginReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			pkghttpx.WriteError(w, r, pkghttpx.BadRequest("invalid json", err))
			return
		}
		if err := validate.Struct(req); err != nil {
			pkghttpx.WriteError(w, r, pkghttpx.Validation("email and password are required", fieldErrors(err)))
			return
		}
		user, err := d.Users.GetUserByEmail(ctx, req.Email)
		if err != nil {
			if errors.Is(err, repos.ErrNotFound) {
				pkghttpx.WriteError(w, r, pkghttpx.Unauthorized("invalid credentials", nil))
				return
			}
			pkghttpx.WriteError(w, r, pkghttpx.Internal("failed to look up user", err))
			return
		}
		if !pkgauth.CheckPassword(user.PasswordHash, req.Password) {
			pkghttpx.WriteError(w, r, pkghttpx.Unauthorized("invalid credentials", nil))
			return
		}
		token, err := d.Tokens.Issue(user.Email, pkgauth.RoleUser, time.Now().UTC())
		if err != nil {
			pkghttpx.WriteError(w, r, pkghttpx.Internal("failed to issue token", err))
			return
		}
		pkghttpx.WriteJSON(w, http.StatusOK, map[string]any{
			"token":   token,
			"user":    map[string]any{"id": user.ID, "name": user.Name, "email": user.Email},
			"message": "Login successful",
		})
	}
}

type userRegisterReq struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// UserRegister handles POST /api/user/register. Duplicate emails conflict.
func UserRegister(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		var req userRegisterReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			pkghttpx.WriteError(w, r, pkghttpx.BadRequest("invalid json", err))
			return
		}
		if err := validate.Struct(req); err != nil {
			pkghttpx.WriteError(w, r, pkghttpx.Validation("name, email, and password are required", fieldErrors(err)))
			return
		}
		hash, err := pkgauth.HashPassword(req.Password)
		if err != nil {
			pkghttpx.WriteError(w, r, pkghttpx.Internal("failed to hash password", err))
			return
		}
		user, err := d.Users.CreateUser(ctx, req.Name, req.Email, hash)
		if err != nil {
			if errors.Is(err, repos.ErrDuplicateEmail) {
				pkghttpx.WriteError(w, r, pkghttpx.Conflict("email already registered", nil))
				return
			}
			pkghttpx.WriteError(w, r, pkghttpx.Internal("failed to create user", err))
			return
		}
		token, err := d.Tokens.Issue(user.Email, pkgauth.RoleUser, time.Now().UTC())
		if err != nil {
			pkghttpx.WriteError(w, r, pkghttpx.Internal("failed to issue token", err))
			return
		}
		pkghttpx.WriteJSON(w, http.StatusOK, map[string]any{
			"token":   token,
			"user":    map[string]any{"id": user.ID, "name": user.Name, "email": user.Email},
			"message": "Registration successful",
		})
	}
}
