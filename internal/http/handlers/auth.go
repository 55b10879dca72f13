package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	types "github.com/fedaykin-adel/sietch-shop/internal/domain"
	"github.com/fedaykin-adel/sietch-shop/internal/http/middleware"
	"github.com/fedaykin-adel/sietch-shop/internal/http/response"
	"github.com/fedaykin-adel/sietch-shop/internal/services"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type userView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func viewOf(u *types.User) userView {
	return userView{ID: u.ID.String(), Name: u.Name, Email: u.Email}
}

// POST /register
func (ah *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.Email == "" || req.Password == "" {
		response.RespondError(c, http.StatusBadRequest, errors.New("name, email and password are required"))
		return
	}
	user, token, err := ah.authService.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			response.RespondError(c, http.StatusConflict, err)
			return
		}
		response.RespondError(c, http.StatusInternalServerError, errors.New("registration failed"))
		return
	}
	ah.setSessionCookie(c, token)
	response.RespondCreated(c, gin.H{"ok": true, "user": viewOf(user)})
}

// POST /login
func (ah *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		response.RespondError(c, http.StatusBadRequest, errors.New("email and password are required"))
		return
	}
	user, token, err := ah.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			response.RespondError(c, http.StatusUnauthorized, err)
			return
		}
		response.RespondError(c, http.StatusInternalServerError, errors.New("login failed"))
		return
	}
	ah.setSessionCookie(c, token)
	response.RespondOK(c, gin.H{"ok": true, "user": viewOf(user)})
}

// POST /logout
func (ah *AuthHandler) Logout(c *gin.Context) {
	ah.clearSessionCookie(c)
	response.RespondOK(c, gin.H{"ok": true})
}

// GET /me always answers 200. An absent or stale session answers
// user:null, and a stale cookie is cleared.
func (ah *AuthHandler) Me(c *gin.Context) {
	token, err := c.Cookie(middleware.SessionCookieName)
	if err != nil || token == "" {
		response.RespondOK(c, gin.H{"user": nil})
		return
	}
	identity, err := ah.authService.VerifyToken(token)
	if err != nil {
		ah.clearSessionCookie(c)
		response.RespondOK(c, gin.H{"user": nil})
		return
	}
	response.RespondOK(c, gin.H{"user": userView{
		ID:    identity.SubjectID.String(),
		Name:  identity.Name,
		Email: identity.Email,
	}})
}

func (ah *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, token, int(ah.authService.SessionTTL().Seconds()), "/", "", false, true)
}

func (ah *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
}
