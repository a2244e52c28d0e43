package handlers

import (
	"net/http"

	"github.com/Vedant005/SkillBridge-Backend/internal/middleware"
	"github.com/Vedant005/SkillBridge-Backend/internal/services"
	"github.com/Vedant005/SkillBridge-Backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	*BaseHandler
	clientService services.ClientService
	authService   services.AuthService
}

func NewClientHandler(base *BaseHandler, clientService services.ClientService, authService services.AuthService) *ClientHandler {
	return &ClientHandler{
		BaseHandler:   base,
		clientService: clientService,
		authService:   authService,
	}
}

func (h *ClientHandler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	clients := rg.Group("/client")
	{
		clients.POST("/register", h.Register)
		clients.POST("/login", h.Login)
		clients.POST("/logout", authMW, h.Logout)
		clients.POST("/refresh-token", h.RefreshToken)
		clients.GET("/", h.List)
		clients.GET("/:id", h.Get)
		clients.PUT("/:id", h.Update)
		clients.PUT("/:id/add-gig", h.AddGig)
		clients.PUT("/:id/remove-gig", h.RemoveGig)
		clients.DELETE("/:id", h.Delete)
	}
}

func (h *ClientHandler) Register(c *gin.Context) {
	var req dto.RegisterClientRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	client, err := h.clientService.Register(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusCreated, client, "Client registered successfully")
}

func (h *ClientHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	account, pair, err := h.authService.Login(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	client, err := h.clientService.Get(account.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	setAccessTokenCookie(c, pair.AccessToken)

	h.Respond(c, http.StatusOK, gin.H{
		"client":       client,
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	}, "Client logged in successfully")
}

func (h *ClientHandler) Logout(c *gin.Context) {
	accountID, ok := h.GetAccountID(c)
	if !ok {
		return
	}

	if err := h.authService.Logout(accountID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	clearAccessTokenCookie(c)

	h.Respond(c, http.StatusOK, gin.H{}, "Client logged out successfully")
}

func (h *ClientHandler) RefreshToken(c *gin.Context) {
	pair, err := h.authService.Refresh(extractRefreshToken(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	setAccessTokenCookie(c, pair.AccessToken)

	h.Respond(c, http.StatusOK, gin.H{
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	}, "Access token refreshed")
}

func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.clientService.List()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, clients, "Clients fetched successfully")
}

func (h *ClientHandler) Get(c *gin.Context) {
	client, err := h.clientService.Get(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, client, "Client fetched successfully")
}

func (h *ClientHandler) Update(c *gin.Context) {
	var req dto.UpdateClientRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	client, err := h.clientService.Update(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, client, "Client updated successfully")
}

func (h *ClientHandler) AddGig(c *gin.Context) {
	var req dto.AttachGigRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	client, err := h.clientService.AddGig(c.Param("id"), req.GigID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, client, "Gig added successfully")
}

func (h *ClientHandler) RemoveGig(c *gin.Context) {
	var req dto.AttachGigRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	client, err := h.clientService.RemoveGig(c.Param("id"), req.GigID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, client, "Gig removed successfully")
}

func (h *ClientHandler) Delete(c *gin.Context) {
	if err := h.clientService.Delete(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, gin.H{}, "Client deleted successfully")
}

// Cookie and refresh-token plumbing shared by both account kinds.

func setAccessTokenCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AccessTokenCookie, token, 24*60*60, "/", "", true, true)
}

func clearAccessTokenCookie(c *gin.Context) {
	c.SetCookie(middleware.AccessTokenCookie, "", -1, "/", "", true, true)
}

// extractRefreshToken reads the refresh token from the cookie or, failing
// that, from the request body.
func extractRefreshToken(c *gin.Context) string {
	if cookie, err := c.Cookie("refreshToken"); err == nil && cookie != "" {
		return cookie
	}

	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err == nil {
		return req.RefreshToken
	}
	return ""
}
