package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Vedant005/SkillBridge-Backend/internal/services"
	"github.com/Vedant005/SkillBridge-Backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type FreelancerHandler struct {
	*BaseHandler
	freelancerService services.FreelancerService
	authService       services.AuthService
}

func NewFreelancerHandler(base *BaseHandler, freelancerService services.FreelancerService, authService services.AuthService) *FreelancerHandler {
	return &FreelancerHandler{
		BaseHandler:       base,
		freelancerService: freelancerService,
		authService:       authService,
	}
}

func (h *FreelancerHandler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	freelancers := rg.Group("/freelancer")
	{
		freelancers.POST("/register", h.Register)
		freelancers.POST("/login", h.Login)
		freelancers.POST("/logout", authMW, h.Logout)
		freelancers.POST("/refresh-token", h.RefreshToken)
		freelancers.PATCH("/update-details", authMW, h.UpdateDetails)
		freelancers.PATCH("/upload-resume", authMW, h.UploadResume)
		freelancers.GET("/:id", h.Get)
		freelancers.DELETE("/:id", h.Delete)
	}
}

// Register accepts a multipart form so the resume file can ride along with
// the profile fields. Skills arrive comma separated or as repeated fields.
func (h *FreelancerHandler) Register(c *gin.Context) {
	req := dto.RegisterFreelancerRequest{
		FullName:        c.PostForm("fullName"),
		Email:           c.PostForm("email"),
		Password:        c.PostForm("password"),
		Location:        c.PostForm("location"),
		ExperienceLevel: c.PostForm("experience_level"),
		Occupation:      c.PostForm("occupation"),
		Description:     c.PostForm("description"),
		Qualification:   c.PostForm("qualification"),
		Skills:          parseSkills(c),
	}
	if rate, err := strconv.ParseFloat(c.PostForm("hourly_rate"), 64); err == nil {
		req.HourlyRate = rate
	}

	if !h.validate(c, &req) {
		return
	}

	var resume *dto.ResumeUpload
	if fileHeader, err := c.FormFile("resume"); err == nil {
		file, err := fileHeader.Open()
		if err == nil {
			defer file.Close()
			resume = &dto.ResumeUpload{
				File:     file,
				Filename: fileHeader.Filename,
				Size:     fileHeader.Size,
			}
		}
	}

	freelancer, err := h.freelancerService.Register(c.Request.Context(), &req, resume)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusCreated, freelancer, "Freelancer registered successfully")
}

func (h *FreelancerHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	account, pair, err := h.authService.Login(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	freelancer, err := h.freelancerService.Get(account.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	setAccessTokenCookie(c, pair.AccessToken)

	h.Respond(c, http.StatusOK, gin.H{
		"freelancer":   freelancer,
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	}, "Freelancer logged in successfully")
}

func (h *FreelancerHandler) Logout(c *gin.Context) {
	accountID, ok := h.GetAccountID(c)
	if !ok {
		return
	}

	if err := h.authService.Logout(accountID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	clearAccessTokenCookie(c)

	h.Respond(c, http.StatusOK, gin.H{}, "Freelancer logged out successfully")
}

func (h *FreelancerHandler) RefreshToken(c *gin.Context) {
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

func (h *FreelancerHandler) UpdateDetails(c *gin.Context) {
	accountID, ok := h.GetAccountID(c)
	if !ok {
		return
	}

	var req dto.UpdateFreelancerRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	freelancer, err := h.freelancerService.Update(accountID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, freelancer, "Freelancer updated successfully")
}

func (h *FreelancerHandler) UploadResume(c *gin.Context) {
	accountID, ok := h.GetAccountID(c)
	if !ok {
		return
	}

	var resume *dto.ResumeUpload
	if fileHeader, err := c.FormFile("resume"); err == nil {
		file, err := fileHeader.Open()
		if err == nil {
			defer file.Close()
			resume = &dto.ResumeUpload{
				File:     file,
				Filename: fileHeader.Filename,
				Size:     fileHeader.Size,
			}
		}
	}

	freelancer, err := h.freelancerService.UploadResume(c.Request.Context(), accountID, resume)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, freelancer, "Resume uploaded successfully")
}

func (h *FreelancerHandler) Get(c *gin.Context) {
	freelancer, err := h.freelancerService.Get(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, freelancer, "Freelancer fetched successfully")
}

func (h *FreelancerHandler) Delete(c *gin.Context) {
	if err := h.freelancerService.Delete(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, gin.H{}, "Freelancer deleted successfully")
}

func parseSkills(c *gin.Context) []string {
	if values, ok := c.GetPostFormArray("skills"); ok && len(values) > 1 {
		return values
	}

	raw := c.PostForm("skills")
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}
