package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/Vedant005/SkillBridge-Backend/internal/services"
	"github.com/Vedant005/SkillBridge-Backend/internal/services/dto"
	"github.com/Vedant005/SkillBridge-Backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type GigHandler struct {
	*BaseHandler
	gigService services.GigService
}

func NewGigHandler(base *BaseHandler, gigService services.GigService) *GigHandler {
	return &GigHandler{
		BaseHandler: base,
		gigService:  gigService,
	}
}

func (h *GigHandler) RegisterRoutes(rg *gin.RouterGroup) {
	gigs := rg.Group("/gigs")
	{
		gigs.GET("/", h.List)
		gigs.GET("/chat", h.Chat)
		gigs.GET("/client/:clientId", h.ListByClient)
		gigs.GET("/:gigId", h.Get)
		gigs.POST("/create", h.Create)
		gigs.PATCH("/update", h.Update)
		gigs.DELETE("/delete", h.Delete)
		gigs.POST("/predict-price", h.PredictPrice)
	}
}

func (h *GigHandler) List(c *gin.Context) {
	page, pageSize := ParsePagination(c)
	recommendFor := c.Query("gigId")

	result, err := h.gigService.List(c.Request.Context(), page, pageSize, recommendFor)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, result, "Gigs fetched successfully")
}

func (h *GigHandler) Get(c *gin.Context) {
	gig, err := h.gigService.Get(c.Param("gigId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, gig, "Gig fetched successfully with sentiment")
}

func (h *GigHandler) ListByClient(c *gin.Context) {
	gigs, err := h.gigService.ListByClient(c.Param("clientId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, gigs, "Gigs fetched successfully")
}

func (h *GigHandler) Create(c *gin.Context) {
	var req dto.CreateGigRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	gig, err := h.gigService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusCreated, gig, "Gig added successfully")
}

func (h *GigHandler) Update(c *gin.Context) {
	var req dto.UpdateGigRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	gig, err := h.gigService.Update(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, gig, "Gig updated successfully")
}

func (h *GigHandler) Delete(c *gin.Context) {
	var req dto.DeleteGigRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.gigService.Delete(req.GigID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, gin.H{}, "Gig deleted successfully")
}

// PredictPrice forwards the raw feature payload to the pricing service.
func (h *GigHandler) PredictPrice(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil || len(payload) == 0 {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Content needed!"))
		return
	}

	prediction, err := h.gigService.PredictPrice(c.Request.Context(), json.RawMessage(payload))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, prediction, "Predicted Price for the gig has been calculated")
}

func (h *GigHandler) Chat(c *gin.Context) {
	answer, err := h.gigService.Chat(c.Request.Context(), c.Query("query"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, dto.ChatResponse{AIResponse: answer}, "Chatbot response")
}
