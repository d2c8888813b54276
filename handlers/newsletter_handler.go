package handlers

import (
	"net/http"

	"newshub/helper"
	"newshub/middleware"
	"newshub/models"
	"newshub/services"

	"github.com/gin-gonic/gin"
)

type NewsletterHandler struct {
	newsletterService services.NewsletterService
}

func NewNewsletterHandler(newsletterService services.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{newsletterService: newsletterService}
}

func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req models.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	if err := h.newsletterService.Subscribe(req); err != nil {
		helper.SendError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Subscribed successfully"})
}

// Send handles POST /api/admin/newsletter, dispatching a newsletter to
// every subscriber.
func (h *NewsletterHandler) Send(c *gin.Context) {
	actor, _ := middleware.GetActor(c)

	var req models.NewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	recipients, err := h.newsletterService.SendNewsletter(actor, req)
	if err != nil {
		helper.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":    "Newsletter sent successfully",
		"recipients": recipients,
	})
}
