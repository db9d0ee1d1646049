package handlers

import (
	"net/http"
	"trade_manager/internal/models"
	"trade_manager/internal/services"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	clientService services.ClientService
}

func NewClientHandler(clientService services.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

func (h *ClientHandler) ListClients(c *gin.Context) {
	var typeFilter *models.ClientType
	if raw := c.Query("type"); raw != "" {
		t := models.ClientType(raw)
		if t != models.ClientIndividual && t != models.ClientLegalEntity {
			c.JSON(http.StatusBadRequest, gin.H{"error": services.ErrInvalidClientType.Error()})
			return
		}
		typeFilter = &t
	}

	clients, err := h.clientService.ListClients(typeFilter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clients": clients})
}

func (h *ClientHandler) GetClient(c *gin.Context) {
	clientID, err := parseIDParam(c, "id")
	if err != nil {
		return
	}

	client, err := h.clientService.GetClient(clientID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) CreateClient(c *gin.Context) {
	var in services.ClientInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format"})
		return
	}

	client, err := h.clientService.CreateClient(in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, client)
}

func (h *ClientHandler) UpdateClient(c *gin.Context) {
	clientID, err := parseIDParam(c, "id")
	if err != nil {
		return
	}

	var in services.ClientInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format"})
		return
	}

	if err := h.clientService.EditClient(clientID, in); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *ClientHandler) DeleteClient(c *gin.Context) {
	clientID, err := parseIDParam(c, "id")
	if err != nil {
		return
	}

	if err := h.clientService.DeleteClient(clientID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
