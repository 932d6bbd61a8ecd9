package http

import (
	"net/http"

	"github.com/PritamDhobale/CreatorHub/pkg/logger"
	"github.com/PritamDhobale/CreatorHub/services/workflow/internal/entity"
	"github.com/PritamDhobale/CreatorHub/services/workflow/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminUseCase usecase.AdminUseCase
	logger       *logger.Logger
}

func NewAdminHandler(adminUseCase usecase.AdminUseCase, logger *logger.Logger) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
		logger:       logger,
	}
}

type CreateClientRequest struct {
	Name             string   `json:"name" binding:"required"`
	Description      string   `json:"description"`
	AssignedIdeators []string `json:"assigned_ideators"`
}

// CreateClient godoc
// @Summary      Create a new client
// @Description  Create a client brand and optionally assign ideators to it
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateClientRequest true "Client details"
// @Success      201  {object}  entity.Client
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/clients [post]
func (h *AdminHandler) CreateClient(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client, err := h.adminUseCase.CreateClient(req.Name, req.Description, req.AssignedIdeators)
	if err != nil {
		h.logger.Error("Failed to create client: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, client)
}

// ListClients godoc
// @Summary      List clients
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entity.Client
// @Router       /admin/clients [get]
func (h *AdminHandler) ListClients(c *gin.Context) {
	clients, err := h.adminUseCase.ListClients()
	if err != nil {
		h.logger.Error("Failed to list clients: %v", err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clients": clients})
}

// GetClient godoc
// @Summary      Get a client
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Client ID"
// @Success      200  {object}  entity.Client
// @Failure      404  {object}  map[string]string
// @Router       /admin/clients/{id} [get]
func (h *AdminHandler) GetClient(c *gin.Context) {
	client, err := h.adminUseCase.GetClient(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

type UpdateClientStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active inactive"`
}

// UpdateClientStatus godoc
// @Summary      Activate or deactivate a client
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Client ID"
// @Param        request body UpdateClientStatusRequest true "New status"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/clients/{id}/status [put]
func (h *AdminHandler) UpdateClientStatus(c *gin.Context) {
	var req UpdateClientStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.adminUseCase.UpdateClientStatus(c.Param("id"), entity.ClientStatus(req.Status)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client status updated"})
}

type CreateIdeatorRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// CreateIdeator godoc
// @Summary      Create an ideator
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateIdeatorRequest true "Ideator details"
// @Success      201  {object}  entity.Ideator
// @Failure      400  {object}  map[string]string
// @Router       /admin/ideators [post]
func (h *AdminHandler) CreateIdeator(c *gin.Context) {
	var req CreateIdeatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ideator, err := h.adminUseCase.CreateIdeator(req.Name, req.Email)
	if err != nil {
		h.logger.Error("Failed to create ideator: %v", err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ideator)
}

// GetIdeator godoc
// @Summary      Get an ideator with assigned clients
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        ideator_id path string true "Ideator ID"
// @Success      200  {object}  entity.Ideator
// @Failure      404  {object}  map[string]string
// @Router       /admin/ideators/{ideator_id} [get]
func (h *AdminHandler) GetIdeator(c *gin.Context) {
	ideator, err := h.adminUseCase.GetIdeator(c.Param("ideator_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ideator)
}

// ListIdeators godoc
// @Summary      List ideators
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entity.Ideator
// @Router       /admin/ideators [get]
func (h *AdminHandler) ListIdeators(c *gin.Context) {
	ideators, err := h.adminUseCase.ListIdeators()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ideators": ideators})
}

// AssignIdeator godoc
// @Summary      Assign an ideator to a client
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Client ID"
// @Param        ideator_id path string true "Ideator ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/clients/{id}/ideators/{ideator_id} [post]
func (h *AdminHandler) AssignIdeator(c *gin.Context) {
	if err := h.adminUseCase.AssignIdeator(c.Param("id"), c.Param("ideator_id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ideator assigned"})
}

// UnassignIdeator godoc
// @Summary      Remove an ideator from a client
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Client ID"
// @Param        ideator_id path string true "Ideator ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/clients/{id}/ideators/{ideator_id} [delete]
func (h *AdminHandler) UnassignIdeator(c *gin.Context) {
	if err := h.adminUseCase.UnassignIdeator(c.Param("id"), c.Param("ideator_id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ideator unassigned"})
}

type CreateShootRequest struct {
	ClientID         string   `json:"client_id" binding:"required"`
	Date             string   `json:"date" binding:"required"`
	Description      string   `json:"description"`
	AssignedIdeators []string `json:"assigned_ideators"`
}

// CreateShoot godoc
// @Summary      Schedule a shoot
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateShootRequest true "Shoot details"
// @Success      201  {object}  entity.Shoot
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/shoots [post]
func (h *AdminHandler) CreateShoot(c *gin.Context) {
	var req CreateShootRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	shoot, err := h.adminUseCase.CreateShoot(req.ClientID, req.Date, req.Description, req.AssignedIdeators)
	if err != nil {
		h.logger.Error("Failed to create shoot: %v", err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, shoot)
}

// ListShoots godoc
// @Summary      List scheduled shoots
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entity.Shoot
// @Router       /admin/shoots [get]
func (h *AdminHandler) ListShoots(c *gin.Context) {
	shoots, err := h.adminUseCase.ListShoots()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"shoots": shoots})
}
