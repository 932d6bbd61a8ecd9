package http

import (
	"net/http"

	"github.com/PritamDhobale/CreatorHub/pkg/logger"
	"github.com/PritamDhobale/CreatorHub/services/workflow/internal/entity"
	"github.com/PritamDhobale/CreatorHub/services/workflow/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ProductionHandler struct {
	productionUseCase usecase.ProductionUseCase
	uploadUseCase     usecase.UploadUseCase
	logger            *logger.Logger
}

func NewProductionHandler(
	productionUseCase usecase.ProductionUseCase,
	uploadUseCase usecase.UploadUseCase,
	logger *logger.Logger,
) *ProductionHandler {
	return &ProductionHandler{
		productionUseCase: productionUseCase,
		uploadUseCase:     uploadUseCase,
		logger:            logger,
	}
}

// ListClientTrees godoc
// @Summary      List clients with their full production tree
// @Description  Returns every client with nested days, sets and video slots
// @Tags         production
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entity.Client
// @Router       /clients [get]
func (h *ProductionHandler) ListClientTrees(c *gin.Context) {
	clients, err := h.productionUseCase.ListClientTrees()
	if err != nil {
		h.logger.Error("Failed to list client trees: %v", err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clients": clients})
}

// GetClientTree godoc
// @Summary      Get one client with its full production tree
// @Tags         production
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Client ID"
// @Success      200  {object}  entity.Client
// @Failure      404  {object}  map[string]string
// @Router       /clients/{id} [get]
func (h *ProductionHandler) GetClientTree(c *gin.Context) {
	client, err := h.productionUseCase.GetClientTree(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

type AddDayRequest struct {
	Name string `json:"name"`
	Date string `json:"date" binding:"required"`
}

// AddDay godoc
// @Summary      Add a shooting day to a client
// @Tags         production
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Client ID"
// @Param        request body AddDayRequest true "Day details"
// @Success      201  {object}  entity.Day
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /clients/{id}/days [post]
func (h *ProductionHandler) AddDay(c *gin.Context) {
	var req AddDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	day, err := h.productionUseCase.AddDay(c.Param("id"), req.Name, req.Date)
	if err != nil {
		h.logger.Error("Failed to add day: %v", err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, day)
}

type AddSetRequest struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	StartTime   string   `json:"start_time"`
	Location    string   `json:"location"`
	Props       []string `json:"props"`
	Actors      []string `json:"actors"`
	VideoCount  int      `json:"video_count"`
}

// AddSet godoc
// @Summary      Add a set to a shooting day
// @Description  Creates the set and its fixed batch of video slots, all pending
// @Tags         production
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        day_id path string true "Day ID"
// @Param        request body AddSetRequest true "Set details"
// @Success      201  {object}  entity.Set
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /days/{day_id}/sets [post]
func (h *ProductionHandler) AddSet(c *gin.Context) {
	var req AddSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	videoCount := req.VideoCount
	if videoCount == 0 {
		videoCount = 3
	}

	set, err := h.productionUseCase.AddSet(c.Param("day_id"), entity.Set{
		Name:        req.Name,
		Type:        req.Type,
		Description: req.Description,
		StartTime:   req.StartTime,
		Location:    req.Location,
		Props:       req.Props,
		Actors:      req.Actors,
	}, videoCount)
	if err != nil {
		h.logger.Error("Failed to add set: %v", err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, set)
}

// ListSetTypes godoc
// @Summary      List the allowed set types
// @Tags         production
// @Produce      json
// @Success      200  {array}  string
// @Router       /set-types [get]
func (h *ProductionHandler) ListSetTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"set_types": entity.SetTypes()})
}

func (h *ProductionHandler) collectFiles(c *gin.Context) ([]usecase.FileUpload, func(), error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil, err
	}

	headers := form.File["files"]
	uploads := make([]usecase.FileUpload, 0, len(headers))
	closers := make([]func() error, 0, len(headers))
	for _, header := range headers {
		f, err := header.Open()
		if err != nil {
			for _, cl := range closers {
				cl()
			}
			return nil, nil, err
		}
		closers = append(closers, f.Close)
		uploads = append(uploads, usecase.FileUpload{
			Name:        header.Filename,
			Size:        header.Size,
			ContentType: header.Header.Get("Content-Type"),
			Reader:      f,
		})
	}

	cleanup := func() {
		for _, cl := range closers {
			cl()
		}
	}
	return uploads, cleanup, nil
}

// UploadRawFootage godoc
// @Summary      Upload raw footage to a video slot
// @Description  Attaches the files as the slot's raw footage and moves it to filmed
// @Tags         production
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Client ID"
// @Param        day_id path string true "Day ID"
// @Param        set_id path string true "Set ID"
// @Param        slot_id path string true "Video slot ID"
// @Param        files formData file true "Footage files"
// @Success      200  {object}  entity.VideoSlot
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /clients/{id}/days/{day_id}/sets/{set_id}/videos/{slot_id}/footage [post]
func (h *ProductionHandler) UploadRawFootage(c *gin.Context) {
	files, cleanup, err := h.collectFiles(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse form"})
		return
	}
	defer cleanup()

	slot, err := h.uploadUseCase.UploadRawFootage(
		c.Request.Context(),
		c.Param("id"), c.Param("day_id"), c.Param("set_id"), c.Param("slot_id"),
		c.GetString("user_id"),
		files,
	)
	if err != nil {
		h.logger.Error("Failed to upload raw footage: %v", err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, slot)
}

// UploadEditedVideo godoc
// @Summary      Upload an edited video to a video slot
// @Description  Replaces the slot's edited sequence and moves it to edited
// @Tags         production
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Client ID"
// @Param        day_id path string true "Day ID"
// @Param        set_id path string true "Set ID"
// @Param        slot_id path string true "Video slot ID"
// @Param        files formData file true "Edited video files"
// @Success      200  {object}  entity.VideoSlot
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /clients/{id}/days/{day_id}/sets/{set_id}/videos/{slot_id}/edit [post]
func (h *ProductionHandler) UploadEditedVideo(c *gin.Context) {
	files, cleanup, err := h.collectFiles(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse form"})
		return
	}
	defer cleanup()

	slot, err := h.uploadUseCase.UploadEditedVideo(
		c.Request.Context(),
		c.Param("id"), c.Param("day_id"), c.Param("set_id"), c.Param("slot_id"),
		c.GetString("user_id"),
		files,
	)
	if err != nil {
		h.logger.Error("Failed to upload edited video: %v", err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, slot)
}

// GetSelection godoc
// @Summary      Get the caller's current upload selection
// @Tags         production
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entity.UploadSelection
// @Router       /selection [get]
func (h *ProductionHandler) GetSelection(c *gin.Context) {
	selection, err := h.uploadUseCase.GetSelection(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, selection)
}

type SelectRequest struct {
	Level string `json:"level" binding:"required,oneof=client day set video"`
	ID    string `json:"id" binding:"required"`
}

// Select godoc
// @Summary      Select a level of the upload path
// @Description  Selecting a level clears every selection below it
// @Tags         production
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body SelectRequest true "Level and ID"
// @Success      200  {object}  entity.UploadSelection
// @Failure      400  {object}  map[string]string
// @Router       /selection [put]
func (h *ProductionHandler) Select(c *gin.Context) {
	var req SelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	userID := c.GetString("user_id")

	var selection *entity.UploadSelection
	var err error
	switch req.Level {
	case "client":
		selection, err = h.uploadUseCase.SelectClient(ctx, userID, req.ID)
	case "day":
		selection, err = h.uploadUseCase.SelectDay(ctx, userID, req.ID)
	case "set":
		selection, err = h.uploadUseCase.SelectSet(ctx, userID, req.ID)
	case "video":
		selection, err = h.uploadUseCase.SelectVideo(ctx, userID, req.ID)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, selection)
}

// ClearSelection godoc
// @Summary      Clear the caller's upload selection
// @Tags         production
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Router       /selection [delete]
func (h *ProductionHandler) ClearSelection(c *gin.Context) {
	if err := h.uploadUseCase.ClearSelection(c.Request.Context(), c.GetString("user_id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Selection cleared"})
}
