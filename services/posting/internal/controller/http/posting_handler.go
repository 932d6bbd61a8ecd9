package http

import (
	"net/http"

	"github.com/PritamDhobale/CreatorHub/pkg/apperr"
	"github.com/PritamDhobale/CreatorHub/pkg/logger"
	"github.com/PritamDhobale/CreatorHub/services/posting/internal/entity"
	"github.com/PritamDhobale/CreatorHub/services/posting/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PostingHandler struct {
	postingUseCase usecase.PostingUseCase
	logger         *logger.Logger
}

func NewPostingHandler(postingUseCase usecase.PostingUseCase, logger *logger.Logger) *PostingHandler {
	return &PostingHandler{
		postingUseCase: postingUseCase,
		logger:         logger,
	}
}

func respondError(c *gin.Context, err error) {
	c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
}

// ListFolders godoc
// @Summary      List posting folders
// @Description  Folders of approved videos grouped by client and posting date; completeness is advisory
// @Tags         posting
// @Produce      json
// @Security     BearerAuth
// @Param        client_id query string false "Filter by client"
// @Success      200  {array}  entity.PostingFolder
// @Router       /folders [get]
func (h *PostingHandler) ListFolders(c *gin.Context) {
	folders, err := h.postingUseCase.ListFolders(c.Query("client_id"))
	if err != nil {
		h.logger.Error("Failed to list posting folders: %v", err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"folders": folders})
}

// GetFolder godoc
// @Summary      Get one posting folder
// @Tags         posting
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Folder ID"
// @Success      200  {object}  entity.PostingFolder
// @Failure      404  {object}  map[string]string
// @Router       /folders/{id} [get]
func (h *PostingHandler) GetFolder(c *gin.Context) {
	folder, err := h.postingUseCase.GetFolder(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, folder)
}

type PostVideoRequest struct {
	Platforms []string `json:"platforms" binding:"required,min=1"`
	Caption   string   `json:"caption"`
	Hashtags  string   `json:"hashtags"`
}

// PostVideo godoc
// @Summary      Publish a video to social platforms
// @Description  Publishes to every listed platform or none; a posted video cannot be posted again
// @Tags         posting
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Posting video ID"
// @Param        request body PostVideoRequest true "Platforms, caption and hashtags"
// @Success      200  {object}  entity.PostingVideo
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /videos/{id}/post [post]
func (h *PostingHandler) PostVideo(c *gin.Context) {
	var req PostVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	platforms := make([]entity.Platform, len(req.Platforms))
	for i, p := range req.Platforms {
		platforms[i] = entity.Platform(p)
	}

	video, err := h.postingUseCase.PostVideo(
		c.Request.Context(),
		c.Param("id"),
		platforms,
		req.Caption,
		req.Hashtags,
		c.GetString("user_id"),
	)
	if err != nil {
		h.logger.Error("Failed to post video: %v", err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, video)
}

// ListPlatforms godoc
// @Summary      List the supported platforms
// @Tags         posting
// @Produce      json
// @Success      200  {array}  string
// @Router       /platforms [get]
func (h *PostingHandler) ListPlatforms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"platforms": entity.Platforms()})
}
