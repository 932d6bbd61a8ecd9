package http

import (
	"net/http"

	"github.com/PritamDhobale/CreatorHub/pkg/logger"
	"github.com/PritamDhobale/CreatorHub/services/workflow/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewUseCase usecase.ReviewUseCase
	statsUseCase  usecase.StatsUseCase
	logger        *logger.Logger
}

func NewReviewHandler(reviewUseCase usecase.ReviewUseCase, statsUseCase usecase.StatsUseCase, logger *logger.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
		statsUseCase:  statsUseCase,
		logger:        logger,
	}
}

// ListVideosForReview godoc
// @Summary      List videos awaiting review
// @Description  Flattened list of edited, revision and approved slots across all clients
// @Tags         review
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entity.ReviewVideo
// @Router       /review/videos [get]
func (h *ReviewHandler) ListVideosForReview(c *gin.Context) {
	videos, err := h.reviewUseCase.ListVideosForReview()
	if err != nil {
		h.logger.Error("Failed to list review videos: %v", err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"videos": videos})
}

type AddCommentRequest struct {
	Body      string  `json:"body" binding:"required"`
	Timestamp float64 `json:"timestamp"`
}

// AddComment godoc
// @Summary      Add a timestamped comment to a video
// @Tags         review
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        slot_id path string true "Video slot ID"
// @Param        request body AddCommentRequest true "Comment"
// @Success      201  {object}  entity.ReviewComment
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /review/videos/{slot_id}/comments [post]
func (h *ReviewHandler) AddComment(c *gin.Context) {
	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.reviewUseCase.AddComment(c.Param("slot_id"), c.GetString("user_id"), req.Body, req.Timestamp)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

type ReplyRequest struct {
	Body string `json:"body" binding:"required"`
}

// ReplyToComment godoc
// @Summary      Reply to a comment
// @Description  Replies nest one level deep; replying to a reply is rejected
// @Tags         review
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        slot_id path string true "Video slot ID"
// @Param        comment_id path string true "Parent comment ID"
// @Param        request body ReplyRequest true "Reply"
// @Success      201  {object}  entity.ReviewComment
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /review/videos/{slot_id}/comments/{comment_id}/replies [post]
func (h *ReviewHandler) ReplyToComment(c *gin.Context) {
	var req ReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := h.reviewUseCase.ReplyToComment(c.Param("slot_id"), c.Param("comment_id"), c.GetString("user_id"), req.Body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, reply)
}

// ListComments godoc
// @Summary      List a video's comment thread
// @Tags         review
// @Produce      json
// @Security     BearerAuth
// @Param        slot_id path string true "Video slot ID"
// @Success      200  {array}  entity.ReviewComment
// @Failure      404  {object}  map[string]string
// @Router       /review/videos/{slot_id}/comments [get]
func (h *ReviewHandler) ListComments(c *gin.Context) {
	comments, err := h.reviewUseCase.ListComments(c.Param("slot_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

type SendForRevisionRequest struct {
	Notes string `json:"notes" binding:"required"`
}

// SendForRevision godoc
// @Summary      Send a video back to the editor
// @Description  Moves an edited slot to revision; notes are mandatory
// @Tags         review
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        slot_id path string true "Video slot ID"
// @Param        request body SendForRevisionRequest true "Revision notes"
// @Success      200  {object}  entity.VideoSlot
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /review/videos/{slot_id}/revision [post]
func (h *ReviewHandler) SendForRevision(c *gin.Context) {
	var req SendForRevisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slot, err := h.reviewUseCase.SendForRevision(c.Request.Context(), c.Param("slot_id"), req.Notes, c.GetString("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, slot)
}

type ApproveVideoRequest struct {
	PostingDate string `json:"posting_date" binding:"required"`
}

// ApproveVideo godoc
// @Summary      Approve a video for posting
// @Description  Moves the slot to approved and books it into the client's posting folder for the given date
// @Tags         review
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        slot_id path string true "Video slot ID"
// @Param        request body ApproveVideoRequest true "Posting date (YYYY-MM-DD)"
// @Success      200  {object}  entity.VideoSlot
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /review/videos/{slot_id}/approve [post]
func (h *ReviewHandler) ApproveVideo(c *gin.Context) {
	var req ApproveVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slot, err := h.reviewUseCase.ApproveVideo(c.Request.Context(), c.Param("slot_id"), req.PostingDate, c.GetString("user_id"))
	if err != nil {
		h.logger.Error("Failed to approve video: %v", err)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, slot)
}

// StatusCounts godoc
// @Summary      Dashboard slot counts by status
// @Tags         review
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]int64
// @Router       /stats/status-counts [get]
func (h *ReviewHandler) StatusCounts(c *gin.Context) {
	counts, err := h.statsUseCase.StatusCounts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"counts": counts})
}
