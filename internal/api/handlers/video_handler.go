package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/melroseheights/portfolio-backend/internal/models"
	mongorepo "github.com/melroseheights/portfolio-backend/internal/repositories/mongo"
	"github.com/melroseheights/portfolio-backend/internal/services"
	"github.com/melroseheights/portfolio-backend/internal/utils"
)

type VideoHandler struct {
	*CrudHandler[models.Video, models.VideoCreate, models.VideoUpdate]
	media services.MediaService
}

func NewVideoHandler(repo mongorepo.Repository[models.Video], media services.MediaService) *VideoHandler {
	return &VideoHandler{
		CrudHandler: NewCrudHandler[models.Video, models.VideoCreate, models.VideoUpdate](repo, "Video", categoryFilter),
		media:       media,
	}
}

func (h *VideoHandler) Upload(c *gin.Context) {
	const op = "VideoHandler.Upload"

	fh, err := c.FormFile("file")
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "missing multipart field 'file'", err))
		return
	}

	title, description, category, featured, err := uploadForm(c, op)
	if err != nil {
		writeError(c, err)
		return
	}

	in, f, err := uploadInput(fh, title, description, category, featured)
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, op, "failed to open upload", err))
		return
	}
	defer f.Close()

	vid, err := h.media.UploadVideo(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, vid)
}

func (h *VideoHandler) Delete(c *gin.Context) {
	if err := h.media.DeleteVideo(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Video deleted successfully"})
}
