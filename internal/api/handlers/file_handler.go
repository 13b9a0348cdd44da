package handlers

import (
	"os"

	"github.com/gin-gonic/gin"

	"github.com/melroseheights/portfolio-backend/internal/uploads"
	"github.com/melroseheights/portfolio-backend/internal/utils"
)

// FileHandler serves stored upload bytes back out under the public prefix.
type FileHandler struct {
	store *uploads.Store
}

func NewFileHandler(store *uploads.Store) *FileHandler {
	return &FileHandler{store: store}
}

func (h *FileHandler) Serve(c *gin.Context) {
	const op = "FileHandler.Serve"

	// Param includes a leading slash for wildcard routes.
	full, err := h.store.FilePath(uploads.PublicPrefix + c.Param("filepath"))
	if err != nil {
		writeError(c, utils.E(utils.CodeNotFound, op, "File not found", err))
		return
	}

	st, err := os.Stat(full)
	if err != nil || st.IsDir() {
		writeError(c, utils.E(utils.CodeNotFound, op, "File not found", err))
		return
	}

	c.File(full)
}
