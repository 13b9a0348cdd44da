package handlers

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/melroseheights/portfolio-backend/internal/models"
	mongorepo "github.com/melroseheights/portfolio-backend/internal/repositories/mongo"
	"github.com/melroseheights/portfolio-backend/internal/services"
	"github.com/melroseheights/portfolio-backend/internal/utils"
)

// categoryFilter narrows a list to one gallery section when ?category= is
// present. No compound queries are supported.
func categoryFilter(c *gin.Context) bson.M {
	if cat := c.Query("category"); cat != "" {
		return bson.M{"category": cat}
	}
	return bson.M{}
}

type ImageHandler struct {
	*CrudHandler[models.PortfolioImage, models.PortfolioImageCreate, models.PortfolioImageUpdate]
	media services.MediaService
}

func NewImageHandler(repo mongorepo.Repository[models.PortfolioImage], media services.MediaService) *ImageHandler {
	return &ImageHandler{
		CrudHandler: NewCrudHandler[models.PortfolioImage, models.PortfolioImageCreate, models.PortfolioImageUpdate](repo, "Image", categoryFilter),
		media:       media,
	}
}

// uploadForm pulls the shared multipart fields out of an upload request.
func uploadForm(c *gin.Context, op string) (title, description, category string, featured bool, err error) {
	title = c.PostForm("title")
	if title == "" {
		return "", "", "", false, utils.E(utils.CodeInvalidArgument, op, "missing form field 'title'", nil)
	}
	category = c.PostForm("category")
	if category == "" {
		return "", "", "", false, utils.E(utils.CodeInvalidArgument, op, "missing form field 'category'", nil)
	}
	description = c.PostForm("description")
	if v := c.PostForm("featured"); v != "" {
		featured, _ = strconv.ParseBool(v)
	}
	return title, description, category, featured, nil
}

func uploadInput(fh *multipart.FileHeader, title, description, category string, featured bool) (services.UploadInput, multipart.File, error) {
	f, err := fh.Open()
	if err != nil {
		return services.UploadInput{}, nil, err
	}
	return services.UploadInput{
		Reader:      f,
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Title:       title,
		Description: description,
		Category:    category,
		Featured:    featured,
	}, f, nil
}

func (h *ImageHandler) Upload(c *gin.Context) {
	const op = "ImageHandler.Upload"

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

	img, err := h.media.UploadImage(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, img)
}

// BulkUpload ingests several images sharing one category. Per-file failures
// are collected, not fatal.
func (h *ImageHandler) BulkUpload(c *gin.Context) {
	const op = "ImageHandler.BulkUpload"

	form, err := c.MultipartForm()
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid multipart form", err))
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "missing multipart field 'files'", nil))
		return
	}

	category := c.PostForm("category")
	if category == "" {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "missing form field 'category'", nil))
		return
	}
	featured := false
	if v := c.PostForm("featured"); v != "" {
		featured, _ = strconv.ParseBool(v)
	}

	resp := models.BulkUploadResponse{
		UploadedFiles: []models.UploadResponse{},
		FailedFiles:   []string{},
	}
	for _, fh := range files {
		in, f, err := uploadInput(fh, fh.Filename, "", category, featured)
		if err != nil {
			resp.FailedFiles = append(resp.FailedFiles, fh.Filename)
			continue
		}

		img, err := h.media.UploadImage(c.Request.Context(), in)
		f.Close()
		if err != nil {
			resp.FailedFiles = append(resp.FailedFiles, fh.Filename)
			continue
		}

		resp.UploadedFiles = append(resp.UploadedFiles, models.UploadResponse{
			Filename:    fh.Filename,
			URL:         img.ImageURL,
			Size:        fh.Size,
			ContentType: fh.Header.Get("Content-Type"),
		})
	}

	c.JSON(http.StatusOK, resp)
}

// Delete shadows the embedded CRUD delete: stored files are released
// best-effort before the document goes away.
func (h *ImageHandler) Delete(c *gin.Context) {
	if err := h.media.DeleteImage(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Image deleted successfully"})
}
