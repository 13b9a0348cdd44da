package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/melroseheights/portfolio-backend/internal/models"
	"github.com/melroseheights/portfolio-backend/internal/services"
	"github.com/melroseheights/portfolio-backend/internal/uploads"
	"github.com/melroseheights/portfolio-backend/internal/utils"
)

type memImageRepo struct {
	docs map[string]models.PortfolioImage
}

func newMemImageRepo() *memImageRepo {
	return &memImageRepo{docs: map[string]models.PortfolioImage{}}
}

func (f *memImageRepo) List(ctx context.Context, filter bson.M) ([]models.PortfolioImage, error) {
	out := []models.PortfolioImage{}
	for _, d := range f.docs {
		out = append(out, d)
	}
	return out, nil
}

func (f *memImageRepo) Get(ctx context.Context, id string) (*models.PortfolioImage, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, "fake.Get", "invalid document id", err)
	}
	d, ok := f.docs[id]
	if !ok {
		return nil, utils.E(utils.CodeNotFound, "fake.Get", "document not found", nil)
	}
	return &d, nil
}

func (f *memImageRepo) Create(ctx context.Context, fields bson.M) (*models.PortfolioImage, error) {
	now := time.Now().UTC()
	d := models.PortfolioImage{
		ID:           primitive.NewObjectID(),
		Title:        fields["title"].(string),
		Description:  fields["description"].(string),
		Category:     fields["category"].(string),
		ImageURL:     fields["image_url"].(string),
		ThumbnailURL: fields["thumbnail_url"].(string),
		Featured:     fields["featured"].(bool),
		Order:        fields["order"].(int),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	f.docs[d.ID.Hex()] = d
	return &d, nil
}

func (f *memImageRepo) Update(ctx context.Context, id string, set bson.M) (*models.PortfolioImage, error) {
	d, err := f.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	d.UpdatedAt = time.Now().UTC()
	f.docs[id] = *d
	return d, nil
}

func (f *memImageRepo) Delete(ctx context.Context, id string) error {
	if _, err := f.Get(ctx, id); err != nil {
		return err
	}
	delete(f.docs, id)
	return nil
}

type memVideoRepo struct {
	docs map[string]models.Video
}

func (f *memVideoRepo) List(ctx context.Context, filter bson.M) ([]models.Video, error) {
	return []models.Video{}, nil
}

func (f *memVideoRepo) Get(ctx context.Context, id string) (*models.Video, error) {
	return nil, utils.E(utils.CodeNotFound, "fake.Get", "document not found", nil)
}

func (f *memVideoRepo) Create(ctx context.Context, fields bson.M) (*models.Video, error) {
	return nil, utils.E(utils.CodeInternal, "fake.Create", "not implemented", nil)
}

func (f *memVideoRepo) Update(ctx context.Context, id string, set bson.M) (*models.Video, error) {
	return nil, utils.E(utils.CodeNotFound, "fake.Update", "document not found", nil)
}

func (f *memVideoRepo) Delete(ctx context.Context, id string) error {
	return utils.E(utils.CodeNotFound, "fake.Delete", "document not found", nil)
}

func mediaRouter(t *testing.T) (*gin.Engine, *memImageRepo, *uploads.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := uploads.NewStore(t.TempDir())
	require.NoError(t, err)
	log := logrus.New()
	ingest := uploads.NewIngestor(store, log)

	images := newMemImageRepo()
	media := services.NewMediaService(images, &memVideoRepo{}, ingest, store, log)

	r := gin.New()
	imageHandler := NewImageHandler(images, media)
	fileHandler := NewFileHandler(store)
	r.GET("/api/uploads/*filepath", fileHandler.Serve)
	r.POST("/api/images/upload", imageHandler.Upload)
	r.POST("/api/images/upload/bulk", imageHandler.BulkUpload)
	return r, images, store
}

func smallPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 40, 30))))
	return buf.Bytes()
}

// addFile attaches a multipart file part with an explicit content type, which
// is what browsers send and what validation keys on.
func addFile(t *testing.T, w *multipart.Writer, field, filename, contentType string, payload []byte) {
	t.Helper()
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
}

func doMultipart(t *testing.T, r *gin.Engine, path string, build func(w *multipart.Writer)) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	build(w)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestUploadImageEndpoint(t *testing.T) {
	r, images, _ := mediaRouter(t)
	payload := smallPNG(t)

	rec := doMultipart(t, r, "/api/images/upload", func(w *multipart.Writer) {
		addFile(t, w, "file", "shoot.png", "image/png", payload)
		require.NoError(t, w.WriteField("title", "Evening Shoot"))
		require.NoError(t, w.WriteField("category", "fashion"))
		require.NoError(t, w.WriteField("featured", "true"))
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var img models.PortfolioImage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &img))
	require.Contains(t, img.ImageURL, "/api/uploads/images/fashion/")
	require.True(t, img.Featured)
	require.Len(t, images.docs, 1)

	// The stored bytes come back through the serving route.
	serveReq := httptest.NewRequest(http.MethodGet, img.ImageURL, nil)
	serveRec := httptest.NewRecorder()
	r.ServeHTTP(serveRec, serveReq)
	require.Equal(t, http.StatusOK, serveRec.Code)
	require.Equal(t, payload, serveRec.Body.Bytes())
}

func TestUploadImageMissingFields(t *testing.T) {
	r, _, _ := mediaRouter(t)
	payload := smallPNG(t)

	// No file part.
	rec := doMultipart(t, r, "/api/images/upload", func(w *multipart.Writer) {
		require.NoError(t, w.WriteField("title", "x"))
		require.NoError(t, w.WriteField("category", "fashion"))
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// No title.
	rec = doMultipart(t, r, "/api/images/upload", func(w *multipart.Writer) {
		addFile(t, w, "file", "shoot.png", "image/png", payload)
		require.NoError(t, w.WriteField("category", "fashion"))
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// No category.
	rec = doMultipart(t, r, "/api/images/upload", func(w *multipart.Writer) {
		addFile(t, w, "file", "shoot.png", "image/png", payload)
		require.NoError(t, w.WriteField("title", "x"))
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadImageRejectsWrongContentType(t *testing.T) {
	r, images, _ := mediaRouter(t)

	rec := doMultipart(t, r, "/api/images/upload", func(w *multipart.Writer) {
		addFile(t, w, "file", "doc.pdf", "application/pdf", []byte("%PDF-"))
		require.NoError(t, w.WriteField("title", "x"))
		require.NoError(t, w.WriteField("category", "fashion"))
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), string(utils.CodeUnsupportedMedia))
	require.Empty(t, images.docs)
}

func TestBulkUploadCollectsPerFileFailures(t *testing.T) {
	r, images, _ := mediaRouter(t)
	payload := smallPNG(t)

	rec := doMultipart(t, r, "/api/images/upload/bulk", func(w *multipart.Writer) {
		addFile(t, w, "files", "one.png", "image/png", payload)
		addFile(t, w, "files", "two.png", "image/png", payload)
		addFile(t, w, "files", "bad.pdf", "application/pdf", []byte("%PDF-"))
		require.NoError(t, w.WriteField("category", "fashion"))
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.BulkUploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.UploadedFiles, 2)
	require.Equal(t, []string{"bad.pdf"}, resp.FailedFiles)
	require.Len(t, images.docs, 2)

	for _, up := range resp.UploadedFiles {
		require.Contains(t, up.URL, "/api/uploads/images/fashion/")
	}
}

func TestBulkUploadRequiresCategory(t *testing.T) {
	r, _, _ := mediaRouter(t)

	rec := doMultipart(t, r, "/api/images/upload/bulk", func(w *multipart.Writer) {
		addFile(t, w, "files", "one.png", "image/png", smallPNG(t))
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServeMissingFileReturnsJSON404(t *testing.T) {
	r, _, _ := mediaRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/uploads/images/nope.png", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var body APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, utils.CodeNotFound, body.Code)
	require.Equal(t, "File not found", body.Message)
}

func TestServeRejectsTraversal(t *testing.T) {
	r, _, _ := mediaRouter(t)

	for _, target := range []string{
		"/api/uploads/../go.mod",
		"/api/uploads/images/../../../etc/passwd",
	} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		req.URL.Path = target // keep the dot segments literal
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		require.NotEqual(t, http.StatusOK, rec.Code, target)
	}
}

func TestServeDirectoryReturns404(t *testing.T) {
	r, _, _ := mediaRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/uploads/images", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
