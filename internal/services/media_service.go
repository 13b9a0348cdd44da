package services

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/melroseheights/portfolio-backend/internal/models"
	mongorepo "github.com/melroseheights/portfolio-backend/internal/repositories/mongo"
	"github.com/melroseheights/portfolio-backend/internal/uploads"
	"github.com/melroseheights/portfolio-backend/internal/utils"
)

// UploadInput carries one multipart upload through the ingestion pipeline.
type UploadInput struct {
	Reader      io.Reader
	Filename    string
	ContentType string
	Size        int64

	Title       string
	Description string
	Category    string
	Featured    bool
}

type MediaService interface {
	UploadImage(ctx context.Context, in UploadInput) (*models.PortfolioImage, error)
	UploadVideo(ctx context.Context, in UploadInput) (*models.Video, error)
	DeleteImage(ctx context.Context, id string) error
	DeleteVideo(ctx context.Context, id string) error
}

type mediaService struct {
	images mongorepo.Repository[models.PortfolioImage]
	videos mongorepo.Repository[models.Video]
	ingest *uploads.Ingestor
	store  *uploads.Store
	log    *logrus.Logger
}

func NewMediaService(
	images mongorepo.Repository[models.PortfolioImage],
	videos mongorepo.Repository[models.Video],
	ingest *uploads.Ingestor,
	store *uploads.Store,
	log *logrus.Logger,
) MediaService {
	return &mediaService{images: images, videos: videos, ingest: ingest, store: store, log: log}
}

// UploadImage stores the file and its thumbnail first; the document is only
// inserted after the file write completes, so a reader can never observe a
// document pointing at a not-yet-written file.
func (s *mediaService) UploadImage(ctx context.Context, in UploadInput) (*models.PortfolioImage, error) {
	const op = "MediaService.UploadImage"

	imagePath, thumbPath, err := s.ingest.SaveImage(in.Reader, in.Filename, in.ContentType, in.Size, in.Category)
	if err != nil {
		return nil, err
	}

	imageURL, err := s.store.PublicURL(imagePath)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to resolve image url", err)
	}
	thumbURL, err := s.store.PublicURL(thumbPath)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to resolve thumbnail url", err)
	}

	return s.images.Create(ctx, bson.M{
		"title":         in.Title,
		"description":   in.Description,
		"category":      in.Category,
		"image_url":     imageURL,
		"thumbnail_url": thumbURL,
		"featured":      in.Featured,
		"order":         0,
	})
}

func (s *mediaService) UploadVideo(ctx context.Context, in UploadInput) (*models.Video, error) {
	const op = "MediaService.UploadVideo"

	videoPath, err := s.ingest.SaveVideo(in.Reader, in.Filename, in.ContentType, in.Size, in.Category)
	if err != nil {
		return nil, err
	}

	videoURL, err := s.store.PublicURL(videoPath)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to resolve video url", err)
	}

	return s.videos.Create(ctx, bson.M{
		"title":         in.Title,
		"description":   in.Description,
		"category":      in.Category,
		"video_url":     videoURL,
		"thumbnail_url": "", // generated by post-processing
		"duration":      0,
		"featured":      in.Featured,
		"order":         0,
	})
}

// DeleteImage reads the document to recover its stored file paths, removes
// the files best-effort, then removes the document. File failures never
// block the document delete.
func (s *mediaService) DeleteImage(ctx context.Context, id string) error {
	img, err := s.images.Get(ctx, id)
	if err != nil {
		return err
	}

	s.removeStored(img.ImageURL)
	s.removeStored(img.ThumbnailURL)

	return s.images.Delete(ctx, id)
}

func (s *mediaService) DeleteVideo(ctx context.Context, id string) error {
	vid, err := s.videos.Get(ctx, id)
	if err != nil {
		return err
	}

	s.removeStored(vid.VideoURL)
	s.removeStored(vid.ThumbnailURL)

	return s.videos.Delete(ctx, id)
}

func (s *mediaService) removeStored(url string) {
	if url == "" {
		return
	}
	path, err := s.store.FilePath(url)
	if err != nil {
		s.log.WithField("url", url).Warn("stored url is not under the upload root, skipping file delete")
		return
	}
	s.ingest.DeleteFile(path)
}
