// Package assets stores binary side-assets (pictures, downloadable files)
// referenced by seeded entities. An asset is always inserted first so its
// generated id can be attached to the owning entity.
package assets

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/grandnode/grandnode2-sub005/internal/models"
	"github.com/grandnode/grandnode2-sub005/internal/store"
)

type PictureStorage interface {
	InsertPicture(ctx context.Context, data []byte, mimeType, seoFilename, reference, objectID string) (*models.Picture, error)
}

type DownloadStorage interface {
	InsertDownload(ctx context.Context, download *models.Download) (string, error)
}

// StoreAssets persists assets into the document store itself.
type StoreAssets struct {
	db store.Database
}

func NewStoreAssets(db store.Database) *StoreAssets {
	return &StoreAssets{db: db}
}

func (s *StoreAssets) InsertPicture(ctx context.Context, data []byte, mimeType, seoFilename, reference, objectID string) (*models.Picture, error) {
	pic := &models.Picture{
		PictureBinary: data,
		MimeType:      mimeType,
		SeoFilename:   seoFilename,
		ObjectName:    uuid.NewString(),
		Reference:     reference,
		ObjectId:      objectID,
	}

	id, err := s.db.InsertOne(ctx, models.PictureCollection, pic)
	if err != nil {
		return nil, fmt.Errorf("failed to insert picture %s: %w", seoFilename, err)
	}
	pic.ID = id
	return pic, nil
}

func (s *StoreAssets) InsertDownload(ctx context.Context, download *models.Download) (string, error) {
	if download.DownloadGuid == "" {
		download.DownloadGuid = uuid.NewString()
	}

	id, err := s.db.InsertOne(ctx, models.DownloadCollection, download)
	if err != nil {
		return "", fmt.Errorf("failed to insert download %s: %w", download.Filename, err)
	}
	return id, nil
}

// ReadSampleFile loads a bundled sample asset from dir. A missing file is a
// fatal install error, not a skippable one.
func ReadSampleFile(dir, name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to read sample asset %s: %w", name, err)
	}
	return data, nil
}
