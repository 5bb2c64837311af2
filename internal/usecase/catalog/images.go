package catalog

import (
	"context"
	"log"
	"net/http"

	"github.com/BruksfildServices01/bridal-rental/internal/media"
	"github.com/BruksfildServices01/bridal-rental/internal/models"
)

// Images decides where dress photos live. With a nil object store the
// bytes are kept in the dress row.
type Images struct {
	store media.ObjectStore
}

func NewImages(store media.ObjectStore) *Images {
	return &Images{store: store}
}

// Attach compresses up and stores it on d. The previous S3 object, if any,
// is returned so the caller can delete it once the row is saved.
func (i *Images) Attach(ctx context.Context, d *models.Dress, up *ImageUpload) (string, error) {
	if !media.AllowedExtension(up.Filename) {
		return "", media.ErrInvalidImage
	}

	data := media.Compress(up.Data)
	name := media.SecureFilename(up.Filename)
	old := d.ImageKey

	if i.store != nil {
		key := media.NewObjectKey()
		if err := i.store.Put(ctx, key, data, http.DetectContentType(data)); err != nil {
			return "", err
		}
		d.ImageKey = key
		d.ImageData = nil
	} else {
		d.ImageData = data
		d.ImageKey = ""
	}

	d.ImageFilename = &name
	return old, nil
}

// Detach clears the image fields and returns the S3 key to delete, if any.
func (i *Images) Detach(d *models.Dress) string {
	old := d.ImageKey
	d.ImageData = nil
	d.ImageKey = ""
	d.ImageFilename = nil
	return old
}

// Discard removes an orphaned object. Failures are only logged.
func (i *Images) Discard(ctx context.Context, key string) {
	if key == "" || i.store == nil {
		return
	}
	if err := i.store.Delete(ctx, key); err != nil {
		log.Printf("image cleanup: %v", err)
	}
}

// Load returns the stored image, falling back to the placeholder.
func (i *Images) Load(ctx context.Context, d *models.Dress) ([]byte, string) {
	if len(d.ImageData) > 0 {
		return d.ImageData, http.DetectContentType(d.ImageData)
	}

	if d.ImageKey != "" && i.store != nil {
		data, err := i.store.Get(ctx, d.ImageKey)
		if err == nil {
			return data, http.DetectContentType(data)
		}
		log.Printf("image load for dress %d: %v", d.ID, err)
	}

	return media.Placeholder(), media.ContentTypeJPEG
}
