package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/somahsap/site-core/internal/models"
	"github.com/somahsap/site-core/internal/pkg/blob"
	"github.com/somahsap/site-core/internal/pkg/imagepath"
	"github.com/somahsap/site-core/internal/pkg/validate"
)

// Service reads and writes the site content document through a blob store.
// The document is kept as a single JSON object and replaced atomically on
// every write.
type Service struct {
	store blob.Store
}

func NewService(store blob.Store) *Service {
	return &Service{store: store}
}

// Read loads the persisted document. A missing document is not an error:
// the site starts with empty content until the first save.
func (s *Service) Read(ctx context.Context) (*models.SiteContent, error) {
	raw, err := s.store.Load(ctx)
	if err != nil {
		if errors.Is(err, blob.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("load content: %w", err)
	}

	var doc models.SiteContent
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	if err := validate.Struct(&doc); err != nil {
		return nil, fmt.Errorf("persisted content is invalid: %w", err)
	}

	normalizeImages(&doc)
	return &doc, nil
}

// Write validates the incoming document, normalizes its image paths and
// persists it. Validation happens before any I/O so a rejected document
// never disturbs the stored one.
func (s *Service) Write(ctx context.Context, doc *models.SiteContent) error {
	if err := validate.Struct(doc); err != nil {
		return err
	}

	normalizeImages(doc)

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode content: %w", err)
	}
	if err := s.store.Save(ctx, raw); err != nil {
		return fmt.Errorf("save content: %w", err)
	}
	return nil
}

// normalizeImages rewrites every image reference in the document so that
// bare filenames resolve from the site root. Absolute paths and URLs with
// a scheme pass through untouched.
func normalizeImages(doc *models.SiteContent) {
	doc.SEO.OGImage = imagepath.Normalize(doc.SEO.OGImage)
	doc.Brand.Logo = imagepath.Normalize(doc.Brand.Logo)
	normalizeImage(doc.Hero.HeroImage)
	normalizeImage(doc.About.Image)
	for i := range doc.Products.Cards {
		normalizeImage(doc.Products.Cards[i].Image)
	}
	for i := range doc.Gallery.Images {
		img := &doc.Gallery.Images[i]
		img.Src = imagepath.Normalize(img.Src)
		img.Thumb = imagepath.Normalize(img.Thumb)
	}
}

func normalizeImage(img *models.Image) {
	if img == nil {
		return
	}
	img.Src = imagepath.Normalize(img.Src)
	img.Thumb = imagepath.Normalize(img.Thumb)
}
