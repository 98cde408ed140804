package content

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/somahsap/site-core/internal/models"
	"github.com/somahsap/site-core/internal/pkg/blob"
	"github.com/somahsap/site-core/internal/pkg/validate"
)

func makeContent() *models.SiteContent {
	doc := &models.SiteContent{Version: 1}
	doc.Brand.Name = "Soma Ahşap"
	doc.Brand.Email = "info@example.com"
	doc.Calculator = models.Calculator{
		UsageAreas:         []string{"Merdiven"},
		WoodTypes:          []string{"Meşe"},
		ThicknessOptions:   []int{18, 28},
		ThicknessDefaultMm: 28,
		ThicknessMinMm:     12,
		ThicknessMaxMm:     120,
	}
	return doc
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	path := filepath.Join(t.TempDir(), "content.json")
	return NewService(blob.NewFile(path))
}

func TestReadMissingDocument(t *testing.T) {
	svc := newTestService(t)
	doc, err := svc.Read(context.Background())
	require.NoError(t, err)
	assert.Nil(t, doc)
}

func TestWriteReadRoundTrip(t *testing.T) {
	svc := newTestService(t)
	in := makeContent()
	in.Hero.Headline = "Masif ahşap merdiven"
	in.Gallery.Images = []models.Image{{Src: "stairs.jpg", Alt: "merdiven"}}

	require.NoError(t, svc.Write(context.Background(), in))

	out, err := svc.Read(context.Background())
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "Masif ahşap merdiven", out.Hero.Headline)
	// Bare filenames resolve from the site root after a round trip.
	assert.Equal(t, "/stairs.jpg", out.Gallery.Images[0].Src)
}

func TestWriteNormalizesImagePaths(t *testing.T) {
	svc := newTestService(t)
	in := makeContent()
	in.SEO.OGImage = "og.png"
	in.Brand.Logo = "/logo.svg"
	in.Hero.HeroImage = &models.Image{Src: "https://cdn.example.com/hero.jpg"}
	in.Products.Cards = []models.ProductCard{{Title: "Masif Panel", Image: &models.Image{Src: "panel.jpg"}}}

	require.NoError(t, svc.Write(context.Background(), in))

	assert.Equal(t, "/og.png", in.SEO.OGImage)
	assert.Equal(t, "/logo.svg", in.Brand.Logo)
	assert.Equal(t, "https://cdn.example.com/hero.jpg", in.Hero.HeroImage.Src)
	assert.Equal(t, "/panel.jpg", in.Products.Cards[0].Image.Src)
}

func TestWriteRejectsInvalidAndKeepsStored(t *testing.T) {
	svc := newTestService(t)
	good := makeContent()
	good.Hero.Headline = "önceki başlık"
	require.NoError(t, svc.Write(context.Background(), good))

	bad := makeContent()
	bad.Calculator.ThicknessDefaultMm = 300

	err := svc.Write(context.Background(), bad)
	require.Error(t, err)
	schemaErr, ok := validate.IsSchemaError(err)
	require.True(t, ok)
	assert.NotEmpty(t, schemaErr.Fields)

	out, err := svc.Read(context.Background())
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "önceki başlık", out.Hero.Headline)
}

func TestWriteRejectsMissingEmail(t *testing.T) {
	svc := newTestService(t)
	doc := makeContent()
	doc.Brand.Email = ""

	err := svc.Write(context.Background(), doc)
	require.Error(t, err)
	_, ok := validate.IsSchemaError(err)
	assert.True(t, ok)
}
