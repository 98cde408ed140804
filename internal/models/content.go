package models

// Image is a single editable image reference. Src and Thumb pass through
// imagepath normalization on every store read and write.
type Image struct {
	Src   string `json:"src" validate:"max=500"`
	Alt   string `json:"alt" validate:"max=200"`
	Thumb string `json:"thumb,omitempty" validate:"max=500"`
}

// SiteContent is the singleton editable document behind the whole site. It is
// created once from seed JSON, mutated only through the admin write path, and
// must validate fully before any persistence.
type SiteContent struct {
	Version     int             `json:"version" validate:"required,gte=1"`
	SEO         SEOSection      `json:"seo"`
	Brand       BrandSection    `json:"brand"`
	Theme       ThemeSection    `json:"theme"`
	Hero        HeroSection     `json:"hero"`
	About       AboutSection    `json:"about"`
	Products    ProductsSection `json:"products"`
	Services    ServicesSection `json:"services"`
	Calculator  Calculator      `json:"calculator"`
	Gallery     GallerySection  `json:"gallery"`
	ServiceArea ServiceArea     `json:"serviceArea"`
	Trust       TrustSection    `json:"trust"`
	Testimonial Testimonials    `json:"testimonials"`
	FAQ         FAQSection      `json:"faq"`
	Footer      FooterSection   `json:"footer"`
}

type SEOSection struct {
	Title                  string   `json:"title" validate:"max=120"`
	Description            string   `json:"description" validate:"max=300"`
	Keywords               []string `json:"keywords" validate:"max=30,dive,max=40"`
	OGImage                string   `json:"ogImage,omitempty" validate:"max=500"`
	GoogleSiteVerification string   `json:"googleSiteVerification,omitempty" validate:"max=120"`
	GAMeasurementID        string   `json:"gaMeasurementId,omitempty" validate:"max=40"`
}

type BrandSection struct {
	Name        string `json:"name" validate:"max=60"`
	Tagline     string `json:"tagline" validate:"max=120"`
	City        string `json:"city" validate:"max=60"`
	Address     string `json:"address,omitempty" validate:"max=200"`
	Phone       string `json:"phone" validate:"max=30"`
	Email       string `json:"email" validate:"required,email"`
	WhatsApp    string `json:"whatsapp,omitempty" validate:"max=30"`
	Logo        string `json:"logo,omitempty" validate:"max=500"`
	LogoHeight  int    `json:"logoHeight,omitempty" validate:"omitempty,gt=0"`
	LogoMaxWide int    `json:"logoMaxWidth,omitempty" validate:"omitempty,gt=0"`
}

type ThemeSection struct {
	Colors     ThemeColors     `json:"colors"`
	Typography ThemeTypography `json:"typography"`
}

type ThemeColors struct {
	Background string `json:"background" validate:"max=120"`
	Foreground string `json:"foreground" validate:"max=120"`
	Surface    string `json:"surface" validate:"max=120"`
	Card       string `json:"card" validate:"max=120"`
	Muted      string `json:"muted" validate:"max=120"`
	Border     string `json:"border" validate:"max=120"`
	Accent     string `json:"accent" validate:"max=120"`
	AccentSoft string `json:"accentSoft" validate:"max=120"`
	Danger     string `json:"danger" validate:"max=120"`
	WoodBark   string `json:"woodBark" validate:"max=120"`
	WoodCore   string `json:"woodCore" validate:"max=120"`
	WoodHalo   string `json:"woodHalo" validate:"max=120"`
}

type ThemeTypography struct {
	Sans    string `json:"sans" validate:"max=160"`
	Display string `json:"display" validate:"max=160"`
}

type HeroSection struct {
	Eyebrow           string          `json:"eyebrow" validate:"max=80"`
	Headline          string          `json:"headline" validate:"max=80"`
	Subhead           string          `json:"subhead" validate:"max=220"`
	CTAPrimaryLabel   string          `json:"ctaPrimaryLabel" validate:"max=30"`
	CTAPrimaryHref    string          `json:"ctaPrimaryHref" validate:"max=500"`
	CTASecondaryLabel string          `json:"ctaSecondaryLabel" validate:"max=30"`
	CTASecondaryHref  string          `json:"ctaSecondaryHref" validate:"max=500"`
	Highlights        []HeroHighlight `json:"highlights" validate:"max=8,dive"`
	Note              string          `json:"note" validate:"max=280"`
	HeroImage         *Image          `json:"heroImage,omitempty"`
	HeroVideo         *HeroVideo      `json:"heroVideo,omitempty"`
	QuickOptions      []QuickOption   `json:"quickOptions" validate:"max=6,dive"`
}

type HeroHighlight struct {
	Title string `json:"title" validate:"max=80"`
	Value string `json:"value" validate:"max=80"`
}

type HeroVideo struct {
	URL         string `json:"url" validate:"required,url"`
	Title       string `json:"title,omitempty" validate:"max=120"`
	Description string `json:"description,omitempty" validate:"max=200"`
}

type QuickOption struct {
	Label       string   `json:"label" validate:"max=40"`
	Placeholder string   `json:"placeholder,omitempty" validate:"max=80"`
	Options     []string `json:"options" validate:"max=10,dive,max=80"`
	Note        string   `json:"note,omitempty" validate:"max=120"`
}

type AboutSection struct {
	Heading string   `json:"heading" validate:"max=80"`
	Text    string   `json:"text" validate:"max=600"`
	Bullets []string `json:"bullets" validate:"max=8,dive,max=120"`
	Image   *Image   `json:"image,omitempty"`
}

type ProductsSection struct {
	Heading string        `json:"heading" validate:"max=80"`
	Intro   string        `json:"intro" validate:"max=400"`
	Cards   []ProductCard `json:"cards" validate:"max=12,dive"`
}

type ProductCard struct {
	Title   string `json:"title" validate:"max=80"`
	Desc    string `json:"desc" validate:"max=240"`
	Details string `json:"details,omitempty" validate:"max=800"`
	Image   *Image `json:"image,omitempty"`
}

type ServicesSection struct {
	Heading string        `json:"heading" validate:"max=80"`
	Intro   string        `json:"intro" validate:"max=400"`
	Steps   []ServiceStep `json:"steps" validate:"max=10,dive"`
}

type ServiceStep struct {
	Key   string `json:"key" validate:"max=10"`
	Title string `json:"title" validate:"max=60"`
	Desc  string `json:"desc" validate:"max=200"`
}

// Calculator feeds the quote calculator widget. Thickness bounds mirror the
// contact intake's accepted range.
type Calculator struct {
	UsageAreas         []string `json:"usageAreas" validate:"max=20,dive,max=60"`
	WoodTypes          []string `json:"woodTypes" validate:"max=30,dive,max=60"`
	ThicknessOptions   []int    `json:"thicknessOptions" validate:"min=1,max=12,dive,gte=12,lte=120"`
	ThicknessDefaultMm int      `json:"thicknessDefaultMm" validate:"gte=12,lte=120"`
	ThicknessMinMm     int      `json:"thicknessMinMm" validate:"gte=12,lte=120"`
	ThicknessMaxMm     int      `json:"thicknessMaxMm" validate:"gte=12,lte=120"`
}

type GallerySection struct {
	Heading string  `json:"heading" validate:"max=80"`
	Intro   string  `json:"intro" validate:"max=280"`
	Images  []Image `json:"images" validate:"max=24,dive"`
}

type ServiceArea struct {
	Heading     string   `json:"heading" validate:"max=80"`
	Intro       string   `json:"intro" validate:"max=280"`
	MapEmbedURL string   `json:"mapEmbedUrl" validate:"max=1000"`
	Areas       []string `json:"areas" validate:"max=40,dive,max=60"`
}

type TrustSection struct {
	Heading string      `json:"heading" validate:"max=80"`
	Items   []TrustItem `json:"items" validate:"max=12,dive"`
}

type TrustItem struct {
	Title string `json:"title" validate:"max=60"`
	Text  string `json:"text" validate:"max=240"`
}

type Testimonials struct {
	Heading string            `json:"heading" validate:"max=80"`
	Items   []TestimonialItem `json:"items" validate:"max=12,dive"`
}

type TestimonialItem struct {
	Name  string `json:"name" validate:"max=60"`
	Title string `json:"title,omitempty" validate:"max=80"`
	Text  string `json:"text" validate:"max=320"`
}

type FAQSection struct {
	Heading string    `json:"heading" validate:"max=80"`
	Items   []FAQItem `json:"items" validate:"max=20,dive"`
}

type FAQItem struct {
	Q string `json:"q" validate:"max=120"`
	A string `json:"a" validate:"max=500"`
}

type FooterSection struct {
	Blurb     string `json:"blurb" validate:"max=220"`
	Fineprint string `json:"fineprint,omitempty" validate:"max=120"`
}
