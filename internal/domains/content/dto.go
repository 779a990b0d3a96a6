package content

import (
	"encoding/json"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// SectionKey identifies one independently versioned content aggregate.
type SectionKey string

const (
	SectionHero        SectionKey = "hero"
	SectionAboutHero   SectionKey = "about-hero"
	SectionAbout       SectionKey = "about"
	SectionStatistics  SectionKey = "statistics"
	SectionContact     SectionKey = "contact"
	SectionAreasServed SectionKey = "areas-served"
	SectionQuote       SectionKey = "quote"
	SectionHistory     SectionKey = "history"
	SectionOurApproach SectionKey = "our-approach"
	SectionWarranty    SectionKey = "warranty"
)

// SimpleSections lists every section persisted as a single JSON payload
// (no normalized child rows).
var SimpleSections = []SectionKey{
	SectionHero,
	SectionAboutHero,
	SectionAbout,
	SectionStatistics,
	SectionContact,
	SectionAreasServed,
	SectionQuote,
	SectionHistory,
	SectionOurApproach,
	SectionWarranty,
}

// Record is one stored version of a section. "Current content" is always the
// most recently created record; prior versions are never deleted.
type Record struct {
	ID        int64           `json:"id"`
	Key       SectionKey      `json:"section"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ========================================
// HERO
// ========================================

type HeroContent struct {
	Location    HeroLocation `json:"location"`
	MainHeading HeroHeading  `json:"mainHeading"`
	Subheading  string       `json:"subheading"`
	Buttons     HeroButtons  `json:"buttons"`
	VideoURL    string       `json:"videoUrl"`
}

type HeroLocation struct {
	Text string `json:"text"`
}

type HeroHeading struct {
	Line1 string `json:"line1"`
	Line2 string `json:"line2"`
}

type HeroButtons struct {
	Primary   HeroButton `json:"primary"`
	Secondary HeroButton `json:"secondary"`
}

type HeroButton struct {
	Text string `json:"text"`
	Link string `json:"link"`
}

func (h HeroContent) Validate() error {
	return validation.ValidateStruct(&h,
		validation.Field(&h.Location),
		validation.Field(&h.MainHeading),
		validation.Field(&h.Subheading, validation.Required.Error("subheading is required")),
		validation.Field(&h.Buttons),
		validation.Field(&h.VideoURL, validation.Required.Error("videoUrl is required")),
	)
}

func (l HeroLocation) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Text, validation.Required.Error("location text is required")),
	)
}

func (h HeroHeading) Validate() error {
	return validation.ValidateStruct(&h,
		validation.Field(&h.Line1, validation.Required.Error("heading line1 is required")),
		validation.Field(&h.Line2, validation.Required.Error("heading line2 is required")),
	)
}

func (b HeroButtons) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Primary),
		validation.Field(&b.Secondary),
	)
}

func (b HeroButton) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Text, validation.Required.Error("button text is required")),
		validation.Field(&b.Link, validation.Required.Error("button link is required")),
	)
}

// ========================================
// ABOUT HERO / ABOUT
// ========================================

type AboutHeroContent struct {
	Heading    string `json:"heading"`
	Subheading string `json:"subheading"`
	ImageURL   string `json:"imageUrl"`
}

func (a AboutHeroContent) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Heading, validation.Required.Error("heading is required")),
		validation.Field(&a.Subheading, validation.Required.Error("subheading is required")),
	)
}

type AboutContent struct {
	Heading    string   `json:"heading"`
	Paragraphs []string `json:"paragraphs"`
	ImageURL   string   `json:"imageUrl"`
}

func (a AboutContent) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Heading, validation.Required.Error("heading is required")),
		validation.Field(&a.Paragraphs, validation.Required.Error("paragraphs are required")),
	)
}

// ========================================
// STATISTICS
// ========================================

type StatisticsContent struct {
	Heading string     `json:"heading"`
	Stats   []StatItem `json:"stats"`
}

type StatItem struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

func (s StatisticsContent) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Stats, validation.Required.Error("stats are required")),
	)
}

func (s StatItem) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Value, validation.Required.Error("stat value is required")),
		validation.Field(&s.Label, validation.Required.Error("stat label is required")),
	)
}

// ========================================
// CONTACT
// ========================================

type ContactContent struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Hours   string `json:"hours"`
}

func (c ContactContent) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Phone, validation.Required.Error("phone is required")),
		validation.Field(&c.Email, validation.Required.Error("email is required"), is.Email.Error("invalid email format")),
		validation.Field(&c.Address, validation.Required.Error("address is required")),
	)
}

// ========================================
// AREAS SERVED
// ========================================

type AreasServedContent struct {
	Heading    string   `json:"heading"`
	Subheading string   `json:"subheading"`
	Areas      []string `json:"areas"`
}

func (a AreasServedContent) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Heading, validation.Required.Error("heading is required")),
		validation.Field(&a.Areas, validation.Required.Error("areas are required")),
	)
}

// ========================================
// QUOTE / HISTORY / OUR APPROACH / WARRANTY
// ========================================

type QuoteContent struct {
	Heading    string `json:"heading"`
	Subheading string `json:"subheading"`
	ButtonText string `json:"buttonText"`
	ButtonLink string `json:"buttonLink"`
}

func (q QuoteContent) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.Heading, validation.Required.Error("heading is required")),
		validation.Field(&q.ButtonText, validation.Required.Error("buttonText is required")),
	)
}

type HistoryContent struct {
	Heading    string      `json:"heading"`
	Intro      string      `json:"intro"`
	Milestones []Milestone `json:"milestones"`
}

type Milestone struct {
	Year string `json:"year"`
	Text string `json:"text"`
}

func (h HistoryContent) Validate() error {
	return validation.ValidateStruct(&h,
		validation.Field(&h.Heading, validation.Required.Error("heading is required")),
	)
}

func (m Milestone) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Year, validation.Required.Error("milestone year is required")),
		validation.Field(&m.Text, validation.Required.Error("milestone text is required")),
	)
}

type OurApproachContent struct {
	Heading string         `json:"heading"`
	Steps   []ApproachStep `json:"steps"`
}

type ApproachStep struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (o OurApproachContent) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.Heading, validation.Required.Error("heading is required")),
		validation.Field(&o.Steps, validation.Required.Error("steps are required")),
	)
}

func (s ApproachStep) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Title, validation.Required.Error("step title is required")),
		validation.Field(&s.Description, validation.Required.Error("step description is required")),
	)
}

type WarrantyContent struct {
	Heading string   `json:"heading"`
	Body    string   `json:"body"`
	Terms   []string `json:"terms"`
}

func (w WarrantyContent) Validate() error {
	return validation.ValidateStruct(&w,
		validation.Field(&w.Heading, validation.Required.Error("heading is required")),
		validation.Field(&w.Body, validation.Required.Error("body is required")),
	)
}

// ========================================
// PAYLOAD REGISTRY
// ========================================

// payloadFactories returns a fresh typed payload per section so updates are
// decoded and validated against the section's schema before any write.
var payloadFactories = map[SectionKey]func() validation.Validatable{
	SectionHero:        func() validation.Validatable { return &HeroContent{} },
	SectionAboutHero:   func() validation.Validatable { return &AboutHeroContent{} },
	SectionAbout:       func() validation.Validatable { return &AboutContent{} },
	SectionStatistics:  func() validation.Validatable { return &StatisticsContent{} },
	SectionContact:     func() validation.Validatable { return &ContactContent{} },
	SectionAreasServed: func() validation.Validatable { return &AreasServedContent{} },
	SectionQuote:       func() validation.Validatable { return &QuoteContent{} },
	SectionHistory:     func() validation.Validatable { return &HistoryContent{} },
	SectionOurApproach: func() validation.Validatable { return &OurApproachContent{} },
	SectionWarranty:    func() validation.Validatable { return &WarrantyContent{} },
}

// NewPayload returns the typed zero payload for key, or false for unknown keys.
func NewPayload(key SectionKey) (validation.Validatable, bool) {
	factory, ok := payloadFactories[key]
	if !ok {
		return nil, false
	}
	return factory(), true
}
