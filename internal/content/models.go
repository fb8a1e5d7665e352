package content

import "time"

// Collection names in the document store. Each entity type owns exactly one.
const (
	CollectionPortfolio    = "portfolio_items"
	CollectionTestimonials = "testimonials"
	CollectionStats        = "stats"
	CollectionInquiries    = "contact_inquiries"
)

// PortfolioType is the closed set of portfolio categories.
type PortfolioType string

const (
	PortfolioVideoScripts   PortfolioType = "Video Scripts"
	PortfolioContentPackage PortfolioType = "Content Package"
	PortfolioChannelCopy    PortfolioType = "Channel Copy"
	PortfolioLeadMagnet     PortfolioType = "Lead Magnet"
	PortfolioEmailMarketing PortfolioType = "Email Marketing"
	PortfolioThumbnailCopy  PortfolioType = "Thumbnail Copy"
)

// PortfolioTypes lists every accepted PortfolioType in display order.
var PortfolioTypes = []PortfolioType{
	PortfolioVideoScripts,
	PortfolioContentPackage,
	PortfolioChannelCopy,
	PortfolioLeadMagnet,
	PortfolioEmailMarketing,
	PortfolioThumbnailCopy,
}

func (t PortfolioType) Valid() bool {
	for _, v := range PortfolioTypes {
		if t == v {
			return true
		}
	}
	return false
}

// InquiryStatus is the lifecycle state of a contact inquiry.
type InquiryStatus string

const (
	StatusNew        InquiryStatus = "new"
	StatusContacted  InquiryStatus = "contacted"
	StatusInProgress InquiryStatus = "in-progress"
	StatusCompleted  InquiryStatus = "completed"
	StatusClosed     InquiryStatus = "closed"
)

var InquiryStatuses = []InquiryStatus{
	StatusNew,
	StatusContacted,
	StatusInProgress,
	StatusCompleted,
	StatusClosed,
}

func (s InquiryStatus) Valid() bool {
	for _, v := range InquiryStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// PortfolioItem is a showcased piece of client work.
type PortfolioItem struct {
	ID          string        `json:"id" bson:"_id"`
	Title       string        `json:"title" bson:"title"`
	Client      string        `json:"client" bson:"client"`
	Type        PortfolioType `json:"type" bson:"type"`
	Description string        `json:"description" bson:"description"`
	Results     string        `json:"results" bson:"results"`
	Tags        []string      `json:"tags" bson:"tags"`
	IsActive    bool          `json:"is_active" bson:"is_active"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" bson:"updated_at"`
}

type PortfolioItemCreate struct {
	Title       string        `json:"title" validate:"required,min=1,max=200"`
	Client      string        `json:"client" validate:"required,min=1,max=100"`
	Type        PortfolioType `json:"type" validate:"required,enum"`
	Description string        `json:"description" validate:"required,min=1,max=500"`
	Results     string        `json:"results" validate:"required,min=1,max=300"`
	Tags        []string      `json:"tags" validate:"max=10"`
	IsActive    *bool         `json:"is_active"`
}

type PortfolioItemUpdate struct {
	Title       *string        `json:"title" validate:"omitempty,min=1,max=200"`
	Client      *string        `json:"client" validate:"omitempty,min=1,max=100"`
	Type        *PortfolioType `json:"type" validate:"omitempty,enum"`
	Description *string        `json:"description" validate:"omitempty,min=1,max=500"`
	Results     *string        `json:"results" validate:"omitempty,min=1,max=300"`
	Tags        *[]string      `json:"tags" validate:"omitempty,max=10"`
	IsActive    *bool          `json:"is_active"`
}

// Fields returns the effective field set keyed by stored field name.
func (u PortfolioItemUpdate) Fields() map[string]any {
	f := map[string]any{}
	setString(f, "title", u.Title)
	setString(f, "client", u.Client)
	if u.Type != nil {
		f["type"] = *u.Type
	}
	setString(f, "description", u.Description)
	setString(f, "results", u.Results)
	if u.Tags != nil {
		f["tags"] = *u.Tags
	}
	if u.IsActive != nil {
		f["is_active"] = *u.IsActive
	}
	return f
}

// Testimonial is a quote from a client channel.
type Testimonial struct {
	ID          string    `json:"id" bson:"_id"`
	Name        string    `json:"name" bson:"name"`
	Channel     string    `json:"channel" bson:"channel"`
	Subscribers string    `json:"subscribers" bson:"subscribers"`
	Testimonial string    `json:"testimonial" bson:"testimonial"`
	Rating      int       `json:"rating" bson:"rating"`
	IsActive    bool      `json:"is_active" bson:"is_active"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

type TestimonialCreate struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Channel     string `json:"channel" validate:"required,min=1,max=100"`
	Subscribers string `json:"subscribers" validate:"required,min=1,max=20"`
	Testimonial string `json:"testimonial" validate:"required,min=1,max=1000"`
	Rating      int    `json:"rating" validate:"required,min=1,max=5"`
	IsActive    *bool  `json:"is_active"`
}

type TestimonialUpdate struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Channel     *string `json:"channel" validate:"omitempty,min=1,max=100"`
	Subscribers *string `json:"subscribers" validate:"omitempty,min=1,max=20"`
	Testimonial *string `json:"testimonial" validate:"omitempty,min=1,max=1000"`
	Rating      *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	IsActive    *bool   `json:"is_active"`
}

func (u TestimonialUpdate) Fields() map[string]any {
	f := map[string]any{}
	setString(f, "name", u.Name)
	setString(f, "channel", u.Channel)
	setString(f, "subscribers", u.Subscribers)
	setString(f, "testimonial", u.Testimonial)
	if u.Rating != nil {
		f["rating"] = *u.Rating
	}
	if u.IsActive != nil {
		f["is_active"] = *u.IsActive
	}
	return f
}

// Stats is a headline figure shown on the landing page. Stats carry no
// created_at; Order defines display sequence and is not unique.
type Stats struct {
	ID        string    `json:"id" bson:"_id"`
	Number    string    `json:"number" bson:"number"`
	Label     string    `json:"label" bson:"label"`
	Order     int       `json:"order" bson:"order"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

type StatsCreate struct {
	Number string `json:"number" validate:"required,min=1,max=20"`
	Label  string `json:"label" validate:"required,min=1,max=100"`
	Order  *int   `json:"order" validate:"required,min=0"`
}

type StatsUpdate struct {
	Number *string `json:"number" validate:"omitempty,min=1,max=20"`
	Label  *string `json:"label" validate:"omitempty,min=1,max=100"`
	Order  *int    `json:"order" validate:"omitempty,min=0"`
}

func (u StatsUpdate) Fields() map[string]any {
	f := map[string]any{}
	setString(f, "number", u.Number)
	setString(f, "label", u.Label)
	if u.Order != nil {
		f["order"] = *u.Order
	}
	return f
}

// ContactInquiry is a message submitted through the public contact form.
type ContactInquiry struct {
	ID          string        `json:"id" bson:"_id"`
	Name        string        `json:"name" bson:"name"`
	Email       string        `json:"email" bson:"email"`
	Channel     *string       `json:"channel" bson:"channel"`
	Subscribers *string       `json:"subscribers" bson:"subscribers"`
	Service     string        `json:"service" bson:"service"`
	Project     *string       `json:"project" bson:"project"`
	Budget      *string       `json:"budget" bson:"budget"`
	Message     string        `json:"message" bson:"message"`
	Status      InquiryStatus `json:"status" bson:"status"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" bson:"updated_at"`
}

type ContactInquiryCreate struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Email       string  `json:"email" validate:"required,email"`
	Channel     *string `json:"channel" validate:"omitempty,max=100"`
	Subscribers *string `json:"subscribers" validate:"omitempty,max=20"`
	Service     string  `json:"service" validate:"required,min=1,max=50"`
	Project     *string `json:"project" validate:"omitempty,max=50"`
	Budget      *string `json:"budget" validate:"omitempty,max=20"`
	Message     string  `json:"message" validate:"required,min=1,max=2000"`
}

// ContactInquiryUpdate is the restricted update accepted for inquiries.
type ContactInquiryUpdate struct {
	Status *InquiryStatus `json:"status" validate:"omitempty,enum"`
}

func setString(f map[string]any, key string, v *string) {
	if v != nil {
		f[key] = *v
	}
}
