package content

const (
	// MaxListResults caps portfolio and testimonial listings.
	MaxListResults = 1000
	// MaxStatsResults caps the stats listing.
	MaxStatsResults = 1000

	DefaultInquiryLimit = 50
	MaxInquiryLimit     = 100
)

type PortfolioQuery struct {
	Type       *PortfolioType `form:"type" validate:"omitempty,enum"`
	ActiveOnly bool           `form:"active,default=true"`
}

type TestimonialQuery struct {
	ActiveOnly bool `form:"active,default=true"`
}

type InquiryQuery struct {
	Status *InquiryStatus `form:"status" validate:"omitempty,enum"`
	Limit  int            `form:"limit,default=50" validate:"min=1,max=100"`
}
