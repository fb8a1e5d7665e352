package content

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestErrorTaxonomy(t *testing.T) {
	nf := &NotFoundError{Detail: "Portfolio item not found"}
	require.ErrorIs(t, nf, ErrNotFound)
	require.Equal(t, "Portfolio item not found", nf.Error())

	cause := errors.New("server selection timeout")
	perr := &PersistenceError{Op: "fetching stats", Err: cause}
	require.Equal(t, "Error fetching stats", perr.Error())
	require.ErrorIs(t, perr, cause)
	require.Equal(t, "fetching stats: server selection timeout", perr.Cause())

	verr := &ValidationError{Fields: []FieldError{{Field: "email", Message: "value is not a valid email address"}}}
	require.Contains(t, verr.Error(), "email: value is not a valid email address")
}

func TestBuilders(t *testing.T) {
	p := NewPortfolioItem(PortfolioItemCreate{Title: "t"}, "id-1", fixedNow)
	require.Equal(t, "id-1", p.ID)
	require.True(t, p.IsActive)
	require.NotNil(t, p.Tags)
	require.Equal(t, p.CreatedAt, p.UpdatedAt)

	tm := NewTestimonial(TestimonialCreate{Name: "n", IsActive: ptr(false)}, "id-2", fixedNow)
	require.False(t, tm.IsActive)

	inq := NewContactInquiry(ContactInquiryCreate{Name: "a"}, "id-3", fixedNow)
	require.Equal(t, StatusNew, inq.Status)
	require.Nil(t, inq.Channel)
}

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
