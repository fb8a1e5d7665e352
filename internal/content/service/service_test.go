package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/contentcraft/contentcraft/backend/api/internal/content"
	"github.com/contentcraft/contentcraft/backend/api/internal/content/repository"
	"github.com/contentcraft/contentcraft/backend/api/pkg/metrics"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

// steppingClock advances one second per call.
func steppingClock(start time.Time) Clock {
	t := start
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func frozenClock(at time.Time) Clock {
	return func() time.Time { return at }
}

var epoch = time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)

// brokenCollection fails every call the way an unreachable store would.
type brokenCollection[T any] struct{ err error }

func (b brokenCollection[T]) Name() string { return "broken" }
func (b brokenCollection[T]) List(context.Context, repository.Query) ([]T, error) {
	return nil, b.err
}
func (b brokenCollection[T]) Get(context.Context, string) (*T, error)   { return nil, b.err }
func (b brokenCollection[T]) Insert(context.Context, string, *T) error { return b.err }
func (b brokenCollection[T]) Update(context.Context, string, map[string]any) (int64, error) {
	return 0, b.err
}
func (b brokenCollection[T]) Delete(context.Context, string) (int64, error) { return 0, b.err }
func (b brokenCollection[T]) DeleteAll(context.Context) (int64, error)      { return 0, b.err }

func portfolioInput(title string, typ content.PortfolioType) content.PortfolioItemCreate {
	return content.PortfolioItemCreate{
		Title:       title,
		Client:      "Tech Insider Pro",
		Type:        typ,
		Description: "Rewrote channel description",
		Results:     "CTR up 18%",
		Tags:        []string{"Tech"},
	}
}

func requireNotFound(t *testing.T, err error, detail string) {
	t.Helper()
	require.ErrorIs(t, err, content.ErrNotFound)
	var nf *content.NotFoundError
	require.True(t, errors.As(err, &nf))
	require.Equal(t, detail, nf.Detail)
}

func TestPortfolioService_CreateAssignsServerFields(t *testing.T) {
	ctx := context.Background()
	svc := NewPortfolioService(repository.NewMemoryCollection[content.PortfolioItem](content.CollectionPortfolio))

	a, err := svc.Create(ctx, portfolioInput("A", content.PortfolioChannelCopy))
	require.NoError(t, err)
	b, err := svc.Create(ctx, portfolioInput("B", content.PortfolioChannelCopy))
	require.NoError(t, err)

	_, err = uuid.Parse(a.ID)
	require.NoError(t, err)
	require.NotEqual(t, a.ID, b.ID)
	require.True(t, a.IsActive)
	require.Equal(t, a.CreatedAt, a.UpdatedAt)
	require.Equal(t, time.UTC, a.CreatedAt.Location())
	require.Zero(t, a.CreatedAt.Nanosecond()%int(time.Millisecond))
}

func TestPortfolioService_CreateRejectsInvalidWithoutWriting(t *testing.T) {
	ctx := context.Background()
	col := repository.NewMemoryCollection[content.PortfolioItem](content.CollectionPortfolio)
	svc := NewPortfolioService(col)

	_, err := svc.Create(ctx, portfolioInput("A", "Podcast"))
	var verr *content.ValidationError
	require.ErrorAs(t, err, &verr)

	all, err := col.List(ctx, repository.Query{})
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestPortfolioService_ListFiltersAndOrders(t *testing.T) {
	ctx := context.Background()
	svc := NewPortfolioService(repository.NewMemoryCollection[content.PortfolioItem](content.CollectionPortfolio), WithClock(steppingClock(epoch)))

	first, err := svc.Create(ctx, portfolioInput("first", content.PortfolioLeadMagnet))
	require.NoError(t, err)
	hidden := portfolioInput("hidden", content.PortfolioLeadMagnet)
	hidden.IsActive = ptr(false)
	_, err = svc.Create(ctx, hidden)
	require.NoError(t, err)
	_, err = svc.Create(ctx, portfolioInput("last", content.PortfolioVideoScripts))
	require.NoError(t, err)

	active, err := svc.List(ctx, content.PortfolioQuery{ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, active, 2)
	require.Equal(t, "last", active[0].Title)
	require.Equal(t, first.ID, active[1].ID)

	all, err := svc.List(ctx, content.PortfolioQuery{})
	require.NoError(t, err)
	require.Len(t, all, 3)

	magnets, err := svc.List(ctx, content.PortfolioQuery{Type: ptr(content.PortfolioLeadMagnet), ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, magnets, 1)
	require.Equal(t, "first", magnets[0].Title)

	_, err = svc.List(ctx, content.PortfolioQuery{Type: ptr(content.PortfolioType("Blog"))})
	var verr *content.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestPortfolioService_Update(t *testing.T) {
	ctx := context.Background()
	svc := NewPortfolioService(repository.NewMemoryCollection[content.PortfolioItem](content.CollectionPortfolio), WithClock(steppingClock(epoch)))
	item, err := svc.Create(ctx, portfolioInput("Old", content.PortfolioChannelCopy))
	require.NoError(t, err)

	updated, err := svc.Update(ctx, item.ID, content.PortfolioItemUpdate{Title: ptr("New"), IsActive: ptr(false)})
	require.NoError(t, err)
	require.Equal(t, "New", updated.Title)
	require.False(t, updated.IsActive)
	require.Equal(t, item.Client, updated.Client)
	require.Equal(t, item.CreatedAt, updated.CreatedAt)
	require.True(t, updated.UpdatedAt.After(item.UpdatedAt))

	_, err = svc.Update(ctx, item.ID, content.PortfolioItemUpdate{})
	requireNotFound(t, err, "Portfolio item not found or no changes made")

	_, err = svc.Update(ctx, "nonexistent-id", content.PortfolioItemUpdate{Title: ptr("x")})
	requireNotFound(t, err, "Portfolio item not found or no changes made")
}

func TestPortfolioService_UpdateWithNoEffectIsNotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewPortfolioService(repository.NewMemoryCollection[content.PortfolioItem](content.CollectionPortfolio), WithClock(frozenClock(epoch)))
	item, err := svc.Create(ctx, portfolioInput("Same", content.PortfolioChannelCopy))
	require.NoError(t, err)

	// identical values and an unchanged updated_at modify nothing
	_, err = svc.Update(ctx, item.ID, content.PortfolioItemUpdate{Title: ptr("Same")})
	requireNotFound(t, err, "Portfolio item not found or no changes made")
}

func TestPortfolioService_Delete(t *testing.T) {
	ctx := context.Background()
	svc := NewPortfolioService(repository.NewMemoryCollection[content.PortfolioItem](content.CollectionPortfolio))
	item, err := svc.Create(ctx, portfolioInput("Doomed", content.PortfolioThumbnailCopy))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, item.ID))
	requireNotFound(t, svc.Delete(ctx, item.ID), "Portfolio item not found")

	all, err := svc.List(ctx, content.PortfolioQuery{})
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestServices_PersistenceFaults(t *testing.T) {
	ctx := context.Background()
	cause := errors.New("server selection error: context deadline exceeded")

	before := testutil.ToFloat64(metrics.PersistenceErrors.WithLabelValues("fetching portfolio items"))
	portfolio := NewPortfolioService(brokenCollection[content.PortfolioItem]{err: cause})
	_, err := portfolio.List(ctx, content.PortfolioQuery{})
	var perr *content.PersistenceError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, "Error fetching portfolio items", perr.Error())
	require.ErrorIs(t, err, cause)
	require.Equal(t, before+1, testutil.ToFloat64(metrics.PersistenceErrors.WithLabelValues("fetching portfolio items")))

	_, err = portfolio.Create(ctx, portfolioInput("x", content.PortfolioChannelCopy))
	require.EqualError(t, err, "Error creating portfolio item")
	_, err = portfolio.Update(ctx, "id", content.PortfolioItemUpdate{Title: ptr("x")})
	require.EqualError(t, err, "Error updating portfolio item")
	require.EqualError(t, portfolio.Delete(ctx, "id"), "Error deleting portfolio item")

	testimonials := NewTestimonialService(brokenCollection[content.Testimonial]{err: cause})
	_, err = testimonials.List(ctx, content.TestimonialQuery{})
	require.EqualError(t, err, "Error fetching testimonials")

	stats := NewStatsService(brokenCollection[content.Stats]{err: cause})
	_, err = stats.List(ctx)
	require.EqualError(t, err, "Error fetching stats")
	_, err = stats.Update(ctx, "id", content.StatsUpdate{Label: ptr("x")})
	require.EqualError(t, err, "Error updating stats")

	inquiries := NewInquiryService(brokenCollection[content.ContactInquiry]{err: cause})
	_, err = inquiries.Create(ctx, content.ContactInquiryCreate{Name: "A", Email: "a@example.com", Service: "s", Message: "m"})
	require.EqualError(t, err, "Error submitting inquiry")
	_, err = inquiries.List(ctx, content.InquiryQuery{})
	require.EqualError(t, err, "Error fetching contact inquiries")
	_, err = inquiries.UpdateStatus(ctx, "id", content.ContactInquiryUpdate{})
	require.EqualError(t, err, "Error updating inquiry status")
}

func TestTestimonialService(t *testing.T) {
	ctx := context.Background()
	svc := NewTestimonialService(repository.NewMemoryCollection[content.Testimonial](content.CollectionTestimonials), WithClock(steppingClock(epoch)))
	in := content.TestimonialCreate{Name: "Sarah Chen", Channel: "Travel With Sarah", Subscribers: "245K", Testimonial: "Great", Rating: 5}

	a, err := svc.Create(ctx, in)
	require.NoError(t, err)
	in.Name = "Mike Rodriguez"
	in.IsActive = ptr(false)
	_, err = svc.Create(ctx, in)
	require.NoError(t, err)

	active, err := svc.List(ctx, content.TestimonialQuery{ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, active, 1)
	require.Equal(t, a.ID, active[0].ID)

	all, err := svc.List(ctx, content.TestimonialQuery{})
	require.NoError(t, err)
	require.Equal(t, "Mike Rodriguez", all[0].Name)

	updated, err := svc.Update(ctx, a.ID, content.TestimonialUpdate{Rating: ptr(4)})
	require.NoError(t, err)
	require.Equal(t, 4, updated.Rating)

	_, err = svc.Update(ctx, a.ID, content.TestimonialUpdate{})
	requireNotFound(t, err, "Testimonial not found or no changes made")

	in.Rating = 0
	_, err = svc.Create(ctx, in)
	var verr *content.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestStatsService(t *testing.T) {
	ctx := context.Background()
	svc := NewStatsService(repository.NewMemoryCollection[content.Stats](content.CollectionStats), WithClock(steppingClock(epoch)))

	for _, o := range []int{3, 0, 2, 1} {
		_, err := svc.Create(ctx, content.StatsCreate{Number: fmt.Sprintf("%d+", o), Label: fmt.Sprintf("stat %d", o), Order: ptr(o)})
		require.NoError(t, err)
	}
	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 4)
	for i, s := range list {
		require.Equal(t, i, s.Order)
	}

	updated, err := svc.Update(ctx, list[0].ID, content.StatsUpdate{Number: ptr("200+")})
	require.NoError(t, err)
	require.Equal(t, "200+", updated.Number)
	require.Equal(t, list[0].Label, updated.Label)
	require.True(t, updated.UpdatedAt.After(list[0].UpdatedAt))

	_, err = svc.Update(ctx, "missing", content.StatsUpdate{Number: ptr("1")})
	requireNotFound(t, err, "Stats item not found or no changes made")
	_, err = svc.Update(ctx, list[0].ID, content.StatsUpdate{})
	requireNotFound(t, err, "Stats item not found or no changes made")
}

func inquiryInput(name string) content.ContactInquiryCreate {
	return content.ContactInquiryCreate{
		Name:    name,
		Email:   "alex@example.com",
		Channel: ptr("Alex Explores"),
		Service: "Content Multiplier",
		Message: "Looking to repurpose my travel videos into blog posts.",
	}
}

func TestInquiryService_CreateAndList(t *testing.T) {
	ctx := context.Background()
	received := testutil.ToFloat64(metrics.InquiriesReceived)
	svc := NewInquiryService(repository.NewMemoryCollection[content.ContactInquiry](content.CollectionInquiries), WithClock(steppingClock(epoch)))

	first, err := svc.Create(ctx, inquiryInput("Alex Johnson"))
	require.NoError(t, err)
	require.Equal(t, content.StatusNew, first.Status)
	require.Equal(t, "Alex Explores", *first.Channel)
	require.Nil(t, first.Budget)
	require.Equal(t, received+1, testutil.ToFloat64(metrics.InquiriesReceived))

	for i := 0; i < 4; i++ {
		_, err := svc.Create(ctx, inquiryInput(fmt.Sprintf("Sender %d", i)))
		require.NoError(t, err)
	}

	list, err := svc.List(ctx, content.InquiryQuery{})
	require.NoError(t, err)
	require.Len(t, list, 5)
	require.Equal(t, "Sender 3", list[0].Name)

	limited, err := svc.List(ctx, content.InquiryQuery{Limit: 2})
	require.NoError(t, err)
	require.Len(t, limited, 2)

	_, err = svc.List(ctx, content.InquiryQuery{Limit: 101})
	var verr *content.ValidationError
	require.ErrorAs(t, err, &verr)

	_, err = svc.UpdateStatus(ctx, first.ID, content.ContactInquiryUpdate{Status: ptr(content.StatusContacted)})
	require.NoError(t, err)
	contacted, err := svc.List(ctx, content.InquiryQuery{Status: ptr(content.StatusContacted)})
	require.NoError(t, err)
	require.Len(t, contacted, 1)
	require.Equal(t, first.ID, contacted[0].ID)
}

func TestInquiryService_CreateInvalidStoresNothing(t *testing.T) {
	ctx := context.Background()
	col := repository.NewMemoryCollection[content.ContactInquiry](content.CollectionInquiries)
	svc := NewInquiryService(col)

	in := inquiryInput("Alex Johnson")
	in.Email = "not-an-email"
	_, err := svc.Create(ctx, in)
	var verr *content.ValidationError
	require.ErrorAs(t, err, &verr)

	all, err := col.List(ctx, repository.Query{})
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestInquiryService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	svc := NewInquiryService(repository.NewMemoryCollection[content.ContactInquiry](content.CollectionInquiries), WithClock(steppingClock(epoch)))
	inq, err := svc.Create(ctx, inquiryInput("Alex Johnson"))
	require.NoError(t, err)

	got, err := svc.UpdateStatus(ctx, inq.ID, content.ContactInquiryUpdate{Status: ptr(content.StatusInProgress)})
	require.NoError(t, err)
	require.Equal(t, content.StatusInProgress, got.Status)
	require.True(t, got.UpdatedAt.After(inq.UpdatedAt))
	require.Equal(t, inq.CreatedAt, got.CreatedAt)

	// no status still refreshes updated_at
	again, err := svc.UpdateStatus(ctx, inq.ID, content.ContactInquiryUpdate{})
	require.NoError(t, err)
	require.Equal(t, content.StatusInProgress, again.Status)
	require.True(t, again.UpdatedAt.After(got.UpdatedAt))

	_, err = svc.UpdateStatus(ctx, "nonexistent-id", content.ContactInquiryUpdate{Status: ptr(content.StatusClosed)})
	requireNotFound(t, err, "Contact inquiry not found")

	_, err = svc.UpdateStatus(ctx, inq.ID, content.ContactInquiryUpdate{Status: ptr(content.InquiryStatus("archived"))})
	var verr *content.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestWithIDGenerator(t *testing.T) {
	ctx := context.Background()
	svc := NewStatsService(repository.NewMemoryCollection[content.Stats](content.CollectionStats), WithIDGenerator(func() string { return "fixed-id" }))
	st, err := svc.Create(ctx, content.StatsCreate{Number: "1", Label: "one", Order: ptr(0)})
	require.NoError(t, err)
	require.Equal(t, "fixed-id", st.ID)

	// a second insert under the same id is a storage fault
	_, err = svc.Create(ctx, content.StatsCreate{Number: "2", Label: "two", Order: ptr(1)})
	require.EqualError(t, err, "Error creating stats")
}
