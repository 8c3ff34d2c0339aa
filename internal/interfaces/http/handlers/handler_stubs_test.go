package handlers

import (
	"context"
	"time"

	"github.com/google/uuid"

	"bedrijvengids.backend/internal/domain/entities"
	domainerrors "bedrijvengids.backend/internal/domain/errors"
)

// In-memory repository stubs shared by the handler tests. They implement
// the same contracts as the gorm-backed repositories, including duplicate
// and not-found behavior.

type facilityRepoStub struct {
	bySlug map[string]*entities.Facility
}

func newFacilityRepoStub(facilities ...*entities.Facility) *facilityRepoStub {
	s := &facilityRepoStub{bySlug: map[string]*entities.Facility{}}
	for _, f := range facilities {
		s.bySlug[f.Slug] = f
	}
	return s
}

func (s *facilityRepoStub) GetBySlug(_ context.Context, slug string) (*entities.Facility, error) {
	f, ok := s.bySlug[slug]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return f, nil
}

func (s *facilityRepoStub) List(_ context.Context, _ entities.FacilityFilter, limit, offset int) ([]*entities.Facility, int64, error) {
	out := make([]*entities.Facility, 0, len(s.bySlug))
	for _, f := range s.bySlug {
		out = append(out, f)
	}
	total := int64(len(out))
	if offset >= len(out) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(out) {
		end = len(out)
	}
	return out[offset:end], total, nil
}

type favoriteRepoStub struct {
	rows map[string]*entities.Favorite
}

func newFavoriteRepoStub() *favoriteRepoStub {
	return &favoriteRepoStub{rows: map[string]*entities.Favorite{}}
}

func favKey(userID uuid.UUID, slug string) string {
	return userID.String() + "/" + slug
}

func (s *favoriteRepoStub) Create(_ context.Context, favorite *entities.Favorite) error {
	key := favKey(favorite.UserID, favorite.FacilitySlug)
	if _, ok := s.rows[key]; ok {
		return domainerrors.ErrAlreadyExists
	}
	if favorite.ID == uuid.Nil {
		favorite.ID = uuid.New()
	}
	favorite.CreatedAt = time.Now()
	s.rows[key] = favorite
	return nil
}

func (s *favoriteRepoStub) GetByUserAndSlug(_ context.Context, userID uuid.UUID, slug string) (*entities.Favorite, error) {
	f, ok := s.rows[favKey(userID, slug)]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return f, nil
}

func (s *favoriteRepoStub) ListByUserID(_ context.Context, userID uuid.UUID) ([]*entities.Favorite, error) {
	var out []*entities.Favorite
	for _, f := range s.rows {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (s *favoriteRepoStub) DeleteByUserAndSlug(_ context.Context, userID uuid.UUID, slug string) (int64, error) {
	key := favKey(userID, slug)
	if _, ok := s.rows[key]; !ok {
		return 0, nil
	}
	delete(s.rows, key)
	return 1, nil
}

type reviewRepoStub struct {
	rows map[uuid.UUID]*entities.Review
}

func newReviewRepoStub() *reviewRepoStub {
	return &reviewRepoStub{rows: map[uuid.UUID]*entities.Review{}}
}

func (s *reviewRepoStub) Create(_ context.Context, review *entities.Review) error {
	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}
	review.CreatedAt = time.Now()
	s.rows[review.ID] = review
	return nil
}

func (s *reviewRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Review, error) {
	r, ok := s.rows[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return r, nil
}

func (s *reviewRepoStub) ListPublishedBySlug(_ context.Context, slug string) ([]*entities.Review, error) {
	var out []*entities.Review
	for _, r := range s.rows {
		if r.FacilitySlug == slug && r.Status == entities.ReviewStatusPublished {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *reviewRepoStub) UpdateStatus(_ context.Context, id uuid.UUID, status entities.ReviewStatus) error {
	r, ok := s.rows[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	r.Status = status
	return nil
}

type embeddedReviewRepoStub struct {
	rows []*entities.EmbeddedReview
}

func (s *embeddedReviewRepoStub) ListBySlug(_ context.Context, slug string) ([]*entities.EmbeddedReview, error) {
	var out []*entities.EmbeddedReview
	for _, r := range s.rows {
		if r.FacilitySlug == slug {
			out = append(out, r)
		}
	}
	return out, nil
}

type claimRepoStub struct {
	rows map[uuid.UUID]*entities.Claim
}

func newClaimRepoStub() *claimRepoStub {
	return &claimRepoStub{rows: map[uuid.UUID]*entities.Claim{}}
}

func (s *claimRepoStub) Create(_ context.Context, claim *entities.Claim) error {
	if claim.ID == uuid.Nil {
		claim.ID = uuid.New()
	}
	claim.CreatedAt = time.Now()
	s.rows[claim.ID] = claim
	return nil
}

func (s *claimRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Claim, error) {
	c, ok := s.rows[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return c, nil
}

func (s *claimRepoStub) GetActiveByUserAndSlug(_ context.Context, userID uuid.UUID, slug string) (*entities.Claim, error) {
	for _, c := range s.rows {
		if c.UserID == userID && c.FacilitySlug == slug && entities.ActiveClaimStatus(c.Status) {
			return c, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *claimRepoStub) ListByUserID(_ context.Context, userID uuid.UUID) ([]*entities.Claim, error) {
	var out []*entities.Claim
	for _, c := range s.rows {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *claimRepoStub) UpdateStatus(_ context.Context, id uuid.UUID, status entities.ClaimStatus) error {
	c, ok := s.rows[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	c.Status = status
	return nil
}

func (s *claimRepoStub) SoftDelete(_ context.Context, id uuid.UUID) error {
	delete(s.rows, id)
	return nil
}

type codeRepoStub struct {
	rows map[uuid.UUID]*entities.VerificationCode
}

func newCodeRepoStub() *codeRepoStub {
	return &codeRepoStub{rows: map[uuid.UUID]*entities.VerificationCode{}}
}

func (s *codeRepoStub) Create(_ context.Context, code *entities.VerificationCode) error {
	if code.ID == uuid.Nil {
		code.ID = uuid.New()
	}
	code.CreatedAt = time.Now()
	s.rows[code.ID] = code
	return nil
}

func (s *codeRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.VerificationCode, error) {
	c, ok := s.rows[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return c, nil
}

func (s *codeRepoStub) GetActiveByReference(_ context.Context, referenceID uuid.UUID, purpose entities.CodePurpose) (*entities.VerificationCode, error) {
	for _, c := range s.rows {
		if c.ReferenceID.Valid && c.ReferenceID.UUID == referenceID && c.Purpose == purpose && !c.Consumed() {
			return c, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *codeRepoStub) InvalidateActive(_ context.Context, target string, purpose entities.CodePurpose) error {
	for id, c := range s.rows {
		if c.Target == target && c.Purpose == purpose && !c.Consumed() {
			delete(s.rows, id)
		}
	}
	return nil
}

func (s *codeRepoStub) MarkConsumed(_ context.Context, id uuid.UUID) error {
	c, ok := s.rows[id]
	if !ok || c.Consumed() {
		return domainerrors.ErrNotFound
	}
	c.ConsumedAt.SetValid(time.Now())
	return nil
}

func (s *codeRepoStub) DeleteExpired(_ context.Context, before time.Time, _ int) (int64, error) {
	var n int64
	for id, c := range s.rows {
		if c.ExpiresAt.Before(before) && !c.Consumed() {
			delete(s.rows, id)
			n++
		}
	}
	return n, nil
}

type userRepoStub struct {
	byID    map[uuid.UUID]*entities.User
	byEmail map[string]*entities.User
}

func newUserRepoStub(users ...*entities.User) *userRepoStub {
	s := &userRepoStub{byID: map[uuid.UUID]*entities.User{}, byEmail: map[string]*entities.User{}}
	for _, u := range users {
		s.byID[u.ID] = u
		s.byEmail[u.Email] = u
	}
	return s
}

func (s *userRepoStub) Create(_ context.Context, user *entities.User) error {
	if _, ok := s.byEmail[user.Email]; ok {
		return domainerrors.ErrAlreadyExists
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	s.byID[user.ID] = user
	s.byEmail[user.Email] = user
	return nil
}

func (s *userRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.User, error) {
	u, ok := s.byID[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return u, nil
}

func (s *userRepoStub) GetByEmail(_ context.Context, email string) (*entities.User, error) {
	u, ok := s.byEmail[email]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return u, nil
}

func (s *userRepoStub) Update(context.Context, *entities.User) error        { return nil }
func (s *userRepoStub) SoftDelete(context.Context, uuid.UUID) error         { return nil }
func (s *userRepoStub) List(context.Context, string) ([]*entities.User, error) {
	return nil, nil
}

type uowStub struct{}

func (uowStub) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mailSenderStub struct {
	lastRegistrationCode string
	lastClaimCode        string
	err                  error
}

func (s *mailSenderStub) SendRegistrationCode(_, _, code string, _ time.Duration) error {
	if s.err != nil {
		return s.err
	}
	s.lastRegistrationCode = code
	return nil
}

func (s *mailSenderStub) SendClaimCode(_, _, _, code string, _ time.Duration) error {
	if s.err != nil {
		return s.err
	}
	s.lastClaimCode = code
	return nil
}

type limiterStub struct {
	allow bool
}

func (s limiterStub) Allow(context.Context, string) (bool, error) { return s.allow, nil }
func (s limiterStub) Reset(context.Context, string) error         { return nil }
