package service

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/perfumehub/catalog-system/internal/core/domain"
	"github.com/perfumehub/catalog-system/internal/core/ports"
)

// stubMemberRepo is an in-memory ports.MemberRepository keyed by email.
type stubMemberRepo struct {
	mu      sync.Mutex
	nextID  int
	byID    map[string]*domain.Member
	byEmail map[string]*domain.Member
}

func newStubMemberRepo() *stubMemberRepo {
	return &stubMemberRepo{
		byID:    make(map[string]*domain.Member),
		byEmail: make(map[string]*domain.Member),
	}
}

func cloneMember(m *domain.Member) *domain.Member {
	if m == nil {
		return nil
	}
	clone := *m
	return &clone
}

func (r *stubMemberRepo) Create(_ context.Context, member *domain.Member) (*domain.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byEmail[member.Email]; exists {
		return nil, domain.ErrEmailExists
	}
	r.nextID++
	created := cloneMember(member)
	created.ID = "m" + strconv.Itoa(r.nextID)
	r.byID[created.ID] = cloneMember(created)
	r.byEmail[created.Email] = r.byID[created.ID]
	return cloneMember(created), nil
}

func (r *stubMemberRepo) FindByID(_ context.Context, id string) (*domain.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrMemberNotFound
	}
	return cloneMember(m), nil
}

func (r *stubMemberRepo) FindByEmail(_ context.Context, email string) (*domain.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrMemberNotFound
	}
	return cloneMember(m), nil
}

func (r *stubMemberRepo) List(_ context.Context) ([]*domain.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	members := make([]*domain.Member, 0, len(r.byID))
	for _, m := range r.byID {
		members = append(members, cloneMember(m))
	}
	return members, nil
}

func (r *stubMemberRepo) UpdateProfile(_ context.Context, id string, update ports.MemberUpdate) (*domain.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrMemberNotFound
	}
	m.Name = update.Name
	m.YearOfBirth = update.YearOfBirth
	m.Gender = update.Gender
	m.UpdatedAt = time.Now().UTC()
	return cloneMember(m), nil
}

func (r *stubMemberRepo) UpdatePasswordHash(_ context.Context, id string, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.byID[id]
	if !ok {
		return domain.ErrMemberNotFound
	}
	m.PasswordHash = hash
	return nil
}

// stubPerfumeRepo is an in-memory ports.PerfumeRepository. AppendReview
// performs the duplicate check and the append under one lock, mirroring
// the single-document atomicity of the Mongo implementation.
type stubPerfumeRepo struct {
	mu       sync.Mutex
	nextID   int
	perfumes map[string]*domain.Perfume
}

func newStubPerfumeRepo() *stubPerfumeRepo {
	return &stubPerfumeRepo{perfumes: make(map[string]*domain.Perfume)}
}

func clonePerfume(p *domain.Perfume) *domain.Perfume {
	if p == nil {
		return nil
	}
	clone := *p
	if p.Reviews != nil {
		clone.Reviews = append(make([]domain.Review, 0, len(p.Reviews)), p.Reviews...)
	}
	return &clone
}

func (r *stubPerfumeRepo) Create(_ context.Context, p *domain.Perfume) (*domain.Perfume, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	created := clonePerfume(p)
	created.ID = "p" + strconv.Itoa(r.nextID)
	r.perfumes[created.ID] = clonePerfume(created)
	return clonePerfume(created), nil
}

func (r *stubPerfumeRepo) FindByID(_ context.Context, id string) (*domain.Perfume, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.perfumes[id]
	if !ok {
		return nil, domain.ErrPerfumeNotFound
	}
	return clonePerfume(p), nil
}

func (r *stubPerfumeRepo) List(_ context.Context, brandID string) ([]*domain.Perfume, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Perfume
	for _, p := range r.perfumes {
		if brandID == "" || p.BrandID == brandID {
			out = append(out, clonePerfume(p))
		}
	}
	return out, nil
}

func (r *stubPerfumeRepo) Search(_ context.Context, q string) ([]*domain.Perfume, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Perfume
	for _, p := range r.perfumes {
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(q)) {
			out = append(out, clonePerfume(p))
		}
	}
	return out, nil
}

func (r *stubPerfumeRepo) Update(_ context.Context, id string, p *domain.Perfume) (*domain.Perfume, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.perfumes[id]
	if !ok {
		return nil, domain.ErrPerfumeNotFound
	}
	updated := clonePerfume(p)
	updated.ID = id
	updated.Reviews = append([]domain.Review(nil), existing.Reviews...)
	r.perfumes[id] = updated
	return clonePerfume(updated), nil
}

func (r *stubPerfumeRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.perfumes[id]; !ok {
		return domain.ErrPerfumeNotFound
	}
	delete(r.perfumes, id)
	return nil
}

func (r *stubPerfumeRepo) CountByBrand(_ context.Context, brandID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, p := range r.perfumes {
		if p.BrandID == brandID {
			n++
		}
	}
	return n, nil
}

func (r *stubPerfumeRepo) FindReviewedBy(_ context.Context, memberID string) ([]*domain.Perfume, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Perfume
	for _, p := range r.perfumes {
		if p.ReviewBy(memberID) != nil {
			out = append(out, clonePerfume(p))
		}
	}
	return out, nil
}

func (r *stubPerfumeRepo) AppendReview(_ context.Context, perfumeID string, review domain.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.perfumes[perfumeID]
	if !ok {
		return domain.ErrPerfumeNotFound
	}
	if p.ReviewBy(review.AuthorID) != nil {
		return domain.ErrDuplicateReview
	}
	p.Reviews = append(p.Reviews, review)
	return nil
}

// stubBrandRepo is an in-memory ports.BrandRepository.
type stubBrandRepo struct {
	mu     sync.Mutex
	nextID int
	brands map[string]*domain.Brand
}

func newStubBrandRepo() *stubBrandRepo {
	return &stubBrandRepo{brands: make(map[string]*domain.Brand)}
}

func (r *stubBrandRepo) Create(_ context.Context, b *domain.Brand) (*domain.Brand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	created := *b
	created.ID = "b" + strconv.Itoa(r.nextID)
	r.brands[created.ID] = &created
	clone := created
	return &clone, nil
}

func (r *stubBrandRepo) FindByID(_ context.Context, id string) (*domain.Brand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.brands[id]
	if !ok {
		return nil, domain.ErrBrandNotFound
	}
	clone := *b
	return &clone, nil
}

func (r *stubBrandRepo) List(_ context.Context) ([]*domain.Brand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	brands := make([]*domain.Brand, 0, len(r.brands))
	for _, b := range r.brands {
		clone := *b
		brands = append(brands, &clone)
	}
	return brands, nil
}

func (r *stubBrandRepo) Update(_ context.Context, id string, name string) (*domain.Brand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.brands[id]
	if !ok {
		return nil, domain.ErrBrandNotFound
	}
	b.Name = name
	clone := *b
	return &clone, nil
}

func (r *stubBrandRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.brands[id]; !ok {
		return domain.ErrBrandNotFound
	}
	delete(r.brands, id)
	return nil
}

// stubSessionStore is an in-memory ports.SessionStore.
type stubSessionStore struct {
	mu       sync.Mutex
	nextID   int
	sessions map[string]domain.MemberSummary
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]domain.MemberSummary)}
}

func (s *stubSessionStore) Create(_ context.Context, member domain.MemberSummary) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	handle := "sess" + strconv.Itoa(s.nextID)
	s.sessions[handle] = member
	return handle, nil
}

func (s *stubSessionStore) Resolve(_ context.Context, handle string) (*domain.MemberSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	member, ok := s.sessions[handle]
	if !ok {
		return nil, nil
	}
	clone := member
	return &clone, nil
}

func (s *stubSessionStore) Destroy(_ context.Context, handle string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, handle)
	return nil
}
