package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/willsblog/microblog-api/internal/core/domain"
	"github.com/willsblog/microblog-api/internal/core/ports"
)

// In-memory fakes shared by the service tests. They honour the same
// contracts as the Mongo repositories: unique keys, idempotent edges and
// newest-first ordering with id as the tie-break.

type stubUserRepo struct {
	mu    sync.Mutex
	users map[int64]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return domain.ErrUserExists
		}
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *stubUserRepo) FindByIDs(_ context.Context, ids []int64) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.User
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) UpdateAboutMe(_ context.Context, id int64, aboutMe string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.AboutMe = aboutMe
	return nil
}

func (r *stubUserRepo) UpdateLastSeen(_ context.Context, id int64, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.LastSeen = at
	return nil
}

func (r *stubUserRepo) UpdatePassword(_ context.Context, id int64, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

type stubPostRepo struct {
	mu    sync.Mutex
	posts []*domain.Post
}

func newStubPostRepo() *stubPostRepo {
	return &stubPostRepo{}
}

func (r *stubPostRepo) Create(_ context.Context, post *domain.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *post
	r.posts = append(r.posts, &cp)
	return nil
}

func (r *stubPostRepo) ListByAuthors(_ context.Context, authorIDs []int64, offset, limit int) ([]*domain.Post, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	authors := make(map[int64]struct{}, len(authorIDs))
	for _, id := range authorIDs {
		authors[id] = struct{}{}
	}

	var matched []*domain.Post
	for _, p := range r.posts {
		if _, ok := authors[p.AuthorID]; ok {
			cp := *p
			matched = append(matched, &cp)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID > matched[j].ID
	})

	if offset >= len(matched) {
		return nil, false, nil
	}
	matched = matched[offset:]
	hasNext := len(matched) > limit
	if hasNext {
		matched = matched[:limit]
	}
	return matched, hasNext, nil
}

func (r *stubPostRepo) CountByAuthor(_ context.Context, authorID int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, p := range r.posts {
		if p.AuthorID == authorID {
			n++
		}
	}
	return n, nil
}

type edgeKey struct {
	follower int64
	followee int64
}

type stubFollowRepo struct {
	mu    sync.Mutex
	edges map[edgeKey]time.Time
}

func newStubFollowRepo() *stubFollowRepo {
	return &stubFollowRepo{edges: make(map[edgeKey]time.Time)}
}

func (r *stubFollowRepo) Create(_ context.Context, edge *domain.FollowEdge) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := edgeKey{follower: edge.FollowerID, followee: edge.FolloweeID}
	if _, ok := r.edges[k]; ok {
		return nil
	}
	r.edges[k] = edge.CreatedAt
	return nil
}

func (r *stubFollowRepo) Delete(_ context.Context, followerID, followeeID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.edges, edgeKey{follower: followerID, followee: followeeID})
	return nil
}

func (r *stubFollowRepo) Exists(_ context.Context, followerID, followeeID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.edges[edgeKey{follower: followerID, followee: followeeID}]
	return ok, nil
}

func (r *stubFollowRepo) FollowedIDs(_ context.Context, followerID int64) ([]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ids []int64
	for k := range r.edges {
		if k.follower == followerID {
			ids = append(ids, k.followee)
		}
	}
	return ids, nil
}

func (r *stubFollowRepo) CountFollowers(_ context.Context, userID int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for k := range r.edges {
		if k.followee == userID {
			n++
		}
	}
	return n, nil
}

func (r *stubFollowRepo) CountFollowing(_ context.Context, userID int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for k := range r.edges {
		if k.follower == userID {
			n++
		}
	}
	return n, nil
}

// sequentialIDs hands out 1, 2, 3, ... so tests get predictable ids that
// still grow with creation order.
type sequentialIDs struct {
	mu   sync.Mutex
	next int64
}

func (g *sequentialIDs) NextID() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return g.next
}

// stubTokenStore records claimed token ids in memory.
type stubTokenStore struct {
	mu      sync.Mutex
	claimed map[string]bool
}

func newStubTokenStore() *stubTokenStore {
	return &stubTokenStore{claimed: make(map[string]bool)}
}

func (s *stubTokenStore) Claim(_ context.Context, tokenID string, _ time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.claimed[tokenID] {
		return false, nil
	}
	s.claimed[tokenID] = true
	return true, nil
}

// captureDispatcher records enqueued mail synchronously.
type captureDispatcher struct {
	mu   sync.Mutex
	sent []ports.PasswordResetMail
}

func (d *captureDispatcher) Enqueue(mail ports.PasswordResetMail) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sent = append(d.sent, mail)
}

func (d *captureDispatcher) all() []ports.PasswordResetMail {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]ports.PasswordResetMail(nil), d.sent...)
}
