// Package memory implements the repository interfaces over process memory.
// It backs the service tests and mirrors the postgres repositories'
// semantics: counters are recomputed from the like set and comment table
// under the store lock.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"blog-platform/services/blog/internal/entity"
	"blog-platform/services/blog/internal/repo/persistent"

	"github.com/google/uuid"
)

type Store struct {
	mu       sync.RWMutex
	users    map[string]entity.User
	posts    map[string]entity.Post
	likes    map[string]map[string]struct{}
	comments map[string]entity.Comment
	last     time.Time
}

func NewStore() *Store {
	return &Store{
		users:    make(map[string]entity.User),
		posts:    make(map[string]entity.Post),
		likes:    make(map[string]map[string]struct{}),
		comments: make(map[string]entity.Comment),
	}
}

func (s *Store) Users() persistent.UserRepository       { return &userRepo{s} }
func (s *Store) Posts() persistent.PostRepository       { return &postRepo{s} }
func (s *Store) Comments() persistent.CommentRepository { return &commentRepo{s} }

// now returns strictly increasing timestamps so creation order is total.
func (s *Store) now() time.Time {
	t := time.Now()
	if !t.After(s.last) {
		t = s.last.Add(time.Microsecond)
	}
	s.last = t
	return t
}

func (s *Store) author(userID string) *entity.Author {
	u, ok := s.users[userID]
	if !ok {
		return nil
	}
	return u.Author()
}

func (s *Store) commentCount(postID string) int {
	n := 0
	for _, c := range s.comments {
		if c.PostID == postID {
			n++
		}
	}
	return n
}

// LikeSetSize reports the number of identities in the post's like set.
func (s *Store) LikeSetSize(postID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.likes[postID])
}

// CommentsFor counts stored comments referencing postID.
func (s *Store) CommentsFor(postID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.commentCount(postID)
}

type userRepo struct{ s *Store }

func (r *userRepo) Create(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	user.Email = strings.ToLower(user.Email)
	for _, u := range r.s.users {
		if u.Email == user.Email {
			return persistent.ErrDuplicate
		}
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.CreatedAt = r.s.now()
	user.UpdatedAt = user.CreatedAt
	r.s.users[user.ID] = *user
	return nil
}

func (r *userRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, persistent.ErrNotFound
	}
	return &u, nil
}

func (r *userRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	email = strings.ToLower(email)
	for _, u := range r.s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, persistent.ErrNotFound
}

func (r *userRepo) Update(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[user.ID]
	if !ok {
		return persistent.ErrNotFound
	}
	u.Name, u.Bio, u.Avatar, u.Password = user.Name, user.Bio, user.Avatar, user.Password
	u.UpdatedAt = r.s.now()
	r.s.users[u.ID] = u
	user.UpdatedAt = u.UpdatedAt
	return nil
}

type postRepo struct{ s *Store }

func (r *postRepo) Create(_ context.Context, post *entity.Post) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	post.CreatedAt = r.s.now()
	post.UpdatedAt = post.CreatedAt
	stored := *post
	stored.Author = nil
	r.s.posts[post.ID] = stored
	return nil
}

func (r *postRepo) get(id string) (*entity.Post, bool) {
	p, ok := r.s.posts[id]
	if !ok {
		return nil, false
	}
	p.Author = r.s.author(p.AuthorID)
	return &p, true
}

func (r *postRepo) GetByID(_ context.Context, id string) (*entity.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.get(id)
	if !ok {
		return nil, persistent.ErrNotFound
	}
	return p, nil
}

func matches(p entity.Post, search string) bool {
	haystack := strings.ToLower(p.Title + " " + p.ContentText)
	for _, term := range strings.Fields(strings.ToLower(search)) {
		if !strings.Contains(haystack, term) {
			return false
		}
	}
	return true
}

func less(a, b *entity.Post, query entity.PostQuery) bool {
	if query.SortBy == "" && query.Search != "" {
		at := strings.Contains(strings.ToLower(a.Title), strings.ToLower(query.Search))
		bt := strings.Contains(strings.ToLower(b.Title), strings.ToLower(query.Search))
		if at != bt {
			return at
		}
		return a.CreatedAt.After(b.CreatedAt)
	}

	var cmp int
	switch query.SortBy {
	case entity.SortTitle:
		cmp = strings.Compare(a.Title, b.Title)
	case entity.SortLikesCount:
		cmp = a.LikesCount - b.LikesCount
	case entity.SortCommentsCount:
		cmp = a.CommentsCount - b.CommentsCount
	case entity.SortUpdatedAt:
		cmp = a.UpdatedAt.Compare(b.UpdatedAt)
	default:
		cmp = a.CreatedAt.Compare(b.CreatedAt)
	}
	if cmp == 0 {
		return a.ID < b.ID
	}
	if query.Ascending {
		return cmp < 0
	}
	return cmp > 0
}

func (r *postRepo) List(_ context.Context, query entity.PostQuery) ([]*entity.Post, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var filtered []*entity.Post
	for id := range r.s.posts {
		p, _ := r.get(id)
		if query.AuthorID != "" && p.AuthorID != query.AuthorID {
			continue
		}
		if query.Status != "" && p.Status != query.Status {
			continue
		}
		if query.Search != "" && !matches(*p, query.Search) {
			continue
		}
		filtered = append(filtered, p)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return less(filtered[i], filtered[j], query)
	})

	total := int64(len(filtered))
	start := query.Offset()
	if start > len(filtered) {
		start = len(filtered)
	}
	end := len(filtered)
	if query.Limit > 0 && query.Limit < end-start {
		end = start + query.Limit
	}
	return filtered[start:end], total, nil
}

func (r *postRepo) Update(_ context.Context, post *entity.Post) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.posts[post.ID]
	if !ok {
		return persistent.ErrNotFound
	}
	p.Title, p.Content, p.ContentText = post.Title, post.Content, post.ContentText
	p.CoverImage, p.Status = post.CoverImage, post.Status
	p.UpdatedAt = r.s.now()
	r.s.posts[p.ID] = p
	post.UpdatedAt = p.UpdatedAt
	return nil
}

func (r *postRepo) DeleteCascade(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.posts[id]; !ok {
		return persistent.ErrNotFound
	}
	delete(r.s.likes, id)
	for cid, c := range r.s.comments {
		if c.PostID == id {
			delete(r.s.comments, cid)
		}
	}
	delete(r.s.posts, id)
	return nil
}

func (r *postRepo) ToggleLike(_ context.Context, postID, userID string) (bool, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.posts[postID]
	if !ok {
		return false, 0, persistent.ErrNotFound
	}

	set := r.s.likes[postID]
	if set == nil {
		set = make(map[string]struct{})
		r.s.likes[postID] = set
	}

	_, liked := set[userID]
	if liked {
		delete(set, userID)
	} else {
		set[userID] = struct{}{}
	}

	p.LikesCount = len(set)
	r.s.posts[postID] = p
	return !liked, p.LikesCount, nil
}

func (r *postRepo) IsLiked(_ context.Context, postID, userID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	_, ok := r.s.likes[postID][userID]
	return ok, nil
}

func (r *postRepo) AuthorStats(_ context.Context, authorID string, includeDrafts bool) (*entity.AuthorStats, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	stats := &entity.AuthorStats{}
	for _, p := range r.s.posts {
		if p.AuthorID != authorID || (!includeDrafts && !p.IsPublished()) {
			continue
		}
		stats.TotalBlogs++
		stats.TotalLikes += int64(p.LikesCount)
		stats.TotalComments += int64(p.CommentsCount)
	}
	return stats, nil
}

type commentRepo struct{ s *Store }

func (r *commentRepo) withAuthor(c entity.Comment) *entity.Comment {
	if a := r.s.author(c.AuthorID); a != nil {
		c.Author = &entity.Author{ID: a.ID, Name: a.Name, Avatar: a.Avatar}
	}
	return &c
}

func (r *commentRepo) ListByPost(_ context.Context, postID string) ([]*entity.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	comments := []*entity.Comment{}
	for _, c := range r.s.comments {
		if c.PostID == postID {
			comments = append(comments, r.withAuthor(c))
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
	return comments, nil
}

func (r *commentRepo) GetByID(_ context.Context, id string) (*entity.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.comments[id]
	if !ok {
		return nil, persistent.ErrNotFound
	}
	return r.withAuthor(c), nil
}

func (r *commentRepo) Create(_ context.Context, comment *entity.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.posts[comment.PostID]
	if !ok {
		return persistent.ErrNotFound
	}
	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	comment.CreatedAt = r.s.now()
	comment.UpdatedAt = comment.CreatedAt
	stored := *comment
	stored.Author = nil
	r.s.comments[comment.ID] = stored

	p.CommentsCount = r.s.commentCount(p.ID)
	r.s.posts[p.ID] = p
	return nil
}

func (r *commentRepo) Update(_ context.Context, comment *entity.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.comments[comment.ID]
	if !ok {
		return persistent.ErrNotFound
	}
	c.Content = comment.Content
	c.UpdatedAt = r.s.now()
	r.s.comments[c.ID] = c
	comment.UpdatedAt = c.UpdatedAt
	return nil
}

func (r *commentRepo) Delete(_ context.Context, comment *entity.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.comments[comment.ID]; !ok {
		return persistent.ErrNotFound
	}
	delete(r.s.comments, comment.ID)

	if p, ok := r.s.posts[comment.PostID]; ok {
		p.CommentsCount = r.s.commentCount(p.ID)
		r.s.posts[p.ID] = p
	}
	return nil
}
