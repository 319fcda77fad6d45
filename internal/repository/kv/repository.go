package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/gfdmit/adhd-forum/internal/repository"
	"github.com/gfdmit/adhd-forum/internal/storage"
)

const (
	keyThreads  = "adhd-forum-threads"
	keyComments = "adhd-forum-comments"
	keyUsers    = "adhd-forum-users"
	keySession  = "adhd-forum-user"
)

type kvRepository struct {
	store storage.Store

	mu     sync.Mutex
	lastID int64
}

func New(store storage.Store) *kvRepository {
	return &kvRepository{store: store}
}

// NewID returns the current Unix-millisecond timestamp as a decimal
// string, bumped when two calls land in the same millisecond so ids
// stay unique within the process.
func (r *kvRepository) NewID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UnixMilli()
	if now <= r.lastID {
		now = r.lastID + 1
	}
	r.lastID = now
	return strconv.FormatInt(now, 10)
}

// Initialize seeds each content collection only when its key is entirely
// absent. Safe to call on every startup; existing data is never touched.
func (r *kvRepository) Initialize(ctx context.Context) error {
	if err := r.seedIfAbsent(ctx, keyThreads, repository.SeedThreads()); err != nil {
		return err
	}
	if err := r.seedIfAbsent(ctx, keyComments, repository.SeedComments()); err != nil {
		return err
	}
	return r.seedIfAbsent(ctx, keyUsers, []repository.Credential{})
}

func (r *kvRepository) seedIfAbsent(ctx context.Context, key string, value any) error {
	_, ok, err := r.store.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("get %s: %w", key, err)
	}
	if ok {
		return nil
	}
	return r.writeCollection(ctx, key, value)
}

func (r *kvRepository) Threads(ctx context.Context) ([]repository.Thread, error) {
	return readCollection[repository.Thread](ctx, r.store, keyThreads)
}

func (r *kvRepository) ThreadByID(ctx context.Context, id string) (*repository.Thread, error) {
	threads, err := r.Threads(ctx)
	if err != nil {
		return nil, err
	}
	for i := range threads {
		if threads[i].ID == id {
			return &threads[i], nil
		}
	}
	return nil, nil
}

func (r *kvRepository) CreateThread(ctx context.Context, data repository.NewThread) (*repository.Thread, error) {
	threads, err := r.Threads(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	thread := repository.Thread{
		ID:           r.NewID(),
		Title:        data.Title,
		Content:      data.Content,
		Author:       data.Author,
		CreatedAt:    now,
		UpdatedAt:    now,
		Tags:         data.Tags,
		Likes:        0,
		CommentCount: 0,
		IsLiked:      false,
		IsPinned:     data.IsPinned,
		IsPublic:     data.IsPublic,
		Category:     data.Category,
	}
	if thread.Tags == nil {
		thread.Tags = []string{}
	}

	// Newest first is a storage-order invariant, not a re-sort.
	threads = append([]repository.Thread{thread}, threads...)
	if err := r.writeCollection(ctx, keyThreads, threads); err != nil {
		return nil, err
	}
	return &thread, nil
}

func (r *kvRepository) UpdateThread(ctx context.Context, id string, patch repository.ThreadPatch) (*repository.Thread, error) {
	threads, err := r.Threads(ctx)
	if err != nil {
		return nil, err
	}
	for i := range threads {
		if threads[i].ID != id {
			continue
		}
		t := &threads[i]
		if patch.Title != nil {
			t.Title = *patch.Title
		}
		if patch.Content != nil {
			t.Content = *patch.Content
		}
		if patch.Tags != nil {
			t.Tags = *patch.Tags
		}
		if patch.IsPinned != nil {
			t.IsPinned = *patch.IsPinned
		}
		if patch.IsPublic != nil {
			t.IsPublic = *patch.IsPublic
		}
		if patch.Category != nil {
			t.Category = *patch.Category
		}
		t.UpdatedAt = time.Now()
		if err := r.writeCollection(ctx, keyThreads, threads); err != nil {
			return nil, err
		}
		return t, nil
	}
	return nil, nil
}

func (r *kvRepository) ToggleThreadLike(ctx context.Context, id string) (bool, error) {
	threads, err := r.Threads(ctx)
	if err != nil {
		return false, err
	}
	for i := range threads {
		if threads[i].ID != id {
			continue
		}
		t := &threads[i]
		t.IsLiked = !t.IsLiked
		if t.IsLiked {
			t.Likes++
		} else {
			t.Likes--
		}
		t.UpdatedAt = time.Now()
		if err := r.writeCollection(ctx, keyThreads, threads); err != nil {
			return false, err
		}
		return t.IsLiked, nil
	}
	return false, nil
}

func (r *kvRepository) Comments(ctx context.Context, threadID string) ([]repository.Comment, error) {
	comments, err := readCollection[repository.Comment](ctx, r.store, keyComments)
	if err != nil {
		return nil, err
	}
	if threadID == "" {
		return comments, nil
	}
	filtered := make([]repository.Comment, 0, len(comments))
	for _, c := range comments {
		if c.ThreadID == threadID {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

// CreateComment appends to the comment collection and then bumps the
// parent thread's commentCount with a second write. The two writes are
// not atomic; a failure in between leaves the count understated.
func (r *kvRepository) CreateComment(ctx context.Context, data repository.NewComment) (*repository.Comment, error) {
	comments, err := r.Comments(ctx, "")
	if err != nil {
		return nil, err
	}

	comment := repository.Comment{
		ID:        r.NewID(),
		Content:   data.Content,
		Author:    data.Author,
		CreatedAt: time.Now(),
		Likes:     0,
		IsLiked:   false,
		ThreadID:  data.ThreadID,
		ParentID:  data.ParentID,
	}
	comments = append(comments, comment)
	if err := r.writeCollection(ctx, keyComments, comments); err != nil {
		return nil, err
	}

	threads, err := r.Threads(ctx)
	if err != nil {
		return nil, err
	}
	for i := range threads {
		if threads[i].ID == data.ThreadID {
			threads[i].CommentCount++
			threads[i].UpdatedAt = time.Now()
			if err := r.writeCollection(ctx, keyThreads, threads); err != nil {
				return nil, err
			}
			break
		}
	}
	return &comment, nil
}

func (r *kvRepository) ToggleCommentLike(ctx context.Context, id string) (bool, error) {
	comments, err := r.Comments(ctx, "")
	if err != nil {
		return false, err
	}
	for i := range comments {
		if comments[i].ID != id {
			continue
		}
		c := &comments[i]
		c.IsLiked = !c.IsLiked
		if c.IsLiked {
			c.Likes++
		} else {
			c.Likes--
		}
		if err := r.writeCollection(ctx, keyComments, comments); err != nil {
			return false, err
		}
		return c.IsLiked, nil
	}
	return false, nil
}

func (r *kvRepository) RegisteredUsers(ctx context.Context) ([]repository.Credential, error) {
	return readCollection[repository.Credential](ctx, r.store, keyUsers)
}

func (r *kvRepository) AddRegisteredUser(ctx context.Context, cred repository.Credential) error {
	users, err := r.RegisteredUsers(ctx)
	if err != nil {
		return err
	}
	users = append(users, cred)
	return r.writeCollection(ctx, keyUsers, users)
}

func (r *kvRepository) SessionUser(ctx context.Context) (*repository.User, error) {
	raw, ok, err := r.store.Get(ctx, keySession)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", keySession, err)
	}
	if !ok {
		return nil, nil
	}
	var user repository.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		log.Printf("[STORAGE] corrupt value under %s, treating as absent: %v", keySession, err)
		return nil, nil
	}
	return &user, nil
}

func (r *kvRepository) SetSessionUser(ctx context.Context, user *repository.User) error {
	b, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal session user: %w", err)
	}
	return r.store.Set(ctx, keySession, string(b))
}

func (r *kvRepository) ClearSessionUser(ctx context.Context) error {
	return r.store.Delete(ctx, keySession)
}

// ClearAll removes all four keys. Debugging and test entry point only.
func (r *kvRepository) ClearAll(ctx context.Context) error {
	for _, key := range []string{keyThreads, keyComments, keyUsers, keySession} {
		if err := r.store.Delete(ctx, key); err != nil {
			return fmt.Errorf("delete %s: %w", key, err)
		}
	}
	return nil
}

// readCollection parses the JSON array stored under key. A missing key
// reads as empty; an unparsable value is logged and also reads as empty,
// so the read contract never fails on bad state.
func readCollection[T any](ctx context.Context, store storage.Store, key string) ([]T, error) {
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	if !ok {
		return nil, nil
	}
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Printf("[STORAGE] corrupt value under %s, treating as empty: %v", key, err)
		return nil, nil
	}
	return items, nil
}

func (r *kvRepository) writeCollection(ctx context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return r.store.Set(ctx, key, string(b))
}
