package service

import (
	"context"

	"github.com/gfdmit/adhd-forum/internal/repository"
)

type Service struct {
	repo    repository.Repository
	avatars repository.AvatarStore
}

func New(repo repository.Repository, avatars repository.AvatarStore) *Service {
	return &Service{repo: repo, avatars: avatars}
}

func (svc *Service) Initialize(ctx context.Context) error {
	return svc.repo.Initialize(ctx)
}

// Threads lists all threads, newest first. A non-empty category narrows
// the listing; this is the one place section filtering happens.
func (svc *Service) Threads(ctx context.Context, category string) ([]repository.Thread, error) {
	threads, err := svc.repo.Threads(ctx)
	if err != nil {
		return nil, err
	}
	if category == "" {
		return threads, nil
	}
	filtered := make([]repository.Thread, 0, len(threads))
	for _, t := range threads {
		if t.Category == category {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

func (svc *Service) Thread(ctx context.Context, id string) (*repository.Thread, error) {
	return svc.repo.ThreadByID(ctx, id)
}

func (svc *Service) CreateThread(ctx context.Context, data repository.NewThread) (*repository.Thread, error) {
	return svc.repo.CreateThread(ctx, data)
}

func (svc *Service) UpdateThread(ctx context.Context, id string, patch repository.ThreadPatch) (*repository.Thread, error) {
	return svc.repo.UpdateThread(ctx, id, patch)
}

func (svc *Service) ToggleThreadLike(ctx context.Context, id string) (bool, error) {
	return svc.repo.ToggleThreadLike(ctx, id)
}

func (svc *Service) Comments(ctx context.Context, threadID string) ([]repository.Comment, error) {
	return svc.repo.Comments(ctx, threadID)
}

func (svc *Service) CreateComment(ctx context.Context, data repository.NewComment) (*repository.Comment, error) {
	return svc.repo.CreateComment(ctx, data)
}

func (svc *Service) ToggleCommentLike(ctx context.Context, id string) (bool, error) {
	return svc.repo.ToggleCommentLike(ctx, id)
}

func (svc *Service) Sections(ctx context.Context) []repository.ForumSection {
	return repository.Sections()
}

func (svc *Service) Topics(ctx context.Context) []repository.Topic {
	return repository.Topics()
}

func (svc *Service) ClearAll(ctx context.Context) error {
	return svc.repo.ClearAll(ctx)
}
