package repository

import "context"

// Repository is the data-access layer over the four persisted collections.
// Lookups that find nothing return nil without an error; a missing or
// unparsable collection reads as empty. Every listing call re-reads the
// store, so callers observe mutations by listing again.
type Repository interface {
	Initialize(ctx context.Context) error

	Threads(ctx context.Context) ([]Thread, error)
	ThreadByID(ctx context.Context, id string) (*Thread, error)
	CreateThread(ctx context.Context, data NewThread) (*Thread, error)
	UpdateThread(ctx context.Context, id string, patch ThreadPatch) (*Thread, error)
	ToggleThreadLike(ctx context.Context, id string) (bool, error)

	Comments(ctx context.Context, threadID string) ([]Comment, error)
	CreateComment(ctx context.Context, data NewComment) (*Comment, error)
	ToggleCommentLike(ctx context.Context, id string) (bool, error)

	RegisteredUsers(ctx context.Context) ([]Credential, error)
	AddRegisteredUser(ctx context.Context, cred Credential) error

	SessionUser(ctx context.Context) (*User, error)
	SetSessionUser(ctx context.Context, user *User) error
	ClearSessionUser(ctx context.Context) error

	ClearAll(ctx context.Context) error
}
