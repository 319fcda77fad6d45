package repository

import "time"

const (
	RoleMember    = "member"
	RoleModerator = "moderator"
	RoleAdmin     = "admin"

	CategoryPublic        = "public"
	CategoryMembersOnly   = "members-only"
	CategorySupportGroups = "support-groups"
)

type User struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Avatar     string    `json:"avatar,omitempty"`
	Bio        string    `json:"bio,omitempty"`
	ADHDType   string    `json:"adhdType,omitempty"`
	JoinedAt   time.Time `json:"joinedAt"`
	IsOnline   bool      `json:"isOnline"`
	Role       string    `json:"role"`
	IsVerified bool      `json:"isVerified"`
}

// Credential is a registered user as persisted: the public profile plus
// the login email and bcrypt password hash.
type Credential struct {
	User
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Thread embeds its author as a value, not a reference: author display
// data reflects the profile at post time and does not follow later edits.
type Thread struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Author       User      `json:"author"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	Tags         []string  `json:"tags"`
	Likes        int       `json:"likes"`
	CommentCount int       `json:"commentCount"`
	IsLiked      bool      `json:"isLiked"`
	IsPinned     bool      `json:"isPinned"`
	IsPublic     bool      `json:"isPublic"`
	Category     string    `json:"category"`
}

type Comment struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Author    User      `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
	Likes     int       `json:"likes"`
	IsLiked   bool      `json:"isLiked"`
	ThreadID  string    `json:"threadId"`
	ParentID  string    `json:"parentId,omitempty"`
}

type Topic struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Color        string `json:"color"`
	ThreadCount  int    `json:"threadCount"`
	IsPublic     bool   `json:"isPublic"`
	RequiresAuth bool   `json:"requiresAuth,omitempty"`
}

type ForumSection struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	IsPublic    bool   `json:"isPublic"`
	ThreadCount int    `json:"threadCount"`
	Color       string `json:"color"`
}

// NewThread carries the caller-supplied fields of createThread; ids,
// timestamps and counters are assigned by the repository.
type NewThread struct {
	Title    string
	Content  string
	Author   User
	Tags     []string
	IsPinned bool
	IsPublic bool
	Category string
}

type NewComment struct {
	Content  string
	Author   User
	ThreadID string
	ParentID string
}

// ThreadPatch updates only its non-nil fields.
type ThreadPatch struct {
	Title    *string
	Content  *string
	Tags     *[]string
	IsPinned *bool
	IsPublic *bool
	Category *string
}
