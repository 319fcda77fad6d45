package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gfdmit/adhd-forum/internal/repository/kv"
	"github.com/gfdmit/adhd-forum/internal/service"
	"github.com/gfdmit/adhd-forum/internal/storage"
	"github.com/gin-gonic/gin"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := kv.New(storage.NewMemory())
	if err := repo.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	svc := service.New(repo, nil)

	router, err := New(svc)
	if err != nil {
		t.Fatalf("router New: %v", err)
	}
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func doGraphQL(t *testing.T, srv *httptest.Server, query string, variables map[string]any) map[string]any {
	t.Helper()
	body, err := json.Marshal(map[string]any{"query": query, "variables": variables})
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	resp, err := http.Post(srv.URL+"/api/v1/graphql", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: %d", resp.StatusCode)
	}

	var out struct {
		Data   map[string]any `json:"data"`
		Errors []any          `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(out.Errors) != 0 {
		t.Fatalf("graphql errors: %v", out.Errors)
	}
	return out.Data
}

func TestPing(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/api/v1/ping")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: %d", resp.StatusCode)
	}
}

func TestThreadsQuery(t *testing.T) {
	srv := newTestServer(t)

	data := doGraphQL(t, srv, `{ threads { id title likes } }`, nil)
	threads, ok := data["threads"].([]any)
	if !ok {
		t.Fatalf("threads missing: %v", data)
	}
	if len(threads) != 5 {
		t.Fatalf("seed thread count: %d", len(threads))
	}

	data = doGraphQL(t, srv, `query ($c: String) { threads(category: $c) { id category } }`,
		map[string]any{"c": "members-only"})
	threads = data["threads"].([]any)
	if len(threads) != 1 {
		t.Fatalf("members-only count: %d", len(threads))
	}
}

func TestSectionsQuery(t *testing.T) {
	srv := newTestServer(t)

	data := doGraphQL(t, srv, `{ sections { id name isPublic } topics { id name } }`, nil)
	if sections := data["sections"].([]any); len(sections) != 5 {
		t.Fatalf("section count: %d", len(sections))
	}
	if topics := data["topics"].([]any); len(topics) != 5 {
		t.Fatalf("topic count: %d", len(topics))
	}
}

func TestSignupCreateThreadFlow(t *testing.T) {
	srv := newTestServer(t)

	data := doGraphQL(t, srv, `mutation ($in: SignupInput) {
		signup(input: $in) { id username role }
	}`, map[string]any{
		"in": map[string]any{"username": "Poster", "email": "p@example.com", "password": "pw12345"},
	})
	user, ok := data["signup"].(map[string]any)
	if !ok || user["username"] != "Poster" {
		t.Fatalf("signup result: %v", data)
	}

	data = doGraphQL(t, srv, `mutation ($in: CreateThreadInput) {
		createThread(input: $in) { id title likes commentCount isLiked author { username } }
	}`, map[string]any{
		"in": map[string]any{"title": "T1", "content": "C1", "tags": []any{}, "isPublic": true, "category": "public"},
	})
	thread, ok := data["createThread"].(map[string]any)
	if !ok {
		t.Fatalf("createThread result: %v", data)
	}
	if thread["title"] != "T1" || thread["likes"].(float64) != 0 || thread["isLiked"] != false {
		t.Fatalf("fresh thread fields: %v", thread)
	}
	if author := thread["author"].(map[string]any); author["username"] != "Poster" {
		t.Fatalf("author snapshot: %v", author)
	}

	data = doGraphQL(t, srv, `{ threads { id } }`, nil)
	threads := data["threads"].([]any)
	if len(threads) != 6 {
		t.Fatalf("thread count after create: %d", len(threads))
	}
	if first := threads[0].(map[string]any); first["id"] != thread["id"] {
		t.Fatalf("new thread not first: %v", first)
	}
}

func TestCommentFlow(t *testing.T) {
	srv := newTestServer(t)

	doGraphQL(t, srv, `mutation ($in: SignupInput) { signup(input: $in) { id } }`, map[string]any{
		"in": map[string]any{"username": "Commenter", "email": "c@example.com", "password": "pw12345"},
	})

	data := doGraphQL(t, srv, `mutation ($in: CreateCommentInput) {
		createComment(input: $in) { id threadId }
	}`, map[string]any{
		"in": map[string]any{"threadId": "1", "content": "same here"},
	})
	comment := data["createComment"].(map[string]any)
	if comment["threadId"] != "1" {
		t.Fatalf("comment threadId: %v", comment)
	}

	data = doGraphQL(t, srv, `query ($id: ID) { comments(threadId: $id) { id } thread(id: "1") { commentCount } }`,
		map[string]any{"id": "1"})
	comments := data["comments"].([]any)
	if len(comments) != 3 {
		t.Fatalf("comment count for thread 1: %d", len(comments))
	}
	// Seed thread 1 carries a display count of 8; one new comment makes 9.
	if thread := data["thread"].(map[string]any); thread["commentCount"].(float64) != 9 {
		t.Fatalf("commentCount: %v", thread)
	}
}

func TestToggleThreadLikeMutation(t *testing.T) {
	srv := newTestServer(t)

	data := doGraphQL(t, srv, `mutation { toggleThreadLike(id: "1") }`, nil)
	if data["toggleThreadLike"] != true {
		t.Fatalf("first toggle: %v", data)
	}
	data = doGraphQL(t, srv, `{ thread(id: "1") { likes isLiked } }`, nil)
	thread := data["thread"].(map[string]any)
	if thread["likes"].(float64) != 24 || thread["isLiked"] != true {
		t.Fatalf("after like: %v", thread)
	}

	data = doGraphQL(t, srv, `mutation { toggleThreadLike(id: "1") }`, nil)
	if data["toggleThreadLike"] != false {
		t.Fatalf("second toggle: %v", data)
	}
	data = doGraphQL(t, srv, `{ thread(id: "1") { likes isLiked } }`, nil)
	thread = data["thread"].(map[string]any)
	if thread["likes"].(float64) != 23 || thread["isLiked"] != false {
		t.Fatalf("after unlike: %v", thread)
	}
}

func TestAnonymousCannotPost(t *testing.T) {
	srv := newTestServer(t)

	body, _ := json.Marshal(map[string]any{
		"query": `mutation ($in: CreateThreadInput) { createThread(input: $in) { id } }`,
		"variables": map[string]any{
			"in": map[string]any{"title": "T", "content": "C"},
		},
	})
	resp, err := http.Post(srv.URL+"/api/v1/graphql", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()

	var out struct {
		Errors []any `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Errors) == 0 {
		t.Fatalf("anonymous createThread should fail")
	}
}

func TestAvatarUploadDisabled(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Post(srv.URL+"/api/v1/avatars", "multipart/form-data", nil)
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("status without MinIO: %d", resp.StatusCode)
	}
}
