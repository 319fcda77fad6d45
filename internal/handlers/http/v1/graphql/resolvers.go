package graphql

import (
	"fmt"

	"github.com/gfdmit/adhd-forum/internal/repository"
	"github.com/gfdmit/adhd-forum/internal/service"
	"github.com/graphql-go/graphql"
)

func getThreadQuery(gh *gqlHandler, threadType *graphql.Object) *graphql.Field {
	return &graphql.Field{
		Type: threadType,
		Args: graphql.FieldConfigArgument{
			"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			id := p.Args["id"].(string)
			return gh.svc.Thread(p.Context, id)
		},
	}
}

func getThreadsQuery(gh *gqlHandler, threadType *graphql.Object) *graphql.Field {
	return &graphql.Field{
		Type: graphql.NewList(threadType),
		Args: graphql.FieldConfigArgument{
			"category": &graphql.ArgumentConfig{Type: graphql.String, DefaultValue: ""},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			category := p.Args["category"].(string)
			return gh.svc.Threads(p.Context, category)
		},
	}
}

func getCommentsQuery(gh *gqlHandler, commentType *graphql.Object) *graphql.Field {
	return &graphql.Field{
		Type: graphql.NewList(commentType),
		Args: graphql.FieldConfigArgument{
			"threadId": &graphql.ArgumentConfig{Type: graphql.ID, DefaultValue: ""},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			threadID := p.Args["threadId"].(string)
			return gh.svc.Comments(p.Context, threadID)
		},
	}
}

func getSectionsQuery(gh *gqlHandler, sectionType *graphql.Object) *graphql.Field {
	return &graphql.Field{
		Type: graphql.NewList(sectionType),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			return gh.svc.Sections(p.Context), nil
		},
	}
}

func getTopicsQuery(gh *gqlHandler, topicType *graphql.Object) *graphql.Field {
	return &graphql.Field{
		Type: graphql.NewList(topicType),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			return gh.svc.Topics(p.Context), nil
		},
	}
}

func getCurrentUserQuery(gh *gqlHandler, userType *graphql.Object) *graphql.Field {
	return &graphql.Field{
		Type: userType,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			return gh.svc.CurrentUser(p.Context)
		},
	}
}

func createThreadMutation(gh *gqlHandler, threadType *graphql.Object) *graphql.Field {
	return &graphql.Field{
		Type: threadType,
		Args: graphql.FieldConfigArgument{
			"input": &graphql.ArgumentConfig{
				Type: graphql.NewInputObject(
					graphql.InputObjectConfig{
						Name: "CreateThreadInput",
						Fields: graphql.InputObjectConfigFieldMap{
							"title":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
							"content":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
							"tags":     &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.String)},
							"isPinned": &graphql.InputObjectFieldConfig{Type: graphql.Boolean, DefaultValue: false},
							"isPublic": &graphql.InputObjectFieldConfig{Type: graphql.Boolean, DefaultValue: true},
							"category": &graphql.InputObjectFieldConfig{Type: graphql.String, DefaultValue: repository.CategoryPublic},
						},
					},
				),
			},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			author, err := gh.svc.CurrentUser(p.Context)
			if err != nil {
				return nil, err
			}
			if author == nil {
				return nil, fmt.Errorf("authentication required")
			}
			input := p.Args["input"].(map[string]interface{})
			return gh.svc.CreateThread(p.Context, repository.NewThread{
				Title:    input["title"].(string),
				Content:  input["content"].(string),
				Author:   *author,
				Tags:     stringList(input["tags"]),
				IsPinned: boolArg(input, "isPinned", false),
				IsPublic: boolArg(input, "isPublic", true),
				Category: stringArg(input, "category", repository.CategoryPublic),
			})
		},
	}
}

func updateThreadMutation(gh *gqlHandler, threadType *graphql.Object) *graphql.Field {
	return &graphql.Field{
		Type: threadType,
		Args: graphql.FieldConfigArgument{
			"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			"input": &graphql.ArgumentConfig{
				Type: graphql.NewInputObject(
					graphql.InputObjectConfig{
						Name: "UpdateThreadInput",
						Fields: graphql.InputObjectConfigFieldMap{
							"title":    &graphql.InputObjectFieldConfig{Type: graphql.String},
							"content":  &graphql.InputObjectFieldConfig{Type: graphql.String},
							"tags":     &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.String)},
							"isPinned": &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
							"isPublic": &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
							"category": &graphql.InputObjectFieldConfig{Type: graphql.String},
						},
					},
				),
			},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			id := p.Args["id"].(string)
			input, _ := p.Args["input"].(map[string]interface{})

			var patch repository.ThreadPatch
			if v, ok := input["title"].(string); ok {
				patch.Title = &v
			}
			if v, ok := input["content"].(string); ok {
				patch.Content = &v
			}
			if raw, ok := input["tags"]; ok && raw != nil {
				tags := stringList(raw)
				patch.Tags = &tags
			}
			if v, ok := input["isPinned"].(bool); ok {
				patch.IsPinned = &v
			}
			if v, ok := input["isPublic"].(bool); ok {
				patch.IsPublic = &v
			}
			if v, ok := input["category"].(string); ok {
				patch.Category = &v
			}
			return gh.svc.UpdateThread(p.Context, id, patch)
		},
	}
}

func toggleThreadLikeMutation(gh *gqlHandler) *graphql.Field {
	return &graphql.Field{
		Type: graphql.Boolean,
		Args: graphql.FieldConfigArgument{
			"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			id := p.Args["id"].(string)
			return gh.svc.ToggleThreadLike(p.Context, id)
		},
	}
}

func createCommentMutation(gh *gqlHandler, commentType *graphql.Object) *graphql.Field {
	return &graphql.Field{
		Type: commentType,
		Args: graphql.FieldConfigArgument{
			"input": &graphql.ArgumentConfig{
				Type: graphql.NewInputObject(
					graphql.InputObjectConfig{
						Name: "CreateCommentInput",
						Fields: graphql.InputObjectConfigFieldMap{
							"threadId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
							"content":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
							"parentId": &graphql.InputObjectFieldConfig{Type: graphql.ID, DefaultValue: ""},
						},
					},
				),
			},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			author, err := gh.svc.CurrentUser(p.Context)
			if err != nil {
				return nil, err
			}
			if author == nil {
				return nil, fmt.Errorf("authentication required")
			}
			input := p.Args["input"].(map[string]interface{})
			return gh.svc.CreateComment(p.Context, repository.NewComment{
				Content:  input["content"].(string),
				Author:   *author,
				ThreadID: input["threadId"].(string),
				ParentID: stringArg(input, "parentId", ""),
			})
		},
	}
}

func toggleCommentLikeMutation(gh *gqlHandler) *graphql.Field {
	return &graphql.Field{
		Type: graphql.Boolean,
		Args: graphql.FieldConfigArgument{
			"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			id := p.Args["id"].(string)
			return gh.svc.ToggleCommentLike(p.Context, id)
		},
	}
}

func loginMutation(gh *gqlHandler, userType *graphql.Object) *graphql.Field {
	return &graphql.Field{
		Type: userType,
		Args: graphql.FieldConfigArgument{
			"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			return gh.svc.Login(
				p.Context,
				p.Args["email"].(string),
				p.Args["password"].(string),
			)
		},
	}
}

func signupMutation(gh *gqlHandler, userType *graphql.Object) *graphql.Field {
	return &graphql.Field{
		Type: userType,
		Args: graphql.FieldConfigArgument{
			"input": &graphql.ArgumentConfig{
				Type: graphql.NewInputObject(
					graphql.InputObjectConfig{
						Name: "SignupInput",
						Fields: graphql.InputObjectConfigFieldMap{
							"username": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
							"email":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
							"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
							"adhdType": &graphql.InputObjectFieldConfig{Type: graphql.String, DefaultValue: ""},
						},
					},
				),
			},
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			input := p.Args["input"].(map[string]interface{})
			return gh.svc.Signup(p.Context, service.SignupInput{
				Username: input["username"].(string),
				Email:    input["email"].(string),
				Password: input["password"].(string),
				ADHDType: stringArg(input, "adhdType", ""),
			})
		},
	}
}

func logoutMutation(gh *gqlHandler) *graphql.Field {
	return &graphql.Field{
		Type: graphql.Boolean,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			if err := gh.svc.Logout(p.Context); err != nil {
				return false, err
			}
			return true, nil
		},
	}
}

func clearAllMutation(gh *gqlHandler) *graphql.Field {
	return &graphql.Field{
		Type: graphql.Boolean,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			if err := gh.svc.ClearAll(p.Context); err != nil {
				return false, err
			}
			return true, nil
		},
	}
}

func stringArg(input map[string]interface{}, key, def string) string {
	if v, ok := input[key].(string); ok {
		return v
	}
	return def
}

func boolArg(input map[string]interface{}, key string, def bool) bool {
	if v, ok := input[key].(bool); ok {
		return v
	}
	return def
}

func stringList(raw interface{}) []string {
	items, ok := raw.([]interface{})
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
