package graphql

import (
	"time"

	"github.com/graphql-go/graphql"
)

var DateTime = graphql.NewScalar(
	graphql.ScalarConfig{
		Name:        "DateTime",
		Description: "DateTime scalar type",
		Serialize: func(value interface{}) interface{} {
			switch v := value.(type) {
			case time.Time:
				return v.Format(time.RFC3339)
			case *time.Time:
				return v.Format(time.RFC3339)
			default:
				return nil
			}
		},
	},
)

func (gh *gqlHandler) initSchema() error {
	userType := graphql.NewObject(
		graphql.ObjectConfig{
			Name: "User",
			Fields: graphql.Fields{
				"id":         &graphql.Field{Type: graphql.ID},
				"username":   &graphql.Field{Type: graphql.String},
				"avatar":     &graphql.Field{Type: graphql.String},
				"bio":        &graphql.Field{Type: graphql.String},
				"adhdType":   &graphql.Field{Type: graphql.String},
				"joinedAt":   &graphql.Field{Type: DateTime},
				"isOnline":   &graphql.Field{Type: graphql.Boolean},
				"role":       &graphql.Field{Type: graphql.String},
				"isVerified": &graphql.Field{Type: graphql.Boolean},
			},
		},
	)

	threadType := graphql.NewObject(
		graphql.ObjectConfig{
			Name: "Thread",
			Fields: graphql.Fields{
				"id":           &graphql.Field{Type: graphql.ID},
				"title":        &graphql.Field{Type: graphql.String},
				"content":      &graphql.Field{Type: graphql.String},
				"author":       &graphql.Field{Type: userType},
				"createdAt":    &graphql.Field{Type: DateTime},
				"updatedAt":    &graphql.Field{Type: DateTime},
				"tags":         &graphql.Field{Type: graphql.NewList(graphql.String)},
				"likes":        &graphql.Field{Type: graphql.Int},
				"commentCount": &graphql.Field{Type: graphql.Int},
				"isLiked":      &graphql.Field{Type: graphql.Boolean},
				"isPinned":     &graphql.Field{Type: graphql.Boolean},
				"isPublic":     &graphql.Field{Type: graphql.Boolean},
				"category":     &graphql.Field{Type: graphql.String},
			},
		},
	)

	commentType := graphql.NewObject(
		graphql.ObjectConfig{
			Name: "Comment",
			Fields: graphql.Fields{
				"id":        &graphql.Field{Type: graphql.ID},
				"content":   &graphql.Field{Type: graphql.String},
				"author":    &graphql.Field{Type: userType},
				"createdAt": &graphql.Field{Type: DateTime},
				"likes":     &graphql.Field{Type: graphql.Int},
				"isLiked":   &graphql.Field{Type: graphql.Boolean},
				"threadId":  &graphql.Field{Type: graphql.ID},
				"parentId":  &graphql.Field{Type: graphql.ID},
			},
		},
	)

	sectionType := graphql.NewObject(
		graphql.ObjectConfig{
			Name: "ForumSection",
			Fields: graphql.Fields{
				"id":          &graphql.Field{Type: graphql.ID},
				"name":        &graphql.Field{Type: graphql.String},
				"description": &graphql.Field{Type: graphql.String},
				"icon":        &graphql.Field{Type: graphql.String},
				"isPublic":    &graphql.Field{Type: graphql.Boolean},
				"threadCount": &graphql.Field{Type: graphql.Int},
				"color":       &graphql.Field{Type: graphql.String},
			},
		},
	)

	topicType := graphql.NewObject(
		graphql.ObjectConfig{
			Name: "Topic",
			Fields: graphql.Fields{
				"id":           &graphql.Field{Type: graphql.ID},
				"name":         &graphql.Field{Type: graphql.String},
				"description":  &graphql.Field{Type: graphql.String},
				"color":        &graphql.Field{Type: graphql.String},
				"threadCount":  &graphql.Field{Type: graphql.Int},
				"isPublic":     &graphql.Field{Type: graphql.Boolean},
				"requiresAuth": &graphql.Field{Type: graphql.Boolean},
			},
		},
	)

	queryType := graphql.NewObject(
		graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.Fields{
				"thread":      getThreadQuery(gh, threadType),
				"threads":     getThreadsQuery(gh, threadType),
				"comments":    getCommentsQuery(gh, commentType),
				"sections":    getSectionsQuery(gh, sectionType),
				"topics":      getTopicsQuery(gh, topicType),
				"currentUser": getCurrentUserQuery(gh, userType),
			},
		},
	)

	mutationType := graphql.NewObject(
		graphql.ObjectConfig{
			Name: "Mutation",
			Fields: graphql.Fields{
				"createThread":      createThreadMutation(gh, threadType),
				"updateThread":      updateThreadMutation(gh, threadType),
				"toggleThreadLike":  toggleThreadLikeMutation(gh),
				"createComment":     createCommentMutation(gh, commentType),
				"toggleCommentLike": toggleCommentLikeMutation(gh),
				"login":             loginMutation(gh, userType),
				"signup":            signupMutation(gh, userType),
				"logout":            logoutMutation(gh),
				"clearAll":          clearAllMutation(gh),
			},
		},
	)

	schemaConfig := graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	}

	schema, err := graphql.NewSchema(schemaConfig)
	if err != nil {
		return err
	}
	gh.schema = schema

	return nil
}
