package graphql

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gfdmit/adhd-forum/internal/service"
	"github.com/graphql-go/graphql"
)

type gqlHandler struct {
	svc *service.Service

	schema graphql.Schema
}

func New(svc *service.Service) (*gqlHandler, error) {
	gh := &gqlHandler{
		svc: svc,
	}

	if err := gh.initSchema(); err != nil {
		return nil, err
	}

	return gh, nil
}

func (gh *gqlHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	queryJson := make(map[string]interface{})

	err := json.NewDecoder(r.Body).Decode(&queryJson)
	if err != nil {
		log.Println(err)
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("bad request"))
		return
	}

	queryString, ok := queryJson["query"].(string)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("bad request"))
		return
	}

	// variables is optional; a nil map is fine for graphql.Do.
	varQuery, _ := queryJson["variables"].(map[string]interface{})

	res := graphql.Do(graphql.Params{
		Context:        r.Context(),
		Schema:         gh.schema,
		RequestString:  queryString,
		VariableValues: varQuery,
	})
	json.NewEncoder(w).Encode(res)
}
