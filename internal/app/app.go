package app

import (
	"context"
	"fmt"
	"log"

	"github.com/gfdmit/adhd-forum/config"
	v1 "github.com/gfdmit/adhd-forum/internal/handlers/http/v1"
	"github.com/gfdmit/adhd-forum/internal/httpserver"
	"github.com/gfdmit/adhd-forum/internal/repository"
	"github.com/gfdmit/adhd-forum/internal/repository/kv"
	miniorepo "github.com/gfdmit/adhd-forum/internal/repository/minio"
	"github.com/gfdmit/adhd-forum/internal/service"
	"github.com/gfdmit/adhd-forum/internal/storage"
	"github.com/gfdmit/adhd-forum/internal/storage/sqlite"
)

func Run(conf config.Config) error {
	ctx := context.Background()

	store, err := newStore(conf.Storage)
	if err != nil {
		return fmt.Errorf("error when setting up storage: %v", err)
	}
	defer store.Close()

	repo := kv.New(store)
	if err := repo.Initialize(ctx); err != nil {
		return fmt.Errorf("error when seeding storage: %v", err)
	}

	var avatars repository.AvatarStore
	if conf.MinIO.Enabled {
		avatars, err = miniorepo.New(conf.MinIO)
		if err != nil {
			return fmt.Errorf("error when setting up avatar storage: %v", err)
		}
	}

	svc := service.New(repo, avatars)

	handler, err := v1.New(svc)
	if err != nil {
		return fmt.Errorf("error when setting up handler: %v", err)
	}

	httpserver := httpserver.New(conf.HTTPServer, handler)

	return httpserver.Run(ctx)
}

func newStore(conf config.Storage) (storage.Store, error) {
	switch conf.Driver {
	case "memory":
		log.Println("[STORAGE] using in-memory store, data will not survive restarts")
		return storage.NewMemory(), nil
	case "sqlite":
		return sqlite.New(conf)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", conf.Driver)
	}
}
