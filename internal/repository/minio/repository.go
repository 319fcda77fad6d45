package minio

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/gfdmit/adhd-forum/config"
	"github.com/gfdmit/adhd-forum/internal/repository"
)

type minioRepository struct {
	cli    *minio.Client
	bucket string
}

func New(conf config.MinIO) (*minioRepository, error) {
	client, err := minio.New(fmt.Sprintf("%s:%s", conf.Host, conf.Port), &minio.Options{
		Creds:  credentials.NewStaticV4(conf.User, conf.Pass, ""),
		Secure: false,
	})
	if err != nil {
		return nil, fmt.Errorf("minio.New: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, conf.Bucket)
	if err != nil || !exists {
		if err := client.MakeBucket(ctx, conf.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("bucket creation: %v", err)
		}
	}

	return &minioRepository{
		cli:    client,
		bucket: conf.Bucket,
	}, nil
}

func (mr minioRepository) PostAvatar(file multipart.File, header *multipart.FileHeader) (*repository.AvatarMeta, error) {
	ext := filepath.Ext(header.Filename)
	objectName := fmt.Sprintf("%s%s", uuid.New().String(), ext)

	info, err := mr.cli.PutObject(
		context.Background(),
		mr.bucket,
		objectName,
		file,
		header.Size,
		minio.PutObjectOptions{ContentType: header.Header.Get("Content-Type")},
	)
	if err != nil {
		return nil, err
	}

	url, err := mr.cli.PresignedGetObject(
		context.Background(),
		mr.bucket,
		objectName,
		24*time.Hour,
		nil,
	)
	if err != nil {
		return nil, err
	}
	return &repository.AvatarMeta{
		Info: info,
		URL:  url,
	}, nil
}
