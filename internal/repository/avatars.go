package repository

import (
	"mime/multipart"
	"net/url"

	"github.com/minio/minio-go/v7"
)

type AvatarMeta struct {
	Info minio.UploadInfo
	URL  *url.URL
}

// AvatarStore holds user-uploaded avatar images in object storage.
type AvatarStore interface {
	PostAvatar(file multipart.File, header *multipart.FileHeader) (*AvatarMeta, error)
}
