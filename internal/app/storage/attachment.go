package storage

import (
	"context"
	"io"
	"mime/multipart"

	"github.com/gabriel-vasile/mimetype"

	"chatserver/internal/app/store"
	"chatserver/internal/pkg/errs"
	"chatserver/internal/pkg/logx"
	"chatserver/internal/pkg/randx"
)

const (
	// MaxAttachmentSizeMB is the maximum allowed file size in megabytes.
	MaxAttachmentSizeMB = 5

	// MaxAttachmentSize is the maximum allowed file size in bytes.
	MaxAttachmentSize = MaxAttachmentSizeMB * 1024 * 1024

	// MaxAttachmentsPerMessage caps the files of one attachment message.
	MaxAttachmentsPerMessage = 5
)

// Kind selects the allow-list a file is checked against.
type Kind int

const (
	KindAvatar Kind = iota
	KindAttachment
)

// Prefix is the object key prefix of the kind.
func (k Kind) Prefix() string {
	if k == KindAvatar {
		return "avatars"
	}
	return "attachments"
}

var imageMIMETypes = []string{
	"image/jpeg",
	"image/png",
	"image/webp",
	"image/gif",
}

var attachmentMIMETypes = append([]string{
	"video/mp4",
	"video/webm",
	"audio/mpeg",
	"audio/ogg",
	"audio/wav",
	"application/pdf",
	"application/zip",
	"text/plain",
}, imageMIMETypes...)

// ValidateFileSize checks if the provided file size is within acceptable limits.
func ValidateFileSize(fileSize int64) *errs.CustomError {
	if fileSize <= 0 {
		return errs.NewError(errs.ErrFileRequired)
	}

	if fileSize > MaxAttachmentSize {
		return errs.NewError(errs.ErrFileSizeTooLarge)
	}

	return nil
}

// DetectType sniffs the content of r and checks it against the allow-list of kind.
// The declared Content-Type of an upload is never trusted.
func DetectType(r io.Reader, kind Kind) (string, *errs.CustomError) {
	mtype, err := mimetype.DetectReader(r)
	if err != nil {
		return "", errs.NewError(errs.ErrFileTypeInvalid)
	}

	allowed := imageMIMETypes
	if kind == KindAttachment {
		allowed = attachmentMIMETypes
	}

	for _, m := range allowed {
		if mtype.Is(m) {
			return m, nil
		}
	}

	return "", errs.NewError(errs.ErrFileTypeInvalid)
}

// UploadFiles validates and uploads files, returning their descriptors in input order.
// On failure the files already uploaded are removed again.
func UploadFiles(ctx context.Context, svc StorageService, kind Kind, files []*multipart.FileHeader) ([]store.Attachment, *errs.CustomError) {
	uploaded := make([]store.Attachment, 0, len(files))

	for _, fh := range files {
		att, customErr := uploadOne(ctx, svc, kind, fh)
		if customErr != nil {
			rollback(svc, uploaded)
			return nil, customErr
		}
		uploaded = append(uploaded, att)
	}

	return uploaded, nil
}

func uploadOne(ctx context.Context, svc StorageService, kind Kind, fh *multipart.FileHeader) (store.Attachment, *errs.CustomError) {
	if customErr := ValidateFileSize(fh.Size); customErr != nil {
		return store.Attachment{}, customErr
	}

	f, err := fh.Open()
	if err != nil {
		logx.Warn("Could not open uploaded file", "file", fh.Filename, "error", err.Error())
		return store.Attachment{}, errs.NewError(errs.ErrFormParseFailed)
	}
	defer f.Close()

	contentType, customErr := DetectType(f, kind)
	if customErr != nil {
		return store.Attachment{}, customErr
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return store.Attachment{}, errs.NewError(errs.ErrFormParseFailed)
	}

	key := randx.ObjectKey(kind.Prefix(), fh.Filename)
	url, err := svc.Upload(ctx, key, contentType, f)
	if err != nil {
		return store.Attachment{}, errs.NewError(errs.ErrFileStorageFailed)
	}

	return store.Attachment{PublicID: key, URL: url}, nil
}

func rollback(svc StorageService, uploaded []store.Attachment) {
	if len(uploaded) == 0 {
		return
	}

	keys := make([]string, 0, len(uploaded))
	for _, a := range uploaded {
		keys = append(keys, a.PublicID)
	}

	// the request context may already be cancelled
	if err := svc.Delete(context.Background(), keys...); err != nil {
		logx.Error(err, "Failed to roll back uploaded files", "count", len(keys))
	}
}
