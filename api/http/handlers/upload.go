package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/artem13815/resumefill/pkg/logging"
	"github.com/artem13815/resumefill/pkg/resume"
)

var errNoFile = errors.New("file is required (pdf, docx or txt)")

// formUpload opens the multipart "file" field after check accepts its declared
// media type. The reader is closed by the returned func; content is read later by the ingestor.
func formUpload(c *fiber.Ctx, check func(mediaType string) error) (resume.Upload, func(), error) {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return resume.Upload{}, func() {}, errNoFile
	}
	u := resume.Upload{
		Filename:  fh.Filename,
		MediaType: fh.Header.Get(fiber.HeaderContentType),
		Size:      fh.Size,
	}
	if err := check(u.MediaType); err != nil {
		return u, func() {}, err
	}
	file, err := fh.Open()
	if err != nil {
		return u, func() {}, errors.Join(resume.ErrReadFailed, err)
	}
	u.Reader = file
	return u, func() { _ = file.Close() }, nil
}

// requestContext carries the request id into the domain logs.
func requestContext(c *fiber.Ctx) context.Context {
	ctx := c.UserContext()
	if id, ok := c.Locals(requestid.ConfigDefault.ContextKey).(string); ok && id != "" {
		ctx = logging.WithRequestID(ctx, id)
	}
	return ctx
}
