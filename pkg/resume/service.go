package resume

import (
	"context"

	"go.uber.org/zap"
)

// ParseService describes the application use case: file in, record out.
type ParseService interface {
	Parse(ctx context.Context, u Upload) (ResumeRecord, error)
	// Check validates the declared media type before any I/O.
	Check(mediaType string) error
	ModelName() string
}

// DocumentExtractor is the extraction step as seen by the parse service.
type DocumentExtractor interface {
	Extract(ctx context.Context, mediaType, base64Payload string) (ResumeRecord, error)
	ModelName() string
}

type parseService struct {
	ingest    *Ingestor
	extractor DocumentExtractor
	log       *zap.Logger
}

// NewParseService creates the default implementation.
func NewParseService(ingest *Ingestor, extractor DocumentExtractor, logger *zap.Logger) ParseService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &parseService{ingest: ingest, extractor: extractor, log: logger}
}

func (s *parseService) Check(mediaType string) error { return s.ingest.Accept(mediaType) }

func (s *parseService) ModelName() string { return s.extractor.ModelName() }

// Parse reads the upload fully before the remote call starts.
func (s *parseService) Parse(ctx context.Context, u Upload) (ResumeRecord, error) {
	doc, err := s.ingest.Read(ctx, u)
	if err != nil {
		s.log.Warn("resume.ingest.rejected",
			zap.String("filename", u.Filename),
			zap.String("media_type", u.MediaType),
			zap.Error(err),
		)
		return ResumeRecord{}, err
	}
	info := Inspect(doc)
	s.log.Info("resume.ingest.ok",
		zap.String("filename", doc.Filename),
		zap.String("media_type", doc.MediaType),
		zap.Int64("size", doc.Size),
		zap.Int("pages", info.Pages),
		zap.Bool("well_formed", info.WellFormed),
	)
	return s.extractor.Extract(ctx, doc.MediaType, doc.Base64)
}
