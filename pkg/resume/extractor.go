package resume

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/artem13815/resumefill/pkg/llm"
	"github.com/artem13815/resumefill/pkg/logging"
)

// Extractor sends one document to a remote model and decodes the structured reply.
// A call is a single round-trip: no retries, no salvage of partial output.
type Extractor struct {
	model   llm.DocumentModel
	log     *zap.Logger
	timeout time.Duration
}

// NewExtractor wires the extraction client. timeout <= 0 means the caller's context decides.
func NewExtractor(model llm.DocumentModel, logger *zap.Logger, timeout time.Duration) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{model: model, log: logger, timeout: timeout}
}

// ModelName reports the configured model id.
func (e *Extractor) ModelName() string { return e.model.Name() }

// Extract decodes base64Payload, sends it with the fixed instruction and schema,
// and returns the decoded record. Every failure matches ErrExtractionFailed.
func (e *Extractor) Extract(ctx context.Context, mediaType, base64Payload string) (ResumeRecord, error) {
	rid := logging.RequestID(ctx)
	start := time.Now()
	log := e.log.With(zap.String("req_id", rid), zap.String("model", e.model.Name()))

	data, err := base64.StdEncoding.DecodeString(base64Payload)
	if err != nil || len(data) == 0 {
		if err == nil {
			err = errors.New("empty payload")
		}
		return ResumeRecord{}, e.fail(log, start, StagePayload, err)
	}

	log.Info("resume.extract.start",
		zap.String("media_type", mediaType),
		zap.Int("bytes", len(data)),
	)

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	text, err := e.model.Generate(ctx, llm.Request{
		Parts: []llm.Part{
			{MIMEType: mediaType, Data: data},
			{Text: Instruction},
		},
		Schema:           Schema,
		ResponseMIMEType: llm.MIMETypeJSON,
	})
	if err != nil {
		return ResumeRecord{}, e.fail(log, start, StageTransport, err)
	}

	rec, stage, err := DecodeRecord(text)
	if err != nil {
		return ResumeRecord{}, e.fail(log, start, stage, err)
	}

	log.Info("resume.extract.ok",
		zap.Int("skills", len(rec.Skills)),
		zap.Int("work_experience", len(rec.WorkExperience)),
		zap.Int("education", len(rec.Education)),
		zap.Int64("elapsed_ms", time.Since(start).Milliseconds()),
	)
	return rec, nil
}

// DecodeRecord trims raw model output, validates it against Schema and decodes it
// strictly. On failure it also reports which stage rejected the text.
func DecodeRecord(raw string) (ResumeRecord, Stage, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return ResumeRecord{}, StageEmptyResponse, errors.New("model returned no text")
	}
	if err := llm.ValidateJSONAgainstSchema(Schema, []byte(text)); err != nil {
		return ResumeRecord{}, StageSchema, err
	}
	dec := json.NewDecoder(bytes.NewReader([]byte(text)))
	dec.DisallowUnknownFields()
	var rec ResumeRecord
	if err := dec.Decode(&rec); err != nil {
		return ResumeRecord{}, StageDecode, err
	}
	rec.normalize()
	return rec, "", nil
}

func (e *Extractor) fail(log *zap.Logger, start time.Time, stage Stage, cause error) error {
	log.Error("resume.extract.failed",
		zap.String("stage", string(stage)),
		zap.Error(cause),
		zap.Int64("elapsed_ms", time.Since(start).Milliseconds()),
	)
	return &ExtractionError{Stage: stage, Cause: cause}
}
