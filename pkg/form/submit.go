package form

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/artem13815/resumefill/pkg/resume"
)

// Submitter runs the upload flow for a form session.
type Submitter struct {
	svc resume.ParseService
	log *zap.Logger
}

func NewSubmitter(svc resume.ParseService, logger *zap.Logger) *Submitter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Submitter{svc: svc, log: logger}
}

// Submit rejects unsupported types without touching the session, then runs one
// extraction. The result is applied only if the session was not reset meanwhile.
// The returned error is non-nil only when the upload was not started
// (unsupported type, busy session); extraction failures land in the state.
func (s *Submitter) Submit(ctx context.Context, sess *Session, u resume.Upload) (State, error) {
	if err := s.svc.Check(u.MediaType); err != nil {
		return sess.Snapshot(), err
	}
	ticket, err := sess.Begin(u.Filename)
	if err != nil {
		return sess.Snapshot(), err
	}

	rec, err := s.svc.Parse(ctx, u)
	if err != nil {
		err = sess.Fail(ticket, resume.UserMessage(err))
	} else {
		err = sess.Complete(ticket, rec)
	}
	if errors.Is(err, ErrStale) {
		s.log.Info("form.result.discarded", zap.String("session_id", sess.ID().String()))
	}
	return sess.Snapshot(), nil
}
