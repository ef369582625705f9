package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"newsreel/internal/config"
	"newsreel/internal/domain"
	"newsreel/internal/service/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func strPtr(s string) *string { return &s }

func sentimentPtr(s domain.Sentiment) *domain.Sentiment { return &s }

type StageTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	store  *mocks.MockRecordStore
	events *mocks.MockEventPublisher

	cfg config.StageConfig
}

func (s *StageTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = mocks.NewMockRecordStore(s.ctrl)
	s.events = mocks.NewMockEventPublisher(s.ctrl)

	s.cfg = config.StageConfig{
		Interval: time.Hour,
		Batch:    10,
		Statuses: []domain.Status{domain.StatusValidArticle},
		Lease:    15 * time.Minute,
	}
}

func (s *StageTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestStageTestSuite(t *testing.T) {
	suite.Run(t, new(StageTestSuite))
}

func (s *StageTestSuite) newStage(handle HandlerFunc) *Stage {
	return NewStage("testing", domain.StatusErrorScript, s.store, s.events, s.cfg, "worker-1", testLogger(), handle)
}

func (s *StageTestSuite) TestRun_CommitsSuccess() {
	ctx := context.Background()
	candidates := []domain.NewsRecord{
		{ID: 7, Headline: "h", Status: domain.StatusValidArticle},
	}

	s.store.EXPECT().FindCandidates(ctx, s.cfg.Statuses, 10, s.cfg.Lease).Return(candidates, nil)
	s.store.EXPECT().Claim(ctx, int64(7), domain.StatusValidArticle, "worker-1", s.cfg.Lease).Return(true, nil)

	s.store.EXPECT().UpdateFields(ctx, int64(7), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, fields map[string]any) error {
			s.Equal(domain.StatusScriptGenerated, fields["status"])
			s.Equal("t", fields["video_title"])
			s.Nil(fields["error_type"])
			s.Nil(fields["error_message"])
			s.Nil(fields["error_at"])
			return nil
		},
	)

	s.events.EXPECT().PublishTransition(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, t domain.Transition) error {
			s.Equal(int64(7), t.RecordID)
			s.Equal("testing", t.Stage)
			s.Equal(domain.StatusValidArticle, t.From)
			s.Equal(domain.StatusScriptGenerated, t.To)
			s.Nil(t.ErrorType)
			return nil
		},
	)

	stage := s.newStage(func(ctx context.Context, rec *domain.NewsRecord) Outcome {
		return Succeed(domain.StatusScriptGenerated, map[string]any{"video_title": "t"})
	})

	stats, err := stage.Run(ctx)

	s.NoError(err)
	s.Equal(1, stats.Selected)
	s.Equal(1, stats.Claimed)
	s.Equal(1, stats.Succeeded)
	s.Equal(0, stats.Failed)
}

func (s *StageTestSuite) TestRun_CommitsFailure() {
	ctx := context.Background()
	candidates := []domain.NewsRecord{
		{ID: 7, Headline: "h", Status: domain.StatusValidArticle},
	}

	s.store.EXPECT().FindCandidates(ctx, s.cfg.Statuses, 10, s.cfg.Lease).Return(candidates, nil)
	s.store.EXPECT().Claim(ctx, int64(7), domain.StatusValidArticle, "worker-1", s.cfg.Lease).Return(true, nil)

	s.store.EXPECT().UpdateFields(ctx, int64(7), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, fields map[string]any) error {
			s.Equal(domain.StatusErrorScript, fields["status"])
			s.Equal(domain.ErrorTypeScriptCall, fields["error_type"])
			s.Equal("model unavailable", fields["error_message"])
			s.NotNil(fields["error_at"])
			return nil
		},
	)

	s.events.EXPECT().PublishTransition(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, t domain.Transition) error {
			s.Equal(domain.StatusErrorScript, t.To)
			s.Require().NotNil(t.ErrorType)
			s.Equal(domain.ErrorTypeScriptCall, *t.ErrorType)
			return nil
		},
	)

	stage := s.newStage(func(ctx context.Context, rec *domain.NewsRecord) Outcome {
		return Fail(domain.ErrorTypeScriptCall, "model unavailable")
	})

	stats, err := stage.Run(ctx)

	s.NoError(err)
	s.Equal(1, stats.Failed)
	s.Equal(0, stats.Succeeded)
}

func (s *StageTestSuite) TestRun_CommitsRejection() {
	ctx := context.Background()
	candidates := []domain.NewsRecord{
		{ID: 7, Headline: "h", Status: domain.StatusValidArticle},
	}

	s.store.EXPECT().FindCandidates(ctx, s.cfg.Statuses, 10, s.cfg.Lease).Return(candidates, nil)
	s.store.EXPECT().Claim(ctx, int64(7), domain.StatusValidArticle, "worker-1", s.cfg.Lease).Return(true, nil)

	s.store.EXPECT().UpdateFields(ctx, int64(7), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, fields map[string]any) error {
			s.Equal(domain.StatusInvalidArticle, fields["status"])
			s.Equal("Not news.", fields["reject_reason"])
			s.Nil(fields["error_type"])
			return nil
		},
	)
	s.events.EXPECT().PublishTransition(ctx, gomock.Any()).Return(nil)

	stage := s.newStage(func(ctx context.Context, rec *domain.NewsRecord) Outcome {
		return Reject("Not news.")
	})

	stats, err := stage.Run(ctx)

	s.NoError(err)
	s.Equal(1, stats.Rejected)
}

func (s *StageTestSuite) TestRun_SkipsLostClaims() {
	ctx := context.Background()
	candidates := []domain.NewsRecord{
		{ID: 1, Status: domain.StatusValidArticle},
		{ID: 2, Status: domain.StatusValidArticle},
	}

	s.store.EXPECT().FindCandidates(ctx, s.cfg.Statuses, 10, s.cfg.Lease).Return(candidates, nil)

	// Record 1 is taken by another worker between select and claim.
	s.store.EXPECT().Claim(ctx, int64(1), domain.StatusValidArticle, "worker-1", s.cfg.Lease).Return(false, nil)
	s.store.EXPECT().Claim(ctx, int64(2), domain.StatusValidArticle, "worker-1", s.cfg.Lease).Return(true, nil)

	s.store.EXPECT().UpdateFields(ctx, int64(2), gomock.Any()).Return(nil)
	s.events.EXPECT().PublishTransition(ctx, gomock.Any()).Return(nil)

	handled := 0
	stage := s.newStage(func(ctx context.Context, rec *domain.NewsRecord) Outcome {
		handled++
		s.Equal(int64(2), rec.ID)
		return Succeed(domain.StatusScriptGenerated, nil)
	})

	stats, err := stage.Run(ctx)

	s.NoError(err)
	s.Equal(1, handled)
	s.Equal(2, stats.Selected)
	s.Equal(1, stats.Skipped)
	s.Equal(1, stats.Claimed)
}

func (s *StageTestSuite) TestRun_OneFailureDoesNotAbortBatch() {
	ctx := context.Background()
	candidates := []domain.NewsRecord{
		{ID: 1, Status: domain.StatusValidArticle},
		{ID: 2, Status: domain.StatusValidArticle},
		{ID: 3, Status: domain.StatusValidArticle},
	}

	s.store.EXPECT().FindCandidates(ctx, s.cfg.Statuses, 10, s.cfg.Lease).Return(candidates, nil)
	s.store.EXPECT().Claim(ctx, gomock.Any(), domain.StatusValidArticle, "worker-1", s.cfg.Lease).Return(true, nil).Times(3)
	s.store.EXPECT().UpdateFields(ctx, gomock.Any(), gomock.Any()).Return(nil).Times(3)
	s.events.EXPECT().PublishTransition(ctx, gomock.Any()).Return(nil).Times(3)

	stage := s.newStage(func(ctx context.Context, rec *domain.NewsRecord) Outcome {
		if rec.ID == 2 {
			return Fail(domain.ErrorTypeScriptCall, "boom")
		}
		return Succeed(domain.StatusScriptGenerated, nil)
	})

	stats, err := stage.Run(ctx)

	s.NoError(err)
	s.Equal(2, stats.Succeeded)
	s.Equal(1, stats.Failed)
}

func (s *StageTestSuite) TestRun_PanicBecomesRecordFailure() {
	ctx := context.Background()
	candidates := []domain.NewsRecord{
		{ID: 9, Status: domain.StatusValidArticle},
	}

	s.store.EXPECT().FindCandidates(ctx, s.cfg.Statuses, 10, s.cfg.Lease).Return(candidates, nil)
	s.store.EXPECT().Claim(ctx, int64(9), domain.StatusValidArticle, "worker-1", s.cfg.Lease).Return(true, nil)

	s.store.EXPECT().UpdateFields(ctx, int64(9), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, fields map[string]any) error {
			s.Equal(domain.StatusErrorScript, fields["status"])
			s.Equal(domain.ErrorTypeUnexpected, fields["error_type"])
			s.Contains(fields["error_message"], "panic in testing handler")
			return nil
		},
	)
	s.events.EXPECT().PublishTransition(ctx, gomock.Any()).Return(nil)

	stage := s.newStage(func(ctx context.Context, rec *domain.NewsRecord) Outcome {
		panic("nil dereference somewhere deep")
	})

	stats, err := stage.Run(ctx)

	s.NoError(err)
	s.Equal(1, stats.Failed)
}

func (s *StageTestSuite) TestRun_FindCandidatesError() {
	ctx := context.Background()

	s.store.EXPECT().FindCandidates(ctx, s.cfg.Statuses, 10, s.cfg.Lease).Return(nil, errors.New("db down"))

	stage := s.newStage(func(ctx context.Context, rec *domain.NewsRecord) Outcome {
		s.FailNow("handler must not run")
		return Outcome{}
	})

	_, err := stage.Run(ctx)

	s.Error(err)
	s.Contains(err.Error(), "find candidates")
}

func (s *StageTestSuite) TestRun_NilEventPublisher() {
	ctx := context.Background()
	candidates := []domain.NewsRecord{
		{ID: 7, Status: domain.StatusValidArticle},
	}

	s.store.EXPECT().FindCandidates(ctx, s.cfg.Statuses, 10, s.cfg.Lease).Return(candidates, nil)
	s.store.EXPECT().Claim(ctx, int64(7), domain.StatusValidArticle, "worker-1", s.cfg.Lease).Return(true, nil)
	s.store.EXPECT().UpdateFields(ctx, int64(7), gomock.Any()).Return(nil)

	stage := NewStage("testing", domain.StatusErrorScript, s.store, nil, s.cfg, "worker-1", testLogger(), func(ctx context.Context, rec *domain.NewsRecord) Outcome {
		return Succeed(domain.StatusScriptGenerated, nil)
	})

	stats, err := stage.Run(ctx)

	s.NoError(err)
	s.Equal(1, stats.Succeeded)
}
