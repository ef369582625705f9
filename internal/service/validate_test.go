package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"newsreel/internal/ai"
	"newsreel/internal/config"
	"newsreel/internal/domain"
	"newsreel/internal/service/mocks"
)

type ValidateStageTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	store     *mocks.MockRecordStore
	validator *mocks.MockContentValidator

	stage *Stage
	cfg   config.StageConfig
}

func (s *ValidateStageTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = mocks.NewMockRecordStore(s.ctrl)
	s.validator = mocks.NewMockContentValidator(s.ctrl)

	s.cfg = config.StageConfig{
		Interval: 15 * time.Minute,
		Batch:    10,
		Statuses: []domain.Status{domain.StatusFetched},
		Lease:    15 * time.Minute,
	}

	s.stage = NewValidateStage(s.store, s.validator, nil, s.cfg, "worker-1", testLogger())
}

func (s *ValidateStageTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestValidateStageTestSuite(t *testing.T) {
	suite.Run(t, new(ValidateStageTestSuite))
}

func (s *ValidateStageTestSuite) expectOne(rec domain.NewsRecord) context.Context {
	ctx := context.Background()
	s.store.EXPECT().FindCandidates(ctx, s.cfg.Statuses, 10, s.cfg.Lease).Return([]domain.NewsRecord{rec}, nil)
	s.store.EXPECT().Claim(ctx, rec.ID, rec.Status, "worker-1", s.cfg.Lease).Return(true, nil)
	return ctx
}

func (s *ValidateStageTestSuite) TestValidArticle() {
	rec := domain.NewsRecord{ID: 1, Headline: "Monsoon arrives early", Status: domain.StatusFetched}
	ctx := s.expectOne(rec)

	s.validator.EXPECT().Validate(ctx, "Monsoon arrives early").Return(&ai.Verdict{
		Valid:          "YES",
		RelatedToIndia: "YES",
		Relevancy:      64,
	}, nil)

	s.store.EXPECT().UpdateFields(ctx, int64(1), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, fields map[string]any) error {
			s.Equal(domain.StatusValidArticle, fields["status"])
			s.Equal(64, fields["relevancy"])
			return nil
		},
	)

	stats, err := s.stage.Run(ctx)

	s.NoError(err)
	s.Equal(1, stats.Succeeded)
}

func (s *ValidateStageTestSuite) TestMissingRelevancyGetsBaseline() {
	rec := domain.NewsRecord{ID: 1, Headline: "h", Status: domain.StatusFetched}
	ctx := s.expectOne(rec)

	s.validator.EXPECT().Validate(ctx, "h").Return(&ai.Verdict{
		Valid:          "YES",
		RelatedToIndia: "YES",
	}, nil)

	s.store.EXPECT().UpdateFields(ctx, int64(1), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, fields map[string]any) error {
			s.Equal(baselineRelevancy, fields["relevancy"])
			return nil
		},
	)

	_, err := s.stage.Run(ctx)
	s.NoError(err)
}

func (s *ValidateStageTestSuite) TestNotNewsIsRejected() {
	rec := domain.NewsRecord{ID: 2, Headline: "Top 10 biryani spots", Status: domain.StatusFetched}
	ctx := s.expectOne(rec)

	s.validator.EXPECT().Validate(ctx, "Top 10 biryani spots").Return(&ai.Verdict{
		Valid:  "NO",
		Reason: "Listicle, not news.",
	}, nil)

	s.store.EXPECT().UpdateFields(ctx, int64(2), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, fields map[string]any) error {
			s.Equal(domain.StatusInvalidArticle, fields["status"])
			s.Equal("Listicle, not news.", fields["reject_reason"])
			s.Nil(fields["error_type"])
			return nil
		},
	)

	stats, err := s.stage.Run(ctx)

	s.NoError(err)
	s.Equal(1, stats.Rejected)
	s.Equal(0, stats.Failed)
}

func (s *ValidateStageTestSuite) TestNotNewsWithoutReasonGetsDefault() {
	rec := domain.NewsRecord{ID: 2, Headline: "h", Status: domain.StatusFetched}
	ctx := s.expectOne(rec)

	s.validator.EXPECT().Validate(ctx, "h").Return(&ai.Verdict{Valid: "NO"}, nil)

	s.store.EXPECT().UpdateFields(ctx, int64(2), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, fields map[string]any) error {
			s.Equal("Not a valid article.", fields["reject_reason"])
			return nil
		},
	)

	_, err := s.stage.Run(ctx)
	s.NoError(err)
}

func (s *ValidateStageTestSuite) TestUnrelatedIsRejected() {
	rec := domain.NewsRecord{ID: 3, Headline: "Local election abroad", Status: domain.StatusFetched}
	ctx := s.expectOne(rec)

	s.validator.EXPECT().Validate(ctx, "Local election abroad").Return(&ai.Verdict{
		Valid:          "YES",
		RelatedToIndia: "NO",
	}, nil)

	s.store.EXPECT().UpdateFields(ctx, int64(3), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, fields map[string]any) error {
			s.Equal(domain.StatusInvalidArticle, fields["status"])
			s.Equal("Not related to India.", fields["reject_reason"])
			return nil
		},
	)

	_, err := s.stage.Run(ctx)
	s.NoError(err)
}

func (s *ValidateStageTestSuite) TestCallFailure() {
	rec := domain.NewsRecord{ID: 4, Headline: "h", Status: domain.StatusFetched}
	ctx := s.expectOne(rec)

	s.validator.EXPECT().Validate(ctx, "h").Return(nil, errors.New("connection refused"))

	s.store.EXPECT().UpdateFields(ctx, int64(4), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, fields map[string]any) error {
			s.Equal(domain.StatusErrorValidate, fields["status"])
			s.Equal(domain.ErrorTypeValidationCall, fields["error_type"])
			s.Contains(fields["error_message"], "connection refused")
			return nil
		},
	)

	stats, err := s.stage.Run(ctx)

	s.NoError(err)
	s.Equal(1, stats.Failed)
}

func (s *ValidateStageTestSuite) TestDecodeFailureKeepsRawOutput() {
	rec := domain.NewsRecord{ID: 5, Headline: "h", Status: domain.StatusFetched}
	ctx := s.expectOne(rec)

	s.validator.EXPECT().Validate(ctx, "h").Return(nil, &ai.DecodeError{
		Raw: "As a language model I cannot",
		Err: errors.New("invalid character 'A'"),
	})

	s.store.EXPECT().UpdateFields(ctx, int64(5), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, fields map[string]any) error {
			s.Equal(domain.ErrorTypeValidationCall, fields["error_type"])
			s.Contains(fields["error_message"], "As a language model I cannot")
			return nil
		},
	)

	_, err := s.stage.Run(ctx)
	s.NoError(err)
}
