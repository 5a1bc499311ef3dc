package ocrcache_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	ocrmock "github.com/KirkDiggler/rpg-converter/internal/clients/ocr/mock"
	"github.com/KirkDiggler/rpg-converter/internal/errors"
	"github.com/KirkDiggler/rpg-converter/internal/repositories/ocrcache"
	ocrcachemock "github.com/KirkDiggler/rpg-converter/internal/repositories/ocrcache/mock"
	"github.com/KirkDiggler/rpg-converter/internal/testutils/mocks"
)

type CachedEngineTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockOCR   *ocrmock.MockEngine
	mockRepo  *ocrcachemock.MockRepository
	imagePath string
	imageHash string
	ctx       context.Context
}

func TestCachedEngineTestSuite(t *testing.T) {
	suite.Run(t, new(CachedEngineTestSuite))
}

func (s *CachedEngineTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockOCR = ocrmock.NewMockEngine(s.ctrl)
	s.mockRepo = ocrcachemock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()

	// sha256("test")
	s.imagePath = filepath.Join(s.T().TempDir(), "brute.png")
	s.Require().NoError(os.WriteFile(s.imagePath, []byte("test"), 0o600))
	s.imageHash = testHash
}

func (s *CachedEngineTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CachedEngineTestSuite) newEngine(refresh bool) *ocrcache.CachedEngine {
	engine, err := ocrcache.NewCachedEngine(&ocrcache.CachedEngineConfig{
		Engine:     s.mockOCR,
		Repository: s.mockRepo,
		Refresh:    refresh,
	})
	s.Require().NoError(err)
	return engine
}

func (s *CachedEngineTestSuite) TestNewCachedEngineValidation() {
	_, err := ocrcache.NewCachedEngine(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = ocrcache.NewCachedEngine(&ocrcache.CachedEngineConfig{Engine: s.mockOCR})
	s.Require().Error(err)
	s.Contains(err.Error(), "Repository")

	_, err = ocrcache.NewCachedEngine(&ocrcache.CachedEngineConfig{Repository: s.mockRepo})
	s.Require().Error(err)
	s.Contains(err.Error(), "Engine")
}

func (s *CachedEngineTestSuite) TestHitSkipsEngine() {
	mocks.ExpectCacheHit(s.ctx, s.mockRepo, s.imageHash, "cached text")

	text, err := s.newEngine(false).Recognize(s.ctx, s.imagePath)

	s.Require().NoError(err)
	s.Equal("cached text", text)
}

func (s *CachedEngineTestSuite) TestMissRunsEngineAndStores() {
	gomock.InOrder(
		mocks.ExpectCacheMiss(s.ctx, s.mockRepo, s.imageHash),
		mocks.ExpectRecognize(s.ctx, s.mockOCR, s.imagePath, "fresh text", nil),
		mocks.ExpectCacheStore(s.ctx, s.mockRepo, s.imageHash, s.imagePath, "fresh text"),
	)

	text, err := s.newEngine(false).Recognize(s.ctx, s.imagePath)

	s.Require().NoError(err)
	s.Equal("fresh text", text)
}

func (s *CachedEngineTestSuite) TestLookupFailureIsBypassed() {
	s.mockRepo.EXPECT().
		Get(s.ctx, gomock.Any()).
		Return(nil, errors.Unavailable("redis down"))
	s.mockOCR.EXPECT().
		Recognize(s.ctx, s.imagePath).
		Return("fresh text", nil)
	s.mockRepo.EXPECT().
		Put(s.ctx, gomock.Any()).
		Return(nil, errors.Unavailable("redis down"))

	text, err := s.newEngine(false).Recognize(s.ctx, s.imagePath)

	s.Require().NoError(err)
	s.Equal("fresh text", text)
}

func (s *CachedEngineTestSuite) TestRefreshSkipsLookup() {
	s.mockOCR.EXPECT().
		Recognize(s.ctx, s.imagePath).
		Return("fresh text", nil)
	s.mockRepo.EXPECT().
		Put(s.ctx, gomock.Any()).
		Return(&ocrcache.PutOutput{}, nil)

	text, err := s.newEngine(true).Recognize(s.ctx, s.imagePath)

	s.Require().NoError(err)
	s.Equal("fresh text", text)
}

func (s *CachedEngineTestSuite) TestEngineErrorIsReturnedAndNotCached() {
	mocks.ExpectCacheMiss(s.ctx, s.mockRepo, s.imageHash)
	mocks.ExpectRecognize(s.ctx, s.mockOCR, s.imagePath, "", errors.Internal("tesseract failed"))

	_, err := s.newEngine(false).Recognize(s.ctx, s.imagePath)

	s.Require().Error(err)
	s.Equal(errors.CodeInternal, errors.GetCode(err))
}

func (s *CachedEngineTestSuite) TestMissingImage() {
	_, err := s.newEngine(false).Recognize(s.ctx, filepath.Join(s.T().TempDir(), "missing.png"))

	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}
