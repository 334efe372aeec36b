package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"newsdesk/internal/domain"
	"newsdesk/internal/service/mocks"
)

type SourceServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	sources    *mocks.MockSourceStore
	connectors *mocks.MockConnectors
	connector  *mocks.MockConnector
	discoverer *mocks.MockLinkDiscoverer

	service *SourceService
}

func (s *SourceServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.sources = mocks.NewMockSourceStore(s.ctrl)
	s.connectors = mocks.NewMockConnectors(s.ctrl)
	s.connector = mocks.NewMockConnector(s.ctrl)
	s.discoverer = mocks.NewMockLinkDiscoverer(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.service = NewSourceService(s.sources, s.connectors, s.discoverer, logger)
}

func (s *SourceServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSourceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SourceServiceTestSuite))
}

func (s *SourceServiceTestSuite) TestConnect() {
	ctx := context.Background()
	src := &domain.Source{ID: "src-1", Kind: domain.KindGmail, Status: domain.StatusDisconnected}
	raw := json.RawMessage(`{"refresh_token":"tok"}`)

	s.sources.EXPECT().GetByID(ctx, "src-1").Return(src, nil)
	s.connectors.EXPECT().Resolve(domain.KindGmail).Return(s.connector, nil)
	s.connector.EXPECT().Authenticate(ctx, raw).Return(domain.AuthResult{
		ProfileName: "user@example.com",
		Credentials: "encrypted-blob",
	}, nil)

	var patch domain.SourcePatch
	s.sources.EXPECT().Update(ctx, "src-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, p domain.SourcePatch) error {
			patch = p
			return nil
		})

	profile, err := s.service.Connect(ctx, "src-1", raw)
	s.Require().NoError(err)
	s.Equal("user@example.com", profile)

	s.Require().NotNil(patch.Status)
	s.Equal(domain.StatusConnected, *patch.Status)
	s.Require().NotNil(patch.Credentials)
	s.Equal("encrypted-blob", *patch.Credentials)
}

func (s *SourceServiceTestSuite) TestConnect_AuthFailureLeavesSourceUntouched() {
	ctx := context.Background()
	src := &domain.Source{ID: "src-1", Kind: domain.KindGmail, Status: domain.StatusDisconnected}

	s.sources.EXPECT().GetByID(ctx, "src-1").Return(src, nil)
	s.connectors.EXPECT().Resolve(domain.KindGmail).Return(s.connector, nil)
	s.connector.EXPECT().Authenticate(ctx, gomock.Any()).
		Return(domain.AuthResult{}, domain.ErrAuthFailed)

	_, err := s.service.Connect(ctx, "src-1", json.RawMessage(`{}`))
	s.ErrorIs(err, domain.ErrAuthFailed)
}

func (s *SourceServiceTestSuite) TestConnect_WebSourceRejected() {
	ctx := context.Background()
	src := &domain.Source{ID: "src-2", Kind: domain.KindGenericWeb}

	s.sources.EXPECT().GetByID(ctx, "src-2").Return(src, nil)

	_, err := s.service.Connect(ctx, "src-2", json.RawMessage(`{}`))
	s.ErrorIs(err, domain.ErrInvalidConfig)
}

func (s *SourceServiceTestSuite) TestDisconnect() {
	ctx := context.Background()
	src := &domain.Source{
		ID:          "src-1",
		Kind:        domain.KindLinkedIn,
		Status:      domain.StatusConnected,
		Credentials: "encrypted-blob",
		SyncCursor:  "7100",
	}

	s.sources.EXPECT().GetByID(ctx, "src-1").Return(src, nil)
	s.connectors.EXPECT().Resolve(domain.KindLinkedIn).Return(s.connector, nil)
	s.connector.EXPECT().Disconnect(ctx, src).Return(nil)

	var patch domain.SourcePatch
	s.sources.EXPECT().Update(ctx, "src-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, p domain.SourcePatch) error {
			patch = p
			return nil
		})

	s.Require().NoError(s.service.Disconnect(ctx, "src-1"))

	s.Equal(domain.StatusDisconnected, *patch.Status)
	s.Equal("", *patch.Credentials)
	s.Equal("", *patch.SyncCursor)
}

func (s *SourceServiceTestSuite) TestDisconnect_PlatformFailureStillClearsLocally() {
	ctx := context.Background()
	src := &domain.Source{ID: "src-1", Kind: domain.KindTwitter, Status: domain.StatusExpired, Credentials: "blob"}

	s.sources.EXPECT().GetByID(ctx, "src-1").Return(src, nil)
	s.connectors.EXPECT().Resolve(domain.KindTwitter).Return(s.connector, nil)
	s.connector.EXPECT().Disconnect(ctx, src).Return(errors.New("service down"))
	s.sources.EXPECT().Update(ctx, "src-1", gomock.Any()).Return(nil)

	s.Require().NoError(s.service.Disconnect(ctx, "src-1"))
}

func (s *SourceServiceTestSuite) TestConnectionStatus_PersistsExpired() {
	ctx := context.Background()
	src := &domain.Source{ID: "src-1", Kind: domain.KindGmail, Status: domain.StatusConnected, Credentials: "blob"}

	s.sources.EXPECT().GetByID(ctx, "src-1").Return(src, nil)
	s.connectors.EXPECT().Resolve(domain.KindGmail).Return(s.connector, nil)
	s.connector.EXPECT().ConnectionStatus(ctx, src).
		Return(domain.ConnectionStatus{Status: domain.StatusExpired, Error: "invalid_grant"}, nil)

	var patch domain.SourcePatch
	s.sources.EXPECT().Update(ctx, "src-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, p domain.SourcePatch) error {
			patch = p
			return nil
		})

	status, err := s.service.ConnectionStatus(ctx, "src-1")
	s.Require().NoError(err)
	s.Equal(domain.StatusExpired, status.Status)
	s.Equal(domain.StatusExpired, *patch.Status)
}

func (s *SourceServiceTestSuite) TestConnectionStatus_WebSource() {
	ctx := context.Background()
	src := &domain.Source{ID: "src-2", Kind: domain.KindGenericWeb, Status: domain.StatusConnected}

	s.sources.EXPECT().GetByID(ctx, "src-2").Return(src, nil)

	status, err := s.service.ConnectionStatus(ctx, "src-2")
	s.Require().NoError(err)
	s.Equal(domain.StatusConnected, status.Status)
}

func (s *SourceServiceTestSuite) TestConnectionStatus_NoCredentials() {
	ctx := context.Background()
	src := &domain.Source{ID: "src-1", Kind: domain.KindGmail}

	s.sources.EXPECT().GetByID(ctx, "src-1").Return(src, nil)

	status, err := s.service.ConnectionStatus(ctx, "src-1")
	s.Require().NoError(err)
	s.Equal(domain.StatusDisconnected, status.Status)
}

func (s *SourceServiceTestSuite) TestValidateConfig() {
	s.Run("connector config delegates", func() {
		raw := json.RawMessage(`{"senders":["a@b.c"]}`)
		s.connectors.EXPECT().Resolve(domain.KindGmail).Return(s.connector, nil)
		s.connector.EXPECT().ValidateConfig(raw).Return(nil)
		s.NoError(s.service.ValidateConfig(domain.KindGmail, raw))
	})

	s.Run("web config accepts valid patterns", func() {
		raw := json.RawMessage(`{"includePatterns":["/blog/"],"excludePatterns":["/tag/"]}`)
		s.NoError(s.service.ValidateConfig(domain.KindGenericWeb, raw))
	})

	s.Run("web config rejects relative patterns", func() {
		raw := json.RawMessage(`{"includePatterns":["blog/"]}`)
		s.ErrorIs(s.service.ValidateConfig(domain.KindGenericWeb, raw), domain.ErrInvalidConfig)
	})

	s.Run("empty web config is valid", func() {
		s.NoError(s.service.ValidateConfig(domain.KindGenericWeb, nil))
	})
}

func (s *SourceServiceTestSuite) TestSuggestPatterns() {
	ctx := context.Background()

	links := []domain.DiscoveredLink{
		{URL: "https://blog.example.com/blog/first-post", Path: "/blog/first-post"},
		{URL: "https://blog.example.com/blog/second-post", Path: "/blog/second-post"},
		{URL: "https://blog.example.com/blog/third-post", Path: "/blog/third-post"},
		{URL: "https://blog.example.com/about", Path: "/about"},
	}
	s.discoverer.EXPECT().DiscoverLinks(ctx, "https://blog.example.com").Return(links, nil)

	selected := []string{
		"https://blog.example.com/blog/first-post",
		"https://blog.example.com/blog/second-post",
	}

	suggestion, err := s.service.SuggestPatterns(ctx, "https://blog.example.com", selected)
	s.Require().NoError(err)

	s.Require().NotEmpty(suggestion.Patterns)
	s.Equal("/blog/", suggestion.Patterns[0].Pattern)
	s.Equal(2, suggestion.Patterns[0].MatchCount)
	s.Equal(3, suggestion.Patterns[0].PotentialMatches)
	s.Equal([]string{"/about"}, suggestion.ExcludePatterns)
	s.Len(suggestion.DiscoveredLinks, 4)
}
