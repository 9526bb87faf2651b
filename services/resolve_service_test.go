package services

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/traffbase/clickmap/models"
	"github.com/traffbase/clickmap/repositories/mocks"
)

func TestExtractSource_FallbackOrder(t *testing.T) {
	tests := []struct {
		name   string
		params url.Values
		want   string
	}{
		{"source wins", url.Values{"source": {"a.com"}, "domain": {"b.com"}, "referrer": {"c.com"}}, "a.com"},
		{"domain second", url.Values{"domain": {"b.com"}, "referrer": {"c.com"}}, "b.com"},
		{"referrer last", url.Values{"referrer": {"c.com"}}, "c.com"},
		{"empty source falls through", url.Values{"source": {""}, "domain": {"b.com"}}, "b.com"},
		{"whitespace source falls through", url.Values{"source": {"  "}, "domain": {"b.com"}}, "b.com"},
		{"nothing present", url.Values{"foo": {"bar"}}, ""},
		{"empty bag", url.Values{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractSource(tt.params))
		})
	}
}

// ResolveTestSuite drives the resolution service against mocked stores
type ResolveTestSuite struct {
	suite.Suite
	service         ResolveService
	mockMappingRepo *mocks.MockMappingRepository
	mockLogRepo     *mocks.MockResolutionLogRepository
}

func (suite *ResolveTestSuite) SetupTest() {
	suite.mockMappingRepo = mocks.NewMockMappingRepository(suite.T())
	suite.mockLogRepo = mocks.NewMockResolutionLogRepository(suite.T())
	suite.service = NewResolveService(suite.mockMappingRepo, suite.mockLogRepo)
}

func (suite *ResolveTestSuite) TestEmptyBag_ShortCircuitsStoreLookup() {
	resolution, err := suite.service.Resolve(context.Background(), url.Values{})

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), resolution.Found)
	assert.Empty(suite.T(), resolution.Source)
	// No GetBySource expectation was registered; the mock would fail the
	// test if the store were queried
	suite.mockMappingRepo.AssertNotCalled(suite.T(), "GetBySource", mock.Anything, mock.Anything)
}

func (suite *ResolveTestSuite) TestFound() {
	suite.mockMappingRepo.EXPECT().
		GetBySource(mock.Anything, "a.com").
		Return(&models.MappingRecord{Source: "a.com", SubID: "acc123"}, nil)

	resolution, err := suite.service.Resolve(context.Background(), url.Values{"source": {"a.com"}})

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), resolution.Found)
	assert.Equal(suite.T(), "acc123", resolution.SubID)
	assert.Equal(suite.T(), "a.com", resolution.Source)
}

func (suite *ResolveTestSuite) TestUnknownSource_NotFound() {
	suite.mockMappingRepo.EXPECT().
		GetBySource(mock.Anything, "b.com").
		Return(nil, nil)

	resolution, err := suite.service.Resolve(context.Background(), url.Values{"domain": {"b.com"}})

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), resolution.Found)
	assert.Equal(suite.T(), "b.com", resolution.Source)
	assert.Empty(suite.T(), resolution.SubID)
}

func (suite *ResolveTestSuite) TestEmptySubID_NotFound() {
	suite.mockMappingRepo.EXPECT().
		GetBySource(mock.Anything, "a.com").
		Return(&models.MappingRecord{Source: "a.com", SubID: ""}, nil)

	resolution, err := suite.service.Resolve(context.Background(), url.Values{"source": {"a.com"}})

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), resolution.Found)
	assert.Equal(suite.T(), "a.com", resolution.Source)
}

func (suite *ResolveTestSuite) TestStoreError_Propagates() {
	suite.mockMappingRepo.EXPECT().
		GetBySource(mock.Anything, "a.com").
		Return(nil, errors.New("database is locked"))

	resolution, err := suite.service.Resolve(context.Background(), url.Values{"source": {"a.com"}})

	assert.Error(suite.T(), err)
	assert.Equal(suite.T(), "a.com", resolution.Source)
}

func (suite *ResolveTestSuite) TestLogAttempt_SwallowsSinkFailure() {
	done := make(chan struct{})
	suite.mockLogRepo.EXPECT().
		Create(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, entry *models.ResolutionLogEntry) error {
			defer close(done)
			return errors.New("sink unavailable")
		})

	suite.service.LogAttempt(&models.ResolutionLogEntry{
		Method: "GET",
		Status: models.ResolutionStatusNotFound,
	})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		suite.T().Fatal("log attempt never reached the sink")
	}
}

func TestResolveTestSuite(t *testing.T) {
	suite.Run(t, new(ResolveTestSuite))
}

func TestBuildRedirectURL(t *testing.T) {
	service := NewResolveService(nil, nil)

	t.Run("unresolved stamps literal null and strips source keys", func(t *testing.T) {
		params := url.Values{"domain": {"b.com"}, "click_id": {"42"}}

		got := service.BuildRedirectURL("https://tracker.example/in", params, "")

		parsed, err := url.Parse(got)
		assert.NoError(t, err)
		query := parsed.Query()
		assert.Equal(t, "null", query.Get("sub_id"))
		assert.Equal(t, "42", query.Get("click_id"))
		assert.False(t, query.Has("domain"))
	})

	t.Run("resolved value carried", func(t *testing.T) {
		params := url.Values{"source": {"a.com"}, "campaign": {"7"}}

		got := service.BuildRedirectURL("https://tracker.example/in", params, "acc123")

		parsed, _ := url.Parse(got)
		query := parsed.Query()
		assert.Equal(t, "acc123", query.Get("sub_id"))
		assert.Equal(t, "7", query.Get("campaign"))
		assert.False(t, query.Has("source"))
	})

	t.Run("all three source keys removed", func(t *testing.T) {
		params := url.Values{"source": {"a"}, "domain": {"b"}, "referrer": {"c"}}

		got := service.BuildRedirectURL("https://tracker.example/in", params, "")

		parsed, _ := url.Parse(got)
		query := parsed.Query()
		assert.False(t, query.Has("source"))
		assert.False(t, query.Has("domain"))
		assert.False(t, query.Has("referrer"))
		assert.Equal(t, "null", query.Get("sub_id"))
	})

	t.Run("target with existing query string", func(t *testing.T) {
		got := service.BuildRedirectURL("https://tracker.example/in?fixed=1", url.Values{}, "acc9")

		parsed, _ := url.Parse(got)
		query := parsed.Query()
		assert.Equal(t, "1", query.Get("fixed"))
		assert.Equal(t, "acc9", query.Get("sub_id"))
	})

	t.Run("inbound sub_id is overwritten", func(t *testing.T) {
		params := url.Values{"sub_id": {"stale"}}

		got := service.BuildRedirectURL("https://tracker.example/in", params, "fresh")

		parsed, _ := url.Parse(got)
		assert.Equal(t, []string{"fresh"}, parsed.Query()["sub_id"])
	})
}
