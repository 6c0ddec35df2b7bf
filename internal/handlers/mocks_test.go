package handlers

import (
	"context"
	"net/http"

	"github.com/stretchr/testify/mock"
	"github.com/white/lead-management/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockAgentStore struct {
	mock.Mock
}

func (m *MockAgentStore) Create(ctx context.Context, agent *models.SalesAgent) error {
	args := m.Called(ctx, agent)
	return args.Error(0)
}

func (m *MockAgentStore) List(ctx context.Context) ([]*models.SalesAgent, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.SalesAgent), args.Error(1)
}

func (m *MockAgentStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.SalesAgent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SalesAgent), args.Error(1)
}

type MockLeadStore struct {
	mock.Mock
}

func (m *MockLeadStore) Create(ctx context.Context, lead *models.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadStore) List(ctx context.Context, filter models.LeadFilter) ([]*models.LeadView, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.LeadView), args.Error(1)
}

func (m *MockLeadStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.LeadView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LeadView), args.Error(1)
}

func (m *MockLeadStore) ListByAgent(ctx context.Context, agentID primitive.ObjectID) ([]*models.LeadView, error) {
	args := m.Called(ctx, agentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.LeadView), args.Error(1)
}

func (m *MockLeadStore) Update(ctx context.Context, id primitive.ObjectID, upd *models.LeadUpdate) (*models.Lead, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Lead), args.Error(1)
}

func (m *MockLeadStore) Delete(ctx context.Context, id primitive.ObjectID) (*models.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Lead), args.Error(1)
}

type MockTagStore struct {
	mock.Mock
}

func (m *MockTagStore) Create(ctx context.Context, tag *models.Tag) error {
	args := m.Called(ctx, tag)
	return args.Error(0)
}

func (m *MockTagStore) List(ctx context.Context) ([]*models.Tag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Tag), args.Error(1)
}

type MockCommentStore struct {
	mock.Mock
}

func (m *MockCommentStore) Create(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentStore) ListByLead(ctx context.Context, leadID primitive.ObjectID) ([]*models.CommentView, error) {
	args := m.Called(ctx, leadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.CommentView), args.Error(1)
}

type MockReportStore struct {
	mock.Mock
}

func (m *MockReportStore) RecentClosedDeals(ctx context.Context) ([]*models.ClosedDeal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ClosedDeal), args.Error(1)
}

func (m *MockReportStore) PipelineCount(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReportStore) ClosedByAgent(ctx context.Context) ([]*models.AgentClosedCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.AgentClosedCount), args.Error(1)
}

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(ctx context.Context) error { return p.err }

// testStores carries one mock per store so a test can wire the full router
type testStores struct {
	agents   *MockAgentStore
	leads    *MockLeadStore
	tags     *MockTagStore
	comments *MockCommentStore
	reports  *MockReportStore
}

func newTestStores() *testStores {
	return &testStores{
		agents:   new(MockAgentStore),
		leads:    new(MockLeadStore),
		tags:     new(MockTagStore),
		comments: new(MockCommentStore),
		reports:  new(MockReportStore),
	}
}

func (s *testStores) router() http.Handler {
	return NewRouter(RouterConfig{
		Agents:   NewAgentHandler(s.agents),
		Leads:    NewLeadHandler(s.leads, nil),
		Tags:     NewTagHandler(s.tags),
		Comments: NewCommentHandler(s.comments),
		Reports:  NewReportHandler(s.reports),
		Health:   NewHealthHandler(stubPinger{}, "test"),
	})
}

func (s *testStores) assertExpectations(t mock.TestingT) {
	s.agents.AssertExpectations(t)
	s.leads.AssertExpectations(t)
	s.tags.AssertExpectations(t)
	s.comments.AssertExpectations(t)
	s.reports.AssertExpectations(t)
}
