package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/critfall/dmscreen/internal/api"
	apimock "github.com/critfall/dmscreen/internal/api/mock"
	"github.com/critfall/dmscreen/internal/entities"
	"github.com/critfall/dmscreen/internal/pkg/clock"
	"github.com/critfall/dmscreen/internal/pkg/idgen"
	"github.com/critfall/dmscreen/internal/store"
)

// storeSuite is the shared fixture: a store wired to a mocked gateway and
// a frozen clock. Tests that need an open gate call s.authenticate().
type storeSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	gateway *apimock.MockGateway
	tokens  *api.TokenHolder
	store   *store.Store
	ctx     context.Context
}

func (s *storeSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.gateway = apimock.NewMockGateway(s.ctrl)
	s.tokens = &api.TokenHolder{}
	s.ctx = context.Background()

	st, err := store.New(&store.Config{
		Gateway:     s.gateway,
		Tokens:      s.tokens,
		Clock:       &clock.Fixed{T: time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC)},
		IDGenerator: idgen.NewSequential("req"),
	})
	s.Require().NoError(err)
	s.store = st
}

func (s *storeSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *storeSuite) authenticate() {
	s.gateway.EXPECT().
		Login(s.ctx, &api.LoginInput{Email: "dm@example.com", Password: "hunter2"}).
		Return(&api.LoginOutput{
			Token: "tok-abc",
			User:  entities.User{ID: 7, Email: "dm@example.com"},
		}, nil)

	_, err := s.store.Login(s.ctx, "dm@example.com", "hunter2")
	s.Require().NoError(err)
}

type StoreConfigTestSuite struct {
	suite.Suite
}

func (s *StoreConfigTestSuite) TestValidate_NilConfig() {
	_, err := store.New(nil)
	s.Error(err)
}

func (s *StoreConfigTestSuite) TestValidate_MissingDependencies() {
	_, err := store.New(&store.Config{})
	s.Error(err)
}

func (s *StoreConfigTestSuite) TestNew_DefaultsClockAndIDs() {
	ctrl := gomock.NewController(s.T())
	st, err := store.New(&store.Config{
		Gateway: apimock.NewMockGateway(ctrl),
		Tokens:  &api.TokenHolder{},
	})
	s.Require().NoError(err)
	s.NotNil(st)
}

func TestStoreConfigSuite(t *testing.T) {
	suite.Run(t, new(StoreConfigTestSuite))
}
