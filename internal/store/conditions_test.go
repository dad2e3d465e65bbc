package store_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/critfall/dmscreen/internal/api"
	"github.com/critfall/dmscreen/internal/entities"
)

type ConditionsTestSuite struct {
	storeSuite
}

func (s *ConditionsTestSuite) SetupTest() {
	s.storeSuite.SetupTest()
	s.authenticate()
}

func (s *ConditionsTestSuite) TestClearCurrentCondition() {
	s.gateway.EXPECT().
		GetCondition(s.ctx, &api.GetConditionInput{ID: 2}).
		Return(&api.GetConditionOutput{Condition: entities.Condition{ID: 2, Name: "Poisoned"}}, nil)

	_, err := s.store.FetchCondition(s.ctx, 2)
	s.Require().NoError(err)
	detail, ok := s.store.CurrentCondition()
	s.Require().True(ok)
	s.Equal("Poisoned", detail.Name)

	s.store.ClearCurrentCondition()
	_, ok = s.store.CurrentCondition()
	s.False(ok)
}

func TestConditionsSuite(t *testing.T) {
	suite.Run(t, new(ConditionsTestSuite))
}
