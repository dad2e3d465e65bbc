package entities_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/critfall/dmscreen/internal/entities"
	"github.com/critfall/dmscreen/internal/errors"
)

type MonsterTestSuite struct {
	suite.Suite
}

func TestMonsterSuite(t *testing.T) {
	suite.Run(t, new(MonsterTestSuite))
}

func (s *MonsterTestSuite) TestParseSize() {
	size, err := entities.ParseSize("gargantuan")
	s.Require().NoError(err)
	s.Assert().Equal(entities.SizeGargantuan, size)

	_, err = entities.ParseSize("colossal")
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *MonsterTestSuite) TestParseAlignment() {
	alignment, err := entities.ParseAlignment("chaotic_neutral")
	s.Require().NoError(err)
	s.Assert().Equal(entities.AlignmentChaoticNeutral, alignment)

	_, err = entities.ParseAlignment("unaligned")
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *MonsterTestSuite) TestDecodeMonster() {
	raw := `{
		"id": 12,
		"name": "Owlbear",
		"size": "large",
		"alignment": "true_neutral",
		"armor_class": 13,
		"hit_points": 59,
		"speed": 40,
		"resistances": "",
		"attacks": "Beak, Claws",
		"p_bonus": 2,
		"displayed": true,
		"game_id": 3
	}`

	var monster entities.Monster
	s.Require().NoError(json.Unmarshal([]byte(raw), &monster))
	s.Assert().Equal(entities.SizeLarge, monster.Size)
	s.Assert().Equal(entities.AlignmentTrueNeutral, monster.Alignment)
	s.Assert().True(monster.Displayed)
}

func (s *MonsterTestSuite) TestDecodeMonsterRejectsUnknownEnum() {
	raw := `{"id": 12, "name": "Blob", "size": "enormous", "alignment": "true_neutral"}`

	var monster entities.Monster
	err := json.Unmarshal([]byte(raw), &monster)
	s.Require().Error(err)
}

func (s *MonsterTestSuite) TestConditionSentinel() {
	s.Assert().True(entities.Condition{ID: 1, Name: "None"}.Sentinel())
	s.Assert().False(entities.Condition{ID: 2, Name: "Poisoned"}.Sentinel())
}
