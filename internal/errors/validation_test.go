package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/critfall/dmscreen/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", "Strahd", vb)
	errors.ValidateRange("condition_length", 3, 0, 99, vb)

	s.Assert().NoError(vb.Build())
}

func (s *ValidationTestSuite) TestBuilderCollectsFields() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", "  ", vb)
	errors.ValidatePositiveID("player_id", 0, vb)
	errors.ValidateMin("condition_length", -1, 0, vb)

	err := vb.Build()
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))

	fields := errors.FieldErrors(err)
	s.Require().NotNil(fields)
	s.Assert().Equal([]string{"is required"}, fields["name"])
	s.Assert().Equal([]string{"is required"}, fields["player_id"])
	s.Assert().Equal([]string{"must be at least 0"}, fields["condition_length"])
}

func (s *ValidationTestSuite) TestFieldErrorsOnPlainError() {
	s.Assert().Nil(errors.FieldErrors(errors.Internal("boom")))
	s.Assert().Nil(errors.FieldErrors(nil))
}

func (s *ValidationTestSuite) TestValidationErrorMessageIsStable() {
	ve := errors.NewValidationError()
	ve.AddFieldError("name", "is required")
	ve.AddFieldError("condition_id", "is required")

	// Field names are sorted so the message does not depend on map order.
	s.Assert().Equal(
		"validation failed: condition_id: is required; name: is required",
		ve.Error(),
	)
}
