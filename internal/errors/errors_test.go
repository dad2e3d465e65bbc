package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/critfall/dmscreen/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "player not found",
			expected: "NOT_FOUND: player not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "invalid input",
			expected: "INVALID_ARGUMENT: invalid input",
		},
		{
			name:     "unauthenticated error",
			code:     errors.CodeUnauthenticated,
			message:  "token rejected",
			expected: "UNAUTHENTICATED: token rejected",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.NotFound("player not found").
		WithMeta("player_id", 7).
		WithMeta("game_id", 3)

	s.Assert().Equal(7, err.Meta["player_id"])
	s.Assert().Equal(3, err.Meta["game_id"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(baseErr, "failed to fetch players")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to fetch players", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	base := errors.Unauthenticated("token rejected")
	wrapped := errors.Wrap(base, "failed to fetch games")

	s.Assert().Equal(errors.CodeUnauthenticated, wrapped.Code)
	s.Assert().True(errors.IsUnauthenticated(wrapped))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	base := fmt.Errorf("no such row")
	wrapped := errors.WrapWithCode(base, errors.CodeNotFound, "monster not found")

	s.Assert().Equal(errors.CodeNotFound, wrapped.Code)
	s.Assert().True(errors.IsNotFound(wrapped))
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "ignored"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "ignored"))
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	s.Assert().Equal(errors.CodeUnavailable, errors.GetCode(errors.Unavailable("down")))
}

func (s *ErrorsTestSuite) TestGetMessage() {
	s.Assert().Equal("", errors.GetMessage(nil))
	s.Assert().Equal("plain", errors.GetMessage(fmt.Errorf("plain")))
	s.Assert().Equal("down", errors.GetMessage(errors.Unavailable("down")))
}

func (s *ErrorsTestSuite) TestCodeFromHTTPStatus() {
	testCases := []struct {
		status   int
		expected errors.Code
	}{
		{http.StatusOK, errors.CodeOK},
		{http.StatusCreated, errors.CodeOK},
		{http.StatusUnauthorized, errors.CodeUnauthenticated},
		{http.StatusNotFound, errors.CodeNotFound},
		{http.StatusUnprocessableEntity, errors.CodeInvalidArgument},
		{http.StatusTooManyRequests, errors.CodeResourceExhausted},
		{http.StatusConflict, errors.CodeAlreadyExists},
		{http.StatusTeapot, errors.CodeInvalidArgument},
		{http.StatusInternalServerError, errors.CodeInternal},
		{http.StatusServiceUnavailable, errors.CodeUnavailable},
		{http.StatusBadGateway, errors.CodeInternal},
	}

	for _, tc := range testCases {
		s.Run(fmt.Sprintf("status %d", tc.status), func() {
			s.Assert().Equal(tc.expected, errors.CodeFromHTTPStatus(tc.status))
		})
	}
}

func (s *ErrorsTestSuite) TestRoundTripHTTPStatus() {
	codes := []errors.Code{
		errors.CodeUnauthenticated,
		errors.CodeNotFound,
		errors.CodeInvalidArgument,
		errors.CodeResourceExhausted,
		errors.CodeUnavailable,
		errors.CodeInternal,
	}
	for _, code := range codes {
		s.Assert().Equal(code, errors.CodeFromHTTPStatus(code.HTTPStatus()))
	}
}
