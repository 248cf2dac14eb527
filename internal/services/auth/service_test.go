package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/volleydraft-go/internal/dependencies/mocks"
	"github.com/mcoot/volleydraft-go/internal/storage/memory"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, DefaultConfig())
	s.ctx = context.Background()
}

// SignUp tests

func (s *ServiceSuite) TestSignUpSucceeds() {
	session, err := s.service.SignUp(s.ctx, "alice@example.com", "password123", "Alice")
	s.Require().NoError(err)

	s.NotEmpty(session.Token)
	s.Equal("alice@example.com", session.User.Email)
	s.Equal("Alice", session.User.Name)
	s.NotEmpty(session.UserID)
}

func (s *ServiceSuite) TestSignUpPersistsUser() {
	session, _ := s.service.SignUp(s.ctx, "alice@example.com", "password123", "Alice")

	user, err := s.storage.GetUser(s.ctx, session.UserID)
	s.Require().NoError(err)
	s.Equal("alice@example.com", user.Email)
	s.NotEmpty(user.PasswordHash)
	s.NotEqual("password123", user.PasswordHash) // Should be hashed
}

func (s *ServiceSuite) TestSignUpSessionIsValid() {
	session, _ := s.service.SignUp(s.ctx, "alice@example.com", "password123", "Alice")

	validated, err := s.service.ValidateSession(session.Token)
	s.Require().NoError(err)
	s.Equal(session.UserID, validated.UserID)
}

func (s *ServiceSuite) TestSignUpFailsIfEmailExists() {
	_, _ = s.service.SignUp(s.ctx, "alice@example.com", "password123", "Alice")

	_, err := s.service.SignUp(s.ctx, "alice@example.com", "different", "Alice2")
	s.ErrorIs(err, ErrEmailExists)
}

// SignIn tests

func (s *ServiceSuite) TestSignInSucceeds() {
	_, _ = s.service.SignUp(s.ctx, "alice@example.com", "password123", "Alice")

	session, err := s.service.SignIn(s.ctx, "alice@example.com", "password123")
	s.Require().NoError(err)

	s.NotEmpty(session.Token)
	s.Equal("Alice", session.User.Name)
}

func (s *ServiceSuite) TestSignInFailsWithWrongPassword() {
	_, _ = s.service.SignUp(s.ctx, "alice@example.com", "password123", "Alice")

	_, err := s.service.SignIn(s.ctx, "alice@example.com", "wrongpassword")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestSignInFailsWithUnknownEmail() {
	_, err := s.service.SignIn(s.ctx, "nobody@example.com", "password123")
	s.ErrorIs(err, ErrInvalidCredentials)
}

// ValidateSession tests

func (s *ServiceSuite) TestValidateSessionSucceeds() {
	session, _ := s.service.SignUp(s.ctx, "alice@example.com", "password123", "Alice")

	validated, err := s.service.ValidateSession(session.Token)
	s.Require().NoError(err)
	s.Equal(session.Token, validated.Token)
}

func (s *ServiceSuite) TestValidateSessionFailsWithInvalidToken() {
	_, err := s.service.ValidateSession("invalid_token")
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestValidateSessionFailsWhenExpired() {
	session, _ := s.service.SignUp(s.ctx, "alice@example.com", "password123", "Alice")

	// Advance time past expiration
	s.clock.Advance(25 * time.Hour)

	_, err := s.service.ValidateSession(session.Token)
	s.ErrorIs(err, ErrInvalidSession)
}

// InvalidateSession tests

func (s *ServiceSuite) TestInvalidateSessionRemovesSession() {
	session, _ := s.service.SignUp(s.ctx, "alice@example.com", "password123", "Alice")

	s.service.InvalidateSession(session.Token)

	_, err := s.service.ValidateSession(session.Token)
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestInvalidateSessionNoopForUnknownToken() {
	// Should not panic
	s.service.InvalidateSession("unknown_token")
}

// GetUser tests

func (s *ServiceSuite) TestGetUserSucceeds() {
	session, _ := s.service.SignUp(s.ctx, "alice@example.com", "password123", "Alice")

	user, err := s.service.GetUser(session.Token)
	s.Require().NoError(err)
	s.Equal("Alice", user.Name)
}

func (s *ServiceSuite) TestGetUserFailsWithInvalidToken() {
	_, err := s.service.GetUser("invalid_token")
	s.ErrorIs(err, ErrInvalidSession)
}

// CleanExpiredSessions tests

func (s *ServiceSuite) TestCleanExpiredSessionsRemovesExpired() {
	session1, _ := s.service.SignUp(s.ctx, "alice@example.com", "password123", "Alice")

	// Advance time so session1 expires
	s.clock.Advance(25 * time.Hour)

	// Create a new session (not expired)
	session2, _ := s.service.SignUp(s.ctx, "bob@example.com", "password123", "Bob")

	s.service.CleanExpiredSessions()

	// session1 should be gone
	_, err := s.service.ValidateSession(session1.Token)
	s.ErrorIs(err, ErrInvalidSession)

	// session2 should still be valid
	_, err = s.service.ValidateSession(session2.Token)
	s.NoError(err)
}
