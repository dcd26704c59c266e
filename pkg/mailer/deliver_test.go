package mailer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSender struct{ mock.Mock }

func (m *mockSender) Send(ctx context.Context, to, subject, text, html string) error {
	return m.Called(to, subject, text, html).Error(0)
}

func TestDeliver_RendersWelcome(t *testing.T) {
	s := &mockSender{}
	s.On("Send", "ann@example.com", "Welcome to Records API",
		mock.MatchedBy(func(text string) bool { return strings.Contains(text, "Hi Ann,") }),
		mock.MatchedBy(func(html string) bool { return strings.Contains(html, "<strong>ann@example.com</strong>") }),
	).Return(nil)

	err := Deliver(context.Background(), s, NewWelcomeJob("Records API", "ann@example.com", "Ann"))
	require.NoError(t, err)
	s.AssertExpectations(t)
}

func TestDeliver_DefaultsEmptyName(t *testing.T) {
	s := &mockSender{}
	s.On("Send", "bo@example.com", "Welcome to Records",
		mock.MatchedBy(func(text string) bool { return strings.Contains(text, "Hi there,") }),
		mock.Anything,
	).Return(nil)

	require.NoError(t, Deliver(context.Background(), s, NewWelcomeJob("", "bo@example.com", "")))
	s.AssertExpectations(t)
}

func TestDeliver_PlainMessage(t *testing.T) {
	s := &mockSender{}
	s.On("Send", "x@example.com", "hello", "body", "").Return(nil)

	require.NoError(t, Deliver(context.Background(), s, EmailJob{To: "x@example.com", Subject: "hello", Text: "body"}))
	s.AssertExpectations(t)
}

func TestDeliver_BadJobs(t *testing.T) {
	s := &mockSender{}

	assert.ErrorIs(t, Deliver(context.Background(), s, EmailJob{Subject: "x"}), ErrBadJob)
	assert.ErrorIs(t, Deliver(context.Background(), s, EmailJob{To: "x@example.com", Template: "missing"}), ErrBadJob)
	assert.ErrorIs(t, Deliver(context.Background(), s, EmailJob{To: "x@example.com"}), ErrBadJob)
	s.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDeliver_SendErrorIsNotBadJob(t *testing.T) {
	s := &mockSender{}
	boom := errors.New("mailgun down")
	s.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(boom)

	err := Deliver(context.Background(), s, EmailJob{To: "x@example.com", Subject: "s"})
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrBadJob)
}
