package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClient struct {
	resp  Response
	err   error
	calls int
}

func (s *stubClient) Complete(ctx context.Context, req Request) (Response, error) {
	s.calls++
	return s.resp, s.err
}

func TestFallbackClientPrimarySucceeds(t *testing.T) {
	primary := &stubClient{resp: Response{Text: "primary reply"}}
	secondary := &stubClient{resp: Response{Text: "secondary reply"}}

	c := NewFallbackClient(primary, secondary, nil)
	resp, err := c.Complete(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "hi"}}})

	require.NoError(t, err)
	assert.Equal(t, "primary reply", resp.Text)
	assert.Equal(t, 0, secondary.calls)
}

func TestFallbackClientSecondaryUsedOnPrimaryFailure(t *testing.T) {
	primary := &stubClient{err: errors.New("rate limited")}
	secondary := &stubClient{resp: Response{Text: "secondary reply"}}

	c := NewFallbackClient(primary, secondary, nil)
	resp, err := c.Complete(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "hi"}}})

	require.NoError(t, err)
	assert.Equal(t, "secondary reply", resp.Text)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, secondary.calls)
}

func TestFallbackClientNoSecondaryReturnsPrimaryError(t *testing.T) {
	primaryErr := errors.New("unavailable")
	c := NewFallbackClient(&stubClient{err: primaryErr}, nil, nil)

	_, err := c.Complete(context.Background(), Request{})
	assert.ErrorIs(t, err, primaryErr)
}

func TestFallbackClientBothFailReturnsSecondaryError(t *testing.T) {
	secondaryErr := errors.New("also down")
	c := NewFallbackClient(&stubClient{err: errors.New("down")}, &stubClient{err: secondaryErr}, nil)

	_, err := c.Complete(context.Background(), Request{})
	assert.ErrorIs(t, err, secondaryErr)
}
