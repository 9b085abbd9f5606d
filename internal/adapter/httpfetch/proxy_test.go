package httpfetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProxyRotator_RoundRobin(t *testing.T) {
	r, err := NewProxyRotator([]string{"http://p1:8000", "socks5://p2:1080"})
	require.NoError(t, err)
	require.Equal(t, 2, r.Len())

	assert.Equal(t, "p1:8000", r.Next().Host)
	assert.Equal(t, "p2:1080", r.Next().Host)
	u, err := r.Proxy(nil)
	require.NoError(t, err)
	assert.Equal(t, "p1:8000", u.Host)
}

func TestProxyRotator_Empty(t *testing.T) {
	r, err := NewProxyRotator(nil)
	require.NoError(t, err)

	u, err := r.Proxy(nil)
	assert.NoError(t, err)
	assert.Nil(t, u)
}

func TestNewProxyRotator_Invalid(t *testing.T) {
	for _, raw := range []string{"ftp://p:21", "http://", "://bad"} {
		_, err := NewProxyRotator([]string{raw})
		assert.Error(t, err, raw)
	}
}
