package api

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransport_Validation(t *testing.T) {
	_, err := newTransport("open.example.com/1", nil)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "baseurl", verr.Field)

	_, err = newTransport("https://open.example.com/1", nil)
	require.NoError(t, err)
}

func TestTransport_Endpoint(t *testing.T) {
	tr, err := newTransport("https://open.example.com/1/", nil)
	require.NoError(t, err)

	assert.Equal(t, "https://open.example.com/1/shares/abc", tr.endpoint("/shares/abc", nil))

	got := tr.endpoint("/shares", url.Values{"accesstoken": {"tok"}, "skip": {"5"}})
	assert.Equal(t, "https://open.example.com/1/shares?accesstoken=tok&skip=5", got)
}

func TestNewSession_RequiresCredentials(t *testing.T) {
	_, err := NewSession(SessionConfig{BaseURL: "https://open.example.com/1"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "credentials", verr.Field)
}

func TestEmptyBody(t *testing.T) {
	assert.True(t, emptyBody(nil))
	assert.True(t, emptyBody([]byte("  \n")))
	assert.True(t, emptyBody([]byte("null")))
	assert.True(t, emptyBody([]byte("false")))
	assert.False(t, emptyBody([]byte(`{}`)))
}
