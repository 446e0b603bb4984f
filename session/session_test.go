package session

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBootstrapWithoutTokenIsAnonymousAndReady(t *testing.T) {
	p := New("", "")
	p.Bootstrap()

	select {
	case <-p.Ready():
	default:
		t.Fatal("expected the ready channel to be closed")
	}
	assert.True(t, strings.HasPrefix(p.Actor(), "anonymous-"))
}

func TestBootstrapFailsOpenOnBadToken(t *testing.T) {
	p := New("not-a-jwt", "secret")
	p.Bootstrap()

	select {
	case <-p.Ready():
	default:
		t.Fatal("a failed bootstrap must still reach the ready state")
	}
	assert.True(t, strings.HasPrefix(p.Actor(), "anonymous-"))
}

func TestBootstrapResolvesSubject(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "operator-7",
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	p := New(token, "secret")
	p.Bootstrap()

	assert.Equal(t, "operator-7", p.Actor())
}

func TestBootstrapRejectsWrongSecretAnonymously(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "operator-7",
	}).SignedString([]byte("other-secret"))
	require.NoError(t, err)

	p := New(token, "secret")
	p.Bootstrap()

	assert.True(t, strings.HasPrefix(p.Actor(), "anonymous-"))
}

func TestMiddlewareAttachesActor(t *testing.T) {
	gin.SetMode(gin.TestMode)
	p := New("", "")
	p.Bootstrap()

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	p.Middleware()(c)

	assert.Equal(t, p.Actor(), c.GetString("actor"))
}
