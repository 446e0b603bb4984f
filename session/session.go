package session

import (
	"fmt"
	"log"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Provider resolves the acting operator for this process. A configured token
// identifies the operator; any bootstrap failure falls open to an anonymous
// actor so the system reaches a visible, non-crashing state instead of
// hanging. Subscriptions wait on Ready before touching the remote store.
type Provider struct {
	token  string
	secret string

	mu    sync.Mutex
	actor string
	ready chan struct{}
}

func New(token, secret string) *Provider {
	return &Provider{token: token, secret: secret, ready: make(chan struct{})}
}

func (p *Provider) Bootstrap() {
	actor := p.resolveActor()
	p.mu.Lock()
	p.actor = actor
	p.mu.Unlock()
	close(p.ready)
	log.Println("Session ready, actor:", actor)
}

func (p *Provider) resolveActor() string {
	if p.token == "" {
		return anonymousActor()
	}
	parsed, err := jwt.Parse(p.token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(p.secret), nil
	})
	if err != nil {
		log.Println("Error from session bootstrap, continuing anonymously:", err)
		return anonymousActor()
	}
	subject, err := parsed.Claims.GetSubject()
	if err != nil || subject == "" {
		log.Println("Session token has no subject, continuing anonymously")
		return anonymousActor()
	}
	return subject
}

func anonymousActor() string {
	return "anonymous-" + uuid.NewString()
}

// Ready is closed once the actor is resolved.
func (p *Provider) Ready() <-chan struct{} {
	return p.ready
}

func (p *Provider) Actor() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.actor
}

// Middleware attaches the current actor to every request.
func (p *Provider) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("actor", p.Actor())
		c.Next()
	}
}
