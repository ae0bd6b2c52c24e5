package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const (
	sessionName = "cart_session"
	cartIDValue = "cartId"

	// ContextCartID is the gin context key CartSession stores the resolved
	// cart id under.
	ContextCartID = "cart_id"
)

// NewSessionStore builds the cookie store backing cart sessions. Cookies live
// for 30 days.
func NewSessionStore(secret string) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   30 * 24 * 60 * 60,
		HttpOnly: true,
	}
	return store
}

// CartSession resolves the session-bound cart id, silently allocating a fresh
// one on first contact. The cart itself is only created when the session
// first mutates it, so issuing an id here costs nothing but a cookie.
func CartSession(store sessions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, _ := store.Get(c.Request, sessionName)
		id, ok := session.Values[cartIDValue].(string)
		if !ok || id == "" {
			id = uuid.NewString()
			session.Values[cartIDValue] = id
			if err := session.Save(c.Request, c.Writer); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
				c.Abort()
				return
			}
		}
		c.Set(ContextCartID, id)
		c.Next()
	}
}

// CartID returns the cart id CartSession placed on the context.
func CartID(c *gin.Context) string {
	id := c.GetString(ContextCartID)
	return id
}
