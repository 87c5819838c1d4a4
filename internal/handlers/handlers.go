package handlers

import (
	"log"
	"net/http"
	"sync"

	"dragondore/internal/cart"
	"dragondore/internal/catalog"
	"dragondore/internal/models"
	"dragondore/internal/order"
	"dragondore/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// DBInterface is the database surface the handlers need.
type DBInterface interface {
	// Menu item methods
	GetAllMenuItems() ([]catalog.Item, error)
	GetMenuItemByID(id string) (*catalog.Item, error)
	CreateMenuItem(item *catalog.Item) error
	UpdateMenuItem(item *catalog.Item) error
	DeleteMenuItem(id string) error
	// Reservation methods
	CreateReservation(res *models.Reservation) error
	GetAllReservations() ([]models.Reservation, error)
	DeleteReservation(id string) error
}

// Handler serves every route of the site.
type Handler struct {
	db       DBInterface
	catalog  *catalog.Cache
	carts    *cart.Service
	sink     order.Sink
	email    *services.EmailService
	security *services.SecurityLogger

	adminPasswordHash string

	sessionMu     sync.Mutex
	adminSessions map[string]bool
}

// NewHandler creates a Handler over its collaborators.
func NewHandler(db DBInterface, cat *catalog.Cache, carts *cart.Service, sink order.Sink, email *services.EmailService, adminPasswordHash string) *Handler {
	return &Handler{
		db:                db,
		catalog:           cat,
		carts:             carts,
		sink:              sink,
		email:             email,
		security:          services.NewSecurityLogger(),
		adminPasswordHash: adminPasswordHash,
		adminSessions:     make(map[string]bool),
	}
}

const sessionCookie = "user_session"

// sessionID returns the visitor's session id, creating the cookie when
// missing. Each session owns one persisted cart.
func (h *Handler) sessionID(c *gin.Context) string {
	sessionID, _ := c.Cookie(sessionCookie)
	if sessionID == "" {
		sessionID = uuid.New().String()
		c.SetCookie(sessionCookie, sessionID, 3600*24*30, "/", "", false, true)
		log.Printf("sessionID - created new session: %s", sessionID)
	}
	return sessionID
}

// cartFor returns the visitor's cart store.
func (h *Handler) cartFor(c *gin.Context) *cart.Store {
	return h.carts.ForSession(h.sessionID(c))
}

// --- Admin authentication ---

// AuthMiddleware redirects unauthenticated requests of the admin group
// to the login page.
func (h *Handler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, _ := c.Cookie("admin_session")
		if session == "" || !h.isAdminSession(session) {
			c.Redirect(http.StatusSeeOther, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (h *Handler) isAdminSession(id string) bool {
	h.sessionMu.Lock()
	defer h.sessionMu.Unlock()
	return h.adminSessions[id]
}

// AdminLoginPage renders the admin login form.
func (h *Handler) AdminLoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_login.html", gin.H{
		"title": "Administration",
	})
}

// AdminLogin checks the password against the configured bcrypt hash and
// issues an admin session cookie.
func (h *Handler) AdminLogin(c *gin.Context) {
	password := c.PostForm("password")

	if bcrypt.CompareHashAndPassword([]byte(h.adminPasswordHash), []byte(password)) != nil {
		h.security.LogEvent("admin_login_failed", "wrong password", c.ClientIP())
		c.HTML(http.StatusUnauthorized, "admin_login.html", gin.H{
			"title": "Administration",
			"error": "Mot de passe incorrect",
		})
		return
	}

	sessionID := uuid.New().String()
	h.sessionMu.Lock()
	h.adminSessions[sessionID] = true
	h.sessionMu.Unlock()

	h.security.LogEvent("admin_login", "admin session opened", c.ClientIP())
	c.SetCookie("admin_session", sessionID, 3600, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/admin")
}

// AdminLogout drops the admin session.
func (h *Handler) AdminLogout(c *gin.Context) {
	if session, _ := c.Cookie("admin_session"); session != "" {
		h.sessionMu.Lock()
		delete(h.adminSessions, session)
		h.sessionMu.Unlock()
	}
	c.SetCookie("admin_session", "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/admin/login")
}
