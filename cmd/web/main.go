package main

import (
	"html/template"
	"log"
	"os"

	"dragondore/internal/cart"
	"dragondore/internal/catalog"
	"dragondore/internal/config"
	"dragondore/internal/database"
	"dragondore/internal/handlers"
	"dragondore/internal/order"
	"dragondore/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	gin.SetMode(gin.ReleaseMode)

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("Config load failed: %v", err)
	}

	db, err := database.NewDatabase(cfg.DataFile)
	if err != nil {
		log.Fatalf("Database init failed: %v", err)
	}

	// Cart storage: Redis when configured, otherwise the JSON database.
	var storage cart.Storage = db
	if cfg.RedisAddr != "" {
		redisStorage, err := cart.NewRedisStorage(cfg.RedisAddr)
		if err != nil {
			log.Printf("Redis unavailable (%v), carts stored in the data file", err)
		} else {
			log.Printf("Carts stored in Redis at %s", cfg.RedisAddr)
			storage = redisStorage
		}
	}
	carts := cart.NewService(storage)

	// Menu source: the hosted data service when configured, otherwise
	// the admin-edited local database.
	var source catalog.Source = catalog.NewStoreSource(db)
	if cfg.MenuServiceURL != "" {
		log.Printf("Menu served from %s", cfg.MenuServiceURL)
		source = catalog.NewRESTSource(cfg.MenuServiceURL, cfg.MenuServiceKey)
	}
	cat := catalog.NewCache(source)

	email := services.NewEmailService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.EmailFrom, cfg.NotifyTo)

	// Order sink: email notification when SMTP is configured, local
	// acknowledgment otherwise. Orders are never persisted server-side;
	// the restaurant confirms by phone.
	var sink order.Sink = order.LogSink{}
	if email.Enabled() && cfg.NotifyTo != "" {
		sink = services.NewEmailSink(email)
	}

	h := handlers.NewHandler(db, cat, carts, sink, email, cfg.AdminPasswordHash)

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	// One template set per page, all sharing the base layout.
	templates := map[string]*template.Template{}
	templateFiles := map[string][]string{
		"home.html":          {"templates/home.html", "templates/base.html"},
		"menu.html":          {"templates/menu.html", "templates/base.html"},
		"takeaway.html":      {"templates/takeaway.html", "templates/base.html"},
		"checkout.html":      {"templates/checkout.html", "templates/base.html"},
		"order_success.html": {"templates/order_success.html", "templates/base.html"},
		"reservation.html":   {"templates/reservation.html", "templates/base.html"},
		"info.html":          {"templates/info.html", "templates/base.html"},
		"blog.html":          {"templates/blog.html", "templates/base.html"},
		"blog_article.html":  {"templates/blog_article.html", "templates/base.html"},
		"legal.html":         {"templates/legal.html", "templates/base.html"},
		"admin.html":         {"templates/admin.html", "templates/base.html"},
		"admin_login.html":   {"templates/admin_login.html", "templates/base.html"},
	}
	for name, files := range templateFiles {
		tmpl, err := template.New(name).Funcs(handlers.TemplateFuncs).ParseFiles(files...)
		if err != nil {
			log.Fatalf("Template load failed %s: %v", name, err)
		}
		templates[name] = tmpl
	}
	r.HTMLRender = &handlers.HTMLRenderer{Templates: templates}

	r.Static("/static", "./static")
	r.GET("/robots.txt", func(c *gin.Context) {
		c.Header("Content-Type", "text/plain")
		c.File("./static/robots.txt")
	})
	r.GET("/favicon.ico", func(c *gin.Context) {
		c.File("./static/favicon.ico")
	})

	// Public pages
	r.GET("/", h.HomePage)
	r.GET("/menu", h.MenuPage)
	r.GET("/takeaway", h.TakeawayPage)
	r.GET("/reservation", h.ReservationPage)
	r.POST("/reservation", h.HandleReservation)
	r.GET("/info", h.InfoPage)
	r.GET("/blog", h.BlogPage)
	r.GET("/blog/plats-chinois", h.BlogArticlePage)
	r.GET("/legal", h.LegalPage)

	// Cart API
	r.POST("/cart/add", h.AddToCart)
	r.POST("/cart/update", h.UpdateCartItem)
	r.POST("/cart/remove", h.RemoveFromCart)
	r.GET("/cart/count", h.GetCartCount)

	// Takeaway checkout
	r.GET("/takeaway/checkout", h.CheckoutPage)
	r.POST("/takeaway/order", h.SubmitOrder)
	r.GET("/order-success", h.OrderSuccessPage)

	// Admin authentication (unprotected)
	r.GET("/admin/login", h.AdminLoginPage)
	r.POST("/admin/login", h.AdminLogin)
	r.GET("/admin/logout", h.AdminLogout)

	// Admin panel (protected)
	admin := r.Group("/admin")
	admin.Use(h.AuthMiddleware())
	{
		admin.GET("", h.AdminPage)
		admin.POST("/menu-items", h.AddMenuItem)
		admin.PUT("/menu-items/:id", h.UpdateMenuItem)
		admin.DELETE("/menu-items/:id", h.DeleteMenuItem)
		admin.GET("/reservations", h.AdminGetReservations)
		admin.DELETE("/reservations/:id", h.AdminDeleteReservation)
	}

	log.Printf("Dragon Doré listening on %s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalf("HTTP server failed: %v", err)
	}
}
