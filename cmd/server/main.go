package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/foliosite/backend/internal/config"
	"github.com/foliosite/backend/internal/handler"
	"github.com/foliosite/backend/internal/logging"
	"github.com/foliosite/backend/internal/repository"
	"github.com/foliosite/backend/internal/service"
	"github.com/foliosite/backend/pkg/auth"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	logging.Setup(cfg.LogLevel)

	pool, err := repository.NewPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	projectRepo := repository.NewPgProjectRepository(pool)
	experienceRepo := repository.NewPgExperienceRepository(pool)
	skillRepo := repository.NewPgSkillRepository(pool)
	leadershipRepo := repository.NewPgLeadershipRepository(pool)
	siteContentRepo := repository.NewPgSiteContentRepository(pool)
	contactRepo := repository.NewPgContactRepository(pool)
	sessionRepo := repository.NewPgSessionRepository(pool)

	projectService := service.NewProjectService(projectRepo)
	experienceService := service.NewExperienceService(experienceRepo)
	skillService := service.NewSkillService(skillRepo)
	leadershipService := service.NewLeadershipService(leadershipRepo)
	siteContentService := service.NewSiteContentService(siteContentRepo)
	contactService := service.NewContactService(contactRepo)
	authService := service.NewAuthService(sessionRepo, service.Credentials{
		Username: cfg.AdminUsername,
		Password: cfg.AdminPassword,
	}, cfg.SessionTTL)

	h := handler.New(pool, cfg.FrontendURL)
	projectHandler := handler.NewProjectHandler(projectService)
	experienceHandler := handler.NewExperienceHandler(experienceService)
	skillHandler := handler.NewSkillHandler(skillService)
	leadershipHandler := handler.NewLeadershipHandler(leadershipService)
	siteContentHandler := handler.NewSiteContentHandler(siteContentService)
	contactHandler := handler.NewContactHandler(contactService)
	authHandler := handler.NewAuthHandler(authService)

	requireSession := auth.RequireSession(func(ctx context.Context, token string) (string, error) {
		sess, err := authService.Validate(ctx, token)
		if errors.Is(err, service.ErrUnauthenticated) {
			return "", auth.ErrUnauthenticated
		}
		if err != nil {
			return "", err
		}
		return sess.Username, nil
	})
	admin := func(fn http.HandlerFunc) http.Handler {
		return requireSession(fn)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)

	// Public content API (no identity required)
	mux.HandleFunc("GET /api/projects", projectHandler.List)
	mux.HandleFunc("GET /api/projects/{slug}", projectHandler.GetBySlug)
	mux.HandleFunc("GET /api/experiences", experienceHandler.List)
	mux.HandleFunc("GET /api/skills", skillHandler.List)
	mux.HandleFunc("GET /api/leadership", leadershipHandler.List)
	mux.HandleFunc("GET /api/site-content", siteContentHandler.Get)
	mux.HandleFunc("POST /api/contact", contactHandler.Submit)
	mux.HandleFunc("POST /api/login", authHandler.Login)

	// Admin API (valid session required)
	mux.Handle("POST /api/logout", admin(authHandler.Logout))
	mux.Handle("POST /api/admin/projects", admin(projectHandler.Create))
	mux.Handle("PUT /api/admin/projects/{id}", admin(projectHandler.Update))
	mux.Handle("DELETE /api/admin/projects/{id}", admin(projectHandler.Delete))
	mux.Handle("POST /api/admin/experiences", admin(experienceHandler.Create))
	mux.Handle("PUT /api/admin/experiences/{id}", admin(experienceHandler.Update))
	mux.Handle("DELETE /api/admin/experiences/{id}", admin(experienceHandler.Delete))
	mux.Handle("POST /api/admin/skills", admin(skillHandler.Create))
	mux.Handle("PUT /api/admin/skills/{id}", admin(skillHandler.Update))
	mux.Handle("DELETE /api/admin/skills/{id}", admin(skillHandler.Delete))
	mux.Handle("POST /api/admin/leadership", admin(leadershipHandler.Create))
	mux.Handle("PUT /api/admin/leadership/{id}", admin(leadershipHandler.Update))
	mux.Handle("DELETE /api/admin/leadership/{id}", admin(leadershipHandler.Delete))
	mux.Handle("PUT /api/admin/site-content", admin(siteContentHandler.Upsert))
	mux.Handle("GET /api/admin/contacts", admin(contactHandler.AdminList))
	mux.Handle("PUT /api/admin/contacts/{id}/read", admin(contactHandler.MarkRead))
	mux.Handle("DELETE /api/admin/contacts/{id}", admin(contactHandler.Delete))

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      h.CORS(handler.SecurityHeaders(handler.RequestLogger(mux))),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
