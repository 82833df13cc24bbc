// Command seed fills an empty database with demo portfolio content so the
// frontend has something to render during development. It is idempotent:
// if any projects already exist it exits without writing.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/foliosite/backend/internal/config"
	"github.com/foliosite/backend/internal/logging"
	"github.com/foliosite/backend/internal/model"
	"github.com/foliosite/backend/internal/repository"
	"github.com/foliosite/backend/internal/schema"
	"github.com/foliosite/backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)

	ctx := context.Background()
	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	projects := service.NewProjectService(repository.NewPgProjectRepository(pool))
	experiences := service.NewExperienceService(repository.NewPgExperienceRepository(pool))
	skills := service.NewSkillService(repository.NewPgSkillRepository(pool))
	leadership := service.NewLeadershipService(repository.NewPgLeadershipRepository(pool))
	siteContent := service.NewSiteContentService(repository.NewPgSiteContentRepository(pool))

	existing, err := projects.List(ctx)
	if err != nil {
		logging.Fatal("failed to check existing data", "error", err)
	}
	if len(existing) > 0 {
		slog.Info("database already seeded, skipping", "projects", len(existing))
		return
	}

	if err := seed(ctx, projects, experiences, skills, leadership, siteContent); err != nil {
		logging.Fatal("seed failed", "error", err)
	}
	slog.Info("seed completed")
}

func seed(
	ctx context.Context,
	projects service.ProjectService,
	experiences service.ExperienceService,
	skills service.SkillService,
	leadership service.LeadershipService,
	siteContent service.SiteContentService,
) error {
	for _, in := range demoProjects() {
		if _, err := projects.Create(ctx, in); err != nil {
			return fmt.Errorf("seed project %q: %w", in.Slug, err)
		}
	}
	for _, in := range demoExperiences() {
		if _, err := experiences.Create(ctx, in); err != nil {
			return fmt.Errorf("seed experience %q: %w", in.Company, err)
		}
	}
	for _, in := range demoSkills() {
		if _, err := skills.Create(ctx, in); err != nil {
			return fmt.Errorf("seed skill %q: %w", in.Name, err)
		}
	}
	for _, in := range demoLeadership() {
		if _, err := leadership.Create(ctx, in); err != nil {
			return fmt.Errorf("seed leadership %q: %w", in.Organization, err)
		}
	}
	if _, err := siteContent.Upsert(ctx, demoSiteContent()); err != nil {
		return fmt.Errorf("seed site content: %w", err)
	}
	return nil
}

func ptr[T any](v T) *T { return &v }

func demoProjects() []schema.ProjectCreate {
	return []schema.ProjectCreate{
		{
			Title:            "Checkout Funnel Redesign",
			Slug:             "checkout-funnel-redesign",
			Category:         "Product Management",
			ShortDescription: "Rebuilt the purchase flow of an e-commerce platform around a single-page checkout.",
			Technologies:     []string{"Figma", "Amplitude", "React"},
			Timeline:         ptr("Jan 2025 – Apr 2025"),
			TeamSize:         ptr("8-member team"),
			Role:             ptr("Product Lead"),
			ProblemStatement: ptr("Cart abandonment sat above 70% and the legacy five-step checkout was the main driver."),
			Solution:         ptr("Consolidated the flow into one page with inline validation and saved payment methods."),
			Results:          ptr("Conversion rose 18% within two months of launch."),
			Metrics: []model.Metric{
				{Label: "Conversion lift", Value: "+18%"},
				{Label: "Checkout time", Value: "-40%"},
			},
			Featured:     ptr(true),
			DisplayOrder: ptr(2),
		},
		{
			Title:            "Realtime Fleet Dashboard",
			Slug:             "realtime-fleet-dashboard",
			Category:         "Engineering",
			ShortDescription: "Telemetry dashboard streaming vehicle positions and alerts for a delivery fleet.",
			Technologies:     []string{"Go", "PostgreSQL", "WebSockets", "Grafana"},
			Timeline:         ptr("Jun 2024 – Nov 2024"),
			Role:             ptr("Backend Engineer"),
			ProblemStatement: ptr("Dispatchers relied on phone check-ins and spreadsheets to track a 120-vehicle fleet."),
			Solution:         ptr("Built an ingestion service and live map with per-route alerting."),
			Metrics: []model.Metric{
				{Label: "Vehicles tracked", Value: "120+"},
			},
			Featured:     ptr(true),
			DisplayOrder: ptr(1),
		},
		{
			Title:            "Campus Events App",
			Slug:             "campus-events-app",
			Category:         "Design",
			ShortDescription: "Mobile-first event discovery app for university clubs and societies.",
			Technologies:     []string{"Figma", "React Native"},
			Timeline:         ptr("Sep 2023 – Dec 2023"),
		},
	}
}

func demoExperiences() []schema.ExperienceCreate {
	return []schema.ExperienceCreate{
		{
			Company:  "Northwind Logistics",
			Role:     "Product Manager",
			Duration: "Mar 2025 – Present",
			Location: ptr("Remote"),
			Type:     "full-time",
			Achievements: []string{
				"Own the dispatch and routing product line across three markets",
				"Shipped the fleet telemetry dashboard used by 40 dispatchers daily",
			},
			DisplayOrder: ptr(2),
		},
		{
			Company:  "Acme Analytics",
			Role:     "Software Engineering Intern",
			Duration: "Jun 2024 – Sep 2024",
			Location: ptr("Berlin, Germany"),
			Type:     "internship",
			Achievements: []string{
				"Built ingestion pipelines handling 2M events per day",
				"Cut dashboard query latency by 60% through materialized views",
			},
			DisplayOrder: ptr(1),
		},
	}
}

func demoSkills() []schema.SkillCreate {
	return []schema.SkillCreate{
		{Name: "Product Strategy", Category: "Product Management", Proficiency: ptr(90), DisplayOrder: ptr(3)},
		{Name: "User Research", Category: "Product Management", Proficiency: ptr(85), DisplayOrder: ptr(2)},
		{Name: "SQL", Category: "Analytics", Proficiency: ptr(85), IconName: ptr("database"), DisplayOrder: ptr(2)},
		{Name: "A/B Testing", Category: "Analytics", Proficiency: ptr(80), DisplayOrder: ptr(1)},
		{Name: "Figma", Category: "Design", Proficiency: ptr(75), IconName: ptr("pen-tool"), DisplayOrder: ptr(1)},
	}
}

func demoLeadership() []schema.LeadershipCreate {
	return []schema.LeadershipCreate{
		{
			Organization: "Product Club",
			Role:         "President",
			Duration:     "2023 – 2024",
			Description:  ptr("Student society running case competitions and industry speaker sessions."),
			Contributions: []string{
				"Grew membership from 40 to 150 students in one year",
				"Organized the first inter-university product case competition",
			},
			DisplayOrder: ptr(1),
		},
	}
}

func demoSiteContent() schema.SiteContentUpdate {
	return schema.SiteContentUpdate{
		HeroTitle:    ptr("Alex Morgan"),
		HeroSubtitle: ptr("Product manager who ships. I turn messy problems into working software."),
		AboutBio:     ptr("I work at the intersection of product and engineering, with a focus on logistics and analytics tooling."),
		Location:     ptr("Berlin, Germany"),
		Availability: ptr("Open to opportunities"),
		Email:        ptr("hello@example.com"),
		LinkedIn:     ptr("https://linkedin.com/in/example"),
		GitHub:       ptr("https://github.com/example"),
	}
}
