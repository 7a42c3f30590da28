package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pontodigital/ponto-backend-go/internal/config"
	"github.com/pontodigital/ponto-backend-go/internal/fixtures"
	appHTTP "github.com/pontodigital/ponto-backend-go/internal/handler/http"
	"github.com/pontodigital/ponto-backend-go/internal/pkg/cron"
	"github.com/pontodigital/ponto-backend-go/internal/pkg/database"
	"github.com/pontodigital/ponto-backend-go/internal/pkg/email"
	"github.com/pontodigital/ponto-backend-go/internal/pkg/jwt"
	"github.com/pontodigital/ponto-backend-go/internal/pkg/oauth"
	"github.com/pontodigital/ponto-backend-go/internal/pkg/sse"
	"github.com/pontodigital/ponto-backend-go/internal/repository/postgresql"
	authService "github.com/pontodigital/ponto-backend-go/internal/service/auth"
	invitationService "github.com/pontodigital/ponto-backend-go/internal/service/invitation"
	justificationService "github.com/pontodigital/ponto-backend-go/internal/service/justification"
	notificationService "github.com/pontodigital/ponto-backend-go/internal/service/notification"
	reportService "github.com/pontodigital/ponto-backend-go/internal/service/report"
	teamService "github.com/pontodigital/ponto-backend-go/internal/service/team"
	timeEntryService "github.com/pontodigital/ponto-backend-go/internal/service/timeentry"
	userService "github.com/pontodigital/ponto-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	JWTRepository := postgresql.NewJWTRepository(db)
	timeEntryRepo := postgresql.NewTimeEntryRepository(db)
	justificationTypeRepo := postgresql.NewJustificationTypeRepository(db)
	justificationRepo := postgresql.NewJustificationRepository(db)
	teamRepo := postgresql.NewTeamRepository(db)
	invitationRepo := postgresql.NewInvitationRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	sseHub := sse.NewHub()
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	if err := fixtures.SeedJustificationTypes(context.Background(), justificationTypeRepo); err != nil {
		log.Fatal("Failed to seed justification types:", err)
	}

	authSvc := authService.NewAuthService(db, userRepo, JWTService, JWTRepository)
	notificationSvc := notificationService.NewNotificationService(notificationRepo, sseHub)
	timeEntrySvc := timeEntryService.NewTimeEntryService(db, timeEntryRepo, justificationRepo, userRepo)
	typeSvc := justificationService.NewTypeService(db, justificationTypeRepo, justificationRepo)
	justificationSvc := justificationService.NewJustificationService(
		db,
		justificationRepo,
		justificationTypeRepo,
		timeEntryRepo,
		userRepo,
		notificationSvc,
	)
	teamSvc := teamService.NewTeamService(db, teamRepo, userRepo)
	userSvc := userService.NewUserService(db, userRepo)
	invitationSvc := invitationService.NewInvitationService(
		db,
		invitationRepo,
		userRepo,
		teamRepo,
		emailService,
		notificationSvc,
		cfg.App.BaseURL,
		cfg.Invitation,
	)
	reportSvc := reportService.NewReportService(db, reportRepo, teamRepo)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc, GoogleService, cfg.App.FrontendURL)
	timeEntryHandler := appHTTP.NewTimeEntryHandler(timeEntrySvc)
	justificationHandler := appHTTP.NewJustificationHandler(typeSvc, justificationSvc)
	teamHandler := appHTTP.NewTeamHandler(teamSvc)
	userHandler := appHTTP.NewUserHandler(userSvc)
	invitationHandler := appHTTP.NewInvitationHandler(invitationSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	notificationHandler := appHTTP.NewNotificationHandler(notificationSvc, JWTService)

	scheduler := cron.NewScheduler()
	balanceJob := timeEntryService.NewBalanceRecalculator(timeEntryRepo, userRepo)
	scheduler.AddJob("balance-recalculation", 24*time.Hour, balanceJob.Run)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		timeEntryHandler,
		justificationHandler,
		teamHandler,
		userHandler,
		invitationHandler,
		reportHandler,
		notificationHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
