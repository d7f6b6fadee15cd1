package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/shiftwise/attendance-backend-go/internal/config"
	"github.com/shiftwise/attendance-backend-go/internal/domain/attendance"
	appHTTP "github.com/shiftwise/attendance-backend-go/internal/handler/http"
	"github.com/shiftwise/attendance-backend-go/internal/pkg/cache"
	"github.com/shiftwise/attendance-backend-go/internal/pkg/database"
	"github.com/shiftwise/attendance-backend-go/internal/pkg/datetime"
	"github.com/shiftwise/attendance-backend-go/internal/pkg/jwt"
	"github.com/shiftwise/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/shiftwise/attendance-backend-go/internal/service/attendance"
	serviceAuth "github.com/shiftwise/attendance-backend-go/internal/service/auth"
	dashboardService "github.com/shiftwise/attendance-backend-go/internal/service/dashboard"
	reportService "github.com/shiftwise/attendance-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	var redisCache *cache.Redis
	if cfg.Redis.Enabled {
		redisCache = cache.NewRedis(cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password, cfg.Redis.DB, logger)
		defer redisCache.Close()
	}

	userRepo := postgresql.NewUserRepository(db)
	counterRepo := postgresql.NewCounterRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	policy := attendance.Policy{
		OfficeStartHour:      cfg.Attendance.OfficeStartHour,
		LateThresholdMinutes: cfg.Attendance.LateThresholdMinutes,
		MinFullDayHours:      cfg.Attendance.MinFullDayHours,
		MinHalfDayHours:      cfg.Attendance.MinHalfDayHours,
	}
	clock := datetime.SystemClock{}

	authSvc := serviceAuth.NewAuthService(db, userRepo, counterRepo, refreshTokenRepo, JWTService)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, userRepo, policy, clock)
	reportSvc := reportService.NewReportService(attendanceRepo, userRepo, redisCache, clock, logger)
	dashboardSvc := dashboardService.NewDashboardService(attendanceRepo, userRepo, clock)

	authHandler := appHTTP.NewAuthHandler(authSvc, JWTService)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		attendanceHandler,
		reportHandler,
		dashboardHandler,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
