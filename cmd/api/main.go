package main

import (
	"fmt"
	"net/http"

	"github.com/peopleops-dev/hr-portal-go/internal/config"
	appHTTP "github.com/peopleops-dev/hr-portal-go/internal/handler/http"
	"github.com/peopleops-dev/hr-portal-go/internal/pkg/clock"
	"github.com/peopleops-dev/hr-portal-go/internal/pkg/database"
	"github.com/peopleops-dev/hr-portal-go/internal/pkg/session"
	"github.com/peopleops-dev/hr-portal-go/internal/repository/postgresql"
	attendanceService "github.com/peopleops-dev/hr-portal-go/internal/service/attendance"
	authService "github.com/peopleops-dev/hr-portal-go/internal/service/auth"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn, cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	accountRepo := postgresql.NewAccountRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	loginAttemptRepo := postgresql.NewLoginAttemptRepository(db)

	sessionStore := session.NewMemoryStore(cfg.Session.TTL)
	sessionManager := session.NewManager(sessionStore, cfg.Session.CookieName, cfg.Session.TTL, cfg.Session.SecureCookie)

	clk := clock.System()
	authSvc := authService.NewAuthService(accountRepo, loginAttemptRepo, clk)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, clk)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeRepo)
	auditHandler := appHTTP.NewAuditHandler(loginAttemptRepo)

	router := appHTTP.NewRouter(
		sessionManager,
		authHandler,
		attendanceHandler,
		employeeHandler,
		auditHandler,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
