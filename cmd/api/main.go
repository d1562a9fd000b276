package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/Harshalp4/scantrack-pro/internal/config"
	appHTTP "github.com/Harshalp4/scantrack-pro/internal/handler/http"
	"github.com/Harshalp4/scantrack-pro/internal/pkg/backup"
	"github.com/Harshalp4/scantrack-pro/internal/pkg/database"
	"github.com/Harshalp4/scantrack-pro/internal/pkg/jwt"
	"github.com/Harshalp4/scantrack-pro/internal/pkg/storage"
	"github.com/Harshalp4/scantrack-pro/internal/repository/postgresql"
	attendanceService "github.com/Harshalp4/scantrack-pro/internal/service/attendance"
	authService "github.com/Harshalp4/scantrack-pro/internal/service/auth"
	"github.com/Harshalp4/scantrack-pro/internal/service/compensation"
	employeeService "github.com/Harshalp4/scantrack-pro/internal/service/employee"
	expenseService "github.com/Harshalp4/scantrack-pro/internal/service/expense"
	locationService "github.com/Harshalp4/scantrack-pro/internal/service/location"
	reportService "github.com/Harshalp4/scantrack-pro/internal/service/report"
	roleService "github.com/Harshalp4/scantrack-pro/internal/service/role"
	settingsService "github.com/Harshalp4/scantrack-pro/internal/service/settings"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	locationRepo := postgresql.NewLocationRepository(db)
	expenseRepo := postgresql.NewExpenseRepository(db)
	roleRepo := postgresql.NewRoleRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	documentStore, err := storage.NewLocalStore(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize document store:", err)
	}

	rateSource := compensation.NewSettingsRateSource(settingsRepo)

	authSvc := authService.NewAuthService(employeeRepo, JWTService)
	attendanceSvc := attendanceService.NewLedgerService(attendanceRepo, employeeRepo)
	reportSvc := reportService.NewReportService(attendanceRepo, employeeRepo, locationRepo, expenseRepo, rateSource)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, roleRepo)
	locationSvc := locationService.NewLocationService(locationRepo)
	expenseSvc := expenseService.NewExpenseService(expenseRepo, documentStore)
	roleSvc := roleService.NewRoleService(roleRepo)
	settingsSvc := settingsService.NewSettingsService(settingsRepo)
	exporter := backup.NewExporter(db, documentStore)

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(JWTService, authSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Location:   appHTTP.NewLocationHandler(locationSvc),
		Expense:    appHTTP.NewExpenseHandler(expenseSvc),
		Role:       appHTTP.NewRoleHandler(roleSvc),
		Settings:   appHTTP.NewSettingsHandler(settingsSvc),
		Backup:     appHTTP.NewBackupHandler(exporter),
	}

	router := appHTTP.NewRouter(JWTService, cfg.App.CORSOrigins, handlers)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
