package main

import (
	"fmt"
	"net/http"

	"github.com/sitewage/sitewage-backend-go/internal/config"
	appHTTP "github.com/sitewage/sitewage-backend-go/internal/handler/http"
	"github.com/sitewage/sitewage-backend-go/internal/pkg/clock"
	"github.com/sitewage/sitewage-backend-go/internal/pkg/database"
	"github.com/sitewage/sitewage-backend-go/internal/pkg/jwt"
	"github.com/sitewage/sitewage-backend-go/internal/repository/postgresql"
	advanceService "github.com/sitewage/sitewage-backend-go/internal/service/advance"
	attendanceService "github.com/sitewage/sitewage-backend-go/internal/service/attendance"
	masterService "github.com/sitewage/sitewage-backend-go/internal/service/master"
	overtimeService "github.com/sitewage/sitewage-backend-go/internal/service/overtime"
	payrollService "github.com/sitewage/sitewage-backend-go/internal/service/payroll"
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

	labourerRepo := postgresql.NewLabourerRepository(db)
	siteRepo := postgresql.NewSiteRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	siteDayRepo := postgresql.NewSiteDayRepository(db)
	overtimeRepo := postgresql.NewOvertimeRepository(db)
	advanceRepo := postgresql.NewAdvanceRepository(db)
	txManager := postgresql.NewTxManager(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	systemClock := clock.System{}

	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, siteDayRepo, txManager, systemClock)
	payrollSvc := payrollService.NewPayrollService(labourerRepo, attendanceRepo, overtimeRepo, advanceRepo)
	overtimeSvc := overtimeService.NewOvertimeService(overtimeRepo, systemClock)
	advanceSvc := advanceService.NewAdvanceService(advanceRepo, systemClock)
	masterSvc := masterService.NewMasterService(labourerRepo, siteRepo)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	overtimeHandler := appHTTP.NewOvertimeHandler(overtimeSvc)
	advanceHandler := appHTTP.NewAdvanceHandler(advanceSvc)
	masterHandler := appHTTP.NewMasterHandler(masterSvc)

	router := appHTTP.NewRouter(
		jwtService,
		attendanceHandler,
		payrollHandler,
		overtimeHandler,
		advanceHandler,
		masterHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
