package routes

import (
	"io"

	"go.uber.org/zap"

	"inspections-console/internal/controllers"
	"inspections-console/internal/repositories"
	"inspections-console/internal/services"
	"inspections-console/pkg/database"
)

// InitRouter собирает репозитории и сервис поверх одного соединения и регистрирует пункты меню.
func InitRouter(dbConn database.DB, logger *zap.Logger, in io.Reader, out io.Writer) *controllers.MenuController {
	logger.Info("InitRouter: Начало создания меню")

	// --- 1. РЕПОЗИТОРИИ ---
	txManager := repositories.NewTxManager(dbConn)
	enterpriseRepo := repositories.NewEnterpriseRepository(dbConn, logger)
	inspectionRepo := repositories.NewInspectionRepository(dbConn, logger)
	violationTypeRepo := repositories.NewViolationTypeRepository(dbConn, logger)
	reportRepo := repositories.NewReportRepository(dbConn, logger)

	// --- 2. СЕРВИСЫ ---
	inspectionService := services.NewInspectionService(
		enterpriseRepo, inspectionRepo, violationTypeRepo, reportRepo, txManager, logger,
	)

	// --- 3. МЕНЮ ---
	menu := controllers.NewMenuController(in, out, logger)
	RegisterMenu(menu, inspectionService)

	logger.Info("InitRouter: Меню готово", zap.Int("commands", len(menu.Commands())))
	return menu
}

func RegisterMenu(menu *controllers.MenuController, svc services.InspectionServiceInterface) {
	menu.Register("1", services.LabelSelectAll, svc.SelectAllEnterprises)
	menu.Register("2", services.LabelFilter, svc.FilterViolationTypes)
	menu.Register("3", services.LabelGroup, svc.GroupInspectionsByViolationType)
	menu.Register("4", services.LabelJoin, svc.SelectEnterpriseInspections)
	menu.Register("5", services.LabelJoinFilter, svc.FilterEnterprisePenaltyTotals)
	menu.Register("6", services.LabelInsertOne, svc.InsertEnterprise)
	menu.Register("7", services.LabelInsertMany, svc.InsertInspection)
	menu.Register("8", services.LabelDeleteOne, svc.DeleteLastEnterprise)
	menu.Register("9", services.LabelDeleteMany, svc.DeleteLastInspection)
	menu.Register("10", services.LabelUpdate, svc.RaisePenaltiesForTopEnterprises)
}
