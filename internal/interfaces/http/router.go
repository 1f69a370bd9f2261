// Package http wires the HTTP surface: repositories, use cases, handlers,
// middleware, and routes.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	complaintusecases "fieldserve/internal/application/complaint/usecases"
	jobcardusecases "fieldserve/internal/application/jobcard/usecases"
	"fieldserve/internal/domain/complaint"
	"fieldserve/internal/domain/shared/events"
	"fieldserve/internal/infrastructure/auth"
	"fieldserve/internal/infrastructure/config"
	"fieldserve/internal/infrastructure/repository"
	"fieldserve/internal/infrastructure/services"
	complainthandlers "fieldserve/internal/interfaces/http/handlers/complaint"
	jobcardhandlers "fieldserve/internal/interfaces/http/handlers/jobcard"
	"fieldserve/internal/interfaces/http/middleware"
	"fieldserve/internal/interfaces/http/routes"
	"fieldserve/internal/shared/db"
	"fieldserve/internal/shared/logger"
)

// Router holds the configured gin engine and its shared dependencies.
type Router struct {
	engine *gin.Engine
}

// NewRouter builds the full HTTP surface. The redis client may be nil, in
// which case complaint codes come from the in-process generator.
func NewRouter(
	gdb *gorm.DB,
	redisClient *redis.Client,
	cfg *config.Config,
	dispatcher events.EventDispatcher,
	log logger.Interface,
) *Router {
	engine := gin.New()

	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	complaintRepo := repository.NewComplaintRepository(gdb)
	assignmentRepo := repository.NewAssignmentRepository(gdb)
	historyRepo := repository.NewHistoryRepository(gdb)
	noteRepo := repository.NewNoteRepository(gdb)
	jobCardRepo := repository.NewJobCardRepository(gdb)
	technicians := repository.NewTechnicianDirectory(gdb)
	customers := repository.NewCustomerDirectory(gdb)

	txManager := db.NewTransactionManager(gdb)

	var codeGen complaint.CodeGenerator
	if redisClient != nil {
		codeGen = services.NewRedisCodeGenerator(redisClient)
	} else {
		codeGen = complaint.NewDefaultCodeGenerator()
	}

	createComplaintUC := complaintusecases.NewCreateComplaintUseCase(
		complaintRepo, historyRepo, customers, codeGen, txManager, dispatcher, log)
	changeStatusUC := complaintusecases.NewChangeStatusUseCase(
		complaintRepo, historyRepo, technicians, assignmentRepo, txManager, dispatcher, log)
	assignTechnicianUC := complaintusecases.NewAssignTechnicianUseCase(
		complaintRepo, assignmentRepo, historyRepo, technicians, txManager, dispatcher, log)
	unassignUC := complaintusecases.NewUnassignTechnicianUseCase(
		complaintRepo, assignmentRepo, historyRepo, technicians, txManager, dispatcher, log)
	addNoteUC := complaintusecases.NewAddNoteUseCase(
		complaintRepo, noteRepo, technicians, assignmentRepo, dispatcher, log)
	listComplaintsUC := complaintusecases.NewListComplaintsUseCase(
		complaintRepo, technicians, assignmentRepo, log)
	getComplaintUC := complaintusecases.NewGetComplaintUseCase(
		complaintRepo, technicians, assignmentRepo, log)
	getHistoryUC := complaintusecases.NewGetHistoryUseCase(
		complaintRepo, historyRepo, technicians, assignmentRepo, log)
	listNotesUC := complaintusecases.NewListNotesUseCase(
		complaintRepo, noteRepo, technicians, assignmentRepo, log)
	getBoardUC := complaintusecases.NewGetBoardUseCase(
		complaintRepo, technicians, assignmentRepo, log)

	generateJobCardUC := jobcardusecases.NewGenerateJobCardUseCase(
		jobCardRepo, complaintRepo, assignmentRepo, technicians, log)
	updateJobCardUC := jobcardusecases.NewUpdateJobCardUseCase(
		jobCardRepo, complaintRepo, assignmentRepo, technicians, log)
	getJobCardUC := jobcardusecases.NewGetJobCardUseCase(
		jobCardRepo, complaintRepo, assignmentRepo, technicians, log)

	complaintHandler := complainthandlers.NewComplaintHandler(
		createComplaintUC,
		changeStatusUC,
		assignTechnicianUC,
		unassignUC,
		addNoteUC,
		listComplaintsUC,
		getComplaintUC,
		getHistoryUC,
		listNotesUC,
		getBoardUC,
	)
	jobCardHandler := jobcardhandlers.NewJobCardHandler(
		generateJobCardUC,
		updateJobCardUC,
		getJobCardUC,
	)

	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	routes.SetupComplaintRoutes(engine, &routes.ComplaintRouteConfig{
		ComplaintHandler: complaintHandler,
		JobCardHandler:   jobCardHandler,
		AuthMiddleware:   authMiddleware,
	})

	return &Router{engine: engine}
}

// Engine exposes the underlying gin engine to the server command.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
