package jobcard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fieldserve/internal/application/jobcard/usecases"
	"fieldserve/internal/interfaces/http/middleware"
	"fieldserve/internal/shared/logger"
	"fieldserve/internal/shared/utils"
)

type JobCardHandler struct {
	generateJobCardUC usecases.GenerateJobCardExecutor
	updateJobCardUC   usecases.UpdateJobCardExecutor
	getJobCardUC      usecases.GetJobCardExecutor
	logger            logger.Interface
}

func NewJobCardHandler(
	generateJobCardUC usecases.GenerateJobCardExecutor,
	updateJobCardUC usecases.UpdateJobCardExecutor,
	getJobCardUC usecases.GetJobCardExecutor,
) *JobCardHandler {
	return &JobCardHandler{
		generateJobCardUC: generateJobCardUC,
		updateJobCardUC:   updateJobCardUC,
		getJobCardUC:      getJobCardUC,
		logger:            logger.NewLogger(),
	}
}

// GenerateJobCard handles POST /complaints/:id/jobcard
func (h *JobCardHandler) GenerateJobCard(c *gin.Context) {
	complaintID, err := utils.ParseIDParam(c, "id", "complaint")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authenticated actor")
		return
	}

	result, err := h.generateJobCardUC.Execute(c.Request.Context(), usecases.GenerateJobCardCommand{
		Actor:       actor,
		ComplaintID: complaintID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if result.AlreadyExisted {
		utils.SuccessResponse(c, http.StatusOK, "Job card already exists", result)
		return
	}

	utils.CreatedResponse(c, result, "Job card generated")
}

// GetJobCard handles GET /complaints/:id/jobcard
func (h *JobCardHandler) GetJobCard(c *gin.Context) {
	complaintID, err := utils.ParseIDParam(c, "id", "complaint")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authenticated actor")
		return
	}

	result, err := h.getJobCardUC.Execute(c.Request.Context(), usecases.GetJobCardQuery{
		Actor:       actor,
		ComplaintID: complaintID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateJobCard handles PATCH /jobcards/:id
func (h *JobCardHandler) UpdateJobCard(c *gin.Context) {
	jobCardID, err := utils.ParseIDParam(c, "id", "job card")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateJobCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update job card", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authenticated actor")
		return
	}

	result, err := h.updateJobCardUC.Execute(c.Request.Context(), req.ToCommand(actor, jobCardID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Job card updated", result)
}
