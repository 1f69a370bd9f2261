package complaint

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fieldserve/internal/application/complaint/usecases"
	vo "fieldserve/internal/domain/complaint/valueobjects"
	"fieldserve/internal/interfaces/http/middleware"
	"fieldserve/internal/shared/logger"
	"fieldserve/internal/shared/utils"
)

type ComplaintHandler struct {
	createComplaintUC  usecases.CreateComplaintExecutor
	changeStatusUC     usecases.ChangeStatusExecutor
	assignTechnicianUC usecases.AssignTechnicianExecutor
	unassignUC         usecases.UnassignTechnicianExecutor
	addNoteUC          usecases.AddNoteExecutor
	listComplaintsUC   usecases.ListComplaintsExecutor
	getComplaintUC     usecases.GetComplaintExecutor
	getHistoryUC       usecases.GetHistoryExecutor
	listNotesUC        usecases.ListNotesExecutor
	getBoardUC         usecases.GetBoardExecutor
	logger             logger.Interface
}

func NewComplaintHandler(
	createComplaintUC usecases.CreateComplaintExecutor,
	changeStatusUC usecases.ChangeStatusExecutor,
	assignTechnicianUC usecases.AssignTechnicianExecutor,
	unassignUC usecases.UnassignTechnicianExecutor,
	addNoteUC usecases.AddNoteExecutor,
	listComplaintsUC usecases.ListComplaintsExecutor,
	getComplaintUC usecases.GetComplaintExecutor,
	getHistoryUC usecases.GetHistoryExecutor,
	listNotesUC usecases.ListNotesExecutor,
	getBoardUC usecases.GetBoardExecutor,
) *ComplaintHandler {
	return &ComplaintHandler{
		createComplaintUC:  createComplaintUC,
		changeStatusUC:     changeStatusUC,
		assignTechnicianUC: assignTechnicianUC,
		unassignUC:         unassignUC,
		addNoteUC:          addNoteUC,
		listComplaintsUC:   listComplaintsUC,
		getComplaintUC:     getComplaintUC,
		getHistoryUC:       getHistoryUC,
		listNotesUC:        listNotesUC,
		getBoardUC:         getBoardUC,
		logger:             logger.NewLogger(),
	}
}

// CreateComplaint handles POST /complaints
func (h *ComplaintHandler) CreateComplaint(c *gin.Context) {
	var req CreateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create complaint", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authenticated actor")
		return
	}

	result, err := h.createComplaintUC.Execute(c.Request.Context(), req.ToCommand(actor))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Complaint registered successfully")
}

// ListComplaints handles GET /complaints
func (h *ComplaintHandler) ListComplaints(c *gin.Context) {
	req := parseListComplaintsRequest(c)

	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authenticated actor")
		return
	}

	result, err := h.listComplaintsUC.Execute(c.Request.Context(), req.ToQuery(actor))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Complaints, result.TotalCount, req.Page, req.PageSize)
}

// GetComplaint handles GET /complaints/:id
func (h *ComplaintHandler) GetComplaint(c *gin.Context) {
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

	result, err := h.getComplaintUC.Execute(c.Request.Context(), usecases.GetComplaintQuery{
		Actor:       actor,
		ComplaintID: complaintID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ChangeStatus handles PATCH /complaints/:id/status
func (h *ComplaintHandler) ChangeStatus(c *gin.Context) {
	complaintID, err := utils.ParseIDParam(c, "id", "complaint")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for change status", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authenticated actor")
		return
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), usecases.ChangeStatusCommand{
		ComplaintID: complaintID,
		NewStatus:   vo.Status(req.Status),
		Remark:      req.Remark,
		Actor:       actor,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Complaint status updated", result)
}

// AssignTechnician handles POST /complaints/:id/assign
func (h *ComplaintHandler) AssignTechnician(c *gin.Context) {
	complaintID, err := utils.ParseIDParam(c, "id", "complaint")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignTechnicianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for assign technician", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authenticated actor")
		return
	}

	result, err := h.assignTechnicianUC.Execute(c.Request.Context(), usecases.AssignTechnicianCommand{
		ComplaintID:  complaintID,
		TechnicianID: req.TechnicianID,
		Actor:        actor,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Technician assigned", result)
}

// UnassignTechnician handles POST /complaints/:id/unassign
func (h *ComplaintHandler) UnassignTechnician(c *gin.Context) {
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

	result, err := h.unassignUC.Execute(c.Request.Context(), usecases.UnassignTechnicianCommand{
		ComplaintID: complaintID,
		Actor:       actor,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Technician unassigned", result)
}

// AddNote handles POST /complaints/:id/notes
func (h *ComplaintHandler) AddNote(c *gin.Context) {
	complaintID, err := utils.ParseIDParam(c, "id", "complaint")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add note", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authenticated actor")
		return
	}

	result, err := h.addNoteUC.Execute(c.Request.Context(), usecases.AddNoteCommand{
		ComplaintID: complaintID,
		Text:        req.Text,
		Actor:       actor,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Note added")
}

// GetHistory handles GET /complaints/:id/history
func (h *ComplaintHandler) GetHistory(c *gin.Context) {
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

	result, err := h.getHistoryUC.Execute(c.Request.Context(), usecases.GetHistoryQuery{
		Actor:       actor,
		ComplaintID: complaintID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListNotes handles GET /complaints/:id/notes
func (h *ComplaintHandler) ListNotes(c *gin.Context) {
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

	result, err := h.listNotesUC.Execute(c.Request.Context(), usecases.ListNotesQuery{
		Actor:       actor,
		ComplaintID: complaintID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetBoard handles GET /complaints/board
func (h *ComplaintHandler) GetBoard(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authenticated actor")
		return
	}

	result, err := h.getBoardUC.Execute(c.Request.Context(), usecases.GetBoardQuery{Actor: actor})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
