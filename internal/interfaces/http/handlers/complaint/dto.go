package complaint

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"fieldserve/internal/application/complaint/usecases"
	"fieldserve/internal/domain/identity"
)

type CreateComplaintRequest struct {
	DealerID     uint   `json:"dealer_id,omitempty"`
	CustomerID   *uint  `json:"customer_id,omitempty"`
	Title        string `json:"title" binding:"required,max=200"`
	Description  string `json:"description" binding:"max=5000"`
	Category     string `json:"category" binding:"required"`
	Priority     string `json:"priority" binding:"required"`
	Source       string `json:"source" binding:"required"`
	Address      string `json:"address" binding:"max=500"`
	Area         string `json:"area" binding:"max=100"`
	City         string `json:"city" binding:"max=100"`
	Landmark     string `json:"landmark" binding:"max=200"`
	Pincode      string `json:"pincode" binding:"max=10"`
	ContactName  string `json:"contact_name" binding:"max=100"`
	ContactPhone string `json:"contact_phone" binding:"max=20"`
}

func (r *CreateComplaintRequest) ToCommand(actor identity.Actor) usecases.CreateComplaintCommand {
	return usecases.CreateComplaintCommand{
		Actor:        actor,
		DealerID:     r.DealerID,
		CustomerID:   r.CustomerID,
		Title:        r.Title,
		Description:  r.Description,
		Category:     r.Category,
		Priority:     r.Priority,
		Source:       r.Source,
		Address:      r.Address,
		Area:         r.Area,
		City:         r.City,
		Landmark:     r.Landmark,
		Pincode:      r.Pincode,
		ContactName:  r.ContactName,
		ContactPhone: r.ContactPhone,
	}
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=new assigned in_progress resolved closed cancelled"`
	Remark string `json:"remark" binding:"max=1000"`
}

type AssignTechnicianRequest struct {
	TechnicianID uint `json:"technician_id" binding:"required"`
}

type AddNoteRequest struct {
	Text string `json:"text" binding:"required,max=5000"`
}

type ListComplaintsRequest struct {
	Page      int
	PageSize  int
	Status    string
	Priority  string
	Category  string
	SortBy    string
	SortOrder string
}

func (r *ListComplaintsRequest) ToQuery(actor identity.Actor) usecases.ListComplaintsQuery {
	return usecases.ListComplaintsQuery{
		Actor:     actor,
		Status:    r.Status,
		Priority:  r.Priority,
		Category:  r.Category,
		Page:      r.Page,
		PageSize:  r.PageSize,
		SortBy:    r.SortBy,
		SortOrder: r.SortOrder,
	}
}

func parseListComplaintsRequest(c *gin.Context) *ListComplaintsRequest {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	return &ListComplaintsRequest{
		Page:      page,
		PageSize:  pageSize,
		Status:    c.Query("status"),
		Priority:  c.Query("priority"),
		Category:  c.Query("category"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}
}
