package controllers

import (
	"fmt"
	"strconv"
	"time"

	"newsdesk-http-service/services"
	"newsdesk-http-service/services/container"

	"github.com/gin-gonic/gin"
)

// ReportController serves the printable daily dispatch report
type ReportController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewReportController creates a new report controller
func NewReportController(ctx *gin.Context, container *container.ServiceContainer) *ReportController {
	return &ReportController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleReportFunc returns a Gin handler dispatching report methods
func HandleReportFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewReportController(ctx, container)

		switch method {
		case "dailyReport":
			controller.DailyReport()
		default:
			respondInvalidMethod(ctx)
		}
	}
}

// DailyReport streams the day's dispatch sheet as PDF
// @Summary      Daily report PDF
// @Tags         Report
// @Produce      application/pdf
// @Param        date query string false "Date YYYY-MM-DD, default today"
// @Param        newsroom_id query int false "Newsroom filter"
// @Success      200  {string}  string
// @Router       /reports/pdf [get]
// @Security     BearerAuth
func (c *ReportController) DailyReport() {
	if _, ok := currentUser(c.Ctx, c.Container); !ok {
		return
	}

	date := c.Ctx.DefaultQuery("date", time.Now().Format("2006-01-02"))
	var newsroomID *uint
	if raw := c.Ctx.Query("newsroom_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			respondBadRequest(c.Ctx, "invalid newsroom_id")
			return
		}
		nid := uint(id)
		newsroomID = &nid
	}

	reportService := c.Container.GetService("report").(services.InterfaceReportService)
	data, err := reportService.DailyReportPDF(date, newsroomID)
	if err != nil {
		respondError(c.Ctx, err)
		return
	}

	filename := fmt.Sprintf("raspored_%s.pdf", date)
	c.Ctx.Header("Content-Disposition", "attachment; filename="+filename)
	c.Ctx.Data(200, "application/pdf", data)
}
