package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"newsdesk-http-service/config"
	"newsdesk-http-service/models"

	"github.com/jung-kurt/gofpdf"
	"gorm.io/gorm"
)

// InterfaceReportService defines report generation operations
type InterfaceReportService interface {
	DailyReportPDF(date string, newsroomID *uint) ([]byte, error)
	ExportTasksCSV(user *models.User, query *TaskListQuery) ([]byte, error)
}

// ReportService renders the daily dispatch report and CSV exports
type ReportService struct {
	DB     *gorm.DB
	Config *config.Config
	Tasks  InterfaceTaskService
}

// NewReportService creates a new report service
func NewReportService(db *gorm.DB, cfg *config.Config, tasks InterfaceTaskService) *ReportService {
	return &ReportService{
		DB:     db,
		Config: cfg,
		Tasks:  tasks,
	}
}

// DailyReportPDF renders the day's tasks as a printable dispatch sheet,
// grouped by newsroom.
func (s *ReportService) DailyReportPDF(date string, newsroomID *uint) ([]byte, error) {
	q := s.DB.Preload("Newsroom").Preload("Vehicle").Where("date = ?", date)
	if newsroomID != nil {
		q = q.Where("newsroom_id = ?", *newsroomID)
	}
	var tasks []models.Task
	if err := q.Order("newsroom_id ASC, time_start ASC").Find(&tasks).Error; err != nil {
		return nil, err
	}

	people, err := s.peopleByID()
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Dnevni raspored "+date, true)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("cp1250")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr("Dnevni raspored zadataka — "+date), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	if len(tasks) == 0 {
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 8, tr("Nema zadataka za ovaj datum."), "", 1, "L", false, 0, "")
		return pdfBytes(pdf)
	}

	headers := []string{"Vrijeme", "Naslov", "Lokacija", "Novinari", "Snimatelji", "Vozilo", "Status"}
	widths := []float64{22, 70, 45, 45, 45, 25, 25}

	currentNewsroom := uint(0)
	first := true
	for _, task := range tasks {
		if first || task.NewsroomID != currentNewsroom {
			if !first {
				pdf.Ln(4)
			}
			currentNewsroom = task.NewsroomID
			first = false

			name := "Bez redakcije"
			if task.Newsroom != nil {
				name = task.Newsroom.Name
			}
			pdf.SetFont("Helvetica", "B", 12)
			pdf.CellFormat(0, 8, tr(name), "", 1, "L", false, 0, "")

			pdf.SetFont("Helvetica", "B", 9)
			pdf.SetFillColor(230, 230, 230)
			for i, h := range headers {
				pdf.CellFormat(widths[i], 7, tr(h), "1", 0, "C", true, 0, "")
			}
			pdf.Ln(-1)
		}

		timeRange := task.TimeStart
		if task.TimeEnd != "" {
			timeRange += "-" + task.TimeEnd
		}
		vehicle := ""
		if task.Vehicle != nil {
			vehicle = task.Vehicle.Name
		}

		pdf.SetFont("Helvetica", "", 9)
		row := []string{
			timeRange,
			task.Title,
			task.Location,
			namesFor(task.JournalistIDs, people),
			namesFor(task.CameramanIDs, people),
			vehicle,
			task.Status,
		}
		for i, cell := range row {
			pdf.CellFormat(widths[i], 6, tr(truncate(cell, 48)), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdfBytes(pdf)
}

// ExportTasksCSV renders the caller's visible task list as CSV. Visibility
// rules are the same as for the task list endpoint.
func (s *ReportService) ExportTasksCSV(user *models.User, query *TaskListQuery) ([]byte, error) {
	if query == nil {
		query = &TaskListQuery{}
	}
	query.Page = 1
	query.PageSize = 10000

	tasks, _, err := s.Tasks.ListTasks(user, query)
	if err != nil {
		return nil, err
	}

	people, err := s.peopleByID()
	if err != nil {
		return nil, err
	}
	newsrooms, err := s.newsroomsByID()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	header := []string{"ID", "Datum", "Vrijeme od", "Vrijeme do", "Naslov", "Lokacija",
		"Redakcija", "Novinari", "Snimatelji", "Status", "Oznake", "Tip priloga"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, task := range tasks {
		// the list query does not preload relations, so names come from the map
		newsroom := newsrooms[task.NewsroomID]
		attachment := ""
		if task.AttachmentType != nil {
			attachment = *task.AttachmentType
		}
		record := []string{
			strconv.FormatUint(uint64(task.ID), 10),
			task.Date,
			task.TimeStart,
			task.TimeEnd,
			task.Title,
			task.Location,
			newsroom,
			namesFor(task.JournalistIDs, people),
			namesFor(task.CameramanIDs, people),
			task.Status,
			strings.Join(task.Flags, ", "),
			attachment,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *ReportService) newsroomsByID() (map[uint]string, error) {
	var newsrooms []models.Newsroom
	if err := s.DB.Find(&newsrooms).Error; err != nil {
		return nil, err
	}
	m := make(map[uint]string, len(newsrooms))
	for _, n := range newsrooms {
		m[n.ID] = n.Name
	}
	return m, nil
}

func (s *ReportService) peopleByID() (map[uint]string, error) {
	var people []models.Person
	if err := s.DB.Find(&people).Error; err != nil {
		return nil, err
	}
	m := make(map[uint]string, len(people))
	for _, p := range people {
		m[p.ID] = p.Name
	}
	return m, nil
}

func namesFor(ids models.UintArray, people map[uint]string) string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := people[id]; ok {
			names = append(names, name)
		} else {
			names = append(names, fmt.Sprintf("#%d", id))
		}
	}
	return strings.Join(names, ", ")
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

func pdfBytes(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
