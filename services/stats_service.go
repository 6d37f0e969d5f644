package services

import (
	"time"

	"newsdesk-http-service/config"
	"newsdesk-http-service/models"

	"gorm.io/gorm"
)

// InterfaceStatsService defines the read-only aggregation endpoints
type InterfaceStatsService interface {
	Dashboard(user *models.User, newsroomID *uint) (*DashboardStats, error)
	Statistics(user *models.User, query *StatisticsQuery) (*StatisticsResult, error)
}

// DashboardStats summarizes today's visible tasks
type DashboardStats struct {
	Date          string           `json:"date"`
	Total         int              `json:"total"`
	ByStatus      map[string]int   `json:"by_status"`
	UpcomingCount int              `json:"upcoming_count"`
	UrgentCount   int              `json:"urgent_count"`
}

// StatisticsQuery selects the aggregation range
type StatisticsQuery struct {
	DateFrom   string `form:"date_from"`
	DateTo     string `form:"date_to"`
	NewsroomID *uint  `form:"newsroom_id"`
}

// NewsroomStats aggregates one newsroom's tasks
type NewsroomStats struct {
	NewsroomID       uint           `json:"newsroom_id"`
	NewsroomName     string         `json:"newsroom_name"`
	Total            int            `json:"total"`
	ByStatus         map[string]int `json:"by_status"`
	ByFlag           map[string]int `json:"by_flag"`
	ByCoverageType   map[string]int `json:"by_coverage_type"`
	ByAttachmentType map[string]int `json:"by_attachment_type"`
}

// PersonStats aggregates one roster person's assignments
type PersonStats struct {
	PersonID   uint           `json:"person_id"`
	PersonName string         `json:"person_name"`
	Role       string         `json:"role"`
	Total      int            `json:"total"`
	ByStatus   map[string]int `json:"by_status"`
}

// StatisticsResult is the full aggregation response
type StatisticsResult struct {
	DateFrom  string           `json:"date_from"`
	DateTo    string           `json:"date_to"`
	Total     int              `json:"total"`
	Newsrooms []*NewsroomStats `json:"newsrooms"`
	People    []*PersonStats   `json:"people"`
}

// StatsService computes per-person and per-newsroom task counts in
// application code, re-reading the filtered task set on every request.
// There is deliberately no caching.
type StatsService struct {
	DB         *gorm.DB
	Config     *config.Config
	Visibility InterfaceVisibilityService
}

// NewStatsService creates a new statistics service
func NewStatsService(db *gorm.DB, cfg *config.Config, visibility InterfaceVisibilityService) *StatsService {
	return &StatsService{
		DB:         db,
		Config:     cfg,
		Visibility: visibility,
	}
}

// Dashboard returns today's counters for the user's visible tasks
func (s *StatsService) Dashboard(user *models.User, newsroomID *uint) (*DashboardStats, error) {
	scope, err := s.Visibility.ScopeTasks(user, newsroomID)
	if err != nil {
		return nil, err
	}

	today := time.Now().Format("2006-01-02")

	var todays []models.Task
	if err := scope.Apply(s.DB.Model(&models.Task{})).Where("date = ?", today).Find(&todays).Error; err != nil {
		return nil, err
	}
	todays = scope.Filter(todays)

	stats := &DashboardStats{
		Date:     today,
		ByStatus: make(map[string]int),
	}
	for _, t := range todays {
		stats.Total++
		stats.ByStatus[t.Status]++
		if t.Flags.Contains(models.FlagUrgent) {
			stats.UrgentCount++
		}
	}

	var upcoming []models.Task
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	if err := scope.Apply(s.DB.Model(&models.Task{})).Where("date >= ?", tomorrow).Find(&upcoming).Error; err != nil {
		return nil, err
	}
	stats.UpcomingCount = len(scope.Filter(upcoming))

	return stats, nil
}

// Statistics aggregates tasks over a date range. Editors see person stats
// restricted to their own newsroom and counted over both journalists and
// cameramen; every other role counts cameramen only.
func (s *StatsService) Statistics(user *models.User, query *StatisticsQuery) (*StatisticsResult, error) {
	scope, err := s.Visibility.ScopeTasks(user, query.NewsroomID)
	if err != nil {
		return nil, err
	}

	dateFrom := query.DateFrom
	dateTo := query.DateTo
	if dateFrom == "" {
		dateFrom = time.Now().AddDate(0, 0, -30).Format("2006-01-02")
	}
	if dateTo == "" {
		dateTo = time.Now().Format("2006-01-02")
	}

	var tasks []models.Task
	q := scope.Apply(s.DB.Model(&models.Task{})).
		Where("date >= ? AND date <= ?", dateFrom, dateTo)
	if err := q.Find(&tasks).Error; err != nil {
		return nil, err
	}
	tasks = scope.Filter(tasks)

	newsrooms := make(map[uint]*models.Newsroom)
	var newsroomRows []models.Newsroom
	if err := s.DB.Find(&newsroomRows).Error; err != nil {
		return nil, err
	}
	for i := range newsroomRows {
		newsrooms[newsroomRows[i].ID] = &newsroomRows[i]
	}

	people := make(map[uint]*models.Person)
	var personRows []models.Person
	if err := s.DB.Find(&personRows).Error; err != nil {
		return nil, err
	}
	for i := range personRows {
		people[personRows[i].ID] = &personRows[i]
	}

	result := &StatisticsResult{
		DateFrom: dateFrom,
		DateTo:   dateTo,
	}

	byNewsroom := make(map[uint]*NewsroomStats)
	byPerson := make(map[uint]*PersonStats)

	countPerson := func(personID uint, status string) {
		person, ok := people[personID]
		if !ok {
			return
		}
		// editors only see their own roster
		if user.Role == models.RoleEditor {
			if person.NewsroomID == nil || user.NewsroomID == nil || *person.NewsroomID != *user.NewsroomID {
				return
			}
		}
		ps, ok := byPerson[personID]
		if !ok {
			ps = &PersonStats{
				PersonID:   personID,
				PersonName: person.Name,
				Role:       person.Role,
				ByStatus:   make(map[string]int),
			}
			byPerson[personID] = ps
		}
		ps.Total++
		ps.ByStatus[status]++
	}

	for _, t := range tasks {
		result.Total++

		ns, ok := byNewsroom[t.NewsroomID]
		if !ok {
			ns = &NewsroomStats{
				NewsroomID:       t.NewsroomID,
				ByStatus:         make(map[string]int),
				ByFlag:           make(map[string]int),
				ByCoverageType:   make(map[string]int),
				ByAttachmentType: make(map[string]int),
			}
			if nr, found := newsrooms[t.NewsroomID]; found {
				ns.NewsroomName = nr.Name
			}
			byNewsroom[t.NewsroomID] = ns
		}
		ns.Total++
		ns.ByStatus[t.Status]++
		for _, f := range t.Flags {
			ns.ByFlag[f]++
		}
		if t.CoverageType != "" {
			ns.ByCoverageType[t.CoverageType]++
		}
		if t.AttachmentType != nil {
			ns.ByAttachmentType[*t.AttachmentType]++
		}

		for _, id := range t.CameramanIDs {
			countPerson(id, t.Status)
		}
		if user.Role == models.RoleEditor {
			for _, id := range t.JournalistIDs {
				countPerson(id, t.Status)
			}
		}
	}

	for _, ns := range byNewsroom {
		result.Newsrooms = append(result.Newsrooms, ns)
	}
	for _, ps := range byPerson {
		result.People = append(result.People, ps)
	}

	return result, nil
}
