package services

import (
	"bytes"
	"encoding/csv"
	"testing"

	"newsdesk-http-service/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newReportService(db *gorm.DB) *ReportService {
	return NewReportService(db, testConfig(), newTaskService(db))
}

func TestExportTasksCSV(t *testing.T) {
	db := setupTestDB(t)
	newsroom := createNewsroom(t, db, "Informativni program")
	svc := newReportService(db)

	journalist := createPerson(t, db, "Devleta Brkić", "devleta.brkic@rtv.ba", &newsroom.ID)
	createTask(t, db, newsroom.ID, func(tk *models.Task) {
		tk.Title = "Sjednica vlade"
		tk.Location = "Sarajevo"
		tk.JournalistIDs = models.UintArray{journalist.ID}
		tk.Flags = models.StringArray{models.FlagUrgent}
	})

	admin := createUser(t, db, "admin.csv", models.RoleAdmin, nil)
	data, err := svc.ExportTasksCSV(admin, &TaskListQuery{})
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Naslov", records[0][4])

	row := records[1]
	assert.Equal(t, "Sjednica vlade", row[4])
	assert.Equal(t, "Sarajevo", row[5])
	assert.Equal(t, "Informativni program", row[6])
	assert.Equal(t, "Devleta Brkić", row[7])
	assert.Contains(t, row[10], models.FlagUrgent)
}

func TestExportTasksCSVHonorsVisibility(t *testing.T) {
	db := setupTestDB(t)
	newsroom := createNewsroom(t, db, "Sarajevo")
	other := createNewsroom(t, db, "Banja Luka")
	svc := newReportService(db)

	createTask(t, db, newsroom.ID, func(tk *models.Task) { tk.Title = "Vidljiv" })
	createTask(t, db, other.ID, func(tk *models.Task) { tk.Title = "Nevidljiv" })

	editor := createUser(t, db, "urednik.csv", models.RoleEditor, &newsroom.ID)
	data, err := svc.ExportTasksCSV(editor, &TaskListQuery{})
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Vidljiv", records[1][4])
}

func TestDailyReportPDF(t *testing.T) {
	db := setupTestDB(t)
	newsroom := createNewsroom(t, db, "Informativni program")
	svc := newReportService(db)

	t.Run("renders a document with tasks", func(t *testing.T) {
		createTask(t, db, newsroom.ID, func(tk *models.Task) {
			tk.Date = "2026-09-03"
			tk.Title = "Otvaranje škole"
		})

		data, err := svc.DailyReportPDF("2026-09-03", nil)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	})

	t.Run("renders an empty day without error", func(t *testing.T) {
		data, err := svc.DailyReportPDF("2026-12-25", nil)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	})
}
