package service

import (
	"bytes"
	"mime/multipart"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/skilltrackhq/skilltrack/internal/model"
	"github.com/skilltrackhq/skilltrack/internal/repository"
	"github.com/skilltrackhq/skilltrack/internal/testutil"
	"github.com/stretchr/testify/require"
)

// testEnv wires the full service graph over an in-memory database and
// blob store.
type testEnv struct {
	db        *sqlx.DB
	storage   *testutil.MemStorage
	auth      *AuthService
	users     *UserService
	profiles  *ProfileService
	skills    *SkillService
	goals     *GoalService
	progress  *ProgressService
	notes     *NoteService
	dashboard *DashboardService
	files     *FileService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testutil.NewDB(t)
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	skillRepo := repository.NewSkillRepository(db)
	goalRepo := repository.NewGoalRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	fileRepo := repository.NewFileRepository(db)

	blobStore := testutil.NewMemStorage()
	files := NewFileService(fileRepo, blobStore)
	notes := NewNoteService(noteRepo, skillRepo, files)

	return &testEnv{
		db:        db,
		storage:   blobStore,
		auth:      NewAuthService(userRepo, profileRepo, "test-secret", false, time.Hour),
		users:     NewUserService(userRepo, files),
		profiles:  NewProfileService(profileRepo),
		skills:    NewSkillService(skillRepo, goalRepo, progressRepo, noteRepo, files),
		goals:     NewGoalService(goalRepo, skillRepo, files),
		progress:  NewProgressService(progressRepo, skillRepo, goalRepo, files),
		notes:     notes,
		dashboard: NewDashboardService(skillRepo, goalRepo, progressRepo, notes),
		files:     files,
	}
}

func (e *testEnv) user(t *testing.T) *model.User {
	t.Helper()

	user, err := e.auth.Register("tracker@example.com", "a long enough secret", "Tracker")
	require.NoError(t, err)
	return user
}

func (e *testEnv) skill(t *testing.T, userID string) *model.Skill {
	t.Helper()

	skill, err := e.skills.Create(userID, "Go", "systems programming", model.ProficiencyBeginner, time.Time{})
	require.NoError(t, err)
	return skill
}

func (e *testEnv) goal(t *testing.T, userID, skillID string, dailyHours int, daysOut int) *model.Goal {
	t.Helper()

	today := model.DateOnly(time.Now())
	goal, err := e.goals.Create(userID, skillID, "finish the standard library tour", today, today.AddDate(0, 0, daysOut), &dailyHours)
	require.NoError(t, err)
	return goal
}

// pdfUpload builds a real multipart file pair holding a minimal PDF,
// enough to pass content sniffing.
func pdfUpload(t *testing.T, filename string) (multipart.File, *multipart.FileHeader) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4\n1 0 obj\nendobj\ntrailer\n%%EOF\n"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	reader := multipart.NewReader(body, writer.Boundary())
	form, err := reader.ReadForm(1 << 20)
	require.NoError(t, err)

	header := form.File["file"][0]
	file, err := header.Open()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = file.Close()
	})

	return file, header
}
