package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"jukumu_fund/internal/config"
	"jukumu_fund/internal/models"
)

func trainingFixture(t *testing.T) (models.User, models.Member, models.TrainingModule, string) {
	t.Helper()
	user := createUser(t, "amina@example.com", "siri-sana", "member")
	member := createMember(t, models.Member{FullName: "Amina Hassan", Email: user.Email, Age: 32, UserID: &user.ID})
	module := models.TrainingModule{Title: "Msingi wa Biashara", Category: "Biashara", Level: "beginner", Status: "active"}
	if err := config.DB.Create(&module).Error; err != nil {
		t.Fatal(err)
	}
	return user, member, module, memberToken(t, user)
}

func postTraining(t *testing.T, r http.Handler, userID, trainingID uint, action, token string) int {
	t.Helper()
	rec := request(t, r, "POST", "/api/members/training", map[string]interface{}{
		"userId":     userID,
		"trainingId": trainingID,
		"action":     action,
	}, token)
	return rec.Code
}

func TestStartTrainingIsIdempotent(t *testing.T) {
	r := setupTest(t)
	user, member, module, token := trainingFixture(t)

	if code := postTraining(t, r, user.ID, module.ID, "start", token); code != http.StatusOK {
		t.Fatalf("first start status = %d", code)
	}
	var first models.MemberTraining
	config.DB.Where("member_id = ? AND training_id = ?", member.ID, module.ID).First(&first)
	if first.Status != "in_progress" {
		t.Fatalf("status = %q, want in_progress", first.Status)
	}

	time.Sleep(20 * time.Millisecond)

	if code := postTraining(t, r, user.ID, module.ID, "start", token); code != http.StatusOK {
		t.Fatalf("second start status = %d", code)
	}

	var count int64
	config.DB.Model(&models.MemberTraining{}).
		Where("member_id = ? AND training_id = ?", member.ID, module.ID).
		Count(&count)
	if count != 1 {
		t.Fatalf("rows = %d, want 1", count)
	}

	var second models.MemberTraining
	config.DB.Where("member_id = ? AND training_id = ?", member.ID, module.ID).First(&second)
	if second.StartedAt == nil || first.StartedAt == nil || !second.StartedAt.After(*first.StartedAt) {
		t.Errorf("started_at not refreshed: first=%v second=%v", first.StartedAt, second.StartedAt)
	}
}

func TestCompleteTrainingSetsProgress(t *testing.T) {
	r := setupTest(t)
	user, member, module, token := trainingFixture(t)

	postTraining(t, r, user.ID, module.ID, "start", token)
	if code := postTraining(t, r, user.ID, module.ID, "complete", token); code != http.StatusOK {
		t.Fatalf("complete status = %d", code)
	}

	var record models.MemberTraining
	config.DB.Where("member_id = ? AND training_id = ?", member.ID, module.ID).First(&record)
	if record.Status != "completed" {
		t.Errorf("status = %q, want completed", record.Status)
	}
	if record.ProgressPercentage != 100 {
		t.Errorf("progress = %d, want 100", record.ProgressPercentage)
	}
	if record.CompletedAt == nil {
		t.Error("completed_at not stamped")
	}
}

// Restarting a completed course flips it back to in_progress on purpose.
func TestStartAfterCompleteResets(t *testing.T) {
	r := setupTest(t)
	user, member, module, token := trainingFixture(t)

	postTraining(t, r, user.ID, module.ID, "start", token)
	postTraining(t, r, user.ID, module.ID, "complete", token)
	postTraining(t, r, user.ID, module.ID, "start", token)

	var record models.MemberTraining
	config.DB.Where("member_id = ? AND training_id = ?", member.ID, module.ID).First(&record)
	if record.Status != "in_progress" {
		t.Errorf("status = %q, want in_progress", record.Status)
	}
}

func TestTrainingUnknownMember(t *testing.T) {
	r := setupTest(t)
	user := createUser(t, "no-profile@example.com", "siri-sana", "member")
	module := models.TrainingModule{Title: "Msingi wa Biashara", Status: "active"}
	config.DB.Create(&module)

	if code := postTraining(t, r, user.ID, module.ID, "start", memberToken(t, user)); code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", code)
	}
}

func TestTrainingCatalogMergesProgress(t *testing.T) {
	r := setupTest(t)
	user, _, module, token := trainingFixture(t)
	other := models.TrainingModule{Title: "Usimamizi wa Fedha", Status: "active"}
	config.DB.Create(&other)

	postTraining(t, r, user.ID, module.ID, "start", token)

	rec := request(t, r, "GET", "/api/members/training?userId="+itoa(user.ID), nil, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("catalog status = %d", rec.Code)
	}

	var rows []struct {
		ID             uint    `json:"id"`
		Title          string  `json:"title"`
		ProgressStatus *string `json:"progress_status"`
	}
	decode(t, rec, &rows)
	if len(rows) != 2 {
		t.Fatalf("catalog rows = %d, want 2", len(rows))
	}
	for _, row := range rows {
		started := row.ID == module.ID
		if started && (row.ProgressStatus == nil || *row.ProgressStatus != "in_progress") {
			t.Errorf("started module has progress %v", row.ProgressStatus)
		}
		if !started && row.ProgressStatus != nil {
			t.Errorf("untouched module has progress %v", *row.ProgressStatus)
		}
	}
}
