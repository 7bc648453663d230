package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"jukumu_fund/internal/config"
	"jukumu_fund/internal/models"
)

func createContent(t *testing.T, title string, published bool) models.EducationalContent {
	t.Helper()
	content := models.EducationalContent{
		Title:       title,
		Description: "maelezo",
		Content:     "somo kamili",
		Category:    "Fedha",
		IsPublished: published,
	}
	if err := config.DB.Create(&content).Error; err != nil {
		t.Fatal(err)
	}
	return content
}

func TestListContentHidesUnpublished(t *testing.T) {
	r := setupTest(t)
	createContent(t, "Akiba na Mikopo", true)
	createContent(t, "Rasimu", false)

	rec := request(t, r, "GET", "/api/educational-content", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var rows []models.EducationalContent
	decode(t, rec, &rows)
	if len(rows) != 1 || rows[0].Title != "Akiba na Mikopo" {
		t.Fatalf("public listing = %+v", rows)
	}

	rec = request(t, r, "GET", "/api/educational-content?all=true", nil, "")
	decode(t, rec, &rows)
	if len(rows) != 2 {
		t.Fatalf("all=true listing = %d rows, want 2", len(rows))
	}
}

func TestGetContentNotFound(t *testing.T) {
	r := setupTest(t)
	rec := request(t, r, "GET", "/api/educational-content/42", nil, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestUpdateContentAppliesOnlyPresentFields(t *testing.T) {
	r := setupTest(t)
	token := adminToken(t)
	content := createContent(t, "Akiba na Mikopo", false)
	time.Sleep(20 * time.Millisecond)

	rec := request(t, r, "PUT", "/api/educational-content/"+itoa(content.ID), map[string]interface{}{
		"is_published": true,
	}, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var updated models.EducationalContent
	config.DB.First(&updated, content.ID)
	if !updated.IsPublished {
		t.Error("is_published not applied")
	}
	if updated.Title != "Akiba na Mikopo" {
		t.Errorf("title overwritten: %q", updated.Title)
	}
	if updated.Content != "somo kamili" {
		t.Errorf("content overwritten: %q", updated.Content)
	}
	if !updated.UpdatedAt.After(content.UpdatedAt) {
		t.Error("updated_at not bumped")
	}
}

func TestUpdateContentNotFound(t *testing.T) {
	r := setupTest(t)
	rec := request(t, r, "PUT", "/api/educational-content/42", map[string]interface{}{
		"title": "haipo",
	}, adminToken(t))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestDeleteContent(t *testing.T) {
	r := setupTest(t)
	token := adminToken(t)
	content := createContent(t, "Akiba na Mikopo", true)

	rec := request(t, r, "DELETE", "/api/educational-content/"+itoa(content.ID), nil, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d", rec.Code)
	}
	rec = request(t, r, "DELETE", "/api/educational-content/"+itoa(content.ID), nil, token)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", rec.Code)
	}
}

func TestContentMutationsRequireAdmin(t *testing.T) {
	r := setupTest(t)
	rec := request(t, r, "POST", "/api/educational-content", map[string]interface{}{
		"title": "Akiba na Mikopo",
	}, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated create status = %d, want 401", rec.Code)
	}
}
