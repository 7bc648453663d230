package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"jukumu_fund/internal/config"
	"jukumu_fund/internal/models"
)

func TestCreateGroupDefaults(t *testing.T) {
	r := setupTest(t)
	token := adminToken(t)

	rec := request(t, r, "POST", "/api/admin/groups", map[string]interface{}{
		"name":                "Kilimo Mwanza",
		"monthlyContribution": 50000,
	}, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var group models.Group
	decode(t, rec, &group)
	if group.Status != "active" {
		t.Errorf("status = %q, want active", group.Status)
	}
	if time.Since(group.FoundedDate) > time.Minute {
		t.Errorf("founded_date not defaulted to today: %v", group.FoundedDate)
	}
}

func TestCreateGroupExplicitFoundedDate(t *testing.T) {
	r := setupTest(t)

	rec := request(t, r, "POST", "/api/admin/groups", map[string]interface{}{
		"name":        "Ufugaji Arusha",
		"foundedDate": "2024-02-20",
	}, adminToken(t))
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d", rec.Code)
	}

	var group models.Group
	decode(t, rec, &group)
	if group.FoundedDate.Format("2006-01-02") != "2024-02-20" {
		t.Errorf("founded_date = %v", group.FoundedDate)
	}
}

func TestListGroupsIncludesLeaderAndCount(t *testing.T) {
	r := setupTest(t)
	leader := createUser(t, "leader@example.com", "siri-sana", "member")
	group := models.Group{Name: "Kilimo Mwanza", LeaderID: &leader.ID, Status: "active"}
	config.DB.Create(&group)

	for _, name := range []string{"Amina Hassan", "Neema Joseph"} {
		member := createMember(t, models.Member{FullName: name, Email: name + "@example.com", Age: 30})
		config.DB.Create(&models.GroupMember{GroupID: group.ID, MemberID: member.ID, Role: "member", Status: "active"})
	}

	rec := request(t, r, "GET", "/api/groups", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var rows []struct {
		Name        string  `json:"name"`
		LeaderName  *string `json:"leader_name"`
		MemberCount int64   `json:"member_count"`
	}
	decode(t, rec, &rows)
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0].MemberCount != 2 {
		t.Errorf("member_count = %d, want 2", rows[0].MemberCount)
	}
	if rows[0].LeaderName == nil || *rows[0].LeaderName != "Test member" {
		t.Errorf("leader_name = %v", rows[0].LeaderName)
	}
}

func TestAdminUpdateGroupPartial(t *testing.T) {
	r := setupTest(t)
	token := adminToken(t)
	group := models.Group{Name: "Kilimo Mwanza", MonthlyContribution: 50000, Status: "active"}
	config.DB.Create(&group)

	rec := request(t, r, "PUT", "/api/admin/groups", map[string]interface{}{
		"id":     group.ID,
		"status": "pending",
	}, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var updated models.Group
	config.DB.First(&updated, group.ID)
	if updated.Status != "pending" {
		t.Errorf("status = %q", updated.Status)
	}
	if updated.MonthlyContribution != 50000 {
		t.Errorf("monthly_contribution mutated: %v", updated.MonthlyContribution)
	}
	if updated.Name != "Kilimo Mwanza" {
		t.Errorf("name mutated: %q", updated.Name)
	}
}

func TestAdminUpdateGroupNotFound(t *testing.T) {
	r := setupTest(t)
	rec := request(t, r, "PUT", "/api/admin/groups", map[string]interface{}{
		"id":   999,
		"name": "Haipo",
	}, adminToken(t))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
