// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/consideration-vault/db"
	"github.com/danielhkuo/consideration-vault/models"
)

// TestDBEnv names the variable that points tests at a PostgreSQL database
// instead of a throwaway SQLite file.
const TestDBEnv = "TEST_DATABASE_URL"

// Dialect reports which database SetupTestDB will open
func Dialect() db.Dialect {
	if os.Getenv(TestDBEnv) != "" {
		return db.Postgres
	}
	return db.SQLite
}

// SetupTestDB creates a fresh test database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dialect, url := Dialect(), os.Getenv(TestDBEnv)
	if dialect == db.SQLite {
		url = "file:" + filepath.Join(t.TempDir(), "vault.db")
	}

	conn, err := db.Open(context.Background(), dialect, url, 10)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	// Clean up tables before each test
	if dialect == db.Postgres {
		if err := db.DropSchema(conn); err != nil {
			t.Fatalf("Failed to clean database: %v", err)
		}
	}

	if err := db.CreateSchema(conn, dialect); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// CountRows returns the number of rows in table
func CountRows(t *testing.T, conn *sql.DB, table string) int {
	t.Helper()

	var n int
	if err := conn.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}

// SampleForm returns a fully filled-in submission. Every rating is 4 except
// faith.practicesFaith, which is 5.
func SampleForm(name string) models.ConsiderationForm {
	const r = models.Rating(4)

	return models.ConsiderationForm{
		BasicInfo: models.BasicInfo{Name: name, Age: "29", DateMet: "2024-05-01"},
		Faith: models.FaithForm{
			IsCatholic: true, PracticesFaith: 5, SharedMoralValues: r, HelpsGetToHeaven: r,
			Notes: "Goes to Mass weekly",
		},
		Character: models.CharacterForm{
			Friendly: r, Happy: r, Polite: r, Proud: r, Discretion: r, Charitable: r, Humble: r, Kind: r,
			PositiveAttitude: r, Courageous: r, SelfEffacing: r, DatingHistory: "One long relationship",
			TraditionalValues: r, PoliticalAlignment: r,
		},
		Children: models.ChildrenForm{
			WantsChildren: true, NumberOfChildren: "3-4", WillRaiseCatholic: true,
			LikesChildren: r, ChildrenGravitate: r, Nurturing: r, ExcitedAboutBabies: r,
		},
		Friendship: models.FriendshipForm{
			Fun: r, SharedInterests: r, Adventurous: r, Outdoorsy: r, Curious: r, Creative: r,
			Conversation: r, Communication: r, ConflictResolution: r, Unselfish: r, EnjoyableCompany: r,
		},
		FamilyAndFriends: models.FamilyForm{
			SolidFamilyBackground: r, ParentsMaritalStatus: "married", FamilyValues: r, FamilyFunctioning: r,
			SiblingRelationships: r, EnjoyFamily: r, FriendGroup: r, GetsAlongWithYourFamily: r,
			GetsAlongWithYourFriends: r, Possessive: r,
		},
		BusinessPartner: models.BusinessForm{
			Saver: r, Wasteful: r, Maintenance: r, WillingToSacrifice: r, RiskTaker: r, Debt: "none",
			FinancialResponsibility: r, SelfStarter: r,
		},
		Roommate: models.RoommateForm{
			Tidiness: r, Dishes: r, PersonalSpace: r, Housekeeping: r, SharesBurden: r,
		},
		PhysicalAttraction: models.PhysicalForm{
			Attraction: r, Fitness: r, HealthConscious: r, Hygiene: r, FamilyLongevity: r,
		},
		OverallNotes: "Worth a second date",
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
