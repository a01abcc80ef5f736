// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/consideration-vault/models"
	"github.com/danielhkuo/consideration-vault/testutil"
)

// TestConcurrentDeletes verifies that when several requests delete the same
// record at once, exactly one succeeds and the rest see 404
func TestConcurrentDeletes(t *testing.T) {
	h, db := newConsiderationHandler(t)
	id := createConsideration(t, h, jane, "Alex")
	keep := createConsideration(t, h, jane, "Sam")

	numAttempts := 5

	var deleted, notFound atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numAttempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			req := testutil.MakeRequest("DELETE", "/considerations/"+idPath(id), models.DeleteConsiderationRequest{Email: jane}, nil)
			req.SetPathValue("id", idPath(id))
			w := httptest.NewRecorder()

			h.DeleteConsideration(w, req)

			switch w.Code {
			case http.StatusOK:
				deleted.Add(1)
			case http.StatusNotFound:
				notFound.Add(1)
			}
		}()
	}

	wg.Wait()

	if deleted.Load() != 1 {
		t.Errorf("Expected exactly 1 successful delete, got %d", deleted.Load())
	}
	if int(notFound.Load()) != numAttempts-1 {
		t.Errorf("Expected %d not-found responses, got %d", numAttempts-1, notFound.Load())
	}

	// The untouched record and its assessments survive
	if n := testutil.CountRows(t, db, "considerations"); n != 1 {
		t.Errorf("Expected 1 consideration left, got %d", n)
	}
	if n := testutil.CountRows(t, db, "business_assessments"); n != 1 {
		t.Errorf("Expected 1 business row left, got %d", n)
	}

	req := testutil.MakeRequest("GET", "/considerations/"+idPath(keep)+"?email="+jane, nil, nil)
	req.SetPathValue("id", idPath(keep))
	w := httptest.NewRecorder()
	h.GetConsideration(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)
}

// TestConcurrentCreates verifies that simultaneous submissions from one author
// each land as a complete record with distinct ids
func TestConcurrentCreates(t *testing.T) {
	h, db := newConsiderationHandler(t)

	numCreates := 8

	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numCreates; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/considerations", models.CreateConsiderationRequest{
				AuthorEmail:       jane,
				ConsiderationForm: testutil.SampleForm("Person" + string(rune('A'+idx))),
			}, nil)
			w := httptest.NewRecorder()

			h.CreateConsideration(w, req)

			if w.Code == http.StatusCreated {
				successCount.Add(1)
			}
		}(i)
	}

	wg.Wait()

	if int(successCount.Load()) != numCreates {
		t.Errorf("Expected %d successful creates, got %d", numCreates, successCount.Load())
	}

	var distinct int
	if err := db.QueryRow("SELECT COUNT(DISTINCT consideration_id) FROM faith_assessments").Scan(&distinct); err != nil {
		t.Fatalf("Failed to count assessments: %v", err)
	}
	if distinct != numCreates {
		t.Errorf("Expected %d distinct faith rows, got %d", numCreates, distinct)
	}
}
