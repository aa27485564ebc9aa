// Package helpers provides test utility functions for the guild manager API.
//
// The helpers package contains common test utilities for assertions,
// pointer creation, and test data manipulation.
//
// # Pointer Helpers
//
// Create pointers to literal values:
//
//	name := helpers.StringPtr("test")
//	count := helpers.IntPtr(42)
//	flag := helpers.BoolPtr(true)
//
// # Request Helpers
//
// Build JSON requests fluently:
//
//	req := helpers.NewRequest(t, "POST", "/v1/parties/assign").
//	    WithBody(body).
//	    Build()
//
// # Assertion Helpers
//
// Common test assertions:
//
//	helpers.AssertRecordExists(t, db, "party", party.ID)
//	helpers.AssertSlots(t, db, party.ID, [5]int64{1, 0, 0, 0, 0})
package helpers
