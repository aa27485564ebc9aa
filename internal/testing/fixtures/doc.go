// Package fixtures provides test data factories for the guild manager API.
//
// The fixtures package contains factory functions for creating test data
// with sensible defaults and optional customization.
//
// # Factory Pattern
//
// Create a factory with a database connection:
//
//	f := fixtures.New(testDB)
//
// # Creating Test Data
//
// Factory methods create domain entities:
//
//	member := f.CreateMember(t)                   // Default member
//	party := f.CreateParty(t, model.PartyTypeKVM) // Empty kvm party
//	f.Seat(t, party, 0, member)                   // Seat member as leader
//
// # Customization
//
// Use option functions for customization:
//
//	member := f.CreateMember(t, fixtures.WithClass("Mage"))
//	group := f.CreateGroup(t, model.PartyTypeGVG, fixtures.WithGroupName("Wave 1"))
//
// # Random Data
//
// Unique identifiers are generated automatically:
//
//	m1 := f.CreateMember(t) // member_abc123
//	m2 := f.CreateMember(t) // member_def456
//
// # Cleanup
//
// Test data is cleaned up when the test database is closed.
package fixtures
