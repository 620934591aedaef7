package integration_test

const (
	// User related constants
	TestUserFirstName = "John"
	TestUserLastName  = "Doe"
	TestUserEmail     = "test@example.com"
	TestUserPassword  = "Test123!@#"

	SecondUserFirstName = "Jane"
	SecondUserLastName  = "Smith"
	SecondUserEmail     = "jane@example.com"
	SecondUserPassword  = "Test456!@#"

	// Catalog fixture ids, kept in sync with testdata/catalog_up.sql
	TestTheaterId  = 1
	TestScreenId   = 1
	TestMovieId    = 1
	TestFutureSlot = 1
	TestPastSlot   = 2
)
