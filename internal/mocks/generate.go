// Package mocks provides mock implementations for testing leave-ui.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our backend interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	api := mocks.NewMockAPI(ctrl)
//	api.EXPECT().ListLeaveBalances(gomock.Any()).Return(balances, nil)
package mocks

// Generate mock for the API interface from internal/backend package.
// This creates MockAPI with methods for every backend operation, so it satisfies each
// consumer-side subset interface (service.AuthBackend, service.DashboardBackend, httpx handlers).
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=api_mock.go github.com/target/leave-ui/internal/backend API
