package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/target/leave-ui/internal/domain/model"
	apperrors "github.com/target/leave-ui/internal/errors"
	"github.com/target/leave-ui/internal/mocks"
)

func newDashboardFixture(t *testing.T) (*mocks.MockAPI, *DashboardService) {
	t.Helper()
	api := mocks.NewMockAPI(gomock.NewController(t))
	svc := NewDashboardService(DashboardServiceOptions{
		Backend: api,
		Now:     func() time.Time { return testNow },
	})
	return api, svc
}

func requestsWithStatus(statuses ...model.RequestStatus) []model.LeaveRequest {
	out := make([]model.LeaveRequest, len(statuses))
	for i, s := range statuses {
		out[i] = model.LeaveRequest{ID: string(rune('a' + i)), Status: s, TotalDays: 1}
	}
	return out
}

func TestDashboardService_Employee(t *testing.T) {
	api, svc := newDashboardFixture(t)
	api.EXPECT().ListLeaveRequests(gomock.Any()).Return(requestsWithStatus(
		model.StatusPending, model.StatusApproved, model.StatusPending,
		model.StatusRejected, model.StatusApproved, model.StatusPending,
	), nil)
	api.EXPECT().ListLeaveBalances(gomock.Any()).Return([]model.LeaveBalance{
		{LeaveTypeName: "Annual", TotalDays: 20, UsedDays: 5, RemainingDays: 15},
		{LeaveTypeName: "Sick", TotalDays: 10, UsedDays: 9, RemainingDays: 1},
	}, nil)

	got, err := svc.Employee(context.Background())
	require.NoError(t, err)
	assert.Len(t, got.RecentRequests, RecentLimit)
	assert.Equal(t, "a", got.RecentRequests[0].ID)
	assert.Equal(t, 2, got.PendingCount, "only the listed requests are counted")
	assert.Equal(t, 16, got.TotalRemaining)
	assert.Len(t, got.Balances, 2)
}

func TestDashboardService_EmployeeEmpty(t *testing.T) {
	api, svc := newDashboardFixture(t)
	api.EXPECT().ListLeaveRequests(gomock.Any()).Return(nil, nil)
	api.EXPECT().ListLeaveBalances(gomock.Any()).Return(nil, nil)

	got, err := svc.Employee(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got.RecentRequests)
	assert.Zero(t, got.TotalRemaining)
	assert.Zero(t, got.PendingCount)
}

func TestDashboardService_EmployeeFailureReturnsNothing(t *testing.T) {
	api, svc := newDashboardFixture(t)
	api.EXPECT().ListLeaveRequests(gomock.Any()).Return(requestsWithStatus(model.StatusPending), nil).AnyTimes()
	api.EXPECT().ListLeaveBalances(gomock.Any()).Return(nil, apperrors.FromStatus(500, "", false))

	got, err := svc.Employee(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsServer(err))
	assert.Empty(t, got.RecentRequests, "partial results are not shown")
	assert.Zero(t, got.TotalRemaining)
}

func TestDashboardService_Manager(t *testing.T) {
	api, svc := newDashboardFixture(t)
	api.EXPECT().ListPendingRequests(gomock.Any()).Return(requestsWithStatus(
		model.StatusPending, model.StatusPending, model.StatusPending, model.StatusPending,
	), nil)
	api.EXPECT().ListRequestHistory(gomock.Any()).Return(requestsWithStatus(
		model.StatusApproved, model.StatusRejected, model.StatusApproved,
	), nil)

	got, err := svc.Manager(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, got.PendingCount)
	assert.Len(t, got.PendingPreview, PendingPreviewLimit)
	assert.Equal(t, 1, got.MorePending)
	assert.Len(t, got.RecentActivity, 3)
	assert.Equal(t, 2, got.ApprovedCount)
}

func TestDashboardService_ManagerShortQueue(t *testing.T) {
	api, svc := newDashboardFixture(t)
	api.EXPECT().ListPendingRequests(gomock.Any()).Return(requestsWithStatus(model.StatusPending), nil)
	api.EXPECT().ListRequestHistory(gomock.Any()).Return(nil, nil)

	got, err := svc.Manager(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, got.PendingCount)
	assert.Zero(t, got.MorePending)
	assert.Empty(t, got.RecentActivity)
}

func TestDashboardService_ManagerFailure(t *testing.T) {
	api, svc := newDashboardFixture(t)
	api.EXPECT().ListPendingRequests(gomock.Any()).Return(nil, apperrors.FromStatus(403, "", false))
	api.EXPECT().ListRequestHistory(gomock.Any()).Return(nil, nil).AnyTimes()

	got, err := svc.Manager(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsForbidden(err))
	assert.Zero(t, got.PendingCount)
}

func TestDashboardService_Admin(t *testing.T) {
	api, svc := newDashboardFixture(t)
	api.EXPECT().ListUsers(gomock.Any()).Return([]model.User{
		{ID: "1", IsActive: true}, {ID: "2", IsActive: false}, {ID: "3", IsActive: true},
	}, nil)
	api.EXPECT().ListLeaveTypes(gomock.Any()).Return([]model.LeaveType{
		{ID: "annual", IsActive: true}, {ID: "legacy", IsActive: false},
	}, nil)
	api.EXPECT().ListHolidays(gomock.Any()).Return([]model.Holiday{
		{ID: "past", Date: model.NewDate(2024, time.January, 1), IsActive: true},
		{ID: "xmas", Date: model.NewDate(2024, time.December, 25), IsActive: true},
		{ID: "today", Date: model.NewDate(2024, time.March, 1), IsActive: true},
		{ID: "off", Date: model.NewDate(2024, time.May, 1), IsActive: false},
		{ID: "undated", IsActive: true},
	}, nil)

	got, err := svc.Admin(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, got.UserCount)
	assert.Equal(t, 2, got.ActiveUserCount)
	assert.Equal(t, 2, got.LeaveTypeCount)
	assert.Equal(t, 1, got.ActiveLeaveTypes)
	require.Len(t, got.UpcomingHolidays, 2)
	assert.Equal(t, "today", got.UpcomingHolidays[0].ID)
	assert.Equal(t, "xmas", got.UpcomingHolidays[1].ID)
}

func TestDashboardService_AdminFailure(t *testing.T) {
	api, svc := newDashboardFixture(t)
	api.EXPECT().ListUsers(gomock.Any()).Return(nil, nil).AnyTimes()
	api.EXPECT().ListLeaveTypes(gomock.Any()).Return(nil, nil).AnyTimes()
	api.EXPECT().ListHolidays(gomock.Any()).Return(nil, apperrors.MapTransportError(context.DeadlineExceeded))

	got, err := svc.Admin(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsTimeout(err))
	assert.Empty(t, got.UpcomingHolidays)
}

func TestUpcomingHolidaysLimit(t *testing.T) {
	today := model.NewDate(2024, time.March, 1)
	var holidays []model.Holiday
	for day := 10; day > 0; day-- {
		holidays = append(holidays, model.Holiday{Date: model.NewDate(2024, time.April, day), IsActive: true})
	}

	got := upcomingHolidays(holidays, today, 3)
	require.Len(t, got, 3)
	assert.Equal(t, model.NewDate(2024, time.April, 1), got[0].Date)
	assert.Equal(t, model.NewDate(2024, time.April, 3), got[2].Date)
}
