package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/target/leave-ui/internal/domain/leave"
	"github.com/target/leave-ui/internal/domain/model"
)

const (
	// RecentLimit is how many requests the dashboards list.
	RecentLimit = 5
	// PendingPreviewLimit is how many pending requests the manager dashboard previews.
	PendingPreviewLimit = 3
)

// DashboardBackend is the subset of the backend client read by dashboards.
type DashboardBackend interface {
	ListLeaveRequests(ctx context.Context) ([]model.LeaveRequest, error)
	ListLeaveBalances(ctx context.Context) ([]model.LeaveBalance, error)
	ListPendingRequests(ctx context.Context) ([]model.LeaveRequest, error)
	ListRequestHistory(ctx context.Context) ([]model.LeaveRequest, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	ListLeaveTypes(ctx context.Context) ([]model.LeaveType, error)
	ListHolidays(ctx context.Context) ([]model.Holiday, error)
}

// EmployeeDashboard summarizes an employee's requests and balances.
type EmployeeDashboard struct {
	RecentRequests []model.LeaveRequest
	Balances       []model.LeaveBalance
	TotalRemaining int
	// PendingCount counts pending requests among RecentRequests.
	PendingCount int
}

// ManagerDashboard summarizes the approval queue.
type ManagerDashboard struct {
	PendingCount   int
	PendingPreview []model.LeaveRequest
	MorePending    int
	RecentActivity []model.LeaveRequest
	// ApprovedCount counts approved requests among RecentActivity.
	ApprovedCount int
}

// AdminDashboard summarizes configuration managed by administrators.
type AdminDashboard struct {
	UserCount        int
	ActiveUserCount  int
	LeaveTypeCount   int
	ActiveLeaveTypes int
	UpcomingHolidays []model.Holiday
}

// DashboardServiceOptions groups dependencies for DashboardService.
type DashboardServiceOptions struct {
	Backend DashboardBackend
	Now     func() time.Time
}

// DashboardService loads the data behind each role's dashboard. Each dashboard's reads run
// concurrently and either all succeed or the dashboard is returned empty with the error.
type DashboardService struct {
	backend DashboardBackend
	now     func() time.Time
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(opts DashboardServiceOptions) *DashboardService {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &DashboardService{backend: opts.Backend, now: now}
}

// Employee loads requests and balances together.
func (s *DashboardService) Employee(ctx context.Context) (EmployeeDashboard, error) {
	var (
		requests []model.LeaveRequest
		balances []model.LeaveBalance
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		requests, err = s.backend.ListLeaveRequests(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		balances, err = s.backend.ListLeaveBalances(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return EmployeeDashboard{}, fmt.Errorf("employee dashboard: %w", err)
	}

	recent := leave.Head(requests, RecentLimit)
	return EmployeeDashboard{
		RecentRequests: recent,
		Balances:       balances,
		TotalRemaining: leave.SumRemaining(balances),
		PendingCount:   leave.CountStatus(recent, model.StatusPending),
	}, nil
}

// Manager loads the pending queue and review history together.
func (s *DashboardService) Manager(ctx context.Context) (ManagerDashboard, error) {
	var pending, history []model.LeaveRequest

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		pending, err = s.backend.ListPendingRequests(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		history, err = s.backend.ListRequestHistory(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return ManagerDashboard{}, fmt.Errorf("manager dashboard: %w", err)
	}

	recent := leave.Head(history, RecentLimit)
	return ManagerDashboard{
		PendingCount:   len(pending),
		PendingPreview: leave.Head(pending, PendingPreviewLimit),
		MorePending:    max(len(pending)-PendingPreviewLimit, 0),
		RecentActivity: recent,
		ApprovedCount:  leave.CountStatus(recent, model.StatusApproved),
	}, nil
}

// Admin loads users, leave types and holidays together.
func (s *DashboardService) Admin(ctx context.Context) (AdminDashboard, error) {
	var (
		users    []model.User
		types    []model.LeaveType
		holidays []model.Holiday
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		users, err = s.backend.ListUsers(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		types, err = s.backend.ListLeaveTypes(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		holidays, err = s.backend.ListHolidays(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return AdminDashboard{}, fmt.Errorf("admin dashboard: %w", err)
	}

	active := 0
	for _, u := range users {
		if u.IsActive {
			active++
		}
	}

	return AdminDashboard{
		UserCount:        len(users),
		ActiveUserCount:  active,
		LeaveTypeCount:   len(types),
		ActiveLeaveTypes: len(model.ActiveLeaveTypes(types)),
		UpcomingHolidays: upcomingHolidays(holidays, model.DateOf(s.now()), RecentLimit),
	}, nil
}

// upcomingHolidays returns active holidays on or after today, earliest first.
func upcomingHolidays(holidays []model.Holiday, today model.Date, limit int) []model.Holiday {
	out := make([]model.Holiday, 0, len(holidays))
	for _, h := range holidays {
		if h.IsActive && !h.Date.IsZero() && !h.Date.Before(today) {
			out = append(out, h)
		}
	}
	slices.SortFunc(out, func(a, b model.Holiday) int {
		return a.Date.Time().Compare(b.Date.Time())
	})
	return leave.Head(out, limit)
}
