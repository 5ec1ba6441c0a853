package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/regdesk/regdesk/internal/users"
)

// Lister loads the full record set.
type Lister interface {
	ListAll(ctx context.Context) ([]users.User, error)
}

// Snapshot is the dashboard's initial data: every row plus stats.
type Snapshot struct {
	Users []Row `json:"users"`
	Stats Stats `json:"stats"`
}

// Service loads dashboard data. Filtering and paging run in memory over the
// loaded set.
type Service struct {
	users Lister
	now   func() time.Time
}

// NewService builds a dashboard service over l.
func NewService(l Lister) *Service {
	return &Service{users: l, now: time.Now}
}

// Load fetches the complete record set once.
func (s *Service) Load(ctx context.Context) (Snapshot, error) {
	list, err := s.users.ListAll(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("load users: %w", err)
	}
	rows := make([]Row, 0, len(list))
	for _, u := range list {
		rows = append(rows, NewRow(u))
	}
	return Snapshot{Users: rows, Stats: ComputeStats(list, s.now())}, nil
}

// Search loads the record set and returns one filtered page of it.
func (s *Service) Search(ctx context.Context, term string, page int) (Page, error) {
	list, err := s.users.ListAll(ctx)
	if err != nil {
		return Page{}, fmt.Errorf("load users: %w", err)
	}
	return Paginate(Filter(list, term), page), nil
}
