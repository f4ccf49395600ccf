package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sitewage/sitewage-backend-go/internal/domain/advance"
	"github.com/sitewage/sitewage-backend-go/internal/domain/attendance"
	"github.com/sitewage/sitewage-backend-go/internal/domain/labourer"
	"github.com/sitewage/sitewage-backend-go/internal/domain/overtime"
	"github.com/sitewage/sitewage-backend-go/internal/domain/site"
	"github.com/sitewage/sitewage-backend-go/internal/pkg/period"
)

// Store is an in-memory record store implementing every repository
// interface plus database.TxManager. Service tests run against it instead
// of a live database; WithinTx gives the same all-or-nothing visibility as
// a real transaction by snapshotting state and restoring it when the
// callback fails.
type Store struct {
	mu sync.Mutex

	attendances map[string]attendance.Attendance // labourerID|date
	siteDays    map[string]attendance.SiteDay    // siteID|date
	overtimes   map[string]overtime.Overtime     // labourerID|date
	advances    []advance.Advance
	labourers   map[string]labourer.Labourer
	sites       map[string]site.Site

	// FailUpsertFor aborts any attendance upsert for the given labourer.
	// Lets tests force a mid-batch failure.
	FailUpsertFor string
}

func NewStore() *Store {
	return &Store{
		attendances: make(map[string]attendance.Attendance),
		siteDays:    make(map[string]attendance.SiteDay),
		overtimes:   make(map[string]overtime.Overtime),
		labourers:   make(map[string]labourer.Labourer),
		sites:       make(map[string]site.Site),
	}
}

func key(a, b string) string { return a + "|" + b }

type snapshot struct {
	attendances map[string]attendance.Attendance
	siteDays    map[string]attendance.SiteDay
	overtimes   map[string]overtime.Overtime
	advances    []advance.Advance
}

func (s *Store) snapshot() snapshot {
	snap := snapshot{
		attendances: make(map[string]attendance.Attendance, len(s.attendances)),
		siteDays:    make(map[string]attendance.SiteDay, len(s.siteDays)),
		overtimes:   make(map[string]overtime.Overtime, len(s.overtimes)),
		advances:    append([]advance.Advance(nil), s.advances...),
	}
	for k, v := range s.attendances {
		snap.attendances[k] = v
	}
	for k, v := range s.siteDays {
		snap.siteDays[k] = v
	}
	for k, v := range s.overtimes {
		snap.overtimes[k] = v
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.attendances = snap.attendances
	s.siteDays = snap.siteDays
	s.overtimes = snap.overtimes
	s.advances = snap.advances
}

// WithinTx implements database.TxManager.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	s.mu.Lock()
	snap := s.snapshot()
	s.mu.Unlock()

	if err := fn(ctx); err != nil {
		s.mu.Lock()
		s.restore(snap)
		s.mu.Unlock()
		return err
	}
	return nil
}

// ========================================
// ATTENDANCE
// ========================================

var errForcedFailure = errors.New("forced upsert failure")

func (s *Store) Upsert(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailUpsertFor != "" && att.LabourerID == s.FailUpsertFor {
		return attendance.Attendance{}, errForcedFailure
	}

	k := key(att.LabourerID, att.Date)
	if existing, ok := s.attendances[k]; ok {
		att.ID = existing.ID
		att.CreatedAt = existing.CreatedAt
	} else {
		att.ID = uuid.New().String()
	}
	s.attendances[k] = att
	return att, nil
}

func (s *Store) ListByDate(ctx context.Context, date string, siteID *string) ([]attendance.Attendance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []attendance.Attendance
	for _, att := range s.attendances {
		if att.Date != date {
			continue
		}
		if siteID != nil && att.SiteID != *siteID {
			continue
		}
		if lab, ok := s.labourers[att.LabourerID]; ok {
			name := lab.Name
			att.LabourerName = &name
		}
		result = append(result, att)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].LabourerID < result[j].LabourerID })
	return result, nil
}

func (s *Store) ListForPayroll(ctx context.Context, labourerID string, p period.Period, siteID *string) ([]attendance.Attendance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []attendance.Attendance
	for _, att := range s.attendances {
		if att.LabourerID != labourerID || !p.Contains(att.Date) {
			continue
		}
		if siteID != nil && att.SiteID != *siteID {
			continue
		}
		if day, ok := s.siteDays[key(att.SiteID, att.Date)]; ok {
			food := day.FoodProvided
			att.DayFoodProvided = &food
		}
		result = append(result, att)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date < result[j].Date })
	return result, nil
}

// ========================================
// SITE DAYS
// ========================================

func (s *Store) Lock(ctx context.Context, day attendance.SiteDay) (attendance.SiteDay, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key(day.SiteID, day.Date)
	if existing, ok := s.siteDays[k]; ok && existing.IsLocked {
		return attendance.SiteDay{}, attendance.ErrDayLocked
	}

	day.ID = uuid.New().String()
	day.IsLocked = true
	day.SubmittedAt = time.Now()
	s.siteDays[k] = day
	return day, nil
}

func (s *Store) Get(ctx context.Context, siteID, date string) (*attendance.SiteDay, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if day, ok := s.siteDays[key(siteID, date)]; ok {
		return &day, nil
	}
	return nil, nil
}

// ========================================
// OVERTIME
// ========================================

// OvertimeRepo exposes the store through the overtime repository interface.
// The method set collides with attendance's Upsert, hence the view type.
type OvertimeRepo struct{ *Store }

func (s *Store) Overtimes() OvertimeRepo { return OvertimeRepo{s} }

func (r OvertimeRepo) Upsert(ctx context.Context, ot overtime.Overtime) (overtime.Overtime, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := key(ot.LabourerID, ot.Date)
	if existing, ok := r.overtimes[k]; ok {
		ot.ID = existing.ID
		ot.CreatedAt = existing.CreatedAt
	} else {
		ot.ID = uuid.New().String()
	}
	r.overtimes[k] = ot
	return ot, nil
}

func (r OvertimeRepo) List(ctx context.Context, p period.Period, labourerID *string, siteID *string) ([]overtime.Overtime, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []overtime.Overtime
	for _, ot := range r.overtimes {
		if !p.Contains(ot.Date) {
			continue
		}
		if labourerID != nil && ot.LabourerID != *labourerID {
			continue
		}
		if siteID != nil && ot.SiteID != *siteID {
			continue
		}
		result = append(result, ot)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date < result[j].Date })
	return result, nil
}

func (r OvertimeRepo) SumAmount(ctx context.Context, labourerID string, p period.Period, siteID *string) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	total := decimal.Zero
	for _, ot := range r.overtimes {
		if ot.LabourerID != labourerID || !p.Contains(ot.Date) {
			continue
		}
		if siteID != nil && ot.SiteID != *siteID {
			continue
		}
		total = total.Add(ot.Amount)
	}
	return total, nil
}

// ========================================
// ADVANCES
// ========================================

type AdvanceRepo struct{ *Store }

func (s *Store) Advances() AdvanceRepo { return AdvanceRepo{s} }

func (r AdvanceRepo) Create(ctx context.Context, adv advance.Advance) (advance.Advance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	adv.ID = uuid.New().String()
	r.advances = append(r.advances, adv)
	return adv, nil
}

func (r AdvanceRepo) List(ctx context.Context, p period.Period, labourerID *string) ([]advance.Advance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []advance.Advance
	for _, adv := range r.advances {
		if !p.Contains(adv.Date) {
			continue
		}
		if labourerID != nil && adv.LabourerID != *labourerID {
			continue
		}
		result = append(result, adv)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date < result[j].Date })
	return result, nil
}

func (r AdvanceRepo) SumAmount(ctx context.Context, labourerID string, p period.Period) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	total := decimal.Zero
	for _, adv := range r.advances {
		if adv.LabourerID != labourerID || !p.Contains(adv.Date) {
			continue
		}
		total = total.Add(adv.Amount)
	}
	return total, nil
}

// ========================================
// LABOURERS
// ========================================

type LabourerRepo struct{ *Store }

func (s *Store) Labourers() LabourerRepo { return LabourerRepo{s} }

func (r LabourerRepo) Create(ctx context.Context, lab labourer.Labourer) (labourer.Labourer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lab.ID = uuid.New().String()
	r.labourers[lab.ID] = lab
	return lab, nil
}

func (r LabourerRepo) GetByID(ctx context.Context, id string) (labourer.Labourer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if lab, ok := r.labourers[id]; ok {
		return lab, nil
	}
	return labourer.Labourer{}, labourer.ErrLabourerNotFound
}

func (r LabourerRepo) List(ctx context.Context, activeOnly bool) ([]labourer.Labourer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []labourer.Labourer
	for _, lab := range r.labourers {
		if activeOnly && !lab.IsActive {
			continue
		}
		result = append(result, lab)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r LabourerRepo) Update(ctx context.Context, lab labourer.Labourer) (labourer.Labourer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.labourers[lab.ID]; !ok {
		return labourer.Labourer{}, labourer.ErrLabourerNotFound
	}
	r.labourers[lab.ID] = lab
	return lab, nil
}

// ========================================
// SITES
// ========================================

type SiteRepo struct{ *Store }

func (s *Store) Sites() SiteRepo { return SiteRepo{s} }

func (r SiteRepo) Create(ctx context.Context, st site.Site) (site.Site, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.sites {
		if existing.Name == st.Name {
			return site.Site{}, site.ErrSiteNameExists
		}
	}
	st.ID = uuid.New().String()
	r.sites[st.ID] = st
	return st, nil
}

func (r SiteRepo) GetByID(ctx context.Context, id string) (site.Site, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if st, ok := r.sites[id]; ok {
		return st, nil
	}
	return site.Site{}, site.ErrSiteNotFound
}

func (r SiteRepo) List(ctx context.Context, activeOnly bool) ([]site.Site, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []site.Site
	for _, st := range r.sites {
		if activeOnly && !st.IsActive {
			continue
		}
		result = append(result, st)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}
