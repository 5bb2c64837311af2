package memory

import (
	"cmp"
	"context"
	"slices"

	"github.com/BruksfildServices01/bridal-rental/internal/models"
)

type SystemLogRepository struct {
	txState
}

func NewSystemLogRepository(s *Store) *SystemLogRepository {
	return &SystemLogRepository{txState{s: s}}
}

func (r *SystemLogRepository) Append(_ context.Context, entry *models.SystemLog) error {
	defer r.lock()()

	r.s.nextLogID++
	entry.ID = r.s.nextLogID
	if entry.Timestamp.IsZero() {
		entry.Timestamp = r.s.Clock()
	}
	r.s.logs = append(r.s.logs, *entry)
	return nil
}

func (r *SystemLogRepository) List(
	_ context.Context,
	action string,
	limit int,
	offset int,
) ([]models.SystemLog, int64, error) {
	defer r.lock()()

	var matched []models.SystemLog
	for _, l := range r.s.logs {
		if action == "" || l.Action == action {
			matched = append(matched, l)
		}
	}
	slices.SortFunc(matched, func(a, b models.SystemLog) int {
		return cmp.Or(b.Timestamp.Compare(a.Timestamp), cmp.Compare(b.ID, a.ID))
	})

	total := int64(len(matched))
	if offset >= len(matched) {
		return []models.SystemLog{}, total, nil
	}
	matched = matched[offset:]
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, total, nil
}
