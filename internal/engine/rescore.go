package engine

import "context"

// RescorePriorities recomputes the priority label of every unfinished task
// from its current score and persists the ones that changed. Returns how
// many labels changed.
func (s *Service) RescorePriorities(ctx context.Context) (int, error) {
	tasks, err := s.tasks.ListAll(ctx)
	if err != nil {
		return 0, err
	}

	now := s.now()
	changed := 0
	for _, t := range tasks {
		if t.Status == string(StatusDone) {
			continue
		}
		_, priority := ScoreTask(t, now)
		if string(priority) == t.Priority {
			continue
		}
		if err := s.tasks.UpdatePriority(ctx, t.ID, string(priority)); err != nil {
			return changed, err
		}
		changed++
	}
	return changed, nil
}
