package sqlite

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/heropath-app/heropath/internal/domain"
)

// Progress KV keys for scalar AppState fields.
const (
	keyDailyPoints    = "daily_points"
	keyWeeklyPoints   = "weekly_points"
	keyMonthlyPoints  = "monthly_points"
	keyDailyLog       = "daily_log"
	keyStreakCurrent  = "streak_current"
	keyStreakBest     = "streak_best"
	keyLastActiveDate = "last_active_date"
	keyLastResetDate  = "last_reset_date"
	keyReward         = "reward"
)

// LoadState assembles the full AppState document from the progress KV table
// and the history tables. Missing or malformed values silently default to
// their zero value — a corrupt document is never fatal.
func (d *DB) LoadState() (domain.AppState, error) {
	var s domain.AppState

	readInt := func(key string) (int, error) {
		v, err := d.GetProgress(key)
		if err != nil {
			return 0, fmt.Errorf("get %s: %w", key, err)
		}
		n, _ := strconv.Atoi(v) // "" or garbage → 0
		if n < 0 {
			n = 0
		}
		return n, nil
	}

	var err error
	if s.DailyPoints, err = readInt(keyDailyPoints); err != nil {
		return s, err
	}
	if s.WeeklyPoints, err = readInt(keyWeeklyPoints); err != nil {
		return s, err
	}
	if s.MonthlyPoints, err = readInt(keyMonthlyPoints); err != nil {
		return s, err
	}
	if s.StreakCurrent, err = readInt(keyStreakCurrent); err != nil {
		return s, err
	}
	if s.StreakBest, err = readInt(keyStreakBest); err != nil {
		return s, err
	}
	if s.StreakBest < s.StreakCurrent {
		s.StreakBest = s.StreakCurrent
	}

	logJSON, err := d.GetProgress(keyDailyLog)
	if err != nil {
		return s, fmt.Errorf("get %s: %w", keyDailyLog, err)
	}
	s.DailyLog = map[string]int{}
	if logJSON != "" {
		_ = json.Unmarshal([]byte(logJSON), &s.DailyLog) // corrupt → empty log
	}

	if s.LastActiveDate, err = d.GetProgress(keyLastActiveDate); err != nil {
		return s, fmt.Errorf("get %s: %w", keyLastActiveDate, err)
	}
	if s.LastResetDate, err = d.GetProgress(keyLastResetDate); err != nil {
		return s, fmt.Errorf("get %s: %w", keyLastResetDate, err)
	}
	if s.Reward, err = d.GetProgress(keyReward); err != nil {
		return s, fmt.Errorf("get %s: %w", keyReward, err)
	}

	if s.WeeklyHistory, err = d.WeeklyHistory(); err != nil {
		return s, err
	}
	if s.MonthlyHistory, err = d.MonthlyHistory(); err != nil {
		return s, err
	}

	return s, nil
}

// SaveState persists the scalar fields and daily log of the state document.
// Histories are append-only and written through AppendWeeklyHistory /
// AppendMonthlyHistory instead.
func (d *DB) SaveState(s domain.AppState) error {
	logJSON, err := json.Marshal(s.DailyLog)
	if err != nil {
		return fmt.Errorf("marshal daily log: %w", err)
	}

	pairs := map[string]string{
		keyDailyPoints:    strconv.Itoa(s.DailyPoints),
		keyWeeklyPoints:   strconv.Itoa(s.WeeklyPoints),
		keyMonthlyPoints:  strconv.Itoa(s.MonthlyPoints),
		keyDailyLog:       string(logJSON),
		keyStreakCurrent:  strconv.Itoa(s.StreakCurrent),
		keyStreakBest:     strconv.Itoa(s.StreakBest),
		keyLastActiveDate: s.LastActiveDate,
		keyLastResetDate:  s.LastResetDate,
		keyReward:         s.Reward,
	}
	for k, v := range pairs {
		if err := d.SetProgress(k, v); err != nil {
			return fmt.Errorf("save %s: %w", k, err)
		}
	}
	return nil
}
