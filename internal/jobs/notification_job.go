// Package jobs holds the background schedules that run alongside the API.
package jobs

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"alcyxob/fitmetric/internal/domain"
	"alcyxob/fitmetric/internal/insight"
	"alcyxob/fitmetric/internal/repository"
)

// Sunday 09:00 server time.
const weeklyNotificationSchedule = "0 9 * * 0"

const jobTimeout = 5 * time.Minute

// NotificationJob sends every user a weekly motivational push built from
// their last seven days of training. One user failing never stops the sweep.
type NotificationJob struct {
	userRepo    repository.UserRepository
	workoutRepo repository.WorkoutRepository
	generator   insight.Generator
	n8n         *insight.N8NClient
	cron        *cron.Cron
}

// NewNotificationJob wires the job; call Start to schedule it.
func NewNotificationJob(userRepo repository.UserRepository, workoutRepo repository.WorkoutRepository, generator insight.Generator, n8n *insight.N8NClient) *NotificationJob {
	return &NotificationJob{
		userRepo:    userRepo,
		workoutRepo: workoutRepo,
		generator:   generator,
		n8n:         n8n,
		cron:        cron.New(),
	}
}

// Start registers the weekly schedule and starts the cron runner.
func (j *NotificationJob) Start() error {
	_, err := j.cron.AddFunc(weeklyNotificationSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()
		j.Run(ctx)
	})
	if err != nil {
		return fmt.Errorf("schedule weekly notification job: %w", err)
	}
	j.cron.Start()
	log.Printf("Weekly notification job scheduled (%s)", weeklyNotificationSchedule)
	return nil
}

// Stop halts the cron runner and waits for any in-flight run to finish.
func (j *NotificationJob) Stop() {
	<-j.cron.Stop().Done()
}

// Run executes one sweep over all users. Exported so it can be triggered
// manually and exercised in tests without waiting for Sunday.
func (j *NotificationJob) Run(ctx context.Context) {
	if j.n8n == nil || !j.n8n.Enabled() {
		log.Println("Weekly notification job skipped: n8n not configured")
		return
	}

	users, err := j.userRepo.GetAll(ctx)
	if err != nil {
		log.Printf("ERROR: weekly notification job could not list users: %v", err)
		return
	}

	sent := 0
	for i := range users {
		if err := j.notifyUser(ctx, &users[i]); err != nil {
			log.Printf("WARN: weekly notification for %s failed: %v", users[i].ID.Hex(), err)
			continue
		}
		sent++
	}
	log.Printf("Weekly notification job done: %d/%d users notified", sent, len(users))
}

func (j *NotificationJob) notifyUser(ctx context.Context, user *domain.User) error {
	since := time.Now().UTC().AddDate(0, 0, -7)
	workouts, err := j.workoutRepo.GetByUserSince(ctx, user.ID, since)
	if err != nil {
		return fmt.Errorf("load week of workouts: %w", err)
	}

	stats := summarizeWeek(workouts)

	message, err := j.generator.WeeklyNotification(ctx, user.Name, stats)
	if err != nil {
		if !errors.Is(err, insight.ErrUnavailable) {
			log.Printf("WARN: weekly notification text generation failed for %s: %v", user.ID.Hex(), err)
		}
		message = fallbackWeeklyMessage(user.Name, stats)
	}

	return j.n8n.SendPersonalNotification(ctx, user.ID.Hex(), message)
}

// summarizeWeek aggregates completed sessions into the prompt stats. Days
// are counted by distinct UTC calendar day, so two sessions on Tuesday
// count once.
func summarizeWeek(workouts []domain.Workout) insight.WeeklyStats {
	days := make(map[string]struct{})
	var volume float64
	for _, w := range workouts {
		if w.Status != domain.WorkoutCompleted {
			continue
		}
		days[w.Date.UTC().Format("2006-01-02")] = struct{}{}
		volume += w.TotalVolume
	}
	return insight.WeeklyStats{DaysActive: len(days), TotalVolume: volume}
}

func fallbackWeeklyMessage(name string, stats insight.WeeklyStats) string {
	if stats.DaysActive == 0 {
		return fmt.Sprintf("%s, a new week is a new start. Get your first session in today.", name)
	}
	return fmt.Sprintf("%s, %d sessions and %.0fkg moved this week. Keep the streak alive.",
		name, stats.DaysActive, stats.TotalVolume)
}
