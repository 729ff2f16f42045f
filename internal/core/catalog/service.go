// Package catalog serves the static farmer-facing content: profile, tasks,
// policies, leaderboard and the disease detection stub.
package catalog

import (
	"context"
	"strings"
	"time"

	"farmerassist.app/internal/ports"
	"farmerassist.app/pkg/errors"
	"github.com/google/uuid"
	"github.com/newmo-oss/ctxtime"
)

const (
	taskStatusDone     = "done"
	taskCompletePoints = 5

	defaultLeaderboardScope = "village"
	defaultLeaderboardID    = "default"
)

type Service struct {
	logger ports.Logger
	newID  func() string
}

func NewService(logger ports.Logger) (*Service, error) {
	if logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	return &Service{logger: logger, newID: uuid.NewString}, nil
}

func (s *Service) Profile(ctx context.Context) Profile {
	return Profile{
		User: User{
			UserID:         "user_001",
			Name:           "Ravi Kumar",
			Phone:          "+91 9876543210",
			Language:       "hi",
			FarmProfileID:  "farm_001",
			AadhaarHash:    "****1234",
			UniqueFarmID:   "FARM_001_2024",
			UniqueFarmerID: "FARMER_001_2024",
		},
		Farm: Farm{
			FarmID:      "farm_001",
			UserID:      "user_001",
			State:       "Punjab",
			District:    "Ludhiana",
			Lat:         30.9010,
			Lng:         75.8573,
			SoilType:    "Loamy",
			Area:        2.5,
			WaterLevel:  "Good",
			PrimaryCrop: "Wheat",
		},
	}
}

// Tasks lists today's and tomorrow's tasks
func (s *Service) Tasks(ctx context.Context) TaskList {
	today := ctxtime.Now(ctx).UTC()
	tomorrow := today.AddDate(0, 0, 1)

	return TaskList{Results: []Task{
		{
			TaskID:   "task_001",
			FarmID:   "farm_001",
			Date:     today.Format(time.RFC3339),
			Title:    "Irrigation check",
			Status:   "pending",
			Points:   5,
			Priority: "high",
		},
		{
			TaskID:   "task_002",
			FarmID:   "farm_001",
			Date:     tomorrow.Format(time.RFC3339),
			Title:    "Pest monitoring",
			Status:   "pending",
			Points:   3,
			Priority: "medium",
		},
	}}
}

// MarkTask records a status change. Completing a task awards points.
func (s *Service) MarkTask(ctx context.Context, mark TaskMark) (*TaskMarkResult, error) {
	taskID := strings.TrimSpace(mark.TaskID)
	if taskID == "" {
		return nil, errors.NewMissingParameterError("taskId")
	}

	result := &TaskMarkResult{
		OK:        true,
		TaskID:    taskID,
		Status:    mark.Status,
		ReceiptID: s.newID(),
	}
	if mark.Status == taskStatusDone {
		result.PointsAwarded = taskCompletePoints
	}

	s.logger.Info("Task marked",
		ports.F("task_id", taskID),
		ports.F("status", mark.Status),
		ports.F("points", result.PointsAwarded),
		ports.F("receipt_id", result.ReceiptID))

	return result, nil
}

// Policies returns the government schemes matching the query. The query is echoed back.
func (s *Service) Policies(ctx context.Context, query PolicyQuery) PolicyResults {
	return PolicyResults{
		Query: query.Query,
		State: query.State,
		Crop:  query.Crop,
		Results: []Policy{
			{PolicyID: "p1", Title: "Seed Subsidy", Eligibility: "Small/marginal farmers", RequiredDocs: []string{"ID", "Bank"}},
			{PolicyID: "p2", Title: "Irrigation Support", Eligibility: "All farmers", RequiredDocs: []string{"ID"}},
		},
	}
}

func (s *Service) Leaderboard(ctx context.Context, scope, id string) Leaderboard {
	if strings.TrimSpace(scope) == "" {
		scope = defaultLeaderboardScope
	}
	if strings.TrimSpace(id) == "" {
		id = defaultLeaderboardID
	}

	return Leaderboard{
		Scope: scope,
		ID:    id,
		Entries: []LeaderboardEntry{
			{UserID: "u1", Name: "Ravi", Points: 120, Rank: 1},
			{UserID: "u2", Name: "Lakshmi", Points: 110, Rank: 2},
			{UserID: "u3", Name: "Aman", Points: 95, Rank: 3},
		},
	}
}

// DetectDisease returns a fixed diagnosis; no image inference is performed
func (s *Service) DetectDisease(ctx context.Context) DiseaseReport {
	return DiseaseReport{
		Labels: []DiseaseLabel{
			{Tag: "leaf_blight", Confidence: 0.82},
			{Tag: "rust", Confidence: 0.12},
			{Tag: "healthy", Confidence: 0.06},
		},
		Remedies: []Remedy{
			{Type: "organic", Steps: []string{"Neem spray 3%", "Isolate infected leaves"}, Dosage: "2 L/acre"},
			{Type: "chemical", Steps: []string{"Copper oxychloride spray"}, Dosage: "1.5 g/L"},
		},
	}
}
