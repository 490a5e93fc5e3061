package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"

	"ratehub/internal/cache"
	"ratehub/internal/http-api/dto"
	"ratehub/internal/http-api/models"
	"ratehub/internal/http-api/repository"
)

// StatsService computes the dashboard aggregates. Both views are pure
// functions of the current store state; the only side channel is the
// best-effort redis cache of the statistics payload.
type StatsService interface {
	GetStatistics(ctx context.Context) (*dto.StatisticsResponse, error)
	GetRatingTable(ctx context.Context, sortOrder string) ([]dto.WorkRatingGroup, error)
}

type statsService struct {
	ratingRepo repository.RatingRepository
	workRepo   repository.WorkRepository
	userRepo   repository.UserRepository
	statsCache *cache.Cache
	logger     *slog.Logger
}

func NewStatsService(ratingRepo repository.RatingRepository, workRepo repository.WorkRepository, userRepo repository.UserRepository, statsCache *cache.Cache, logger *slog.Logger) StatsService {
	return &statsService{
		ratingRepo: ratingRepo,
		workRepo:   workRepo,
		userRepo:   userRepo,
		statsCache: statsCache,
		logger:     logger,
	}
}

// GetStatistics serves the cached payload when present, otherwise recomputes
// from a wholesale read of ratings, works and users.
func (s *statsService) GetStatistics(ctx context.Context) (*dto.StatisticsResponse, error) {
	if s.statsCache != nil {
		var cached dto.StatisticsResponse
		err := s.statsCache.GetJSON(ctx, statsCacheKey, &cached)
		if err == nil {
			return &cached, nil
		}
		if !errors.Is(err, cache.ErrMiss) {
			s.logger.Warn("statistics cache read failed", "error", err)
		}
	}

	ratings, err := s.ratingRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	works, err := s.workRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := computeStatistics(ratings, works, users)

	if s.statsCache != nil {
		if err := s.statsCache.SetJSON(ctx, statsCacheKey, stats); err != nil {
			s.logger.Warn("statistics cache write failed", "error", err)
		}
	}
	return stats, nil
}

// GetRatingTable regroups the detailed ratings by work for the table view.
// Recomputation is full on every call; the expected N is small.
func (s *statsService) GetRatingTable(ctx context.Context, sortOrder string) ([]dto.WorkRatingGroup, error) {
	stats, err := s.GetStatistics(ctx)
	if err != nil {
		return nil, err
	}
	return groupByWork(stats.DetailedRatings, sortOrder), nil
}

// computeStatistics aggregates submitted ratings into per-work summaries, a
// detailed per-rating view and overall totals. Draft ratings are invisible
// everywhere. Works with no submitted ratings keep an all-zero summary line
// rather than being dropped.
func computeStatistics(ratings []models.Rating, works []models.Work, users []models.User) *dto.StatisticsResponse {
	submitted := make([]models.Rating, 0, len(ratings))
	for _, r := range ratings {
		if r.Status == models.StatusSubmitted {
			submitted = append(submitted, r)
		}
	}

	userNames := make(map[int64]string, len(users))
	for _, u := range users {
		userNames[u.ID] = u.Username
	}
	workNames := make(map[int64]string, len(works))
	for _, w := range works {
		workNames[w.ID] = w.Title
	}

	workStats := make([]dto.WorkStatistics, 0, len(works))
	ratedWorks := 0
	for _, w := range works {
		var finals []int
		for _, r := range submitted {
			if r.WorkID == w.ID {
				finals = append(finals, r.FinalScore())
			}
		}

		stat := dto.WorkStatistics{
			WorkID:     w.ID,
			WorkName:   workName(workNames, w.ID),
			RatedCount: len(finals),
		}
		if len(finals) > 0 {
			ratedWorks++
			highest, lowest, sum := finals[0], finals[0], 0
			for _, f := range finals {
				if f > highest {
					highest = f
				}
				if f < lowest {
					lowest = f
				}
				sum += f
			}
			stat.HighestScore = highest
			stat.LowestScore = lowest
			stat.AverageScore = int(math.Round(float64(sum) / float64(len(finals))))
		}
		workStats = append(workStats, stat)
	}

	detailed := make([]dto.DetailedRating, 0, len(submitted))
	distinctUsers := make(map[int64]bool)
	for _, r := range submitted {
		distinctUsers[r.UserID] = true
		detailed = append(detailed, dto.DetailedRating{
			ID:         r.ID,
			UserID:     r.UserID,
			WorkID:     r.WorkID,
			UserName:   userName(userNames, r.UserID),
			WorkName:   workName(workNames, r.WorkID),
			Content:    r.Content,
			Scores:     r.Scores,
			Status:     r.Status,
			FinalScore: r.FinalScore(),
			CreatedAt:  r.CreatedAt,
			UpdatedAt:  r.UpdatedAt,
		})
	}

	return &dto.StatisticsResponse{
		Overall: dto.OverallStats{
			TotalWorks:      len(works),
			TotalRatedWorks: ratedWorks,
			TotalRatings:    len(submitted),
			TotalUsers:      len(distinctUsers),
		},
		WorkStatistics:  workStats,
		DetailedRatings: detailed,
	}
}

// groupByWork regroups detailed ratings by work, preserving first-seen work
// order, sorts each group's users by final score and tags the extremes.
// Ties are tagged collectively: every entry equal to the group's max is
// highest, every entry equal to the min is lowest, and a lone rater is both.
func groupByWork(detailed []dto.DetailedRating, sortOrder string) []dto.WorkRatingGroup {
	groups := make(map[int64]*dto.WorkRatingGroup)
	var order []int64

	for _, r := range detailed {
		if r.Status != models.StatusSubmitted {
			continue
		}
		g, ok := groups[r.WorkID]
		if !ok {
			g = &dto.WorkRatingGroup{WorkID: r.WorkID, WorkName: r.WorkName, RatedUsers: []dto.RatedUser{}}
			groups[r.WorkID] = g
			order = append(order, r.WorkID)
		}
		g.RatedUserCount++
		g.RatedUsers = append(g.RatedUsers, dto.RatedUser{
			ID:         r.ID,
			UserID:     r.UserID,
			UserName:   r.UserName,
			Scores:     r.Scores,
			FinalScore: r.FinalScore,
			CreatedAt:  r.CreatedAt,
		})
	}

	result := make([]dto.WorkRatingGroup, 0, len(order))
	for _, workID := range order {
		g := groups[workID]

		sort.SliceStable(g.RatedUsers, func(i, j int) bool {
			if sortOrder == "descend" {
				return g.RatedUsers[i].FinalScore > g.RatedUsers[j].FinalScore
			}
			return g.RatedUsers[i].FinalScore < g.RatedUsers[j].FinalScore
		})

		highest := g.RatedUsers[0].FinalScore
		lowest := g.RatedUsers[0].FinalScore
		sum := 0
		for _, u := range g.RatedUsers {
			if u.FinalScore > highest {
				highest = u.FinalScore
			}
			if u.FinalScore < lowest {
				lowest = u.FinalScore
			}
			sum += u.FinalScore
		}
		for i := range g.RatedUsers {
			g.RatedUsers[i].IsHighest = g.RatedUsers[i].FinalScore == highest
			g.RatedUsers[i].IsLowest = g.RatedUsers[i].FinalScore == lowest
		}
		avg := float64(sum) / float64(len(g.RatedUsers))
		g.AvgScore = math.Round(avg*100) / 100

		result = append(result, *g)
	}
	return result
}

func userName(names map[int64]string, id int64) string {
	if name, ok := names[id]; ok && name != "" {
		return name
	}
	return fmt.Sprintf("User%d", id)
}

func workName(names map[int64]string, id int64) string {
	if name, ok := names[id]; ok && name != "" {
		return name
	}
	return fmt.Sprintf("Work%d", id)
}
