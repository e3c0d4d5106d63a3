package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"apotek-backend/internal/apperr"
	"apotek-backend/internal/models"
	"apotek-backend/internal/repositories"
)

type LogActivityService struct {
	Repo *repositories.LogActivityRepository
}

func NewLogActivityService(repo *repositories.LogActivityRepository) *LogActivityService {
	return &LogActivityService{Repo: repo}
}

// Record appends one audit entry. Only an empty aksi is rejected.
func (s *LogActivityService) Record(ctx context.Context, req *models.CreateLogRequest) (*models.LogActivity, error) {
	if strings.TrimSpace(req.Aksi) == "" {
		return nil, apperr.BadRequest("aksi is required")
	}
	return s.Repo.Create(ctx, req)
}

// GetByID fetches one audit record.
func (s *LogActivityService) GetByID(ctx context.Context, id int) (*models.LogActivity, error) {
	l, err := s.Repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("log activity not found")
		}
		return nil, err
	}
	return l, nil
}

// RecordAsync is the best-effort path used by handlers as a side effect:
// failures are logged and swallowed, never propagated to the caller.
func (s *LogActivityService) RecordAsync(idUser *int, aksi string, deskripsi, ipAddress *string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		_, err := s.Record(ctx, &models.CreateLogRequest{
			IDUser:    idUser,
			Aksi:      aksi,
			Deskripsi: deskripsi,
			IPAddress: ipAddress,
		})
		if err != nil {
			log.Printf("[LogActivity] failed to record %q: %v", aksi, err)
		}
	}()
}

func (s *LogActivityService) List(ctx context.Context, f models.LogFilter) ([]*models.LogActivity, int, error) {
	return s.Repo.List(ctx, f)
}

func (s *LogActivityService) Search(ctx context.Context, term string, page, limit int) ([]*models.LogActivity, int, error) {
	if strings.TrimSpace(term) == "" {
		return nil, 0, apperr.BadRequest("search term is required")
	}
	return s.Repo.Search(ctx, term, page, limit)
}

func (s *LogActivityService) ByUser(ctx context.Context, userID, page, limit int) ([]*models.LogActivity, int, error) {
	return s.Repo.ByUser(ctx, userID, page, limit)
}

func (s *LogActivityService) Statistics(ctx context.Context, startDate, endDate *time.Time) ([]models.LogStatistic, error) {
	return s.Repo.Statistics(ctx, startDate, endDate)
}

func (s *LogActivityService) Purge(ctx context.Context, days int) (int, error) {
	if days <= 0 {
		return 0, apperr.BadRequest("daysOld must be greater than zero")
	}
	return s.Repo.PurgeOlderThan(ctx, days)
}
