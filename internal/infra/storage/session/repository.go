package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-SessionService/internal/domain"
	"github.com/m04kA/SMC-SessionService/pkg/psqlbuilder"
)

const table = "sessions"

var selectColumns = []string{
	"id",
	"user_id",
	"mode",
	"session_date",
	"start_time",
	"duration_hours",
	"end_time",
	"selected_activity_ids",
	"custom_activities",
	"trainer_choice",
	"trainer_id",
	"notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с сессиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сессий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую сессию и заполняет ID и метки времени
func (r *Repository) Create(ctx context.Context, s *domain.Session) (*domain.Session, error) {
	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"user_id",
			"mode",
			"session_date",
			"start_time",
			"duration_hours",
			"end_time",
			"selected_activity_ids",
			"custom_activities",
			"trainer_choice",
			"trainer_id",
			"notes",
		).
		Values(
			s.UserID,
			s.Mode,
			s.Date,
			s.StartTime,
			s.DurationHours,
			s.EndTime,
			pq.Array(s.SelectedActivityIDs),
			pq.Array(s.CustomActivities),
			s.TrainerChoice,
			s.TrainerID,
			s.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

// GetByID получает сессию по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Session, error) {
	query, args, err := psqlbuilder.Select(selectColumns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanSession(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan session: %v", ErrScanRow, err)
	}

	return s, nil
}

// GetByUserID получает сессии пользователя, сначала ближайшие по дате
func (r *Repository) GetByUserID(ctx context.Context, userID int64) ([]*domain.Session, error) {
	query, args, err := psqlbuilder.Select(selectColumns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("session_date DESC, start_time DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	sessions := make([]*domain.Session, 0)
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByUserID - scan session: %v", ErrScanRow, err)
		}
		sessions = append(sessions, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - rows error: %v", ErrScanRow, err)
	}

	return sessions, nil
}

// UpdateNotes перезаписывает заметки сессии (вместе с блоком маршрута)
func (r *Repository) UpdateNotes(ctx context.Context, id int64, notes string) error {
	query, args, err := psqlbuilder.Update(table).
		Set("notes", notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateNotes - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateNotes - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateNotes - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSessionNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSession(row rowScanner) (*domain.Session, error) {
	var (
		s                    domain.Session
		activityIDs          pq.Int64Array
		customActivities     pq.StringArray
		trainerID            sql.NullInt64
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.Mode,
		&s.Date,
		&s.StartTime,
		&s.DurationHours,
		&s.EndTime,
		&activityIDs,
		&customActivities,
		&s.TrainerChoice,
		&trainerID,
		&s.Notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.SelectedActivityIDs = []int64(activityIDs)
	if s.SelectedActivityIDs == nil {
		s.SelectedActivityIDs = []int64{}
	}
	s.CustomActivities = []string(customActivities)
	if s.CustomActivities == nil {
		s.CustomActivities = []string{}
	}
	if trainerID.Valid {
		id := trainerID.Int64
		s.TrainerID = &id
	}
	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}
