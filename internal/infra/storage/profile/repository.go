package profile

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/padelio/PDL-BookingService/internal/domain"
	"github.com/padelio/PDL-BookingService/pkg/dbmetrics"
	"github.com/padelio/PDL-BookingService/pkg/psqlbuilder"
)

var profileColumns = []string{
	"id",
	"username",
	"first_name",
	"last_name",
	"email",
	"phone",
	"role",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий профилей пользователей клуба
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория профилей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает профиль пользователя по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Profile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(profileColumns...).
		From("profiles").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	profile, err := scanProfileRow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan profile: %v", ErrScanRow, err)
	}

	return profile, nil
}

// GetByIDs получает профили пользователей по списку ID
// Отсутствующие профили не считаются ошибкой - вызывающий сверяет список сам
func (r *Repository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Profile, error) {
	if len(ids) == 0 {
		return []*domain.Profile{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(profileColumns...).
		From("profiles").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	profiles := make([]*domain.Profile, 0, len(ids))

	for rows.Next() {
		var profile domain.Profile
		var firstName, lastName, email, phone sql.NullString
		var createdAt, updatedAt sql.NullTime

		err = rows.Scan(
			&profile.ID,
			&profile.Username,
			&firstName,
			&lastName,
			&email,
			&phone,
			&profile.Role,
			&profile.IsActive,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: GetByIDs - scan row: %v", ErrScanRow, err)
		}

		profile.FirstName = firstName.String
		profile.LastName = lastName.String
		profile.Email = email.String
		profile.Phone = phone.String
		profile.CreatedAt = createdAt.Time
		profile.UpdatedAt = updatedAt.Time

		profiles = append(profiles, &profile)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - rows error: %v", ErrScanRow, err)
	}

	return profiles, nil
}

func scanProfileRow(row *sql.Row) (*domain.Profile, error) {
	var profile domain.Profile
	var firstName, lastName, email, phone sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&profile.ID,
		&profile.Username,
		&firstName,
		&lastName,
		&email,
		&phone,
		&profile.Role,
		&profile.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	profile.FirstName = firstName.String
	profile.LastName = lastName.String
	profile.Email = email.String
	profile.Phone = phone.String
	profile.CreatedAt = createdAt.Time
	profile.UpdatedAt = updatedAt.Time

	return &profile, nil
}
