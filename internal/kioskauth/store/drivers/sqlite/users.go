package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/posturekit/kioskauth/internal/kioskauth/domain"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, username, phone_number, password_hash, user_type,
	school_id, organization_id, student_name, student_grade, student_class,
	student_number, year, created_at, updated_at`

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) GetUserByPhone(ctx context.Context, phoneNumber string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE phone_number = ?`, phoneNumber)
	return scanUser(row)
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (
			id, username, phone_number, password_hash, user_type,
			school_id, organization_id, student_name, student_grade,
			student_class, student_number, year, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Username, u.PhoneNumber, u.PasswordHash, u.UserType,
		mapOptionalString(u.SchoolID), mapOptionalString(u.Organization),
		mapOptionalString(u.StudentName), mapOptionalInt(u.StudentGrade),
		mapOptionalInt(u.StudentClass), mapOptionalInt(u.StudentNumber),
		mapOptionalInt(u.Year), u.CreatedAt.UTC(), u.UpdatedAt.UTC(),
	)
	return err
}

func (r *usersRepo) UpdateUserType(ctx context.Context, userID, userType string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users SET user_type = ?, updated_at = ? WHERE id = ?`,
		userType, time.Now().UTC(), userID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func scanUser(row *sql.Row) (domain.User, error) {
	var (
		u                                   domain.User
		schoolID, organization, studentName sql.NullString
		grade, class, number, year          sql.NullInt64
	)
	err := row.Scan(
		&u.ID, &u.Username, &u.PhoneNumber, &u.PasswordHash, &u.UserType,
		&schoolID, &organization, &studentName, &grade, &class, &number, &year,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}

	u.SchoolID = mapNullStringPtr(schoolID)
	u.Organization = mapNullStringPtr(organization)
	u.StudentName = mapNullStringPtr(studentName)
	u.StudentGrade = mapNullIntPtr(grade)
	u.StudentClass = mapNullIntPtr(class)
	u.StudentNumber = mapNullIntPtr(number)
	u.Year = mapNullIntPtr(year)
	return u, nil
}
