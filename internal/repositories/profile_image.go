package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/expertise-hunt/internal/models"
)

// ProfileImageRepository stores one profile image per account.
type ProfileImageRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewProfileImageRepository(db *sqlx.DB, txGetter TxGetter) *ProfileImageRepository {
	return &ProfileImageRepository{db: db, txGetter: txGetter}
}

// Save inserts or replaces the account's image.
func (r *ProfileImageRepository) Save(ctx context.Context, img *models.ProfileImageDB) error {
	query := `
		INSERT INTO profile_images (account_id, image_ref, content_type, data, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (account_id)
		DO UPDATE SET image_ref = EXCLUDED.image_ref, content_type = EXCLUDED.content_type,
			data = EXCLUDED.data, updated_at = EXCLUDED.updated_at
	`
	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query,
		img.AccountID, img.ImageRef, img.ContentType, img.Data, img.UpdatedAt)
	logQuery(query, []any{img.AccountID, img.ImageRef, img.ContentType, len(img.Data)}, img.ImageRef, err)
	return translate(err)
}

// Get returns the account's image, or ErrNotFound.
func (r *ProfileImageRepository) Get(ctx context.Context, accountID uuid.UUID) (*models.ProfileImageDB, error) {
	query := `
		SELECT account_id, image_ref, content_type, data, updated_at
		FROM profile_images
		WHERE account_id = $1
	`
	var img models.ProfileImageDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &img, query, accountID)
	logQuery(query, []any{accountID}, img.ImageRef, err)
	if err != nil {
		return nil, translate(err)
	}
	if err := validateRecord(&img); err != nil {
		return nil, err
	}
	return &img, nil
}

// Delete removes the account's image. Deleting a missing image is not an error.
func (r *ProfileImageRepository) Delete(ctx context.Context, accountID uuid.UUID) error {
	query := `DELETE FROM profile_images WHERE account_id = $1`
	_, err := execAffected(ctx, executor(ctx, r.db, r.txGetter), query, accountID)
	return err
}
