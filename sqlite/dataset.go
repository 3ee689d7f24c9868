package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cocosearch/coco"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ coco.DatasetStore = (*DatasetStore)(nil)

// Snapshot describes the stored dataset.
type Snapshot struct {
	ID          string
	ImagesRoot  string
	Fingerprint string
	CreatedAt   time.Time
}

// DatasetStore implements coco.DatasetStore using SQLite.
// It holds at most one snapshot; saving replaces the previous one.
type DatasetStore struct {
	db *DB
}

// NewDatasetStore creates a new DatasetStore.
func NewDatasetStore(db *DB) *DatasetStore {
	return &DatasetStore{db: db}
}

// SaveDataset validates ds and replaces the stored snapshot in one transaction.
func (s *DatasetStore) SaveDataset(ctx context.Context, ds *coco.Dataset) error {
	if err := ds.Validate(); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Cascades to every table row of the old snapshot.
	if _, err := tx.ExecContext(ctx, `DELETE FROM snapshots`); err != nil {
		return fmt.Errorf("failed to clear snapshot: %w", err)
	}

	id := uuid.New().String()
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO snapshots (id, images_root, fingerprint, created_at)
		VALUES (?, ?, ?, ?)
	`, id, ds.ImagesRoot, ds.Fingerprint, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("failed to insert snapshot: %w", err)
	}

	if err := insertRows(ctx, tx, `
		INSERT INTO categories (snapshot_id, position, id, super_category, name) VALUES (?, ?, ?, ?, ?)
	`, len(ds.Categories), func(i int) []any {
		c := ds.Categories[i]
		return []any{id, i, c.ID, c.SuperCategory, c.Name}
	}); err != nil {
		return fmt.Errorf("failed to insert categories: %w", err)
	}

	if err := insertRows(ctx, tx, `
		INSERT INTO images (snapshot_id, position, id, file_name, coco_url, width, height) VALUES (?, ?, ?, ?, ?, ?, ?)
	`, len(ds.Images), func(i int) []any {
		img := ds.Images[i]
		return []any{id, i, img.ID, img.FileName, img.CocoURL, img.Width, img.Height}
	}); err != nil {
		return fmt.Errorf("failed to insert images: %w", err)
	}

	if err := insertRows(ctx, tx, `
		INSERT INTO captions (snapshot_id, position, image_id, caption) VALUES (?, ?, ?, ?)
	`, len(ds.Captions), func(i int) []any {
		c := ds.Captions[i]
		return []any{id, i, c.ImageID, c.Caption}
	}); err != nil {
		return fmt.Errorf("failed to insert captions: %w", err)
	}

	if err := insertRows(ctx, tx, `
		INSERT INTO instances (snapshot_id, position, image_id, category_id) VALUES (?, ?, ?, ?)
	`, len(ds.Instances), func(i int) []any {
		in := ds.Instances[i]
		return []any{id, i, in.ImageID, in.CategoryID}
	}); err != nil {
		return fmt.Errorf("failed to insert instances: %w", err)
	}

	return tx.Commit()
}

// Snapshot returns the stored snapshot metadata.
// Returns ENOTFOUND if no snapshot has been saved.
func (s *DatasetStore) Snapshot(ctx context.Context) (*Snapshot, error) {
	var snap Snapshot
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, images_root, fingerprint, created_at
		FROM snapshots
		ORDER BY created_at DESC
		LIMIT 1
	`).Scan(&snap.ID, &snap.ImagesRoot, &snap.Fingerprint, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, coco.Errorf(coco.ENOTFOUND, "no dataset snapshot found")
	}
	if err != nil {
		return nil, err
	}

	snap.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

// Fingerprint returns the fingerprint of the stored snapshot.
func (s *DatasetStore) Fingerprint(ctx context.Context) (string, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return "", err
	}
	return snap.Fingerprint, nil
}

// LoadDataset rebuilds the stored dataset with every table in source order.
func (s *DatasetStore) LoadDataset(ctx context.Context) (*coco.Dataset, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	ds := &coco.Dataset{
		ImagesRoot:  snap.ImagesRoot,
		Fingerprint: snap.Fingerprint,
		Categories:  []coco.Category{},
		Images:      []coco.Image{},
		Captions:    []coco.Caption{},
		Instances:   []coco.Instance{},
	}

	if err := s.query(ctx, `SELECT id, super_category, name FROM categories WHERE snapshot_id = ? ORDER BY position`, snap.ID,
		func(rows *sql.Rows) error {
			var c coco.Category
			if err := rows.Scan(&c.ID, &c.SuperCategory, &c.Name); err != nil {
				return err
			}
			ds.Categories = append(ds.Categories, c)
			return nil
		}); err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	if err := s.query(ctx, `SELECT id, file_name, coco_url, width, height FROM images WHERE snapshot_id = ? ORDER BY position`, snap.ID,
		func(rows *sql.Rows) error {
			var img coco.Image
			if err := rows.Scan(&img.ID, &img.FileName, &img.CocoURL, &img.Width, &img.Height); err != nil {
				return err
			}
			ds.Images = append(ds.Images, img)
			return nil
		}); err != nil {
		return nil, fmt.Errorf("failed to load images: %w", err)
	}

	if err := s.query(ctx, `SELECT image_id, caption FROM captions WHERE snapshot_id = ? ORDER BY position`, snap.ID,
		func(rows *sql.Rows) error {
			var c coco.Caption
			if err := rows.Scan(&c.ImageID, &c.Caption); err != nil {
				return err
			}
			ds.Captions = append(ds.Captions, c)
			return nil
		}); err != nil {
		return nil, fmt.Errorf("failed to load captions: %w", err)
	}

	if err := s.query(ctx, `SELECT image_id, category_id FROM instances WHERE snapshot_id = ? ORDER BY position`, snap.ID,
		func(rows *sql.Rows) error {
			var in coco.Instance
			if err := rows.Scan(&in.ImageID, &in.CategoryID); err != nil {
				return err
			}
			ds.Instances = append(ds.Instances, in)
			return nil
		}); err != nil {
		return nil, fmt.Errorf("failed to load instances: %w", err)
	}

	return ds, nil
}

// query runs a snapshot-scoped query and calls scan for every row.
func (s *DatasetStore) query(ctx context.Context, query, snapshotID string, scan func(*sql.Rows) error) error {
	rows, err := s.db.QueryContext(ctx, query, snapshotID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}
