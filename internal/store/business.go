package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/site-importer/internal/merge"
	"github.com/jonathan/site-importer/internal/types"
)

// Business represents a business row
type Business struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Website string    `json:"website,omitempty"`
}

// GetBusinessByID retrieves a business by its UUID
func (s *Store) GetBusinessByID(ctx context.Context, id uuid.UUID) (*Business, error) {
	var b Business
	var website *string
	err := s.pool.QueryRow(ctx,
		`SELECT id, name, website FROM businesses WHERE id = $1`,
		id,
	).Scan(&b.ID, &b.Name, &website)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get business: %w", err)
	}
	if website != nil {
		b.Website = *website
	}
	return &b, nil
}

// LoadBusinessRecord assembles the curated snapshot the merge engine
// dedupes against: current services, FAQs and contact fields.
func (s *Store) LoadBusinessRecord(ctx context.Context, businessID uuid.UUID) (*types.ExistingBusinessRecord, error) {
	record := &types.ExistingBusinessRecord{}

	rows, err := s.pool.Query(ctx,
		`SELECT name, COALESCE(description, ''), COALESCE(price, '')
		 FROM services WHERE business_id = $1 ORDER BY created_at ASC`,
		businessID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load services: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var svc types.ExistingService
		if err := rows.Scan(&svc.Name, &svc.Description, &svc.Price); err != nil {
			return nil, fmt.Errorf("failed to scan service: %w", err)
		}
		record.Services = append(record.Services, svc)
	}
	rows.Close()

	rows, err = s.pool.Query(ctx,
		`SELECT question, answer FROM faqs WHERE business_id = $1 ORDER BY created_at ASC`,
		businessID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load faqs: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var faq types.ExistingFaq
		if err := rows.Scan(&faq.Question, &faq.Answer); err != nil {
			return nil, fmt.Errorf("failed to scan faq: %w", err)
		}
		record.Faqs = append(record.Faqs, faq)
	}
	rows.Close()

	var phone, email, address *string
	var hours map[string]string
	err = s.pool.QueryRow(ctx,
		`SELECT phone, email, address, hours FROM businesses WHERE id = $1`,
		businessID,
	).Scan(&phone, &email, &address, &hours)
	if err != nil && err != pgx.ErrNoRows {
		return nil, fmt.Errorf("failed to load contact info: %w", err)
	}
	if phone != nil {
		record.Contact.Phone = *phone
	}
	if email != nil {
		record.Contact.Email = *email
	}
	if address != nil {
		record.Contact.Address = *address
	}
	record.Contact.Hours = hours

	return record, nil
}

// ApplyMergeResult persists the additive half of a merge: new services
// and FAQs are inserted, filled contact fields are written, and the
// provenance record is appended. Duplicates and skipped fields are
// never written; the curated record only grows.
func (s *Store) ApplyMergeResult(ctx context.Context, businessID, runID uuid.UUID, result *merge.ProcessResult) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, svc := range result.Services.ToAdd {
		_, err := tx.Exec(ctx,
			`INSERT INTO services (business_id, name, description, price, source_url, import_run_id)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			businessID, svc.Name, svc.Description, svc.Price, svc.SourcePageURL, runID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert service %q: %w", svc.Name, err)
		}
	}

	for _, faq := range result.Faqs.ToAdd {
		_, err := tx.Exec(ctx,
			`INSERT INTO faqs (business_id, question, answer, source_url, import_run_id)
			 VALUES ($1, $2, $3, $4, $5)`,
			businessID, faq.Question, faq.Answer, faq.SourcePageURL, runID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert faq %q: %w", faq.Question, err)
		}
	}

	if err := applyContactUpdates(ctx, tx, businessID, result.Contact.Updates); err != nil {
		return err
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO import_provenance (business_id, run_id, source, scan_date, source_urls, items_added)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		businessID, runID, result.Provenance.Source, result.Provenance.ScanDate,
		result.Provenance.SourceURLs, result.Provenance.ItemsAdded,
	)
	if err != nil {
		return fmt.Errorf("failed to insert provenance: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit merge: %w", err)
	}
	return nil
}

func applyContactUpdates(ctx context.Context, tx pgx.Tx, businessID uuid.UUID, updates types.ContactUpdates) error {
	if updates.Phone != "" {
		if _, err := tx.Exec(ctx,
			`UPDATE businesses SET phone = $1, updated_at = NOW() WHERE id = $2 AND (phone IS NULL OR phone = '')`,
			updates.Phone, businessID,
		); err != nil {
			return fmt.Errorf("failed to update phone: %w", err)
		}
	}
	if updates.Email != "" {
		if _, err := tx.Exec(ctx,
			`UPDATE businesses SET email = $1, updated_at = NOW() WHERE id = $2 AND (email IS NULL OR email = '')`,
			updates.Email, businessID,
		); err != nil {
			return fmt.Errorf("failed to update email: %w", err)
		}
	}
	if updates.Address != "" {
		if _, err := tx.Exec(ctx,
			`UPDATE businesses SET address = $1, updated_at = NOW() WHERE id = $2 AND (address IS NULL OR address = '')`,
			updates.Address, businessID,
		); err != nil {
			return fmt.Errorf("failed to update address: %w", err)
		}
	}
	if len(updates.Hours) > 0 {
		if _, err := tx.Exec(ctx,
			`UPDATE businesses SET hours = $1, updated_at = NOW() WHERE id = $2 AND (hours IS NULL OR hours = '{}'::jsonb)`,
			updates.Hours, businessID,
		); err != nil {
			return fmt.Errorf("failed to update hours: %w", err)
		}
	}
	return nil
}
