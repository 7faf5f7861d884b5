package store

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"sitefactory/internal/types"
)

// ErrNotFound reports an unknown project id or slug. It is deliberately
// distinct from transient failures so handlers can answer 404 vs 500.
var ErrNotFound = errors.New("project not found")

const projectColumns = `id, slug, site_type, language, status, deep_answers,
structured_profile, selected_inspirations, generated_images, created_at, updated_at`

// ProjectStore persists wizard projects in a single table. The profile,
// inspiration and gallery payloads live in JSON text columns; the store is
// the only place that (de)serializes them.
type ProjectStore struct {
	db *pgxpool.Pool
}

func NewProjectStore(db *pgxpool.Pool) *ProjectStore {
	return &ProjectStore{db: db}
}

const slugAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
const slugLength = 12

// newSlug generates the opaque public identifier for a project.
func newSlug() (string, error) {
	var b strings.Builder
	b.Grow(slugLength)
	for i := 0; i < slugLength; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(slugAlphabet))))
		if err != nil {
			return "", err
		}
		b.WriteByte(slugAlphabet[n.Int64()])
	}
	return b.String(), nil
}

// Create inserts a fresh draft. Slug collisions are vanishingly rare but the
// unique index makes them loud, so retry a few times before giving up.
func (s *ProjectStore) Create(ctx context.Context, siteType types.SiteType, language types.Language) (*types.Project, error) {
	for i := 0; i < 5; i++ {
		slug, err := newSlug()
		if err != nil {
			return nil, err
		}

		const q = `
insert into projects (slug, site_type, language, status)
values ($1, $2, $3, $4)
returning ` + projectColumns + `;`

		p, err := scanProject(s.db.QueryRow(ctx, q, slug, siteType, language, types.StatusDraft))
		if err == nil {
			return p, nil
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			continue
		}
		return nil, err
	}
	return nil, fmt.Errorf("failed to generate a unique project slug")
}

// Patch updates exactly the fields present in the patch; a nil field means
// "leave unchanged", matching the PATCH merge-by-presence contract.
type Patch struct {
	DeepAnswers          *string
	StructuredProfile    *types.StructuredProfile
	SelectedInspirations *[]types.Inspiration
	GeneratedImages      *[]types.GeneratedImage
	Status               *types.ProjectStatus
}

func (s *ProjectStore) Patch(ctx context.Context, id int64, patch Patch) (*types.Project, error) {
	set := []string{"updated_at = now()"}
	args := []any{id}

	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.DeepAnswers != nil {
		add("deep_answers", *patch.DeepAnswers)
	}
	if patch.StructuredProfile != nil {
		blob, err := json.Marshal(patch.StructuredProfile)
		if err != nil {
			return nil, err
		}
		add("structured_profile", string(blob))
	}
	if patch.SelectedInspirations != nil {
		blob, err := json.Marshal(*patch.SelectedInspirations)
		if err != nil {
			return nil, err
		}
		add("selected_inspirations", string(blob))
	}
	if patch.GeneratedImages != nil {
		blob, err := json.Marshal(*patch.GeneratedImages)
		if err != nil {
			return nil, err
		}
		add("generated_images", string(blob))
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}

	q := "update projects set " + strings.Join(set, ", ") +
		" where id = $1 returning " + projectColumns + ";"

	p, err := scanProject(s.db.QueryRow(ctx, q, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

func (s *ProjectStore) GetByID(ctx context.Context, id int64) (*types.Project, error) {
	const q = `select ` + projectColumns + ` from projects where id = $1;`
	p, err := scanProject(s.db.QueryRow(ctx, q, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

func (s *ProjectStore) GetBySlug(ctx context.Context, slug string) (*types.Project, error) {
	const q = `select ` + projectColumns + ` from projects where slug = $1;`
	p, err := scanProject(s.db.QueryRow(ctx, q, slug))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

func scanProject(row pgx.Row) (*types.Project, error) {
	var (
		p            types.Project
		deepAnswers  *string
		profileBlob  *string
		selectedBlob *string
		imagesBlob   *string
		createdAt    time.Time
		updatedAt    time.Time
	)

	err := row.Scan(&p.ID, &p.Slug, &p.SiteType, &p.Language, &p.Status,
		&deepAnswers, &profileBlob, &selectedBlob, &imagesBlob, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	p.DeepAnswers = deepAnswers
	p.CreatedAt = createdAt
	p.UpdatedAt = updatedAt

	// Corrupt persisted JSON is an unexpected condition and propagates,
	// unlike the expected degraded-mode paths elsewhere.
	if profileBlob != nil {
		var sp types.StructuredProfile
		if err := json.Unmarshal([]byte(*profileBlob), &sp); err != nil {
			return nil, fmt.Errorf("decode structured_profile for project %d: %w", p.ID, err)
		}
		p.StructuredProfile = &sp
	}
	if selectedBlob != nil {
		if err := json.Unmarshal([]byte(*selectedBlob), &p.SelectedInspirations); err != nil {
			return nil, fmt.Errorf("decode selected_inspirations for project %d: %w", p.ID, err)
		}
	}
	if imagesBlob != nil {
		if err := json.Unmarshal([]byte(*imagesBlob), &p.GeneratedImages); err != nil {
			return nil, fmt.Errorf("decode generated_images for project %d: %w", p.ID, err)
		}
	}

	return &p, nil
}
