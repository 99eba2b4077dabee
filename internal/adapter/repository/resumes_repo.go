package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"

	"github.com/paramveer-prakash/career-sub001/internal/domain"
	"github.com/paramveer-prakash/career-sub001/internal/model"
)

// rowQuerier is the slice of *pgxpool.Pool the repository needs.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

const selectResume = `SELECT document::text FROM resumes WHERE id::text = $1 LIMIT 1`

// ResumesRepo reads resume documents from the resumes table. It is
// read-only; rows are never written by this service.
type ResumesRepo struct {
	pool rowQuerier
}

func NewResumesRepo(pool rowQuerier) *ResumesRepo {
	return &ResumesRepo{pool: pool}
}

// Fetch ignores the bearer token: the database is trusted infrastructure
// and access control stays with the resume backend.
func (r *ResumesRepo) Fetch(ctx context.Context, resumeID, _ string) domain.FetchResult {
	if r == nil || r.pool == nil {
		return domain.FetchResult{Status: domain.Unreachable, Err: errors.New("resume database not configured")}
	}

	var raw []byte
	err := r.pool.QueryRow(ctx, selectResume, resumeID).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.FetchResult{Status: domain.NotFound, Err: fmt.Errorf("resume %s not found", resumeID)}
	}
	if err != nil {
		return domain.FetchResult{Status: domain.Unreachable, Err: fmt.Errorf("query resume: %w", err)}
	}

	res, err := model.Decode(raw)
	if err != nil {
		return domain.FetchResult{Status: domain.Unreachable, Err: err}
	}
	return domain.FoundResult(res)
}
