package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paramveer-prakash/career-sub001/internal/domain"
)

type fakeRow struct {
	raw []byte
	err error
}

func (f fakeRow) Scan(dest ...interface{}) error {
	if f.err != nil {
		return f.err
	}
	*(dest[0].(*[]byte)) = f.raw
	return nil
}

type fakePool struct {
	row     fakeRow
	gotSQL  string
	gotArgs []interface{}
}

func (p *fakePool) QueryRow(_ context.Context, sql string, args ...interface{}) pgx.Row {
	p.gotSQL = sql
	p.gotArgs = args
	return p.row
}

func TestResumesRepoFound(t *testing.T) {
	pool := &fakePool{row: fakeRow{raw: []byte(`{"id": 5, "name": "Linus", "email": "linus@example.com"}`)}}

	res := NewResumesRepo(pool).Fetch(context.Background(), "5", "ignored")

	require.Equal(t, domain.Found, res.Status)
	assert.Equal(t, "Linus", res.Resume.Name)
	assert.Equal(t, selectResume, pool.gotSQL)
	assert.Equal(t, []interface{}{"5"}, pool.gotArgs)
}

func TestResumesRepoNotFound(t *testing.T) {
	pool := &fakePool{row: fakeRow{err: pgx.ErrNoRows}}

	res := NewResumesRepo(pool).Fetch(context.Background(), "5", "")
	assert.Equal(t, domain.NotFound, res.Status)
}

func TestResumesRepoUnreachable(t *testing.T) {
	pool := &fakePool{row: fakeRow{err: errors.New("connection refused")}}
	assert.Equal(t, domain.Unreachable, NewResumesRepo(pool).Fetch(context.Background(), "5", "").Status)

	bad := &fakePool{row: fakeRow{raw: []byte(`{"skills": 3}`)}}
	assert.Equal(t, domain.Unreachable, NewResumesRepo(bad).Fetch(context.Background(), "5", "").Status)

	assert.Equal(t, domain.Unreachable, NewResumesRepo(nil).Fetch(context.Background(), "5", "").Status)
}
