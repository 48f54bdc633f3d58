package entity

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/doug-martin/goqu/v9"
	"github.com/stretchr/testify/assert"

	"gssb-library-backend/internal/domain"
)

var widgetSchema = Schema{
	Name:  "widget",
	Table: "widgets",
	Columns: []Column{
		{Name: "id"},
		{Name: "label", Contains: true},
		{Name: "active", Boolean: true},
	},
	NaturalKey: "id",
}

type widget struct {
	ID     string `db:"id"`
	Label  string `db:"label"`
	Active bool   `db:"active"`
}

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	return NewStore(db), mock, func() { db.Close() }
}

func TestStore_Get(t *testing.T) {
	store, mock, closeDB := newMockStore(t)
	defer closeDB()
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`SELECT "id", "label", "active" FROM "widgets" WHERE \("id" = \$1\)`).
			WithArgs("w1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "label", "active"}).
				AddRow("w1", "gadget", true))

		var w widget
		err := store.Get(ctx, widgetSchema, "w1", &w)
		assert.NoError(t, err)
		assert.Equal(t, widget{ID: "w1", Label: "gadget", Active: true}, w)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT "id", "label", "active" FROM "widgets"`).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		var w widget
		err := store.Get(ctx, widgetSchema, "missing", &w)
		var nf *domain.NotFoundError
		assert.True(t, errors.As(err, &nf))
		assert.Equal(t, "widget", nf.Entity)
	})
}

func TestStore_Find(t *testing.T) {
	store, mock, closeDB := newMockStore(t)
	defer closeDB()
	ctx := context.Background()

	mock.ExpectQuery(`SELECT "id", "label", "active" FROM "widgets"`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	var w widget
	found, err := store.Find(ctx, widgetSchema, "missing", &w)
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestStore_Update(t *testing.T) {
	store, mock, closeDB := newMockStore(t)
	defer closeDB()
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`UPDATE "widgets" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := store.Update(ctx, widgetSchema, "w1", map[string]any{"label": "renamed"})
		assert.NoError(t, err)
	})

	t.Run("NoRowMeansNotFound", func(t *testing.T) {
		mock.ExpectExec(`UPDATE "widgets" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := store.Update(ctx, widgetSchema, "missing", map[string]any{"label": "renamed"})
		var nf *domain.NotFoundError
		assert.True(t, errors.As(err, &nf))
	})
}

func TestStore_Read(t *testing.T) {
	store, mock, closeDB := newMockStore(t)
	defer closeDB()
	ctx := context.Background()

	t.Run("FilteredAndOrdered", func(t *testing.T) {
		mock.ExpectQuery(`SELECT "id", "label", "active" FROM "widgets" WHERE \("label" ILIKE \$1\) ORDER BY "id" ASC`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "label", "active"}).
				AddRow("w1", "gadget", true).
				AddRow("w2", "gadget deluxe", false))

		var widgets []widget
		count, err := store.Read(ctx, widgetSchema, Criteria{"label": "gadget"}, ReadOptions{}, &widgets)
		assert.NoError(t, err)
		assert.Equal(t, -1, count)
		assert.Len(t, widgets, 2)
		assert.Equal(t, "w1", widgets[0].ID)
	})

	t.Run("WithCount", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM "widgets"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))
		mock.ExpectQuery(`SELECT "id", "label", "active" FROM "widgets" .* LIMIT`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "label", "active"}).
				AddRow("w3", "thing", true))

		var widgets []widget
		count, err := store.Read(ctx, widgetSchema, nil, ReadOptions{Limit: 1, Offset: 2, ReturnCount: true}, &widgets)
		assert.NoError(t, err)
		assert.Equal(t, 7, count)
		assert.Len(t, widgets, 1)
	})

	t.Run("UnknownCriteriaIgnored", func(t *testing.T) {
		mock.ExpectQuery(`SELECT "id", "label", "active" FROM "widgets" ORDER BY "id" ASC`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "label", "active"}))

		var widgets []widget
		_, err := store.Read(ctx, widgetSchema, Criteria{"nosuchcolumn": "x"}, ReadOptions{}, &widgets)
		assert.NoError(t, err)
	})
}

func TestStore_Expressions(t *testing.T) {
	store, _, closeDB := newMockStore(t)
	defer closeDB()

	render := func(q Criteria) string {
		exps, err := store.Expressions(widgetSchema, q, "")
		assert.NoError(t, err)
		sql, _, err := goqu.Dialect("postgres").From("widgets").Where(exps...).ToSQL()
		assert.NoError(t, err)
		return sql
	}

	t.Run("ContainsBecomesSubstringMatch", func(t *testing.T) {
		assert.Contains(t, render(Criteria{"label": "gad"}), `ILIKE '%gad%'`)
	})

	t.Run("BooleanCoercion", func(t *testing.T) {
		assert.Contains(t, render(Criteria{"active": "true"}), `"active" IS TRUE`)
		assert.Contains(t, render(Criteria{"active": "0"}), `"active" IS FALSE`)
	})

	t.Run("BadBoolean", func(t *testing.T) {
		_, err := store.Expressions(widgetSchema, Criteria{"active": "maybe"}, "")
		assert.Error(t, err)
	})

	t.Run("QualifiedForJoins", func(t *testing.T) {
		exps, err := store.Expressions(widgetSchema, Criteria{"id": "w1"}, "w")
		assert.NoError(t, err)
		sql, _, err := goqu.Dialect("postgres").From("widgets").Where(exps...).ToSQL()
		assert.NoError(t, err)
		assert.Contains(t, sql, `"w"."id"`)
	})
}
