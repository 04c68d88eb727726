package suggestion

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/zeromicro/go-zero/core/stores/builder"
	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/sqlc"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
	"github.com/zeromicro/go-zero/core/stringx"
)

var (
	suggestionsFieldNames        = builder.RawFieldNames(&Suggestions{})
	suggestionsRows              = strings.Join(suggestionsFieldNames, ",")
	suggestionsRowsExpectAutoSet = strings.Join(stringx.Remove(suggestionsFieldNames, "`create_time`", "`update_time`"), ",")

	cacheSuggestionsIdPrefix = "cache:suggestions:id:"
)

var _ SuggestionsModel = (*customSuggestionsModel)(nil)

type (
	// SuggestionsModel is an interface to be customized, add more methods here,
	// and implement the added methods in customSuggestionsModel.
	//
	// Records are write-once: there is no Update on purpose. Every read and
	// delete beyond FindOne is scoped to the owning user; a row owned by
	// someone else behaves exactly like a missing row.
	SuggestionsModel interface {
		Insert(ctx context.Context, data *Suggestions) (sql.Result, error)
		FindOne(ctx context.Context, id int64) (*Suggestions, error)
		FindOneByIdUserId(ctx context.Context, id, userId int64) (*Suggestions, error)
		FindByUserId(ctx context.Context, userId int64) ([]*Suggestions, error)
		DeleteByIdUserId(ctx context.Context, id, userId int64) error
		CountByUserId(ctx context.Context, userId int64) (int64, error)
		FindPruneIds(ctx context.Context, userId, keep int64) ([]int64, error)
	}

	customSuggestionsModel struct {
		sqlc.CachedConn
		table string
	}

	Suggestions struct {
		Id             int64          `db:"id"`
		UserId         int64          `db:"user_id"`
		Query          string         `db:"query"`
		AnalysisResult sql.NullString `db:"analysis_result"`
		Recommendation sql.NullString `db:"recommendation"`
		ProductData    string         `db:"product_data"`
		Success        int64          `db:"success"`
		CreateTime     time.Time      `db:"create_time"`
	}
)

// NewSuggestionsModel returns a model for the database table.
func NewSuggestionsModel(conn sqlx.SqlConn, c cache.CacheConf, opts ...cache.Option) SuggestionsModel {
	return &customSuggestionsModel{
		CachedConn: sqlc.NewConn(conn, c, opts...),
		table:      "`suggestions`",
	}
}

func (m *customSuggestionsModel) Insert(ctx context.Context, data *Suggestions) (sql.Result, error) {
	idKey := fmt.Sprintf("%s%v", cacheSuggestionsIdPrefix, data.Id)
	return m.ExecCtx(ctx, func(ctx context.Context, conn sqlx.SqlConn) (sql.Result, error) {
		query := fmt.Sprintf("insert into %s (%s) values (?, ?, ?, ?, ?, ?, ?)", m.table, suggestionsRowsExpectAutoSet)
		return conn.ExecCtx(ctx, query, data.Id, data.UserId, data.Query, data.AnalysisResult, data.Recommendation, data.ProductData, data.Success)
	}, idKey)
}

func (m *customSuggestionsModel) FindOne(ctx context.Context, id int64) (*Suggestions, error) {
	idKey := fmt.Sprintf("%s%v", cacheSuggestionsIdPrefix, id)
	var resp Suggestions
	err := m.QueryRowCtx(ctx, &resp, idKey, func(ctx context.Context, conn sqlx.SqlConn, v any) error {
		query := fmt.Sprintf("select %s from %s where `id` = ? limit 1", suggestionsRows, m.table)
		return conn.QueryRowCtx(ctx, v, query, id)
	})
	switch err {
	case nil:
		return &resp, nil
	case sqlc.ErrNotFound:
		return nil, ErrNotFound
	default:
		return nil, err
	}
}

// suggestionFinder is the read seam the owner-scoped lookups go through.
type suggestionFinder interface {
	FindOne(ctx context.Context, id int64) (*Suggestions, error)
}

// findOneScoped hides rows owned by someone else behind ErrNotFound,
// 不泄露他人记录的存在性
func findOneScoped(ctx context.Context, finder suggestionFinder, id, userId int64) (*Suggestions, error) {
	data, err := finder.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if data.UserId != userId {
		return nil, ErrNotFound
	}
	return data, nil
}

func (m *customSuggestionsModel) FindOneByIdUserId(ctx context.Context, id, userId int64) (*Suggestions, error) {
	return findOneScoped(ctx, m, id, userId)
}

func (m *customSuggestionsModel) FindByUserId(ctx context.Context, userId int64) ([]*Suggestions, error) {
	var resp []*Suggestions
	query := fmt.Sprintf("select %s from %s where `user_id` = ? order by `create_time` desc, `id` desc", suggestionsRows, m.table)
	if err := m.QueryRowsNoCacheCtx(ctx, &resp, query, userId); err != nil {
		return nil, err
	}
	return resp, nil
}

func (m *customSuggestionsModel) DeleteByIdUserId(ctx context.Context, id, userId int64) error {
	if _, err := findOneScoped(ctx, m, id, userId); err != nil {
		return err
	}

	idKey := fmt.Sprintf("%s%v", cacheSuggestionsIdPrefix, id)
	_, err := m.ExecCtx(ctx, func(ctx context.Context, conn sqlx.SqlConn) (sql.Result, error) {
		query := fmt.Sprintf("delete from %s where `id` = ? and `user_id` = ?", m.table)
		return conn.ExecCtx(ctx, query, id, userId)
	}, idKey)
	return err
}

func (m *customSuggestionsModel) CountByUserId(ctx context.Context, userId int64) (int64, error) {
	var count int64
	query := fmt.Sprintf("select count(*) from %s where `user_id` = ?", m.table)
	if err := m.QueryRowNoCacheCtx(ctx, &count, query, userId); err != nil {
		return 0, err
	}
	return count, nil
}

// FindPruneIds returns ids beyond the newest `keep` records for a user,
// oldest-first, capped per call so the prune task stays bounded.
func (m *customSuggestionsModel) FindPruneIds(ctx context.Context, userId, keep int64) ([]int64, error) {
	var ids []int64
	query := fmt.Sprintf("select `id` from %s where `user_id` = ? order by `create_time` desc, `id` desc limit ?, 1000", m.table)
	if err := m.QueryRowsNoCacheCtx(ctx, &ids, query, userId, keep); err != nil {
		return nil, err
	}
	return ids, nil
}
