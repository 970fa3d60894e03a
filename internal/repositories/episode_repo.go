package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/bionicotaku/lingo-services-clips/internal/models/po"
	"github.com/bionicotaku/lingo-services-clips/internal/repositories/mappers"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	episodeColumns   = `id, title, air_date`
	insertEpisodeSQL = `INSERT INTO clips.episodes (id, title, air_date) VALUES ($1, $2, $3)`
	getEpisodeSQL    = `SELECT ` + episodeColumns + ` FROM clips.episodes WHERE id = $1`
	updateEpisodeSQL = `UPDATE clips.episodes SET title = $2, air_date = $3, updated_at = now() WHERE id = $1`
)

// EpisodeRepository 基于 PostgreSQL 的节目仓储。
// 并发更新同一 ID 时以行锁串行化，最后写入者生效。
type EpisodeRepository struct {
	db  DB
	tx  txmanager.Manager
	log *log.Helper
}

// NewEpisodeRepository 构造节目仓储。
func NewEpisodeRepository(db DB, tx txmanager.Manager, logger log.Logger) *EpisodeRepository {
	return &EpisodeRepository{
		db:  db,
		tx:  tx,
		log: log.NewHelper(logger),
	}
}

// Create 插入节目并返回其 ID；ID 已存在或已退役时返回 Conflict。
func (r *EpisodeRepository) Create(ctx context.Context, ep *po.Episode) (uuid.UUID, error) {
	row := mappers.EpisodeToRow(ep)
	err := insertOnce(ctx, r.tx, r.db, "create episode", row.ID, func(ctx context.Context, exec DB) error {
		_, err := exec.Exec(ctx, insertEpisodeSQL, row.ID, row.Title, row.AirDate)
		return err
	})
	if err != nil {
		logFailure(ctx, r.log, err, "create episode failed: id=%s", row.ID)
		return uuid.Nil, err
	}
	r.log.WithContext(ctx).Infof("episode created: id=%s title=%s", row.ID, row.Title)
	return row.ID, nil
}

// Get 按 ID 查询节目。
func (r *EpisodeRepository) Get(ctx context.Context, id uuid.UUID) (*po.Episode, error) {
	row, err := scanEpisode(r.db.QueryRow(ctx, getEpisodeSQL, id))
	if err != nil {
		err = classify("get episode", err)
		logFailure(ctx, r.log, err, "get episode failed: id=%s", id)
		return nil, err
	}
	ep, err := mappers.EpisodeFromRow(row)
	if err != nil {
		return nil, NewError(KindUnknown, "get episode", err.Error())
	}
	return ep, nil
}

// List 按播出日期区间过滤，按播出日期与 ID 升序返回。
func (r *EpisodeRepository) List(ctx context.Context, filter po.EpisodeFilter) ([]*po.Episode, error) {
	var (
		conds []string
		args  []any
	)
	if filter.From != nil {
		args = append(args, filter.From.Time())
		conds = append(conds, fmt.Sprintf("air_date >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, filter.To.Time())
		conds = append(conds, fmt.Sprintf("air_date < $%d", len(args)))
	}
	query := `SELECT ` + episodeColumns + ` FROM clips.episodes`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY air_date, id"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		err = classify("list episodes", err)
		logFailure(ctx, r.log, err, "list episodes failed")
		return nil, err
	}
	defer rows.Close()

	episodes := make([]*po.Episode, 0)
	for rows.Next() {
		row, err := scanEpisode(rows)
		if err != nil {
			return nil, classify("list episodes", err)
		}
		ep, err := mappers.EpisodeFromRow(row)
		if err != nil {
			return nil, NewError(KindUnknown, "list episodes", err.Error())
		}
		episodes = append(episodes, ep)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list episodes", err)
	}
	return episodes, nil
}

// Update 覆盖节目的可编辑字段；ID 不存在时返回 NotFound。
func (r *EpisodeRepository) Update(ctx context.Context, id uuid.UUID, ep *po.Episode) error {
	row := mappers.EpisodeToRow(ep)
	if err := execAffectingOne(ctx, r.db, "update episode", updateEpisodeSQL, id, row.Title, row.AirDate); err != nil {
		logFailure(ctx, r.log, err, "update episode failed: id=%s", id)
		return err
	}
	r.log.WithContext(ctx).Debugf("episode updated: id=%s", id)
	return nil
}

// Delete 删除节目并退役其 ID；关联片段保留（弱引用）。
func (r *EpisodeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := deleteAndRetire(ctx, r.tx, r.db, "delete episode", "episodes", "episode", id); err != nil {
		logFailure(ctx, r.log, err, "delete episode failed: id=%s", id)
		return err
	}
	r.log.WithContext(ctx).Infof("episode deleted: id=%s", id)
	return nil
}

func scanEpisode(row pgx.Row) (mappers.EpisodeRow, error) {
	var out mappers.EpisodeRow
	err := row.Scan(&out.ID, &out.Title, &out.AirDate)
	return out, err
}
