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
	movieClipColumns   = `id, episode_id, title, url, start_second, end_second, likes, created_at`
	insertMovieClipSQL = `INSERT INTO clips.movie_clips (` + movieClipColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	getMovieClipSQL    = `SELECT ` + movieClipColumns + ` FROM clips.movie_clips WHERE id = $1`
	updateMovieClipSQL = `UPDATE clips.movie_clips
SET episode_id = $2, title = $3, url = $4, start_second = $5, end_second = $6, updated_at = now()
WHERE id = $1`
	likeMovieClipSQL = `UPDATE clips.movie_clips SET likes = likes + 1, updated_at = now() WHERE id = $1`
)

// MovieClipRepository 基于 PostgreSQL 的片段仓储。
// Update 不修改点赞数，点赞只通过 IncrementLikes 原子累加。
type MovieClipRepository struct {
	db  DB
	tx  txmanager.Manager
	log *log.Helper
}

// NewMovieClipRepository 构造片段仓储。
func NewMovieClipRepository(db DB, tx txmanager.Manager, logger log.Logger) *MovieClipRepository {
	return &MovieClipRepository{
		db:  db,
		tx:  tx,
		log: log.NewHelper(logger),
	}
}

// Create 插入片段并返回其 ID。
func (r *MovieClipRepository) Create(ctx context.Context, clip *po.MovieClip) (uuid.UUID, error) {
	row := mappers.MovieClipToRow(clip)
	err := insertOnce(ctx, r.tx, r.db, "create movie clip", row.ID, func(ctx context.Context, exec DB) error {
		_, err := exec.Exec(ctx, insertMovieClipSQL,
			row.ID, row.EpisodeID, row.Title, row.URL, row.StartSecond, row.EndSecond, row.Likes, row.CreatedAt)
		return err
	})
	if err != nil {
		logFailure(ctx, r.log, err, "create movie clip failed: id=%s", row.ID)
		return uuid.Nil, err
	}
	r.log.WithContext(ctx).Infof("movie clip created: id=%s episode_id=%s", row.ID, row.EpisodeID)
	return row.ID, nil
}

// Get 按 ID 查询片段。
func (r *MovieClipRepository) Get(ctx context.Context, id uuid.UUID) (*po.MovieClip, error) {
	row, err := scanMovieClip(r.db.QueryRow(ctx, getMovieClipSQL, id))
	if err != nil {
		err = classify("get movie clip", err)
		logFailure(ctx, r.log, err, "get movie clip failed: id=%s", id)
		return nil, err
	}
	clip, err := mappers.MovieClipFromRow(row)
	if err != nil {
		return nil, NewError(KindUnknown, "get movie clip", err.Error())
	}
	return clip, nil
}

// List 按过滤条件查询片段。默认按起始秒升序，likes 按点赞数降序，created 按创建时间降序，次级键均为 id 升序。
// filter.After 非空时以其排序键做 keyset 翻页。
func (r *MovieClipRepository) List(ctx context.Context, filter po.MovieClipFilter) ([]*po.MovieClip, error) {
	var (
		args  []any
		conds []string
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if filter.EpisodeID != nil {
		conds = append(conds, "episode_id = "+arg(*filter.EpisodeID))
	}
	if filter.CreatedFrom != nil {
		conds = append(conds, "created_at >= "+arg(filter.CreatedFrom.Time()))
	}
	if filter.CreatedTo != nil {
		conds = append(conds, "created_at < "+arg(filter.CreatedTo.Time()))
	}

	var order string
	switch filter.OrderBy {
	case po.ClipOrderLikes:
		order = " ORDER BY likes DESC, id"
		if ref := filter.After; ref != nil {
			likes, id := arg(ref.Likes()), arg(ref.ID())
			conds = append(conds, fmt.Sprintf("(likes < %s OR (likes = %s AND id > %s))", likes, likes, id))
		}
	case po.ClipOrderCreated:
		order = " ORDER BY created_at DESC, id"
		if ref := filter.After; ref != nil {
			created, id := arg(ref.CreatedAt()), arg(ref.ID())
			conds = append(conds, fmt.Sprintf("(created_at < %s OR (created_at = %s AND id > %s))", created, created, id))
		}
	default:
		order = " ORDER BY start_second, id"
		if ref := filter.After; ref != nil {
			start, id := arg(ref.Start().Int()), arg(ref.ID())
			conds = append(conds, fmt.Sprintf("(start_second > %s OR (start_second = %s AND id > %s))", start, start, id))
		}
	}

	query := `SELECT ` + movieClipColumns + ` FROM clips.movie_clips`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += order
	if limit := po.NormalizeLimit(filter.Limit); limit > 0 {
		query += " LIMIT " + arg(limit)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		err = classify("list movie clips", err)
		logFailure(ctx, r.log, err, "list movie clips failed")
		return nil, err
	}
	defer rows.Close()

	clips := make([]*po.MovieClip, 0)
	for rows.Next() {
		row, err := scanMovieClip(rows)
		if err != nil {
			return nil, classify("list movie clips", err)
		}
		clip, err := mappers.MovieClipFromRow(row)
		if err != nil {
			return nil, NewError(KindUnknown, "list movie clips", err.Error())
		}
		clips = append(clips, clip)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list movie clips", err)
	}
	return clips, nil
}

// Update 覆盖片段的可编辑字段；ID 不存在时返回 NotFound。
func (r *MovieClipRepository) Update(ctx context.Context, id uuid.UUID, clip *po.MovieClip) error {
	row := mappers.MovieClipToRow(clip)
	err := execAffectingOne(ctx, r.db, "update movie clip", updateMovieClipSQL,
		id, row.EpisodeID, row.Title, row.URL, row.StartSecond, row.EndSecond)
	if err != nil {
		logFailure(ctx, r.log, err, "update movie clip failed: id=%s", id)
		return err
	}
	r.log.WithContext(ctx).Debugf("movie clip updated: id=%s", id)
	return nil
}

// Delete 删除片段并退役其 ID。
func (r *MovieClipRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := deleteAndRetire(ctx, r.tx, r.db, "delete movie clip", "movie_clips", "movie_clip", id); err != nil {
		logFailure(ctx, r.log, err, "delete movie clip failed: id=%s", id)
		return err
	}
	r.log.WithContext(ctx).Infof("movie clip deleted: id=%s", id)
	return nil
}

// IncrementLikes 原子地将点赞数加一。
func (r *MovieClipRepository) IncrementLikes(ctx context.Context, id uuid.UUID) error {
	if err := execAffectingOne(ctx, r.db, "like movie clip", likeMovieClipSQL, id); err != nil {
		logFailure(ctx, r.log, err, "like movie clip failed: id=%s", id)
		return err
	}
	return nil
}

func scanMovieClip(row pgx.Row) (mappers.MovieClipRow, error) {
	var out mappers.MovieClipRow
	err := row.Scan(&out.ID, &out.EpisodeID, &out.Title, &out.URL, &out.StartSecond, &out.EndSecond, &out.Likes, &out.CreatedAt)
	return out, err
}
