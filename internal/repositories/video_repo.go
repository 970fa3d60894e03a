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
	videoColumns   = `id, kind, title, url, author, published_on, likes`
	insertVideoSQL = `INSERT INTO clips.videos (` + videoColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	getVideoSQL    = `SELECT ` + videoColumns + ` FROM clips.videos WHERE id = $1`
	updateVideoSQL = `UPDATE clips.videos
SET kind = $2, title = $3, url = $4, author = $5, published_on = $6, updated_at = now()
WHERE id = $1`
	likeVideoSQL = `UPDATE clips.videos SET likes = likes + 1, updated_at = now() WHERE id = $1`
)

// VideoRepository 基于 PostgreSQL 的来源视频仓储。
type VideoRepository struct {
	db  DB
	tx  txmanager.Manager
	log *log.Helper
}

// NewVideoRepository 构造视频仓储。
func NewVideoRepository(db DB, tx txmanager.Manager, logger log.Logger) *VideoRepository {
	return &VideoRepository{
		db:  db,
		tx:  tx,
		log: log.NewHelper(logger),
	}
}

// Create 插入视频并返回其 ID。
func (r *VideoRepository) Create(ctx context.Context, video *po.Video) (uuid.UUID, error) {
	row := mappers.VideoToRow(video)
	err := insertOnce(ctx, r.tx, r.db, "create video", row.ID, func(ctx context.Context, exec DB) error {
		_, err := exec.Exec(ctx, insertVideoSQL,
			row.ID, row.Kind, row.Title, row.URL, row.Author, row.PublishedOn, row.Likes)
		return err
	})
	if err != nil {
		logFailure(ctx, r.log, err, "create video failed: id=%s", row.ID)
		return uuid.Nil, err
	}
	r.log.WithContext(ctx).Infof("video created: id=%s kind=%s", row.ID, row.Kind)
	return row.ID, nil
}

// Get 按 ID 查询视频。
func (r *VideoRepository) Get(ctx context.Context, id uuid.UUID) (*po.Video, error) {
	row, err := scanVideo(r.db.QueryRow(ctx, getVideoSQL, id))
	if err != nil {
		err = classify("get video", err)
		logFailure(ctx, r.log, err, "get video failed: id=%s", id)
		return nil, err
	}
	video, err := mappers.VideoFromRow(row)
	if err != nil {
		return nil, NewError(KindUnknown, "get video", err.Error())
	}
	return video, nil
}

// List 按类别过滤视频。默认按发布日期降序，likes 排序时按点赞数降序，次级键均为 id 升序。
// filter.After 非空时以其排序键做 keyset 翻页。
func (r *VideoRepository) List(ctx context.Context, filter po.VideoFilter) ([]*po.Video, error) {
	var (
		args  []any
		conds []string
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if filter.Kind != nil {
		conds = append(conds, "kind = "+arg(string(*filter.Kind)))
	}

	var order string
	if filter.OrderBy == po.VideoOrderLikes {
		order = " ORDER BY likes DESC, id"
		if ref := filter.After; ref != nil {
			likes, id := arg(ref.Likes()), arg(ref.ID())
			conds = append(conds, fmt.Sprintf("(likes < %s OR (likes = %s AND id > %s))", likes, likes, id))
		}
	} else {
		order = " ORDER BY published_on DESC, id"
		if ref := filter.After; ref != nil {
			published, id := arg(ref.PublishedOn().Time()), arg(ref.ID())
			conds = append(conds, fmt.Sprintf("(published_on < %s OR (published_on = %s AND id > %s))", published, published, id))
		}
	}

	query := `SELECT ` + videoColumns + ` FROM clips.videos`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += order
	if limit := po.NormalizeLimit(filter.Limit); limit > 0 {
		query += " LIMIT " + arg(limit)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		err = classify("list videos", err)
		logFailure(ctx, r.log, err, "list videos failed")
		return nil, err
	}
	defer rows.Close()

	videos := make([]*po.Video, 0)
	for rows.Next() {
		row, err := scanVideo(rows)
		if err != nil {
			return nil, classify("list videos", err)
		}
		video, err := mappers.VideoFromRow(row)
		if err != nil {
			return nil, NewError(KindUnknown, "list videos", err.Error())
		}
		videos = append(videos, video)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list videos", err)
	}
	return videos, nil
}

// Update 覆盖视频的可编辑字段，不修改点赞数。
func (r *VideoRepository) Update(ctx context.Context, id uuid.UUID, video *po.Video) error {
	row := mappers.VideoToRow(video)
	err := execAffectingOne(ctx, r.db, "update video", updateVideoSQL,
		id, row.Kind, row.Title, row.URL, row.Author, row.PublishedOn)
	if err != nil {
		logFailure(ctx, r.log, err, "update video failed: id=%s", id)
		return err
	}
	r.log.WithContext(ctx).Debugf("video updated: id=%s", id)
	return nil
}

// Delete 删除视频并退役其 ID。
func (r *VideoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := deleteAndRetire(ctx, r.tx, r.db, "delete video", "videos", "video", id); err != nil {
		logFailure(ctx, r.log, err, "delete video failed: id=%s", id)
		return err
	}
	r.log.WithContext(ctx).Infof("video deleted: id=%s", id)
	return nil
}

// IncrementLikes 原子地将点赞数加一。
func (r *VideoRepository) IncrementLikes(ctx context.Context, id uuid.UUID) error {
	if err := execAffectingOne(ctx, r.db, "like video", likeVideoSQL, id); err != nil {
		logFailure(ctx, r.log, err, "like video failed: id=%s", id)
		return err
	}
	return nil
}

func scanVideo(row pgx.Row) (mappers.VideoRow, error) {
	var out mappers.VideoRow
	err := row.Scan(&out.ID, &out.Kind, &out.Title, &out.URL, &out.Author, &out.PublishedOn, &out.Likes)
	return out, err
}
