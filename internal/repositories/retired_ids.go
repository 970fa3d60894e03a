package repositories

import (
	"context"
	"fmt"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
)

// 已删除实体的 ID 写入 clips.retired_ids，之后任何以该 ID 创建的请求都会返回 Conflict。
const (
	retiredExistsSQL = `SELECT EXISTS (SELECT 1 FROM clips.retired_ids WHERE id = $1)`
	retireSQL        = `INSERT INTO clips.retired_ids (id, entity) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING`
)

// insertOnce 在事务内确认 ID 未退役后执行插入。
func insertOnce(ctx context.Context, tx txmanager.Manager, db DB, op string, id uuid.UUID, insert func(context.Context, DB) error) error {
	err := tx.WithinTx(ctx, txmanager.TxOptions{}, func(txCtx context.Context, sess txmanager.Session) error {
		exec := executor(db, sess)
		var retired bool
		if err := exec.QueryRow(txCtx, retiredExistsSQL, id).Scan(&retired); err != nil {
			return classify(op, err)
		}
		if retired {
			return NewError(KindConflict, op, fmt.Sprintf("id %s was deleted and cannot be reused", id))
		}
		return classify(op, insert(txCtx, exec))
	})
	return classify(op, err)
}

// deleteAndRetire 在事务内删除记录并登记退役 ID；记录不存在时返回 NotFound。
func deleteAndRetire(ctx context.Context, tx txmanager.Manager, db DB, op, table, entity string, id uuid.UUID) error {
	err := tx.WithinTx(ctx, txmanager.TxOptions{}, func(txCtx context.Context, sess txmanager.Session) error {
		exec := executor(db, sess)
		tag, err := exec.Exec(txCtx, "DELETE FROM clips."+table+" WHERE id = $1", id)
		if err != nil {
			return classify(op, err)
		}
		if tag.RowsAffected() == 0 {
			return NewError(KindNotFound, op, "")
		}
		if _, err := exec.Exec(txCtx, retireSQL, id, entity); err != nil {
			return classify(op, err)
		}
		return nil
	})
	return classify(op, err)
}

// execAffectingOne 执行单行写语句，影响行数为 0 时返回 NotFound。
func execAffectingOne(ctx context.Context, db DB, op, sql string, args ...any) error {
	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return classify(op, err)
	}
	if tag.RowsAffected() == 0 {
		return NewError(KindNotFound, op, "")
	}
	return nil
}

// logFailure 仅记录非 NotFound 的失败，NotFound 属于正常业务分支。
func logFailure(ctx context.Context, logger *log.Helper, err error, format string, args ...any) {
	if KindOf(err) == KindNotFound {
		return
	}
	logger.WithContext(ctx).Errorf(format+": err=%v", append(args, err)...)
}
