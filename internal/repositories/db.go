// Package repositories 提供仓储端口的 PostgreSQL 实现，以及统一的仓储错误分类。
package repositories

import (
	"context"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB 抽象单条语句的执行能力，*pgxpool.Pool、pgx.Tx 与 pgxmock 均满足该接口。
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// executor 在事务内返回 sess.Tx()，否则回退到连接池。
func executor(db DB, sess txmanager.Session) DB {
	if sess != nil {
		return sess.Tx()
	}
	return db
}
