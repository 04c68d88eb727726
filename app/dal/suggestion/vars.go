package suggestion

import (
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var ErrNotFound = sqlx.ErrNotFound

const (
	// Success flag is stored explicitly on every insert; the column is NOT
	// NULL so a read never has to guess a default.
	SuccessTrue  int64 = 1
	SuccessFalse int64 = 0
)
