// Package drivers registers the common database/sql drivers referenced by
// db.<name>.driver configuration keys. Import it for its side effects:
//
//	import _ "github.com/shuldan/standalone/pkg/database/drivers"
package drivers

import (
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)
