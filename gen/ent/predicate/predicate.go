// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Application is the predicate function for application builders.
type Application func(*sql.Selector)

// ScanJob is the predicate function for scanjob builders.
type ScanJob func(*sql.Selector)
