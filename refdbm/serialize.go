package refdbm

import (
	"github.com/ntacheck/ntacheck/clock"
	"github.com/ntacheck/ntacheck/dbm"
)

// OutputMatrix renders rdbm as a raw matrix, delegating to dbm.OutputMatrix.
func OutputMatrix(rdbm *dbm.DBM, r RefClocks) string {
	return dbm.OutputMatrix(rdbm)
}

// Output renders rdbm as a conjunction of constraints, naming
// every variable through name (reference clocks and system clocks share the
// same naming function, distinguished only by index).
func Output(rdbm *dbm.DBM, r RefClocks, name func(clock.ID) string) string {
	return dbm.Output(rdbm, name)
}
