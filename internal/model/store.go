package model

// StoreDriver selects the todo Record Store backend.
type StoreDriver string

const (
	StoreDriverMemory   StoreDriver = "memory"
	StoreDriverPostgres StoreDriver = "postgres"
)

// IsValid reports whether d is a supported driver.
func (d StoreDriver) IsValid() bool {
	switch d {
	case StoreDriverMemory, StoreDriverPostgres:
		return true
	}
	return false
}
