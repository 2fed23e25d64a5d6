// internal/domain/region/repository.go
package region

// Repository gives read access to the configured regions.
type Repository interface {
	Get(id ID) (Profile, error)
	List() []Profile
	Resolve(raw string) ID // Never fails, unknown input maps to the fallback region
	Fallback() ID
}
