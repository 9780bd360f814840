package config

// GetAuthSkipperPaths returns paths that are always public, regardless of
// method. Catalog reads are public by method (GET/HEAD) instead.
func GetAuthSkipperPaths() []string {
	return []string{"/api/login"}
}
