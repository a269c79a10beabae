package config

// GetAuthSkipperPaths returns paths served without authentication.
func GetAuthSkipperPaths() []string {
	// Dashboard and read-only GraphQL are public; /api/* stays behind auth.
	return []string{"/dashboard", "/stock/:sku", "/picker/bins", "/graphql", "/playground"}
}
