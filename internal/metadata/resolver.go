package metadata

import (
	"net/url"
	"strings"
)

// CollectionRef is the platform identity embedded in a contract metadata URI
type CollectionRef struct {
	UserID string
	Slug   string
}

// Resolver recognizes contract metadata URIs that point at the platform and
// extracts the registering user and collection slug from them. Platform URIs
// have the shape https://{domain}/users/{userID}/collections/{slug}.
type Resolver struct {
	domain string
}

// NewResolver creates a resolver for one platform domain
func NewResolver(platformDomain string) *Resolver {
	return &Resolver{domain: strings.ToLower(platformDomain)}
}

// IsPlatformURI reports whether the URI is served from the platform's
// metadata domain. Tokens minted with metadata hosted anywhere else are not
// synced.
func (r *Resolver) IsPlatformURI(uri string) bool {
	if uri == "" {
		return false
	}

	parsed, err := url.Parse(uri)
	if err != nil {
		return false
	}

	return strings.EqualFold(parsed.Hostname(), r.domain)
}

// ResolveCollectionURI extracts the user and slug from a platform contract
// URI. URIs on foreign hosts and malformed platform URIs resolve to nil.
func (r *Resolver) ResolveCollectionURI(uri string) *CollectionRef {
	if uri == "" {
		return nil
	}

	parsed, err := url.Parse(uri)
	if err != nil {
		return nil
	}
	if !strings.EqualFold(parsed.Hostname(), r.domain) {
		return nil
	}

	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if len(segments) != 4 || segments[0] != "users" || segments[2] != "collections" {
		return nil
	}
	if segments[1] == "" || segments[3] == "" {
		return nil
	}

	return &CollectionRef{
		UserID: segments[1],
		Slug:   segments[3],
	}
}
