// Package layout binds each URL section to exactly one access policy.
package layout

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Eursukkul/venue-staffing/internal/auth"
	"github.com/Eursukkul/venue-staffing/internal/metrics"
	"github.com/Eursukkul/venue-staffing/internal/middleware"
)

type Policy struct {
	Section string
	Prefix  string
	// Roles is the allow-list for guarded sections; nil for decorative ones.
	Roles      auth.RoleSet
	Decorative bool
}

// Table is the route prefix to policy mapping for the whole application.
var Table = []Policy{
	{Section: "dashboard", Prefix: "/dashboard", Roles: auth.NewRoleSet(auth.RoleUser)},
	{Section: "manager", Prefix: "/manager", Roles: auth.NewRoleSet(auth.RoleManager)},
	{Section: "venue", Prefix: "/venue", Roles: auth.NewRoleSet(auth.RoleVenue)},
	{Section: "admin", Prefix: "/admin", Decorative: true},
}

// Validate rejects tables where a prefix is declared twice or a guarded
// section has nobody allowed in.
func Validate(table []Policy) error {
	seen := make(map[string]string, len(table))
	for _, p := range table {
		if !strings.HasPrefix(p.Prefix, "/") || strings.HasSuffix(p.Prefix, "/") {
			return fmt.Errorf("layout %q: prefix %q must start and not end with /", p.Section, p.Prefix)
		}
		if other, ok := seen[p.Prefix]; ok {
			return fmt.Errorf("layout %q: prefix %q already bound to %q", p.Section, p.Prefix, other)
		}
		seen[p.Prefix] = p.Section

		if p.Decorative && len(p.Roles) > 0 {
			return fmt.Errorf("layout %q: decorative section cannot carry roles", p.Section)
		}
		if !p.Decorative && len(p.Roles) == 0 {
			return fmt.Errorf("layout %q: guarded section has an empty role set", p.Section)
		}
	}
	return nil
}

// Lookup returns the policy whose prefix covers path on a segment boundary,
// preferring the longest prefix.
func Lookup(table []Policy, path string) (Policy, bool) {
	var (
		best  Policy
		found bool
	)
	for _, p := range table {
		if path != p.Prefix && !strings.HasPrefix(path, p.Prefix+"/") {
			continue
		}
		if !found || len(p.Prefix) > len(best.Prefix) {
			best, found = p, true
		}
	}
	return best, found
}

// Mount creates the group for p with its single policy middleware in front.
func Mount(e *echo.Echo, p Policy, log *zap.Logger, m *metrics.Metrics) *echo.Group {
	if p.Decorative {
		return e.Group(p.Prefix, middleware.Decorate(p.Section))
	}
	return e.Group(p.Prefix, middleware.RequireRoles(p.Section, p.Roles, log, m))
}

// MountAll validates table and mounts every section, keyed by section name.
func MountAll(e *echo.Echo, table []Policy, log *zap.Logger, m *metrics.Metrics) (map[string]*echo.Group, error) {
	if err := Validate(table); err != nil {
		return nil, err
	}
	groups := make(map[string]*echo.Group, len(table))
	for _, p := range table {
		groups[p.Section] = Mount(e, p, log, m)
	}
	return groups, nil
}
