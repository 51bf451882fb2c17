// Package identity resolves the package identity of the current process.
//
// A process launched from an installed package (MSIX on Windows) carries a
// package family name that notification delivery can be targeted at. A loose
// executable has none; that is the normal case, not an error.
package identity

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
)

// ErrNoPackageIdentity is returned by a Query when the process is unpackaged.
var ErrNoPackageIdentity = errors.New("process has no package identity")

// PackageIdentity identifies the installed package the process runs from.
type PackageIdentity struct {
	FamilyName string
}

// Query asks the host for the current package family name.
type Query func() (string, error)

// Resolver folds every query outcome other than a family name into absence.
type Resolver struct {
	query  Query
	logger zerolog.Logger
}

// NewResolver returns a Resolver backed by the host query for this build.
func NewResolver(logger zerolog.Logger) *Resolver {
	return NewResolverWithQuery(CurrentPackageFamilyName, logger)
}

// NewResolverWithQuery returns a Resolver backed by query.
func NewResolverWithQuery(query Query, logger zerolog.Logger) *Resolver {
	return &Resolver{query: query, logger: logger}
}

// Resolve returns the package identity, or false when there is none or the
// host could not be asked.
func (r *Resolver) Resolve(_ context.Context) (PackageIdentity, bool) {
	name, err := r.query()
	switch {
	case errors.Is(err, ErrNoPackageIdentity):
		r.logger.Debug().Msg("no package identity")
		return PackageIdentity{}, false
	case err != nil:
		r.logger.Debug().Err(err).Msg("package identity query failed")
		return PackageIdentity{}, false
	case name == "":
		return PackageIdentity{}, false
	}
	return PackageIdentity{FamilyName: name}, true
}
