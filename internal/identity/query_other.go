//go:build !windows

package identity

// CurrentPackageFamilyName always reports no identity: package identity only
// exists on Windows.
func CurrentPackageFamilyName() (string, error) {
	return "", ErrNoPackageIdentity
}
