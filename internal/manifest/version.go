package manifest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// DevVersion is the version of builds without ldflags; it satisfies any
// constraint.
const DevVersion = "dev"

// CheckBridgeVersion reports whether the running bridge version satisfies a
// skill's bridge_version constraint. An empty constraint always passes.
func CheckBridgeVersion(constraint, version string) error {
	if constraint == "" || version == DevVersion {
		return nil
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("parsing bridge_version constraint %q: %w", constraint, err)
	}
	v, err := parseSemver(version)
	if err != nil {
		return fmt.Errorf("parsing bridge version %q: %w", version, err)
	}

	if ok, reasons := c.Validate(v); !ok {
		return fmt.Errorf("bridge %s does not satisfy %q: %w", version, constraint, errors.Join(reasons...))
	}
	return nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
