package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName checks that a template name is a bare file stem.
// Path separators and dots are rejected so a name can never leave templates/.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
