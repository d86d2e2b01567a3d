package geo

import (
	"errors"
	"fmt"

	"github.com/airbusgeo/godal"
)

// CRSString renders a spatial reference the way it is usually quoted:
// "AUTHORITY:CODE" when the root node carries an authority, WKT otherwise.
func CRSString(sr *godal.SpatialRef) (string, error) {
	if sr == nil {
		return "", errors.New("nil spatial reference")
	}
	name, code := sr.AuthorityName(""), sr.AuthorityCode("")
	if name != "" && code != "" {
		return fmt.Sprintf("%s:%s", name, code), nil
	}
	wkt, err := sr.WKT()
	if err != nil {
		return "", fmt.Errorf("export spatial ref to WKT: %w", err)
	}
	return wkt, nil
}
