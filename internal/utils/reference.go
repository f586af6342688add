package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MintReference creates the opaque string correlating one checkout attempt
// across initialize, the gateway redirect, and verify. Timestamp plus random
// suffix; collision probability is treated as negligible, not proven.
func MintReference() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return fmt.Sprintf("UOH-%d-%s", time.Now().UnixMilli(), suffix)
}
