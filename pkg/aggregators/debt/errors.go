package debt

import "errors"

var errNoAggregate = errors.New("debt aggregate missing from traversal context")
